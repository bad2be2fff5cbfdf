package modelstesting

import (
	"encoding/json"
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/smart-price-analytics/staging-ingester/internal/fingerprint"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/models"
)

// FakeRawRecord returns models.RawRecord with fake data and a payload snapshot
// derived from the record itself.
func FakeRawRecord(ops ...func(r *models.RawRecord)) models.RawRecord {
	record := models.RawRecord{
		ProductName:     lo.ToPtr(faker.Word()),
		SourceProductID: lo.ToPtr(uuid.NewString()),
		Brand:           lo.ToPtr(faker.Word()),
		Category:        lo.ToPtr(faker.Word()),
		Model:           lo.ToPtr(faker.Word()),

		CurrentPrice:       lo.ToPtr(fakePrice()),
		MRP:                lo.ToPtr(fakePrice()),
		DiscountPercentage: lo.ToPtr(float64(rand.Intn(100))),
		CurrencyCode:       lo.ToPtr("INR"),

		CustomerRating: lo.ToPtr(float64(rand.Intn(50)) / 10),
		ReviewCount:    lo.ToPtr(rand.Int31n(10000)),
		RatingCount:    lo.ToPtr(rand.Int31n(10000)),

		AvailabilityStatus: lo.ToPtr("In Stock"),
		StockQuantity:      lo.ToPtr(rand.Int31n(500)),
		SellerName:         lo.ToPtr(faker.Word()),
		SellerID:           lo.ToPtr(uuid.NewString()),
		FulfillmentType:    lo.ToPtr(faker.Word()),

		SourceMarketplace: faker.Word(),
		SourceURL:         lo.ToPtr(faker.URL()),
	}

	for _, op := range ops {
		op(&record)
	}

	if record.RawPayload == nil {
		payload, err := json.Marshal(record)
		if err != nil {
			panic(err)
		}
		record.RawPayload = payload
	}

	return record
}

// FakeStagingRecord returns models.StagingRecord with fake data and lineage.
func FakeStagingRecord(ops ...func(r *models.StagingRecord)) models.StagingRecord {
	record := models.StagingRecord{
		ProductName:     lo.ToPtr(faker.Word()),
		SourceProductID: lo.ToPtr(uuid.NewString()),
		Brand:           lo.ToPtr(faker.Word()),

		CurrentPrice: lo.ToPtr(fakePrice()),
		MRP:          lo.ToPtr(fakePrice()),
		CurrencyCode: lo.ToPtr("INR"),

		CustomerRating: lo.ToPtr(float64(rand.Intn(50)) / 10),

		SourceMarketplace: faker.Word(),
		SourceURL:         lo.ToPtr(faker.URL()),

		ScrapeTimestampUTC: time.Now().UTC().Truncate(time.Microsecond),
		ScrapeBatchID:      uuid.NewString(),
		ScrapeJobID:        uuid.NewString(),

		RawPayload: []byte(faker.Sentence()),
		IsValid:    true,
	}

	for _, op := range ops {
		op(&record)
	}

	if record.ContentHash == "" {
		record.ContentHash = fingerprint.Hash(record.RawPayload)
	}

	return record
}

// FakeBatch returns models.Batch with fake identifiers.
func FakeBatch(ops ...func(b *models.Batch)) models.Batch {
	batch := models.Batch{
		BatchID: uuid.NewString(),
		JobID:   uuid.NewString(),
	}

	for _, op := range ops {
		op(&batch)
	}

	return batch
}

func fakePrice() float64 {
	return float64(rand.Intn(100000)) / 100
}
