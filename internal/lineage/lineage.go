// Package lineage attaches scrape lineage metadata to validated records.
package lineage

import (
	"time"

	"github.com/samber/lo"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/models"
)

// Tagger builds staging records from raw records, stamping batch, job and
// scrape-time lineage. Tagger is pure: the fallback timestamp is supplied by
// the caller so the ingestion boundary, not query time, decides "now".
type Tagger struct {
	defaultCurrencyCode string
}

// NewTagger returns a Tagger which falls back to defaultCurrencyCode
// (an ISO-4217 code, e.g. "INR") when a record carries no currency.
func NewTagger(defaultCurrencyCode string) Tagger {
	return Tagger{
		defaultCurrencyCode: defaultCurrencyCode,
	}
}

// Tag converts record into a staging record carrying batch and job lineage.
// The scrape timestamp is the scraper-reported capture time normalized to UTC,
// or defaultTimestamp when the scraper reported none. Source region stays nil
// unless supplied - no inference happens here.
func (t Tagger) Tag(record models.RawRecord, batchID, jobID string, defaultTimestamp time.Time) models.StagingRecord {
	scrapedAt := defaultTimestamp.UTC()
	if record.ScrapeTimestamp != nil {
		scrapedAt = record.ScrapeTimestamp.UTC()
	}

	currency := record.CurrencyCode
	if currency == nil {
		currency = lo.ToPtr(t.defaultCurrencyCode)
	}

	return models.StagingRecord{
		ProductName:     record.ProductName,
		SourceProductID: record.SourceProductID,
		Brand:           record.Brand,
		Category:        record.Category,
		Model:           record.Model,

		CurrentPrice:       record.CurrentPrice,
		MRP:                record.MRP,
		DiscountValue:      record.DiscountValue,
		DiscountPercentage: record.DiscountPercentage,
		CurrencyCode:       currency,

		CustomerRating: record.CustomerRating,
		ReviewCount:    record.ReviewCount,
		RatingCount:    record.RatingCount,

		AvailabilityStatus: record.AvailabilityStatus,
		StockQuantity:      record.StockQuantity,
		SellerName:         record.SellerName,
		SellerID:           record.SellerID,
		FulfillmentType:    record.FulfillmentType,

		SourceMarketplace: record.SourceMarketplace,
		SourceURL:         record.SourceURL,
		SourceRegion:      record.SourceRegion,

		ScrapeTimestampUTC: scrapedAt,
		ScrapeBatchID:      batchID,
		ScrapeJobID:        jobID,

		RawPayload: record.RawPayload,
	}
}
