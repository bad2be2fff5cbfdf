package storage

import (
	"strings"

	"github.com/smart-price-analytics/staging-ingester/internal/platform/models"

	pgmodels "github.com/smart-price-analytics/staging-ingester/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

// ToDBRecord converts models.StagingRecord into postgres staging record model.
func ToDBRecord(record *models.StagingRecord) *pgmodels.StagingRecord {
	return &pgmodels.StagingRecord{
		ID:                 record.ID,
		ProductName:        record.ProductName,
		SourceProductID:    record.SourceProductID,
		Brand:              record.Brand,
		Category:           record.Category,
		Model:              record.Model,
		CurrentPrice:       record.CurrentPrice,
		Mrp:                record.MRP,
		DiscountValue:      record.DiscountValue,
		DiscountPercentage: record.DiscountPercentage,
		CurrencyCode:       record.CurrencyCode,
		CustomerRating:     record.CustomerRating,
		ReviewCount:        record.ReviewCount,
		RatingCount:        record.RatingCount,
		AvailabilityStatus: record.AvailabilityStatus,
		StockQuantity:      record.StockQuantity,
		SellerName:         record.SellerName,
		SellerID:           record.SellerID,
		FulfillmentType:    record.FulfillmentType,
		SourceMarketplace:  record.SourceMarketplace,
		SourceURL:          record.SourceURL,
		SourceRegion:       record.SourceRegion,
		ScrapeTimestampUtc: record.ScrapeTimestampUTC,
		ScrapeBatchID:      record.ScrapeBatchID,
		ScrapeJobID:        record.ScrapeJobID,
		ContentHash:        record.ContentHash,
		RawPayload:         record.RawPayload,
		IsValid:            record.IsValid,
		ValidationErrors:   joinValidationErrors(record.ValidationErrors),
		CreatedAt:          record.CreatedAt,
		UpdatedAt:          record.UpdatedAt,
	}
}

// FromDBRecord converts postgres staging record model into models.StagingRecord.
func FromDBRecord(record *pgmodels.StagingRecord) *models.StagingRecord {
	return &models.StagingRecord{
		ID:                 record.ID,
		ProductName:        record.ProductName,
		SourceProductID:    record.SourceProductID,
		Brand:              record.Brand,
		Category:           record.Category,
		Model:              record.Model,
		CurrentPrice:       record.CurrentPrice,
		MRP:                record.Mrp,
		DiscountValue:      record.DiscountValue,
		DiscountPercentage: record.DiscountPercentage,
		CurrencyCode:       record.CurrencyCode,
		CustomerRating:     record.CustomerRating,
		ReviewCount:        record.ReviewCount,
		RatingCount:        record.RatingCount,
		AvailabilityStatus: record.AvailabilityStatus,
		StockQuantity:      record.StockQuantity,
		SellerName:         record.SellerName,
		SellerID:           record.SellerID,
		FulfillmentType:    record.FulfillmentType,
		SourceMarketplace:  record.SourceMarketplace,
		SourceURL:          record.SourceURL,
		SourceRegion:       record.SourceRegion,
		ScrapeTimestampUTC: record.ScrapeTimestampUtc,
		ScrapeBatchID:      record.ScrapeBatchID,
		ScrapeJobID:        record.ScrapeJobID,
		ContentHash:        record.ContentHash,
		RawPayload:         record.RawPayload,
		IsValid:            record.IsValid,
		ValidationErrors:   splitValidationErrors(record.ValidationErrors),
		CreatedAt:          record.CreatedAt,
		UpdatedAt:          record.UpdatedAt,
	}
}

func toDBBatch(batch *models.Batch) *pgmodels.ScrapeBatch {
	return &pgmodels.ScrapeBatch{
		ID:               batch.ID,
		BatchID:          batch.BatchID,
		JobID:            batch.JobID,
		StartedAt:        batch.StartedAt,
		FinishedAt:       batch.FinishedAt,
		Success:          batch.IsSuccess,
		StatusMessage:    batch.StatusMessage,
		ReceivedRecords:  batch.ReceivedRecords,
		InsertedRecords:  batch.InsertedRecords,
		InvalidRecords:   batch.InvalidRecords,
		DuplicateRecords: batch.DuplicateRecords,
		FailedRecords:    batch.FailedRecords,
	}
}

func fromDBBatch(batch *pgmodels.ScrapeBatch) *models.Batch {
	return &models.Batch{
		ID:               batch.ID,
		BatchID:          batch.BatchID,
		JobID:            batch.JobID,
		StartedAt:        batch.StartedAt,
		FinishedAt:       batch.FinishedAt,
		IsSuccess:        batch.Success,
		StatusMessage:    batch.StatusMessage,
		ReceivedRecords:  batch.ReceivedRecords,
		InsertedRecords:  batch.InsertedRecords,
		InvalidRecords:   batch.InvalidRecords,
		DuplicateRecords: batch.DuplicateRecords,
		FailedRecords:    batch.FailedRecords,
	}
}

func joinValidationErrors(validationErrors []string) string {
	if len(validationErrors) == 0 {
		return ""
	}
	return strings.Join(validationErrors, "\n")
}

func splitValidationErrors(validationErrors string) []string {
	if validationErrors == "" {
		return nil
	}
	return strings.Split(validationErrors, "\n")
}
