package commander

import "github.com/smart-price-analytics/staging-ingester/internal/platform/models"

// IngestCommand orders ingestion of scraped records under one job.
type IngestCommand struct {
	JobID   string             `json:"jobId"`
	Records []models.RawRecord `json:"records"`
}
