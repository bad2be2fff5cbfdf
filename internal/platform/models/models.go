package models

import "time"

// DecodingResult contains raw record with decoding error if there is any.
type DecodingResult struct {
	Record RawRecord
	Error  error
}

// RawRecord is one product observation as delivered by a scraper,
// before validation and lineage tagging. Every business field except
// SourceMarketplace is optional - scraped data may be incomplete.
type RawRecord struct {
	ProductName     *string `json:"product_name"`
	SourceProductID *string `json:"source_product_id"`
	Brand           *string `json:"brand"`
	Category        *string `json:"category"`
	Model           *string `json:"model"`

	CurrentPrice       *float64 `json:"current_price"`
	MRP                *float64 `json:"mrp"`
	DiscountValue      *float64 `json:"discount_value"`
	DiscountPercentage *float64 `json:"discount_percentage"`
	CurrencyCode       *string  `json:"currency_code"`

	CustomerRating *float64 `json:"customer_rating"`
	ReviewCount    *int32   `json:"review_count"`
	RatingCount    *int32   `json:"rating_count"`

	AvailabilityStatus *string `json:"availability_status"`
	StockQuantity      *int32  `json:"stock_quantity"`
	SellerName         *string `json:"seller_name"`
	SellerID           *string `json:"seller_id"`
	FulfillmentType    *string `json:"fulfillment_type"`

	SourceMarketplace string  `json:"source_marketplace"`
	SourceURL         *string `json:"source_url"`
	SourceRegion      *string `json:"source_region"`

	// Display text captured from the listing page. Parsed into the typed
	// fields above when scrapers deliver text instead of numbers.
	RawPriceText        *string `json:"raw_price_text"`
	RawMRPText          *string `json:"raw_mrp_text"`
	RawDiscountText     *string `json:"raw_discount_text"`
	RawRatingText       *string `json:"raw_rating_text"`
	RawAvailabilityText *string `json:"raw_availability_text"`

	// ScrapeTimestamp is the capture time reported by the scraper.
	// Defaults to ingestion time when nil.
	ScrapeTimestamp *time.Time `json:"scrape_timestamp_utc"`

	// RawPayload is the unmodified payload snapshot the record was built from.
	RawPayload []byte `json:"raw_payload"`
}

// StagingRecord is a raw product observation landed in the staging layer
// with lineage and quality metadata. Records are append-only: after insert
// only the quality fields and UpdatedAt may change, through re-validation.
type StagingRecord struct {
	ID int64

	ProductName     *string
	SourceProductID *string
	Brand           *string
	Category        *string
	Model           *string

	CurrentPrice       *float64
	MRP                *float64
	DiscountValue      *float64
	DiscountPercentage *float64
	CurrencyCode       *string

	CustomerRating *float64
	ReviewCount    *int32
	RatingCount    *int32

	AvailabilityStatus *string
	StockQuantity      *int32
	SellerName         *string
	SellerID           *string
	FulfillmentType    *string

	SourceMarketplace string
	SourceURL         *string
	SourceRegion      *string

	ScrapeTimestampUTC time.Time
	ScrapeBatchID      string
	ScrapeJobID        string

	ContentHash      string
	RawPayload       []byte
	IsValid          bool
	ValidationErrors []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Batch is one ingestion run of a scrape job. It carries the statistics
// persisted for batch-level auditing and reprocessing.
type Batch struct {
	ID            int64
	BatchID       string
	JobID         string
	StartedAt     time.Time
	FinishedAt    *time.Time
	IsSuccess     *bool
	StatusMessage *string

	ReceivedRecords  *int32
	InsertedRecords  *int32
	InvalidRecords   *int32
	DuplicateRecords *int32
	FailedRecords    *int32
}
