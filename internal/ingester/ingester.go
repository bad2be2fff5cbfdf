// Package ingester orchestrates the staging pipeline: decode, normalize,
// validate, fingerprint, tag lineage and land records in the staging store.
package ingester

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/smart-price-analytics/staging-ingester/internal/fingerprint"
	"github.com/smart-price-analytics/staging-ingester/internal/lineage"
	"github.com/smart-price-analytics/staging-ingester/internal/normalizer"
	"github.com/smart-price-analytics/staging-ingester/internal/platform"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/models"
	"github.com/smart-price-analytics/staging-ingester/internal/validator"
	"golang.org/x/sync/errgroup"
)

//go:generate mockery --name Decoder --filename decoder.go
//go:generate mockery --name Storage --filename storage.go

// DefaultCurrencyCode is assigned to records which carry no currency.
const DefaultCurrencyCode = "INR"

// Decoder decodes streams of scraped observations into decoding results.
type Decoder interface {
	Decode(context.Context, io.Reader, chan<- models.DecodingResult) error
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() *time.Time
}

// Storage is staging records and scrape batches storage.
type Storage interface {
	// InsertRecord appends a staging record and fills its surrogate ID.
	InsertRecord(ctx context.Context, record *models.StagingRecord) error
	// RecordByID returns one staging record by its surrogate ID.
	RecordByID(ctx context.Context, recordID int64) (*models.StagingRecord, error)
	// ReValidate replaces quality verdict of a staging record and returns the updated record.
	ReValidate(ctx context.Context, recordID int64, isValid bool, validationErrors []string) (*models.StagingRecord, error)
	// StartBatch creates new unfinished scrape batch and fills its ID.
	StartBatch(ctx context.Context, batch *models.Batch) error
	// FinishBatch finishes provided batch and updates its statistics.
	FinishBatch(ctx context.Context, batch *models.Batch) error
}

// Option is custom configuration of Ingester.
type Option func(in *Ingester)

// Ingester decodes, validates, fingerprints and lands scraped records.
type Ingester struct {
	decoder        Decoder
	storage        Storage
	tagger         lineage.Tagger
	batchSize      uint
	clock          Clock
	newBatchID     func() string
	skipDuplicates bool
	logger         zerolog.Logger
}

// NewIngester returns new Ingester.
func NewIngester(decoder Decoder, storage Storage, batchSize uint, ops ...Option) *Ingester {
	ing := &Ingester{
		decoder:    decoder,
		storage:    storage,
		tagger:     lineage.NewTagger(DefaultCurrencyCode),
		batchSize:  batchSize,
		clock:      systemClock{},
		newBatchID: uuid.NewString,
		logger:     zerolog.Nop(),
	}

	for _, op := range ops {
		op(ing)
	}

	return ing
}

// IngestStream ingests a stream of scraped observations as one batch of jobID.
// It returns the finished batch with its statistics.
func (in Ingester) IngestStream(ctx context.Context, jobID string, stream io.Reader) (*models.Batch, error) {
	return in.ingest(ctx, jobID, func(ctx context.Context, output chan<- models.DecodingResult) error {
		return in.decoder.Decode(ctx, stream, output)
	})
}

// IngestRecords ingests already-decoded raw records as one batch of jobID.
// It returns the finished batch with its statistics.
func (in Ingester) IngestRecords(ctx context.Context, jobID string, records []models.RawRecord) (*models.Batch, error) {
	return in.ingest(ctx, jobID, func(ctx context.Context, output chan<- models.DecodingResult) error {
		for ix := range records {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case output <- models.DecodingResult{Record: records[ix]}:
			}
		}
		return nil
	})
}

// IngestRecord validates, fingerprints, tags and lands a single record under
// already-established batch lineage. Duplicate fingerprints are not checked,
// single observations have no run-scoped duplicate set.
func (in Ingester) IngestRecord(
	ctx context.Context,
	record models.RawRecord,
	batchID, jobID string,
) (*models.StagingRecord, error) {
	staged, err := in.prepareRecord(record, batchID, jobID, *in.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("can't prepare record: %w", err)
	}

	if err := in.storage.InsertRecord(ctx, &staged); err != nil {
		return nil, fmt.Errorf("can't insert record: %w", err)
	}

	return &staged, nil
}

// ReValidate re-runs the current validation rule set against a persisted
// record and updates its quality verdict. Business fields and lineage are
// immutable after insert, so the verdict is recomputed from stored values.
func (in Ingester) ReValidate(ctx context.Context, recordID int64) (*models.StagingRecord, error) {
	record, err := in.storage.RecordByID(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("can't get record to re-validate: %w", err)
	}

	_, violations := validator.Validate(rawFromStaging(record))

	updated, err := in.storage.ReValidate(ctx, recordID, len(violations) == 0, violations)
	if err != nil {
		return nil, fmt.Errorf("can't re-validate record: %w", err)
	}

	return updated, nil
}

func (in Ingester) ingest(
	ctx context.Context,
	jobID string,
	produce func(ctx context.Context, output chan<- models.DecodingResult) error,
) (*models.Batch, error) {
	batch := &models.Batch{
		BatchID: in.newBatchID(),
		JobID:   jobID,
	}

	if err := in.storage.StartBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("can't start ingestion: %w", err)
	}

	err := in.ingestRecords(ctx, batch, produce)

	return batch, in.finishIngestion(ctx, batch, err)
}

func (in Ingester) ingestRecords(
	ctx context.Context,
	batch *models.Batch,
	produce func(ctx context.Context, output chan<- models.DecodingResult) error,
) error {
	results := make(chan models.DecodingResult)
	staged := make(chan []models.StagingRecord)

	received := int32(0)
	invalid := int32(0)
	duplicates := int32(0)
	inserted := int32(0)
	failed := int32(0)

	errGroup, egCtx := errgroup.WithContext(ctx)

	// decode observations.
	errGroup.Go(func() error {
		defer close(results)
		if err := produce(egCtx, results); err != nil {
			return fmt.Errorf("can't decode record stream: %w", err)
		}
		return nil
	})

	// normalize, validate, fingerprint and tag lineage.
	errGroup.Go(func() error {
		defer close(staged)

		stats, err := in.prepareRecords(egCtx, batch.BatchID, batch.JobID, results, staged)
		_ = atomic.AddInt32(&received, stats.received)
		_ = atomic.AddInt32(&invalid, stats.invalid)
		_ = atomic.AddInt32(&duplicates, stats.duplicates)
		_ = atomic.AddInt32(&failed, stats.failed)

		if err != nil {
			return fmt.Errorf("can't prepare records: %w", err)
		}
		return nil
	})

	// land records in staging.
	errGroup.Go(func() error {
		insertedCount, failedCount, err := in.insertRecords(egCtx, staged)
		_ = atomic.AddInt32(&inserted, insertedCount)
		_ = atomic.AddInt32(&failed, failedCount)

		if err != nil {
			return fmt.Errorf("can't insert records: %w", err)
		}
		return nil
	})

	err := errGroup.Wait()

	batch.ReceivedRecords = &received
	batch.InsertedRecords = &inserted
	batch.InvalidRecords = &invalid
	batch.DuplicateRecords = &duplicates
	batch.FailedRecords = &failed

	return err
}

type prepareStats struct {
	received   int32
	invalid    int32
	duplicates int32
	failed     int32
}

func (in Ingester) prepareRecords(
	ctx context.Context,
	batchID, jobID string,
	input <-chan models.DecodingResult,
	output chan []models.StagingRecord,
) (prepareStats, error) {
	stats := prepareStats{}
	seen := fingerprint.NewSet()
	defaultTimestamp := *in.clock.Now()
	chunk := make([]models.StagingRecord, 0, in.batchSize)

	for result := range input {
		stats.received++

		if result.Error != nil {
			stats.failed++
			continue
		}

		record, err := in.prepareRecord(result.Record, batchID, jobID, defaultTimestamp)
		if err != nil {
			stats.failed++
			continue
		}

		if !record.IsValid {
			stats.invalid++
		}

		if seen.Observe(record.ContentHash) {
			stats.duplicates++
			if in.skipDuplicates {
				continue
			}
		}

		chunk = append(chunk, record)
		if len(chunk) == int(in.batchSize) {
			select {
			case <-ctx.Done():
				return stats, ctx.Err()
			case output <- chunk:
			}
			chunk = make([]models.StagingRecord, 0, in.batchSize)
		}
	}

	if len(chunk) > 0 {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case output <- chunk:
		}
	}

	return stats, nil
}

func (in Ingester) prepareRecord(
	record models.RawRecord,
	batchID, jobID string,
	defaultTimestamp time.Time,
) (models.StagingRecord, error) {
	if record.RawPayload == nil {
		payload, err := json.Marshal(record)
		if err != nil {
			return models.StagingRecord{}, fmt.Errorf("can't snapshot raw payload: %w", err)
		}
		record.RawPayload = payload
	}

	record = normalizer.Normalize(record)
	record, violations := validator.Validate(record)

	staged := in.tagger.Tag(record, batchID, jobID, defaultTimestamp)
	staged.ContentHash = fingerprint.Hash(staged.RawPayload)
	staged.IsValid = len(violations) == 0
	staged.ValidationErrors = violations

	return staged, nil
}

func (in Ingester) insertRecords(
	ctx context.Context,
	input chan []models.StagingRecord,
) (int32, int32, error) {
	inserted := int32(0)
	failed := int32(0)

	for chunk := range input {
		for ix := range chunk {
			err := in.storage.InsertRecord(ctx, &chunk[ix])

			// a record which passed validation but broke a storage constraint
			// is a programming-contract defect, not an ingestion failure.
			if errors.Is(err, platform.ErrConstraintViolation) {
				failed++
				in.logger.Error().
					Err(err).
					Str("contentHash", chunk[ix].ContentHash).
					Str("marketplace", chunk[ix].SourceMarketplace).
					Msg("validated record rejected by storage constraints")
				continue
			}

			if err != nil {
				return inserted, failed, err
			}

			inserted++
		}
	}

	return inserted, failed, nil
}

func (in Ingester) finishIngestion(ctx context.Context, batch *models.Batch, status error) error {
	if status != nil {
		batch.StatusMessage = lo.ToPtr(status.Error())
	}
	batch.IsSuccess = lo.ToPtr(status == nil)
	batch.FinishedAt = in.clock.Now()

	err := in.storage.FinishBatch(ctx, batch)
	if err != nil && status == nil {
		return fmt.Errorf("can't finish ingestion: %w", err)
	}

	if err != nil && status != nil {
		return fmt.Errorf("can't finish failed ingestion: %w (fail reason: %w)", err, status)
	}

	return status
}

func rawFromStaging(record *models.StagingRecord) models.RawRecord {
	return models.RawRecord{
		ProductName:     record.ProductName,
		SourceProductID: record.SourceProductID,
		Brand:           record.Brand,
		Category:        record.Category,
		Model:           record.Model,

		CurrentPrice:       record.CurrentPrice,
		MRP:                record.MRP,
		DiscountValue:      record.DiscountValue,
		DiscountPercentage: record.DiscountPercentage,
		CurrencyCode:       record.CurrencyCode,

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

		ScrapeTimestamp: lo.ToPtr(record.ScrapeTimestampUTC),
		RawPayload:      record.RawPayload,
	}
}

// WithClock sets Ingester's custom Clock.
func WithClock(c Clock) Option {
	return func(in *Ingester) {
		in.clock = c
	}
}

// WithBatchIDGenerator sets custom generator of scrape batch IDs.
func WithBatchIDGenerator(newBatchID func() string) Option {
	return func(in *Ingester) {
		in.newBatchID = newBatchID
	}
}

// WithSkipDuplicates makes the pipeline skip re-inserting records whose
// fingerprint was already observed within the same run. Cross-run duplicates
// are never skipped, they are discoverable via the fingerprint index.
func WithSkipDuplicates() Option {
	return func(in *Ingester) {
		in.skipDuplicates = true
	}
}

// WithDefaultCurrencyCode sets ISO-4217 currency assigned to records
// which carry none.
func WithDefaultCurrencyCode(code string) Option {
	return func(in *Ingester) {
		in.tagger = lineage.NewTagger(code)
	}
}

// WithLogger sets Ingester's logger. Without it defects found during
// ingestion are counted but not logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(in *Ingester) {
		in.logger = logger
	}
}
