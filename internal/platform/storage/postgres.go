package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/smart-price-analytics/staging-ingester/internal/platform"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/models"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/storage/gen/postgres/public/table"

	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	pgmodels "github.com/smart-price-analytics/staging-ingester/internal/platform/storage/gen/postgres/public/model"
)

// Postgres is append-only storage for staging records and scrape batches.
type Postgres struct {
	db  *sql.DB
	now func() time.Time
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB, ops ...func(p *Postgres)) Postgres {
	postgres := Postgres{
		db:  db,
		now: time.Now,
	}

	for _, op := range ops {
		op(&postgres)
	}

	return postgres
}

// WithNowFunc sets function used to stamp created_at and updated_at columns.
func WithNowFunc(now func() time.Time) func(p *Postgres) {
	return func(p *Postgres) {
		p.now = now
	}
}

// InsertRecord appends a staging record and fills its ID and audit timestamps.
// Records sharing a content hash are all kept, duplicates are never rejected here.
func (p Postgres) InsertRecord(ctx context.Context, record *models.StagingRecord) error {
	dbRecord := ToDBRecord(record)
	now := p.now()
	dbRecord.CreatedAt = now
	dbRecord.UpdatedAt = now

	err := table.StagingRecord.INSERT(table.StagingRecord.MutableColumns).
		MODEL(dbRecord).
		RETURNING(table.StagingRecord.ID).
		QueryContext(ctx, p.db, dbRecord)
	if err != nil {
		return fmt.Errorf("can't insert staging record: %w", classifyError(err))
	}

	record.ID = dbRecord.ID
	record.CreatedAt = now
	record.UpdatedAt = now

	return nil
}

// RecordByID returns one staging record by its surrogate identifier.
// Returns platform.ErrRecordNotFound when no record has given ID.
func (p Postgres) RecordByID(ctx context.Context, recordID int64) (*models.StagingRecord, error) {
	var dbRecord pgmodels.StagingRecord
	err := table.StagingRecord.SELECT(table.StagingRecord.AllColumns).
		WHERE(table.StagingRecord.ID.EQ(pg.Int(recordID))).
		QueryContext(ctx, p.db, &dbRecord)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrRecordNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("can't get staging record: %w", classifyError(err))
	}

	return FromDBRecord(&dbRecord), nil
}

// RecordsByFingerprint returns all staging records with given content hash,
// oldest first. Returns empty slice when the hash was never seen.
func (p Postgres) RecordsByFingerprint(ctx context.Context, contentHash string) ([]models.StagingRecord, error) {
	var dbRecords []pgmodels.StagingRecord
	err := table.StagingRecord.SELECT(table.StagingRecord.AllColumns).
		WHERE(table.StagingRecord.ContentHash.EQ(pg.String(contentHash))).
		ORDER_BY(table.StagingRecord.ID.ASC()).
		QueryContext(ctx, p.db, &dbRecords)

	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get staging records by fingerprint: %w", classifyError(err))
	}

	return lo.Map(dbRecords, func(_ pgmodels.StagingRecord, ix int) models.StagingRecord {
		return *FromDBRecord(&dbRecords[ix])
	}), nil
}

// RecordsByBatch returns all staging records ingested under given batch ID
// in insertion order.
func (p Postgres) RecordsByBatch(ctx context.Context, batchID string) ([]models.StagingRecord, error) {
	var dbRecords []pgmodels.StagingRecord
	err := table.StagingRecord.SELECT(table.StagingRecord.AllColumns).
		WHERE(table.StagingRecord.ScrapeBatchID.EQ(pg.String(batchID))).
		ORDER_BY(table.StagingRecord.ID.ASC()).
		QueryContext(ctx, p.db, &dbRecords)

	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get staging records by batch: %w", classifyError(err))
	}

	return lo.Map(dbRecords, func(_ pgmodels.StagingRecord, ix int) models.StagingRecord {
		return *FromDBRecord(&dbRecords[ix])
	}), nil
}

// RecordsByMarketplace streams staging records of one marketplace captured
// within [from, to], bounds inclusive, into records channel in batches, newest first.
// It closes records channel when there is nothing more to read.
func (p Postgres) RecordsByMarketplace(
	ctx context.Context,
	marketplace string,
	from, to time.Time,
	batchSize uint,
	records chan []models.StagingRecord,
) error {
	defer close(records)

	var (
		previousTimestamp time.Time
		previousID        int64
		firstPage         = true
	)

	for {
		condition := pg.AND(
			table.StagingRecord.SourceMarketplace.EQ(pg.String(marketplace)),
			table.StagingRecord.ScrapeTimestampUtc.GT_EQ(pg.TimestampzT(from)),
			table.StagingRecord.ScrapeTimestampUtc.LT_EQ(pg.TimestampzT(to)),
		)
		if !firstPage {
			condition = pg.AND(
				condition,
				pg.OR(
					table.StagingRecord.ScrapeTimestampUtc.LT(pg.TimestampzT(previousTimestamp)),
					pg.AND(
						table.StagingRecord.ScrapeTimestampUtc.EQ(pg.TimestampzT(previousTimestamp)),
						table.StagingRecord.ID.LT(pg.Int(previousID)),
					),
				),
			)
		}

		var page []pgmodels.StagingRecord
		err := table.StagingRecord.SELECT(table.StagingRecord.AllColumns).
			WHERE(condition).
			ORDER_BY(table.StagingRecord.ScrapeTimestampUtc.DESC(), table.StagingRecord.ID.DESC()).
			LIMIT(int64(batchSize)).
			QueryContext(ctx, p.db, &page)

		if errors.Is(err, qrm.ErrNoRows) || len(page) == 0 {
			return nil
		}

		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get staging records by marketplace: %w", classifyError(err))
		}

		previousTimestamp = page[len(page)-1].ScrapeTimestampUtc
		previousID = page[len(page)-1].ID
		firstPage = false

		batch := lo.Map(page, func(_ pgmodels.StagingRecord, ix int) models.StagingRecord {
			return *FromDBRecord(&page[ix])
		})

		select {
		case <-ctx.Done():
			return ctx.Err()
		case records <- batch:
		}
	}
}

// ReValidate replaces quality verdict of a staging record and returns the
// updated record. It is the only mutation staging records support, business
// fields and lineage stay untouched. Returns platform.ErrRecordNotFound
// when no record has given ID.
func (p Postgres) ReValidate(
	ctx context.Context,
	recordID int64,
	isValid bool,
	validationErrors []string,
) (*models.StagingRecord, error) {
	var record *models.StagingRecord

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		var current pgmodels.StagingRecord
		err := table.StagingRecord.SELECT(table.StagingRecord.AllColumns).
			WHERE(table.StagingRecord.ID.EQ(pg.Int(recordID))).
			FOR(pg.UPDATE()).
			QueryContext(ctx, tx, &current)

		if errors.Is(err, qrm.ErrNoRows) {
			return platform.ErrRecordNotFound
		}

		if err != nil {
			return fmt.Errorf("can't get staging record: %w", classifyError(err))
		}

		current.IsValid = isValid
		current.ValidationErrors = joinValidationErrors(validationErrors)
		current.UpdatedAt = p.now()

		_, err = table.StagingRecord.UPDATE(
			table.StagingRecord.IsValid,
			table.StagingRecord.ValidationErrors,
			table.StagingRecord.UpdatedAt,
		).
			MODEL(current).
			WHERE(table.StagingRecord.ID.EQ(pg.Int(recordID))).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't update staging record: %w", classifyError(err))
		}

		record = FromDBRecord(&current)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// StartBatch creates new unfinished scrape batch in database and fills its ID.
func (p Postgres) StartBatch(ctx context.Context, batch *models.Batch) error {
	dbBatch := toDBBatch(batch)
	if dbBatch.StartedAt.IsZero() {
		dbBatch.StartedAt = p.now()
	}

	err := table.ScrapeBatch.INSERT(
		table.ScrapeBatch.BatchID,
		table.ScrapeBatch.JobID,
		table.ScrapeBatch.StartedAt,
	).
		MODEL(dbBatch).
		RETURNING(table.ScrapeBatch.ID).
		QueryContext(ctx, p.db, dbBatch)
	if err != nil {
		return fmt.Errorf("can't insert scrape batch: %w", classifyError(err))
	}

	batch.ID = dbBatch.ID
	batch.StartedAt = dbBatch.StartedAt

	return nil
}

// FinishBatch sets batch as finished and updates batch's statistics.
func (p Postgres) FinishBatch(ctx context.Context, batch *models.Batch) error {
	if batch.FinishedAt == nil {
		batch.FinishedAt = lo.ToPtr(p.now())
	}

	columnList := table.ScrapeBatch.AllColumns.Except(
		table.ScrapeBatch.ID,
		table.ScrapeBatch.BatchID,
		table.ScrapeBatch.JobID,
		table.ScrapeBatch.StartedAt,
	)

	result, err := table.ScrapeBatch.UPDATE(columnList).
		MODEL(toDBBatch(batch)).
		WHERE(table.ScrapeBatch.ID.EQ(pg.Int(batch.ID))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update scrape batch: %w", classifyError(err))
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't update scrape batch: %w", platform.ErrRecordNotFound)
	}

	return nil
}

// LastBatch returns the most recently started batch of given job.
// Returns platform.ErrRecordNotFound when the job has no batches.
func (p Postgres) LastBatch(ctx context.Context, jobID string) (*models.Batch, error) {
	var dbBatch pgmodels.ScrapeBatch
	err := table.ScrapeBatch.SELECT(table.ScrapeBatch.AllColumns).
		WHERE(table.ScrapeBatch.JobID.EQ(pg.String(jobID))).
		ORDER_BY(table.ScrapeBatch.StartedAt.DESC()).
		LIMIT(1).
		QueryContext(ctx, p.db, &dbBatch)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, platform.ErrRecordNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("can't get last scrape batch: %w", classifyError(err))
	}

	return fromDBBatch(&dbBatch), nil
}

// classifyError maps database errors onto platform sentinels. Integrity
// constraint rejections (SQLSTATE class 23) mean a record which passed
// validation broke a storage contract, everything else is unavailability.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return fmt.Errorf("%w: %w", platform.ErrConstraintViolation, err)
	}

	return fmt.Errorf("%w: %w", platform.ErrStorageUnavailable, err)
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
