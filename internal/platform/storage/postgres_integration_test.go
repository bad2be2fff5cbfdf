package storage_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/smart-price-analytics/staging-ingester/internal/platform"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/models"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/models/modelstesting"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/storage"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/storage/storagetesting"
	"github.com/stretchr/testify/suite"
)

var frozenNow = time.Date(2024, time.March, 14, 10, 30, 0, 0, time.UTC)

func TestPostgresIntegration(t *testing.T) {
	suite.Run(t, new(PostgresTestSuite))
}

type PostgresTestSuite struct {
	suite.Suite
	DB      *sql.DB
	Storage storage.Postgres
}

func (s *PostgresTestSuite) SetupSuite() {
	s.DB = storagetesting.Open(s.T())
	s.Storage = storage.NewPostgres(s.DB, storage.WithNowFunc(func() time.Time {
		return frozenNow
	}))
	storagetesting.CleanupData(s.T(), s.DB)
}

func (s *PostgresTestSuite) TearDownSuite() {
	storagetesting.CleanupData(s.T(), s.DB)
	if err := s.DB.Close(); err != nil {
		s.FailNow("close DB", err)
	}
}

func (s *PostgresTestSuite) TestIntegrationInsertRecord() {
	storagetesting.CleanupData(s.T(), s.DB)

	record := modelstesting.FakeStagingRecord()

	err := s.Storage.InsertRecord(context.Background(), &record)

	s.Require().NoError(err)
	s.NotZero(record.ID)
	s.Equal(frozenNow, record.CreatedAt.UTC())
	s.Equal(frozenNow, record.UpdatedAt.UTC())

	stored := storagetesting.GetRecordByID(s.T(), s.DB, record.ID)
	s.Equal(record.ContentHash, stored.ContentHash)
	s.Equal(record.SourceMarketplace, stored.SourceMarketplace)
	s.Equal(record.RawPayload, stored.RawPayload)
	s.Equal(record.IsValid, stored.IsValid)
}

func (s *PostgresTestSuite) TestIntegrationInsertRecordKeepsDuplicates() {
	storagetesting.CleanupData(s.T(), s.DB)

	record := modelstesting.FakeStagingRecord()
	duplicate := record
	duplicate.ID = 0

	s.Require().NoError(s.Storage.InsertRecord(context.Background(), &record))
	s.Require().NoError(s.Storage.InsertRecord(context.Background(), &duplicate))

	s.NotEqual(record.ID, duplicate.ID)

	stored := storagetesting.GetRecords(s.T(), s.DB)
	s.Len(stored, 2)
	s.Equal(stored[0].ContentHash, stored[1].ContentHash)
}

func (s *PostgresTestSuite) TestIntegrationRecordsByFingerprint() {
	storagetesting.CleanupData(s.T(), s.DB)

	first := modelstesting.FakeStagingRecord()
	second := first
	second.ID = 0
	other := modelstesting.FakeStagingRecord()

	s.Require().NoError(s.Storage.InsertRecord(context.Background(), &first))
	s.Require().NoError(s.Storage.InsertRecord(context.Background(), &second))
	s.Require().NoError(s.Storage.InsertRecord(context.Background(), &other))

	records, err := s.Storage.RecordsByFingerprint(context.Background(), first.ContentHash)

	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(first.ID, records[0].ID)
	s.Equal(second.ID, records[1].ID)

	records, err = s.Storage.RecordsByFingerprint(context.Background(), "unknown-hash")
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *PostgresTestSuite) TestIntegrationRecordsByBatch() {
	storagetesting.CleanupData(s.T(), s.DB)

	batchID := uuid.NewString()
	inBatch := lo.Times(3, func(_ int) models.StagingRecord {
		return modelstesting.FakeStagingRecord(func(r *models.StagingRecord) {
			r.ScrapeBatchID = batchID
		})
	})
	outside := modelstesting.FakeStagingRecord()

	for ix := range inBatch {
		s.Require().NoError(s.Storage.InsertRecord(context.Background(), &inBatch[ix]))
	}
	s.Require().NoError(s.Storage.InsertRecord(context.Background(), &outside))

	records, err := s.Storage.RecordsByBatch(context.Background(), batchID)

	s.Require().NoError(err)
	s.Require().Len(records, 3)
	for ix := range records {
		s.Equal(inBatch[ix].ID, records[ix].ID)
		s.Equal(batchID, records[ix].ScrapeBatchID)
	}
}

func (s *PostgresTestSuite) TestIntegrationRecordsByMarketplace() {
	storagetesting.CleanupData(s.T(), s.DB)

	marketplace := "flipkart"
	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	stored := make([]models.StagingRecord, 0, 5)
	for ix := 0; ix < 5; ix++ {
		record := modelstesting.FakeStagingRecord(func(r *models.StagingRecord) {
			r.SourceMarketplace = marketplace
			r.ScrapeTimestampUTC = base.Add(time.Duration(ix) * time.Hour)
		})
		s.Require().NoError(s.Storage.InsertRecord(context.Background(), &record))
		stored = append(stored, record)
	}

	// captured exactly at the upper bound, the range is inclusive on both ends
	boundary := modelstesting.FakeStagingRecord(func(r *models.StagingRecord) {
		r.SourceMarketplace = marketplace
		r.ScrapeTimestampUTC = base.Add(24 * time.Hour)
	})
	s.Require().NoError(s.Storage.InsertRecord(context.Background(), &boundary))
	stored = append(stored, boundary)

	// outside the queried range and marketplace
	late := modelstesting.FakeStagingRecord(func(r *models.StagingRecord) {
		r.SourceMarketplace = marketplace
		r.ScrapeTimestampUTC = base.Add(48 * time.Hour)
	})
	foreign := modelstesting.FakeStagingRecord(func(r *models.StagingRecord) {
		r.ScrapeTimestampUTC = base
	})
	s.Require().NoError(s.Storage.InsertRecord(context.Background(), &late))
	s.Require().NoError(s.Storage.InsertRecord(context.Background(), &foreign))

	records := make(chan []models.StagingRecord)
	done := make(chan error, 1)
	go func() {
		done <- s.Storage.RecordsByMarketplace(
			context.Background(),
			marketplace,
			base,
			base.Add(24*time.Hour),
			2,
			records,
		)
	}()

	got := []models.StagingRecord{}
	for batch := range records {
		s.LessOrEqual(len(batch), 2)
		got = append(got, batch...)
	}
	s.Require().NoError(<-done)

	s.Require().Len(got, len(stored))
	for ix := range got {
		// newest first
		s.Equal(stored[len(stored)-1-ix].ID, got[ix].ID)
	}
}

func (s *PostgresTestSuite) TestIntegrationReValidate() {
	storagetesting.CleanupData(s.T(), s.DB)

	record := modelstesting.FakeStagingRecord(func(r *models.StagingRecord) {
		r.IsValid = false
		r.ValidationErrors = []string{"negative_price"}
	})
	s.Require().NoError(s.Storage.InsertRecord(context.Background(), &record))

	updated, err := s.Storage.ReValidate(context.Background(), record.ID, true, nil)

	s.Require().NoError(err)
	s.True(updated.IsValid)
	s.Empty(updated.ValidationErrors)
	s.Equal(record.ContentHash, updated.ContentHash)
	s.Equal(record.RawPayload, updated.RawPayload)

	stored := storagetesting.GetRecordByID(s.T(), s.DB, record.ID)
	s.True(stored.IsValid)
	s.Empty(stored.ValidationErrors)
}

func (s *PostgresTestSuite) TestIntegrationReValidateMissingRecord() {
	storagetesting.CleanupData(s.T(), s.DB)

	_, err := s.Storage.ReValidate(context.Background(), 404, false, []string{"rating_out_of_range"})

	s.Require().ErrorIs(err, platform.ErrRecordNotFound)
}

func (s *PostgresTestSuite) TestIntegrationStartAndFinishBatch() {
	storagetesting.CleanupData(s.T(), s.DB)

	batch := modelstesting.FakeBatch()

	err := s.Storage.StartBatch(context.Background(), &batch)

	s.Require().NoError(err)
	s.NotZero(batch.ID)
	s.Equal(frozenNow, batch.StartedAt.UTC())

	batch.IsSuccess = lo.ToPtr(true)
	batch.ReceivedRecords = lo.ToPtr(int32(10))
	batch.InsertedRecords = lo.ToPtr(int32(8))
	batch.InvalidRecords = lo.ToPtr(int32(1))
	batch.DuplicateRecords = lo.ToPtr(int32(2))
	batch.FailedRecords = lo.ToPtr(int32(0))

	err = s.Storage.FinishBatch(context.Background(), &batch)

	s.Require().NoError(err)

	stored := storagetesting.GetBatches(s.T(), s.DB)
	s.Require().Len(stored, 1)
	s.Equal(batch.BatchID, stored[0].BatchID)
	s.Require().NotNil(stored[0].FinishedAt)
	s.Equal(frozenNow, stored[0].FinishedAt.UTC())
	s.Equal(lo.ToPtr(true), stored[0].Success)
	s.Equal(lo.ToPtr(int32(8)), stored[0].InsertedRecords)
}

func (s *PostgresTestSuite) TestIntegrationLastBatch() {
	storagetesting.CleanupData(s.T(), s.DB)

	jobID := uuid.NewString()
	older := modelstesting.FakeBatch(func(b *models.Batch) {
		b.JobID = jobID
		b.StartedAt = frozenNow.Add(-time.Hour)
	})
	newer := modelstesting.FakeBatch(func(b *models.Batch) {
		b.JobID = jobID
		b.StartedAt = frozenNow
	})

	s.Require().NoError(s.Storage.StartBatch(context.Background(), &older))
	s.Require().NoError(s.Storage.StartBatch(context.Background(), &newer))

	got, err := s.Storage.LastBatch(context.Background(), jobID)

	s.Require().NoError(err)
	s.Equal(newer.BatchID, got.BatchID)

	_, err = s.Storage.LastBatch(context.Background(), uuid.NewString())
	s.Require().ErrorIs(err, platform.ErrRecordNotFound)
}
