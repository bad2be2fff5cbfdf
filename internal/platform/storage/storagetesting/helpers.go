package storagetesting

import (
	"database/sql"
	"errors"
	"os"
	"testing"

	pgmodels "github.com/smart-price-analytics/staging-ingester/internal/platform/storage/gen/postgres/public/model"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/storage/gen/postgres/public/table"

	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Fatal("please provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertRecords is a helper test function to insert staging records.
func InsertRecords(t *testing.T, exc qrm.Executable, records ...pgmodels.StagingRecord) {
	t.Helper()

	if len(records) == 0 {
		return
	}

	toInsert := make([]pgmodels.StagingRecord, 0, len(records))
	toInsert = append(toInsert, records...)

	_, err := table.StagingRecord.INSERT(table.StagingRecord.MutableColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert staging records", err)
	}
}

// InsertBatches is a helper test function to insert scrape batches.
func InsertBatches(t *testing.T, exc qrm.Executable, batches ...pgmodels.ScrapeBatch) {
	t.Helper()

	if len(batches) == 0 {
		return
	}

	toInsert := make([]pgmodels.ScrapeBatch, 0, len(batches))
	toInsert = append(toInsert, batches...)

	_, err := table.ScrapeBatch.INSERT(table.ScrapeBatch.MutableColumns).MODELS(toInsert).Exec(exc)
	if err != nil {
		t.Fatal("can't insert scrape batches", err)
	}
}

// GetRecords is a helper test function to get all staging records.
func GetRecords(t *testing.T, queryable qrm.Queryable) []pgmodels.StagingRecord {
	t.Helper()

	records := []pgmodels.StagingRecord{}
	err := table.StagingRecord.SELECT(table.StagingRecord.AllColumns).
		WHERE(table.StagingRecord.ID.IS_NOT_NULL()).
		ORDER_BY(table.StagingRecord.ID.ASC()).
		Query(queryable, &records)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		t.Fatal("can't get staging records", err)
	}

	return records
}

// GetRecordByID is a helper test function to get one staging record by ID.
func GetRecordByID(t *testing.T, queryable qrm.Queryable, id int64) *pgmodels.StagingRecord {
	t.Helper()

	var record pgmodels.StagingRecord
	err := table.StagingRecord.SELECT(table.StagingRecord.AllColumns).
		WHERE(table.StagingRecord.ID.EQ(pg.Int(id))).
		Query(queryable, &record)
	if err != nil {
		t.Fatal("can't get staging record", err)
	}

	return &record
}

// GetBatches is a helper test function to get all scrape batches.
func GetBatches(t *testing.T, queryable qrm.Queryable) []pgmodels.ScrapeBatch {
	t.Helper()

	batches := []pgmodels.ScrapeBatch{}
	err := table.ScrapeBatch.SELECT(table.ScrapeBatch.AllColumns).
		WHERE(table.ScrapeBatch.ID.IS_NOT_NULL()).
		ORDER_BY(table.ScrapeBatch.ID.ASC()).
		Query(queryable, &batches)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		t.Fatal("can't get scrape batches", err)
	}

	return batches
}

// CleanupData is a helper test function to remove all staging data.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.StagingRecord.DELETE().WHERE(table.StagingRecord.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete staging records data", err)
	}

	_, err = table.ScrapeBatch.DELETE().WHERE(table.ScrapeBatch.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete scrape batches data", err)
	}
}
