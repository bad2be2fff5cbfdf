package helpers

import (
	"errors"
	"testing"
	"time"

	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/models"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/models/modelstesting"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/storage"
	pgmodels "github.com/smart-price-analytics/staging-ingester/internal/platform/storage/gen/postgres/public/model"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/storage/gen/postgres/public/table"
	"github.com/stretchr/testify/require"
)

// WaitForBatchToBeFinished is blocking helper function, returns latest batch of jobID after it is finished.
func WaitForBatchToBeFinished(t *testing.T, queryable qrm.Queryable, jobID string) *models.Batch {
	t.Helper()

	for {
		<-time.After(time.Millisecond * 500)

		var batches []pgmodels.ScrapeBatch
		err := table.ScrapeBatch.SELECT(table.ScrapeBatch.AllColumns).
			WHERE(table.ScrapeBatch.JobID.EQ(pg.String(jobID))).
			ORDER_BY(table.ScrapeBatch.StartedAt.DESC()).
			LIMIT(1).
			Query(queryable, &batches)
		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			require.FailNow(t, "can't get scrape batch", err)
		}

		if len(batches) > 0 && batches[0].FinishedAt != nil {
			return fromDBBatch(&batches[0])
		}
	}
}

// GetBatchRecords is helper function for getting staging records of one batch in insertion order.
func GetBatchRecords(t *testing.T, queryable qrm.Queryable, batchID string) []models.StagingRecord {
	t.Helper()

	var dbRecords []pgmodels.StagingRecord
	err := table.StagingRecord.SELECT(table.StagingRecord.AllColumns).
		WHERE(table.StagingRecord.ScrapeBatchID.EQ(pg.String(batchID))).
		ORDER_BY(table.StagingRecord.ID.ASC()).
		Query(queryable, &dbRecords)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		require.FailNow(t, "can't get staging records", err)
	}

	records := make([]models.StagingRecord, len(dbRecords))
	for ix := range dbRecords {
		records[ix] = *storage.FromDBRecord(&dbRecords[ix])
	}

	return records
}

// GetRecordsByFingerprint is helper function for getting staging records sharing one content hash.
func GetRecordsByFingerprint(t *testing.T, queryable qrm.Queryable, contentHash string) []models.StagingRecord {
	t.Helper()

	var dbRecords []pgmodels.StagingRecord
	err := table.StagingRecord.SELECT(table.StagingRecord.AllColumns).
		WHERE(table.StagingRecord.ContentHash.EQ(pg.String(contentHash))).
		ORDER_BY(table.StagingRecord.ID.ASC()).
		Query(queryable, &dbRecords)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		require.FailNow(t, "can't get staging records", err)
	}

	records := make([]models.StagingRecord, len(dbRecords))
	for ix := range dbRecords {
		records[ix] = *storage.FromDBRecord(&dbRecords[ix])
	}

	return records
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

// GenerateTestData generates n valid raw records.
func GenerateTestData(t *testing.T, n int) []models.RawRecord {
	t.Helper()

	results := make([]models.RawRecord, n)

	for ix := 0; ix < n; ix++ {
		results[ix] = modelstesting.FakeRawRecord()
	}

	return results
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
