package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/models"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/rabbitmq"
	"github.com/smart-price-analytics/staging-ingester/pkg/v1/commander"
)

// Ingester lands scraped records in the staging store.
type Ingester interface {
	IngestRecords(ctx context.Context, jobID string, records []models.RawRecord) (*models.Batch, error)
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	rmq      *rabbitmq.RabbitMQ
	ingester Ingester
	logger   *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(rmq *rabbitmq.RabbitMQ, ingester Ingester, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		rmq:      rmq,
		ingester: ingester,
		logger:   logger,
	}
}

// Start starts consuming and handling ingest commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, func(ctx context.Context, message []byte) error {
		cmd, err := decodeMessage(message)
		if err != nil {
			return err
		}

		h.logger.Debug().
			Str("jobId", cmd.JobID).
			Int("records", len(cmd.Records)).
			Msg("ingestion started")

		batch, err := h.ingester.IngestRecords(ctx, cmd.JobID, cmd.Records)
		if err != nil {
			return fmt.Errorf("ingestion failed: %w", err)
		}

		h.logger.Debug().
			Str("jobId", cmd.JobID).
			Str("batchId", batch.BatchID).
			Int32("inserted", orZero(batch.InsertedRecords)).
			Int32("invalid", orZero(batch.InvalidRecords)).
			Int32("duplicates", orZero(batch.DuplicateRecords)).
			Int32("failed", orZero(batch.FailedRecords)).
			Msg("ingestion finished")

		return nil
	})
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

func decodeMessage(msg []byte) (*commander.IngestCommand, error) {
	var cmd commander.IngestCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode ingest command: %w", err)
	}

	return &cmd, err
}

func orZero(value *int32) int32 {
	if value == nil {
		return 0
	}
	return *value
}
