package commander

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/smart-price-analytics/staging-ingester/internal/platform/models"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// IngestCommander sends ingest commands.
type IngestCommander struct {
	sender Sender
}

// NewIngestCommander returns new IngestCommander using provided sender for sending messages.
func NewIngestCommander(sender Sender) IngestCommander {
	return IngestCommander{
		sender: sender,
	}
}

// SendIngestCommand sends ingest command with provided jobID and records.
func (c IngestCommander) SendIngestCommand(ctx context.Context, jobID string, records []models.RawRecord) error {
	cmd := IngestCommand{
		JobID:   jobID,
		Records: records,
	}

	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal ingest command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
