package commander_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/models"
	"github.com/smart-price-analytics/staging-ingester/internal/platform/models/modelstesting"
	"github.com/smart-price-analytics/staging-ingester/pkg/v1/commander"
	"github.com/smart-price-analytics/staging-ingester/pkg/v1/commander/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitSendIngestCommand(t *testing.T) {
	jobID := faker.Word()
	records := []models.RawRecord{modelstesting.FakeRawRecord(), modelstesting.FakeRawRecord()}

	body, err := json.Marshal(commander.IngestCommand{JobID: jobID, Records: records})
	require.NoError(t, err)

	tests := map[string]struct {
		senderError error
		wantErr     error
	}{
		"ok": {},
		"sender error": {
			senderError: assert.AnError,
			wantErr:     assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sender := mocks.NewSender(t)
			sender.On("Send", mock.Anything, body).Return(tt.senderError)

			cmndr := commander.NewIngestCommander(sender)
			err := cmndr.SendIngestCommand(context.TODO(), jobID, records)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
		})
	}
}
