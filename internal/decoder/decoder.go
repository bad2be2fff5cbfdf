// Package decoder decodes newline-delimited JSON streams of scraped product
// observations, one record per line.
package decoder

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/smart-price-analytics/staging-ingester/internal/platform/models"
)

// maxLineBytes bounds a single observation line. Raw payload snapshots are
// embedded in the line, so the limit is generous.
const maxLineBytes = 4 * 1024 * 1024

// Decoder decodes NDJSON streams into raw records.
type Decoder struct{}

// Decode reads records from stream line by line and sends each record with its
// decoding error into output. Blank lines are skipped. A malformed line
// produces a result carrying the error, it does not abort the stream.
// Records without an explicit raw payload get the raw line as their snapshot.
func (d Decoder) Decode(ctx context.Context, stream io.Reader, output chan<- models.DecodingResult) error {
	scanner := bufio.NewScanner(stream)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var record models.RawRecord
		err := json.Unmarshal(line, &record)
		if record.RawPayload == nil {
			record.RawPayload = bytes.Clone(line)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case output <- models.DecodingResult{
			Record: record,
			Error:  err,
		}:
		}
	}

	return scanner.Err()
}
