package fingerprint_test

import (
	"testing"

	"github.com/smart-price-analytics/staging-ingester/internal/fingerprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitHash(t *testing.T) {
	payload := []byte(`{"productName":"Pixel 8","currentPrice":59999}`)

	first := fingerprint.Hash(payload)
	second := fingerprint.Hash(payload)

	require.Len(t, first, 64, "should return fixed-length hex digest")
	assert.Equal(t, first, second, "identical payload bytes should produce identical hashes")
}

func TestUnitHashDistinguishesSerializations(t *testing.T) {
	// Semantically identical, serialized differently - treated as distinct.
	compact := []byte(`{"a":1}`)
	spaced := []byte(`{"a": 1}`)

	assert.NotEqual(t, fingerprint.Hash(compact), fingerprint.Hash(spaced),
		"whitespace differences should produce different hashes",
	)
}

func TestUnitHashEmptyPayload(t *testing.T) {
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		fingerprint.Hash(nil),
		"empty payload should hash to the well-known empty digest",
	)
}

func TestUnitSetObserve(t *testing.T) {
	set := fingerprint.NewSet()

	hash := fingerprint.Hash([]byte("payload"))
	other := fingerprint.Hash([]byte("other payload"))

	assert.False(t, set.Observe(hash), "first observation should not be a duplicate")
	assert.True(t, set.Observe(hash), "second observation should be a duplicate")
	assert.False(t, set.Observe(other), "different hash should not be a duplicate")
	assert.Equal(t, 2, set.Len(), "should count distinct fingerprints")
}
