package certificate

import (
	"bytes"
	"crypto/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	now := time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)

	id, err := NewID(now, bytes.NewReader([]byte{0x0a, 0x1b, 0x2c, 0x3d, 0x4e}))
	require.NoError(t, err)
	assert.Equal(t, "CERT-20261018-0A1B2C3D4E", id)
	assert.Regexp(t, IDPattern, id)
}

func TestNewIDFormat(t *testing.T) {
	for i := 0; i < 200; i++ {
		id, err := NewID(time.Now(), rand.Reader)
		require.NoError(t, err)
		require.Regexp(t, `^CERT-\d{8}-[0-9A-F]{10}$`, id)
		require.True(t, ValidPathID(id))
	}
}

func TestNewIDShortRandom(t *testing.T) {
	_, err := NewID(time.Now(), bytes.NewReader([]byte{1, 2}))
	assert.Error(t, err)
}

func TestValidPathID(t *testing.T) {
	tests := map[string]bool{
		"CERT-20261018-0A1B2C3D4E": true,
		"ABC-123":                  true,
		"":                         false,
		"cert-20261018-0a1b2c3d4e": false,
		"CERT_1":                   false,
		"CERT-1/../2":              false,
	}

	for id, want := range tests {
		assert.Equal(t, want, ValidPathID(id), "ValidPathID(%q)", id)
	}
}
