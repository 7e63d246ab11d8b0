package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "debug", "json")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithField("id", "a").Info("fetching application")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "a", entry["id"])
	assert.Equal(t, "fetching application", entry["msg"])
}

func TestNewLogger_RejectsUnknownLevelAndFormat(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "loud", "text")
	assert.Error(t, err)

	_, err = NewLogger(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}

func TestSetupTracing_DisabledIsNoop(t *testing.T) {
	for _, tc := range []struct {
		endpoint string
		enabled  bool
	}{
		{"", true},
		{"http://collector:4318", false},
	} {
		shutdown, err := SetupTracing(context.Background(), "catalog", tc.endpoint, tc.enabled)
		require.NoError(t, err)
		require.NotNil(t, shutdown)
		assert.NoError(t, shutdown(context.Background()))
	}
}
