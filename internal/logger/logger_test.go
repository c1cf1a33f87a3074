package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	std := logrus.StandardLogger()
	prevOut, prevFormatter, prevLevel := std.Out, std.Formatter, std.Level
	std.SetOutput(buf)
	std.SetFormatter(&logrus.JSONFormatter{})
	std.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetFormatter(prevFormatter)
		std.SetLevel(prevLevel)
	})
	return buf
}

func TestWithContext(t *testing.T) {
	t.Run("voter and request id are attached", func(t *testing.T) {
		buf := captureOutput(t)
		ctx := context.WithValue(context.Background(), ContextKeyRegNo, "S13/2019/001") //nolint:staticcheck
		ctx = context.WithValue(ctx, ContextKeyRequestID, "req-1")                      //nolint:staticcheck

		WithContext(ctx).Info("ballot submitted")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "S13/2019/001", entry["voter"])
		assert.Equal(t, "req-1", entry["request_id"])
		assert.Equal(t, "ballot submitted", entry["msg"])
	})

	t.Run("anonymous when no voter in context", func(t *testing.T) {
		buf := captureOutput(t)

		WithContext(context.Background()).WithField("position", "president").Warn("no candidates")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "anonymous", entry["voter"])
		assert.Equal(t, "president", entry["position"])
		_, hasRequestID := entry["request_id"]
		assert.False(t, hasRequestID)
	})
}

func TestSetup(t *testing.T) {
	std := logrus.StandardLogger()
	prevOut, prevFormatter, prevLevel := std.Out, std.Formatter, std.Level
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetFormatter(prevFormatter)
		std.SetLevel(prevLevel)
	})

	t.Run("known level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		setup(buf, "warn")

		assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
		New().Info("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		setup(buf, "verbose")

		assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "verbose", entry["log_level"])
	})
}

func TestWithError(t *testing.T) {
	buf := captureOutput(t)

	New().WithVoter("S13/2019/002").WithError(assert.AnError).Error("verification failed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "S13/2019/002", entry["voter"])
	assert.Equal(t, assert.AnError.Error(), entry["error"])
}
