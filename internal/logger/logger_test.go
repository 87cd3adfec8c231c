package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureInfo(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := InfoLogger
	InfoLogger = log.New(&buf, "INFO: ", 0)
	t.Cleanup(func() { InfoLogger = old })
	return &buf
}

func captureError(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := ErrorLogger
	ErrorLogger = log.New(&buf, "ERROR: ", 0)
	t.Cleanup(func() { ErrorLogger = old })
	return &buf
}

func TestInit(t *testing.T) {
	Init()
	require.NotNil(t, InfoLogger)
	require.NotNil(t, ErrorLogger)
	require.NotNil(t, DebugLogger)
}

func TestInfoWithKeyValues(t *testing.T) {
	Init()
	buf := captureInfo(t)

	Info("booking created", "booking_id", "abc", "hour", 19)

	out := buf.String()
	assert.Contains(t, out, "booking created")
	assert.Contains(t, out, "booking_id=abc")
	assert.Contains(t, out, "hour=19")
}

func TestInfoWithoutKeyValues(t *testing.T) {
	Init()
	buf := captureInfo(t)

	Info("server started")

	assert.Contains(t, buf.String(), "server started")
}

func TestInfof(t *testing.T) {
	Init()
	buf := captureInfo(t)

	Infof("listening on port %d", 8080)

	assert.Contains(t, buf.String(), "listening on port 8080")
}

func TestErrorWithKeyValues(t *testing.T) {
	Init()
	buf := captureError(t)

	Error("query failed", "err", "connection refused")

	out := buf.String()
	assert.Contains(t, out, "query failed")
	assert.Contains(t, out, "err=connection refused")
}

func TestKVStringOddArguments(t *testing.T) {
	out := kvString([]interface{}{"key_only"})
	assert.Equal(t, " key_only", out)
}

func TestKVStringEmpty(t *testing.T) {
	assert.Equal(t, "", kvString(nil))
}
