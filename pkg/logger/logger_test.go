package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogToolRunPassesThroughResult(t *testing.T) {
	log := NewLogger(logrus.InfoLevel)
	var buf bytes.Buffer
	log.SetOutput(&buf)

	err := log.LogToolRun("nmap", func() error { return nil })
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Tool run started")
	assert.Contains(t, out, "Tool run completed")
	assert.Contains(t, out, "nmap")
}

func TestLogToolRunReturnsFnError(t *testing.T) {
	log := NewLogger(logrus.InfoLevel)
	var buf bytes.Buffer
	log.SetOutput(&buf)

	err := log.LogToolRun("whois", func() error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, buf.String(), "Tool run failed")
}
