package logger_test

import (
	"bytes"
	"ippcode/internal/logger"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestInitLevels(t *testing.T) {
	var buf bytes.Buffer

	logger.Init(&buf, false, true)
	log.Debug("hidden")
	log.Warn("shown", "line", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "PARSE")
	assert.Contains(t, buf.String(), "line=3")

	buf.Reset()
	logger.Init(&buf, true, true)
	log.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}
