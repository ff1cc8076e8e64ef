package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func TestLoggerConfig_LogLevel(t *testing.T) {
	tests := map[string]logger.Level{
		"debug": logger.DebugLevel,
		"warn":  logger.WarnLevel,
		"error": logger.ErrorLevel,
		"info":  logger.InfoLevel,
		"":      logger.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, LoggerConfig{Level: in}.LogLevel(), in)
	}
}

func TestBookingConfig_Location(t *testing.T) {
	loc, err := BookingConfig{TimeZone: "Asia/Makassar"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Makassar", loc.String())

	_, err = BookingConfig{TimeZone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}
