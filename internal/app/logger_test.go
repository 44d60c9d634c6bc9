//go:build !integration

package app

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		logPretty string
		wantLevel zerolog.Level
	}{
		{
			name:      "defaults to info when LOG_LEVEL is unset",
			logLevel:  "",
			logPretty: "",
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:      "honours debug level",
			logLevel:  "debug",
			logPretty: "",
			wantLevel: zerolog.DebugLevel,
		},
		{
			name:      "pretty output does not change the level",
			logLevel:  "info",
			logPretty: "true",
			wantLevel: zerolog.InfoLevel,
		},
		{
			name:      "warn level with pretty disabled",
			logLevel:  "warn",
			logPretty: "false",
			wantLevel: zerolog.WarnLevel,
		},
		{
			name:      "error level",
			logLevel:  "error",
			logPretty: "",
			wantLevel: zerolog.ErrorLevel,
		},
		{
			name:      "unknown level falls back to info",
			logLevel:  "shouting",
			logPretty: "",
			wantLevel: zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// t.Setenv automatically cleans up after the test
			if tt.logLevel != "" {
				t.Setenv("LOG_LEVEL", tt.logLevel)
			}
			if tt.logPretty != "" {
				t.Setenv("LOG_PRETTY", tt.logPretty)
			}

			assert.NotPanics(t, func() {
				InitializeLogger()
			})
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}
