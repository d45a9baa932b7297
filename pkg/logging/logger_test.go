package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("Default level = %s, want info", cfg.Level)
	}
	if cfg.Pretty {
		t.Error("Default pretty should be false")
	}
}

func TestSetup_WritesToConfiguredOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := Setup(Config{
		Level:  LevelInfo,
		Pretty: false,
		Output: buf,
	})

	logger.Info().Msg("lexicon viewer starting")

	if !strings.Contains(buf.String(), "lexicon viewer starting") {
		t.Errorf("Expected output to contain the message, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    LogLevel
		expected zerolog.Level
	}{
		{LevelDebug, zerolog.DebugLevel},
		{LevelInfo, zerolog.InfoLevel},
		{LevelWarn, zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{LevelError, zerolog.ErrorLevel},
		{"invalid", zerolog.InfoLevel}, // defaults to info
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			if result := parseLevel(tt.input); result != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNewLogger_ComponentField(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{
		Level:  LevelInfo,
		Output: buf,
	})

	logger := NewLogger("viewer")
	logger.Info().Msg("page loaded")

	output := buf.String()
	if !strings.Contains(output, "viewer") {
		t.Errorf("Expected output to contain the component name, got %q", output)
	}
	if !strings.Contains(output, "page loaded") {
		t.Errorf("Expected output to contain the message, got %q", output)
	}
}

func TestLogLevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{
		Level:  LevelWarn,
		Output: buf,
	})

	logger := NewLogger("client")

	logger.Debug().Msg("cache miss")
	logger.Info().Msg("fetched page")
	logger.Warn().Msg("page load failed")

	output := buf.String()

	if strings.Contains(output, "cache miss") || strings.Contains(output, "fetched page") {
		t.Error("Messages below warn level should be filtered out")
	}
	if !strings.Contains(output, "page load failed") {
		t.Error("Warn message should be included at warn level")
	}
}
