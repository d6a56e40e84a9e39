package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want zapcore.Level
	}{
		{name: "debug", in: "debug", want: zapcore.DebugLevel},
		{name: "upper case warn", in: "WARN", want: zapcore.WarnLevel},
		{name: "warning alias", in: "warning", want: zapcore.WarnLevel},
		{name: "error", in: "error", want: zapcore.ErrorLevel},
		{name: "unknown falls back to info", in: "verbose", want: zapcore.InfoLevel},
		{name: "empty falls back to info", in: "", want: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestInitLogger(t *testing.T) {
	for _, stage := range []string{"local", "dev", "prod"} {
		t.Run(stage, func(t *testing.T) {
			Log = nil
			InitLogger(stage)
			require.NotNil(t, Log)
			assert.NotPanics(t, func() { Info("logger ready") })
		})
	}
}

func TestInitLoggerWithConfig_Level(t *testing.T) {
	InitLoggerWithConfig(LoggerConfig{Level: "error", Stage: "local"})
	require.NotNil(t, Log)
	assert.False(t, Log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Log.Core().Enabled(zapcore.ErrorLevel))
}
