package sl_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/Houeta/staff-roster/internal/lib/logger/sl"
	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer // buffer for log capturing
	testLogger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{}))

	errAttr := sl.Err(assert.AnError)
	testLogger.Warn("expected result:", errAttr)

	assert.Contains(t, logBuf.String(), assert.AnError.Error())
}

func TestSetup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env          string
		enabledLevel slog.Level
		mutedLevel   slog.Level
	}{
		{env: sl.EnvLocal, enabledLevel: slog.LevelDebug, mutedLevel: slog.LevelDebug - 1},
		{env: sl.EnvDev, enabledLevel: slog.LevelInfo, mutedLevel: slog.LevelDebug},
		{env: sl.EnvProd, enabledLevel: slog.LevelWarn, mutedLevel: slog.LevelInfo},
		{env: "unknown", enabledLevel: slog.LevelError, mutedLevel: slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()

			var logBuf bytes.Buffer
			logger := sl.Setup(tt.env, &logBuf)

			assert.True(t, logger.Enabled(t.Context(), tt.enabledLevel))
			assert.False(t, logger.Enabled(t.Context(), tt.mutedLevel))
		})
	}
}

func TestSetup_UnknownEnvWarnsOnce(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	_ = sl.Setup("", &logBuf)

	assert.Contains(t, logBuf.String(), "The env parameter was not specified")
}

func TestSetup_ProductionDropsTime(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	logger := sl.Setup(sl.EnvProd, &logBuf)
	logger.Warn("roster warning")

	assert.Contains(t, logBuf.String(), "roster warning")
	assert.NotContains(t, logBuf.String(), `"time"`)
}
