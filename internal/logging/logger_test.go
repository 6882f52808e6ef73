package logging_test

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/sufftree/internal/logging"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"DEBUG", log.DebugLevel},
		{"bogus", log.InfoLevel},
		{"", log.InfoLevel},
	}

	for _, tt := range tests {
		logger := logging.New(tt.level)
		assert.Equal(t, tt.want, logger.GetLevel(), "level %q", tt.level)
	}
}

func TestDefault_NotNil(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, logging.Default())
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	//nolint:staticcheck // exercising the nil-context fallback on purpose
	assert.NotNil(t, logging.FromContext(nil))
	assert.NotNil(t, logging.FromContext(context.Background()))

	custom := logging.New("debug")
	ctx := logging.WithLogger(context.Background(), custom)
	assert.Same(t, custom, logging.FromContext(ctx))
}
