package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	LoggerFromContext(ctx).Info().Msg("from context")
	assert.Contains(t, buf.String(), "from context")

	assert.NotNil(t, LoggerFromContext(context.Background()))
}

func TestSetGlobalLogger_Level(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)
	defer func(prev *zerolog.Logger) { zerolog.DefaultContextLogger = prev }(zerolog.DefaultContextLogger)

	SetGlobalLogger("warn", false)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	SetGlobalLogger("bogus", true)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestInitTracer(t *testing.T) {
	var buf bytes.Buffer
	tp, err := InitTracer("mailto-test", &buf)
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "unit")
	span.End()

	require.NoError(t, tp.Shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"Name": "unit"`)
}
