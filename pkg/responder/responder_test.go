package responder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindcare/backend/pkg/rules"
)

func TestGenerateReportsUnavailableOnCanceledContext(t *testing.T) {
	g := NewOpenAIGenerator(OpenAIConfig{
		APIKey: "test-key",
		Model:  "gpt-4o-mini",
	}, rules.Default())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGenerateAppliesConfiguredTimeout(t *testing.T) {
	g := NewOpenAIGenerator(OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o-mini",
		Timeout: time.Nanosecond,
	}, rules.Default())

	// The deadline expires before the request can leave; a hung upstream
	// must surface as a failure the caller can fall back from.
	start := time.Now()
	_, err := g.Generate(context.Background(), "hello")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}
