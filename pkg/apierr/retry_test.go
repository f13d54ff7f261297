package apierr

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldRetry(t *testing.T) {
	assert.True(t, ShouldRetry(Classify(429, nil, "")))
	assert.True(t, ShouldRetry(Classify(503, nil, "")))
	assert.False(t, ShouldRetry(Classify(400, nil, "")))
	assert.False(t, ShouldRetry(Classify(401, nil, "")))
	assert.False(t, ShouldRetry(errors.New("network down")))
	assert.False(t, ShouldRetry(nil))
}

func TestRetryWithBackoff_SucceedsFirstAttempt(t *testing.T) {
	attempts := 0

	result, err := RetryWithBackoff(context.Background(), RetryConfig{MaxRetries: 3},
		func() (string, error) {
			attempts++
			return "ok", nil
		}, ShouldRetry)

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, attempts)
}

func TestRetryWithBackoff_RetriesRetryableThenSucceeds(t *testing.T) {
	attempts := 0

	result, err := RetryWithBackoff(context.Background(),
		RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond},
		func() (string, error) {
			attempts++
			if attempts < 3 {
				return "", Classify(503, nil, "")
			}
			return "ok", nil
		}, ShouldRetry)

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, attempts)
}

func TestRetryWithBackoff_StopsOnNonRetryable(t *testing.T) {
	attempts := 0

	_, err := RetryWithBackoff(context.Background(),
		RetryConfig{MaxRetries: 5, BaseDelay: time.Millisecond},
		func() (string, error) {
			attempts++
			return "", Classify(400, nil, "")
		}, ShouldRetry)

	require.Error(t, err)
	assert.Equal(t, 1, attempts)

	var classified *ClassifiedError
	require.ErrorAs(t, err, &classified)
	assert.Equal(t, CategoryClientRequest, classified.Category)
}

func TestRetryWithBackoff_ExhaustsRetries(t *testing.T) {
	attempts := 0

	_, err := RetryWithBackoff(context.Background(),
		RetryConfig{MaxRetries: 2, BaseDelay: time.Millisecond},
		func() (string, error) {
			attempts++
			return "", Classify(429, nil, "")
		}, ShouldRetry)

	require.Error(t, err)
	assert.Equal(t, 3, attempts)
	assert.Contains(t, err.Error(), "max retries")

	var classified *ClassifiedError
	assert.ErrorAs(t, err, &classified)
}

func TestRetryWithBackoff_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RetryWithBackoff(ctx,
		RetryConfig{MaxRetries: 3, BaseDelay: time.Hour},
		func() (string, error) {
			return "", Classify(503, nil, "")
		}, ShouldRetry)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetryConfig_Normalize(t *testing.T) {
	cfg := RetryConfig{MaxRetries: -1, BaseDelay: -time.Second, MaxDelay: -time.Second}
	cfg.normalize()

	assert.Equal(t, 0, cfg.MaxRetries)
	assert.Equal(t, time.Millisecond, cfg.BaseDelay)
	assert.Equal(t, time.Millisecond, cfg.MaxDelay)
}
