package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/model"
)

func TestComposeNotification(t *testing.T) {
	record := model.Inquiry{
		ID:      "abc-123",
		Name:    "Jordan Lee",
		Email:   "jordan@acme.example",
		Company: "Acme Clinics",
		Message: "[Product: DRX-900] - Need urgent quote [Interest: Imaging]",
	}

	raw := composeNotification("noreply@example.com", "sales@example.com", record)

	assert.Contains(t, raw, "From: noreply@example.com\r\n")
	assert.Contains(t, raw, "To: sales@example.com\r\n")
	assert.Contains(t, raw, "Subject: New inquiry from Jordan Lee (Acme Clinics)\r\n")
	assert.Contains(t, raw, "X-Inquiry-ID: abc-123\r\n")
	assert.Contains(t, raw, "Product:  DRX-900\r\n")
	assert.Contains(t, raw, "Interest: Imaging\r\n")
	assert.Contains(t, raw, "Need urgent quote")
	// The raw tags should not leak into the body text.
	assert.NotContains(t, raw, "[Product:")
}

func TestComposeNotificationNoTags(t *testing.T) {
	record := model.Inquiry{
		ID:      "def-456",
		Name:    "Sam",
		Email:   "sam@example.com",
		Company: "Other Corp",
		Message: "just saying hello",
	}

	raw := composeNotification("noreply@example.com", "sales@example.com", record)

	assert.Contains(t, raw, "Product:  (none)\r\n")
	assert.Contains(t, raw, "Interest: General\r\n")
	assert.Contains(t, raw, "just saying hello")
}

func TestSendWithRetrySucceedsFirstTry(t *testing.T) {
	attempts, err := sendWithRetry(context.Background(), func() error {
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestSendWithRetryNonRetryableStopsAfterOneAttempt(t *testing.T) {
	calls := 0
	attempts, err := sendWithRetry(context.Background(), func() error {
		calls++
		return errors.New("invalid grant")
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts, "a non-retryable error must report the real attempt count")
	assert.Equal(t, 1, calls)
}

func TestSendWithRetryRateLimitHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	attempts, err := sendWithRetry(ctx, func() error {
		calls++
		return errors.New("rate limit exceeded")
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, calls)
}
