// Package notifier sends a heads-up email to the sales team when a new
// inquiry arrives. Delivery is best effort: ingestion never waits on it and
// never fails because of it.
package notifier

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/annotation"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/config"
	"github.com/carelinkhealthineers/Carelink-Healthineers-sub000/internal/model"
)

const maxAttempts = 3

// Notifier sends inquiry notifications via the Gmail API.
type Notifier struct {
	service *gmail.Service
	cfg     *config.NotifyConfig
}

// New creates a Gmail-backed notifier from the notify configuration.
func New(cfg *config.NotifyConfig) (*Notifier, error) {
	ctx := context.Background()

	oauth2Config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Scopes:       []string{gmail.GmailSendScope},
		Endpoint:     google.Endpoint,
	}

	token := &oauth2.Token{
		RefreshToken: cfg.RefreshToken,
	}
	tokenSource := oauth2Config.TokenSource(ctx, token)

	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	return &Notifier{service: service, cfg: cfg}, nil
}

// NotifyNewInquiry sends the sales team a summary of a freshly created
// inquiry. Rate-limit errors are retried with backoff; other errors are not.
func (n *Notifier) NotifyNewInquiry(ctx context.Context, record model.Inquiry) error {
	raw := composeNotification(n.cfg.FromEmail, n.cfg.SalesEmail, record)
	message := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}

	attempts, err := sendWithRetry(ctx, func() error {
		_, err := n.service.Users.Messages.Send(n.cfg.FromEmail, message).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to send inquiry notification after %d attempt(s): %w", attempts, err)
	}

	logrus.Infof("Sent inquiry notification for %s to %s", record.ID, n.cfg.SalesEmail)
	return nil
}

// sendWithRetry invokes send until it succeeds, retrying only rate-limit
// errors with quadratic backoff. It returns the number of attempts made.
func sendWithRetry(ctx context.Context, send func() error) (int, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := send()
		if err == nil {
			return attempt, nil
		}

		lastErr = err
		logrus.Warnf("Failed to send inquiry notification (attempt %d/%d): %v", attempt, maxAttempts, err)

		if !isRateLimited(err) {
			return attempt, lastErr
		}
		if attempt < maxAttempts {
			waitTime := time.Duration(attempt*attempt) * time.Second
			logrus.Infof("Rate limited, waiting %v before retry", waitTime)
			select {
			case <-time.After(waitTime):
			case <-ctx.Done():
				return attempt, ctx.Err()
			}
		}
	}
	return maxAttempts, lastErr
}

func isRateLimited(err error) bool {
	return strings.Contains(err.Error(), "quota") || strings.Contains(err.Error(), "rate")
}

// composeNotification builds the raw RFC 2822 message for one inquiry. The
// body leads with the derived annotation so sales can triage from the email
// alone.
func composeNotification(from, to string, record model.Inquiry) string {
	a := annotation.Extract(record.Message)

	product := "(none)"
	if a.TargetProduct != nil {
		product = *a.TargetProduct
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s\r\n", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString(fmt.Sprintf("Subject: New inquiry from %s (%s)\r\n", record.Name, record.Company))
	b.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z)))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 7bit\r\n")
	b.WriteString(fmt.Sprintf("X-Inquiry-ID: %s\r\n", record.ID))
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("Name:     %s\r\n", record.Name))
	b.WriteString(fmt.Sprintf("Email:    %s\r\n", record.Email))
	b.WriteString(fmt.Sprintf("Company:  %s\r\n", record.Company))
	b.WriteString(fmt.Sprintf("Product:  %s\r\n", product))
	b.WriteString(fmt.Sprintf("Interest: %s\r\n", a.Interest))
	b.WriteString("\r\n")
	b.WriteString(a.CleanMessage)
	b.WriteString("\r\n")

	return b.String()
}

// TestConnection verifies the Gmail API credentials.
func (n *Notifier) TestConnection(ctx context.Context) error {
	_, err := n.service.Users.GetProfile(n.cfg.FromEmail).Do()
	if err != nil {
		return fmt.Errorf("failed to test Gmail API connection: %w", err)
	}
	return nil
}
