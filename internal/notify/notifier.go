package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Notifier delivers lifecycle events to an external channel. Delivery
// is best-effort; callers fire it asynchronously and never fail an
// operation on a notification error.
type Notifier interface {
	NotifyRequirement(ctx context.Context, e RequirementEvent) error
}

// NoopNotifier is used when no webhook is configured.
type NoopNotifier struct{}

func (NoopNotifier) NotifyRequirement(context.Context, RequirementEvent) error { return nil }

// WebhookNotifier POSTs event JSON to a configured URL.
type WebhookNotifier struct {
	url        string
	httpClient *http.Client
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *WebhookNotifier) NotifyRequirement(ctx context.Context, e RequirementEvent) error {
	payload, _ := json.Marshal(e)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		log.Printf("[notify] webhook delivery failed: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		err := fmt.Errorf("webhook returned status %d", resp.StatusCode)
		log.Printf("[notify] %v", err)
		return err
	}
	return nil
}

var _ Notifier = NoopNotifier{}
var _ Notifier = (*WebhookNotifier)(nil)
