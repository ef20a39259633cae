package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"crustacean/tracker/internal/config"
	"crustacean/tracker/internal/domain"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// Notifier sends one message per run composed from that run's alerts.
// Delivery is fire-and-forget.
type Notifier interface {
	SendAlerts(ctx context.Context, alerts []domain.Alert) error
}

type ntfyNotifier struct {
	httpClient *resty.Client
	baseURL    string
	topic      string
}

// NewNtfyNotifier publishes alert messages to an ntfy topic.
func NewNtfyNotifier(cfg config.NotifyConfig) Notifier {
	httpClient := resty.New().
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetRetryCount(0)

	return &ntfyNotifier{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		topic:      cfg.Topic,
	}
}

func (n *ntfyNotifier) SendAlerts(ctx context.Context, alerts []domain.Alert) error {
	if len(alerts) == 0 {
		return nil
	}
	if n.topic == "" {
		log.Warn("No ntfy topic configured, skipping notification")
		return nil
	}

	url := fmt.Sprintf("%s/%s", n.baseURL, n.topic)

	resp, err := n.httpClient.R().
		SetContext(ctx).
		SetBody(ComposeMessage(alerts)).
		Post(url)

	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("notification rejected: %d %s", resp.StatusCode(), resp.Status())
	}

	log.Infof("Sent notification with %d alerts", len(alerts))
	return nil
}

// ComposeMessage joins the run's alerts into the single message body.
func ComposeMessage(alerts []domain.Alert) string {
	lines := make([]string, 0, len(alerts)+1)
	lines = append(lines, "[줄포상회 시세 알림 - 최저가 기준]")
	for _, alert := range alerts {
		lines = append(lines, alert.Message())
	}
	return strings.Join(lines, "\n")
}
