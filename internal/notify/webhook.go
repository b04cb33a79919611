package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dharmasatrya/flightadvisor/internal/ratelimit"
)

// webhookChannel keys the outbound rate limiter.
const webhookChannel = "webhook"

type WebhookConfig struct {
	URL        string
	AuthToken  string
	Timeout    time.Duration
	MaxRetries uint64
}

func DefaultWebhookConfig(url string) WebhookConfig {
	return WebhookConfig{
		URL:        url,
		Timeout:    5 * time.Second,
		MaxRetries: 3,
	}
}

// WebhookSink posts notifications to an HTTP webhook with exponential
// backoff and per-channel rate limiting. Each delivery carries an
// idempotency key so the receiver can drop duplicates from retries.
type WebhookSink struct {
	client  *resty.Client
	config  WebhookConfig
	limiter *ratelimit.ChannelLimiter
	log     zerolog.Logger
}

type webhookPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func NewWebhookSink(cfg WebhookConfig, limiter *ratelimit.ChannelLimiter, log zerolog.Logger) *WebhookSink {
	client := resty.New().SetTimeout(cfg.Timeout)
	if cfg.AuthToken != "" {
		client.SetAuthToken(cfg.AuthToken)
	}

	return &WebhookSink{
		client:  client,
		config:  cfg,
		limiter: limiter,
		log:     log,
	}
}

func (s *WebhookSink) Send(ctx context.Context, title, content string) error {
	if err := s.limiter.Wait(ctx, webhookChannel); err != nil {
		return err
	}

	idempotencyKey := uuid.NewString()

	operation := func() error {
		resp, err := s.client.R().
			SetContext(ctx).
			SetHeader("Idempotency-Key", idempotencyKey).
			SetBody(webhookPayload{Title: title, Content: content}).
			Post(s.config.URL)
		if err != nil {
			return err
		}
		if resp.IsError() {
			return fmt.Errorf("webhook returned %d", resp.StatusCode())
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.config.MaxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		s.log.Error().Err(err).Str("title", title).Msg("webhook delivery failed")
		return err
	}

	return nil
}
