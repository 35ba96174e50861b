package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/feral-file/ff-mint-engine/internal/adapter"
	"github.com/feral-file/ff-mint-engine/internal/domain"
	"github.com/feral-file/ff-mint-engine/internal/logger"
	"github.com/feral-file/ff-mint-engine/internal/messaging"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL             string
	StreamName      string
	MaxReconnects   int
	ReconnectWait   time.Duration
	ConnectionName  string
	PublishMaxRetry uint64
}

type publisher struct {
	nc              adapter.NatsConn
	js              adapter.JetStream
	streamName      string
	json            adapter.JSON
	publishMaxRetry uint64
}

// NewPublisher creates a new NATS JetStream publisher
func NewPublisher(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &publisher{
		nc:              nc,
		js:              js,
		streamName:      cfg.StreamName,
		json:            jsonAdapter,
		publishMaxRetry: cfg.PublishMaxRetry,
	}, nil
}

// PublishMintCompleted publishes a completed batch issuance to NATS JetStream
func (p *publisher) PublishMintCompleted(ctx context.Context, event *domain.MintCompletedEvent) error {
	return p.publish(ctx, p.buildSubject(domain.EventTypeMintCompleted), event)
}

// PublishPauseChanged publishes a pause-state transition to NATS JetStream
func (p *publisher) PublishPauseChanged(ctx context.Context, event *domain.PauseChangedEvent) error {
	return p.publish(ctx, p.buildSubject(domain.EventTypePauseChanged), event)
}

// PublishConfigChanged publishes a configuration change to NATS JetStream
func (p *publisher) PublishConfigChanged(ctx context.Context, event *domain.ConfigChangedEvent) error {
	return p.publish(ctx, p.buildSubject(domain.EventTypeConfigChanged), event)
}

func (p *publisher) publish(ctx context.Context, subject string, event interface{}) error {
	logger.Debug("publishing NATS event", zap.String("subject", subject), zap.Any("event", event))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	operation := func() error {
		_, err := p.js.Publish(ctx, subject, data)
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), p.publishMaxRetry),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// buildSubject constructs the NATS subject based on the event type
func (p *publisher) buildSubject(eventType domain.EventType) string {
	// Format: {stream}.{event_type}
	// e.g., MINT_EVENTS.mint_completed, MINT_EVENTS.pause_changed
	return fmt.Sprintf("%s.%s", p.streamName, eventType)
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
