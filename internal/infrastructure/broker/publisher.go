package broker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	brokerRepository "fotolio/internal/domain/repository/broker"
	"fotolio/pkg/logger"
)

// Publisher appends photo lifecycle events to a redis stream for downstream
// consumers (e.g. thumbnailers, audit trails) outside this service.
type Publisher struct {
	client  *Client
	timeout time.Duration
	log     *logger.Logger
}

func NewPublisher(client *Client, cfg PublisherConfig, log *logger.Logger) *Publisher {
	return &Publisher{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
		log:     log,
	}
}

func (p *Publisher) Publish(ctx context.Context, event brokerRepository.Event) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.client.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: p.client.stream,
		Values: map[string]any{
			"id":       event.ID,
			"kind":     event.Kind,
			"photo_id": event.PhotoID,
			"owner_id": event.OwnerID,
			"at":       event.At,
		},
	}).Err()
	if err != nil {
		p.log.Error("failed to publish event", "kind", event.Kind, "photo", event.PhotoID, "err", err)

		return err
	}

	return nil
}

// NoopPublisher satisfies the publisher contract when no broker is
// configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, brokerRepository.Event) error {
	return nil
}
