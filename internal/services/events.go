package services

import (
	"context"
	"sync"
	"time"

	rabbit "storefront-service/internal/infra/rabbitmq"

	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

// EventDispatcher publishes domain events off the request path. Failures are
// logged and never reach the caller.
type EventDispatcher struct {
	publisher rabbit.PublisherInterface
	logger    *zap.Logger
	wg        sync.WaitGroup
}

func NewEventDispatcher(pub rabbit.PublisherInterface, logger *zap.Logger) *EventDispatcher {
	return &EventDispatcher{publisher: pub, logger: logger}
}

func (d *EventDispatcher) Dispatch(routingKey string, event any) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := d.publisher.Publish(ctx, routingKey, event); err != nil {
			d.logger.Warn("failed to publish event", zap.String("routing_key", routingKey), zap.Error(err))
			return
		}
		d.logger.Debug("published event", zap.String("routing_key", routingKey))
	}()
}

// Wait blocks until every dispatched event has been handed to the publisher.
func (d *EventDispatcher) Wait() {
	d.wg.Wait()
}
