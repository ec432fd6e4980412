package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/friendly-eats/pkg/kafka"
)

type reviewAdded func(ctx context.Context, event kafka.ReviewEvent) error

type Consumer struct {
	handler reviewAdded
	log     *zap.Logger
	ready   chan struct{}
	once    sync.Once
}

func NewConsumer(handler reviewAdded, log *zap.Logger) *Consumer {
	return &Consumer{
		handler: handler,
		log:     log.Named("consumer"),
		ready:   make(chan struct{}),
	}
}

// Ready is closed once the first group session is set up.
func (c *Consumer) Ready() <-chan struct{} {
	return c.ready
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	c.once.Do(func() { close(c.ready) })
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				c.log.Warn("message channel was closed")
				return nil
			}
			var event kafka.ReviewEvent
			if err := json.Unmarshal(message.Value, &event); err != nil {
				c.log.Error("unmarshal review event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := c.handler(session.Context(), event); err != nil {
				c.log.Error("consumer.handler", zap.String("restaurantId", event.RestaurantID), zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			c.log.Debug("message claimed",
				zap.String("restaurantId", event.RestaurantID),
				zap.Time("timestamp", message.Timestamp),
				zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
