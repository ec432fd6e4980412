package events

import (
	"encoding/json"

	"github.com/IBM/sarama"

	"github.com/Astemirdum/friendly-eats/pkg/kafka"
)

type Publisher interface {
	PublishReviewAdded(ev kafka.ReviewEvent) error
}

type reviewLog struct {
	producer sarama.AsyncProducer
	topic    string
}

// NewPublisher returns a no-op publisher when producer is nil.
func NewPublisher(producer sarama.AsyncProducer, topic string) Publisher {
	if producer == nil {
		return nop{}
	}
	return &reviewLog{
		producer: producer,
		topic:    topic,
	}
}

func (l *reviewLog) PublishReviewAdded(ev kafka.ReviewEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: l.topic,
		Key:   sarama.StringEncoder(ev.RestaurantID),
		Value: sarama.ByteEncoder(data),
	}
	l.producer.Input() <- msg
	return nil
}

type nop struct{}

func (nop) PublishReviewAdded(kafka.ReviewEvent) error { return nil }
