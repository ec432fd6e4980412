package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const (
	ReviewsTopic         = "friendlyeats.reviews"
	SummaryConsumerGroup = "friendlyeats.summary"
)

type Config struct {
	Addrs  []string `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
	Enable bool     `yaml:"enable" envconfig:"KAFKA_ENABLE"`
}

// ReviewEvent is published once a review has been committed.
type ReviewEvent struct {
	RestaurantID string    `json:"restaurantId"`
	RatingID     string    `json:"ratingId"`
	UserID       string    `json:"userId"`
	Rating       float64   `json:"rating"`
	NumRatings   int       `json:"numRatings"`
	AvgRating    float64   `json:"avgRating"`
	Timestamp    time.Time `json:"timestamp"`
}

func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Producer.RequiredAcks = sarama.WaitForLocal
	defaultCfg.Producer.Return.Successes = false
	defaultCfg.Producer.Return.Errors = true

	return sarama.NewAsyncProducer(cfg.Addrs, defaultCfg)
}

// DrainErrors logs producer errors until the producer is closed.
func DrainErrors(producer sarama.AsyncProducer, log *zap.Logger) {
	for err := range producer.Errors() {
		log.Error("kafka produce", zap.String("topic", err.Msg.Topic), zap.Error(err.Err))
	}
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the group session loop until ctx is done.
func Consume(ctx context.Context, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, log *zap.Logger, topics ...string) {
	for {
		if err := group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return
			}
			log.Error("kafka consume", zap.Error(err))
		}
		if ctx.Err() != nil {
			return
		}
	}
}
