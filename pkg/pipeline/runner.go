package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-logr/logr"
)

// Runner consumes the topics until the context is cancelled or the consumer group is closed.
// Every session ends on a rebalance, the runner then joins the group again.
type Runner[Payload any] struct {
	consumer sarama.ConsumerGroup
	topics   []string

	handler JSONHandler[Payload]

	logger *logr.Logger
}

func NewRunner[Payload any](consumer sarama.ConsumerGroup, topics []string, processing Processing[Payload], errorProcessing ErrorProcessing) Runner[Payload] {
	handler := NewJSONHandler(processing, errorProcessing)

	return Runner[Payload]{
		consumer: consumer,
		topics:   topics,
		handler:  handler,
	}
}

func (r Runner[Payload]) WithLogger(logger logr.Logger) Runner[Payload] {
	logger = logger.WithValues("topics", r.topics)

	r.logger = &logger
	r.handler = r.handler.WithLogger(logger)

	return r
}

func (r Runner[Payload]) Start(ctx context.Context) error {
	go func() {
		for err := range r.consumer.Errors() {
			r.logError(err, "Consumer group error")
		}
	}()

	for session := 1; ; session++ {
		r.logInfo(1, "Joining consumer group", "session", session)

		err := r.consumer.Consume(ctx, r.topics, r.handler)
		if errors.Is(err, sarama.ErrClosedConsumerGroup) {
			r.logInfo(0, "Consumer group closed")

			return nil
		}

		if err != nil {
			r.logError(err, "Consumer failed", "session", session)

			return fmt.Errorf("consumer failed: %w", err)
		}

		// If context is cancelled, no need to keep looping
		err = ctx.Err()
		if err != nil {
			r.logInfo(0, "Context expired", "sessions", session)

			return err
		}

		r.logInfo(1, "Consumer session ended, rejoining", "session", session)
	}
}

func (r Runner[Payload]) logInfo(level int, msg string, keysAndValues ...any) {
	if r.logger == nil {
		return
	}

	r.logger.V(level).Info(msg, keysAndValues...)
}

func (r Runner[Payload]) logError(err error, msg string, keysAndValues ...any) {
	if r.logger == nil {
		return
	}

	r.logger.Error(err, msg, keysAndValues...)
}
