package producer

import (
	"context"
	"encoding/json"

	"go-dispatch/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// JobEventPublisher writes job lifecycle events to the broker. It implements
// events.Publisher.
type JobEventPublisher struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

func NewJobEventPublisher(brokers []string, logger ...*zap.Logger) *JobEventPublisher {
	l := zap.L().Named("kafka.producer.job_lifecycle")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.producer.job_lifecycle")
	}

	return &JobEventPublisher{
		writer: &kafkago.Writer{
			Addr:     kafkago.TCP(brokers...),
			Topic:    events.JobLifecycleTopic,
			Balancer: &kafkago.LeastBytes{},
		},
		logger: l,
	}
}

func (p *JobEventPublisher) PublishJobAccepted(ctx context.Context, event events.JobAcceptedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafkago.Message{
		Key:   []byte(event.RequestID),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return err
	}

	p.logger.Debug("job_accepted event published",
		zap.String("request_id", event.RequestID),
	)
	return nil
}

func (p *JobEventPublisher) Close() error {
	return p.writer.Close()
}
