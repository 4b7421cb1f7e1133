package consumer

import (
	"context"
	"encoding/json"

	"go-dispatch/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeJobLifecycle drains the job lifecycle topic. Today the only sink is
// the log; downstream notification fan-out hangs off this loop when it lands.
func ConsumeJobLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.job_lifecycle")
	log.Info("job lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("job lifecycle consumer stopped")
				return
			}
			log.Error("fetch job lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.JobAcceptedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode job_accepted event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		log.Info("job accepted",
			zap.String("request_id", event.RequestID),
			zap.String("tenant_id", event.TenantID),
			zap.String("platform", event.Platform),
			zap.Time("accepted_at", event.AcceptedAt),
		)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit job lifecycle message failed", zap.Error(err))
		}
	}
}
