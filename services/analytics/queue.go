package analytics

import (
	"encoding/json"

	"clearbook/config"
	"clearbook/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeAnalyticsEvent = "analytics:event"

// QueuePublisher enqueues events onto the Redis-backed delivery queue.
// Delivery policy is bounded best-effort: no retries, and an enqueue
// failure drops the event with at most a log line.
type QueuePublisher struct {
	client *asynq.Client
	logger *zap.Logger
}

func NewQueuePublisher(logger *zap.Logger) *QueuePublisher {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAnalyticsQueueDB,
	})
	return &QueuePublisher{client: client, logger: logger}
}

// Publish enqueues one event. Failures are swallowed.
func (p *QueuePublisher) Publish(event models.AnalyticsEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Debug("analytics: failed to marshal event", zap.Error(err))
		return
	}
	task := asynq.NewTask(TypeAnalyticsEvent, payload)
	if _, err := p.client.Enqueue(task, asynq.MaxRetry(0)); err != nil {
		p.logger.Debug("analytics: failed to enqueue event", zap.Error(err))
	}
}

// Close releases the underlying queue client.
func (p *QueuePublisher) Close() error {
	return p.client.Close()
}
