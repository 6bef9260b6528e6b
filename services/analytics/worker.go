package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"clearbook/config"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitDeliveryWorker runs the analytics delivery worker in the background.
// Each task is one event POSTed to the configured beacon endpoint; delivery
// failures are logged and the event is dropped (MaxRetry is 0 at enqueue).
func InitDeliveryWorker(logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisAnalyticsQueueDB,
		},
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAnalyticsEvent, handleDeliveryTask(logger))

	go func() {
		logger.Info("analytics: starting delivery worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("analytics: delivery worker stopped", zap.Error(err))
		}
	}()

	return srv
}

func handleDeliveryTask(logger *zap.Logger) asynq.HandlerFunc {
	httpClient := &http.Client{Timeout: 5 * time.Second}

	return func(ctx context.Context, task *asynq.Task) error {
		endpoint := config.AppConfig.AnalyticsEndpoint
		if endpoint == "" {
			return nil
		}

		// Validate the payload is still a JSON document before sending.
		if !json.Valid(task.Payload()) {
			logger.Debug("analytics: dropping malformed event payload")
			return nil
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(task.Payload()))
		if err != nil {
			logger.Debug("analytics: failed to build beacon request", zap.Error(err))
			return nil
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := httpClient.Do(req)
		if err != nil {
			logger.Debug("analytics: beacon delivery failed", zap.Error(err))
			return nil
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			logger.Debug("analytics: beacon rejected event", zap.Int("status", resp.StatusCode))
		}
		return nil
	}
}
