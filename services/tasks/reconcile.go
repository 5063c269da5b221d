package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"davi/config"
	"davi/models"
)

const TypeAppointmentReconcile = "appointment:reconcile"

// NewReconcileTask builds the asynq task for re-checking an appointment that
// was booked without consuming inventory.
func NewReconcileTask(payload models.ReconcilePayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeAppointmentReconcile, b), nil
}

// AsynqReconciler enqueues reconcile tasks on the worker queue.
type AsynqReconciler struct {
	client *asynq.Client
}

// NewAsynqReconciler builds a reconciler backed by the Redis worker DB.
func NewAsynqReconciler() *AsynqReconciler {
	return &AsynqReconciler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisWorkerDB,
		}),
	}
}

// EnqueueReconcile schedules a single reconcile attempt with retries handled
// by the queue.
func (r *AsynqReconciler) EnqueueReconcile(ctx context.Context, payload models.ReconcilePayload) error {
	task, err := NewReconcileTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build reconcile task: %w", err)
	}
	if _, err := r.client.EnqueueContext(ctx, task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("failed to enqueue reconcile task: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (r *AsynqReconciler) Close() error {
	return r.client.Close()
}
