package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"davi/config"
	appointmentRepo "davi/database/repository/appointment"
	slotRepo "davi/database/repository/slot"
	"davi/models"
	"davi/services/tasks"
	"davi/utils"

	"go.uber.org/zap"
)

// InitReconcileWorker runs the async worker in background. It re-attempts
// slot consumption for appointments that were booked without inventory.
func InitReconcileWorker(slots slotRepo.SlotRepository, appts appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAppointmentReconcile, handleReconcileTask(slots, appts))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReconcileWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReconcileWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReconcileWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReconcileTask(slots slotRepo.SlotRepository, appts appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReconcilePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reconcile payload", zap.Error(err))
			return err
		}

		appt, err := appts.GetByID(ctx, p.TenantID, p.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrNotFound) {
				// Appointment was deleted; nothing left to reconcile.
				return nil
			}
			return err
		}
		if appt.SlotID != "" {
			// Already linked on a previous attempt.
			return nil
		}

		slot, err := slots.FindExactFree(ctx, appt.TenantID, appt.DateTime)
		if err != nil {
			if errors.Is(err, slotRepo.ErrNotFound) {
				// Still no matching free slot. The appointment stays flagged
				// on the dashboard until the specialist opens inventory.
				logger.Warn("reconcile: no free slot for appointment",
					zap.String("tenantId", appt.TenantID),
					zap.String("appointmentId", appt.ID),
					zap.Time("dateTime", appt.DateTime),
				)
				return nil
			}
			return err
		}

		if _, err := slots.MarkBooked(ctx, appt.TenantID, slot.ID, appt.LeadID); err != nil {
			if errors.Is(err, slotRepo.ErrAlreadyBooked) || errors.Is(err, slotRepo.ErrNotFound) {
				// Lost the race to another booking; leave the flag in place.
				return nil
			}
			return err
		}

		if err := appts.LinkSlot(ctx, appt.TenantID, appt.ID, slot.ID); err != nil {
			return err
		}

		logger.Info("reconciled appointment with slot",
			zap.String("tenantId", appt.TenantID),
			zap.String("appointmentId", appt.ID),
			zap.String("slotId", slot.ID),
		)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReconcileWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
