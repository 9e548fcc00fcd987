package cron

import (
	"context"
	"encoding/json"
	"time"

	"salonpro/config"
	appointmentRepo "salonpro/database/repository/appointment"
	"salonpro/models"
	"salonpro/services/tasks"
	"salonpro/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(apptRepo appointmentRepo.AppointmentRepository) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
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
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(apptRepo))

	go func() {
		logger.Info("Starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("Reminder worker exhausted retries")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask fires a reminder for an upcoming appointment. The
// appointment is re-read at fire time so reminders for appointments that
// were cancelled or completed after scheduling are dropped silently.
func handleReminderTask(apptRepo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return err
		}

		appt, err := apptRepo.GetByID(p.AppointmentID)
		if err != nil {
			if err == appointmentRepo.ErrNotFound {
				logger.Warn("Reminder target appointment no longer exists",
					zap.String("appointmentId", p.AppointmentID))
				return nil
			}
			return err
		}

		if !models.ActiveAppointmentStatus(appt.Status) {
			logger.Info("Skipping reminder for inactive appointment",
				zap.String("appointmentId", appt.ID), zap.String("status", appt.Status))
			return nil
		}

		logger.Info("Appointment reminder",
			zap.String("appointmentId", appt.ID),
			zap.String("businessId", appt.BusinessID),
			zap.String("customerName", appt.CustomerName),
			zap.String("customerPhone", appt.CustomerPhone),
			zap.String("serviceName", appt.ServiceName),
			zap.String("date", appt.Date),
			zap.String("startTime", appt.StartTime))
		return nil
	}
}
