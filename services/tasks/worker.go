package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	appointmentRepo "autodetail/database/repository/appointment"
	"autodetail/models"
	"autodetail/services/notification"
	"autodetail/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReminderWorker processes queued reminder tasks.
type ReminderWorker struct {
	AppointmentRepo appointmentRepo.AppointmentRepository
	Notifier        notification.NotificationService
}

// HandleReminderTask re-fetches the appointment and sends the reminder.
// Cancelling an appointment does not dequeue its task, so the status check
// here is what keeps cancelled bookings quiet.
func (w *ReminderWorker) HandleReminderTask(ctx context.Context, t *asynq.Task) error {
	var payload models.ReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("reminder worker: bad payload: %w: %w", err, asynq.SkipRetry)
	}

	appt, err := w.AppointmentRepo.GetByID(payload.AppointmentID)
	if err != nil {
		return fmt.Errorf("reminder worker: failed to fetch appointment %s: %w", payload.AppointmentID, err)
	}
	if appt == nil {
		utils.GetLogger().Info("reminder worker: appointment no longer exists",
			zap.String("appointmentID", payload.AppointmentID))
		return nil
	}

	if appt.Status != models.AppointmentPending && appt.Status != models.AppointmentConfirmed {
		utils.GetLogger().Info("reminder worker: skipping inactive appointment",
			zap.String("appointmentID", appt.ID), zap.String("status", appt.Status))
		return nil
	}

	return w.Notifier.SendAppointmentReminder(ctx, appt)
}

// StartWorker runs the asynq server in a background goroutine.
func StartWorker(redisOpt asynq.RedisClientOpt, worker *ReminderWorker) *asynq.Server {
	srv := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 5})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSendReminder, worker.HandleReminderTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			utils.GetLogger().Sugar().Fatalf("tasks: reminder worker failed: %v", err)
		}
	}()
	return srv
}
