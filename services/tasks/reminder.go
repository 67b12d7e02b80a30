package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"autodetail/models"
	"autodetail/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendReminder = "reminder:send"

// reminderLead is how far before the appointment start the reminder fires.
const reminderLead = 24 * time.Hour

// NewReminderTask builds the asynq task for one appointment reminder.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues appointment reminders onto the Redis-backed
// task queue.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler creates a scheduler over the given Redis connection.
func NewReminderScheduler(redisOpt asynq.RedisClientOpt) *ReminderScheduler {
	return &ReminderScheduler{client: asynq.NewClient(redisOpt)}
}

// Close releases the underlying queue connection.
func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}

// ScheduleReminder enqueues a reminder 24h before the appointment start.
// Appointments starting sooner than the lead window get no reminder.
func (s *ReminderScheduler) ScheduleReminder(appt *models.Appointment) error {
	startsAt, err := appt.StartsAt(time.Local)
	if err != nil {
		return fmt.Errorf("tasks: cannot parse appointment start: %w", err)
	}

	fireAt := startsAt.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		utils.GetLogger().Debug("tasks: appointment too soon for a reminder",
			zap.String("appointmentID", appt.ID))
		return nil
	}

	task, opts, err := NewReminderTask(models.ReminderPayload{AppointmentID: appt.ID}, fireAt)
	if err != nil {
		return fmt.Errorf("tasks: failed to build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("tasks: failed to enqueue reminder: %w", err)
	}

	utils.GetLogger().Info("tasks: reminder scheduled",
		zap.String("appointmentID", appt.ID), zap.Time("fireAt", fireAt))
	return nil
}
