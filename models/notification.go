package models

// ReminderPayload is the asynq task payload for appointment reminders.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
}
