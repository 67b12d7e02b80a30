package notification

import (
	"fmt"
	"time"

	"autodetail/models"
)

// prettyDate renders "2025-06-02" as "Monday, June 2 2025". The raw date is
// returned unchanged when it does not parse, so a template never fails.
func prettyDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s, %s %d %d", t.Weekday(), t.Month(), t.Day(), t.Year())
}

func confirmationSubject(appt *models.Appointment, businessName string) string {
	return fmt.Sprintf("Booking confirmed: %s at %s", appt.ServiceName, businessName)
}

func confirmationEmailBody(appt *models.Appointment, customerName, businessName string) string {
	return fmt.Sprintf(
		"<p>Hi %s,</p>"+
			"<p>Your <strong>%s</strong> appointment at <strong>%s</strong> is booked for "+
			"%s, %s&ndash;%s.</p>"+
			"<p>Price: $%.2f</p>"+
			"<p>See you there!</p>",
		customerName, appt.ServiceName, businessName,
		prettyDate(appt.Date), appt.StartTime, appt.EndTime, appt.Price)
}

func ownerConfirmationEmailBody(appt *models.Appointment, customerName string) string {
	return fmt.Sprintf(
		"<p>New booking: <strong>%s</strong> for %s on %s, %s&ndash;%s.</p>",
		appt.ServiceName, customerName, prettyDate(appt.Date), appt.StartTime, appt.EndTime)
}

func cancellationSubject(appt *models.Appointment, businessName string) string {
	return fmt.Sprintf("Booking cancelled: %s at %s", appt.ServiceName, businessName)
}

func cancellationEmailBody(appt *models.Appointment, customerName, businessName string) string {
	return fmt.Sprintf(
		"<p>Hi %s,</p>"+
			"<p>Your %s appointment at %s on %s (%s&ndash;%s) has been cancelled.</p>",
		customerName, appt.ServiceName, businessName,
		prettyDate(appt.Date), appt.StartTime, appt.EndTime)
}

func reminderSubject(appt *models.Appointment, businessName string) string {
	return fmt.Sprintf("Reminder: %s at %s tomorrow", appt.ServiceName, businessName)
}

func reminderEmailBody(appt *models.Appointment, customerName, businessName string) string {
	return fmt.Sprintf(
		"<p>Hi %s,</p>"+
			"<p>A reminder that your <strong>%s</strong> appointment at %s is on "+
			"%s, %s&ndash;%s.</p>",
		customerName, appt.ServiceName, businessName,
		prettyDate(appt.Date), appt.StartTime, appt.EndTime)
}

func reminderSMSBody(appt *models.Appointment, businessName string) string {
	return fmt.Sprintf("Reminder: %s at %s on %s, %s. Reply to the business directly with any questions.",
		appt.ServiceName, businessName, prettyDate(appt.Date), appt.StartTime)
}

func confirmationSMSBody(appt *models.Appointment, businessName string) string {
	return fmt.Sprintf("Booked: %s at %s on %s, %s-%s.",
		appt.ServiceName, businessName, prettyDate(appt.Date), appt.StartTime, appt.EndTime)
}
