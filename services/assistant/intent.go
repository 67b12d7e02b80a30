package assistant

import (
	"regexp"
	"strings"
	"time"
)

// Intents the assistant understands.
const (
	IntentChat         = "chat"
	IntentAvailability = "availability"
	IntentBook         = "book"
)

var (
	isoDatePattern = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	clockPattern   = regexp.MustCompile(`\b([01][0-9]|2[0-3]):[0-5][0-9]\b`)
)

// DetectIntent classifies a message by keyword. Booking keywords win over
// availability ones since "book a slot" mentions both.
func DetectIntent(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "book") || strings.Contains(lower, "schedule") || strings.Contains(lower, "reserve"):
		return IntentBook
	case strings.Contains(lower, "availab") || strings.Contains(lower, "open") ||
		strings.Contains(lower, "slot") || strings.Contains(lower, "hours"):
		return IntentAvailability
	default:
		return IntentChat
	}
}

// ExtractDate pulls an ISO date out of the message, resolving "today" and
// "tomorrow" against now.
func ExtractDate(text string, now time.Time) string {
	if m := isoDatePattern.FindString(text); m != "" {
		if _, err := time.Parse("2006-01-02", m); err == nil {
			return m
		}
	}
	lower := strings.ToLower(text)
	if strings.Contains(lower, "tomorrow") {
		return now.AddDate(0, 0, 1).Format("2006-01-02")
	}
	if strings.Contains(lower, "today") {
		return now.Format("2006-01-02")
	}
	return ""
}

// ExtractClock pulls an "HH:MM" time out of the message.
func ExtractClock(text string) string {
	return clockPattern.FindString(text)
}
