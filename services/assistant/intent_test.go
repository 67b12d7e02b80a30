package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDetectIntent(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"I'd like to book a full detail", IntentBook},
		{"can you schedule me for friday", IntentBook},
		{"what slots are open tomorrow", IntentAvailability},
		{"what are your hours", IntentAvailability},
		{"is there any availability next week", IntentAvailability},
		{"how much does ceramic coating cost", IntentChat},
		{"hello", IntentChat},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DetectIntent(tc.text), tc.text)
	}
}

func TestExtractDate(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-06-09", ExtractDate("anything on 2025-06-09?", now))
	assert.Equal(t, "2025-06-03", ExtractDate("are you open tomorrow", now))
	assert.Equal(t, "2025-06-02", ExtractDate("slots today?", now))
	assert.Equal(t, "", ExtractDate("next week sometime", now))
	assert.Equal(t, "", ExtractDate("2025-13-99 is not a date", now))
}

func TestExtractClock(t *testing.T) {
	assert.Equal(t, "10:30", ExtractClock("how about 10:30?"))
	assert.Equal(t, "", ExtractClock("half past ten"))
	assert.Equal(t, "", ExtractClock("at 25:99"))
}
