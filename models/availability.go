package models

// DayHours is an open/close pair for a single day, both in "HH:MM" (24h).
type DayHours struct {
	Open  string `bson:"open" json:"open"`
	Close string `bson:"close" json:"close"`
}

// BusinessHours maps a lowercase weekday name ("monday".."sunday") to that day's
// hours. A missing weekday means the business is closed that day.
type BusinessHours map[string]DayHours

// Slot is a contiguous bookable time range.
type Slot struct {
	StartTime string `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime   string `bson:"endTime" json:"endTime"`     // "HH:MM"
	Available bool   `bson:"available" json:"available"`
}

// AvailabilityOverride is an explicit, manually-set slot list for one date.
// It supersedes every other availability source for that date.
type AvailabilityOverride struct {
	ID         string `bson:"id" json:"id"`
	BusinessID string `bson:"businessId" json:"businessId"`
	Date       string `bson:"date" json:"date"` // "2006-01-02"
	Slots      []Slot `bson:"slots" json:"slots"`
}

// SpecialDay marks a date as closed (holiday) or open with custom hours.
// Consulted only when no override exists for the date.
type SpecialDay struct {
	ID          string    `bson:"id" json:"id"`
	BusinessID  string    `bson:"businessId" json:"businessId"`
	Date        string    `bson:"date" json:"date"` // "2006-01-02"
	IsOpen      bool      `bson:"isOpen" json:"isOpen"`
	CustomHours *DayHours `bson:"customHours,omitempty" json:"customHours,omitempty"`
	Reason      string    `bson:"reason,omitempty" json:"reason,omitempty"`
}

// ResolvedAvailability is the bookable time-slot list for one business on one
// date. Derived on every query, never persisted.
type ResolvedAvailability struct {
	BusinessID   string `json:"businessId"`
	Date         string `json:"date"`
	Slots        []Slot `json:"slots"`
	IsSpecialDay bool   `json:"isSpecialDay"`
	IsClosed     bool   `json:"isClosed"`
}
