package models

import "time"

// Appointment statuses.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment represents a booked service visit.
type Appointment struct {
	ID          string    `bson:"id" json:"id"`
	BusinessID  string    `bson:"businessId" json:"businessId"`
	CustomerID  string    `bson:"customerId" json:"customerId"`
	ServiceID   string    `bson:"serviceId" json:"serviceId"`
	ServiceName string    `bson:"serviceName" json:"serviceName"`
	Date        string    `bson:"date" json:"date"`           // "2006-01-02"
	StartTime   string    `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime     string    `bson:"endTime" json:"endTime"`     // "HH:MM"
	VehicleID   string    `bson:"vehicleId,omitempty" json:"vehicleId,omitempty"`
	StaffID     string    `bson:"staffId,omitempty" json:"staffId,omitempty"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// StartsAt combines Date and StartTime into a wall-clock instant in loc.
func (a *Appointment) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.StartTime, loc)
}
