package models

import "time"

// Vehicle is a customer's tracked vehicle.
type Vehicle struct {
	ID        string    `bson:"id" json:"id"`
	OwnerID   string    `bson:"ownerId" json:"ownerId"` // customer user ID
	Make      string    `bson:"make" json:"make"`
	Model     string    `bson:"model" json:"model"`
	Year      int       `bson:"year,omitempty" json:"year,omitempty"`
	Color     string    `bson:"color,omitempty" json:"color,omitempty"`
	Plate     string    `bson:"plate,omitempty" json:"plate,omitempty"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	PhotoURL  string    `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ServiceRecord is one completed service in a vehicle's history.
type ServiceRecord struct {
	ID            string    `bson:"id" json:"id"`
	VehicleID     string    `bson:"vehicleId" json:"vehicleId"`
	AppointmentID string    `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	BusinessID    string    `bson:"businessId" json:"businessId"`
	ServiceName   string    `bson:"serviceName" json:"serviceName"`
	Date          string    `bson:"date" json:"date"` // "2006-01-02"
	Price         float64   `bson:"price" json:"price"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
