package models

import "time"

// Appointment statuses. Only pending and confirmed occupy a stylist's
// calendar; completed and cancelled free the slot but are retained for
// history.
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// ActiveAppointmentStatuses are the statuses that block new bookings.
var ActiveAppointmentStatuses = []string{AppointmentPending, AppointmentConfirmed}

// ValidAppointmentStatus reports whether s is a known appointment status.
func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// ActiveAppointmentStatus reports whether s still occupies its slot.
func ActiveAppointmentStatus(s string) bool {
	return s == AppointmentPending || s == AppointmentConfirmed
}

// Appointment is a booked (or historical) visit.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`
	BusinessID      string    `bson:"businessId" json:"businessId"`
	CustomerID      string    `bson:"customerId" json:"customerId"`
	ServiceID       string    `bson:"serviceId" json:"serviceId"`
	StylistID       string    `bson:"stylistId" json:"stylistId"`
	Date            string    `bson:"date" json:"date"`           // "YYYY-MM-DD"
	StartTime       string    `bson:"startTime" json:"startTime"` // "HH:MM"
	Duration        int       `bson:"duration" json:"duration"`   // minutes
	SpecialRequests string    `bson:"specialRequests,omitempty" json:"specialRequests,omitempty"`
	Status          string    `bson:"status" json:"status"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`

	// Denormalized display fields populated on reads that join related
	// collections.
	ServiceName   string  `bson:"serviceName,omitempty" json:"serviceName,omitempty"`
	ServicePrice  float64 `bson:"servicePrice,omitempty" json:"servicePrice,omitempty"`
	StylistName   string  `bson:"stylistName,omitempty" json:"stylistName,omitempty"`
	CustomerName  string  `bson:"customerName,omitempty" json:"customerName,omitempty"`
	CustomerPhone string  `bson:"customerPhone,omitempty" json:"customerPhone,omitempty"`
	BusinessName  string  `bson:"businessName,omitempty" json:"businessName,omitempty"`
}

// AppointmentFilter narrows appointment listings.
type AppointmentFilter struct {
	Status string
	Date   string
}
