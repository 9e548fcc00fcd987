package appointmentRepo

import (
	"errors"

	"salonpro/models"
)

// ErrNotFound is returned when no appointment matches the lookup.
var ErrNotFound = errors.New("appointment not found")

// ErrDuplicateSlot is returned when an insert collides with the unique
// (stylist, date, start time) index for active appointments. It catches the
// second of two concurrent bookings racing for the identical slot.
var ErrDuplicateSlot = errors.New("slot already booked")

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// Create inserts a new appointment record.
	Create(appointment *models.Appointment) error
	// GetByID retrieves an appointment by its unique ID.
	GetByID(id string) (*models.Appointment, error)
	// ListActiveForStylistDay returns pending/confirmed appointments for a
	// stylist on a date. These are the intervals that block new bookings.
	ListActiveForStylistDay(businessID, stylistID, date string) ([]models.Appointment, error)
	// ListByBusiness returns a business's appointments, optionally narrowed
	// by status and/or date, ascending by date and start time.
	ListByBusiness(businessID string, filter models.AppointmentFilter) ([]models.Appointment, error)
	// ListAll returns appointments across all businesses, newest date first.
	ListAll() ([]models.Appointment, error)
	// UpdateStatus transitions an appointment's status, scoped to a business.
	UpdateStatus(businessID, appointmentID, status string) (*models.Appointment, error)
	// DeleteByBusiness removes all appointments of a business.
	DeleteByBusiness(businessID string) error
}
