package business

import (
	"errors"

	appointmentRepo "salonpro/database/repository/appointment"
	businessRepo "salonpro/database/repository/business"
	hoursRepo "salonpro/database/repository/hours"
	leadRepo "salonpro/database/repository/lead"
	serviceRepo "salonpro/database/repository/service"
	stylistRepo "salonpro/database/repository/stylist"
	"salonpro/models"
)

// ErrEmailTaken is returned when a registration email is already in use.
var ErrEmailTaken = errors.New("business already registered with this email")

// ErrInvalidCredentials is returned for any failed login attempt.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthResponse is returned on successful authentication.
type AuthResponse struct {
	Token    string           `json:"token"`
	Business *models.Business `json:"business"`
}

// BusinessService defines operations available to a salon owner.
type BusinessService interface {
	// Register creates a business with default weekly hours and an
	// insurance lead, returning the stored record.
	Register(req models.BusinessRegistration) (*models.Business, error)
	// Authenticate verifies credentials and issues a token.
	Authenticate(email, password string) (*AuthResponse, error)
	// RevokeAuthToken invalidates the cached session token.
	RevokeAuthToken(businessID string) error
	// GetBusiness returns the business's own record.
	GetBusiness(id string) (*models.Business, error)

	// Service catalog management.
	ListServices(businessID string) ([]models.Service, error)
	AddService(businessID string, req models.ServiceInput) (*models.Service, error)
	UpdateService(businessID, serviceID string, req models.ServiceInput) (*models.Service, error)
	DeleteService(businessID, serviceID string) error

	// Stylist roster management.
	ListStylists(businessID string) ([]models.Stylist, error)
	AddStylist(businessID string, req models.StylistInput) (*models.Stylist, error)
	UpdateStylist(businessID, stylistID string, req models.StylistInput) (*models.Stylist, error)
	DeleteStylist(businessID, stylistID string) error

	// Weekly hours configuration.
	GetHours(businessID string) ([]models.BusinessHours, error)
	UpdateHours(businessID string, hours []models.BusinessHours) error

	// Appointment book.
	ListAppointments(businessID string, filter models.AppointmentFilter) ([]models.Appointment, error)
	UpdateAppointmentStatus(businessID, appointmentID, status string) (*models.Appointment, error)
}

// DefaultBusinessService is the production implementation.
type DefaultBusinessService struct {
	Repo         businessRepo.BusinessRepository
	Hours        hoursRepo.HoursRepository
	Services     serviceRepo.ServiceRepository
	Stylists     stylistRepo.StylistRepository
	Appointments appointmentRepo.AppointmentRepository
	Leads        leadRepo.LeadRepository

	// BaseURL is the public origin embedded in QR booking links.
	BaseURL string
}
