package admin

import (
	"errors"
	"fmt"

	adminRepo "salonpro/database/repository/admin"
	appointmentRepo "salonpro/database/repository/appointment"
	businessRepo "salonpro/database/repository/business"
	hoursRepo "salonpro/database/repository/hours"
	leadRepo "salonpro/database/repository/lead"
	serviceRepo "salonpro/database/repository/service"
	stylistRepo "salonpro/database/repository/stylist"
	"salonpro/models"
	"salonpro/utils"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any failed admin login attempt.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthResponse is returned on successful admin authentication.
type AuthResponse struct {
	Token string        `json:"token"`
	Admin *models.Admin `json:"admin"`
}

// AdminService defines the cross-tenant operations of the admin panel.
type AdminService interface {
	Authenticate(email, password string) (*AuthResponse, error)
	// ListBusinesses returns every registered business.
	ListBusinesses() ([]models.Business, error)
	// DeleteBusiness removes a business and all its dependent records
	// (appointments, services, stylists, hours, leads).
	DeleteBusiness(businessID string) error
	// ListLeads returns all insurance leads, newest first.
	ListLeads() ([]models.Lead, error)
	// UpdateLeadStatus sets a lead's status and stamps last contacted.
	UpdateLeadStatus(leadID, status string) (*models.Lead, error)
	// ListAllAppointments returns appointments across all tenants.
	ListAllAppointments() ([]models.Appointment, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Repo         adminRepo.AdminRepository
	Businesses   businessRepo.BusinessRepository
	Hours        hoursRepo.HoursRepository
	Services     serviceRepo.ServiceRepository
	Stylists     stylistRepo.StylistRepository
	Appointments appointmentRepo.AppointmentRepository
	Leads        leadRepo.LeadRepository
}

func (s *DefaultAdminService) Authenticate(email, password string) (*AuthResponse, error) {
	adm, err := s.Repo.GetActiveByEmail(email)
	if err != nil || adm == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(adm.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(adm.ID, adm.Email, utils.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	if err := utils.CacheAuthToken(utils.GetAuthCacheClient(), utils.RoleAdmin, adm.ID, utils.HashToken(token)); err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, Admin: adm}, nil
}

func (s *DefaultAdminService) ListBusinesses() ([]models.Business, error) {
	return s.Businesses.GetAll()
}

// DeleteBusiness removes dependent records first, mirroring the foreign-key
// delete order, then the business itself.
func (s *DefaultAdminService) DeleteBusiness(businessID string) error {
	if err := s.Appointments.DeleteByBusiness(businessID); err != nil {
		return err
	}
	if err := s.Services.DeleteByBusiness(businessID); err != nil {
		return err
	}
	if err := s.Stylists.DeleteByBusiness(businessID); err != nil {
		return err
	}
	if err := s.Hours.DeleteByBusiness(businessID); err != nil {
		return err
	}
	if err := s.Leads.DeleteByBusiness(businessID); err != nil {
		return err
	}
	return s.Businesses.Delete(businessID)
}

func (s *DefaultAdminService) ListLeads() ([]models.Lead, error) {
	return s.Leads.GetAll()
}

func (s *DefaultAdminService) UpdateLeadStatus(leadID, status string) (*models.Lead, error) {
	switch status {
	case models.LeadNew, models.LeadContacted, models.LeadConverted, models.LeadDropped:
	default:
		return nil, fmt.Errorf("invalid lead status %q", status)
	}
	return s.Leads.UpdateStatus(leadID, status)
}

func (s *DefaultAdminService) ListAllAppointments() ([]models.Appointment, error) {
	return s.Appointments.ListAll()
}
