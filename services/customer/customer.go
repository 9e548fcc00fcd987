package customer

import (
	"errors"
	"fmt"
	"time"

	businessRepo "salonpro/database/repository/business"
	customerRepo "salonpro/database/repository/customer"
	serviceRepo "salonpro/database/repository/service"
	stylistRepo "salonpro/database/repository/stylist"
	"salonpro/models"
	"salonpro/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrEmailTaken is returned when a registration email is already in use.
var ErrEmailTaken = errors.New("customer already registered with this email")

// ErrInvalidCredentials is returned for any failed login attempt.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthResponse is returned on successful authentication.
type AuthResponse struct {
	Token    string           `json:"token"`
	Customer *models.Customer `json:"customer"`
}

// CustomerService defines the customer-facing account and browse operations.
type CustomerService interface {
	Register(req models.CustomerRegistration) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	// GetBusinessInfo returns the public view of a business for the booking
	// page reached through its QR link.
	GetBusinessInfo(businessID string) (*models.BusinessPublic, error)
	// ListAvailableServices returns only services marked available.
	ListAvailableServices(businessID string) ([]models.Service, error)
	// ListActiveStylists returns only active stylists.
	ListActiveStylists(businessID string) ([]models.Stylist, error)
}

// DefaultCustomerService is the production implementation.
type DefaultCustomerService struct {
	Repo       customerRepo.CustomerRepository
	Businesses businessRepo.BusinessRepository
	Services   serviceRepo.ServiceRepository
	Stylists   stylistRepo.StylistRepository
}

func (s *DefaultCustomerService) Register(req models.CustomerRegistration) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	cust := &models.Customer{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(cust); err != nil {
		return nil, err
	}

	return s.issueToken(cust)
}

func (s *DefaultCustomerService) Authenticate(email, password string) (*AuthResponse, error) {
	cust, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if cust == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cust.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(cust)
}

func (s *DefaultCustomerService) issueToken(cust *models.Customer) (*AuthResponse, error) {
	token, err := utils.GenerateToken(cust.ID, cust.Email, utils.RoleCustomer)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	if err := utils.CacheAuthToken(utils.GetAuthCacheClient(), utils.RoleCustomer, cust.ID, utils.HashToken(token)); err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, Customer: cust}, nil
}

func (s *DefaultCustomerService) GetBusinessInfo(businessID string) (*models.BusinessPublic, error) {
	return s.Businesses.GetPublicByID(businessID)
}

func (s *DefaultCustomerService) ListAvailableServices(businessID string) ([]models.Service, error) {
	return s.Services.ListByBusiness(businessID, true)
}

func (s *DefaultCustomerService) ListActiveStylists(businessID string) ([]models.Stylist, error) {
	return s.Stylists.ListByBusiness(businessID, true)
}
