package business

import (
	"errors"
	"fmt"
	"time"

	businessRepo "salonpro/database/repository/business"
	"salonpro/models"
	"salonpro/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultBusinessService) Register(req models.BusinessRegistration) (*models.Business, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, businessRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to check registration email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	businessID := uuid.NewString()
	biz := &models.Business{
		ID:           businessID,
		OwnerName:    req.OwnerName,
		BusinessName: req.BusinessName,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: string(hash),
		QRCodeData:   BookingURL(s.BaseURL, businessID),
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(biz); err != nil {
		return nil, err
	}

	if err := s.Hours.SeedWeek(models.DefaultWeeklyHours(businessID)); err != nil {
		return nil, fmt.Errorf("failed to seed default hours: %w", err)
	}

	lead := &models.Lead{
		ID:           uuid.NewString(),
		BusinessID:   businessID,
		BusinessName: req.BusinessName,
		OwnerName:    req.OwnerName,
		ContactEmail: req.Email,
		ContactPhone: req.Phone,
		Status:       models.LeadNew,
		CreatedAt:    time.Now(),
	}
	if err := s.Leads.Create(lead); err != nil {
		// Lead tracking must not block registration.
		utils.GetLogger().Warn("Failed to create insurance lead",
			zap.String("businessId", businessID), zap.Error(err))
	}

	return biz, nil
}

func (s *DefaultBusinessService) Authenticate(email, password string) (*AuthResponse, error) {
	biz, err := s.Repo.GetByEmail(email)
	if err != nil || biz == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(biz.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(biz.ID, biz.Email, utils.RoleBusiness)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	if err := utils.CacheAuthToken(utils.GetAuthCacheClient(), utils.RoleBusiness, biz.ID, utils.HashToken(token)); err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, Business: biz}, nil
}

func (s *DefaultBusinessService) RevokeAuthToken(businessID string) error {
	return utils.RevokeAuthToken(utils.GetAuthCacheClient(), utils.RoleBusiness, businessID)
}

func (s *DefaultBusinessService) GetBusiness(id string) (*models.Business, error) {
	return s.Repo.GetByID(id)
}

// BookingURL builds the customer-facing booking link embedded in QR codes.
func BookingURL(baseURL, businessID string) string {
	return fmt.Sprintf("%s/customerauth?business=%s", baseURL, businessID)
}
