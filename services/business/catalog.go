package business

import (
	"time"

	"salonpro/models"

	"github.com/google/uuid"
)

func (s *DefaultBusinessService) ListServices(businessID string) ([]models.Service, error) {
	return s.Services.ListByBusiness(businessID, false)
}

func (s *DefaultBusinessService) AddService(businessID string, req models.ServiceInput) (*models.Service, error) {
	svc := &models.Service{
		ID:          uuid.NewString(),
		BusinessID:  businessID,
		Name:        req.Name,
		Price:       req.Price,
		Duration:    req.Duration,
		Description: req.Description,
		Category:    req.Category,
		IsAvailable: true,
		CreatedAt:   time.Now(),
	}
	if req.IsAvailable != nil {
		svc.IsAvailable = *req.IsAvailable
	}
	if err := s.Services.Create(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *DefaultBusinessService) UpdateService(businessID, serviceID string, req models.ServiceInput) (*models.Service, error) {
	svc := &models.Service{
		ID:          serviceID,
		BusinessID:  businessID,
		Name:        req.Name,
		Price:       req.Price,
		Duration:    req.Duration,
		Description: req.Description,
		Category:    req.Category,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		svc.IsAvailable = *req.IsAvailable
	}
	if err := s.Services.Update(svc); err != nil {
		return nil, err
	}
	return s.Services.GetByID(serviceID)
}

func (s *DefaultBusinessService) DeleteService(businessID, serviceID string) error {
	return s.Services.Delete(businessID, serviceID)
}

func (s *DefaultBusinessService) ListStylists(businessID string) ([]models.Stylist, error) {
	return s.Stylists.ListByBusiness(businessID, false)
}

func (s *DefaultBusinessService) AddStylist(businessID string, req models.StylistInput) (*models.Stylist, error) {
	stylist := &models.Stylist{
		ID:          uuid.NewString(),
		BusinessID:  businessID,
		Name:        req.Name,
		Bio:         req.Bio,
		Specialties: req.Specialties,
		Experience:  req.Experience,
		Email:       req.Email,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if req.IsActive != nil {
		stylist.IsActive = *req.IsActive
	}
	if err := s.Stylists.Create(stylist); err != nil {
		return nil, err
	}
	return stylist, nil
}

func (s *DefaultBusinessService) UpdateStylist(businessID, stylistID string, req models.StylistInput) (*models.Stylist, error) {
	stylist := &models.Stylist{
		ID:          stylistID,
		BusinessID:  businessID,
		Name:        req.Name,
		Bio:         req.Bio,
		Specialties: req.Specialties,
		Experience:  req.Experience,
		Email:       req.Email,
		IsActive:    true,
	}
	if req.IsActive != nil {
		stylist.IsActive = *req.IsActive
	}
	if err := s.Stylists.Update(stylist); err != nil {
		return nil, err
	}
	return s.Stylists.GetByID(stylistID)
}

func (s *DefaultBusinessService) DeleteStylist(businessID, stylistID string) error {
	return s.Stylists.Delete(businessID, stylistID)
}
