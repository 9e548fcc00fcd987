package serviceRepo

import "salonpro/models"

// ServiceRepository defines methods for service data access.
type ServiceRepository interface {
	// Create inserts a new service record.
	Create(service *models.Service) error
	// GetByID retrieves a service by its unique ID.
	GetByID(id string) (*models.Service, error)
	// ListByBusiness returns a business's services. When availableOnly is
	// set, unavailable services are excluded (customer-facing listing).
	ListByBusiness(businessID string, availableOnly bool) ([]models.Service, error)
	// Update modifies an existing service scoped to its business.
	Update(service *models.Service) error
	// Delete removes a service scoped to its business.
	Delete(businessID, serviceID string) error
	// DeleteByBusiness removes all services of a business.
	DeleteByBusiness(businessID string) error
}
