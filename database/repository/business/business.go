package businessRepo

import "salonpro/models"

// BusinessRepository defines methods for business data access.
type BusinessRepository interface {
	// Create inserts a new business record.
	Create(business *models.Business) error
	// GetByID retrieves a business by its unique ID.
	GetByID(id string) (*models.Business, error)
	// GetByEmail retrieves a business by its email address.
	GetByEmail(email string) (*models.Business, error)
	// GetPublicByID retrieves the customer-facing projection of a business.
	GetPublicByID(id string) (*models.BusinessPublic, error)
	// GetAll retrieves all businesses, newest first.
	GetAll() ([]models.Business, error)
	// Delete removes a business record by its ID.
	Delete(id string) error
}
