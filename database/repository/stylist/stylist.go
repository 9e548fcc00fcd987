package stylistRepo

import "salonpro/models"

// StylistRepository defines methods for stylist data access.
type StylistRepository interface {
	// Create inserts a new stylist record.
	Create(stylist *models.Stylist) error
	// GetByID retrieves a stylist by its unique ID.
	GetByID(id string) (*models.Stylist, error)
	// ListByBusiness returns a business's stylists. When activeOnly is set,
	// inactive stylists are excluded (customer-facing listing).
	ListByBusiness(businessID string, activeOnly bool) ([]models.Stylist, error)
	// Update modifies an existing stylist scoped to its business.
	Update(stylist *models.Stylist) error
	// Delete removes a stylist scoped to its business.
	Delete(businessID, stylistID string) error
	// DeleteByBusiness removes all stylists of a business.
	DeleteByBusiness(businessID string) error
}
