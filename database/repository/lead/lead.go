package leadRepo

import "salonpro/models"

// LeadRepository defines methods for insurance-lead data access.
type LeadRepository interface {
	// Create inserts a new lead record.
	Create(lead *models.Lead) error
	// GetAll retrieves all leads, newest first.
	GetAll() ([]models.Lead, error)
	// UpdateStatus sets a lead's status and stamps last contacted.
	UpdateStatus(leadID, status string) (*models.Lead, error)
	// DeleteByBusiness removes all leads of a business.
	DeleteByBusiness(businessID string) error
}
