package customerRepo

import "salonpro/models"

// CustomerRepository defines methods for customer data access.
type CustomerRepository interface {
	// Create inserts a new customer record.
	Create(customer *models.Customer) error
	// GetByID retrieves a customer by its unique ID.
	GetByID(id string) (*models.Customer, error)
	// GetByEmail retrieves a customer by email, or nil when none exists.
	GetByEmail(email string) (*models.Customer, error)
	// GetByPhone retrieves a customer by phone number, or nil when none
	// exists. Used by the booking flow to reuse walk-in customers.
	GetByPhone(phone string) (*models.Customer, error)
}
