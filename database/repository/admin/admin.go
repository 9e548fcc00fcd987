package adminRepo

import "salonpro/models"

// AdminRepository defines methods for admin data access.
type AdminRepository interface {
	// GetActiveByEmail retrieves an active admin by email.
	GetActiveByEmail(email string) (*models.Admin, error)
}
