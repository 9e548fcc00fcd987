package hoursRepo

import "salonpro/models"

// HoursRepository defines methods for business-hours data access.
// A business has at most one row per day of week; a missing row means the
// business takes no bookings that day.
type HoursRepository interface {
	// SeedWeek inserts the given per-day rows for a business.
	SeedWeek(hours []models.BusinessHours) error
	// GetWeek returns all configured rows for a business ordered by day.
	GetWeek(businessID string) ([]models.BusinessHours, error)
	// GetDay returns the row for one day of week, or nil when none exists.
	GetDay(businessID string, day int) (*models.BusinessHours, error)
	// UpdateDay replaces the open/close/closed configuration for one day.
	UpdateDay(hours models.BusinessHours) error
	// DeleteByBusiness removes all rows for a business.
	DeleteByBusiness(businessID string) error
}
