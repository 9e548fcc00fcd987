package models

import "time"

// Stylist is a bookable staff member of a business. Only active stylists
// appear in customer-facing listings.
type Stylist struct {
	ID          string    `bson:"id" json:"id"`
	BusinessID  string    `bson:"businessId" json:"businessId"`
	Name        string    `bson:"name" json:"name"`
	Bio         string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Specialties []string  `bson:"specialties,omitempty" json:"specialties,omitempty"`
	Experience  int       `bson:"experience" json:"experience"` // years
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
