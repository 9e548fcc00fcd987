package models

import "time"

// Business represents a registered salon.
type Business struct {
	ID           string    `bson:"id" json:"id"`
	OwnerName    string    `bson:"ownerName" json:"ownerName"`
	BusinessName string    `bson:"businessName" json:"businessName"`
	Phone        string    `bson:"phone" json:"phone"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	QRCodeData   string    `bson:"qrCodeData" json:"qrCodeData"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// BusinessPublic is the customer-facing view of a business.
type BusinessPublic struct {
	ID           string `bson:"id" json:"id"`
	BusinessName string `bson:"businessName" json:"businessName"`
	OwnerName    string `bson:"ownerName" json:"ownerName"`
	Phone        string `bson:"phone" json:"phone"`
	Email        string `bson:"email" json:"email"`
}

// BusinessHours is the per-day open/close configuration for a business.
// When IsClosed is set the open/close times are not consulted.
type BusinessHours struct {
	BusinessID string `bson:"businessId" json:"businessId"`
	Day        int    `bson:"day" json:"day"` // 0 = Sunday .. 6 = Saturday
	OpenTime   string `bson:"openTime" json:"openTime"`   // "HH:MM"
	CloseTime  string `bson:"closeTime" json:"closeTime"` // "HH:MM"
	IsClosed   bool   `bson:"isClosed" json:"isClosed"`
}

// DefaultWeeklyHours returns the hours seeded at registration:
// weekdays 09:00-17:00, weekend closed.
func DefaultWeeklyHours(businessID string) []BusinessHours {
	hours := make([]BusinessHours, 0, 7)
	for day := 0; day < 7; day++ {
		h := BusinessHours{
			BusinessID: businessID,
			Day:        day,
			OpenTime:   "09:00",
			CloseTime:  "17:00",
		}
		switch day {
		case 0:
			h.IsClosed = true
		case 6:
			h.OpenTime = "10:00"
			h.CloseTime = "16:00"
			h.IsClosed = true
		}
		hours = append(hours, h)
	}
	return hours
}
