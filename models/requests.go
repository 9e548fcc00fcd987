package models

// BusinessRegistration is the payload for registering a new business.
type BusinessRegistration struct {
	OwnerName    string `json:"ownerName" binding:"required"`
	BusinessName string `json:"businessName" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
}

// CustomerRegistration is the payload for registering a customer account.
type CustomerRegistration struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// Credentials is the payload for all login endpoints.
type Credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ServiceInput is the payload for creating or updating a service.
type ServiceInput struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Duration    int     `json:"duration" binding:"required,gt=0"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	IsAvailable *bool   `json:"isAvailable"`
}

// StylistInput is the payload for creating or updating a stylist.
type StylistInput struct {
	Name        string   `json:"name" binding:"required"`
	Bio         string   `json:"bio"`
	Specialties []string `json:"specialties"`
	Experience  int      `json:"experience"`
	Email       string   `json:"email"`
	IsActive    *bool    `json:"isActive"`
}

// BookingRequest is the payload for creating an appointment.
type BookingRequest struct {
	BusinessID      string `json:"businessId" binding:"required"`
	CustomerName    string `json:"customerName" binding:"required"`
	CustomerPhone   string `json:"customerPhone" binding:"required"`
	ServiceID       string `json:"serviceId" binding:"required"`
	StylistID       string `json:"stylistId" binding:"required"`
	Date            string `json:"appointmentDate" binding:"required"`
	StartTime       string `json:"appointmentTime" binding:"required"`
	SpecialRequests string `json:"specialRequests"`
}
