package models

// Admin represents a platform administrator.
type Admin struct {
	ID           string `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Role         string `bson:"role" json:"role"`
	IsActive     bool   `bson:"isActive" json:"isActive"`
}
