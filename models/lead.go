package models

import "time"

// Lead statuses follow the admin panel workflow.
const (
	LeadNew       = "new"
	LeadContacted = "contacted"
	LeadConverted = "converted"
	LeadDropped   = "dropped"
)

// Lead is an insurance lead created automatically when a business registers.
type Lead struct {
	ID            string     `bson:"id" json:"id"`
	BusinessID    string     `bson:"businessId" json:"businessId"`
	BusinessName  string     `bson:"businessName" json:"businessName"`
	OwnerName     string     `bson:"ownerName" json:"ownerName"`
	ContactEmail  string     `bson:"contactEmail" json:"contactEmail"`
	ContactPhone  string     `bson:"contactPhone" json:"contactPhone"`
	Status        string     `bson:"status" json:"status"`
	LastContacted *time.Time `bson:"lastContacted,omitempty" json:"lastContacted,omitempty"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
}
