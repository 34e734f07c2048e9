package entity

import (
	"gorm.io/gorm"
)

// Availability gates ordering: closed blocks it, busy parks new orders
// in waiting_for_chef, available lets them straight into pending_review.
const (
	ChefAvailable = "available"
	ChefBusy      = "busy"
	ChefClosed    = "closed"
)

type ChefProfile struct {
	gorm.Model
	Specialty          string `json:"specialty"`
	Bio                string `json:"bio"`
	AvailabilityStatus string `gorm:"not null;default:available" json:"availabilityStatus"`

	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`
}
