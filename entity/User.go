package entity

import (
	"gorm.io/gorm"
)

// Roles
const (
	RoleCustomer = "customer"
	RoleChef     = "chef"
	RoleDelivery = "delivery"
	RoleAdmin    = "admin"
)

// Account statuses. Chef and delivery accounts start pending_approval
// and need an admin to activate them before login works.
const (
	AccountActive          = "active"
	AccountPendingApproval = "pending_approval"
	AccountRejected        = "rejected"
	AccountSuspended       = "suspended"
)

type User struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null" json:"email"`
	Password      string `json:"-"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	PhoneNumber   string `json:"phoneNumber"`
	Address       string `json:"address"`
	Role          string `gorm:"not null;default:customer" json:"role"`
	AccountStatus string `gorm:"not null;default:active" json:"accountStatus"`

	// preload only when the profile page needs them
	ChefProfile     *ChefProfile     `gorm:"foreignKey:UserID" json:"-"`
	DeliveryProfile *DeliveryProfile `gorm:"foreignKey:UserID" json:"-"`
	Dishes          []Dish           `gorm:"foreignKey:ChefID" json:"-"`
	Notifications   []Notification   `gorm:"foreignKey:RecipientID" json:"-"`
}
