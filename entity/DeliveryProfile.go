package entity

import (
	"gorm.io/gorm"
)

type DeliveryProfile struct {
	gorm.Model
	VehicleType  string `json:"vehicleType"`
	LicensePlate string `json:"licensePlate"`

	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`
}
