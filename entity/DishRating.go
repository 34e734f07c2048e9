package entity

import (
	"gorm.io/gorm"
)

// Denormalized copy of an order review kept on the dish so dish pages
// never have to join the orders table.
type DishRating struct {
	gorm.Model
	Rating int    `gorm:"not null" json:"rating"`
	Review string `json:"review"`

	DishID     uint `gorm:"index;not null" json:"dishId"`
	Dish       Dish `json:"-"`
	OrderID    uint `gorm:"uniqueIndex" json:"orderId"` // one rating per order
	CustomerID uint `json:"customerId"`
}
