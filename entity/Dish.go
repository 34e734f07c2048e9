package entity

import (
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"` // minor units
	ImageURL    string `json:"imageUrl"`
	IsAvailable bool   `json:"isAvailable"`

	ChefID uint `gorm:"index;not null" json:"chefId"`
	Chef   User `gorm:"foreignKey:ChefID" json:"-"`

	// preload only on the dish detail page
	Ratings []DishRating `gorm:"foreignKey:DishID" json:"-"`
}
