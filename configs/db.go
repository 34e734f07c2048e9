package configs

import (
	"github.com/elsonbaty123/wagbty-sub000/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{
		TranslateError: true, // map driver unique-violation to gorm.ErrDuplicatedKey
	})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{}, &entity.ChefProfile{}, &entity.DeliveryProfile{},
		&entity.Dish{}, &entity.DishRating{},
		&entity.Coupon{},
		&entity.Order{},
		&entity.Notification{},
	)
}
