package repository

import (
	"github.com/elsonbaty123/wagbty-sub000/entity"

	"gorm.io/gorm"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

func (r *DishRepository) Create(d *entity.Dish) error {
	return r.DB.Create(d).Error
}

func (r *DishRepository) Save(d *entity.Dish) error {
	return r.DB.Save(d).Error
}

func (r *DishRepository) Get(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) GetForChef(chefID, dishID uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.Where("id = ? AND chef_id = ?", dishID, chefID).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) ListForChef(chefID uint, onlyAvailable bool) ([]entity.Dish, error) {
	db := r.DB.Where("chef_id = ?", chefID)
	if onlyAvailable {
		db = db.Where("is_available = ?", true)
	}
	var out []entity.Dish
	err := db.Order("id DESC").Find(&out).Error
	return out, err
}

// Storefront check: the dishes on a coupon must belong to the chef
// issuing it.
func (r *DishRepository) AllBelongToChef(dishIDs []uint, chefID uint) (bool, error) {
	if len(dishIDs) == 0 {
		return true, nil
	}
	var cnt int64
	if err := r.DB.Model(&entity.Dish{}).
		Where("id IN ? AND chef_id = ?", dishIDs, chefID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt == int64(len(dishIDs)), nil
}

func (r *DishRepository) GetByIDs(ids []uint) ([]entity.Dish, error) {
	var out []entity.Dish
	err := r.DB.Where("id IN ?", ids).Find(&out).Error
	return out, err
}

func (r *DishRepository) CreateRating(tx *gorm.DB, dr *entity.DishRating) error {
	return tx.Create(dr).Error
}

func (r *DishRepository) ListRatings(dishID uint, limit int) ([]entity.DishRating, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.DishRating
	err := r.DB.Where("dish_id = ?", dishID).Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *DishRepository) CountAll() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Dish{}).Count(&cnt).Error
	return cnt, err
}
