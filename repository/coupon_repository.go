package repository

import (
	"strings"

	"github.com/elsonbaty123/wagbty-sub000/entity"

	"gorm.io/gorm"
)

type CouponRepository struct {
	DB *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{DB: db}
}

func (r *CouponRepository) Create(c *entity.Coupon) error {
	return r.DB.Create(c).Error
}

func (r *CouponRepository) Save(c *entity.Coupon) error {
	return r.DB.Save(c).Error
}

func (r *CouponRepository) GetForChef(chefID, couponID uint) (*entity.Coupon, error) {
	var c entity.Coupon
	if err := r.DB.Preload("Dishes").
		Where("id = ? AND chef_id = ?", couponID, chefID).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Case-insensitive code lookup scoped to one chef. Codes are stored
// upper-cased, so normalizing the input is enough.
func (r *CouponRepository) FindByCode(chefID uint, code string) (*entity.Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	var c entity.Coupon
	if err := r.DB.Preload("Dishes").
		Where("chef_id = ? AND code = ?", chefID, code).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepository) ListForChef(chefID uint) ([]entity.Coupon, error) {
	var out []entity.Coupon
	err := r.DB.Preload("Dishes").
		Where("chef_id = ?", chefID).
		Order("id DESC").
		Find(&out).Error
	return out, err
}

func (r *CouponRepository) Delete(chefID, couponID uint) (int64, error) {
	res := r.DB.Where("chef_id = ?", chefID).Delete(&entity.Coupon{}, couponID)
	return res.RowsAffected, res.Error
}

// Guarded consume: increments times_used only while still under the
// cap, so two racing checkouts cannot both squeeze past the limit.
func (r *CouponRepository) ConsumeGuard(tx *gorm.DB, couponID uint) (int64, error) {
	res := tx.Model(&entity.Coupon{}).
		Where("id = ? AND times_used < usage_limit", couponID).
		Update("times_used", gorm.Expr("times_used + 1"))
	return res.RowsAffected, res.Error
}

func (r *CouponRepository) ReplaceDishes(c *entity.Coupon, dishes []entity.Dish) error {
	return r.DB.Model(c).Association("Dishes").Replace(dishes)
}
