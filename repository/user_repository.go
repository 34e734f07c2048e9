package repository

import (
	"github.com/elsonbaty123/wagbty-sub000/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&cnt).Error
	return cnt, err
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(tx *gorm.DB, u *entity.User) error {
	return tx.Create(u).Error
}

func (r *UserRepository) Save(u *entity.User) error {
	return r.DB.Save(u).Error
}

func (r *UserRepository) UpdateAccountStatus(tx *gorm.DB, userID uint, status string) (int64, error) {
	res := tx.Model(&entity.User{}).
		Where("id = ?", userID).
		Update("account_status", status)
	return res.RowsAffected, res.Error
}

// GET /admin/accounts?role=&status= → back-office listing
func (r *UserRepository) ListByRoleAndStatus(role, status string, limit int) ([]entity.User, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	db := r.DB.Model(&entity.User{})
	if role != "" {
		db = db.Where("role = ?", role)
	}
	if status != "" {
		db = db.Where("account_status = ?", status)
	}
	var out []entity.User
	err := db.Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *UserRepository) CountByRole(role string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.User{}).Where("role = ?", role).Count(&cnt).Error
	return cnt, err
}

// ---------------- Chef profile ----------------

func (r *UserRepository) GetChefProfile(userID uint) (*entity.ChefProfile, error) {
	var p entity.ChefProfile
	if err := r.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) CreateChefProfile(tx *gorm.DB, p *entity.ChefProfile) error {
	return tx.Create(p).Error
}

func (r *UserRepository) SaveChefProfile(tx *gorm.DB, p *entity.ChefProfile) error {
	return tx.Save(p).Error
}

// ---------------- Delivery profile ----------------

func (r *UserRepository) GetDeliveryProfile(userID uint) (*entity.DeliveryProfile, error) {
	var p entity.DeliveryProfile
	if err := r.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepository) CreateDeliveryProfile(tx *gorm.DB, p *entity.DeliveryProfile) error {
	return tx.Create(p).Error
}
