package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

const (
	AppliesToAll      = "all"
	AppliesToSpecific = "specific"
)

// Coupon codes are unique per chef, not globally: two chefs may both
// issue "SAVE10". Codes are stored upper-cased; lookups normalize too.
type Coupon struct {
	gorm.Model
	Code          string          `gorm:"size:50;not null;uniqueIndex:uniq_chef_code" json:"code"`
	DiscountType  string          `gorm:"not null" json:"discountType"`
	DiscountValue decimal.Decimal `gorm:"type:numeric;not null" json:"discountValue"`
	StartAt       time.Time       `json:"startAt"`
	EndAt         time.Time       `json:"endAt"`
	UsageLimit    int             `gorm:"not null" json:"usageLimit"`
	TimesUsed     int             `gorm:"not null;default:0" json:"timesUsed"`
	IsActive      bool            `json:"isActive"`
	AppliesTo     string          `gorm:"not null;default:all" json:"appliesTo"`

	ChefID uint `gorm:"not null;uniqueIndex:uniq_chef_code" json:"chefId"`
	Chef   User `gorm:"foreignKey:ChefID" json:"-"`

	// relevant only when AppliesTo == specific
	Dishes []Dish `gorm:"many2many:coupon_dishes" json:"-"`
}
