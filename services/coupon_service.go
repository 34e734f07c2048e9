package services

import (
	"errors"
	"strings"
	"time"

	"github.com/elsonbaty123/wagbty-sub000/entity"
	"github.com/elsonbaty123/wagbty-sub000/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Validation outcomes, checked in order; controllers map these to the
// inline {discount, error} checkout response instead of an HTTP error.
var (
	ErrCouponInvalid       = errors.New("invalid coupon")
	ErrCouponInactive      = errors.New("coupon is inactive")
	ErrCouponExpired       = errors.New("coupon is expired")
	ErrCouponLimitReached  = errors.New("coupon usage limit reached")
	ErrCouponNotApplicable = errors.New("coupon does not apply to this dish")
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponCodeTaken     = errors.New("coupon code already exists")
)

type CouponService struct {
	Repo     *repository.CouponRepository
	DishRepo *repository.DishRepository

	// injectable clock for the validity-window tests
	now func() time.Time
}

func NewCouponService(repo *repository.CouponRepository, dishRepo *repository.DishRepository) *CouponService {
	return &CouponService{Repo: repo, DishRepo: dishRepo, now: time.Now}
}

// Validate decides whether code is usable by chefID for dishID at the
// given subtotal, and how much it is worth. Pure check, no side effect:
// the usage counter is consumed by order creation, never here.
func (s *CouponService) Validate(chefID uint, code string, dishID uint, subtotal int64) (int64, error) {
	c, err := s.Repo.FindByCode(chefID, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCouponInvalid
		}
		return 0, err
	}
	if err := s.checkUsable(c, dishID); err != nil {
		return 0, err
	}
	return discountFor(c, subtotal), nil
}

// Ordered checks, first failure wins.
func (s *CouponService) checkUsable(c *entity.Coupon, dishID uint) error {
	if !c.IsActive {
		return ErrCouponInactive
	}
	now := s.now()
	if now.Before(c.StartAt) || now.After(c.EndAt) {
		return ErrCouponExpired
	}
	if c.TimesUsed >= c.UsageLimit {
		return ErrCouponLimitReached
	}
	if c.AppliesTo == entity.AppliesToSpecific {
		found := false
		for _, d := range c.Dishes {
			if d.ID == dishID {
				found = true
				break
			}
		}
		if !found {
			return ErrCouponNotApplicable
		}
	}
	return nil
}

// Percentage math runs through decimal so money never touches floats;
// the result is clamped to [0, subtotal].
func discountFor(c *entity.Coupon, subtotal int64) int64 {
	var d int64
	if c.DiscountType == entity.DiscountFixed {
		d = c.DiscountValue.IntPart()
	} else {
		d = decimal.NewFromInt(subtotal).
			Mul(c.DiscountValue).
			Div(decimal.NewFromInt(100)).
			IntPart()
	}
	if d > subtotal {
		d = subtotal
	}
	if d < 0 {
		d = 0
	}
	return d
}

// ----- Chef CRUD -----

type CouponIn struct {
	Code          string          `json:"code" binding:"required,max=50"`
	DiscountType  string          `json:"discountType" binding:"required,oneof=percentage fixed"`
	DiscountValue decimal.Decimal `json:"discountValue" binding:"required"`
	StartAt       time.Time       `json:"startAt" binding:"required"`
	EndAt         time.Time       `json:"endAt" binding:"required"`
	UsageLimit    int             `json:"usageLimit" binding:"required,min=1"`
	IsActive      *bool           `json:"isActive"`
	AppliesTo     string          `json:"appliesTo" binding:"omitempty,oneof=all specific"`
	DishIDs       []uint          `json:"dishIds"`
}

func (s *CouponService) CreateForChef(chefID uint, in *CouponIn) (*entity.Coupon, error) {
	dishes, err := s.resolveDishes(chefID, in)
	if err != nil {
		return nil, err
	}

	c := entity.Coupon{
		Code:          strings.ToUpper(strings.TrimSpace(in.Code)),
		DiscountType:  in.DiscountType,
		DiscountValue: in.DiscountValue,
		StartAt:       in.StartAt,
		EndAt:         in.EndAt,
		UsageLimit:    in.UsageLimit,
		IsActive:      true,
		AppliesTo:     entity.AppliesToAll,
		ChefID:        chefID,
		Dishes:        dishes,
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if in.AppliesTo != "" {
		c.AppliesTo = in.AppliesTo
	}

	if err := s.Repo.Create(&c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCouponCodeTaken
		}
		return nil, err
	}
	return &c, nil
}

func (s *CouponService) UpdateForChef(chefID, couponID uint, in *CouponIn) (*entity.Coupon, error) {
	c, err := s.Repo.GetForChef(chefID, couponID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}

	dishes, err := s.resolveDishes(chefID, in)
	if err != nil {
		return nil, err
	}

	c.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	c.DiscountType = in.DiscountType
	c.DiscountValue = in.DiscountValue
	c.StartAt = in.StartAt
	c.EndAt = in.EndAt
	c.UsageLimit = in.UsageLimit
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if in.AppliesTo != "" {
		c.AppliesTo = in.AppliesTo
	}

	if err := s.Repo.Save(c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCouponCodeTaken
		}
		return nil, err
	}
	if err := s.Repo.ReplaceDishes(c, dishes); err != nil {
		return nil, err
	}
	c.Dishes = dishes
	return c, nil
}

func (s *CouponService) ListForChef(chefID uint) ([]entity.Coupon, error) {
	return s.Repo.ListForChef(chefID)
}

func (s *CouponService) DeleteForChef(chefID, couponID uint) error {
	affected, err := s.Repo.Delete(chefID, couponID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCouponNotFound
	}
	return nil
}

func (s *CouponService) resolveDishes(chefID uint, in *CouponIn) ([]entity.Dish, error) {
	if in.AppliesTo != entity.AppliesToSpecific || len(in.DishIDs) == 0 {
		return nil, nil
	}
	ok, err := s.DishRepo.AllBelongToChef(in.DishIDs, chefID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("dish not owned by this chef")
	}
	return s.DishRepo.GetByIDs(in.DishIDs)
}
