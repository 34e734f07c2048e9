package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/elsonbaty123/wagbty-sub000/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.ChefProfile{}, &entity.DeliveryProfile{},
		&entity.Dish{}, &entity.DishRating{},
		&entity.Coupon{},
		&entity.Order{},
		&entity.Notification{},
	))
	return db
}

// A stored order must come back field-for-field, including the
// snapshot columns and the nullable ones.
func TestOrderRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	personID := uint(7)
	rating := 5
	failedAt := time.Date(2026, 8, 30, 19, 15, 0, 0, time.UTC)

	in := entity.Order{
		Code:                 "ord-roundtrip-1",
		CustomerID:           1,
		CustomerName:         "Ali Hassan",
		CustomerPhone:        "+201001234567",
		DeliveryAddress:      "5 Tahrir Sq",
		DishID:               2,
		DishName:             "Mahshi",
		DishDescription:      "stuffed vine leaves",
		DishPrice:            9500,
		ChefID:               3,
		ChefName:             "Mona Said",
		Quantity:             2,
		Subtotal:             19000,
		Discount:             1900,
		DeliveryFee:          2000,
		Total:                19100,
		AppliedCouponCode:    "SAVE10",
		Status:               entity.StatusDelivered,
		DailyDishOrderNumber: 3,
		DeliveryPersonID:     &personID,
		DeliveryPersonName:   "Omar",
		Rating:               &rating,
		Review:               "excellent",
		NotDeliveredAt:       &failedAt,
	}
	require.NoError(t, repo.CreateOrder(db, &in))

	out, err := repo.GetOrder(in.ID)
	require.NoError(t, err)

	assert.Equal(t, in.Code, out.Code)
	assert.Equal(t, in.DishName, out.DishName)
	assert.Equal(t, in.DishPrice, out.DishPrice)
	assert.Equal(t, in.Total, out.Total)
	assert.Equal(t, in.AppliedCouponCode, out.AppliedCouponCode)
	assert.Equal(t, in.DailyDishOrderNumber, out.DailyDishOrderNumber)
	require.NotNil(t, out.DeliveryPersonID)
	assert.Equal(t, personID, *out.DeliveryPersonID)
	require.NotNil(t, out.Rating)
	assert.Equal(t, rating, *out.Rating)
	require.NotNil(t, out.NotDeliveredAt)
	assert.True(t, failedAt.Equal(*out.NotDeliveredAt))
}

// The numeric column must carry percentage values without float drift.
func TestCouponDecimalRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewCouponRepository(db)

	c := entity.Coupon{
		Code:          "HALFOFF",
		DiscountType:  entity.DiscountPercentage,
		DiscountValue: decimal.RequireFromString("12.5"),
		StartAt:       time.Now().Add(-time.Hour),
		EndAt:         time.Now().Add(time.Hour),
		UsageLimit:    10,
		IsActive:      true,
		AppliesTo:     entity.AppliesToAll,
		ChefID:        1,
	}
	require.NoError(t, repo.Create(&c))

	got, err := repo.FindByCode(1, "halfoff")
	require.NoError(t, err)
	assert.True(t, got.DiscountValue.Equal(decimal.RequireFromString("12.5")),
		"got %s", got.DiscountValue)
}

func TestConsumeGuardStopsAtLimit(t *testing.T) {
	db := newTestDB(t)
	repo := NewCouponRepository(db)

	c := entity.Coupon{
		Code:          "CAP2",
		DiscountType:  entity.DiscountFixed,
		DiscountValue: decimal.NewFromInt(500),
		StartAt:       time.Now().Add(-time.Hour),
		EndAt:         time.Now().Add(time.Hour),
		UsageLimit:    2,
		IsActive:      true,
		AppliesTo:     entity.AppliesToAll,
		ChefID:        1,
	}
	require.NoError(t, repo.Create(&c))

	for i := 0; i < 2; i++ {
		affected, err := repo.ConsumeGuard(db, c.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, affected)
	}

	affected, err := repo.ConsumeGuard(db, c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)

	got, err := repo.GetForChef(1, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TimesUsed)
}

// Duplicate codes are legal across chefs and illegal within one.
func TestCouponCodeUniquePerChef(t *testing.T) {
	db := newTestDB(t)
	repo := NewCouponRepository(db)

	mk := func(chefID uint) error {
		return repo.Create(&entity.Coupon{
			Code:          "SAVE10",
			DiscountType:  entity.DiscountFixed,
			DiscountValue: decimal.NewFromInt(1000),
			StartAt:       time.Now().Add(-time.Hour),
			EndAt:         time.Now().Add(time.Hour),
			UsageLimit:    5,
			IsActive:      true,
			AppliesTo:     entity.AppliesToAll,
			ChefID:        chefID,
		})
	}

	require.NoError(t, mk(1))
	require.NoError(t, mk(2))
	assert.ErrorIs(t, mk(1), gorm.ErrDuplicatedKey)
}
