package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/elsonbaty123/wagbty-sub000/entity"
	"github.com/elsonbaty123/wagbty-sub000/repository"
	"github.com/elsonbaty123/wagbty-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A zero subtotal is a legal input for the checkout probe; it must get
// the inline {discount, error} body, not a binding 400.
func TestValidateCouponZeroSubtotal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	dishRepo := repository.NewDishRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	couponSvc := services.NewCouponService(couponRepo, dishRepo)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)
	notifSvc := services.NewNotificationService(repository.NewNotificationRepository(db), zerolog.Nop())
	orderSvc := services.NewOrderService(db, orderRepo, dishRepo, userRepo, couponRepo, couponSvc, notifSvc)
	ctrl := NewOrderController(orderSvc, couponSvc)

	require.NoError(t, db.Create(&entity.Coupon{
		Code: "TEN", DiscountType: entity.DiscountPercentage,
		DiscountValue: decimal.NewFromInt(10),
		StartAt:       time.Now().Add(-time.Hour),
		EndAt:         time.Now().Add(time.Hour),
		UsageLimit:    5, IsActive: true,
		AppliesTo: entity.AppliesToAll, ChefID: 1,
	}).Error)

	r := gin.New()
	r.POST("/orders/validate-coupon", ctrl.ValidateCoupon)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/validate-coupon",
		strings.NewReader(`{"chefId":1,"code":"TEN","dishId":1,"subtotal":0}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		OK   bool `json:"ok"`
		Data struct {
			Discount int64 `json:"discount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, int64(0), body.Data.Discount, "10% of 0 is 0")
}
