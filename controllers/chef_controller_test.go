package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/elsonbaty123/wagbty-sub000/entity"
	"github.com/elsonbaty123/wagbty-sub000/repository"
	"github.com/elsonbaty123/wagbty-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
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

// The chef order listing must be reachable through the router and
// return the envelope with the chef's own orders only.
func TestChefListOrdersRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	userRepo := repository.NewUserRepository(db)
	dishRepo := repository.NewDishRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	notifSvc := services.NewNotificationService(notifRepo, zerolog.Nop())
	couponSvc := services.NewCouponService(couponRepo, dishRepo)
	orderSvc := services.NewOrderService(db, orderRepo, dishRepo, userRepo, couponRepo, couponSvc, notifSvc)
	chefSvc := services.NewChefService(db, userRepo, orderRepo, notifSvc)
	ctrl := NewChefController(chefSvc, orderSvc)

	chef := entity.User{Email: "chef@test.io", Role: entity.RoleChef, AccountStatus: entity.AccountActive}
	require.NoError(t, db.Create(&chef).Error)
	other := entity.User{Email: "other@test.io", Role: entity.RoleChef, AccountStatus: entity.AccountActive}
	require.NoError(t, db.Create(&other).Error)

	require.NoError(t, db.Create(&entity.Order{
		Code: "ord-1", CustomerID: 9, DishID: 1, ChefID: chef.ID,
		Quantity: 1, Status: entity.StatusPendingReview,
	}).Error)
	require.NoError(t, db.Create(&entity.Order{
		Code: "ord-2", CustomerID: 9, DishID: 1, ChefID: other.ID,
		Quantity: 1, Status: entity.StatusPendingReview,
	}).Error)

	r := gin.New()
	r.GET("/chef/orders", func(c *gin.Context) {
		c.Set("userId", chef.ID)
		c.Set("role", entity.RoleChef)
	}, ctrl.ListOrders)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chef/orders", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		OK   bool `json:"ok"`
		Data struct {
			Items []repository.ChefOrderSummary `json:"items"`
			Total int64                         `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.EqualValues(t, 1, body.Data.Total)
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, "ord-1", body.Data.Items[0].Code)
}
