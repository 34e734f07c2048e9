package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/elsonbaty123/wagbty-sub000/entity"
	"github.com/elsonbaty123/wagbty-sub000/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Each test gets its own named in-memory database; cache=shared keeps
// it alive across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{}, &entity.ChefProfile{}, &entity.DeliveryProfile{},
		&entity.Dish{}, &entity.DishRating{},
		&entity.Coupon{},
		&entity.Order{},
		&entity.Notification{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type testEnv struct {
	DB       *gorm.DB
	Users    *repository.UserRepository
	Dishes   *repository.DishRepository
	Orders   *repository.OrderRepository
	Coupons  *repository.CouponRepository
	Notifs   *repository.NotificationRepository
	Notif    *NotificationService
	Coupon   *CouponService
	Dish     *DishService
	Order    *OrderService
	Chef     *ChefService
	Delivery *DeliveryService
	Auth     *AuthService
	Admin    *AdminService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	users := repository.NewUserRepository(db)
	dishes := repository.NewDishRepository(db)
	orders := repository.NewOrderRepository(db)
	coupons := repository.NewCouponRepository(db)
	notifs := repository.NewNotificationRepository(db)

	notifSvc := NewNotificationService(notifs, zerolog.Nop())
	couponSvc := NewCouponService(coupons, dishes)
	orderSvc := NewOrderService(db, orders, dishes, users, coupons, couponSvc, notifSvc)

	return &testEnv{
		DB:       db,
		Users:    users,
		Dishes:   dishes,
		Orders:   orders,
		Coupons:  coupons,
		Notifs:   notifs,
		Notif:    notifSvc,
		Coupon:   couponSvc,
		Dish:     NewDishService(dishes),
		Order:    orderSvc,
		Chef:     NewChefService(db, users, orders, notifSvc),
		Delivery: NewDeliveryService(db, users, orders, orderSvc),
		Auth:     NewAuthService(db, users, "test-secret", time.Hour),
		Admin:    NewAdminService(db, users, orders, dishes, notifSvc),
	}
}

func (e *testEnv) mustCreateUser(t *testing.T, email, role string) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:         email,
		Password:      "x",
		FirstName:     "Test",
		LastName:      role,
		Role:          role,
		AccountStatus: entity.AccountActive,
	}
	if err := e.DB.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func (e *testEnv) mustCreateChef(t *testing.T, email, availability string) *entity.User {
	t.Helper()
	u := e.mustCreateUser(t, email, entity.RoleChef)
	p := &entity.ChefProfile{UserID: u.ID, AvailabilityStatus: availability}
	if err := e.DB.Create(p).Error; err != nil {
		t.Fatalf("create chef profile: %v", err)
	}
	return u
}

func (e *testEnv) mustCreateDish(t *testing.T, chefID uint, name string, price int64) *entity.Dish {
	t.Helper()
	d := &entity.Dish{Name: name, Price: price, IsAvailable: true, ChefID: chefID}
	if err := e.DB.Create(d).Error; err != nil {
		t.Fatalf("create dish: %v", err)
	}
	return d
}

func (e *testEnv) mustCreateCoupon(t *testing.T, c *entity.Coupon) *entity.Coupon {
	t.Helper()
	if c.StartAt.IsZero() {
		c.StartAt = time.Now().Add(-time.Hour)
	}
	if c.EndAt.IsZero() {
		c.EndAt = time.Now().Add(time.Hour)
	}
	if err := e.DB.Create(c).Error; err != nil {
		t.Fatalf("create coupon: %v", err)
	}
	return c
}

func pct(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
