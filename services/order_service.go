package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/elsonbaty123/wagbty-sub000/entity"
	"github.com/elsonbaty123/wagbty-sub000/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrDishNotFound    = errors.New("dish not found")
	ErrDishUnavailable = errors.New("dish is not available")
	ErrChefNotFound    = errors.New("chef not found")
	ErrChefClosed      = errors.New("chef is closed")
	ErrOrderNotFound   = errors.New("order not found")
)

const defaultDeliveryFee int64 = 2000 // minor units

type OrderService struct {
	DB         *gorm.DB
	Repo       *repository.OrderRepository
	DishRepo   *repository.DishRepository
	UserRepo   *repository.UserRepository
	CouponRepo *repository.CouponRepository
	Coupons    *CouponService
	Notif      *NotificationService

	DeliveryFee int64

	// injectable clock for the daily-counter boundary tests
	now func() time.Time
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	dishRepo *repository.DishRepository,
	userRepo *repository.UserRepository,
	couponRepo *repository.CouponRepository,
	coupons *CouponService,
	notif *NotificationService,
) *OrderService {
	return &OrderService{
		DB:          db,
		Repo:        repo,
		DishRepo:    dishRepo,
		UserRepo:    userRepo,
		CouponRepo:  couponRepo,
		Coupons:     coupons,
		Notif:       notif,
		DeliveryFee: defaultDeliveryFee,
		now:         time.Now,
	}
}

// ----- Create -----

type CreateOrderReq struct {
	DishID          uint   `json:"dishId" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required,min=1"`
	DeliveryAddress string `json:"deliveryAddress" binding:"required"`
	CouponCode      string `json:"couponCode"`
}

type CreateOrderRes struct {
	ID       uint   `json:"id"`
	Code     string `json:"code"`
	Status   string `json:"status"`
	Subtotal int64  `json:"subtotal"`
	Discount int64  `json:"discount"`
	Total    int64  `json:"total"`
}

// Create places one order for one dish. The chef's availability at
// this moment decides the entry status: busy parks the order in
// waiting_for_chef, closed refuses it, anything else goes to
// pending_review. Dish, chef and customer fields are snapshotted onto
// the order on purpose (history must survive later edits).
//
// The order insert and the coupon consume share one transaction; if
// the coupon cap is hit between validation and commit, the whole
// order rolls back.
func (s *OrderService) Create(customerID uint, req *CreateOrderReq) (*CreateOrderRes, error) {
	customer, err := s.UserRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}

	dish, err := s.DishRepo.Get(req.DishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}
	if !dish.IsAvailable {
		return nil, ErrDishUnavailable
	}

	chef, err := s.UserRepo.GetByID(dish.ChefID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChefNotFound
		}
		return nil, err
	}
	profile, err := s.UserRepo.GetChefProfile(chef.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	availability := entity.ChefAvailable
	if profile != nil {
		availability = profile.AvailabilityStatus
	}
	if availability == entity.ChefClosed {
		return nil, ErrChefClosed
	}
	status := entity.StatusPendingReview
	if availability == entity.ChefBusy {
		status = entity.StatusWaitingForChef
	}

	subtotal := dish.Price * int64(req.Quantity)

	var coupon *entity.Coupon
	discount := int64(0)
	if req.CouponCode != "" {
		coupon, err = s.CouponRepo.FindByCode(chef.ID, req.CouponCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCouponInvalid
			}
			return nil, err
		}
		if err := s.Coupons.checkUsable(coupon, dish.ID); err != nil {
			return nil, err
		}
		discount = discountFor(coupon, subtotal)
	}

	total := subtotal - discount + s.DeliveryFee

	order := entity.Order{
		Code:            uuid.NewString(),
		CustomerID:      customer.ID,
		CustomerName:    fullName(customer),
		CustomerPhone:   customer.PhoneNumber,
		DeliveryAddress: req.DeliveryAddress,

		DishID:          dish.ID,
		DishName:        dish.Name,
		DishDescription: dish.Description,
		DishPrice:       dish.Price,
		DishImageURL:    dish.ImageURL,

		ChefID:   chef.ID,
		ChefName: fullName(chef),

		Quantity:    req.Quantity,
		Subtotal:    subtotal,
		Discount:    discount,
		DeliveryFee: s.DeliveryFee,
		Total:       total,
		Status:      status,
	}
	if coupon != nil {
		order.AppliedCouponCode = coupon.Code
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cnt, err := s.Repo.CountDailyDishOrders(tx, customer.ID, dish.ID, localMidnight(s.now()))
		if err != nil {
			return err
		}
		order.DailyDishOrderNumber = int(cnt) + 1

		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		if coupon != nil {
			affected, err := s.CouponRepo.ConsumeGuard(tx, coupon.ID)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrCouponLimitReached
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	link := fmt.Sprintf("/orders/%d", order.ID)
	params := map[string]any{"orderCode": order.Code, "dishName": order.DishName}
	if status == entity.StatusWaitingForChef {
		s.Notif.Notify(customer.ID, KeyOrderWaitlisted, params, link)
		s.Notif.Notify(chef.ID, KeyNewWaitlisted, params, fmt.Sprintf("/chef/orders/%d", order.ID))
	} else {
		s.Notif.Notify(customer.ID, KeyOrderPlaced, params, link)
		s.Notif.Notify(chef.ID, KeyNewOrder, params, fmt.Sprintf("/chef/orders/%d", order.ID))
	}

	return &CreateOrderRes{
		ID:       order.ID,
		Code:     order.Code,
		Status:   order.Status,
		Subtotal: order.Subtotal,
		Discount: order.Discount,
		Total:    order.Total,
	}, nil
}

// ----- List & Detail -----

func (s *OrderService) ListForCustomer(customerID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForCustomer(customerID, limit)
}

func (s *OrderService) DetailForCustomer(customerID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForCustomer(customerID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

type ChefOrderListOut struct {
	Items []repository.ChefOrderSummary `json:"items"`
	Total int64                         `json:"total"`
	Page  int                           `json:"page"`
	Limit int                           `json:"limit"`
}

func (s *OrderService) ListForChef(chefID uint, status string, page, limit int) (*ChefOrderListOut, error) {
	items, total, err := s.Repo.ListOrdersForChef(chefID, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &ChefOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) DetailForChef(chefID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForChef(chefID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// ----- helpers -----

func fullName(u *entity.User) string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Midnight in server-local time; the daily dish counter resets here.
func localMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
