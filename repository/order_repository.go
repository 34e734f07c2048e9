package repository

import (
	"time"

	"github.com/elsonbaty123/wagbty-sub000/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders (CRUD) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForCustomer(customerID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND customer_id = ?", orderID, customerID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForChef(chefID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND chef_id = ?", orderID, chefID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /profile/orders → customer order history
type OrderSummary struct {
	ID        uint      `json:"id"`
	Code      string    `json:"code"`
	DishName  string    `json:"dishName"`
	ChefName  string    `json:"chefName"`
	Total     int64     `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForCustomer(customerID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, code, dish_name, chef_name, total, status, created_at").
		Where("customer_id = ?", customerID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// GET /chef/orders → chef dashboard listing, optionally by status
type ChefOrderSummary struct {
	ID                   uint      `json:"id"`
	Code                 string    `json:"code"`
	CustomerName         string    `json:"customerName"`
	DishName             string    `json:"dishName"`
	Quantity             int       `json:"quantity"`
	Total                int64     `json:"total"`
	Status               string    `json:"status"`
	DailyDishOrderNumber int       `json:"dailyDishOrderNumber"`
	CreatedAt            time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForChef(chefID uint, status string, page, limit int) ([]ChefOrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	count := r.DB.Model(&entity.Order{}).Where("chef_id = ?", chefID)
	if status != "" {
		count = count.Where("status = ?", status)
	}
	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db := r.DB.Model(&entity.Order{}).
		Select("id, code, customer_name, dish_name, quantity, total, status, daily_dish_order_number, created_at").
		Where("chef_id = ?", chefID)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	var out []ChefOrderSummary
	err := db.Order("id DESC").Limit(limit).Offset(offset).Scan(&out).Error
	return out, total, err
}

// ---------------- Creation-time helpers ----------------

// Orders by the same customer for the same dish since local midnight.
// The count feeds DailyDishOrderNumber; informational, not a uniqueness
// constraint.
func (r *OrderRepository) CountDailyDishOrders(tx *gorm.DB, customerID, dishID uint, since time.Time) (int64, error) {
	var cnt int64
	err := tx.Model(&entity.Order{}).
		Where("customer_id = ? AND dish_id = ? AND created_at >= ?", customerID, dishID, since).
		Count(&cnt).Error
	return cnt, err
}

// ---------------- Guarded mutations ----------------

// Compare-and-swap on the status column: succeeds only when the order
// is still in fromStatus. Zero rows affected means a lost race or an
// illegal jump.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, fromStatus, toStatus string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, fromStatus).
		Update("status", toStatus)
	return res.RowsAffected, res.Error
}

// At-most-once delivery assignment: the NULL guard makes the second of
// two racing drivers lose cleanly instead of overwriting the first.
func (r *OrderRepository) AssignDeliveryGuard(tx *gorm.DB, orderID, personID uint, personName string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND delivery_person_id IS NULL", orderID).
		Updates(map[string]any{
			"delivery_person_id":   personID,
			"delivery_person_name": personName,
		})
	return res.RowsAffected, res.Error
}

// At-most-once review.
func (r *OrderRepository) SetReviewGuard(tx *gorm.DB, orderID uint, rating int, review string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND rating IS NULL", orderID).
		Updates(map[string]any{"rating": rating, "review": review})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) SetNotDelivered(tx *gorm.DB, orderID uint, reason, blame string, at time.Time) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, entity.StatusOutForDelivery).
		Updates(map[string]any{
			"status":               entity.StatusNotDelivered,
			"not_delivered_reason": reason,
			"not_delivered_blame":  blame,
			"not_delivered_at":     at,
		})
	return res.RowsAffected, res.Error
}

// ---------------- Delivery feed ----------------

type AvailableOrderRow struct {
	ID              uint      `json:"id"`
	Code            string    `json:"code"`
	DishName        string    `json:"dishName"`
	ChefName        string    `json:"chefName"`
	DeliveryAddress string    `json:"deliveryAddress"`
	Total           int64     `json:"total"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Unassigned ready_for_delivery orders, oldest first.
func (r *OrderRepository) ListAvailableForDelivery(limit int) ([]AvailableOrderRow, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []AvailableOrderRow
	err := r.DB.Model(&entity.Order{}).
		Select("id, code, dish_name, chef_name, delivery_address, total, created_at").
		Where("status = ? AND delivery_person_id IS NULL", entity.StatusReadyForDelivery).
		Order("id ASC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) ListOrdersForDeliveryPerson(personID uint, statuses []string, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	db := r.DB.Where("delivery_person_id = ?", personID)
	if len(statuses) > 0 {
		db = db.Where("status IN ?", statuses)
	}
	var out []entity.Order
	err := db.Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}

// One-time count sent to the chef on the busy → available flip.
func (r *OrderRepository) CountWaitingForChef(chefID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).
		Where("chef_id = ? AND status = ?", chefID, entity.StatusWaitingForChef).
		Count(&cnt).Error
	return cnt, err
}

func (r *OrderRepository) CountAll() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Order{}).Count(&cnt).Error
	return cnt, err
}
