package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order statuses. waiting_for_chef is the alternate entry state used
// when the chef was busy at order time; delivered, rejected and
// not_delivered are terminal.
const (
	StatusWaitingForChef   = "waiting_for_chef"
	StatusPendingReview    = "pending_review"
	StatusPreparing        = "preparing"
	StatusReadyForDelivery = "ready_for_delivery"
	StatusOutForDelivery   = "out_for_delivery"
	StatusDelivered        = "delivered"
	StatusRejected         = "rejected"
	StatusNotDelivered     = "not_delivered"
)

// Responsibility classification for a failed delivery.
const (
	BlameCustomerUnavailable = "customer_unavailable"
	BlameCustomerRefused     = "customer_refused"
	BlameAddressIssue        = "address_issue"
	BlameExternalIssue       = "external_issue"
	BlameOther               = "other"
)

// Order keeps denormalized snapshots of the dish, chef and customer
// taken at creation time, so the order history stays intact when the
// source records are later edited. Deliberate; do not join-through.
type Order struct {
	gorm.Model
	Code string `gorm:"size:36;uniqueIndex;not null" json:"code"`

	CustomerID      uint   `gorm:"index;not null" json:"customerId"`
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	DeliveryAddress string `json:"deliveryAddress"`

	// dish snapshot
	DishID          uint   `gorm:"index;not null" json:"dishId"`
	DishName        string `json:"dishName"`
	DishDescription string `json:"dishDescription"`
	DishPrice       int64  `json:"dishPrice"`
	DishImageURL    string `json:"dishImageUrl"`

	// chef snapshot (id + name only)
	ChefID   uint   `gorm:"index;not null" json:"chefId"`
	ChefName string `json:"chefName"`

	Quantity    int   `gorm:"not null" json:"quantity"`
	Subtotal    int64 `json:"subtotal"`
	Discount    int64 `json:"discount"`
	DeliveryFee int64 `json:"deliveryFee"`
	Total       int64 `json:"total"`

	AppliedCouponCode string `json:"appliedCouponCode,omitempty"`

	Status string `gorm:"index;not null" json:"status"`

	// Nth order for this dish by this customer since local midnight.
	DailyDishOrderNumber int `json:"dailyDishOrderNumber"`

	// set at most once by delivery assignment
	DeliveryPersonID   *uint  `gorm:"index" json:"deliveryPersonId,omitempty"`
	DeliveryPersonName string `json:"deliveryPersonName,omitempty"`

	// set at most once post-delivery
	Rating *int   `json:"rating,omitempty"`
	Review string `json:"review,omitempty"`

	NotDeliveredReason string     `json:"notDeliveredReason,omitempty"`
	NotDeliveredBlame  string     `json:"notDeliveredBlame,omitempty"`
	NotDeliveredAt     *time.Time `json:"notDeliveredAt,omitempty"`
}
