package services

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/elsonbaty123/wagbty-sub000/entity"

	"gorm.io/gorm"
)

var (
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOrderTaken        = errors.New("order no longer available")
	ErrAlreadyReviewed   = errors.New("order already reviewed")
	ErrNotDeliveredYet   = errors.New("order is not delivered yet")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrInvalidReason     = errors.New("reason must be 10-500 characters")
	ErrInvalidBlame      = errors.New("unknown responsibility value")
)

// The one transition table; anything not listed is rejected. A busy
// chef can pull a waitlisted order straight into preparing without
// passing through pending_review first.
var orderTransitions = map[string][]string{
	entity.StatusWaitingForChef:   {entity.StatusPendingReview, entity.StatusPreparing, entity.StatusRejected},
	entity.StatusPendingReview:    {entity.StatusPreparing, entity.StatusRejected},
	entity.StatusPreparing:        {entity.StatusReadyForDelivery},
	entity.StatusReadyForDelivery: {entity.StatusOutForDelivery},
	entity.StatusOutForDelivery:   {entity.StatusDelivered, entity.StatusNotDelivered},
}

func CanTransition(from, to string) bool {
	for _, t := range orderTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

var validBlames = map[string]bool{
	entity.BlameCustomerUnavailable: true,
	entity.BlameCustomerRefused:     true,
	entity.BlameAddressIssue:        true,
	entity.BlameExternalIssue:       true,
	entity.BlameOther:               true,
}

// ----- Chef actions -----

// UpdateStatusForChef moves one of the chef's own orders along the
// state machine. The CAS repo guard re-checks the current status at
// write time, so a concurrent transition makes the slower caller fail
// instead of silently overwriting.
func (s *OrderService) UpdateStatusForChef(chefID, orderID uint, newStatus string) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if o.ChefID != chefID {
		return ErrForbidden
	}
	if err := s.transition(o, newStatus); err != nil {
		return err
	}
	s.notifyStatus(o, newStatus)
	return nil
}

// ----- Delivery actions -----

// AssignDelivery claims an order for a driver, at most once. Two
// drivers racing for the same order: the first write wins, the second
// sees zero rows and gets ErrOrderTaken.
func (s *OrderService) AssignDelivery(orderID, personID uint) error {
	person, err := s.UserRepo.GetByID(personID)
	if err != nil {
		return err
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	affected, err := s.Repo.AssignDeliveryGuard(s.DB, orderID, personID, fullName(person))
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderTaken
	}

	link := fmt.Sprintf("/orders/%d", o.ID)
	params := map[string]any{"orderCode": o.Code, "driverName": fullName(person)}
	s.Notif.Notify(o.CustomerID, KeyDriverAssigned, params, link)
	s.Notif.Notify(o.ChefID, KeyDriverAssigned, params, fmt.Sprintf("/chef/orders/%d", o.ID))
	return nil
}

func (s *OrderService) UpdateStatusForDelivery(personID, orderID uint, newStatus string) error {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if o.DeliveryPersonID == nil || *o.DeliveryPersonID != personID {
		return ErrForbidden
	}
	if err := s.transition(o, newStatus); err != nil {
		return err
	}
	s.notifyStatus(o, newStatus)
	return nil
}

type NotDeliveredReq struct {
	Reason         string `json:"reason" binding:"required"`
	Responsibility string `json:"responsibility" binding:"required"`
}

// MarkNotDelivered records a failed delivery: terminal status plus the
// reason / responsibility sub-record, then tells the customer why.
func (s *OrderService) MarkNotDelivered(personID, orderID uint, req *NotDeliveredReq) error {
	if n := utf8.RuneCountInString(req.Reason); n < 10 || n > 500 {
		return ErrInvalidReason
	}
	if !validBlames[req.Responsibility] {
		return ErrInvalidBlame
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if o.DeliveryPersonID == nil || *o.DeliveryPersonID != personID {
		return ErrForbidden
	}

	affected, err := s.Repo.SetNotDelivered(s.DB, orderID, req.Reason, req.Responsibility, s.now())
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInvalidTransition
	}

	s.Notif.Notify(o.CustomerID, KeyOrderNotDeliv,
		map[string]any{"orderCode": o.Code, "reason": req.Reason},
		fmt.Sprintf("/orders/%d", o.ID))
	return nil
}

// ----- Customer actions -----

// AddReview rates a delivered order, at most once, and mirrors the
// rating onto the dish's denormalized rating list in the same tx.
func (s *OrderService) AddReview(customerID, orderID uint, rating int, review string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	o, err := s.Repo.GetOrderForCustomer(customerID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if o.Status != entity.StatusDelivered {
		return ErrNotDeliveredYet
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.SetReviewGuard(tx, orderID, rating, review)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrAlreadyReviewed
		}
		return s.DishRepo.CreateRating(tx, &entity.DishRating{
			Rating:     rating,
			Review:     review,
			DishID:     o.DishID,
			OrderID:    o.ID,
			CustomerID: customerID,
		})
	})
}

// ----- shared -----

func (s *OrderService) transition(o *entity.Order, newStatus string) error {
	if !CanTransition(o.Status, newStatus) {
		return ErrInvalidTransition
	}
	affected, err := s.Repo.UpdateStatusGuard(s.DB, o.ID, o.Status, newStatus)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInvalidTransition
	}
	return nil
}

// Role-appropriate fan-out for the statuses that warrant one.
func (s *OrderService) notifyStatus(o *entity.Order, newStatus string) {
	link := fmt.Sprintf("/orders/%d", o.ID)
	params := map[string]any{"orderCode": o.Code, "dishName": o.DishName}

	switch newStatus {
	case entity.StatusPreparing:
		s.Notif.Notify(o.CustomerID, KeyOrderPreparing, params, link)
	case entity.StatusReadyForDelivery:
		if o.DeliveryPersonID != nil {
			s.Notif.Notify(*o.DeliveryPersonID, KeyOrderReadyPickup, params, fmt.Sprintf("/delivery/orders/%d", o.ID))
		}
	case entity.StatusOutForDelivery:
		s.Notif.Notify(o.CustomerID, KeyOrderOutForDeliv, params, link)
	case entity.StatusDelivered:
		s.Notif.Notify(o.CustomerID, KeyOrderDelivered, params, link)
		s.Notif.Notify(o.ChefID, KeyOrderDeliveredCh, params, fmt.Sprintf("/chef/orders/%d", o.ID))
	case entity.StatusRejected:
		s.Notif.Notify(o.CustomerID, KeyOrderRejected, params, link)
	}
}
