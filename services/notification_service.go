package services

import (
	"encoding/json"
	"errors"

	"github.com/elsonbaty123/wagbty-sub000/entity"
	"github.com/elsonbaty123/wagbty-sub000/repository"

	"github.com/rs/zerolog"
)

// Message template keys. The client resolves these against its own
// translations; params carry the interpolation values.
const (
	KeyOrderPlaced      = "notify.order.placed"
	KeyOrderWaitlisted  = "notify.order.waitlisted"
	KeyNewOrder         = "notify.chef.new_order"
	KeyNewWaitlisted    = "notify.chef.new_waitlisted_order"
	KeyOrderPreparing   = "notify.order.preparing"
	KeyOrderOutForDeliv = "notify.order.out_for_delivery"
	KeyOrderDelivered   = "notify.order.delivered"
	KeyOrderDeliveredCh = "notify.chef.order_delivered"
	KeyOrderRejected    = "notify.order.rejected"
	KeyOrderReadyPickup = "notify.delivery.order_ready"
	KeyDriverAssigned   = "notify.order.driver_assigned"
	KeyOrderNotDeliv    = "notify.order.not_delivered"
	KeyWaitlistPending  = "notify.chef.waitlist_pending"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Publisher pushes a stored notification to any live subscriber
// (the websocket hub implements this). Nil is fine.
type Publisher interface {
	Publish(n *entity.Notification)
}

type NotificationService struct {
	Repo *repository.NotificationRepository
	Hub  Publisher
	Log  zerolog.Logger
}

func NewNotificationService(repo *repository.NotificationRepository, log zerolog.Logger) *NotificationService {
	return &NotificationService{Repo: repo, Log: log}
}

// Notify is fire-and-forget: a failed insert must never fail the
// operation that triggered it, so errors are logged and swallowed.
func (s *NotificationService) Notify(recipientID uint, key string, params map[string]any, link string) {
	encoded := ""
	if len(params) > 0 {
		b, err := json.Marshal(params)
		if err != nil {
			s.Log.Error().Err(err).Str("key", key).Msg("notify: encode params")
		} else {
			encoded = string(b)
		}
	}

	n := entity.Notification{
		RecipientID: recipientID,
		TitleKey:    key + ".title",
		MessageKey:  key + ".message",
		Params:      encoded,
		Link:        link,
	}
	if err := s.Repo.Create(&n); err != nil {
		s.Log.Error().Err(err).Uint("recipient", recipientID).Str("key", key).Msg("notify: persist")
		return
	}
	if s.Hub != nil {
		s.Hub.Publish(&n)
	}
}

func (s *NotificationService) List(recipientID uint, limit int) ([]entity.Notification, error) {
	return s.Repo.ListForRecipient(recipientID, limit)
}

func (s *NotificationService) UnreadCount(recipientID uint) (int64, error) {
	return s.Repo.CountUnread(recipientID)
}

func (s *NotificationService) MarkRead(recipientID, notificationID uint) error {
	affected, err := s.Repo.MarkRead(recipientID, notificationID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *NotificationService) MarkAllRead(recipientID uint) error {
	_, err := s.Repo.MarkAllRead(recipientID)
	return err
}
