package services

import (
	"errors"

	"github.com/elsonbaty123/wagbty-sub000/entity"
	"github.com/elsonbaty123/wagbty-sub000/repository"

	"gorm.io/gorm"
)

type DeliveryService struct {
	DB        *gorm.DB
	UserRepo  *repository.UserRepository
	OrderRepo *repository.OrderRepository
	Orders    *OrderService
}

func NewDeliveryService(db *gorm.DB, userRepo *repository.UserRepository, orderRepo *repository.OrderRepository, orders *OrderService) *DeliveryService {
	return &DeliveryService{DB: db, UserRepo: userRepo, OrderRepo: orderRepo, Orders: orders}
}

// Unassigned ready_for_delivery orders any driver may accept.
func (s *DeliveryService) ListAvailable() ([]repository.AvailableOrderRow, error) {
	return s.OrderRepo.ListAvailableForDelivery(50)
}

// Accept claims the order for this driver; losing a race surfaces as
// ErrOrderTaken ("order no longer available").
func (s *DeliveryService) Accept(personID, orderID uint) error {
	return s.Orders.AssignDelivery(orderID, personID)
}

func (s *DeliveryService) CurrentWork(personID uint) ([]entity.Order, error) {
	active := []string{entity.StatusReadyForDelivery, entity.StatusOutForDelivery}
	return s.OrderRepo.ListOrdersForDeliveryPerson(personID, active, 10)
}

func (s *DeliveryService) History(personID uint, limit int) ([]entity.Order, error) {
	done := []string{entity.StatusDelivered, entity.StatusNotDelivered}
	return s.OrderRepo.ListOrdersForDeliveryPerson(personID, done, limit)
}

type DeliveryProfileIn struct {
	VehicleType  string `json:"vehicleType" binding:"required"`
	LicensePlate string `json:"licensePlate" binding:"required"`
}

func (s *DeliveryService) GetProfile(userID uint) (*entity.DeliveryProfile, error) {
	return s.UserRepo.GetDeliveryProfile(userID)
}

func (s *DeliveryService) UpsertProfile(userID uint, in *DeliveryProfileIn) (*entity.DeliveryProfile, error) {
	p, err := s.UserRepo.GetDeliveryProfile(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		p = &entity.DeliveryProfile{UserID: userID}
	}
	p.VehicleType = in.VehicleType
	p.LicensePlate = in.LicensePlate
	if p.ID == 0 {
		err = s.UserRepo.CreateDeliveryProfile(s.DB, p)
	} else {
		err = s.DB.Save(p).Error
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
