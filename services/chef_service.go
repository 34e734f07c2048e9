package services

import (
	"errors"

	"github.com/elsonbaty123/wagbty-sub000/entity"
	"github.com/elsonbaty123/wagbty-sub000/repository"

	"gorm.io/gorm"
)

var (
	ErrChefProfileNotFound = errors.New("chef profile not found")
	ErrInvalidAvailability = errors.New("unknown availability value")
)

type ChefService struct {
	DB        *gorm.DB
	UserRepo  *repository.UserRepository
	OrderRepo *repository.OrderRepository
	Notif     *NotificationService
}

func NewChefService(db *gorm.DB, userRepo *repository.UserRepository, orderRepo *repository.OrderRepository, notif *NotificationService) *ChefService {
	return &ChefService{DB: db, UserRepo: userRepo, OrderRepo: orderRepo, Notif: notif}
}

var validAvailability = map[string]bool{
	entity.ChefAvailable: true,
	entity.ChefBusy:      true,
	entity.ChefClosed:    true,
}

// SetAvailability flips the storefront gate. Coming off busy sends the
// chef a one-time count of orders parked in waiting_for_chef; those
// orders are NOT re-driven automatically, the chef acts on them.
func (s *ChefService) SetAvailability(userID uint, status string) error {
	if !validAvailability[status] {
		return ErrInvalidAvailability
	}

	p, err := s.UserRepo.GetChefProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChefProfileNotFound
		}
		return err
	}

	wasBusy := p.AvailabilityStatus == entity.ChefBusy
	p.AvailabilityStatus = status
	if err := s.UserRepo.SaveChefProfile(s.DB, p); err != nil {
		return err
	}

	if wasBusy && status == entity.ChefAvailable {
		cnt, err := s.OrderRepo.CountWaitingForChef(userID)
		if err == nil && cnt > 0 {
			s.Notif.Notify(userID, KeyWaitlistPending,
				map[string]any{"count": cnt}, "/chef/orders?status=waiting_for_chef")
		}
	}
	return nil
}

type ChefProfileIn struct {
	Specialty string `json:"specialty"`
	Bio       string `json:"bio"`
}

func (s *ChefService) GetProfile(userID uint) (*entity.ChefProfile, error) {
	p, err := s.UserRepo.GetChefProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChefProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ChefService) UpdateProfile(userID uint, in *ChefProfileIn) (*entity.ChefProfile, error) {
	p, err := s.UserRepo.GetChefProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChefProfileNotFound
		}
		return nil, err
	}
	p.Specialty = in.Specialty
	p.Bio = in.Bio
	if err := s.UserRepo.SaveChefProfile(s.DB, p); err != nil {
		return nil, err
	}
	return p, nil
}
