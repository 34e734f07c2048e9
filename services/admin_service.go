package services

import (
	"errors"

	"github.com/elsonbaty123/wagbty-sub000/entity"
	"github.com/elsonbaty123/wagbty-sub000/repository"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrNotReviewable = errors.New("account is not awaiting review")
)

// AdminService owns the back-office account lifecycle: chef and
// delivery applicants sit in pending_approval until approved or
// rejected here, and active accounts can be suspended/reinstated.
type AdminService struct {
	DB        *gorm.DB
	UserRepo  *repository.UserRepository
	OrderRepo *repository.OrderRepository
	DishRepo  *repository.DishRepository
	Notif     *NotificationService
}

func NewAdminService(db *gorm.DB, userRepo *repository.UserRepository, orderRepo *repository.OrderRepository, dishRepo *repository.DishRepository, notif *NotificationService) *AdminService {
	return &AdminService{DB: db, UserRepo: userRepo, OrderRepo: orderRepo, DishRepo: dishRepo, Notif: notif}
}

func (s *AdminService) ListAccounts(role, status string, limit int) ([]entity.User, error) {
	return s.UserRepo.ListByRoleAndStatus(role, status, limit)
}

func (s *AdminService) Approve(userID uint) error {
	return s.review(userID, entity.AccountActive, "notify.account.approved")
}

func (s *AdminService) Reject(userID uint) error {
	return s.review(userID, entity.AccountRejected, "notify.account.rejected")
}

// review moves a pending account to its verdict; anything not pending
// is refused so approve/reject cannot flip an already-decided account.
func (s *AdminService) review(userID uint, verdict, notifyKey string) error {
	u, err := s.UserRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if u.AccountStatus != entity.AccountPendingApproval {
		return ErrNotReviewable
	}
	if _, err := s.UserRepo.UpdateAccountStatus(s.DB, userID, verdict); err != nil {
		return err
	}
	s.Notif.Notify(userID, notifyKey, nil, "/login")
	return nil
}

func (s *AdminService) Suspend(userID uint) error {
	return s.setStatus(userID, entity.AccountSuspended)
}

func (s *AdminService) Reinstate(userID uint) error {
	return s.setStatus(userID, entity.AccountActive)
}

func (s *AdminService) setStatus(userID uint, status string) error {
	affected, err := s.UserRepo.UpdateAccountStatus(s.DB, userID, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

type DashboardOut struct {
	Customers int64 `json:"customers"`
	Chefs     int64 `json:"chefs"`
	Drivers   int64 `json:"drivers"`
	Dishes    int64 `json:"dishes"`
	Orders    int64 `json:"orders"`
}

func (s *AdminService) Dashboard() (*DashboardOut, error) {
	var out DashboardOut
	var err error
	if out.Customers, err = s.UserRepo.CountByRole(entity.RoleCustomer); err != nil {
		return nil, err
	}
	if out.Chefs, err = s.UserRepo.CountByRole(entity.RoleChef); err != nil {
		return nil, err
	}
	if out.Drivers, err = s.UserRepo.CountByRole(entity.RoleDelivery); err != nil {
		return nil, err
	}
	if out.Dishes, err = s.DishRepo.CountAll(); err != nil {
		return nil, err
	}
	if out.Orders, err = s.OrderRepo.CountAll(); err != nil {
		return nil, err
	}
	return &out, nil
}
