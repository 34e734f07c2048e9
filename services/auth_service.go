package services

import (
	"errors"
	"strings"
	"time"

	"github.com/elsonbaty123/wagbty-sub000/entity"
	"github.com/elsonbaty123/wagbty-sub000/repository"
	"github.com/elsonbaty123/wagbty-sub000/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken       = errors.New("email already registered")
	ErrBadCredentials   = errors.New("invalid email or password")
	ErrAccountPending   = errors.New("account is pending approval")
	ErrAccountRejected  = errors.New("account application was rejected")
	ErrAccountSuspended = errors.New("account is suspended")
)

type AuthService struct {
	DB        *gorm.DB
	UserRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(db *gorm.DB, repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{DB: db, UserRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

type RegisterReq struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Role        string `json:"role" binding:"omitempty,oneof=customer chef delivery"`

	// chef extras
	Specialty string `json:"specialty"`
	Bio       string `json:"bio"`
	// delivery extras
	VehicleType  string `json:"vehicleType"`
	LicensePlate string `json:"licensePlate"`
}

// Register creates the user plus the role profile in one tx. Customers
// come out active; chef and delivery applicants start pending_approval
// and cannot log in until an admin activates them.
func (s *AuthService) Register(req *RegisterReq) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	count, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	role := req.Role
	if role == "" {
		role = entity.RoleCustomer
	}
	accountStatus := entity.AccountActive
	if role == entity.RoleChef || role == entity.RoleDelivery {
		accountStatus = entity.AccountPendingApproval
	}

	user := &entity.User{
		Email:         email,
		Password:      string(hashed),
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		PhoneNumber:   strings.TrimSpace(req.PhoneNumber),
		Address:       strings.TrimSpace(req.Address),
		Role:          role,
		AccountStatus: accountStatus,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.UserRepo.Create(tx, user); err != nil {
			return err
		}
		switch role {
		case entity.RoleChef:
			return s.UserRepo.CreateChefProfile(tx, &entity.ChefProfile{
				UserID:             user.ID,
				Specialty:          req.Specialty,
				Bio:                req.Bio,
				AvailabilityStatus: entity.ChefAvailable,
			})
		case entity.RoleDelivery:
			return s.UserRepo.CreateDeliveryProfile(tx, &entity.DeliveryProfile{
				UserID:       user.ID,
				VehicleType:  req.VehicleType,
				LicensePlate: req.LicensePlate,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the password first, then the account status, so a
// suspended user with a wrong password still only learns "invalid
// email or password".
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.UserRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrBadCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrBadCredentials
	}

	switch user.AccountStatus {
	case entity.AccountActive:
	case entity.AccountPendingApproval:
		return "", nil, ErrAccountPending
	case entity.AccountRejected:
		return "", nil, ErrAccountRejected
	case entity.AccountSuspended:
		return "", nil, ErrAccountSuspended
	default:
		return "", nil, ErrBadCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Me(userID uint) (*entity.User, error) {
	return s.UserRepo.GetByID(userID)
}

type UpdateMeReq struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

func (s *AuthService) UpdateMe(userID uint, req *UpdateMeReq) (*entity.User, error) {
	user, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if req.FirstName != "" {
		user.FirstName = strings.TrimSpace(req.FirstName)
	}
	if req.LastName != "" {
		user.LastName = strings.TrimSpace(req.LastName)
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	}
	if req.Address != "" {
		user.Address = strings.TrimSpace(req.Address)
	}
	if err := s.UserRepo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}
