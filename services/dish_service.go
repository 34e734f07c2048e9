package services

import (
	"errors"

	"github.com/elsonbaty123/wagbty-sub000/entity"
	"github.com/elsonbaty123/wagbty-sub000/repository"

	"gorm.io/gorm"
)

type DishService struct {
	Repo *repository.DishRepository
}

func NewDishService(repo *repository.DishRepository) *DishService {
	return &DishService{Repo: repo}
}

type DishIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=1"`
	ImageURL    string `json:"imageUrl"`
	IsAvailable *bool  `json:"isAvailable"`
}

func (s *DishService) CreateForChef(chefID uint, in *DishIn) (*entity.Dish, error) {
	d := entity.Dish{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		IsAvailable: true,
		ChefID:      chefID,
	}
	if in.IsAvailable != nil {
		d.IsAvailable = *in.IsAvailable
	}
	if err := s.Repo.Create(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DishService) UpdateForChef(chefID, dishID uint, in *DishIn) (*entity.Dish, error) {
	d, err := s.Repo.GetForChef(chefID, dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}
	d.Name = in.Name
	d.Description = in.Description
	d.Price = in.Price
	d.ImageURL = in.ImageURL
	if in.IsAvailable != nil {
		d.IsAvailable = *in.IsAvailable
	}
	if err := s.Repo.Save(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Storefront listing: only available dishes.
func (s *DishService) ListForStorefront(chefID uint) ([]entity.Dish, error) {
	return s.Repo.ListForChef(chefID, true)
}

// Chef dashboard listing: everything, available or not.
func (s *DishService) ListForChef(chefID uint) ([]entity.Dish, error) {
	return s.Repo.ListForChef(chefID, false)
}

func (s *DishService) Get(dishID uint) (*entity.Dish, error) {
	d, err := s.Repo.Get(dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *DishService) Ratings(dishID uint, limit int) ([]entity.DishRating, error) {
	return s.Repo.ListRatings(dishID, limit)
}
