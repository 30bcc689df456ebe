package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Avi1top/carvango-backend-sub000/entity"
	"github.com/Avi1top/carvango-backend-sub000/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrIngredientNotFound = errors.New("ingredient not found")

	// เจอเฉพาะตอนเปิด STRICT_UNITS: หน่วยของสูตรแปลงเป็นหน่วย stock ไม่ได้
	ErrUnitMismatch = errors.New("unit not convertible to ingredient stock unit")
)

type DishService struct {
	DB      *gorm.DB
	Repo    *repository.DishRepository
	IngRepo *repository.IngredientRepository

	Log *zap.Logger

	// ตรวจตระกูลหน่วยตอนสร้าง/แก้สูตร (config STRICT_UNITS)
	StrictUnits bool
}

func NewDishService(db *gorm.DB, repo *repository.DishRepository, ingRepo *repository.IngredientRepository, strictUnits bool, log *zap.Logger) *DishService {
	return &DishService{DB: db, Repo: repo, IngRepo: ingRepo, StrictUnits: strictUnits, Log: log}
}

type RecipeRowIn struct {
	IngredientID uint    `json:"ingredientId" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	Unit         string  `json:"unit" binding:"required"`
}

type CreateDishReq struct {
	Name            string        `json:"name" binding:"required"`
	Description     string        `json:"description"`
	Price           float64       `json:"price" binding:"required,gt=0"`
	DiscountPercent float64       `json:"discountPercent"`
	Recipe          []RecipeRowIn `json:"recipe"`
}

// ตรวจว่าวัตถุดิบของแถวสูตรมีจริง และ (ถ้าเปิด strict) หน่วยแปลงหากันได้
func (s *DishService) validateRecipeRow(row RecipeRowIn) (*entity.Ingredient, error) {
	ing, err := s.IngRepo.FindByID(row.IngredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrIngredientNotFound, row.IngredientID)
		}
		return nil, err
	}
	if s.StrictUnits && !SameFamily(row.Unit, ing.Unit) {
		return nil, fmt.Errorf("%w: %q vs %q (%s)", ErrUnitMismatch, row.Unit, ing.Unit, ing.Name)
	}
	return ing, nil
}

func (s *DishService) Create(req *CreateDishReq) (*entity.Dish, error) {
	for _, row := range req.Recipe {
		if _, err := s.validateRecipeRow(row); err != nil {
			return nil, err
		}
	}

	dish := entity.Dish{
		Name:            strings.TrimSpace(req.Name),
		Description:     strings.TrimSpace(req.Description),
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		IsActive:        true,
	}
	for _, row := range req.Recipe {
		dish.Recipe = append(dish.Recipe, entity.DishIngredient{
			IngredientID: row.IngredientID,
			Quantity:     row.Quantity,
			Unit:         row.Unit,
		})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, &dish)
	})
	if err != nil {
		return nil, err
	}
	s.Log.Info("dish created", zap.Uint("dishId", dish.ID), zap.String("name", dish.Name))
	return &dish, nil
}

type UpdateDishReq struct {
	Name            *string       `json:"name"`
	Description     *string       `json:"description"`
	Price           *float64      `json:"price"`
	DiscountPercent *float64      `json:"discountPercent"`
	IsActive        *bool         `json:"isActive"`
	Recipe          []RecipeRowIn `json:"recipe"` // nil = ไม่แตะสูตร
}

func (s *DishService) Update(dishID uint, req *UpdateDishReq) (*entity.Dish, error) {
	if _, err := s.Repo.FindByID(dishID); err != nil {
		return nil, err
	}

	for _, row := range req.Recipe {
		if _, err := s.validateRecipeRow(row); err != nil {
			return nil, err
		}
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.DiscountPercent != nil {
		updates["discount_percent"] = *req.DiscountPercent
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := s.Repo.Update(tx, dishID, updates); err != nil {
				return err
			}
		}
		if req.Recipe != nil {
			rows := make([]entity.DishIngredient, 0, len(req.Recipe))
			for _, r := range req.Recipe {
				rows = append(rows, entity.DishIngredient{
					IngredientID: r.IngredientID,
					Quantity:     r.Quantity,
					Unit:         r.Unit,
				})
			}
			if err := s.Repo.ReplaceRecipe(tx, dishID, rows); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Repo.FindByID(dishID)
}

func (s *DishService) Archive(dishID uint) error {
	if _, err := s.Repo.FindByID(dishID); err != nil {
		return err
	}
	if err := s.Repo.Archive(dishID); err != nil {
		return err
	}
	s.Log.Info("dish archived", zap.Uint("dishId", dishID))
	return nil
}

func (s *DishService) ListPublic() ([]entity.Dish, error) {
	return s.Repo.ListPublic()
}

func (s *DishService) ListAdmin() ([]entity.Dish, error) {
	return s.Repo.ListAdmin()
}

func (s *DishService) Detail(dishID uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := s.DB.Preload("Recipe").First(&d, dishID).Error; err != nil {
		return nil, err
	}
	return &d, nil
}
