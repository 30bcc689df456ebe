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

type ExtraService struct {
	Repo    *repository.ExtraRepository
	IngRepo *repository.IngredientRepository

	Log         *zap.Logger
	StrictUnits bool
}

func NewExtraService(repo *repository.ExtraRepository, ingRepo *repository.IngredientRepository, strictUnits bool, log *zap.Logger) *ExtraService {
	return &ExtraService{Repo: repo, IngRepo: ingRepo, StrictUnits: strictUnits, Log: log}
}

type CreateExtraReq struct {
	Name            string  `json:"name" binding:"required"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	DiscountPercent float64 `json:"discountPercent"`

	// extra ผูกวัตถุดิบเดียวเสมอ
	IngredientID uint    `json:"ingredientId" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	Unit         string  `json:"unit" binding:"required"`
}

func (s *ExtraService) Create(req *CreateExtraReq) (*entity.Extra, error) {
	ing, err := s.IngRepo.FindByID(req.IngredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrIngredientNotFound, req.IngredientID)
		}
		return nil, err
	}
	if s.StrictUnits && !SameFamily(req.Unit, ing.Unit) {
		return nil, fmt.Errorf("%w: %q vs %q (%s)", ErrUnitMismatch, req.Unit, ing.Unit, ing.Name)
	}

	extra := entity.Extra{
		Name:            strings.TrimSpace(req.Name),
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		IsActive:        true,
		IngredientID:    req.IngredientID,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
	}
	if err := s.Repo.Create(&extra); err != nil {
		return nil, err
	}
	s.Log.Info("extra created", zap.Uint("extraId", extra.ID), zap.String("name", extra.Name))
	return &extra, nil
}

type UpdateExtraReq struct {
	Name            *string  `json:"name"`
	Price           *float64 `json:"price"`
	DiscountPercent *float64 `json:"discountPercent"`
	IsActive        *bool    `json:"isActive"`
	IngredientID    *uint    `json:"ingredientId"`
	Quantity        *float64 `json:"quantity"`
	Unit            *string  `json:"unit"`
}

func (s *ExtraService) Update(extraID uint, req *UpdateExtraReq) (*entity.Extra, error) {
	extra, err := s.Repo.FindByID(extraID)
	if err != nil {
		return nil, err
	}

	// ค่าที่จะใช้ตรวจหน่วยหลังแก้
	ingID := extra.IngredientID
	unit := extra.Unit
	if req.IngredientID != nil {
		ingID = *req.IngredientID
	}
	if req.Unit != nil {
		unit = *req.Unit
	}

	ing, err := s.IngRepo.FindByID(ingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrIngredientNotFound, ingID)
		}
		return nil, err
	}
	if s.StrictUnits && !SameFamily(unit, ing.Unit) {
		return nil, fmt.Errorf("%w: %q vs %q (%s)", ErrUnitMismatch, unit, ing.Unit, ing.Name)
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
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
	if req.IngredientID != nil {
		updates["ingredient_id"] = *req.IngredientID
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if len(updates) > 0 {
		if err := s.Repo.Update(extraID, updates); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindByID(extraID)
}

func (s *ExtraService) Deactivate(extraID uint) error {
	if _, err := s.Repo.FindByID(extraID); err != nil {
		return err
	}
	return s.Repo.Deactivate(extraID)
}

func (s *ExtraService) ListPublic() ([]entity.Extra, error) {
	return s.Repo.ListPublic()
}

func (s *ExtraService) ListAdmin() ([]entity.Extra, error) {
	return s.Repo.ListAdmin()
}
