package service

import (
	"errors"

	"go-erp-backoffice/internal/model"
	"go-erp-backoffice/internal/repository"
	"go-erp-backoffice/internal/ws"
	"go-erp-backoffice/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrMaterialNotFound   = errors.New("material not found")
	ErrMaterialCodeExists = errors.New("material code already exists")
	ErrCategoryNotExists  = errors.New("material category does not exist")
)

type MaterialService interface {
	List() ([]model.Material, error)
	Get(id uuid.UUID) (*model.Material, error)
	Create(req *CreateMaterialRequest, creatorID string) (*model.Material, error)
	Update(id uuid.UUID, req *UpdateMaterialRequest, updaterID string) (*model.Material, error)
	Delete(id uuid.UUID, deletedBy string) error
}

type CreateMaterialRequest struct {
	MaterialCode string  `json:"material_code" validate:"required"`
	MaterialName string  `json:"material_name" validate:"required"`
	MaterialSpec string  `json:"material_spec"`
	CategoryID   *uint   `json:"category_id"`
	MaterialType int     `json:"material_type" validate:"omitempty,oneof=1 2 3"`
	Unit         string  `json:"unit"`
	Price        int64   `json:"price" validate:"omitempty,min=0"`
	MinStock     float64 `json:"min_stock" validate:"omitempty,min=0"`
	MaxStock     float64 `json:"max_stock" validate:"omitempty,min=0"`
	SafetyStock  float64 `json:"safety_stock" validate:"omitempty,min=0"`
	Barcode      string  `json:"barcode"`
	Remark       string  `json:"remark"`
}

type UpdateMaterialRequest struct {
	MaterialName string  `json:"material_name" validate:"required"`
	MaterialSpec string  `json:"material_spec"`
	CategoryID   *uint   `json:"category_id"`
	MaterialType int     `json:"material_type" validate:"omitempty,oneof=1 2 3"`
	Unit         string  `json:"unit"`
	Price        int64   `json:"price" validate:"omitempty,min=0"`
	MinStock     float64 `json:"min_stock" validate:"omitempty,min=0"`
	MaxStock     float64 `json:"max_stock" validate:"omitempty,min=0"`
	SafetyStock  float64 `json:"safety_stock" validate:"omitempty,min=0"`
	Barcode      string  `json:"barcode"`
	Status       *int    `json:"status" validate:"omitempty,oneof=0 1"`
	Remark       string  `json:"remark"`
}

type materialService struct {
	materialRepo repository.MaterialRepository
	categoryRepo repository.MaterialCategoryRepository
	hub          *ws.Hub
}

func NewMaterialService(materialRepo repository.MaterialRepository, categoryRepo repository.MaterialCategoryRepository, hub *ws.Hub) MaterialService {
	return &materialService{
		materialRepo: materialRepo,
		categoryRepo: categoryRepo,
		hub:          hub,
	}
}

func (s *materialService) List() ([]model.Material, error) {
	return s.materialRepo.FindAll()
}

func (s *materialService) Get(id uuid.UUID) (*model.Material, error) {
	material, err := s.materialRepo.FindByID(id)
	if err != nil {
		return nil, ErrMaterialNotFound
	}
	return material, nil
}

func (s *materialService) Create(req *CreateMaterialRequest, creatorID string) (*model.Material, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Check code uniqueness among live rows
	if existing, _ := s.materialRepo.FindByCode(req.MaterialCode); existing != nil {
		return nil, ErrMaterialCodeExists
	}

	// 3. Validate the category reference
	if err := s.checkCategory(req.CategoryID); err != nil {
		return nil, err
	}

	material := &model.Material{
		MaterialCode: req.MaterialCode,
		MaterialName: req.MaterialName,
		MaterialSpec: req.MaterialSpec,
		CategoryID:   req.CategoryID,
		MaterialType: model.MaterialTypeRaw,
		Unit:         req.Unit,
		Price:        req.Price,
		MinStock:     req.MinStock,
		MaxStock:     req.MaxStock,
		SafetyStock:  req.SafetyStock,
		Barcode:      req.Barcode,
		Status:       1,
		Remark:       req.Remark,
	}
	material.CreatedBy = creatorID
	if req.MaterialType != 0 {
		material.MaterialType = req.MaterialType
	}

	if err := s.materialRepo.Create(material); err != nil {
		return nil, err
	}

	s.hub.BroadcastEvent("material", "created", creatorID, material)
	return s.materialRepo.FindByID(material.ID)
}

func (s *materialService) Update(id uuid.UUID, req *UpdateMaterialRequest, updaterID string) (*model.Material, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Find existing material
	material, err := s.materialRepo.FindByID(id)
	if err != nil || material.IsDeleted {
		return nil, ErrMaterialNotFound
	}

	// 3. Validate the category reference
	if err := s.checkCategory(req.CategoryID); err != nil {
		return nil, err
	}

	material.MaterialName = req.MaterialName
	material.MaterialSpec = req.MaterialSpec
	material.CategoryID = req.CategoryID
	material.Category = nil
	material.Unit = req.Unit
	material.Price = req.Price
	material.MinStock = req.MinStock
	material.MaxStock = req.MaxStock
	material.SafetyStock = req.SafetyStock
	material.Barcode = req.Barcode
	material.Remark = req.Remark
	material.UpdatedBy = updaterID
	if req.MaterialType != 0 {
		material.MaterialType = req.MaterialType
	}
	if req.Status != nil {
		material.Status = *req.Status
	}

	if err := s.materialRepo.Update(material); err != nil {
		return nil, err
	}

	s.hub.BroadcastEvent("material", "updated", updaterID, material)
	return s.materialRepo.FindByID(id)
}

func (s *materialService) Delete(id uuid.UUID, deletedBy string) error {
	if _, err := s.materialRepo.FindByID(id); err != nil {
		return ErrMaterialNotFound
	}

	if err := s.materialRepo.SoftDelete(id, deletedBy); err != nil {
		return err
	}

	s.hub.BroadcastEvent("material", "deleted", deletedBy, map[string]interface{}{"id": id})
	return nil
}

func (s *materialService) checkCategory(categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	category, err := s.categoryRepo.FindByID(*categoryID)
	if err != nil || category.IsDeleted {
		return ErrCategoryNotExists
	}
	return nil
}
