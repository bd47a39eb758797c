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
	ErrWarehouseNotFound   = errors.New("warehouse not found")
	ErrWarehouseCodeExists = errors.New("warehouse code already exists")
	ErrManagerNotExists    = errors.New("warehouse manager does not exist")
)

type WarehouseService interface {
	List() ([]model.Warehouse, error)
	Get(id uuid.UUID) (*model.Warehouse, error)
	Create(req *CreateWarehouseRequest, creatorID string) (*model.Warehouse, error)
	Update(id uuid.UUID, req *UpdateWarehouseRequest, updaterID string) (*model.Warehouse, error)
	Delete(id uuid.UUID, deletedBy string) error
}

type CreateWarehouseRequest struct {
	WarehouseCode string  `json:"warehouse_code" validate:"required"`
	WarehouseName string  `json:"warehouse_name" validate:"required"`
	WarehouseType int     `json:"warehouse_type" validate:"omitempty,oneof=1 2 3 4"`
	Location      string  `json:"location"`
	ManagerID     *string `json:"manager_id"`
	ContactPhone  string  `json:"contact_phone"`
	Remark        string  `json:"remark"`
}

type UpdateWarehouseRequest struct {
	WarehouseName string  `json:"warehouse_name" validate:"required"`
	WarehouseType int     `json:"warehouse_type" validate:"omitempty,oneof=1 2 3 4"`
	Location      string  `json:"location"`
	ManagerID     *string `json:"manager_id"`
	ContactPhone  string  `json:"contact_phone"`
	Status        *int    `json:"status" validate:"omitempty,oneof=0 1"`
	Remark        string  `json:"remark"`
}

type warehouseService struct {
	warehouseRepo repository.WarehouseRepository
	userRepo      repository.UserRepository
	hub           *ws.Hub
}

func NewWarehouseService(warehouseRepo repository.WarehouseRepository, userRepo repository.UserRepository, hub *ws.Hub) WarehouseService {
	return &warehouseService{
		warehouseRepo: warehouseRepo,
		userRepo:      userRepo,
		hub:           hub,
	}
}

func (s *warehouseService) List() ([]model.Warehouse, error) {
	return s.warehouseRepo.FindAll()
}

func (s *warehouseService) Get(id uuid.UUID) (*model.Warehouse, error) {
	warehouse, err := s.warehouseRepo.FindByID(id)
	if err != nil {
		return nil, ErrWarehouseNotFound
	}
	return warehouse, nil
}

func (s *warehouseService) Create(req *CreateWarehouseRequest, creatorID string) (*model.Warehouse, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Check code uniqueness among live rows
	if existing, _ := s.warehouseRepo.FindByCode(req.WarehouseCode); existing != nil {
		return nil, ErrWarehouseCodeExists
	}

	// 3. Validate the manager reference
	managerID, err := s.resolveManager(req.ManagerID)
	if err != nil {
		return nil, err
	}

	warehouse := &model.Warehouse{
		WarehouseCode: req.WarehouseCode,
		WarehouseName: req.WarehouseName,
		WarehouseType: model.WarehouseTypeGeneral,
		Location:      req.Location,
		ManagerID:     managerID,
		ContactPhone:  req.ContactPhone,
		Status:        1,
		Remark:        req.Remark,
	}
	warehouse.CreatedBy = creatorID
	if req.WarehouseType != 0 {
		warehouse.WarehouseType = req.WarehouseType
	}

	if err := s.warehouseRepo.Create(warehouse); err != nil {
		return nil, err
	}

	s.hub.BroadcastEvent("warehouse", "created", creatorID, warehouse)
	return warehouse, nil
}

func (s *warehouseService) Update(id uuid.UUID, req *UpdateWarehouseRequest, updaterID string) (*model.Warehouse, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Find existing warehouse
	warehouse, err := s.warehouseRepo.FindByID(id)
	if err != nil || warehouse.IsDeleted {
		return nil, ErrWarehouseNotFound
	}

	// 3. Validate the manager reference
	managerID, err := s.resolveManager(req.ManagerID)
	if err != nil {
		return nil, err
	}

	warehouse.WarehouseName = req.WarehouseName
	warehouse.Location = req.Location
	warehouse.ManagerID = managerID
	warehouse.Manager = nil
	warehouse.ContactPhone = req.ContactPhone
	warehouse.Remark = req.Remark
	warehouse.UpdatedBy = updaterID
	if req.WarehouseType != 0 {
		warehouse.WarehouseType = req.WarehouseType
	}
	if req.Status != nil {
		warehouse.Status = *req.Status
	}

	if err := s.warehouseRepo.Update(warehouse); err != nil {
		return nil, err
	}

	s.hub.BroadcastEvent("warehouse", "updated", updaterID, warehouse)
	return warehouse, nil
}

func (s *warehouseService) Delete(id uuid.UUID, deletedBy string) error {
	if _, err := s.warehouseRepo.FindByID(id); err != nil {
		return ErrWarehouseNotFound
	}

	if err := s.warehouseRepo.SoftDelete(id, deletedBy); err != nil {
		return err
	}

	s.hub.BroadcastEvent("warehouse", "deleted", deletedBy, map[string]interface{}{"id": id})
	return nil
}

func (s *warehouseService) resolveManager(raw *string) (*uuid.UUID, error) {
	managerID, err := parseOptionalUUID(raw)
	if err != nil {
		return nil, err
	}
	if managerID != nil {
		if _, err := s.userRepo.FindByID(*managerID); err != nil {
			return nil, ErrManagerNotExists
		}
	}
	return managerID, nil
}
