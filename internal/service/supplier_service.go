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
	ErrSupplierNotFound   = errors.New("supplier not found")
	ErrSupplierCodeExists = errors.New("supplier code already exists")
)

type SupplierService interface {
	List() ([]model.Supplier, error)
	Get(id uuid.UUID) (*model.Supplier, error)
	Create(req *CreateSupplierRequest, creatorID string) (*model.Supplier, error)
	Update(id uuid.UUID, req *UpdateSupplierRequest, updaterID string) (*model.Supplier, error)
	Delete(id uuid.UUID, deletedBy string) error
}

type CreateSupplierRequest struct {
	SupplierCode  string `json:"supplier_code" validate:"required"`
	SupplierName  string `json:"supplier_name" validate:"required"`
	SupplierLevel int    `json:"supplier_level" validate:"omitempty,oneof=1 2 3"`
	Industry      string `json:"industry"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail  string `json:"contact_email" validate:"omitempty,email"`
	Address       string `json:"address"`
	CreditDays    int    `json:"credit_days" validate:"omitempty,min=0"`
	Remark        string `json:"remark"`
}

type UpdateSupplierRequest struct {
	SupplierName  string `json:"supplier_name" validate:"required"`
	SupplierLevel int    `json:"supplier_level" validate:"omitempty,oneof=1 2 3"`
	Industry      string `json:"industry"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail  string `json:"contact_email" validate:"omitempty,email"`
	Address       string `json:"address"`
	CreditDays    int    `json:"credit_days" validate:"omitempty,min=0"`
	Status        *int   `json:"status" validate:"omitempty,oneof=0 1"`
	Remark        string `json:"remark"`
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
	hub          *ws.Hub
}

func NewSupplierService(supplierRepo repository.SupplierRepository, hub *ws.Hub) SupplierService {
	return &supplierService{
		supplierRepo: supplierRepo,
		hub:          hub,
	}
}

func (s *supplierService) List() ([]model.Supplier, error) {
	return s.supplierRepo.FindAll()
}

func (s *supplierService) Get(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		return nil, ErrSupplierNotFound
	}
	return supplier, nil
}

func (s *supplierService) Create(req *CreateSupplierRequest, creatorID string) (*model.Supplier, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Check code uniqueness among live rows
	if existing, _ := s.supplierRepo.FindByCode(req.SupplierCode); existing != nil {
		return nil, ErrSupplierCodeExists
	}

	supplier := &model.Supplier{
		SupplierCode:  req.SupplierCode,
		SupplierName:  req.SupplierName,
		SupplierLevel: model.SupplierLevelQualified,
		Industry:      req.Industry,
		ContactPerson: req.ContactPerson,
		ContactPhone:  req.ContactPhone,
		ContactEmail:  req.ContactEmail,
		Address:       req.Address,
		CreditDays:    req.CreditDays,
		Status:        1,
		Remark:        req.Remark,
	}
	supplier.CreatedBy = creatorID
	if req.SupplierLevel != 0 {
		supplier.SupplierLevel = req.SupplierLevel
	}

	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}

	s.hub.BroadcastEvent("supplier", "created", creatorID, supplier)
	return supplier, nil
}

func (s *supplierService) Update(id uuid.UUID, req *UpdateSupplierRequest, updaterID string) (*model.Supplier, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Find existing supplier
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil || supplier.IsDeleted {
		return nil, ErrSupplierNotFound
	}

	supplier.SupplierName = req.SupplierName
	supplier.Industry = req.Industry
	supplier.ContactPerson = req.ContactPerson
	supplier.ContactPhone = req.ContactPhone
	supplier.ContactEmail = req.ContactEmail
	supplier.Address = req.Address
	supplier.CreditDays = req.CreditDays
	supplier.Remark = req.Remark
	supplier.UpdatedBy = updaterID
	if req.SupplierLevel != 0 {
		supplier.SupplierLevel = req.SupplierLevel
	}
	if req.Status != nil {
		supplier.Status = *req.Status
	}

	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}

	s.hub.BroadcastEvent("supplier", "updated", updaterID, supplier)
	return supplier, nil
}

func (s *supplierService) Delete(id uuid.UUID, deletedBy string) error {
	if _, err := s.supplierRepo.FindByID(id); err != nil {
		return ErrSupplierNotFound
	}

	if err := s.supplierRepo.SoftDelete(id, deletedBy); err != nil {
		return err
	}

	s.hub.BroadcastEvent("supplier", "deleted", deletedBy, map[string]interface{}{"id": id})
	return nil
}
