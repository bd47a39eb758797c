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
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrCustomerCodeExists = errors.New("customer code already exists")
)

type CustomerService interface {
	List() ([]model.Customer, error)
	Get(id uuid.UUID) (*model.Customer, error)
	Create(req *CreateCustomerRequest, creatorID string) (*model.Customer, error)
	Update(id uuid.UUID, req *UpdateCustomerRequest, updaterID string) (*model.Customer, error)
	Delete(id uuid.UUID, deletedBy string) error
}

type CreateCustomerRequest struct {
	CustomerCode  string `json:"customer_code" validate:"required"`
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerType  int    `json:"customer_type" validate:"omitempty,oneof=1 2"`
	CustomerLevel int    `json:"customer_level" validate:"omitempty,oneof=1 2 3"`
	Industry      string `json:"industry"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail  string `json:"contact_email" validate:"omitempty,email"`
	Address       string `json:"address"`
	CreditLimit   int64  `json:"credit_limit" validate:"omitempty,min=0"`
	CreditDays    int    `json:"credit_days" validate:"omitempty,min=0"`
	Remark        string `json:"remark"`
}

type UpdateCustomerRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerType  int    `json:"customer_type" validate:"omitempty,oneof=1 2"`
	CustomerLevel int    `json:"customer_level" validate:"omitempty,oneof=1 2 3"`
	Industry      string `json:"industry"`
	ContactPerson string `json:"contact_person"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail  string `json:"contact_email" validate:"omitempty,email"`
	Address       string `json:"address"`
	CreditLimit   int64  `json:"credit_limit" validate:"omitempty,min=0"`
	CreditDays    int    `json:"credit_days" validate:"omitempty,min=0"`
	Status        *int   `json:"status" validate:"omitempty,oneof=0 1"`
	Remark        string `json:"remark"`
}

type customerService struct {
	customerRepo repository.CustomerRepository
	hub          *ws.Hub
}

func NewCustomerService(customerRepo repository.CustomerRepository, hub *ws.Hub) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		hub:          hub,
	}
}

func (s *customerService) List() ([]model.Customer, error) {
	return s.customerRepo.FindAll()
}

func (s *customerService) Get(id uuid.UUID) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (s *customerService) Create(req *CreateCustomerRequest, creatorID string) (*model.Customer, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Check code uniqueness among live rows
	if existing, _ := s.customerRepo.FindByCode(req.CustomerCode); existing != nil {
		return nil, ErrCustomerCodeExists
	}

	customer := &model.Customer{
		CustomerCode:  req.CustomerCode,
		CustomerName:  req.CustomerName,
		CustomerType:  model.CustomerTypeCompany,
		CustomerLevel: model.CustomerLevelNormal,
		Industry:      req.Industry,
		ContactPerson: req.ContactPerson,
		ContactPhone:  req.ContactPhone,
		ContactEmail:  req.ContactEmail,
		Address:       req.Address,
		CreditLimit:   req.CreditLimit,
		CreditDays:    req.CreditDays,
		Status:        1,
		Remark:        req.Remark,
	}
	customer.CreatedBy = creatorID
	if req.CustomerType != 0 {
		customer.CustomerType = req.CustomerType
	}
	if req.CustomerLevel != 0 {
		customer.CustomerLevel = req.CustomerLevel
	}

	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}

	s.hub.BroadcastEvent("customer", "created", creatorID, customer)
	return customer, nil
}

func (s *customerService) Update(id uuid.UUID, req *UpdateCustomerRequest, updaterID string) (*model.Customer, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Find existing customer
	customer, err := s.customerRepo.FindByID(id)
	if err != nil || customer.IsDeleted {
		return nil, ErrCustomerNotFound
	}

	customer.CustomerName = req.CustomerName
	customer.Industry = req.Industry
	customer.ContactPerson = req.ContactPerson
	customer.ContactPhone = req.ContactPhone
	customer.ContactEmail = req.ContactEmail
	customer.Address = req.Address
	customer.CreditLimit = req.CreditLimit
	customer.CreditDays = req.CreditDays
	customer.Remark = req.Remark
	customer.UpdatedBy = updaterID
	if req.CustomerType != 0 {
		customer.CustomerType = req.CustomerType
	}
	if req.CustomerLevel != 0 {
		customer.CustomerLevel = req.CustomerLevel
	}
	if req.Status != nil {
		customer.Status = *req.Status
	}

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}

	s.hub.BroadcastEvent("customer", "updated", updaterID, customer)
	return customer, nil
}

// Delete soft-deletes the customer; the row stays retrievable by id.
func (s *customerService) Delete(id uuid.UUID, deletedBy string) error {
	if _, err := s.customerRepo.FindByID(id); err != nil {
		return ErrCustomerNotFound
	}

	if err := s.customerRepo.SoftDelete(id, deletedBy); err != nil {
		return err
	}

	s.hub.BroadcastEvent("customer", "deleted", deletedBy, map[string]interface{}{"id": id})
	return nil
}
