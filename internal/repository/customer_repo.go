package repository

import (
	"go-erp-backoffice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	FindAll() ([]model.Customer, error)
	FindByID(id uuid.UUID) (*model.Customer, error)
	FindByCode(code string) (*model.Customer, error)
	Create(customer *model.Customer) error
	Update(customer *model.Customer) error
	SoftDelete(id uuid.UUID, deletedBy string) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) FindAll() ([]model.Customer, error) {
	var customers []model.Customer
	if err := r.db.Scopes(notDeleted).Order("created_at desc").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// FindByID is deliberately unscoped: retrieval by id returns soft-deleted
// rows for audit access, only lists hide them.
func (r *customerRepo) FindByID(id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.First(&customer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) FindByCode(code string) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.Scopes(notDeleted).Where("customer_code = ?", code).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) Create(customer *model.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepo) Update(customer *model.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepo) SoftDelete(id uuid.UUID, deletedBy string) error {
	return r.db.Model(&model.Customer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_deleted": true,
		"updated_by": deletedBy,
	}).Error
}
