package repository

import (
	"go-erp-backoffice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WarehouseRepository interface {
	FindAll() ([]model.Warehouse, error)
	FindByID(id uuid.UUID) (*model.Warehouse, error)
	FindByCode(code string) (*model.Warehouse, error)
	Create(warehouse *model.Warehouse) error
	Update(warehouse *model.Warehouse) error
	SoftDelete(id uuid.UUID, deletedBy string) error
}

type warehouseRepo struct {
	db *gorm.DB
}

func NewWarehouseRepo(db *gorm.DB) WarehouseRepository {
	return &warehouseRepo{db}
}

func (r *warehouseRepo) FindAll() ([]model.Warehouse, error) {
	var warehouses []model.Warehouse
	if err := r.db.Scopes(notDeleted).Preload("Manager").Order("created_at desc").Find(&warehouses).Error; err != nil {
		return nil, err
	}
	return warehouses, nil
}

func (r *warehouseRepo) FindByID(id uuid.UUID) (*model.Warehouse, error) {
	var warehouse model.Warehouse
	if err := r.db.Preload("Manager").First(&warehouse, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *warehouseRepo) FindByCode(code string) (*model.Warehouse, error) {
	var warehouse model.Warehouse
	if err := r.db.Scopes(notDeleted).Where("warehouse_code = ?", code).First(&warehouse).Error; err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *warehouseRepo) Create(warehouse *model.Warehouse) error {
	return r.db.Create(warehouse).Error
}

func (r *warehouseRepo) Update(warehouse *model.Warehouse) error {
	return r.db.Save(warehouse).Error
}

func (r *warehouseRepo) SoftDelete(id uuid.UUID, deletedBy string) error {
	return r.db.Model(&model.Warehouse{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_deleted": true,
		"updated_by": deletedBy,
	}).Error
}
