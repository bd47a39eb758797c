package repository

import (
	"go-erp-backoffice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaterialRepository interface {
	FindAll() ([]model.Material, error)
	FindByID(id uuid.UUID) (*model.Material, error)
	FindByCode(code string) (*model.Material, error)
	Create(material *model.Material) error
	Update(material *model.Material) error
	SoftDelete(id uuid.UUID, deletedBy string) error
	CountByCategory(categoryID uint) (int64, error)
}

type materialRepo struct {
	db *gorm.DB
}

func NewMaterialRepo(db *gorm.DB) MaterialRepository {
	return &materialRepo{db}
}

func (r *materialRepo) FindAll() ([]model.Material, error) {
	var materials []model.Material
	if err := r.db.Scopes(notDeleted).Preload("Category").Order("created_at desc").Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *materialRepo) FindByID(id uuid.UUID) (*model.Material, error) {
	var material model.Material
	if err := r.db.Preload("Category").First(&material, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &material, nil
}

func (r *materialRepo) FindByCode(code string) (*model.Material, error) {
	var material model.Material
	if err := r.db.Scopes(notDeleted).Where("material_code = ?", code).First(&material).Error; err != nil {
		return nil, err
	}
	return &material, nil
}

func (r *materialRepo) Create(material *model.Material) error {
	return r.db.Create(material).Error
}

func (r *materialRepo) Update(material *model.Material) error {
	return r.db.Save(material).Error
}

func (r *materialRepo) SoftDelete(id uuid.UUID, deletedBy string) error {
	return r.db.Model(&model.Material{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_deleted": true,
		"updated_by": deletedBy,
	}).Error
}

// CountByCategory counts live materials still referencing the category
func (r *materialRepo) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Material{}).Scopes(notDeleted).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}
