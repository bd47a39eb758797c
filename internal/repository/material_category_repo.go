package repository

import (
	"go-erp-backoffice/internal/model"

	"gorm.io/gorm"
)

type MaterialCategoryRepository interface {
	FindAll() ([]model.MaterialCategory, error)
	FindByID(id uint) (*model.MaterialCategory, error)
	FindByCode(code string) (*model.MaterialCategory, error)
	Create(category *model.MaterialCategory) error
	Update(category *model.MaterialCategory) error
	SoftDelete(id uint, deletedBy string) error
	CountChildren(id uint) (int64, error)
}

type materialCategoryRepo struct {
	db *gorm.DB
}

func NewMaterialCategoryRepo(db *gorm.DB) MaterialCategoryRepository {
	return &materialCategoryRepo{db}
}

func (r *materialCategoryRepo) FindAll() ([]model.MaterialCategory, error) {
	var categories []model.MaterialCategory
	if err := r.db.Scopes(notDeleted).Order("sort_order, category_code").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *materialCategoryRepo) FindByID(id uint) (*model.MaterialCategory, error) {
	var category model.MaterialCategory
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *materialCategoryRepo) FindByCode(code string) (*model.MaterialCategory, error) {
	var category model.MaterialCategory
	if err := r.db.Scopes(notDeleted).Where("category_code = ?", code).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *materialCategoryRepo) Create(category *model.MaterialCategory) error {
	return r.db.Create(category).Error
}

func (r *materialCategoryRepo) Update(category *model.MaterialCategory) error {
	return r.db.Save(category).Error
}

func (r *materialCategoryRepo) SoftDelete(id uint, deletedBy string) error {
	return r.db.Model(&model.MaterialCategory{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_deleted": true,
		"updated_by": deletedBy,
	}).Error
}

// CountChildren counts live (non-deleted) child categories
func (r *materialCategoryRepo) CountChildren(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.MaterialCategory{}).Scopes(notDeleted).Where("parent_id = ?", id).Count(&count).Error
	return count, err
}
