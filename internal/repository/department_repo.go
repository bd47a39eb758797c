package repository

import (
	"go-erp-backoffice/internal/model"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	FindAll() ([]model.Department, error)
	FindByID(id uint) (*model.Department, error)
	FindByCode(code string) (*model.Department, error)
	Create(dept *model.Department) error
	Update(dept *model.Department) error
	Delete(id uint) error
	CountChildren(id uint) (int64, error)
	SeedDefaults() error
}

type departmentRepo struct {
	db *gorm.DB
}

func NewDepartmentRepo(db *gorm.DB) DepartmentRepository {
	return &departmentRepo{db}
}

// FindAll returns all departments in (sort_order, code) order so tree
// construction is deterministic.
func (r *departmentRepo) FindAll() ([]model.Department, error) {
	var depts []model.Department
	if err := r.db.Preload("Manager").Order("sort_order, code").Find(&depts).Error; err != nil {
		return nil, err
	}
	return depts, nil
}

func (r *departmentRepo) FindByID(id uint) (*model.Department, error) {
	var dept model.Department
	if err := r.db.Preload("Manager").First(&dept, id).Error; err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepo) FindByCode(code string) (*model.Department, error) {
	var dept model.Department
	if err := r.db.Where("code = ?", code).First(&dept).Error; err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepo) Create(dept *model.Department) error {
	return r.db.Create(dept).Error
}

func (r *departmentRepo) Update(dept *model.Department) error {
	return r.db.Save(dept).Error
}

func (r *departmentRepo) Delete(id uint) error {
	return r.db.Delete(&model.Department{}, id).Error
}

func (r *departmentRepo) CountChildren(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Department{}).Where("parent_id = ?", id).Count(&count).Error
	return count, err
}

// SeedDefaults creates the default departments if they don't exist
func (r *departmentRepo) SeedDefaults() error {
	var root *model.Department
	for _, defaultDept := range model.DefaultDepartments {
		var existing model.Department
		err := r.db.Where("code = ?", defaultDept.Code).First(&existing).Error
		if err == nil {
			if defaultDept.Code == model.DefaultDepartmentRoot {
				root = &existing
			}
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		dept := defaultDept
		if dept.Code != model.DefaultDepartmentRoot && root != nil {
			dept.ParentID = &root.ID
		}
		if err := r.db.Create(&dept).Error; err != nil {
			return err
		}
		if dept.Code == model.DefaultDepartmentRoot {
			root = &dept
		}
	}
	return nil
}
