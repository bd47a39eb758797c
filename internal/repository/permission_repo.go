package repository

import (
	"go-erp-backoffice/internal/model"

	"gorm.io/gorm"
)

type PermissionRepository interface {
	FindAll() ([]model.Permission, error)
	FindByID(id uint) (*model.Permission, error)
	FindByCode(code string) (*model.Permission, error)
	FindByModules(modules []string) ([]*model.Permission, error)
	Create(permission *model.Permission) error
	Update(permission *model.Permission) error
	Delete(id uint) error
	CountRoleRefs(id uint) (int64, error)
	CountMenuRefs(id uint) (int64, error)
	SeedDefaults() error
}

type permissionRepo struct {
	db *gorm.DB
}

func NewPermissionRepo(db *gorm.DB) PermissionRepository {
	return &permissionRepo{db}
}

func (r *permissionRepo) FindAll() ([]model.Permission, error) {
	var permissions []model.Permission
	if err := r.db.Order("module, code").Find(&permissions).Error; err != nil {
		return nil, err
	}
	return permissions, nil
}

func (r *permissionRepo) FindByID(id uint) (*model.Permission, error) {
	var permission model.Permission
	if err := r.db.First(&permission, id).Error; err != nil {
		return nil, err
	}
	return &permission, nil
}

func (r *permissionRepo) FindByCode(code string) (*model.Permission, error) {
	var permission model.Permission
	if err := r.db.Where("code = ?", code).First(&permission).Error; err != nil {
		return nil, err
	}
	return &permission, nil
}

func (r *permissionRepo) FindByModules(modules []string) ([]*model.Permission, error) {
	var permissions []*model.Permission
	if err := r.db.Where("module IN ?", modules).Find(&permissions).Error; err != nil {
		return nil, err
	}
	return permissions, nil
}

func (r *permissionRepo) Create(permission *model.Permission) error {
	return r.db.Create(permission).Error
}

func (r *permissionRepo) Update(permission *model.Permission) error {
	return r.db.Save(permission).Error
}

func (r *permissionRepo) Delete(id uint) error {
	return r.db.Delete(&model.Permission{}, id).Error
}

// CountRoleRefs counts role assignments still pointing at the permission
func (r *permissionRepo) CountRoleRefs(id uint) (int64, error) {
	var count int64
	err := r.db.Table("sys_role_permissions").Where("permission_id = ?", id).Count(&count).Error
	return count, err
}

// CountMenuRefs counts menus guarded by the permission
func (r *permissionRepo) CountMenuRefs(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Menu{}).Where("permission_id = ?", id).Count(&count).Error
	return count, err
}

// SeedDefaults creates the default permission catalog if missing
func (r *permissionRepo) SeedDefaults() error {
	for _, p := range model.DefaultPermissions {
		var existing model.Permission
		err := r.db.Where("code = ?", p.Code).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := r.db.Create(&p).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}
