package repository

import (
	"go-erp-backoffice/internal/model"

	"gorm.io/gorm"
)

type RoleRepository interface {
	FindAll() ([]model.Role, error)
	FindByID(id uint) (*model.Role, error)
	FindByIDs(ids []uint) ([]*model.Role, error)
	FindByCode(code string) (*model.Role, error)
	Create(role *model.Role) error
	Update(role *model.Role) error
	Delete(id uint) error
	ReplacePermissions(roleID uint, permissions []*model.Permission) error
	SeedDefaults() error
}

type roleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) FindAll() ([]model.Role, error) {
	var roles []model.Role
	err := r.db.Preload("Permissions").Order("sort_order, code").Find(&roles).Error
	return roles, err
}

func (r *roleRepo) FindByID(id uint) (*model.Role, error) {
	var role model.Role
	if err := r.db.Preload("Permissions").First(&role, id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) FindByIDs(ids []uint) ([]*model.Role, error) {
	var roles []*model.Role
	if err := r.db.Preload("Permissions").Where("id IN ?", ids).Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *roleRepo) FindByCode(code string) (*model.Role, error) {
	var role model.Role
	if err := r.db.Preload("Permissions").Where("code = ?", code).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) Create(role *model.Role) error {
	return r.db.Create(role).Error
}

func (r *roleRepo) Update(role *model.Role) error {
	return r.db.Save(role).Error
}

func (r *roleRepo) Delete(id uint) error {
	// Detach permissions and user assignments before the row goes
	if err := r.db.Exec("DELETE FROM sys_role_permissions WHERE role_id = ?", id).Error; err != nil {
		return err
	}
	if err := r.db.Exec("DELETE FROM sys_user_roles WHERE role_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.Delete(&model.Role{}, id).Error
}

func (r *roleRepo) ReplacePermissions(roleID uint, permissions []*model.Permission) error {
	var role model.Role
	if err := r.db.First(&role, roleID).Error; err != nil {
		return err
	}
	return r.db.Model(&role).Association("Permissions").Replace(permissions)
}

// SeedDefaults creates default roles if they don't exist
func (r *roleRepo) SeedDefaults() error {
	for _, defaultRole := range model.DefaultRoles {
		var existing model.Role
		err := r.db.Where("code = ?", defaultRole.Code).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := r.db.Create(&defaultRole).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}
