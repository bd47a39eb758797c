package repository

import (
	"go-erp-backoffice/internal/model"

	"gorm.io/gorm"
)

type MenuRepository interface {
	FindAll() ([]model.Menu, error)
	FindVisible() ([]model.Menu, error)
	FindByID(id uint) (*model.Menu, error)
	Create(menu *model.Menu) error
	Update(menu *model.Menu) error
	Delete(id uint) error
	CountChildren(id uint) (int64, error)
	SeedDefaults(permRepo PermissionRepository) error
}

type menuRepo struct {
	db *gorm.DB
}

func NewMenuRepo(db *gorm.DB) MenuRepository {
	return &menuRepo{db}
}

func (r *menuRepo) FindAll() ([]model.Menu, error) {
	var menus []model.Menu
	if err := r.db.Preload("Permission").Order("sort_order, name").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

// FindVisible returns only menus with is_visible=true; hidden menus never
// reach any caller, superusers included.
func (r *menuRepo) FindVisible() ([]model.Menu, error) {
	var menus []model.Menu
	if err := r.db.Preload("Permission").Where("is_visible = ?", true).Order("sort_order, name").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *menuRepo) FindByID(id uint) (*model.Menu, error) {
	var menu model.Menu
	if err := r.db.Preload("Permission").First(&menu, id).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepo) Create(menu *model.Menu) error {
	return r.db.Create(menu).Error
}

func (r *menuRepo) Update(menu *model.Menu) error {
	return r.db.Save(menu).Error
}

func (r *menuRepo) Delete(id uint) error {
	return r.db.Delete(&model.Menu{}, id).Error
}

func (r *menuRepo) CountChildren(id uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Menu{}).Where("parent_id = ?", id).Count(&count).Error
	return count, err
}

// SeedDefaults creates the navigation tree, resolving parent names and
// permission codes against already-seeded rows.
func (r *menuRepo) SeedDefaults(permRepo PermissionRepository) error {
	byName := make(map[string]uint)
	for _, entry := range model.DefaultMenus {
		var existing model.Menu
		err := r.db.Where("name = ?", entry.Name).First(&existing).Error
		if err == nil {
			byName[existing.Name] = existing.ID
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		menu := entry.Menu
		if entry.ParentName != "" {
			if parentID, ok := byName[entry.ParentName]; ok {
				menu.ParentID = &parentID
			}
		}
		if entry.PermissionCode != "" {
			perm, err := permRepo.FindByCode(entry.PermissionCode)
			if err != nil {
				return err
			}
			menu.PermissionID = &perm.ID
		}
		if err := r.db.Create(&menu).Error; err != nil {
			return err
		}
		byName[menu.Name] = menu.ID
	}
	return nil
}
