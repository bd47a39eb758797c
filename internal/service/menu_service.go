package service

import (
	"errors"

	"go-erp-backoffice/internal/model"
	"go-erp-backoffice/internal/repository"
	"go-erp-backoffice/internal/tree"
	"go-erp-backoffice/pkg/validator"

	"gorm.io/gorm"
)

var (
	ErrMenuNotFound       = errors.New("menu not found")
	ErrMenuParentNotFound = errors.New("parent menu not found")
)

type MenuService interface {
	List() ([]model.Menu, error)
	Get(id uint) (*model.Menu, error)
	Create(req *CreateMenuRequest) (*model.Menu, error)
	Update(id uint, req *UpdateMenuRequest) (*model.Menu, error)
	Delete(id uint) error
	Tree() ([]*model.MenuTreeNode, error)
	UserTree(user *model.User) ([]*model.MenuTreeNode, error)
}

type CreateMenuRequest struct {
	Name         string `json:"name" validate:"required"`
	Title        string `json:"title" validate:"required"`
	ParentID     *uint  `json:"parent_id"`
	MenuType     string `json:"menu_type" validate:"omitempty,oneof=directory menu button"`
	Path         string `json:"path"`
	Component    string `json:"component"`
	Icon         string `json:"icon"`
	PermissionID *uint  `json:"permission_id"`
	SortOrder    int    `json:"sort_order"`
	IsVisible    *bool  `json:"is_visible"`
	IsCache      *bool  `json:"is_cache"`
	IsExternal   bool   `json:"is_external"`
}

type UpdateMenuRequest struct {
	Name         string `json:"name" validate:"required"`
	Title        string `json:"title" validate:"required"`
	ParentID     *uint  `json:"parent_id"`
	MenuType     string `json:"menu_type" validate:"omitempty,oneof=directory menu button"`
	Path         string `json:"path"`
	Component    string `json:"component"`
	Icon         string `json:"icon"`
	PermissionID *uint  `json:"permission_id"`
	SortOrder    int    `json:"sort_order"`
	IsVisible    *bool  `json:"is_visible"`
	IsCache      *bool  `json:"is_cache"`
	IsExternal   bool   `json:"is_external"`
}

type menuService struct {
	menuRepo repository.MenuRepository
	permRepo repository.PermissionRepository
	db       *gorm.DB
}

func NewMenuService(menuRepo repository.MenuRepository, permRepo repository.PermissionRepository, db *gorm.DB) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		permRepo: permRepo,
		db:       db,
	}
}

func (s *menuService) List() ([]model.Menu, error) {
	return s.menuRepo.FindAll()
}

func (s *menuService) Get(id uint) (*model.Menu, error) {
	menu, err := s.menuRepo.FindByID(id)
	if err != nil {
		return nil, ErrMenuNotFound
	}
	return menu, nil
}

func (s *menuService) Create(req *CreateMenuRequest) (*model.Menu, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Validate references
	if req.ParentID != nil {
		if _, err := s.menuRepo.FindByID(*req.ParentID); err != nil {
			return nil, ErrMenuParentNotFound
		}
	}
	if req.PermissionID != nil {
		if _, err := s.permRepo.FindByID(*req.PermissionID); err != nil {
			return nil, ErrPermissionNotFound
		}
	}

	menu := &model.Menu{
		Name:         req.Name,
		Title:        req.Title,
		ParentID:     req.ParentID,
		MenuType:     model.MenuTypeMenu,
		Path:         req.Path,
		Component:    req.Component,
		Icon:         req.Icon,
		PermissionID: req.PermissionID,
		SortOrder:    req.SortOrder,
		IsVisible:    true,
		IsCache:      true,
		IsExternal:   req.IsExternal,
	}
	if req.MenuType != "" {
		menu.MenuType = req.MenuType
	}
	if req.IsVisible != nil {
		menu.IsVisible = *req.IsVisible
	}
	if req.IsCache != nil {
		menu.IsCache = *req.IsCache
	}

	if err := s.menuRepo.Create(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *menuService) Update(id uint, req *UpdateMenuRequest) (*model.Menu, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Find existing menu
	menu, err := s.menuRepo.FindByID(id)
	if err != nil {
		return nil, ErrMenuNotFound
	}

	// 3. A reparent must not make the menu its own ancestor
	if req.ParentID != nil {
		if _, err := s.menuRepo.FindByID(*req.ParentID); err != nil {
			return nil, ErrMenuParentNotFound
		}
		all, err := s.menuRepo.FindAll()
		if err != nil {
			return nil, err
		}
		if tree.WouldCycle(all, id, req.ParentID) {
			return nil, &tree.CycleError{NodeID: id}
		}
	}
	if req.PermissionID != nil {
		if _, err := s.permRepo.FindByID(*req.PermissionID); err != nil {
			return nil, ErrPermissionNotFound
		}
	}

	menu.Name = req.Name
	menu.Title = req.Title
	menu.ParentID = req.ParentID
	menu.Path = req.Path
	menu.Component = req.Component
	menu.Icon = req.Icon
	menu.PermissionID = req.PermissionID
	menu.Permission = nil
	menu.SortOrder = req.SortOrder
	menu.IsExternal = req.IsExternal
	if req.MenuType != "" {
		menu.MenuType = req.MenuType
	}
	if req.IsVisible != nil {
		menu.IsVisible = *req.IsVisible
	}
	if req.IsCache != nil {
		menu.IsCache = *req.IsCache
	}

	if err := s.menuRepo.Update(menu); err != nil {
		return nil, err
	}
	return s.menuRepo.FindByID(id)
}

// Delete hard-deletes a menu. The guard check and the delete run in one
// transaction so a child inserted concurrently cannot slip between them.
func (s *menuService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		menuRepo := repository.NewMenuRepo(tx)

		if _, err := menuRepo.FindByID(id); err != nil {
			return ErrMenuNotFound
		}

		children, err := menuRepo.CountChildren(id)
		if err != nil {
			return err
		}
		if children > 0 {
			return &DeleteBlockedError{Reason: "menu has child menus"}
		}

		return menuRepo.Delete(id)
	})
}

// Tree returns the full navigation tree, hidden nodes included, for the
// menu management screen.
func (s *menuService) Tree() ([]*model.MenuTreeNode, error) {
	menus, err := s.menuRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return buildMenuTree(menus), nil
}

// UserTree returns the navigation tree the given user is allowed to see.
// Hidden nodes and button nodes are excluded for everyone, superusers
// included; permission-gated nodes are kept only when the user's effective
// set grants the code. A node whose parent was filtered out is dropped with
// it rather than promoted to the root.
func (s *menuService) UserTree(user *model.User) ([]*model.MenuTreeNode, error) {
	menus, err := s.menuRepo.FindVisible()
	if err != nil {
		return nil, err
	}

	perms := user.EffectivePermissions()
	allowed := make([]model.Menu, 0, len(menus))
	for _, menu := range menus {
		if menu.MenuType == model.MenuTypeButton {
			continue
		}
		if menu.PermissionID != nil {
			if menu.Permission == nil || !perms.Has(menu.Permission.Code) {
				continue
			}
		}
		allowed = append(allowed, menu)
	}

	return buildMenuTree(allowed), nil
}

func buildMenuTree(menus []model.Menu) []*model.MenuTreeNode {
	return tree.Build(menus,
		model.Menu.ToTreeNode,
		func(parent, child *model.MenuTreeNode) {
			parent.Children = append(parent.Children, child)
		},
	)
}
