package service

import (
	"errors"

	"go-erp-backoffice/internal/model"
	"go-erp-backoffice/internal/repository"
	"go-erp-backoffice/pkg/validator"
)

var (
	ErrRoleNotFound       = errors.New("role not found")
	ErrRoleCodeExists     = errors.New("role code already exists")
	ErrPermissionNotExist = errors.New("one or more permissions do not exist")
)

type RoleService interface {
	List() ([]model.Role, error)
	Get(id uint) (*model.Role, error)
	Create(req *CreateRoleRequest) (*model.Role, error)
	Update(id uint, req *UpdateRoleRequest) (*model.Role, error)
	Delete(id uint) error
	AssignPermissions(id uint, req *AssignPermissionsRequest) (*model.Role, error)
}

type CreateRoleRequest struct {
	Name          string `json:"name" validate:"required"`
	Code          string `json:"code" validate:"required"`
	Description   string `json:"description"`
	SortOrder     int    `json:"sort_order"`
	IsActive      *bool  `json:"is_active"`
	PermissionIDs []uint `json:"permission_ids"`
}

type UpdateRoleRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

type AssignPermissionsRequest struct {
	PermissionIDs []uint `json:"permission_ids" validate:"required"`
}

type roleService struct {
	roleRepo repository.RoleRepository
	permRepo repository.PermissionRepository
}

func NewRoleService(roleRepo repository.RoleRepository, permRepo repository.PermissionRepository) RoleService {
	return &roleService{
		roleRepo: roleRepo,
		permRepo: permRepo,
	}
}

func (s *roleService) List() ([]model.Role, error) {
	return s.roleRepo.FindAll()
}

func (s *roleService) Get(id uint) (*model.Role, error) {
	role, err := s.roleRepo.FindByID(id)
	if err != nil {
		return nil, ErrRoleNotFound
	}
	return role, nil
}

func (s *roleService) Create(req *CreateRoleRequest) (*model.Role, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Check code uniqueness
	if existing, _ := s.roleRepo.FindByCode(req.Code); existing != nil {
		return nil, ErrRoleCodeExists
	}

	// 3. Resolve permission assignment
	perms, err := s.resolvePermissions(req.PermissionIDs)
	if err != nil {
		return nil, err
	}

	role := &model.Role{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    true,
		Permissions: perms,
	}
	if req.IsActive != nil {
		role.IsActive = *req.IsActive
	}

	if err := s.roleRepo.Create(role); err != nil {
		return nil, err
	}
	return s.roleRepo.FindByID(role.ID)
}

func (s *roleService) Update(id uint, req *UpdateRoleRequest) (*model.Role, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Find existing role
	role, err := s.roleRepo.FindByID(id)
	if err != nil {
		return nil, ErrRoleNotFound
	}

	// The role code is the stable identifier grants hang off; it never changes
	role.Name = req.Name
	role.Description = req.Description
	role.SortOrder = req.SortOrder
	if req.IsActive != nil {
		role.IsActive = *req.IsActive
	}

	if err := s.roleRepo.Update(role); err != nil {
		return nil, err
	}
	return s.roleRepo.FindByID(id)
}

func (s *roleService) Delete(id uint) error {
	role, err := s.roleRepo.FindByID(id)
	if err != nil {
		return ErrRoleNotFound
	}

	if role.IsSystem {
		return &DeleteBlockedError{Reason: "system roles cannot be deleted"}
	}

	return s.roleRepo.Delete(id)
}

// AssignPermissions replaces the role's permission set wholesale.
func (s *roleService) AssignPermissions(id uint, req *AssignPermissionsRequest) (*model.Role, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Find existing role
	if _, err := s.roleRepo.FindByID(id); err != nil {
		return nil, ErrRoleNotFound
	}

	// 3. Resolve and replace
	perms, err := s.resolvePermissions(req.PermissionIDs)
	if err != nil {
		return nil, err
	}
	if err := s.roleRepo.ReplacePermissions(id, perms); err != nil {
		return nil, err
	}

	return s.roleRepo.FindByID(id)
}

func (s *roleService) resolvePermissions(ids []uint) ([]*model.Permission, error) {
	perms := make([]*model.Permission, 0, len(ids))
	for _, id := range ids {
		perm, err := s.permRepo.FindByID(id)
		if err != nil {
			return nil, ErrPermissionNotExist
		}
		perms = append(perms, perm)
	}
	return perms, nil
}
