package service

import (
	"errors"
	"strings"

	"go-erp-backoffice/internal/model"
	"go-erp-backoffice/internal/repository"
	"go-erp-backoffice/pkg/validator"

	"gorm.io/gorm"
)

var (
	ErrPermissionNotFound   = errors.New("permission not found")
	ErrPermissionCodeExists = errors.New("permission code already exists")
	ErrInvalidPermCode      = errors.New("permission code must be module:resource:action")
)

type PermissionService interface {
	List() ([]model.Permission, error)
	ListGrouped() (map[string][]model.Permission, error)
	Get(id uint) (*model.Permission, error)
	Create(req *CreatePermissionRequest) (*model.Permission, error)
	Update(id uint, req *UpdatePermissionRequest) (*model.Permission, error)
	Delete(id uint) error
}

type CreatePermissionRequest struct {
	Name        string `json:"name" validate:"required"`
	Code        string `json:"code" validate:"required"`
	Description string `json:"description"`
}

type UpdatePermissionRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type permissionService struct {
	permRepo repository.PermissionRepository
	db       *gorm.DB
}

func NewPermissionService(permRepo repository.PermissionRepository, db *gorm.DB) PermissionService {
	return &permissionService{permRepo: permRepo, db: db}
}

func (s *permissionService) List() ([]model.Permission, error) {
	return s.permRepo.FindAll()
}

// ListGrouped buckets the catalog by module for the role-assignment UI.
func (s *permissionService) ListGrouped() (map[string][]model.Permission, error) {
	perms, err := s.permRepo.FindAll()
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]model.Permission)
	for _, perm := range perms {
		grouped[perm.Module] = append(grouped[perm.Module], perm)
	}
	return grouped, nil
}

func (s *permissionService) Get(id uint) (*model.Permission, error) {
	perm, err := s.permRepo.FindByID(id)
	if err != nil {
		return nil, ErrPermissionNotFound
	}
	return perm, nil
}

func (s *permissionService) Create(req *CreatePermissionRequest) (*model.Permission, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. The module segment of the code is authoritative
	module, err := permModule(req.Code)
	if err != nil {
		return nil, err
	}

	// 3. Check code uniqueness
	if existing, _ := s.permRepo.FindByCode(req.Code); existing != nil {
		return nil, ErrPermissionCodeExists
	}

	perm := &model.Permission{
		Name:        req.Name,
		Code:        req.Code,
		Module:      module,
		Description: req.Description,
	}
	if err := s.permRepo.Create(perm); err != nil {
		return nil, err
	}
	return perm, nil
}

func (s *permissionService) Update(id uint, req *UpdatePermissionRequest) (*model.Permission, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Find existing permission
	perm, err := s.permRepo.FindByID(id)
	if err != nil {
		return nil, ErrPermissionNotFound
	}

	// Only the display fields change; the code is granted by reference
	perm.Name = req.Name
	perm.Description = req.Description

	if err := s.permRepo.Update(perm); err != nil {
		return nil, err
	}
	return perm, nil
}

// Delete refuses to remove a permission any role or menu still references.
// The reference counts and the delete run in one transaction so a grant
// committed concurrently cannot slip between them.
func (s *permissionService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		permRepo := repository.NewPermissionRepo(tx)

		if _, err := permRepo.FindByID(id); err != nil {
			return ErrPermissionNotFound
		}

		roleRefs, err := permRepo.CountRoleRefs(id)
		if err != nil {
			return err
		}
		if roleRefs > 0 {
			return &DeleteBlockedError{Reason: "permission is assigned to roles"}
		}

		menuRefs, err := permRepo.CountMenuRefs(id)
		if err != nil {
			return err
		}
		if menuRefs > 0 {
			return &DeleteBlockedError{Reason: "permission is referenced by menus"}
		}

		return permRepo.Delete(id)
	})
}

func permModule(code string) (string, error) {
	parts := strings.Split(code, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", ErrInvalidPermCode
	}
	return parts[0], nil
}
