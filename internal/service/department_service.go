package service

import (
	"errors"
	"fmt"

	"go-erp-backoffice/internal/model"
	"go-erp-backoffice/internal/repository"
	"go-erp-backoffice/internal/tree"
	"go-erp-backoffice/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDeptCodeExists     = errors.New("department code already exists")
	ErrParentNotFound     = errors.New("parent department not found")
)

type DepartmentService interface {
	List() ([]model.Department, error)
	Get(id uint) (*model.Department, error)
	Create(req *CreateDepartmentRequest, creatorID string) (*model.Department, error)
	Update(id uint, req *UpdateDepartmentRequest, updaterID string) (*model.Department, error)
	Delete(id uint) error
	Tree() ([]*model.DepartmentTreeNode, error)
}

type CreateDepartmentRequest struct {
	Name        string  `json:"name" validate:"required"`
	Code        string  `json:"code" validate:"required"`
	ParentID    *uint   `json:"parent_id"`
	ManagerID   *string `json:"manager_id"`
	Description string  `json:"description"`
	SortOrder   int     `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateDepartmentRequest struct {
	Name        string  `json:"name" validate:"required"`
	Code        string  `json:"code" validate:"required"`
	ParentID    *uint   `json:"parent_id"`
	ManagerID   *string `json:"manager_id"`
	Description string  `json:"description"`
	SortOrder   int     `json:"sort_order"`
	IsActive    *bool   `json:"is_active"`
}

type departmentService struct {
	deptRepo repository.DepartmentRepository
	userRepo repository.UserRepository
	db       *gorm.DB
}

func NewDepartmentService(deptRepo repository.DepartmentRepository, userRepo repository.UserRepository, db *gorm.DB) DepartmentService {
	return &departmentService{
		deptRepo: deptRepo,
		userRepo: userRepo,
		db:       db,
	}
}

func (s *departmentService) List() ([]model.Department, error) {
	return s.deptRepo.FindAll()
}

func (s *departmentService) Get(id uint) (*model.Department, error) {
	dept, err := s.deptRepo.FindByID(id)
	if err != nil {
		return nil, ErrDepartmentNotFound
	}
	return dept, nil
}

func (s *departmentService) Create(req *CreateDepartmentRequest, creatorID string) (*model.Department, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Check code uniqueness (advisory; the unique index is authoritative)
	if existing, _ := s.deptRepo.FindByCode(req.Code); existing != nil {
		return nil, ErrDeptCodeExists
	}

	// 3. Validate parent exists
	if req.ParentID != nil {
		if _, err := s.deptRepo.FindByID(*req.ParentID); err != nil {
			return nil, ErrParentNotFound
		}
	}

	managerID, err := parseOptionalUUID(req.ManagerID)
	if err != nil {
		return nil, err
	}

	dept := &model.Department{
		Name:        req.Name,
		Code:        req.Code,
		ParentID:    req.ParentID,
		ManagerID:   managerID,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}
	if req.IsActive != nil {
		dept.IsActive = *req.IsActive
	}

	if err := s.deptRepo.Create(dept); err != nil {
		return nil, err
	}
	return dept, nil
}

func (s *departmentService) Update(id uint, req *UpdateDepartmentRequest, updaterID string) (*model.Department, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Find existing department
	dept, err := s.deptRepo.FindByID(id)
	if err != nil {
		return nil, ErrDepartmentNotFound
	}

	// 3. Check code change against existing codes
	if req.Code != dept.Code {
		if existing, _ := s.deptRepo.FindByCode(req.Code); existing != nil {
			return nil, ErrDeptCodeExists
		}
	}

	// 4. A reparent must not make the department its own ancestor
	if req.ParentID != nil {
		if _, err := s.deptRepo.FindByID(*req.ParentID); err != nil {
			return nil, ErrParentNotFound
		}
		all, err := s.deptRepo.FindAll()
		if err != nil {
			return nil, err
		}
		if tree.WouldCycle(all, id, req.ParentID) {
			return nil, &tree.CycleError{NodeID: id}
		}
	}

	managerID, err := parseOptionalUUID(req.ManagerID)
	if err != nil {
		return nil, err
	}

	dept.Name = req.Name
	dept.Code = req.Code
	dept.ParentID = req.ParentID
	dept.ManagerID = managerID
	dept.Manager = nil
	dept.Description = req.Description
	dept.SortOrder = req.SortOrder
	if req.IsActive != nil {
		dept.IsActive = *req.IsActive
	}

	if err := s.deptRepo.Update(dept); err != nil {
		return nil, err
	}
	return s.deptRepo.FindByID(id)
}

// Delete hard-deletes a department. The guard check and the delete run in
// one transaction so a child inserted concurrently cannot slip between them.
func (s *departmentService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		deptRepo := repository.NewDepartmentRepo(tx)
		userRepo := repository.NewUserRepo(tx)

		if _, err := deptRepo.FindByID(id); err != nil {
			return ErrDepartmentNotFound
		}

		children, err := deptRepo.CountChildren(id)
		if err != nil {
			return err
		}
		if children > 0 {
			return &DeleteBlockedError{Reason: "department has child departments"}
		}

		users, err := userRepo.CountByDepartment(id)
		if err != nil {
			return err
		}
		if users > 0 {
			return &DeleteBlockedError{Reason: "department still has users assigned"}
		}

		return deptRepo.Delete(id)
	})
}

func (s *departmentService) Tree() ([]*model.DepartmentTreeNode, error) {
	depts, err := s.deptRepo.FindAll()
	if err != nil {
		return nil, err
	}

	roots := tree.Build(depts,
		func(d model.Department) *model.DepartmentTreeNode {
			node := &model.DepartmentTreeNode{
				ID:        d.ID,
				Name:      d.Name,
				Code:      d.Code,
				SortOrder: d.SortOrder,
				IsActive:  d.IsActive,
				Children:  []*model.DepartmentTreeNode{},
			}
			if d.Manager != nil {
				node.ManagerName = d.Manager.Username
			}
			return node
		},
		func(parent, child *model.DepartmentTreeNode) {
			parent.Children = append(parent.Children, child)
		},
	)
	return roots, nil
}

func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, fmt.Errorf("invalid id format: %s", *s)
	}
	return &id, nil
}
