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
	ErrCategoryNotFound       = errors.New("material category not found")
	ErrCategoryCodeExists     = errors.New("category code already exists")
	ErrCategoryParentNotFound = errors.New("parent category not found")
)

type MaterialCategoryService interface {
	List() ([]model.MaterialCategory, error)
	Get(id uint) (*model.MaterialCategory, error)
	Create(req *CreateMaterialCategoryRequest, creatorID string) (*model.MaterialCategory, error)
	Update(id uint, req *UpdateMaterialCategoryRequest, updaterID string) (*model.MaterialCategory, error)
	Delete(id uint, deletedBy string) error
	Tree() ([]*model.MaterialCategoryTreeNode, error)
}

type CreateMaterialCategoryRequest struct {
	CategoryCode string `json:"category_code" validate:"required"`
	CategoryName string `json:"category_name" validate:"required"`
	ParentID     *uint  `json:"parent_id"`
	SortOrder    int    `json:"sort_order"`
	Remark       string `json:"remark"`
}

type UpdateMaterialCategoryRequest struct {
	CategoryName string `json:"category_name" validate:"required"`
	ParentID     *uint  `json:"parent_id"`
	SortOrder    int    `json:"sort_order"`
	Status       *int   `json:"status" validate:"omitempty,oneof=0 1"`
	Remark       string `json:"remark"`
}

type materialCategoryService struct {
	categoryRepo repository.MaterialCategoryRepository
	materialRepo repository.MaterialRepository
	db           *gorm.DB
}

func NewMaterialCategoryService(categoryRepo repository.MaterialCategoryRepository, materialRepo repository.MaterialRepository, db *gorm.DB) MaterialCategoryService {
	return &materialCategoryService{
		categoryRepo: categoryRepo,
		materialRepo: materialRepo,
		db:           db,
	}
}

func (s *materialCategoryService) List() ([]model.MaterialCategory, error) {
	return s.categoryRepo.FindAll()
}

func (s *materialCategoryService) Get(id uint) (*model.MaterialCategory, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *materialCategoryService) Create(req *CreateMaterialCategoryRequest, creatorID string) (*model.MaterialCategory, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Check code uniqueness among live rows
	if existing, _ := s.categoryRepo.FindByCode(req.CategoryCode); existing != nil {
		return nil, ErrCategoryCodeExists
	}

	// 3. Validate parent exists and is live
	if err := s.checkParent(req.ParentID); err != nil {
		return nil, err
	}

	category := &model.MaterialCategory{
		CategoryCode: req.CategoryCode,
		CategoryName: req.CategoryName,
		ParentID:     req.ParentID,
		SortOrder:    req.SortOrder,
		Status:       1,
		Remark:       req.Remark,
		CreatedBy:    creatorID,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *materialCategoryService) Update(id uint, req *UpdateMaterialCategoryRequest, updaterID string) (*model.MaterialCategory, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Find existing category
	category, err := s.categoryRepo.FindByID(id)
	if err != nil || category.IsDeleted {
		return nil, ErrCategoryNotFound
	}

	// 3. A reparent must not make the category its own ancestor
	if req.ParentID != nil {
		if err := s.checkParent(req.ParentID); err != nil {
			return nil, err
		}
		all, err := s.categoryRepo.FindAll()
		if err != nil {
			return nil, err
		}
		if tree.WouldCycle(all, id, req.ParentID) {
			return nil, &tree.CycleError{NodeID: id}
		}
	}

	category.CategoryName = req.CategoryName
	category.ParentID = req.ParentID
	category.SortOrder = req.SortOrder
	category.Remark = req.Remark
	category.UpdatedBy = updaterID
	if req.Status != nil {
		category.Status = *req.Status
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete soft-deletes a category. The guard counts only live children and
// live materials, and runs in one transaction with the delete so neither
// can appear between the check and the flag flip.
func (s *materialCategoryService) Delete(id uint, deletedBy string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		categoryRepo := repository.NewMaterialCategoryRepo(tx)
		materialRepo := repository.NewMaterialRepo(tx)

		category, err := categoryRepo.FindByID(id)
		if err != nil || category.IsDeleted {
			return ErrCategoryNotFound
		}

		children, err := categoryRepo.CountChildren(id)
		if err != nil {
			return err
		}
		if children > 0 {
			return &DeleteBlockedError{Reason: "category has child categories"}
		}

		materials, err := materialRepo.CountByCategory(id)
		if err != nil {
			return err
		}
		if materials > 0 {
			return &DeleteBlockedError{Reason: "category still has materials assigned"}
		}

		return categoryRepo.SoftDelete(id, deletedBy)
	})
}

// Tree builds the category tree from live rows only.
func (s *materialCategoryService) Tree() ([]*model.MaterialCategoryTreeNode, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}

	roots := tree.Build(categories,
		model.MaterialCategory.ToTreeNode,
		func(parent, child *model.MaterialCategoryTreeNode) {
			parent.Children = append(parent.Children, child)
		},
	)
	return roots, nil
}

func (s *materialCategoryService) checkParent(parentID *uint) error {
	if parentID == nil {
		return nil
	}
	parent, err := s.categoryRepo.FindByID(*parentID)
	if err != nil || parent.IsDeleted {
		return ErrCategoryParentNotFound
	}
	return nil
}
