package service

import (
	"errors"
	"time"

	"go-erp-backoffice/internal/model"
	"go-erp-backoffice/internal/repository"
	"go-erp-backoffice/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrUsernameExists      = errors.New("username already exists")
	ErrEmployeeNoExists    = errors.New("employee number already exists")
	ErrDepartmentNotExists = errors.New("department does not exist")
	ErrRoleNotExists       = errors.New("one or more roles do not exist")
)

type UserService interface {
	List() ([]model.UserResponse, error)
	Get(id uuid.UUID) (*model.UserResponse, error)
	Create(req *CreateUserRequest, creatorID string) (*model.UserResponse, error)
	Update(id uuid.UUID, req *UpdateUserRequest, updaterID string) (*model.UserResponse, error)
	Delete(id uuid.UUID) error
	ResetPassword(id uuid.UUID, req *ResetPasswordRequest) error
}

type CreateUserRequest struct {
	Username     string  `json:"username" validate:"required,min=3,max=150"`
	EmployeeNo   string  `json:"employee_no" validate:"required"`
	Password     string  `json:"password" validate:"required,min=6"`
	Email        string  `json:"email" validate:"omitempty,email"`
	Phone        string  `json:"phone"`
	Position     string  `json:"position"`
	Gender       string  `json:"gender" validate:"omitempty,oneof=male female other"`
	Status       string  `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	DepartmentID *uint   `json:"department_id"`
	RoleIDs      []uint  `json:"role_ids"`
	IsSuperuser  bool    `json:"is_superuser"`
	EntryDate    *string `json:"entry_date"`
	Remark       string  `json:"remark"`
}

type UpdateUserRequest struct {
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone"`
	Avatar       string `json:"avatar"`
	Position     string `json:"position"`
	Gender       string `json:"gender" validate:"omitempty,oneof=male female other"`
	Status       string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	DepartmentID *uint  `json:"department_id"`
	RoleIDs      []uint `json:"role_ids"`
	IsActive     *bool  `json:"is_active"`
	Remark       string `json:"remark"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type userService struct {
	userRepo repository.UserRepository
	deptRepo repository.DepartmentRepository
	roleRepo repository.RoleRepository
}

func NewUserService(userRepo repository.UserRepository, deptRepo repository.DepartmentRepository, roleRepo repository.RoleRepository) UserService {
	return &userService{
		userRepo: userRepo,
		deptRepo: deptRepo,
		roleRepo: roleRepo,
	}
}

func (s *userService) List() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}
	return responses, nil
}

func (s *userService) Get(id uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) Create(req *CreateUserRequest, creatorID string) (*model.UserResponse, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Check uniqueness
	if existing, _ := s.userRepo.FindByUsername(req.Username); existing != nil {
		return nil, ErrUsernameExists
	}
	if existing, _ := s.userRepo.FindByEmployeeNo(req.EmployeeNo); existing != nil {
		return nil, ErrEmployeeNoExists
	}

	// 3. Validate references
	if req.DepartmentID != nil {
		if _, err := s.deptRepo.FindByID(*req.DepartmentID); err != nil {
			return nil, ErrDepartmentNotExists
		}
	}
	roles, err := s.resolveRoles(req.RoleIDs)
	if err != nil {
		return nil, err
	}

	// 4. Build and persist
	user := &model.User{
		Username:     req.Username,
		EmployeeNo:   req.EmployeeNo,
		Email:        req.Email,
		Phone:        req.Phone,
		Position:     req.Position,
		Gender:       req.Gender,
		Status:       model.UserStatusActive,
		DepartmentID: req.DepartmentID,
		Roles:        roles,
		IsSuperuser:  req.IsSuperuser,
		IsActive:     true,
		Remark:       req.Remark,
	}
	user.CreatedBy = creatorID
	if req.Status != "" {
		user.Status = req.Status
	}
	if req.Gender == "" {
		user.Gender = "other"
	}
	if req.EntryDate != nil && *req.EntryDate != "" {
		entry, err := time.Parse("2006-01-02", *req.EntryDate)
		if err != nil {
			return nil, errors.New("entry_date must be YYYY-MM-DD")
		}
		user.EntryDate = &entry
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	created, err := s.userRepo.FindByID(user.ID)
	if err != nil {
		return nil, err
	}
	resp := created.ToResponse()
	return &resp, nil
}

func (s *userService) Update(id uuid.UUID, req *UpdateUserRequest, updaterID string) (*model.UserResponse, error) {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return nil, err
	}

	// 2. Find existing user
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	// 3. Validate references
	if req.DepartmentID != nil {
		if _, err := s.deptRepo.FindByID(*req.DepartmentID); err != nil {
			return nil, ErrDepartmentNotExists
		}
	}

	user.Email = req.Email
	user.Phone = req.Phone
	user.Avatar = req.Avatar
	user.Position = req.Position
	user.DepartmentID = req.DepartmentID
	user.Department = nil
	user.Remark = req.Remark
	user.UpdatedBy = updaterID
	if req.Gender != "" {
		user.Gender = req.Gender
	}
	if req.Status != "" {
		user.Status = req.Status
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	// 4. Replace role assignment only when the caller sent role_ids
	if req.RoleIDs != nil {
		roles, err := s.resolveRoles(req.RoleIDs)
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.ReplaceRoles(id, roles); err != nil {
			return nil, err
		}
	}

	updated, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := updated.ToResponse()
	return &resp, nil
}

func (s *userService) Delete(id uuid.UUID) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return ErrUserNotFound
	}

	// Superuser accounts cannot be removed through the API
	if user.IsSuperuser {
		return &DeleteBlockedError{Reason: "superuser accounts cannot be deleted"}
	}

	return s.userRepo.Delete(id)
}

// ResetPassword is an administrative reset; it bumps the token version so
// every outstanding session is cut off immediately.
func (s *userService) ResetPassword(id uuid.UUID, req *ResetPasswordRequest) error {
	// 1. Validate request
	if err := validator.FirstError(validator.ValidateStruct(req)); err != nil {
		return err
	}

	// 2. Find existing user
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return ErrUserNotFound
	}

	// 3. Hash and store the new password
	if err := user.SetPassword(req.NewPassword); err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(id, user.Password); err != nil {
		return err
	}

	// 4. Revoke outstanding tokens
	return s.userRepo.UpdateTokenVersion(id, uuid.New().String())
}

func (s *userService) resolveRoles(roleIDs []uint) ([]*model.Role, error) {
	if len(roleIDs) == 0 {
		return []*model.Role{}, nil
	}
	roles, err := s.roleRepo.FindByIDs(roleIDs)
	if err != nil {
		return nil, err
	}
	if len(roles) != len(roleIDs) {
		return nil, ErrRoleNotExists
	}
	return roles, nil
}
