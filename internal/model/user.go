package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User statuses
const (
	UserStatusActive    = "active"
	UserStatusInactive  = "inactive"
	UserStatusSuspended = "suspended"
)

// User represents an authenticated user in the system
type User struct {
	BaseModel
	Username     string      `gorm:"type:varchar(150);uniqueIndex;not null" json:"username" validate:"required"`
	EmployeeNo   string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"employee_no" validate:"required"`
	Password     string      `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Email        string      `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone        string      `gorm:"type:varchar(20)" json:"phone"`
	Avatar       string      `gorm:"type:varchar(255)" json:"avatar"`
	Position     string      `gorm:"type:varchar(100)" json:"position"`
	Gender       string      `gorm:"type:varchar(10);default:'other'" json:"gender"`
	Birthday     *time.Time  `gorm:"type:date" json:"birthday,omitempty"`
	EntryDate    *time.Time  `gorm:"type:date" json:"entry_date,omitempty"`
	Status       string      `gorm:"type:varchar(20);default:'active'" json:"status"`
	DepartmentID *uint       `gorm:"index" json:"department_id"`
	Department   *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Roles        []*Role     `gorm:"many2many:sys_user_roles;" json:"roles,omitempty"`
	IsSuperuser  bool        `gorm:"default:false" json:"is_superuser"`
	IsActive     bool        `json:"is_active"`
	LastLoginAt  *time.Time  `json:"last_login_at,omitempty"`
	LastLoginIP  string      `gorm:"type:varchar(45)" json:"last_login_ip,omitempty"`
	TokenVersion string      `gorm:"type:varchar(255);default:''" json:"-"` // Bumped on logout to invalidate tokens
	Remark       string      `gorm:"type:text" json:"remark"`
}

func (User) TableName() string {
	return "sys_users"
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// EffectivePermissions resolves the user's permission set: the union of
// permission codes across all active roles. Superusers get the sentinel
// "all" set. This is the single place the superuser bypass lives; callers
// gate on set.Has(code) and never re-check IsSuperuser themselves.
// Roles and their Permissions must be preloaded.
func (u *User) EffectivePermissions() PermissionSet {
	if u.IsSuperuser {
		return AllPermissions()
	}

	set := NewPermissionSet()
	for _, role := range u.Roles {
		if role == nil || !role.IsActive {
			continue
		}
		for _, perm := range role.Permissions {
			set.codes[perm.Code] = struct{}{}
		}
	}
	return set
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID           uuid.UUID   `json:"id"`
	Username     string      `json:"username"`
	EmployeeNo   string      `json:"employee_no"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Avatar       string      `json:"avatar"`
	Position     string      `json:"position"`
	Gender       string      `json:"gender"`
	Status       string      `json:"status"`
	DepartmentID *uint       `json:"department_id,omitempty"`
	Department   *Department `json:"department,omitempty"`
	Roles        []RoleInfo  `json:"roles"`
	IsSuperuser  bool        `json:"is_superuser"`
	IsActive     bool        `json:"is_active"`
	LastLoginAt  *time.Time  `json:"last_login_at,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	roles := make([]RoleInfo, 0, len(u.Roles))
	for _, role := range u.Roles {
		roles = append(roles, role.ToInfo())
	}
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		EmployeeNo:   u.EmployeeNo,
		Email:        u.Email,
		Phone:        u.Phone,
		Avatar:       u.Avatar,
		Position:     u.Position,
		Gender:       u.Gender,
		Status:       u.Status,
		DepartmentID: u.DepartmentID,
		Department:   u.Department,
		Roles:        roles,
		IsSuperuser:  u.IsSuperuser,
		IsActive:     u.IsActive,
		LastLoginAt:  u.LastLoginAt,
		CreatedAt:    u.CreatedAt,
	}
}

// UserProfile is the /auth/user payload: the user plus the resolved
// permission codes the frontend uses for action gating.
type UserProfile struct {
	UserResponse
	Permissions []string `json:"permissions"`
}

// ToProfile builds the profile payload. Superusers get the wildcard marker
// instead of the full catalog.
func (u *User) ToProfile() UserProfile {
	set := u.EffectivePermissions()
	codes := set.Codes()
	if set.All {
		codes = []string{"*"}
	}
	return UserProfile{
		UserResponse: u.ToResponse(),
		Permissions:  codes,
	}
}
