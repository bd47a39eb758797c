package model

import "time"

// Role represents user roles in the system
type Role struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Name        string        `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required"`
	Code        string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"code" validate:"required"`
	Description string        `gorm:"type:text" json:"description"`
	Permissions []*Permission `gorm:"many2many:sys_role_permissions;" json:"permissions,omitempty"`
	IsActive    bool          `json:"is_active"`
	IsSystem    bool          `gorm:"default:false" json:"is_system"` // system roles are delete-protected
	SortOrder   int           `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (Role) TableName() string {
	return "sys_roles"
}

// RoleInfo is the compact role summary embedded in user payloads
type RoleInfo struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

func (r *Role) ToInfo() RoleInfo {
	return RoleInfo{ID: r.ID, Name: r.Name, Code: r.Code}
}

// Role codes as constants
const (
	RoleSuperAdmin       = "super_admin"
	RoleInventoryManager = "inventory_manager"
	RoleSalesStaff       = "sales_staff"
)

// DefaultRoles defines the seeded roles. Permission assignment happens at
// seed time by module (see cmd/api).
var DefaultRoles = []Role{
	{
		Code:        RoleSuperAdmin,
		Name:        "Super Administrator",
		Description: "Full system access",
		IsActive:    true,
		IsSystem:    true,
		SortOrder:   1,
	},
	{
		Code:        RoleInventoryManager,
		Name:        "Inventory Manager",
		Description: "Manages materials, categories and warehouses",
		IsActive:    true,
		SortOrder:   2,
	},
	{
		Code:        RoleSalesStaff,
		Name:        "Sales Staff",
		Description: "Sales order handling and customer master data",
		IsActive:    true,
		SortOrder:   3,
	},
}

// RoleModuleGrants maps a default role to the permission modules it receives
var RoleModuleGrants = map[string][]string{
	RoleInventoryManager: {"inventory", "reports"},
	RoleSalesStaff:       {"sales"},
}
