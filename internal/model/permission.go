package model

import (
	"sort"
	"time"
)

// Permission represents one grantable action, coded as module:resource:action
type Permission struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Code        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"code" validate:"required"`
	Module      string    `gorm:"type:varchar(50);not null;index" json:"module" validate:"required"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Permission) TableName() string {
	return "sys_permissions"
}

// PermissionSet is the effective permission set of a user. All=true is the
// superuser sentinel: every Has check passes without enumerating codes.
type PermissionSet struct {
	All   bool
	codes map[string]struct{}
}

// NewPermissionSet builds a set from explicit codes
func NewPermissionSet(codes ...string) PermissionSet {
	set := PermissionSet{codes: make(map[string]struct{}, len(codes))}
	for _, code := range codes {
		set.codes[code] = struct{}{}
	}
	return set
}

// AllPermissions returns the superuser sentinel set
func AllPermissions() PermissionSet {
	return PermissionSet{All: true}
}

func (s PermissionSet) Has(code string) bool {
	if s.All {
		return true
	}
	_, ok := s.codes[code]
	return ok
}

func (s PermissionSet) Len() int {
	return len(s.codes)
}

// Codes returns the explicit codes in sorted order for stable JSON output.
// Empty for the superuser sentinel; callers must check All first.
func (s PermissionSet) Codes() []string {
	out := make([]string, 0, len(s.codes))
	for code := range s.codes {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// DefaultPermissions is the seeded permission catalog, grouped by module
var DefaultPermissions = []Permission{
	// Foundation module
	{Name: "View Department", Code: "foundation:department:view", Module: "foundation", Description: "View department list and detail"},
	{Name: "Add Department", Code: "foundation:department:add", Module: "foundation", Description: "Create departments"},
	{Name: "Edit Department", Code: "foundation:department:edit", Module: "foundation", Description: "Edit department info"},
	{Name: "Delete Department", Code: "foundation:department:delete", Module: "foundation", Description: "Delete departments"},

	{Name: "View User", Code: "foundation:user:view", Module: "foundation", Description: "View user list and detail"},
	{Name: "Add User", Code: "foundation:user:add", Module: "foundation", Description: "Create users"},
	{Name: "Edit User", Code: "foundation:user:edit", Module: "foundation", Description: "Edit user info"},
	{Name: "Delete User", Code: "foundation:user:delete", Module: "foundation", Description: "Delete users"},
	{Name: "Reset User Password", Code: "foundation:user:reset_pwd", Module: "foundation", Description: "Reset user passwords"},

	{Name: "View Role", Code: "foundation:role:view", Module: "foundation", Description: "View role list and detail"},
	{Name: "Add Role", Code: "foundation:role:add", Module: "foundation", Description: "Create roles"},
	{Name: "Edit Role", Code: "foundation:role:edit", Module: "foundation", Description: "Edit role info"},
	{Name: "Delete Role", Code: "foundation:role:delete", Module: "foundation", Description: "Delete roles"},

	{Name: "View Permission", Code: "foundation:permission:view", Module: "foundation", Description: "View permission catalog"},
	{Name: "Add Permission", Code: "foundation:permission:add", Module: "foundation", Description: "Create permissions"},
	{Name: "Edit Permission", Code: "foundation:permission:edit", Module: "foundation", Description: "Edit permission info"},
	{Name: "Delete Permission", Code: "foundation:permission:delete", Module: "foundation", Description: "Delete permissions"},

	{Name: "View Menu", Code: "foundation:menu:view", Module: "foundation", Description: "View menu list and detail"},
	{Name: "Add Menu", Code: "foundation:menu:add", Module: "foundation", Description: "Create menus"},
	{Name: "Edit Menu", Code: "foundation:menu:edit", Module: "foundation", Description: "Edit menu info"},
	{Name: "Delete Menu", Code: "foundation:menu:delete", Module: "foundation", Description: "Delete menus"},

	{Name: "View Customer", Code: "foundation:customer:view", Module: "foundation", Description: "View customer list and detail"},
	{Name: "Add Customer", Code: "foundation:customer:add", Module: "foundation", Description: "Create customers"},
	{Name: "Edit Customer", Code: "foundation:customer:edit", Module: "foundation", Description: "Edit customer info"},
	{Name: "Delete Customer", Code: "foundation:customer:delete", Module: "foundation", Description: "Delete customers"},

	{Name: "View Supplier", Code: "foundation:supplier:view", Module: "foundation", Description: "View supplier list and detail"},
	{Name: "Add Supplier", Code: "foundation:supplier:add", Module: "foundation", Description: "Create suppliers"},
	{Name: "Edit Supplier", Code: "foundation:supplier:edit", Module: "foundation", Description: "Edit supplier info"},
	{Name: "Delete Supplier", Code: "foundation:supplier:delete", Module: "foundation", Description: "Delete suppliers"},

	// Inventory module
	{Name: "View Material Category", Code: "inventory:category:view", Module: "inventory", Description: "View material category list and detail"},
	{Name: "Add Material Category", Code: "inventory:category:add", Module: "inventory", Description: "Create material categories"},
	{Name: "Edit Material Category", Code: "inventory:category:edit", Module: "inventory", Description: "Edit material category info"},
	{Name: "Delete Material Category", Code: "inventory:category:delete", Module: "inventory", Description: "Delete material categories"},

	{Name: "View Material", Code: "inventory:material:view", Module: "inventory", Description: "View material list and detail"},
	{Name: "Add Material", Code: "inventory:material:add", Module: "inventory", Description: "Create materials"},
	{Name: "Edit Material", Code: "inventory:material:edit", Module: "inventory", Description: "Edit material info"},
	{Name: "Delete Material", Code: "inventory:material:delete", Module: "inventory", Description: "Delete materials"},

	{Name: "View Warehouse", Code: "inventory:warehouse:view", Module: "inventory", Description: "View warehouse list and detail"},
	{Name: "Add Warehouse", Code: "inventory:warehouse:add", Module: "inventory", Description: "Create warehouses"},
	{Name: "Edit Warehouse", Code: "inventory:warehouse:edit", Module: "inventory", Description: "Edit warehouse info"},
	{Name: "Delete Warehouse", Code: "inventory:warehouse:delete", Module: "inventory", Description: "Delete warehouses"},

	// Sales module
	{Name: "View Sales Order", Code: "sales:order:view", Module: "sales", Description: "View sales orders"},
	{Name: "Add Sales Order", Code: "sales:order:add", Module: "sales", Description: "Create sales orders"},
	{Name: "Edit Sales Order", Code: "sales:order:edit", Module: "sales", Description: "Edit sales orders"},
	{Name: "Delete Sales Order", Code: "sales:order:delete", Module: "sales", Description: "Delete sales orders"},
	{Name: "Audit Sales Order", Code: "sales:order:audit", Module: "sales", Description: "Audit sales orders"},

	// Purchase module
	{Name: "View Purchase Order", Code: "purchase:order:view", Module: "purchase", Description: "View purchase orders"},
	{Name: "Add Purchase Order", Code: "purchase:order:add", Module: "purchase", Description: "Create purchase orders"},
	{Name: "Edit Purchase Order", Code: "purchase:order:edit", Module: "purchase", Description: "Edit purchase orders"},
	{Name: "Delete Purchase Order", Code: "purchase:order:delete", Module: "purchase", Description: "Delete purchase orders"},
	{Name: "Audit Purchase Order", Code: "purchase:order:audit", Module: "purchase", Description: "Audit purchase orders"},

	// Production module
	{Name: "View Production Order", Code: "production:order:view", Module: "production", Description: "View production orders"},
	{Name: "Add Production Order", Code: "production:order:add", Module: "production", Description: "Create production orders"},
	{Name: "Edit Production Order", Code: "production:order:edit", Module: "production", Description: "Edit production orders"},
	{Name: "Delete Production Order", Code: "production:order:delete", Module: "production", Description: "Delete production orders"},

	// Finance module
	{Name: "View Receivables", Code: "finance:receivable:view", Module: "finance", Description: "View accounts receivable"},
	{Name: "View Payables", Code: "finance:payable:view", Module: "finance", Description: "View accounts payable"},

	// HR module
	{Name: "View Employee", Code: "hr:employee:view", Module: "hr", Description: "View employee info"},
	{Name: "Edit Employee", Code: "hr:employee:edit", Module: "hr", Description: "Edit employee info"},

	// Logistics module
	{Name: "View Logistics Order", Code: "logistics:order:view", Module: "logistics", Description: "View logistics orders"},
	{Name: "Edit Logistics Order", Code: "logistics:order:edit", Module: "logistics", Description: "Edit logistics orders"},

	// Reports module
	{Name: "View Sales Report", Code: "reports:sales:view", Module: "reports", Description: "View sales reports"},
	{Name: "View Inventory Report", Code: "reports:inventory:view", Module: "reports", Description: "View inventory reports"},
	{Name: "View Finance Report", Code: "reports:finance:view", Module: "reports", Description: "View finance reports"},
}
