package model

import (
	"time"

	"github.com/google/uuid"
)

// Department is a node in the organisational tree. A nil ParentID marks a
// top-level department; multiple roots are allowed.
type Department struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Code        string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"code" validate:"required"`
	ParentID    *uint      `gorm:"index" json:"parent_id"`
	ManagerID   *uuid.UUID `gorm:"type:uuid" json:"manager_id"`
	Manager     *User      `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Description string     `gorm:"type:text" json:"description"`
	SortOrder   int        `gorm:"default:0" json:"sort_order"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Department) TableName() string {
	return "sys_departments"
}

func (d Department) NodeID() uint        { return d.ID }
func (d Department) NodeParentID() *uint { return d.ParentID }
func (d Department) NodeSortOrder() int  { return d.SortOrder }
func (d Department) NodeCode() string    { return d.Code }

// DepartmentTreeNode is the nested JSON shape returned by the tree endpoint
type DepartmentTreeNode struct {
	ID          uint                  `json:"id"`
	Name        string                `json:"name"`
	Code        string                `json:"code"`
	ManagerName string                `json:"manager_name,omitempty"`
	SortOrder   int                   `json:"sort_order"`
	IsActive    bool                  `json:"is_active"`
	Children    []*DepartmentTreeNode `json:"children"`
}

// DefaultDepartments seeds the initial organisation structure
var DefaultDepartments = []Department{
	{Name: "Headquarters", Code: "DEPT001", Description: "Corporate headquarters", SortOrder: 1, IsActive: true},
	{Name: "R&D Center", Code: "DEPT010", Description: "Product research and development", SortOrder: 1, IsActive: true},
	{Name: "Sales Center", Code: "DEPT020", Description: "Sales and market expansion", SortOrder: 2, IsActive: true},
	{Name: "Operations Center", Code: "DEPT030", Description: "Day-to-day operations", SortOrder: 3, IsActive: true},
	{Name: "Finance Center", Code: "DEPT040", Description: "Finance and cost control", SortOrder: 4, IsActive: true},
	{Name: "HR Center", Code: "DEPT050", Description: "Human resources", SortOrder: 5, IsActive: true},
}

// DefaultDepartmentRoot is the code every other default department hangs off
const DefaultDepartmentRoot = "DEPT001"
