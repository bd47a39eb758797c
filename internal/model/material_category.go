package model

import "time"

// MaterialCategory is tree-shaped master data with soft delete. It shares
// the department/menu hierarchy rules but keeps rows on delete.
type MaterialCategory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CategoryCode string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"category_code" validate:"required"`
	CategoryName string    `gorm:"type:varchar(100);not null" json:"category_name" validate:"required"`
	ParentID     *uint     `gorm:"index" json:"parent_id"`
	SortOrder    int       `gorm:"default:0" json:"sort_order"`
	Status       int       `gorm:"default:1" json:"status"`
	Remark       string    `gorm:"type:varchar(500)" json:"remark"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	CreatedBy    string    `json:"created_by"`
	UpdatedBy    string    `json:"updated_by"`
	IsDeleted    bool      `gorm:"default:false;index" json:"is_deleted"`
}

func (MaterialCategory) TableName() string {
	return "foundation_material_categories"
}

func (c MaterialCategory) NodeID() uint        { return c.ID }
func (c MaterialCategory) NodeParentID() *uint { return c.ParentID }
func (c MaterialCategory) NodeSortOrder() int  { return c.SortOrder }
func (c MaterialCategory) NodeCode() string    { return c.CategoryCode }

// MaterialCategoryTreeNode is the nested JSON shape of the tree endpoint
type MaterialCategoryTreeNode struct {
	ID           uint                        `json:"id"`
	CategoryCode string                      `json:"category_code"`
	CategoryName string                      `json:"category_name"`
	ParentID     *uint                       `json:"parent_id"`
	SortOrder    int                         `json:"sort_order"`
	Status       int                         `json:"status"`
	Children     []*MaterialCategoryTreeNode `json:"children"`
}

func (c MaterialCategory) ToTreeNode() *MaterialCategoryTreeNode {
	return &MaterialCategoryTreeNode{
		ID:           c.ID,
		CategoryCode: c.CategoryCode,
		CategoryName: c.CategoryName,
		ParentID:     c.ParentID,
		SortOrder:    c.SortOrder,
		Status:       c.Status,
		Children:     []*MaterialCategoryTreeNode{},
	}
}
