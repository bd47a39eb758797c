package model

import "time"

// Menu types
const (
	MenuTypeDirectory = "directory"
	MenuTypeMenu      = "menu"
	MenuTypeButton    = "button"
)

// Menu is a node in the navigation tree. PermissionID is the single
// permission required to see the node; nil means visible to any
// authenticated user.
type Menu struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Name         string      `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	Title        string      `gorm:"type:varchar(100);not null" json:"title" validate:"required"`
	ParentID     *uint       `gorm:"index" json:"parent_id"`
	MenuType     string      `gorm:"type:varchar(20);default:'menu'" json:"menu_type" validate:"omitempty,oneof=directory menu button"`
	Path         string      `gorm:"type:varchar(200)" json:"path"`
	Component    string      `gorm:"type:varchar(200)" json:"component"`
	Icon         string      `gorm:"type:varchar(50)" json:"icon"`
	PermissionID *uint       `gorm:"index" json:"permission_id"`
	Permission   *Permission `gorm:"foreignKey:PermissionID" json:"permission,omitempty"`
	SortOrder    int         `gorm:"default:0" json:"sort_order"`
	IsVisible    bool        `json:"is_visible"`
	IsCache      bool        `json:"is_cache"`
	IsExternal   bool        `gorm:"default:false" json:"is_external"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func (Menu) TableName() string {
	return "sys_menus"
}

func (m Menu) NodeID() uint        { return m.ID }
func (m Menu) NodeParentID() *uint { return m.ParentID }
func (m Menu) NodeSortOrder() int  { return m.SortOrder }

// Menus carry no business code; the name breaks sort-order ties instead
func (m Menu) NodeCode() string { return m.Name }

// MenuTreeNode is the nested JSON shape of menu tree endpoints
type MenuTreeNode struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	Title      string          `json:"title"`
	MenuType   string          `json:"menu_type"`
	Path       string          `json:"path"`
	Component  string          `json:"component"`
	Icon       string          `json:"icon"`
	ParentID   *uint           `json:"parent_id"`
	SortOrder  int             `json:"sort_order"`
	IsVisible  bool            `json:"is_visible"`
	IsCache    bool            `json:"is_cache"`
	IsExternal bool            `json:"is_external"`
	Children   []*MenuTreeNode `json:"children"`
}

func (m Menu) ToTreeNode() *MenuTreeNode {
	return &MenuTreeNode{
		ID:         m.ID,
		Name:       m.Name,
		Title:      m.Title,
		MenuType:   m.MenuType,
		Path:       m.Path,
		Component:  m.Component,
		Icon:       m.Icon,
		ParentID:   m.ParentID,
		SortOrder:  m.SortOrder,
		IsVisible:  m.IsVisible,
		IsCache:    m.IsCache,
		IsExternal: m.IsExternal,
		Children:   []*MenuTreeNode{},
	}
}

// DefaultMenu seeds one navigation node; PermissionCode resolves to a
// PermissionID and ParentName to a ParentID at seed time.
type DefaultMenu struct {
	Menu
	ParentName     string
	PermissionCode string
}

// DefaultMenus is the seeded navigation tree
var DefaultMenus = []DefaultMenu{
	{Menu: Menu{Name: "system", Title: "System", MenuType: MenuTypeDirectory, Path: "/system", Icon: "setting", SortOrder: 1, IsVisible: true, IsCache: true}},
	{Menu: Menu{Name: "department", Title: "Departments", MenuType: MenuTypeMenu, Path: "department", Component: "system/department/index", Icon: "tree", SortOrder: 1, IsVisible: true, IsCache: true}, ParentName: "system", PermissionCode: "foundation:department:view"},
	{Menu: Menu{Name: "user", Title: "Users", MenuType: MenuTypeMenu, Path: "user", Component: "system/user/index", Icon: "user", SortOrder: 2, IsVisible: true, IsCache: true}, ParentName: "system", PermissionCode: "foundation:user:view"},
	{Menu: Menu{Name: "role", Title: "Roles", MenuType: MenuTypeMenu, Path: "role", Component: "system/role/index", Icon: "peoples", SortOrder: 3, IsVisible: true, IsCache: true}, ParentName: "system", PermissionCode: "foundation:role:view"},
	{Menu: Menu{Name: "permission", Title: "Permissions", MenuType: MenuTypeMenu, Path: "permission", Component: "system/permission/index", Icon: "lock", SortOrder: 4, IsVisible: true, IsCache: true}, ParentName: "system", PermissionCode: "foundation:permission:view"},
	{Menu: Menu{Name: "menu", Title: "Menus", MenuType: MenuTypeMenu, Path: "menu", Component: "system/menu/index", Icon: "menu", SortOrder: 5, IsVisible: true, IsCache: true}, ParentName: "system", PermissionCode: "foundation:menu:view"},

	{Menu: Menu{Name: "masterdata", Title: "Master Data", MenuType: MenuTypeDirectory, Path: "/masterdata", Icon: "component", SortOrder: 2, IsVisible: true, IsCache: true}},
	{Menu: Menu{Name: "customer", Title: "Customers", MenuType: MenuTypeMenu, Path: "customer", Component: "masterdata/customer/index", Icon: "client", SortOrder: 1, IsVisible: true, IsCache: true}, ParentName: "masterdata", PermissionCode: "foundation:customer:view"},
	{Menu: Menu{Name: "supplier", Title: "Suppliers", MenuType: MenuTypeMenu, Path: "supplier", Component: "masterdata/supplier/index", Icon: "shop", SortOrder: 2, IsVisible: true, IsCache: true}, ParentName: "masterdata", PermissionCode: "foundation:supplier:view"},

	{Menu: Menu{Name: "inventory", Title: "Inventory", MenuType: MenuTypeDirectory, Path: "/inventory", Icon: "box", SortOrder: 3, IsVisible: true, IsCache: true}},
	{Menu: Menu{Name: "material-category", Title: "Material Categories", MenuType: MenuTypeMenu, Path: "category", Component: "inventory/category/index", Icon: "tree-table", SortOrder: 1, IsVisible: true, IsCache: true}, ParentName: "inventory", PermissionCode: "inventory:category:view"},
	{Menu: Menu{Name: "material", Title: "Materials", MenuType: MenuTypeMenu, Path: "material", Component: "inventory/material/index", Icon: "goods", SortOrder: 2, IsVisible: true, IsCache: true}, ParentName: "inventory", PermissionCode: "inventory:material:view"},
	{Menu: Menu{Name: "warehouse", Title: "Warehouses", MenuType: MenuTypeMenu, Path: "warehouse", Component: "inventory/warehouse/index", Icon: "warehouse", SortOrder: 3, IsVisible: true, IsCache: true}, ParentName: "inventory", PermissionCode: "inventory:warehouse:view"},
}
