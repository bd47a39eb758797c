package service

import (
	"errors"
	"testing"

	"go-erp-backoffice/internal/model"
	"go-erp-backoffice/internal/repository"
	"go-erp-backoffice/internal/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type menuFixture struct {
	svc      MenuService
	db       *gorm.DB
	menuRepo repository.MenuRepository
	permRepo repository.PermissionRepository
}

// seedMenuFixture builds a small navigation tree:
//
//	system (dir, no permission)
//	├── users    (menu, gated by foundation:user:view)
//	├── roles    (menu, gated by foundation:role:view)
//	└── audit    (menu, hidden)
//	inventory (dir, gated by inventory:material:view)
//	└── materials (menu, gated by inventory:material:view)
func seedMenuFixture(t *testing.T) *menuFixture {
	t.Helper()
	db := newTestDB(t)
	menuRepo := repository.NewMenuRepo(db)
	permRepo := repository.NewPermissionRepo(db)

	userView := &model.Permission{Name: "View User", Code: "foundation:user:view", Module: "foundation"}
	roleView := &model.Permission{Name: "View Role", Code: "foundation:role:view", Module: "foundation"}
	matView := &model.Permission{Name: "View Material", Code: "inventory:material:view", Module: "inventory"}
	for _, p := range []*model.Permission{userView, roleView, matView} {
		require.NoError(t, permRepo.Create(p))
	}

	system := &model.Menu{Name: "system", Title: "System", MenuType: model.MenuTypeDirectory, SortOrder: 1, IsVisible: true}
	require.NoError(t, menuRepo.Create(system))

	menus := []*model.Menu{
		{Name: "users", Title: "Users", MenuType: model.MenuTypeMenu, ParentID: &system.ID, PermissionID: &userView.ID, SortOrder: 1, IsVisible: true},
		{Name: "roles", Title: "Roles", MenuType: model.MenuTypeMenu, ParentID: &system.ID, PermissionID: &roleView.ID, SortOrder: 2, IsVisible: true},
		{Name: "audit", Title: "Audit Log", MenuType: model.MenuTypeMenu, ParentID: &system.ID, SortOrder: 3, IsVisible: false},
	}
	for _, m := range menus {
		require.NoError(t, menuRepo.Create(m))
	}

	inventory := &model.Menu{Name: "inventory", Title: "Inventory", MenuType: model.MenuTypeDirectory, PermissionID: &matView.ID, SortOrder: 2, IsVisible: true}
	require.NoError(t, menuRepo.Create(inventory))
	require.NoError(t, menuRepo.Create(&model.Menu{
		Name: "materials", Title: "Materials", MenuType: model.MenuTypeMenu,
		ParentID: &inventory.ID, PermissionID: &matView.ID, SortOrder: 1, IsVisible: true,
	}))

	return &menuFixture{
		svc:      NewMenuService(menuRepo, permRepo, db),
		db:       db,
		menuRepo: menuRepo,
		permRepo: permRepo,
	}
}

func userWithCodes(t *testing.T, db *gorm.DB, codes ...string) *model.User {
	t.Helper()

	var perms []*model.Permission
	for _, code := range codes {
		var p model.Permission
		require.NoError(t, db.Where("code = ?", code).First(&p).Error)
		perms = append(perms, &p)
	}

	role := &model.Role{Name: "fixture-" + codes[0], Code: "fixture_" + codes[0], IsActive: true, Permissions: perms}
	require.NoError(t, db.Create(role).Error)

	return &model.User{Username: "u-" + codes[0], IsActive: true, Roles: []*model.Role{role}}
}

func collectNames(nodes []*model.MenuTreeNode) []string {
	var names []string
	for _, n := range nodes {
		names = append(names, n.Name)
		names = append(names, collectNames(n.Children)...)
	}
	return names
}

func TestUserTreeFiltersByPermission(t *testing.T) {
	f := seedMenuFixture(t)
	user := userWithCodes(t, f.db, "foundation:user:view")

	nodes, err := f.svc.UserTree(user)
	require.NoError(t, err)

	names := collectNames(nodes)
	assert.Contains(t, names, "system")
	assert.Contains(t, names, "users")
	assert.NotContains(t, names, "roles", "ungranted menu must be filtered")
	assert.NotContains(t, names, "audit", "hidden menu must be filtered")
	assert.NotContains(t, names, "inventory")
	assert.NotContains(t, names, "materials")
}

func TestUserTreeDropsChildrenOfFilteredParent(t *testing.T) {
	f := seedMenuFixture(t)

	// Grant only the child's code, then gate the parent on something else:
	// the parent falls away and takes the child with it.
	roleView := userWithCodes(t, f.db, "foundation:role:view")

	var inventory model.Menu
	require.NoError(t, f.db.Where("name = ?", "inventory").First(&inventory).Error)
	var materials model.Menu
	require.NoError(t, f.db.Where("name = ?", "materials").First(&materials).Error)

	var roleViewPerm model.Permission
	require.NoError(t, f.db.Where("code = ?", "foundation:role:view").First(&roleViewPerm).Error)
	require.NoError(t, f.db.Model(&materials).Update("permission_id", roleViewPerm.ID).Error)

	nodes, err := f.svc.UserTree(roleView)
	require.NoError(t, err)

	names := collectNames(nodes)
	assert.NotContains(t, names, "inventory", "parent stays gated")
	assert.NotContains(t, names, "materials", "child of a filtered parent is dropped, not promoted")
}

func TestUserTreeSuperuserStillHidesInvisible(t *testing.T) {
	f := seedMenuFixture(t)
	superuser := &model.User{Username: "root", IsActive: true, IsSuperuser: true}

	nodes, err := f.svc.UserTree(superuser)
	require.NoError(t, err)

	names := collectNames(nodes)
	assert.Contains(t, names, "users")
	assert.Contains(t, names, "roles")
	assert.Contains(t, names, "materials")
	assert.NotContains(t, names, "audit", "is_visible=false binds superusers too")
}

func TestAdminTreeIncludesHiddenNodes(t *testing.T) {
	f := seedMenuFixture(t)

	nodes, err := f.svc.Tree()
	require.NoError(t, err)

	names := collectNames(nodes)
	assert.Contains(t, names, "audit")
}

func TestHiddenMenuCreatePersistsFlag(t *testing.T) {
	f := seedMenuFixture(t)

	menu, err := f.svc.Create(&CreateMenuRequest{
		Name: "reports", Title: "Reports", MenuType: model.MenuTypeMenu,
		IsVisible: boolPtr(false),
	})
	require.NoError(t, err)

	// 1. is_visible=false must survive the insert
	var stored model.Menu
	require.NoError(t, f.db.First(&stored, menu.ID).Error)
	assert.False(t, stored.IsVisible)

	// 2. And the hidden menu stays out of every user's tree
	superuser := &model.User{Username: "root", IsActive: true, IsSuperuser: true}
	nodes, err := f.svc.UserTree(superuser)
	require.NoError(t, err)
	assert.NotContains(t, collectNames(nodes), "reports")
}

func TestMenuDeleteGuard(t *testing.T) {
	f := seedMenuFixture(t)

	var system, users model.Menu
	require.NoError(t, f.db.Where("name = ?", "system").First(&system).Error)
	require.NoError(t, f.db.Where("name = ?", "users").First(&users).Error)

	err := f.svc.Delete(system.ID)
	require.Error(t, err)
	assert.True(t, IsDeleteBlocked(err))

	require.NoError(t, f.svc.Delete(users.ID))
}

func TestMenuReparentCycleRejected(t *testing.T) {
	f := seedMenuFixture(t)

	var system, users model.Menu
	require.NoError(t, f.db.Where("name = ?", "system").First(&system).Error)
	require.NoError(t, f.db.Where("name = ?", "users").First(&users).Error)

	_, err := f.svc.Update(system.ID, &UpdateMenuRequest{
		Name: "system", Title: "System", MenuType: model.MenuTypeDirectory, ParentID: &users.ID,
	})
	require.Error(t, err)
	var cycle *tree.CycleError
	assert.True(t, errors.As(err, &cycle))
}
