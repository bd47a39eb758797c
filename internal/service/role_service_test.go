package service

import (
	"testing"

	"go-erp-backoffice/internal/model"
	"go-erp-backoffice/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRoleService(t *testing.T) (RoleService, *gorm.DB) {
	db := newTestDB(t)
	return NewRoleService(repository.NewRoleRepo(db), repository.NewPermissionRepo(db)), db
}

func TestRoleCreateWithPermissions(t *testing.T) {
	svc, db := newRoleService(t)

	perm := &model.Permission{Name: "View User", Code: "foundation:user:view", Module: "foundation"}
	require.NoError(t, db.Create(perm).Error)

	role, err := svc.Create(&CreateRoleRequest{
		Name:          "Viewer",
		Code:          "viewer",
		PermissionIDs: []uint{perm.ID},
	})
	require.NoError(t, err)
	require.Len(t, role.Permissions, 1)
	assert.Equal(t, "foundation:user:view", role.Permissions[0].Code)
	assert.True(t, role.IsActive)

	_, err = svc.Create(&CreateRoleRequest{Name: "Viewer 2", Code: "viewer"})
	assert.ErrorIs(t, err, ErrRoleCodeExists)
}

func TestInactiveRoleCreatePersistsFlag(t *testing.T) {
	svc, db := newRoleService(t)

	perm := &model.Permission{Name: "View User", Code: "foundation:user:view", Module: "foundation"}
	require.NoError(t, db.Create(perm).Error)

	role, err := svc.Create(&CreateRoleRequest{
		Name:          "Suspended Viewer",
		Code:          "suspended_viewer",
		IsActive:      boolPtr(false),
		PermissionIDs: []uint{perm.ID},
	})
	require.NoError(t, err)

	// 1. is_active=false must survive the insert
	var stored model.Role
	require.NoError(t, db.First(&stored, role.ID).Error)
	assert.False(t, stored.IsActive)

	// 2. An inactive role contributes zero permissions
	full, err := svc.Get(role.ID)
	require.NoError(t, err)
	holder := &model.User{Username: "clerk", IsActive: true, Roles: []*model.Role{full}}
	assert.False(t, holder.EffectivePermissions().Has("foundation:user:view"))
}

func TestRoleCreateUnknownPermission(t *testing.T) {
	svc, _ := newRoleService(t)

	_, err := svc.Create(&CreateRoleRequest{Name: "Broken", Code: "broken", PermissionIDs: []uint{999}})
	assert.ErrorIs(t, err, ErrPermissionNotExist)
}

func TestSystemRoleDeleteBlocked(t *testing.T) {
	svc, db := newRoleService(t)

	system := &model.Role{Name: "Super Administrator", Code: model.RoleSuperAdmin, IsActive: true, IsSystem: true}
	require.NoError(t, db.Create(system).Error)
	normal := &model.Role{Name: "Clerk", Code: "clerk", IsActive: true}
	require.NoError(t, db.Create(normal).Error)

	err := svc.Delete(system.ID)
	require.Error(t, err)
	assert.True(t, IsDeleteBlocked(err))

	assert.NoError(t, svc.Delete(normal.ID))
}

func TestAssignPermissionsReplacesSet(t *testing.T) {
	svc, db := newRoleService(t)

	permA := &model.Permission{Name: "A", Code: "foundation:user:view", Module: "foundation"}
	permB := &model.Permission{Name: "B", Code: "foundation:role:view", Module: "foundation"}
	require.NoError(t, db.Create(permA).Error)
	require.NoError(t, db.Create(permB).Error)

	role, err := svc.Create(&CreateRoleRequest{Name: "Clerk", Code: "clerk", PermissionIDs: []uint{permA.ID}})
	require.NoError(t, err)

	// Assignment is wholesale: B in, A out
	updated, err := svc.AssignPermissions(role.ID, &AssignPermissionsRequest{PermissionIDs: []uint{permB.ID}})
	require.NoError(t, err)
	require.Len(t, updated.Permissions, 1)
	assert.Equal(t, "foundation:role:view", updated.Permissions[0].Code)

	// Empty set revokes everything
	updated, err = svc.AssignPermissions(role.ID, &AssignPermissionsRequest{PermissionIDs: []uint{}})
	require.NoError(t, err)
	assert.Empty(t, updated.Permissions)
}
