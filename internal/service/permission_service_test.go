package service

import (
	"testing"

	"go-erp-backoffice/internal/model"
	"go-erp-backoffice/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPermService(t *testing.T) (PermissionService, *gorm.DB) {
	db := newTestDB(t)
	return NewPermissionService(repository.NewPermissionRepo(db), db), db
}

func TestPermissionCreateDerivesModule(t *testing.T) {
	svc, _ := newPermService(t)

	perm, err := svc.Create(&CreatePermissionRequest{
		Name: "Approve Quote",
		Code: "sales:quote:approve",
	})
	require.NoError(t, err)
	assert.Equal(t, "sales", perm.Module)

	_, err = svc.Create(&CreatePermissionRequest{Name: "Dup", Code: "sales:quote:approve"})
	assert.ErrorIs(t, err, ErrPermissionCodeExists)
}

func TestPermissionCreateRejectsMalformedCode(t *testing.T) {
	svc, _ := newPermService(t)

	for _, code := range []string{"view", "sales:view", "sales::view", "a:b:c:d", ":b:c"} {
		_, err := svc.Create(&CreatePermissionRequest{Name: "Bad", Code: code})
		assert.ErrorIs(t, err, ErrInvalidPermCode, "code %q", code)
	}
}

func TestPermissionDeleteBlockedByRoleReference(t *testing.T) {
	svc, db := newPermService(t)

	perm, err := svc.Create(&CreatePermissionRequest{Name: "View User", Code: "foundation:user:view"})
	require.NoError(t, err)

	role := &model.Role{Name: "Viewer", Code: "viewer", IsActive: true, Permissions: []*model.Permission{perm}}
	require.NoError(t, db.Create(role).Error)

	err = svc.Delete(perm.ID)
	require.Error(t, err)
	assert.True(t, IsDeleteBlocked(err))

	// Dropping the grant unblocks the delete
	require.NoError(t, db.Model(role).Association("Permissions").Clear())
	assert.NoError(t, svc.Delete(perm.ID))
}

func TestPermissionDeleteBlockedByMenuReference(t *testing.T) {
	svc, db := newPermService(t)

	perm, err := svc.Create(&CreatePermissionRequest{Name: "View User", Code: "foundation:user:view"})
	require.NoError(t, err)

	menu := &model.Menu{Name: "users", Title: "Users", MenuType: model.MenuTypeMenu, PermissionID: &perm.ID, IsVisible: true}
	require.NoError(t, db.Create(menu).Error)

	err = svc.Delete(perm.ID)
	require.Error(t, err)
	assert.True(t, IsDeleteBlocked(err))

	require.NoError(t, db.Model(menu).Update("permission_id", nil).Error)
	assert.NoError(t, svc.Delete(perm.ID))
}

func TestPermissionListGrouped(t *testing.T) {
	svc, _ := newPermService(t)

	_, err := svc.Create(&CreatePermissionRequest{Name: "A", Code: "foundation:user:view"})
	require.NoError(t, err)
	_, err = svc.Create(&CreatePermissionRequest{Name: "B", Code: "foundation:role:view"})
	require.NoError(t, err)
	_, err = svc.Create(&CreatePermissionRequest{Name: "C", Code: "sales:order:view"})
	require.NoError(t, err)

	grouped, err := svc.ListGrouped()
	require.NoError(t, err)
	assert.Len(t, grouped["foundation"], 2)
	assert.Len(t, grouped["sales"], 1)
}
