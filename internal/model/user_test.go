package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func permWithCode(code string) *Permission {
	return &Permission{Code: code, Module: "foundation"}
}

func TestEffectivePermissionsUnionAcrossRoles(t *testing.T) {
	user := &User{
		Roles: []*Role{
			{IsActive: true, Permissions: []*Permission{
				permWithCode("foundation:user:view"),
				permWithCode("foundation:user:add"),
			}},
			{IsActive: true, Permissions: []*Permission{
				permWithCode("foundation:user:view"), // overlap collapses
				permWithCode("foundation:role:view"),
			}},
		},
	}

	set := user.EffectivePermissions()
	assert.False(t, set.All)
	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Has("foundation:user:view"))
	assert.True(t, set.Has("foundation:user:add"))
	assert.True(t, set.Has("foundation:role:view"))
	assert.False(t, set.Has("foundation:user:delete"))
}

func TestEffectivePermissionsSkipsInactiveRoles(t *testing.T) {
	user := &User{
		Roles: []*Role{
			{IsActive: false, Permissions: []*Permission{permWithCode("foundation:user:view")}},
		},
	}

	set := user.EffectivePermissions()
	assert.Equal(t, 0, set.Len())
	assert.False(t, set.Has("foundation:user:view"))
}

func TestEffectivePermissionsSuperuser(t *testing.T) {
	user := &User{IsSuperuser: true}

	set := user.EffectivePermissions()
	assert.True(t, set.All)
	assert.True(t, set.Has("anything:at:all"))
	assert.Empty(t, set.Codes())
}

func TestEffectivePermissionsNoRoles(t *testing.T) {
	user := &User{}

	set := user.EffectivePermissions()
	assert.False(t, set.All)
	assert.Equal(t, 0, set.Len())
}

func TestToProfileSuperuserWildcard(t *testing.T) {
	admin := &User{IsSuperuser: true}
	assert.Equal(t, []string{"*"}, admin.ToProfile().Permissions)

	viewer := &User{
		Roles: []*Role{{IsActive: true, Permissions: []*Permission{
			permWithCode("foundation:user:view"),
		}}},
	}
	assert.Equal(t, []string{"foundation:user:view"}, viewer.ToProfile().Permissions)
}

func TestCheckPasswordRoundTrip(t *testing.T) {
	user := &User{}
	assert.NoError(t, user.SetPassword("secret123"))
	assert.True(t, user.CheckPassword("secret123"))
	assert.False(t, user.CheckPassword("SECRET123"))
	assert.NotEqual(t, "secret123", user.Password)
}

func TestPermissionSetCodesSorted(t *testing.T) {
	set := NewPermissionSet("b:x:y", "a:x:y", "c:x:y")
	assert.Equal(t, []string{"a:x:y", "b:x:y", "c:x:y"}, set.Codes())
}
