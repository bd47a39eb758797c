package service

import (
	"testing"

	"go-erp-backoffice/internal/model"
	"go-erp-backoffice/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAuthUser(t *testing.T, db *gorm.DB, username, password string) *model.User {
	t.Helper()

	user := &model.User{
		Username:   username,
		EmployeeNo: "EMP-" + username,
		Status:     model.UserStatusActive,
		IsActive:   true,
	}
	require.NoError(t, user.SetPassword(password))
	require.NoError(t, repository.NewUserRepo(db).Create(user))
	return user
}

func TestLoginSuccessRecordsSideEffects(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepo(db)
	svc := NewAuthService(userRepo)
	seedAuthUser(t, db, "alice", "secret123")

	resp, err := svc.Login("alice", "secret123", "10.0.0.9")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "alice", resp.User.Username)

	// Last login and token version are persisted
	stored, err := userRepo.FindByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, stored.LastLoginAt)
	assert.Equal(t, "10.0.0.9", stored.LastLoginIP)
	assert.NotEmpty(t, stored.TokenVersion)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))
	seedAuthUser(t, db, "alice", "secret123")

	_, err := svc.Login("alice", "wrong-password", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody", "secret123", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepo(db)
	svc := NewAuthService(userRepo)
	user := seedAuthUser(t, db, "bob", "secret123")

	require.NoError(t, db.Model(user).Update("is_active", false).Error)

	_, err := svc.Login("bob", "secret123", "")
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))
	seedAuthUser(t, db, "carol", "secret123")

	login, err := svc.Login("carol", "secret123", "")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.Access)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))
	seedAuthUser(t, db, "dave", "secret123")

	login, err := svc.Login("dave", "secret123", "")
	require.NoError(t, err)

	// An access token must never pass the refresh endpoint
	_, err = svc.Refresh(login.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestLogoutRevokesSession(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))
	seedAuthUser(t, db, "erin", "secret123")

	login, err := svc.Login("erin", "secret123", "")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(login.RefreshToken))

	// The old refresh token is dead after the version bump
	_, err = svc.Refresh(login.RefreshToken)
	assert.ErrorIs(t, err, ErrSessionRevoked)
}

func TestProfilePermissions(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepo(db)
	svc := NewAuthService(userRepo)

	perm := &model.Permission{Name: "View User", Code: "foundation:user:view", Module: "foundation"}
	require.NoError(t, db.Create(perm).Error)
	role := &model.Role{Name: "Viewer", Code: "viewer", IsActive: true, Permissions: []*model.Permission{perm}}
	require.NoError(t, db.Create(role).Error)

	user := seedAuthUser(t, db, "frank", "secret123")
	require.NoError(t, userRepo.ReplaceRoles(user.ID, []*model.Role{role}))

	profile, err := svc.Profile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"foundation:user:view"}, profile.Permissions)

	// Superusers report the wildcard marker, not the whole catalog
	require.NoError(t, db.Model(user).Update("is_superuser", true).Error)
	profile, err = svc.Profile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"*"}, profile.Permissions)
}
