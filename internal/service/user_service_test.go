package service

import (
	"testing"

	"go-erp-backoffice/internal/model"
	"go-erp-backoffice/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(t *testing.T) (UserService, repository.UserRepository, *gorm.DB) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepo(db)
	svc := NewUserService(userRepo, repository.NewDepartmentRepo(db), repository.NewRoleRepo(db))
	return svc, userRepo, db
}

func TestUserCreateWithRolesAndDepartment(t *testing.T) {
	svc, _, db := newUserService(t)

	dept := &model.Department{Name: "R&D", Code: "DEPT010", IsActive: true}
	require.NoError(t, db.Create(dept).Error)
	role := &model.Role{Name: "Clerk", Code: "clerk", IsActive: true}
	require.NoError(t, db.Create(role).Error)

	user, err := svc.Create(&CreateUserRequest{
		Username:     "alice",
		EmployeeNo:   "EMP0002",
		Password:     "secret123",
		DepartmentID: &dept.ID,
		RoleIDs:      []uint{role.ID},
	}, "tester")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	require.NotNil(t, user.DepartmentID)
	assert.Equal(t, dept.ID, *user.DepartmentID)
	require.Len(t, user.Roles, 1)
	assert.Equal(t, "clerk", user.Roles[0].Code)
}

func TestUserCreateUniqueness(t *testing.T) {
	svc, _, _ := newUserService(t)

	_, err := svc.Create(&CreateUserRequest{Username: "alice", EmployeeNo: "EMP0002", Password: "secret123"}, "tester")
	require.NoError(t, err)

	_, err = svc.Create(&CreateUserRequest{Username: "alice", EmployeeNo: "EMP0003", Password: "secret123"}, "tester")
	assert.ErrorIs(t, err, ErrUsernameExists)

	_, err = svc.Create(&CreateUserRequest{Username: "alice2", EmployeeNo: "EMP0002", Password: "secret123"}, "tester")
	assert.ErrorIs(t, err, ErrEmployeeNoExists)
}

func TestUserCreateValidation(t *testing.T) {
	svc, _, _ := newUserService(t)

	// Short password
	_, err := svc.Create(&CreateUserRequest{Username: "bob", EmployeeNo: "EMP0004", Password: "123"}, "tester")
	assert.Error(t, err)

	// Unknown role
	_, err = svc.Create(&CreateUserRequest{Username: "bob", EmployeeNo: "EMP0004", Password: "secret123", RoleIDs: []uint{999}}, "tester")
	assert.ErrorIs(t, err, ErrRoleNotExists)

	// Unknown department
	missing := uint(999)
	_, err = svc.Create(&CreateUserRequest{Username: "bob", EmployeeNo: "EMP0004", Password: "secret123", DepartmentID: &missing}, "tester")
	assert.ErrorIs(t, err, ErrDepartmentNotExists)
}

func TestSuperuserDeleteBlocked(t *testing.T) {
	svc, userRepo, _ := newUserService(t)

	admin := &model.User{Username: "root", EmployeeNo: "EMP0001", Status: model.UserStatusActive, IsSuperuser: true, IsActive: true}
	require.NoError(t, admin.SetPassword("secret123"))
	require.NoError(t, userRepo.Create(admin))

	err := svc.Delete(admin.ID)
	require.Error(t, err)
	assert.True(t, IsDeleteBlocked(err))

	normal := &model.User{Username: "worker", EmployeeNo: "EMP0005", Status: model.UserStatusActive, IsActive: true}
	require.NoError(t, normal.SetPassword("secret123"))
	require.NoError(t, userRepo.Create(normal))
	assert.NoError(t, svc.Delete(normal.ID))
}

func TestResetPasswordRevokesSessions(t *testing.T) {
	svc, userRepo, db := newUserService(t)

	user := &model.User{Username: "carol", EmployeeNo: "EMP0006", Status: model.UserStatusActive, IsActive: true, TokenVersion: "v-before"}
	require.NoError(t, user.SetPassword("old-password"))
	require.NoError(t, userRepo.Create(user))

	require.NoError(t, svc.ResetPassword(user.ID, &ResetPasswordRequest{NewPassword: "new-password"}))

	var stored model.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.True(t, stored.CheckPassword("new-password"))
	assert.False(t, stored.CheckPassword("old-password"))
	assert.NotEqual(t, "v-before", stored.TokenVersion)
}

func TestUserUpdateReplacesRolesOnlyWhenSent(t *testing.T) {
	svc, userRepo, db := newUserService(t)

	role := &model.Role{Name: "Clerk", Code: "clerk", IsActive: true}
	require.NoError(t, db.Create(role).Error)

	created, err := svc.Create(&CreateUserRequest{
		Username: "dave", EmployeeNo: "EMP0007", Password: "secret123", RoleIDs: []uint{role.ID},
	}, "tester")
	require.NoError(t, err)

	// No role_ids in the request: assignment untouched
	updated, err := svc.Update(created.ID, &UpdateUserRequest{Position: "Senior Clerk"}, "tester")
	require.NoError(t, err)
	assert.Len(t, updated.Roles, 1)

	// Explicit empty list clears the assignment
	updated, err = svc.Update(created.ID, &UpdateUserRequest{RoleIDs: []uint{}}, "tester")
	require.NoError(t, err)
	assert.Empty(t, updated.Roles)

	stored, err := userRepo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Roles)
}
