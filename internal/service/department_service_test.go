package service

import (
	"errors"
	"testing"

	"go-erp-backoffice/internal/model"
	"go-erp-backoffice/internal/repository"
	"go-erp-backoffice/internal/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeptService(t *testing.T) (DepartmentService, repository.DepartmentRepository, repository.UserRepository) {
	db := newTestDB(t)
	deptRepo := repository.NewDepartmentRepo(db)
	userRepo := repository.NewUserRepo(db)
	return NewDepartmentService(deptRepo, userRepo, db), deptRepo, userRepo
}

func TestDepartmentCreateAndTree(t *testing.T) {
	svc, _, _ := newDeptService(t)

	// 1. Build a small hierarchy
	root, err := svc.Create(&CreateDepartmentRequest{Name: "Headquarters", Code: "DEPT001", SortOrder: 1}, "tester")
	require.NoError(t, err)

	child2, err := svc.Create(&CreateDepartmentRequest{Name: "Sales", Code: "DEPT020", ParentID: &root.ID, SortOrder: 2}, "tester")
	require.NoError(t, err)
	child1, err := svc.Create(&CreateDepartmentRequest{Name: "R&D", Code: "DEPT010", ParentID: &root.ID, SortOrder: 1}, "tester")
	require.NoError(t, err)

	// 2. Tree nests children under the root in sort order
	nodes, err := svc.Tree()
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, root.ID, nodes[0].ID)
	require.Len(t, nodes[0].Children, 2)
	assert.Equal(t, child1.ID, nodes[0].Children[0].ID)
	assert.Equal(t, child2.ID, nodes[0].Children[1].ID)
}

func TestDepartmentCreateValidation(t *testing.T) {
	svc, _, _ := newDeptService(t)

	_, err := svc.Create(&CreateDepartmentRequest{Name: "No Code"}, "tester")
	assert.Error(t, err)

	_, err = svc.Create(&CreateDepartmentRequest{Name: "A", Code: "DEPT001"}, "tester")
	require.NoError(t, err)
	_, err = svc.Create(&CreateDepartmentRequest{Name: "B", Code: "DEPT001"}, "tester")
	assert.ErrorIs(t, err, ErrDeptCodeExists)

	missing := uint(999)
	_, err = svc.Create(&CreateDepartmentRequest{Name: "C", Code: "DEPT002", ParentID: &missing}, "tester")
	assert.ErrorIs(t, err, ErrParentNotFound)
}

func TestDepartmentDeleteBlockedByChildren(t *testing.T) {
	svc, _, _ := newDeptService(t)

	root, err := svc.Create(&CreateDepartmentRequest{Name: "Root", Code: "DEPT001"}, "tester")
	require.NoError(t, err)
	child, err := svc.Create(&CreateDepartmentRequest{Name: "Child", Code: "DEPT010", ParentID: &root.ID}, "tester")
	require.NoError(t, err)

	// 1. Parent with a child is protected
	err = svc.Delete(root.ID)
	require.Error(t, err)
	assert.True(t, IsDeleteBlocked(err))

	// 2. Leaf deletes fine, then the parent follows
	require.NoError(t, svc.Delete(child.ID))
	require.NoError(t, svc.Delete(root.ID))
}

func TestDepartmentDeleteBlockedByUsers(t *testing.T) {
	svc, _, userRepo := newDeptService(t)

	dept, err := svc.Create(&CreateDepartmentRequest{Name: "Staffed", Code: "DEPT030"}, "tester")
	require.NoError(t, err)

	user := &model.User{
		Username:     "worker",
		EmployeeNo:   "EMP0002",
		Status:       model.UserStatusActive,
		DepartmentID: &dept.ID,
		IsActive:     true,
	}
	require.NoError(t, user.SetPassword("secret123"))
	require.NoError(t, userRepo.Create(user))

	err = svc.Delete(dept.ID)
	require.Error(t, err)
	assert.True(t, IsDeleteBlocked(err))

	// Reassigning the user away unblocks the delete
	user.DepartmentID = nil
	require.NoError(t, userRepo.Update(user))
	require.NoError(t, svc.Delete(dept.ID))
}

func TestDepartmentReparentCycleRejected(t *testing.T) {
	svc, _, _ := newDeptService(t)

	a, err := svc.Create(&CreateDepartmentRequest{Name: "A", Code: "DEPT001"}, "tester")
	require.NoError(t, err)
	b, err := svc.Create(&CreateDepartmentRequest{Name: "B", Code: "DEPT010", ParentID: &a.ID}, "tester")
	require.NoError(t, err)
	c, err := svc.Create(&CreateDepartmentRequest{Name: "C", Code: "DEPT011", ParentID: &b.ID}, "tester")
	require.NoError(t, err)

	// Moving A under its own grandchild must fail
	_, err = svc.Update(a.ID, &UpdateDepartmentRequest{Name: "A", Code: "DEPT001", ParentID: &c.ID}, "tester")
	require.Error(t, err)
	var cycle *tree.CycleError
	assert.True(t, errors.As(err, &cycle))

	// Moving C to the root is a legal reparent
	updated, err := svc.Update(c.ID, &UpdateDepartmentRequest{Name: "C", Code: "DEPT011"}, "tester")
	require.NoError(t, err)
	assert.Nil(t, updated.ParentID)
}

func TestDepartmentDeleteNotFound(t *testing.T) {
	svc, _, _ := newDeptService(t)
	assert.ErrorIs(t, svc.Delete(12345), ErrDepartmentNotFound)
}
