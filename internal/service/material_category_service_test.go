package service

import (
	"errors"
	"testing"

	"go-erp-backoffice/internal/repository"
	"go-erp-backoffice/internal/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type categoryFixture struct {
	svc         MaterialCategoryService
	materialSvc MaterialService
	db          *gorm.DB
}

func newCategoryFixture(t *testing.T) *categoryFixture {
	db := newTestDB(t)
	categoryRepo := repository.NewMaterialCategoryRepo(db)
	materialRepo := repository.NewMaterialRepo(db)
	return &categoryFixture{
		svc:         NewMaterialCategoryService(categoryRepo, materialRepo, db),
		materialSvc: NewMaterialService(materialRepo, categoryRepo, newTestHub(t)),
		db:          db,
	}
}

func TestCategoryTreeFromLiveRows(t *testing.T) {
	f := newCategoryFixture(t)

	root, err := f.svc.Create(&CreateMaterialCategoryRequest{CategoryCode: "CAT001", CategoryName: "Raw Materials", SortOrder: 1}, "tester")
	require.NoError(t, err)
	child, err := f.svc.Create(&CreateMaterialCategoryRequest{CategoryCode: "CAT002", CategoryName: "Metals", ParentID: &root.ID}, "tester")
	require.NoError(t, err)

	nodes, err := f.svc.Tree()
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	require.Len(t, nodes[0].Children, 1)
	assert.Equal(t, child.ID, nodes[0].Children[0].ID)

	// A soft-deleted leaf vanishes from the tree
	require.NoError(t, f.svc.Delete(child.ID, "tester"))
	nodes, err = f.svc.Tree()
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Empty(t, nodes[0].Children)
}

func TestCategoryDeleteBlockedByLiveChildren(t *testing.T) {
	f := newCategoryFixture(t)

	root, err := f.svc.Create(&CreateMaterialCategoryRequest{CategoryCode: "CAT001", CategoryName: "Raw Materials"}, "tester")
	require.NoError(t, err)
	child, err := f.svc.Create(&CreateMaterialCategoryRequest{CategoryCode: "CAT002", CategoryName: "Metals", ParentID: &root.ID}, "tester")
	require.NoError(t, err)

	err = f.svc.Delete(root.ID, "tester")
	require.Error(t, err)
	assert.True(t, IsDeleteBlocked(err))

	// Soft-deleting the child removes it from the guard's count
	require.NoError(t, f.svc.Delete(child.ID, "tester"))
	assert.NoError(t, f.svc.Delete(root.ID, "tester"))
}

func TestCategoryDeleteBlockedByLiveMaterials(t *testing.T) {
	f := newCategoryFixture(t)

	category, err := f.svc.Create(&CreateMaterialCategoryRequest{CategoryCode: "CAT001", CategoryName: "Raw Materials"}, "tester")
	require.NoError(t, err)

	material, err := f.materialSvc.Create(&CreateMaterialRequest{
		MaterialCode: "MAT001",
		MaterialName: "Steel Plate",
		CategoryID:   &category.ID,
		Unit:         "kg",
	}, "tester")
	require.NoError(t, err)

	err = f.svc.Delete(category.ID, "tester")
	require.Error(t, err)
	assert.True(t, IsDeleteBlocked(err))

	// A soft-deleted material no longer anchors its category
	require.NoError(t, f.materialSvc.Delete(material.ID, "tester"))
	assert.NoError(t, f.svc.Delete(category.ID, "tester"))
}

func TestCategoryReparentCycleRejected(t *testing.T) {
	f := newCategoryFixture(t)

	a, err := f.svc.Create(&CreateMaterialCategoryRequest{CategoryCode: "CAT001", CategoryName: "A"}, "tester")
	require.NoError(t, err)
	b, err := f.svc.Create(&CreateMaterialCategoryRequest{CategoryCode: "CAT002", CategoryName: "B", ParentID: &a.ID}, "tester")
	require.NoError(t, err)

	_, err = f.svc.Update(a.ID, &UpdateMaterialCategoryRequest{CategoryName: "A", ParentID: &b.ID}, "tester")
	require.Error(t, err)
	var cycle *tree.CycleError
	assert.True(t, errors.As(err, &cycle))
}

func TestMaterialRejectsDeadCategory(t *testing.T) {
	f := newCategoryFixture(t)

	category, err := f.svc.Create(&CreateMaterialCategoryRequest{CategoryCode: "CAT001", CategoryName: "Raw Materials"}, "tester")
	require.NoError(t, err)
	require.NoError(t, f.svc.Delete(category.ID, "tester"))

	_, err = f.materialSvc.Create(&CreateMaterialRequest{
		MaterialCode: "MAT001",
		MaterialName: "Steel Plate",
		CategoryID:   &category.ID,
	}, "tester")
	assert.ErrorIs(t, err, ErrCategoryNotExists)
}
