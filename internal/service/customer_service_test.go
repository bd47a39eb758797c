package service

import (
	"testing"

	"go-erp-backoffice/internal/model"
	"go-erp-backoffice/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomerService(t *testing.T) CustomerService {
	db := newTestDB(t)
	return NewCustomerService(repository.NewCustomerRepo(db), newTestHub(t))
}

func TestCustomerCreateDefaults(t *testing.T) {
	svc := newCustomerService(t)

	customer, err := svc.Create(&CreateCustomerRequest{
		CustomerCode: "CUST001",
		CustomerName: "Acme Manufacturing",
	}, "tester")
	require.NoError(t, err)
	assert.Equal(t, model.CustomerTypeCompany, customer.CustomerType)
	assert.Equal(t, model.CustomerLevelNormal, customer.CustomerLevel)
	assert.Equal(t, 1, customer.Status)
	assert.Equal(t, "tester", customer.CreatedBy)

	_, err = svc.Create(&CreateCustomerRequest{CustomerCode: "CUST001", CustomerName: "Dup"}, "tester")
	assert.ErrorIs(t, err, ErrCustomerCodeExists)
}

func TestCustomerSoftDeleteContract(t *testing.T) {
	svc := newCustomerService(t)

	customer, err := svc.Create(&CreateCustomerRequest{CustomerCode: "CUST002", CustomerName: "Soft Co"}, "tester")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(customer.ID, "remover"))

	// 1. Lists hide the deleted row
	list, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	// 2. Retrieval by id still returns it, flagged, for audit access
	got, err := svc.Get(customer.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)
	assert.Equal(t, "remover", got.UpdatedBy)

	// 3. The code stays taken: the unique index covers soft-deleted rows
	_, err = svc.Create(&CreateCustomerRequest{CustomerCode: "CUST002", CustomerName: "Soft Co Reborn"}, "tester")
	assert.Error(t, err)

	// 4. Deleted rows reject updates
	_, err = svc.Update(customer.ID, &UpdateCustomerRequest{CustomerName: "Raised"}, "editor")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCustomerUpdate(t *testing.T) {
	svc := newCustomerService(t)

	customer, err := svc.Create(&CreateCustomerRequest{CustomerCode: "CUST003", CustomerName: "Before"}, "tester")
	require.NoError(t, err)

	inactive := 0
	updated, err := svc.Update(customer.ID, &UpdateCustomerRequest{
		CustomerName:  "After",
		CustomerLevel: model.CustomerLevelKey,
		CreditLimit:   500000,
		Status:        &inactive,
	}, "editor")
	require.NoError(t, err)
	assert.Equal(t, "After", updated.CustomerName)
	assert.Equal(t, model.CustomerLevelKey, updated.CustomerLevel)
	assert.Equal(t, int64(500000), updated.CreditLimit)
	assert.Equal(t, 0, updated.Status)
	assert.Equal(t, "editor", updated.UpdatedBy)
	assert.Equal(t, "CUST003", updated.CustomerCode, "business code never changes")
}
