package service

import (
	"testing"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupplierCRUD(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSupplierService(repository.NewSupplierRepo(db))

	created, err := svc.Create(&model.Supplier{
		Name:          "Acme Wholesale",
		ContactPerson: "Dana",
		Email:         "dana@acme.example",
		Phone:         "555-0101",
	})
	require.NoError(t, err)

	fetched, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Wholesale", fetched.Name)

	phone := "555-0199"
	updated, err := svc.Update(created.ID, &UpdateSupplierRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", updated.Phone)
	assert.Equal(t, "Dana", updated.ContactPerson)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.GetByID(created.ID)
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}

func TestSupplier_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSupplierService(repository.NewSupplierRepo(db))

	var vErr *ValidationError

	_, err := svc.Create(&model.Supplier{})
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.Create(&model.Supplier{Name: "Acme", Email: "not-an-email"})
	assert.ErrorAs(t, err, &vErr)
}

func TestSupplier_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSupplierService(repository.NewSupplierRepo(db))

	_, err := svc.GetByID(uuid.New())
	assert.ErrorIs(t, err, ErrSupplierNotFound)

	assert.ErrorIs(t, svc.Delete(uuid.New()), ErrSupplierNotFound)
}

func TestSupplierList_SortedByName(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSupplierService(repository.NewSupplierRepo(db))

	for _, name := range []string{"Zenith Parts", "Acme Wholesale"} {
		_, err := svc.Create(&model.Supplier{Name: name})
		require.NoError(t, err)
	}

	suppliers, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, suppliers, 2)
	assert.Equal(t, "Acme Wholesale", suppliers[0].Name)
}
