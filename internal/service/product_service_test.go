package service

import (
	"strings"
	"testing"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct_NormalizesSKU(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProductService(repository.NewProductRepo(db))

	created, err := svc.Create(&model.Product{
		Name:     "  Widget  ",
		Price:    4.5,
		Category: "widgets",
		SKU:      " abc1 ",
	})
	require.NoError(t, err)
	assert.Equal(t, "ABC1", created.SKU)
	assert.Equal(t, "Widget", created.Name)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestCreateProduct_DuplicateSKU(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProductService(repository.NewProductRepo(db))

	_, err := svc.Create(&model.Product{Name: "First", Category: "widgets", SKU: "ABC1"})
	require.NoError(t, err)

	// Uniqueness holds across case since SKUs are normalized
	_, err = svc.Create(&model.Product{Name: "Second", Category: "widgets", SKU: "abc1"})
	assert.ErrorIs(t, err, ErrSKUExists)

	var count int64
	db.Model(&model.Product{}).Count(&count)
	assert.EqualValues(t, 1, count, "rejected product must not be persisted")
}

func TestCreateProduct_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProductService(repository.NewProductRepo(db))

	cases := []struct {
		name    string
		product model.Product
	}{
		{"missing name", model.Product{Category: "widgets", SKU: "ABC1"}},
		{"name too long", model.Product{Name: strings.Repeat("x", 101), Category: "widgets", SKU: "ABC1"}},
		{"missing category", model.Product{Name: "Widget", SKU: "ABC1"}},
		{"missing sku", model.Product{Name: "Widget", Category: "widgets"}},
		{"negative price", model.Product{Name: "Widget", Category: "widgets", SKU: "ABC1", Price: -1}},
		{"negative quantity", model.Product{Name: "Widget", Category: "widgets", SKU: "ABC1", Quantity: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(&tc.product)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestUpdateProduct_Partial(t *testing.T) {
	db := setupTestDB(t)
	product := createTestProduct(t, db, "ABC1", 10)
	svc := NewProductService(repository.NewProductRepo(db))

	price := 19.99
	updated, err := svc.Update(product.ID, &UpdateProductRequest{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, 19.99, updated.Price)
	assert.Equal(t, product.Name, updated.Name, "untouched fields keep their values")
	assert.Equal(t, 10, updated.Quantity)
}

func TestUpdateProduct_RunsCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	product := createTestProduct(t, db, "ABC1", 10)
	svc := NewProductService(repository.NewProductRepo(db))

	empty := ""
	_, err := svc.Update(product.ID, &UpdateProductRequest{Name: &empty})
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestUpdateProduct_DuplicateSKU(t *testing.T) {
	db := setupTestDB(t)
	createTestProduct(t, db, "ABC1", 10)
	second := createTestProduct(t, db, "ABC2", 10)
	svc := NewProductService(repository.NewProductRepo(db))

	sku := "abc1"
	_, err := svc.Update(second.ID, &UpdateProductRequest{SKU: &sku})
	assert.ErrorIs(t, err, ErrSKUExists)

	// Re-submitting a product's own SKU is not a conflict
	sku = "ABC2"
	_, err = svc.Update(second.ID, &UpdateProductRequest{SKU: &sku})
	assert.NoError(t, err)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewProductService(repository.NewProductRepo(db))

	name := "Widget"
	_, err := svc.Update(uuid.New(), &UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	db := setupTestDB(t)
	product := createTestProduct(t, db, "ABC1", 10)
	svc := NewProductService(repository.NewProductRepo(db))

	require.NoError(t, svc.Delete(product.ID))

	_, err := svc.GetByID(product.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, svc.Delete(uuid.New()), ErrProductNotFound)
}

func TestGetProducts(t *testing.T) {
	db := setupTestDB(t)
	createTestProduct(t, db, "ABC1", 1)
	createTestProduct(t, db, "ABC2", 2)
	svc := NewProductService(repository.NewProductRepo(db))

	products, err := svc.GetAll()
	require.NoError(t, err)
	assert.Len(t, products, 2)
}
