package service

import (
	"fmt"
	"testing"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTransactionService(db *gorm.DB) (TransactionService, repository.ProductRepository) {
	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	return NewTransactionService(txRepo, productRepo), productRepo
}

func TestCreateTransaction_InIncreasesStock(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	product := createTestProduct(t, db, "ABC1", 10)
	svc, productRepo := newTransactionService(db)

	resp, err := svc.Create(&CreateTransactionRequest{
		ProductID: product.ID,
		Type:      model.TxIn,
		Quantity:  7,
	}, user.ID)
	require.NoError(t, err)

	updated, err := productRepo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 17, updated.Quantity)

	// Reduced projections of product and actor come back inline
	require.NotNil(t, resp.Product)
	assert.Equal(t, "ABC1", resp.Product.SKU)
	assert.Equal(t, product.Name, resp.Product.Name)
	require.NotNil(t, resp.User)
	assert.Equal(t, "clerk", resp.User.Username)
	assert.Equal(t, "clerk@example.com", resp.User.Email)
}

func TestCreateTransaction_OutDecreasesStock(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	product := createTestProduct(t, db, "ABC1", 10)
	svc, productRepo := newTransactionService(db)

	_, err := svc.Create(&CreateTransactionRequest{
		ProductID: product.ID,
		Type:      model.TxOut,
		Quantity:  4,
	}, user.ID)
	require.NoError(t, err)

	updated, err := productRepo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Quantity)
}

func TestCreateTransaction_InsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	product := createTestProduct(t, db, "ABC1", 10)
	svc, productRepo := newTransactionService(db)

	_, err := svc.Create(&CreateTransactionRequest{
		ProductID: product.ID,
		Type:      model.TxOut,
		Quantity:  15,
	}, user.ID)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// No mutation and no record
	updated, err := productRepo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Quantity)

	var count int64
	db.Model(&model.Transaction{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateTransaction_ProductNotFound(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc, _ := newTransactionService(db)

	_, err := svc.Create(&CreateTransactionRequest{
		ProductID: uuid.New(),
		Type:      model.TxIn,
		Quantity:  1,
	}, user.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCreateTransaction_MissingProductID(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	svc, _ := newTransactionService(db)

	_, err := svc.Create(&CreateTransactionRequest{
		Type:     model.TxIn,
		Quantity: 1,
	}, user.ID)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

// Transaction types outside in/out skip the quantity adjustment on create
// but the record is still written, and deletion treats them as an
// increment reversal. This test pins that asymmetry.
func TestCreateTransaction_UnknownType(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	product := createTestProduct(t, db, "ABC1", 10)
	svc, productRepo := newTransactionService(db)

	resp, err := svc.Create(&CreateTransactionRequest{
		ProductID: product.ID,
		Type:      "adjust",
		Quantity:  3,
	}, user.ID)
	require.NoError(t, err)

	updated, err := productRepo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Quantity, "unknown type must not change stock")

	var count int64
	db.Model(&model.Transaction{}).Count(&count)
	assert.EqualValues(t, 1, count, "transaction is still recorded")

	require.NoError(t, svc.Delete(resp.ID))
	updated, err = productRepo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 13, updated.Quantity, "unknown type reverses as an increment")
}

func TestDeleteTransaction_ReversesOut(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	product := createTestProduct(t, db, "ABC1", 10)
	svc, productRepo := newTransactionService(db)

	resp, err := svc.Create(&CreateTransactionRequest{
		ProductID: product.ID,
		Type:      model.TxOut,
		Quantity:  5,
	}, user.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(resp.ID))

	updated, err := productRepo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Quantity, "create-then-delete must be a no-op pair")

	_, err = svc.GetByID(resp.ID)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

// An "in" reversal applies no floor check and may drive the quantity
// negative, asymmetric with the sufficiency check on create.
func TestDeleteTransaction_InReversalHasNoFloor(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	product := createTestProduct(t, db, "ABC1", 0)
	svc, productRepo := newTransactionService(db)

	resp, err := svc.Create(&CreateTransactionRequest{
		ProductID: product.ID,
		Type:      model.TxIn,
		Quantity:  10,
	}, user.ID)
	require.NoError(t, err)

	// Intervening direct edit drops the stock below the reversal amount
	require.NoError(t, db.Model(&model.Product{}).Where("id = ?", product.ID).Update("quantity", 3).Error)

	require.NoError(t, svc.Delete(resp.ID))

	updated, err := productRepo.FindByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, -7, updated.Quantity)
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTransactionService(db)

	err := svc.Delete(uuid.New())
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestDeleteTransaction_ProductGoneSkipsReversal(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	product := createTestProduct(t, db, "ABC1", 10)
	svc, _ := newTransactionService(db)

	resp, err := svc.Create(&CreateTransactionRequest{
		ProductID: product.ID,
		Type:      model.TxOut,
		Quantity:  5,
	}, user.ID)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&model.Product{}, "id = ?", product.ID).Error)

	// Reversal is skipped silently, the record still goes away
	require.NoError(t, svc.Delete(resp.ID))

	_, err = svc.GetByID(resp.ID)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

// Scenario: out 15 against 10 is rejected, out 5 is accepted, deleting
// the accepted transaction restores the original quantity.
func TestTransactionScenario(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	product := createTestProduct(t, db, "ABC1", 10)
	svc, productRepo := newTransactionService(db)

	_, err := svc.Create(&CreateTransactionRequest{ProductID: product.ID, Type: model.TxOut, Quantity: 15}, user.ID)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	current, _ := productRepo.FindByID(product.ID)
	assert.Equal(t, 10, current.Quantity)

	resp, err := svc.Create(&CreateTransactionRequest{ProductID: product.ID, Type: model.TxOut, Quantity: 5}, user.ID)
	require.NoError(t, err)

	current, _ = productRepo.FindByID(product.ID)
	assert.Equal(t, 5, current.Quantity)

	require.NoError(t, svc.Delete(resp.ID))

	current, _ = productRepo.FindByID(product.ID)
	assert.Equal(t, 10, current.Quantity)
}

func TestListTransactions_Pagination(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	product := createTestProduct(t, db, "ABC1", 0)
	svc, _ := newTransactionService(db)

	for i := 0; i < 15; i++ {
		_, err := svc.Create(&CreateTransactionRequest{
			ProductID: product.ID,
			Type:      model.TxIn,
			Quantity:  1,
			Notes:     fmt.Sprintf("batch %d", i),
		}, user.ID)
		require.NoError(t, err)
	}

	result, err := svc.List(repository.TransactionFilter{}, 2, 10)
	require.NoError(t, err)
	assert.Len(t, result.Items, 5)
	assert.EqualValues(t, 15, result.Total)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 2, result.Pages)
}

func TestListTransactions_Defaults(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newTransactionService(db)

	// Out-of-range paging falls back to page=1, limit=10
	result, err := svc.List(repository.TransactionFilter{}, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Zero(t, result.Pages)
	assert.Empty(t, result.Items)
}

func TestListTransactions_Filters(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db)
	first := createTestProduct(t, db, "ABC1", 10)
	second := createTestProduct(t, db, "ABC2", 10)
	svc, _ := newTransactionService(db)

	_, err := svc.Create(&CreateTransactionRequest{ProductID: first.ID, Type: model.TxIn, Quantity: 1}, user.ID)
	require.NoError(t, err)
	_, err = svc.Create(&CreateTransactionRequest{ProductID: first.ID, Type: model.TxOut, Quantity: 1}, user.ID)
	require.NoError(t, err)
	_, err = svc.Create(&CreateTransactionRequest{ProductID: second.ID, Type: model.TxOut, Quantity: 2}, user.ID)
	require.NoError(t, err)

	byProduct, err := svc.List(repository.TransactionFilter{ProductID: &first.ID}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, byProduct.Total)

	byType, err := svc.List(repository.TransactionFilter{Type: model.TxOut}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, byType.Total)

	both, err := svc.List(repository.TransactionFilter{ProductID: &first.ID, Type: model.TxOut}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, both.Total)
	require.Len(t, both.Items, 1)
	assert.Equal(t, model.TxOut, both.Items[0].Type)
}
