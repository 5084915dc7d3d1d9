package service

import (
	"path/filepath"
	"testing"

	"go-inventory-api/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Category{},
		&model.Supplier{},
		&model.Transaction{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()

	user := &model.User{Username: "clerk", Email: "clerk@example.com"}
	require.NoError(t, user.SetPassword("secret123"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, sku string, quantity int) *model.Product {
	t.Helper()

	product := &model.Product{
		Name:     "Widget " + sku,
		Price:    9.99,
		Quantity: quantity,
		Category: "widgets",
		SKU:      sku,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
