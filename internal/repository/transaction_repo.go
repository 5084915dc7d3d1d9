package repository

import (
	"time"

	"go-inventory-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionFilter narrows a transaction listing. Zero values mean
// "no filter".
type TransactionFilter struct {
	ProductID *uuid.UUID
	Type      string
}

// StockMovementData aggregates per-day in/out quantities for chart data
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

// DashboardStats holds overview stats
type DashboardStats struct {
	TotalProducts  int64   `json:"totalProducts"`
	LowStockCount  int64   `json:"lowStockCount"`
	TotalValuation float64 `json:"totalValuation"`
}

type TransactionRepository interface {
	Create(tx *model.Transaction) error
	FindByID(id uuid.UUID) (*model.Transaction, error)
	FindPaged(filter TransactionFilter, page, limit int) ([]model.Transaction, int64, error)
	Delete(id uuid.UUID) error
	GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error)
	GetDashboardStats() (*DashboardStats, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) Create(tx *model.Transaction) error {
	return r.db.Create(tx).Error
}

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	err := r.db.Preload("Product").Preload("User").First(&transaction, "id = ?", id).Error
	return &transaction, err
}

// FindPaged returns one page of matching transactions sorted by date
// descending, plus the total match count. Page is 1-indexed.
func (r *transactionRepo) FindPaged(filter TransactionFilter, page, limit int) ([]model.Transaction, int64, error) {
	applyFilter := func(db *gorm.DB) *gorm.DB {
		if filter.ProductID != nil {
			db = db.Where("product_id = ?", *filter.ProductID)
		}
		if filter.Type != "" {
			db = db.Where("type = ?", filter.Type)
		}
		return db
	}

	var total int64
	if err := applyFilter(r.db.Model(&model.Transaction{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transactions []model.Transaction
	err := applyFilter(r.db).
		Preload("Product").
		Preload("User").
		Order("date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&transactions).Error
	return transactions, total, err
}

func (r *transactionRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Transaction{}, "id = ?", id).Error
}

func (r *transactionRepo) GetStockMovement(startDate, endDate time.Time) ([]StockMovementData, error) {
	var results []StockMovementData

	// Aggregate transactions per day
	rows, err := r.db.Model(&model.Transaction{}).
		Select(`
			DATE(date) as day,
			COALESCE(SUM(CASE WHEN type = 'in' THEN quantity ELSE 0 END), 0) as inbound,
			COALESCE(SUM(CASE WHEN type = 'out' THEN quantity ELSE 0 END), 0) as outbound
		`).
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(date)").
		Order("day ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data StockMovementData
		if err := rows.Scan(&data.Date, &data.Inbound, &data.Outbound); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, rows.Err()
}

func (r *transactionRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}

	// Low stock threshold: quantity < 10
	if err := r.db.Model(&model.Product{}).Where("quantity < ?", 10).Count(&stats.LowStockCount).Error; err != nil {
		return nil, err
	}

	// Total valuation (SUM of quantity * price)
	if err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(quantity * price), 0)").
		Scan(&stats.TotalValuation).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
