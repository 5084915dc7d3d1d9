package service

import (
	"errors"
	"math"
	"time"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInsufficientStock   = errors.New("insufficient stock")
)

type TransactionService interface {
	Create(req *CreateTransactionRequest, userID uuid.UUID) (*model.TransactionResponse, error)
	Delete(id uuid.UUID) error
	GetByID(id uuid.UUID) (*model.TransactionResponse, error)
	List(filter repository.TransactionFilter, page, limit int) (*TransactionListResult, error)
}

type CreateTransactionRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"uuid_required"`
	Type      string    `json:"type" validate:"required"`
	Quantity  int       `json:"quantity"`
	Notes     string    `json:"notes"`
}

type TransactionListResult struct {
	Items []model.TransactionResponse
	Total int64
	Page  int
	Pages int
}

type transactionService struct {
	transactionRepo repository.TransactionRepository
	productRepo     repository.ProductRepository
}

func NewTransactionService(tRepo repository.TransactionRepository, pRepo repository.ProductRepository) TransactionService {
	return &transactionService{
		transactionRepo: tRepo,
		productRepo:     pRepo,
	}
}

// Create records a stock movement and reconciles the product quantity.
// The product update and the transaction insert are two sequential writes;
// a failure between them leaves the quantity change in place without a
// matching record.
func (s *transactionService) Create(req *CreateTransactionRequest, userID uuid.UUID) (*model.TransactionResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(req.ProductID)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if req.Type == model.TxIn {
		product.Quantity += req.Quantity
	} else if req.Type == model.TxOut {
		if product.Quantity < req.Quantity {
			return nil, ErrInsufficientStock
		}
		product.Quantity -= req.Quantity
	}
	// Any other type falls through: no quantity change, but the
	// transaction is still recorded.

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	tx := &model.Transaction{
		ProductID: req.ProductID,
		UserID:    userID,
		Type:      req.Type,
		Quantity:  req.Quantity,
		Notes:     req.Notes,
		Date:      time.Now(),
	}
	if err := s.transactionRepo.Create(tx); err != nil {
		return nil, err
	}

	// Re-fetch with product and actor joined for the reduced projections
	created, err := s.transactionRepo.FindByID(tx.ID)
	if err != nil {
		return nil, err
	}
	resp := created.ToResponse()
	return &resp, nil
}

// Delete reverses the transaction's effect on the product, then destroys
// the record. If the product no longer exists the reversal is skipped
// silently. An "in" reversal applies no floor check and may drive the
// quantity negative, asymmetric with the sufficiency check on create.
func (s *transactionService) Delete(id uuid.UUID) error {
	tx, err := s.transactionRepo.FindByID(id)
	if err != nil {
		return ErrTransactionNotFound
	}

	product, err := s.productRepo.FindByID(tx.ProductID)
	if err == nil {
		if tx.Type == model.TxIn {
			product.Quantity -= tx.Quantity
		} else {
			product.Quantity += tx.Quantity
		}
		if err := s.productRepo.Update(product); err != nil {
			return err
		}
	}

	return s.transactionRepo.Delete(id)
}

func (s *transactionService) GetByID(id uuid.UUID) (*model.TransactionResponse, error) {
	tx, err := s.transactionRepo.FindByID(id)
	if err != nil {
		return nil, ErrTransactionNotFound
	}
	resp := tx.ToResponse()
	return &resp, nil
}

func (s *transactionService) List(filter repository.TransactionFilter, page, limit int) (*TransactionListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	transactions, total, err := s.transactionRepo.FindPaged(filter, page, limit)
	if err != nil {
		return nil, err
	}

	items := make([]model.TransactionResponse, len(transactions))
	for i := range transactions {
		items[i] = transactions[i].ToResponse()
	}

	return &TransactionListResult{
		Items: items,
		Total: total,
		Page:  page,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}
