package service

import (
	"errors"
	"strings"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrSKUExists       = errors.New("a product with this SKU already exists")
)

type ProductService interface {
	Create(req *model.Product) (*model.Product, error)
	Update(id uuid.UUID, req *UpdateProductRequest) (*model.Product, error)
	Delete(id uuid.UUID) error
	GetAll() ([]model.Product, error)
	GetByID(id uuid.UUID) (*model.Product, error)
}

// UpdateProductRequest applies partial field replacement: only non-nil
// fields overwrite the stored record.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Category    *string  `json:"category"`
	SKU         *string  `json:"sku"`
	ImageURL    *string  `json:"imageUrl"`
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) Create(req *model.Product) (*model.Product, error) {
	normalizeProduct(req)

	if err := validateStruct(req); err != nil {
		return nil, err
	}

	// SKU must be unique across all products
	existing, _ := s.productRepo.FindBySKU(req.SKU)
	if existing != nil && existing.ID != uuid.Nil {
		return nil, ErrSKUExists
	}

	if err := s.productRepo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *productService) Update(id uuid.UUID, req *UpdateProductRequest) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}
	normalizeProduct(product)

	// Same validation as create
	if err := validateStruct(product); err != nil {
		return nil, err
	}

	if req.SKU != nil {
		existing, _ := s.productRepo.FindBySKU(product.SKU)
		if existing != nil && existing.ID != uuid.Nil && existing.ID != product.ID {
			return nil, ErrSKUExists
		}
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(id)
}

func (s *productService) GetAll() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *productService) GetByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// normalizeProduct trims free-text fields and uppercases the SKU before
// validation and persistence.
func normalizeProduct(p *model.Product) {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.Category = strings.TrimSpace(p.Category)
	p.SKU = strings.ToUpper(strings.TrimSpace(p.SKU))
}
