package service

import (
	"errors"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/repository"

	"github.com/google/uuid"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryService interface {
	Create(req *model.Category) (*model.Category, error)
	Update(id uuid.UUID, req *UpdateCategoryRequest) (*model.Category, error)
	Delete(id uuid.UUID) error
	GetAll() ([]model.Category, error)
	GetByID(id uuid.UUID) (*model.Category, error)
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) Create(req *model.Category) (*model.Category, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *categoryService) Update(id uuid.UUID, req *UpdateCategoryRequest) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	// Same validation as create
	if err := validateStruct(category); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		return ErrCategoryNotFound
	}
	return s.categoryRepo.Delete(id)
}

func (s *categoryService) GetAll() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *categoryService) GetByID(id uuid.UUID) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}
