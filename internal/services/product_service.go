package services

import (
	"context"
	"errors"
	"log"

	"partsstore/internal/models"
	"partsstore/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// CreateProduct stores a product as given; the catalog does not validate.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	return s.repo.Create(ctx, product)
}

// UpdateProduct applies a partial update. A missing product yields (nil, nil).
func (s *ProductService) UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	product, err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return product, err
}

// DeleteProduct deletes a product by its ID. Deleting a missing product is not an error.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		log.Printf("Delete of unknown product %s ignored", id)
		return nil
	}
	return err
}
