package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/ridloal/product-console/internal/platform/logger"
	"github.com/ridloal/product-console/internal/product/domain"
	"github.com/ridloal/product-console/internal/product/repository"
)

var ErrProductNotFound = errors.New("product not found")

// ValidationError carries every rejected field with its messages.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

type ProductService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	CreateProduct(ctx context.Context, req domain.ProductRequest) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req domain.ProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}

type productServiceImpl struct {
	repo  repository.ProductRepository
	newID func() string
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productServiceImpl{
		repo:  repo,
		newID: uuid.NewString,
	}
}

func (s *productServiceImpl) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *productServiceImpl) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.repo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return product, nil
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, req domain.ProductRequest) (*domain.Product, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:          s.newID(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       *req.Price,
		Quantity:    *req.Quantity,
	}
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		logger.Error("CreateProduct: failed to save product", err)
		return nil, fmt.Errorf("could not save product: %w", err)
	}
	return product, nil
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, productID string, req domain.ProductRequest) (*domain.Product, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:          productID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       *req.Price,
		Quantity:    *req.Quantity,
	}
	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, mapRepoError(err)
	}
	return product, nil
}

func (s *productServiceImpl) DeleteProduct(ctx context.Context, productID string) error {
	return mapRepoError(s.repo.DeleteProduct(ctx, productID))
}

func mapRepoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrProductNotFound) {
		return ErrProductNotFound
	}
	return err
}

func validate(req domain.ProductRequest) error {
	fields := map[string][]string{}
	if strings.TrimSpace(req.Name) == "" {
		fields["Name"] = append(fields["Name"], "Name is required")
	}
	switch {
	case req.Price == nil:
		fields["Price"] = append(fields["Price"], "Price is required")
	case *req.Price < 0:
		fields["Price"] = append(fields["Price"], "Price must not be negative")
	}
	switch {
	case req.Quantity == nil:
		fields["Quantity"] = append(fields["Quantity"], "Quantity is required")
	case *req.Quantity < 0:
		fields["Quantity"] = append(fields["Quantity"], "Quantity must not be negative")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
