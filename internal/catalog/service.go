package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidName        = errors.New("product name is required")
	ErrInvalidImage       = errors.New("product image URL is required")
	ErrInvalidPrice       = errors.New("price cannot be negative")
	ErrInvalidDescription = errors.New("description should be at least 10 characters long")
	ErrInvalidCategory    = errors.New("invalid product category")
)

type Service struct {
	repo ProductRepository
}

func NewService(repo ProductRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*Product{}
	}
	return products, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

// GetMany resolves a set of product IDs for the read-side join.
// Missing IDs are silently absent from the result.
func (s *Service) GetMany(ctx context.Context, ids []string) ([]*Product, error) {
	return s.repo.GetProducts(ctx, ids)
}

func (s *Service) Create(ctx context.Context, p *Product) (*Product, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	p.ID = primitive.NewObjectID().Hex()
	p.Slug = slug.Make(p.Name)
	if p.Reviews == nil {
		p.Reviews = []Review{}
	}

	if err := s.repo.InsertProduct(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, p *Product) (*Product, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	p.Slug = slug.Make(p.Name)
	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	return s.repo.GetProduct(ctx, p.ID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteProduct(ctx, id)
}

func validate(p *Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidName
	}
	if strings.TrimSpace(p.Image) == "" {
		return ErrInvalidImage
	}
	if p.Price < 0 {
		return ErrInvalidPrice
	}
	if len(strings.TrimSpace(p.Description)) < 10 {
		return ErrInvalidDescription
	}
	if !ValidCategory(p.Category) {
		return ErrInvalidCategory
	}
	return nil
}
