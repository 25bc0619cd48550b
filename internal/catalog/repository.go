package catalog

import (
	"context"
	"errors"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateName   = errors.New("product name already exists")
)

// ProductRepository defines the interface for product data operations
// Consumers define this interface, not the MongoDB implementation
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	GetProducts(ctx context.Context, ids []string) ([]*Product, error)
	InsertProduct(ctx context.Context, p *Product) error
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id string) error
}
