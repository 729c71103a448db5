package ports

import (
	"context"

	"github.com/bilemo/catalog-api/internal/core/domain"
)

// ListProductsInput carries the query parameters of GET /api/products.
type ListProductsInput struct {
	Brand string // optional: substring match on brand
	Page  int    // 1-based, floored to 1
	Limit int    // 0 = not requested (defaults to 20); explicit values clamped to [1,100]
}

// ProductPage is one page of catalog results plus pagination metadata.
type ProductPage struct {
	Items      []domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductService defines read operations over the shared catalog.
type ProductService interface {
	List(ctx context.Context, in ListProductsInput) (*ProductPage, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
}
