package ports

import (
	"context"

	"github.com/bilemo/catalog-api/internal/core/domain"
)

// ListProductsFilter is the repository-level query for the catalog. The
// brand term is matched as an escaped, case-insensitive substring; ordering
// is created_at descending with id descending as tie-break.
type ListProductsFilter struct {
	Brand  string
	Offset int
	Limit  int
}

// ProductRepository defines persistence operations for catalog entries.
type ProductRepository interface {
	// List returns one page of products matching filter and the total count
	// over the filtered set before pagination.
	List(ctx context.Context, filter ListProductsFilter) ([]domain.Product, int64, error)
	// FindByID retrieves a product by id; domain.ErrProductNotFound when absent.
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	// Save inserts the product, or refreshes an existing entry with the same
	// (brand, model). created_at is set on first persist only; updated_at is
	// re-stamped on every save.
	Save(ctx context.Context, p *domain.Product) (*domain.Product, error)
	EnsureIndexes(ctx context.Context) error
}
