package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bilemo/catalog-api/internal/core/domain"
	"github.com/bilemo/catalog-api/internal/core/ports"
)

const defaultProductLimit = 20

// ProductService implements read access to the shared catalog.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// List returns one page of the catalog, optionally filtered by brand
// substring. A page past the last one yields an empty page with correct
// metadata, not an error.
func (s *ProductService) List(ctx context.Context, in ports.ListProductsInput) (*ports.ProductPage, error) {
	page := normalizePage(in.Page)
	limit := clampLimit(in.Limit, defaultProductLimit)

	items, total, err := s.repo.List(ctx, ports.ListProductsFilter{
		Brand:  in.Brand,
		Offset: (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, err
	}

	return &ports.ProductPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Get returns a single product by id.
func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}
