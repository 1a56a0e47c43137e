package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/domain"
	"github.com/santhe/storefront/internal/upstream"
)

type CatalogService struct {
	products *upstream.ProductClient
	logger   *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(products *upstream.ProductClient, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		products: products,
		logger:   logger,
	}
}

// ListProducts fetches the full catalog.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

// BuildPriceIndex maps the requested product ids to their catalog entries.
// The catalog service has no batch-by-id endpoint, so this fetches the full
// list and filters; over-fetching is the accepted trade-off.
func (s *CatalogService) BuildPriceIndex(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	index := make(map[int64]domain.Product, len(ids))
	for _, p := range products {
		if wanted[p.ID] {
			index[p.ID] = p
		}
	}

	return index, nil
}
