package service

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/domain"
	"github.com/santhe/storefront/internal/session"
	"github.com/santhe/storefront/internal/upstream"
	"github.com/santhe/storefront/pkg/httperr"
)

// unknownProductName labels cart lines whose product is missing from the
// catalog; such lines price at zero rather than failing the whole cart.
const unknownProductName = "Unknown Item"

// CartService produces priced cart views from remote state. Totals are
// always recomputed from current cart lines and catalog prices; the cart
// service's own totals are never trusted because it does not price lines.
type CartService struct {
	cart    *upstream.CartClient
	catalog *CatalogService
	logger  *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(cart *upstream.CartClient, catalog *CatalogService, logger *zap.Logger) *CartService {
	return &CartService{
		cart:    cart,
		catalog: catalog,
		logger:  logger,
	}
}

// FetchCart fetches the user's cart lines and joins them against the
// catalog. A 404 from the cart service means no cart exists yet, which is
// indistinguishable from an empty cart as far as the user is concerned,
// so it yields an empty view rather than an error.
func (s *CartService) FetchCart(ctx context.Context, sess *session.Session) (*domain.CartView, error) {
	cart, err := s.cart.Get(ctx, sess.BearerToken)
	if err != nil {
		var se *httperr.ServiceError
		if errors.As(err, &se) && se.Status == http.StatusNotFound {
			return &domain.CartView{Lines: []domain.CartViewLine{}}, nil
		}
		return nil, err
	}

	if len(cart.Items) == 0 {
		return &domain.CartView{Lines: []domain.CartViewLine{}}, nil
	}

	index, err := s.catalog.BuildPriceIndex(ctx, distinctProductIDs(cart.Items))
	if err != nil {
		return nil, err
	}

	view := &domain.CartView{Lines: make([]domain.CartViewLine, 0, len(cart.Items))}
	for _, item := range cart.Items {
		line := domain.CartViewLine{
			LineID:      item.ID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			ProductName: unknownProductName,
		}
		if p, ok := index[item.ProductID]; ok {
			line.ProductName = p.Name
			line.UnitPrice = p.Price
			line.LineTotal = p.Price * float64(item.Quantity)
		}
		view.Lines = append(view.Lines, line)
		view.Total += line.LineTotal
	}

	// Stable order so refetches don't visually reshuffle the cart.
	sort.Slice(view.Lines, func(i, j int) bool {
		return view.Lines[i].LineID < view.Lines[j].LineID
	})

	return view, nil
}

// UpdateQuantity sets a line's quantity and returns the refetched view.
// A quantity below 1 is a removal. There is no optimistic local mutation
// and no request sequencing: overlapping updates to the same line resolve
// last-write-wins.
func (s *CartService) UpdateQuantity(ctx context.Context, sess *session.Session, lineID int64, quantity int) (*domain.CartView, error) {
	if quantity < 1 {
		return s.RemoveLine(ctx, sess, lineID)
	}

	if err := s.cart.UpdateItem(ctx, sess.BearerToken, lineID, quantity); err != nil {
		return nil, err
	}

	return s.FetchCart(ctx, sess)
}

// RemoveLine deletes a line and returns the refetched view.
func (s *CartService) RemoveLine(ctx context.Context, sess *session.Session, lineID int64) (*domain.CartView, error) {
	if err := s.cart.DeleteItem(ctx, sess.BearerToken, lineID); err != nil {
		return nil, err
	}

	return s.FetchCart(ctx, sess)
}

func distinctProductIDs(items []domain.CartLine) []int64 {
	seen := make(map[int64]bool, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}
	return ids
}
