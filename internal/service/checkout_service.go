package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/domain"
	"github.com/santhe/storefront/internal/session"
	"github.com/santhe/storefront/internal/upstream"
)

// The order service has no seller attribution yet, so every order carries
// this placeholder farmer id.
const placeholderFarmerID int64 = 1

var (
	// ErrEmptyCart rejects a checkout before any upstream call; the
	// handler sends the user back to the cart view.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCheckoutInProgress rejects a repeat submission while an earlier
	// attempt for the same session is still running.
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

const (
	checkoutSuccessMessage = "Order placed successfully!"
	checkoutFailureMessage = "Failed to place order. Please try again."
)

// CheckoutService turns a priced cart into orders, a payment, and a
// cleared cart. The sequence is best-effort, not transactional: the order
// service only supports single-product orders, so one order is created per
// cart line, and orders already created are not rolled back when a later
// order or the payment fails. A failed attempt must be retried manually
// and can leave duplicate orders behind.
type CheckoutService struct {
	orders   *upstream.OrderClient
	payments *upstream.PaymentClient
	cart     *upstream.CartClient
	logger   *zap.Logger

	mu       sync.Mutex
	inFlight map[string]bool
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(orders *upstream.OrderClient, payments *upstream.PaymentClient, cart *upstream.CartClient, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		orders:   orders,
		payments: payments,
		cart:     cart,
		logger:   logger,
		inFlight: make(map[string]bool),
	}
}

// PlaceOrder runs one checkout attempt for the given session and cart
// view:
//
//  1. one order-creation call per cart line, dispatched concurrently and
//     awaited jointly;
//  2. if any order call failed, the attempt fails with no payment call;
//  3. otherwise a single payment for the recomputed cart total;
//  4. on payment success, one delete per cart line clears the cart
//     (best-effort; delete failures are logged, not surfaced).
//
// Orchestration failures are reported in the result, not as an error;
// the error return covers preconditions only.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sess *session.Session, buyer *domain.UserProfile, view *domain.CartView) (*domain.CheckoutResult, error) {
	if view.Empty() {
		return nil, ErrEmptyCart
	}
	if !s.begin(sess.Token) {
		return nil, ErrCheckoutInProgress
	}
	defer s.end(sess.Token)

	// Fan out one order per cart line.
	orderErrs := make([]error, len(view.Lines))
	var wg sync.WaitGroup
	for i, line := range view.Lines {
		wg.Add(1)
		go func(i int, line domain.CartViewLine) {
			defer wg.Done()
			_, err := s.orders.Create(ctx, sess.BearerToken, domain.OrderRequest{
				FarmerID:    placeholderFarmerID,
				MiddlemanID: buyer.ID,
				ProductID:   line.ProductID,
				Quantity:    line.Quantity,
			})
			orderErrs[i] = err
		}(i, line)
	}
	wg.Wait()

	created := 0
	for i, err := range orderErrs {
		if err != nil {
			s.logger.Error("order creation failed",
				zap.Int64("line_id", view.Lines[i].LineID),
				zap.Int64("product_id", view.Lines[i].ProductID),
				zap.Error(err),
			)
			continue
		}
		created++
	}

	if created < len(view.Lines) {
		// Orders that did succeed are not cancelled; there is no
		// compensation path.
		return &domain.CheckoutResult{
			State:         domain.CheckoutFailed,
			OrdersCreated: created,
			Total:         view.Total,
			Message:       checkoutFailureMessage,
		}, nil
	}

	if _, err := s.payments.Charge(ctx, sess.BearerToken, domain.PaymentRequest{
		UserID: buyer.ID,
		Amount: view.Total,
	}); err != nil {
		s.logger.Error("payment failed",
			zap.Int64("user_id", buyer.ID),
			zap.Float64("amount", view.Total),
			zap.Error(err),
		)
		return &domain.CheckoutResult{
			State:         domain.CheckoutFailed,
			OrdersCreated: created,
			Total:         view.Total,
			Message:       checkoutFailureMessage,
		}, nil
	}

	s.clearCart(ctx, sess, view)

	s.logger.Info("checkout completed",
		zap.Int64("user_id", buyer.ID),
		zap.Int("orders", created),
		zap.Float64("total", view.Total),
	)

	return &domain.CheckoutResult{
		State:         domain.CheckoutSucceeded,
		OrdersCreated: created,
		Total:         view.Total,
		Message:       checkoutSuccessMessage,
	}, nil
}

// clearCart deletes every cart line, concurrently and best-effort. The
// payment already went through; a line that fails to delete is logged and
// left for the user to remove.
func (s *CheckoutService) clearCart(ctx context.Context, sess *session.Session, view *domain.CartView) {
	var wg sync.WaitGroup
	for _, line := range view.Lines {
		wg.Add(1)
		go func(line domain.CartViewLine) {
			defer wg.Done()
			if err := s.cart.DeleteItem(ctx, sess.BearerToken, line.LineID); err != nil {
				s.logger.Warn("failed to clear cart line",
					zap.Int64("line_id", line.LineID),
					zap.Error(err),
				)
			}
		}(line)
	}
	wg.Wait()
}

// begin flips the per-session submission guard. It is a boolean, not a
// queue; a second submission while one runs is rejected outright.
func (s *CheckoutService) begin(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[token] {
		return false
	}
	s.inFlight[token] = true
	return true
}

func (s *CheckoutService) end(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, token)
}
