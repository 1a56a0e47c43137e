package domain

// Product is a catalog entry. Owned by the product catalog service;
// immutable from the storefront's perspective.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	CategoryID  int64   `json:"category_id,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// CartLine is one product+quantity entry in a user's cart, as the cart
// service returns it. Quantity is always >= 1; a quantity below 1 is a
// removal, never a stored state.
type CartLine struct {
	ID        int64 `json:"id"`
	CartID    int64 `json:"cart_id,omitempty"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Cart is the raw cart service payload. The cart service does not price
// its lines, so the storefront never trusts totals coming from it.
type Cart struct {
	ID     int64      `json:"id"`
	UserID int64      `json:"user_id,omitempty"`
	Items  []CartLine `json:"items"`
}

// CartViewLine is a cart line joined against the catalog.
type CartViewLine struct {
	LineID      int64   `json:"id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"total_price"`
}

// CartView is the priced cart shown to the user. It is derived on every
// fetch from current cart lines and catalog prices and never cached.
type CartView struct {
	Lines []CartViewLine `json:"items"`
	Total float64        `json:"total"`
}

// Empty reports whether the cart has no lines.
func (v *CartView) Empty() bool {
	return len(v.Lines) == 0
}

// UserProfile is the user service's view of the current user.
type UserProfile struct {
	ID                 int64  `json:"id"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	Role               Role   `json:"role"`
	FirstName          string `json:"first_name,omitempty"`
	LastName           string `json:"last_name,omitempty"`
	Address            string `json:"address,omitempty"`
	PhoneNumber        string `json:"phone_number,omitempty"`
	DateOfBirth        string `json:"date_of_birth,omitempty"`
	PaymentMethodToken string `json:"payment_method_token,omitempty"`
}

// OrderRequest is the order service's creation payload. The order service
// only supports single-product orders, so checkout submits one of these
// per cart line.
type OrderRequest struct {
	FarmerID    int64 `json:"farmer_id"`
	MiddlemanID int64 `json:"middleman_id"`
	ProductID   int64 `json:"product_id"`
	Quantity    int   `json:"quantity"`
}

// Order is an order as returned by the order service.
type Order struct {
	OrderID     int64  `json:"order_id"`
	FarmerID    int64  `json:"farmer_id"`
	MiddlemanID int64  `json:"middleman_id"`
	ProductID   int64  `json:"product_id"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
}

// PaymentRequest is the payment service's charge payload.
type PaymentRequest struct {
	UserID int64   `json:"user_id"`
	Amount float64 `json:"amount"`
}

// Payment is a processed payment as returned by the payment service.
type Payment struct {
	ID     int64   `json:"id"`
	UserID int64   `json:"user_id"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// CheckoutResult summarizes one checkout attempt. The user-facing message
// deliberately does not distinguish which step failed.
type CheckoutResult struct {
	State         CheckoutState `json:"state"`
	OrdersCreated int           `json:"orders_created"`
	Total         float64       `json:"total"`
	Message       string        `json:"message"`
}
