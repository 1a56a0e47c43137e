package domain

// Role represents a marketplace user role
type Role string

const (
	RoleFarmer    Role = "farmer"
	RoleMiddleman Role = "middleman"
	RoleConsumer  Role = "consumer"
	RoleAdmin     Role = "admin"
)

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleFarmer, RoleMiddleman, RoleConsumer, RoleAdmin:
		return true
	default:
		return false
	}
}

// CheckoutState represents the state of a checkout attempt
type CheckoutState string

const (
	CheckoutIdle       CheckoutState = "IDLE"
	CheckoutProcessing CheckoutState = "PROCESSING"
	CheckoutSucceeded  CheckoutState = "SUCCEEDED"
	CheckoutFailed     CheckoutState = "FAILED"
)

// CanTransitionTo checks if a checkout state transition is valid
func (s CheckoutState) CanTransitionTo(next CheckoutState) bool {
	switch s {
	case CheckoutIdle:
		return next == CheckoutProcessing
	case CheckoutProcessing:
		return next == CheckoutSucceeded || next == CheckoutFailed
	case CheckoutSucceeded, CheckoutFailed:
		return false // Terminal states
	default:
		return false
	}
}
