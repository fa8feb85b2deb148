package payments

import "errors"

var (
	// ErrOrderNotFound is returned when an intent is requested for an order
	// that does not exist. Maps to 404 at the HTTP boundary.
	ErrOrderNotFound = errors.New("order not found")

	// ErrSignatureInvalid is returned when a webhook payload fails signature
	// verification. Maps to 400; details are logged, never sent to callers.
	ErrSignatureInvalid = errors.New("webhook signature invalid")

	// ErrGatewayUnavailable is returned when the payment processor cannot be
	// reached or rejects the intent call. Maps to 502.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)
