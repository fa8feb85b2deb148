package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"restaurant-ops-api/config"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"github.com/stripe/stripe-go/v78/webhook"
)

// Recognized webhook event kinds. Anything else is acknowledged and ignored.
const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)

// Intent is a gateway-side payment attempt.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
}

// Event is a verified, parsed webhook notification. Reference is the
// gateway's intent id — the correlation key back to a local Payment row.
type Event struct {
	ID          string
	Type        string
	Reference   string
	OrderID     string
	AmountMinor int64
}

// Gateway is the external payment processor contract consumed by the
// reconciliation service.
type Gateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string, orderID uint) (*Intent, error)
	GetIntent(ctx context.Context, id string) (*Intent, error)
	VerifyEvent(payload []byte, signatureHeader string) (*Event, error)
}

// MinorUnits converts a decimal amount to the gateway's minor currency unit
// (cents). Rounding rule: half away from zero to the nearest cent, so
// 19.995 becomes 2000 and 19.994 becomes 1999.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// StripeGateway implements Gateway against the Stripe API. Credentials come
// from an injected config struct, not package globals.
type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

func NewStripeGateway(cfg config.StripeConfig) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &StripeGateway{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
	}
}

// CreateIntent creates a PaymentIntent carrying the order id as correlation
// metadata so webhook events can be matched back to the order.
func (g *StripeGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string, orderID uint) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	params.AddMetadata("order_id", strconv.FormatUint(uint64(orderID), 10))

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("create intent: %w", err)
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret, Status: string(pi.Status)}, nil
}

// GetIntent fetches an existing PaymentIntent so an unresolved intent can be
// reused instead of creating a duplicate on retry.
func (g *StripeGateway) GetIntent(ctx context.Context, id string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := g.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("get intent: %w", err)
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret, Status: string(pi.Status)}, nil
}

// intentPayload is the slice of the event object we care about.
type intentPayload struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"`
	Metadata map[string]string `json:"metadata"`
}

// VerifyEvent checks the Stripe-Signature header against the shared webhook
// secret and only then parses the payload. Verification failure means the
// payload is never inspected. Events are accepted regardless of the sending
// account's API version: the signature scheme is version-independent, and a
// version mismatch must not look like a forged signature (which would make
// the processor retry the delivery forever).
func (g *StripeGateway) VerifyEvent(payload []byte, signatureHeader string) (*Event, error) {
	stripeEvent, err := webhook.ConstructEventWithOptions(payload, signatureHeader, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}

	var obj intentPayload
	if err := json.Unmarshal(stripeEvent.Data.Raw, &obj); err != nil {
		return nil, fmt.Errorf("decode event object: %w", err)
	}

	return &Event{
		ID:          stripeEvent.ID,
		Type:        string(stripeEvent.Type),
		Reference:   obj.ID,
		OrderID:     obj.Metadata["order_id"],
		AmountMinor: obj.Amount,
	}, nil
}
