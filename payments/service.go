package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"restaurant-ops-api/models"
	"restaurant-ops-api/stores"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// WebhookOutcome describes what a verified webhook delivery did locally.
// Every outcome except a signature failure is acknowledged with 200 so the
// processor stops retrying.
type WebhookOutcome string

const (
	// OutcomeApplied: the payment was completed and the order confirmed.
	OutcomeApplied WebhookOutcome = "applied"
	// OutcomeDuplicate: the payment was already completed; no-op.
	OutcomeDuplicate WebhookOutcome = "duplicate"
	// OutcomeIgnored: unrecognized event type, unknown gateway reference, or
	// missing order. Not errors — the event may belong elsewhere.
	OutcomeIgnored WebhookOutcome = "ignored"
	// OutcomeFailedMarked: a failure event moved the payment to failed.
	OutcomeFailedMarked WebhookOutcome = "failed_marked"
)

// Statuses in which an existing gateway intent can still be paid, so a retry
// of the intent request reuses it instead of minting a duplicate.
var reusableIntentStatuses = map[string]bool{
	"requires_payment_method": true,
	"requires_confirmation":   true,
	"requires_action":         true,
	"processing":              true,
}

// Service reconciles orders and payments against the external gateway. It is
// the only writer of Payment rows, and the only component that touches order
// status on behalf of the gateway. All coordination between concurrent
// webhook deliveries goes through the store's transactions and status CAS.
type Service struct {
	db       *gorm.DB
	orders   *stores.OrderStore
	payments *stores.PaymentStore
	gateway  Gateway
	currency string
	log      *logrus.Logger
}

func NewService(db *gorm.DB, gateway Gateway, currency string, log *logrus.Logger) *Service {
	return &Service{
		db:       db,
		orders:   stores.NewOrderStore(db),
		payments: stores.NewPaymentStore(db),
		gateway:  gateway,
		currency: currency,
		log:      log,
	}
}

// RequestIntent creates (or reuses) a gateway payment intent for an order and
// records the pending Payment row keyed by that order. Retries are idempotent
// at the storage layer; an unresolved intent with a matching amount is reused
// rather than creating a duplicate at the gateway.
func (s *Service) RequestIntent(ctx context.Context, orderID uint) (string, error) {
	order, err := s.orders.Get(orderID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return "", ErrOrderNotFound
		}
		return "", fmt.Errorf("load order %d: %w", orderID, err)
	}

	if secret, ok := s.reusableSecret(ctx, order); ok {
		return secret, nil
	}

	amountMinor := MinorUnits(order.Total)
	intent, err := s.gateway.CreateIntent(ctx, amountMinor, s.currency, order.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{"order_id": order.ID, "error": err}).Error("gateway intent creation failed")
		return "", fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	if _, err := s.payments.UpsertPending(order.ID, intent.ID, order.Total); err != nil {
		return "", fmt.Errorf("persist pending payment for order %d: %w", order.ID, err)
	}

	s.log.WithFields(logrus.Fields{
		"order_id":     order.ID,
		"intent_id":    intent.ID,
		"amount_minor": amountMinor,
	}).Info("payment intent created")

	return intent.ClientSecret, nil
}

// reusableSecret returns the client secret of an existing unresolved intent
// for this order, if one exists and still matches the order total.
func (s *Service) reusableSecret(ctx context.Context, order *models.Order) (string, bool) {
	payment, err := s.payments.FindByOrder(order.ID)
	if err != nil || payment.Status != models.PaymentPending || !payment.Amount.Equal(order.Total) {
		return "", false
	}
	intent, err := s.gateway.GetIntent(ctx, payment.GatewayReference)
	if err != nil || !reusableIntentStatuses[intent.Status] {
		return "", false
	}
	s.log.WithFields(logrus.Fields{"order_id": order.ID, "intent_id": intent.ID}).Info("reusing unresolved payment intent")
	return intent.ClientSecret, true
}

// HandleWebhook verifies and applies a gateway event. A non-nil error is
// returned only for signature verification failures; every other path is a
// soft outcome the HTTP boundary acknowledges with 200 so the processor does
// not retry forever. Replayed deliveries of the same completed event are
// no-ops thanks to the status CAS.
func (s *Service) HandleWebhook(payload []byte, signatureHeader string) (WebhookOutcome, error) {
	event, err := s.gateway.VerifyEvent(payload, signatureHeader)
	if err != nil {
		s.log.WithField("error", err).Warn("webhook rejected: signature verification failed")
		return "", ErrSignatureInvalid
	}

	switch event.Type {
	case EventPaymentSucceeded:
		return s.applyCompleted(event), nil
	case EventPaymentFailed:
		return s.applyFailed(event), nil
	default:
		s.log.WithField("type", event.Type).Debug("ignoring unrecognized webhook event type")
		return OutcomeIgnored, nil
	}
}

func (s *Service) applyCompleted(event *Event) WebhookOutcome {
	payment, ok := s.matchPayment(event)
	if !ok {
		return OutcomeIgnored
	}

	orderID, err := strconv.ParseUint(event.OrderID, 10, 32)
	if err != nil {
		s.log.WithFields(logrus.Fields{"reference": event.Reference, "order_id": event.OrderID}).
			Warn("webhook event carries unusable order metadata; acknowledged without action")
		return OutcomeIgnored
	}
	if _, err := s.orders.Get(uint(orderID)); err != nil {
		s.log.WithField("order_id", orderID).Info("webhook references missing order; acknowledged without action")
		return OutcomeIgnored
	}

	// Payment → completed and Order → confirmed commit or roll back together.
	// The CAS on payment status makes replays and concurrent deliveries of
	// the same event apply exactly once.
	outcome := OutcomeIgnored
	err = s.db.Transaction(func(tx *gorm.DB) error {
		applied, err := s.payments.WithTx(tx).MarkCompleted(payment.ID)
		if err != nil {
			return err
		}
		if !applied {
			outcome = OutcomeDuplicate
			return nil
		}
		if _, err := s.orders.WithTx(tx).UpdateStatus(uint(orderID), models.OrderConfirmed); err != nil {
			return err
		}
		outcome = OutcomeApplied
		return nil
	})
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			// Order vanished between lookup and transition; rollback leaves
			// the payment pending.
			return OutcomeIgnored
		}
		s.log.WithFields(logrus.Fields{"payment_id": payment.ID, "error": err}).
			Error("payment confirmation transaction failed; acknowledged, processor may retry a later delivery")
		return OutcomeIgnored
	}

	if outcome == OutcomeApplied {
		s.log.WithFields(logrus.Fields{
			"order_id":   orderID,
			"payment_id": payment.ID,
			"reference":  event.Reference,
		}).Info("payment completed, order confirmed")
	}
	return outcome
}

func (s *Service) applyFailed(event *Event) WebhookOutcome {
	payment, ok := s.matchPayment(event)
	if !ok {
		return OutcomeIgnored
	}
	applied, err := s.payments.MarkFailed(payment.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{"payment_id": payment.ID, "error": err}).Error("marking payment failed errored")
		return OutcomeIgnored
	}
	if !applied {
		return OutcomeDuplicate
	}
	s.log.WithFields(logrus.Fields{"payment_id": payment.ID, "reference": event.Reference}).
		Warn("gateway reported payment failure")
	return OutcomeFailedMarked
}

func (s *Service) matchPayment(event *Event) (*models.Payment, bool) {
	payment, err := s.payments.FindByGatewayReference(event.Reference)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			s.log.WithField("reference", event.Reference).
				Info("webhook references unknown payment; acknowledged without action")
		} else {
			s.log.WithFields(logrus.Fields{"reference": event.Reference, "error": err}).Error("payment lookup failed")
		}
		return nil, false
	}
	return payment, true
}
