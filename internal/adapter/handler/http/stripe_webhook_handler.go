package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
	"go.uber.org/zap"

	"github.com/Apurva130401/syncflo-backend/internal/domain/model"
	"github.com/Apurva130401/syncflo-backend/internal/domain/repository"
)

type StripeWebhookHandler struct {
	logger           *zap.Logger
	webhookSecret    string
	subscriptionRepo repository.SubscriptionRepository
	billingRepo      repository.BillingRepository
	planRepo         repository.PlanRepository
	userRepo         repository.UserRepository
}

func NewStripeWebhookHandler(
	logger *zap.Logger,
	webhookSecret string,
	subscriptionRepo repository.SubscriptionRepository,
	billingRepo repository.BillingRepository,
	planRepo repository.PlanRepository,
	userRepo repository.UserRepository,
) *StripeWebhookHandler {
	return &StripeWebhookHandler{
		logger:           logger,
		webhookSecret:    webhookSecret,
		subscriptionRepo: subscriptionRepo,
		billingRepo:      billingRepo,
		planRepo:         planRepo,
		userRepo:         userRepo,
	}
}

// HandleWebhook processes signed Stripe billing events.
// POST /api/webhooks/stripe
func (h *StripeWebhookHandler) HandleWebhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		h.logger.Error("Error reading request body", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Error reading request body"})
	}

	sig := c.Request().Header.Get("Stripe-Signature")

	event, err := webhook.ConstructEventWithOptions(
		body,
		sig,
		h.webhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		},
	)
	if err != nil {
		h.logger.Error("Webhook signature verification failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Webhook signature verification failed",
		})
	}

	h.logger.Info("Stripe event received",
		zap.String("type", string(event.Type)),
		zap.String("id", event.ID),
		zap.Time("created", time.Unix(event.Created, 0)),
	)

	ctx := c.Request().Context()

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			h.logger.Error("Error parsing checkout session", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Error parsing webhook"})
		}
		if session.Mode == stripe.CheckoutSessionModeSubscription {
			if err := h.activateSubscription(ctx, &session); err != nil {
				h.logger.Error("Failed to activate subscription",
					zap.String("session_id", session.ID),
					zap.Error(err))
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to process event"})
			}
		}

	case stripe.EventTypeCustomerSubscriptionCreated,
		stripe.EventTypeCustomerSubscriptionUpdated,
		stripe.EventTypeCustomerSubscriptionDeleted:
		var rawData map[string]interface{}
		if err := json.Unmarshal(event.Data.Raw, &rawData); err != nil {
			h.logger.Error("Error parsing subscription data", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Error parsing webhook"})
		}
		if err := h.syncSubscription(ctx, rawData, event.Type == stripe.EventTypeCustomerSubscriptionDeleted); err != nil {
			h.logger.Error("Failed to sync subscription", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to process event"})
		}

	case stripe.EventTypeInvoicePaymentSucceeded:
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			h.logger.Error("Error parsing invoice", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Error parsing webhook"})
		}
		if err := h.recordInvoice(ctx, &invoice, model.BillingStatusPaid); err != nil {
			h.logger.Error("Failed to record paid invoice", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to process event"})
		}

	case stripe.EventTypeInvoicePaymentFailed:
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			h.logger.Error("Error parsing invoice", zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Error parsing webhook"})
		}
		h.logger.Warn("Invoice payment failed",
			zap.String("invoice_id", invoice.ID),
			zap.Int64("amount_due", invoice.AmountDue))
		if err := h.recordInvoice(ctx, &invoice, model.BillingStatusFailed); err != nil {
			h.logger.Error("Failed to record failed invoice", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to process event"})
		}

	default:
		h.logger.Debug("Unhandled event type", zap.String("type", string(event.Type)))
	}

	return c.JSON(http.StatusOK, echo.Map{"received": true})
}

// activateSubscription creates or reactivates the local subscription row
// for a completed checkout session.
func (h *StripeWebhookHandler) activateSubscription(ctx context.Context, session *stripe.CheckoutSession) error {
	userID := session.ClientReferenceID
	if userID == "" && session.CustomerEmail != "" {
		user, err := h.userRepo.GetByEmail(ctx, session.CustomerEmail)
		if err != nil {
			h.logger.Warn("Checkout session has no resolvable user",
				zap.String("session_id", session.ID),
				zap.String("email", session.CustomerEmail))
			return nil
		}
		userID = user.ID
	}
	if userID == "" {
		h.logger.Warn("Checkout session carried no user reference",
			zap.String("session_id", session.ID))
		return nil
	}

	sub := &model.Subscription{
		UserID:             userID,
		Status:             model.SubscriptionStatusActive,
		CurrentPeriodStart: time.Now(),
	}
	if session.Customer != nil {
		sub.StripeCustomerID = session.Customer.ID
	}
	if session.Subscription != nil {
		sub.StripeSubscriptionID = &session.Subscription.ID
	}

	if priceID := session.Metadata["price_id"]; priceID != "" {
		plan, err := h.planRepo.GetByStripePriceID(ctx, priceID)
		if err != nil {
			return err
		}
		if plan != nil {
			sub.PlanID = &plan.ID
		}
	}

	if sub.StripeSubscriptionID != nil {
		existing, err := h.subscriptionRepo.GetByStripeSubscriptionID(ctx, *sub.StripeSubscriptionID)
		if err != nil {
			return err
		}
		if existing != nil {
			existing.Status = model.SubscriptionStatusActive
			existing.PlanID = sub.PlanID
			existing.StripeCustomerID = sub.StripeCustomerID
			return h.subscriptionRepo.Update(ctx, existing)
		}
	}

	return h.subscriptionRepo.Save(ctx, sub)
}

// syncSubscription mirrors a Stripe-side status change onto the local row.
func (h *StripeWebhookHandler) syncSubscription(ctx context.Context, rawData map[string]interface{}, deleted bool) error {
	subscriptionID, _ := rawData["id"].(string)
	status, _ := rawData["status"].(string)

	if subscriptionID == "" {
		return nil
	}

	existing, err := h.subscriptionRepo.GetByStripeSubscriptionID(ctx, subscriptionID)
	if err != nil {
		return err
	}
	if existing == nil {
		h.logger.Warn("Stripe subscription has no local row",
			zap.String("stripe_subscription_id", subscriptionID))
		return nil
	}

	if deleted {
		now := time.Now()
		existing.Status = model.SubscriptionStatusCanceled
		existing.CanceledAt = &now
	} else {
		switch status {
		case "active", "trialing":
			existing.Status = model.SubscriptionStatusActive
		case "past_due", "unpaid":
			existing.Status = model.SubscriptionStatusPastDue
		case "canceled":
			existing.Status = model.SubscriptionStatusCanceled
		default:
			existing.Status = model.SubscriptionStatusInactive
		}
	}

	if cpe, ok := rawData["current_period_end"].(float64); ok && cpe > 0 {
		existing.CurrentPeriodEnd = time.Unix(int64(cpe), 0)
	}
	if cps, ok := rawData["current_period_start"].(float64); ok && cps > 0 {
		existing.CurrentPeriodStart = time.Unix(int64(cps), 0)
	}

	return h.subscriptionRepo.Update(ctx, existing)
}

// recordInvoice appends a billing-history row for an invoice event. The
// user is resolved through the local subscription row; invoices for
// subscriptions this system never saw are logged and skipped.
func (h *StripeWebhookHandler) recordInvoice(ctx context.Context, invoice *stripe.Invoice, status string) error {
	if invoice.Subscription == nil {
		h.logger.Debug("Invoice without subscription, skipping",
			zap.String("invoice_id", invoice.ID))
		return nil
	}

	sub, err := h.subscriptionRepo.GetByStripeSubscriptionID(ctx, invoice.Subscription.ID)
	if err != nil {
		return err
	}
	if sub == nil {
		h.logger.Warn("Invoice for unknown subscription, skipping",
			zap.String("invoice_id", invoice.ID),
			zap.String("stripe_subscription_id", invoice.Subscription.ID))
		return nil
	}

	amount := invoice.AmountPaid
	if status == model.BillingStatusFailed {
		amount = invoice.AmountDue
	}

	record := &model.BillingRecord{
		UserID:      sub.UserID,
		InvoiceID:   invoice.ID,
		Amount:      decimal.NewFromInt(amount).Div(decimal.NewFromInt(100)),
		Currency:    string(invoice.Currency),
		Status:      status,
		Description: invoice.Description,
		InvoiceDate: time.Unix(invoice.Created, 0),
	}

	return h.billingRepo.Create(ctx, record)
}
