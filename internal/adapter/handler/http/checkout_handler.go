package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/stripe/stripe-go/v79"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	logger    *zap.Logger
	clientURL string
}

func NewCheckoutHandler(logger *zap.Logger, clientURL string) *CheckoutHandler {
	return &CheckoutHandler{
		logger:    logger,
		clientURL: clientURL,
	}
}

type createCheckoutRequest struct {
	UserID  string `json:"userId" validate:"required"`
	PriceID string `json:"priceId" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
}

type createCheckoutResponse struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	CheckoutURL string `json:"checkout_url"`
}

// CreateCheckout starts a Stripe checkout session for a subscription.
// POST /api/checkout
func (h *CheckoutHandler) CreateCheckout(c echo.Context) error {
	var req createCheckoutRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "userId, priceId and email are required",
		})
	}

	h.logger.Info("Creating checkout session...",
		zap.String("user_id", req.UserID),
		zap.String("price_id", req.PriceID),
		zap.String("email", req.Email),
	)

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(req.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		Mode:              stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL:        stripe.String(h.clientURL + "/success.html"),
		CancelURL:         stripe.String(h.clientURL + "/cancel.html"),
		CustomerEmail:     stripe.String(req.Email),
		ClientReferenceID: stripe.String(req.UserID),
	}
	params.AddMetadata("price_id", req.PriceID)

	s, err := checkoutsession.New(params)
	if err != nil {
		h.logger.Error("Error creating checkout session", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, createCheckoutResponse{
		ID:          s.ID,
		Status:      "pending",
		CheckoutURL: s.URL,
	})
}
