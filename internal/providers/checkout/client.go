package checkout

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v82"

	"donation/internal/infra"
)

// ErrMissingSessionAPI indicates that the client was configured without a gateway backend.
var ErrMissingSessionAPI = errors.New("checkout: session api is required")

const (
	// StatusSuccess marks a response carrying a usable checkout session.
	StatusSuccess = "success"
	// StatusError marks a response carrying only the gateway's failure text.
	StatusError = "error"

	msgSessionCreated = "Session created successfully"
)

// DonationRequest is the inbound donation payload. No validation happens
// here: Stripe is the source of truth for minimum amounts and supported
// currencies, and its rejection text is relayed back verbatim.
type DonationRequest struct {
	Amount    int64  `json:"amount"`
	DonorName string `json:"donorName"`
	Email     string `json:"email"`
	Currency  string `json:"currency"`
}

// Response is the uniform reply for session creation. Status is "success"
// exactly when SessionID and SessionURL are populated.
type Response struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	SessionID  string `json:"sessionId,omitempty"`
	SessionURL string `json:"sessionUrl,omitempty"`
}

// SessionStatus reports the payment state of an existing checkout session.
type SessionStatus struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	SessionID     string `json:"sessionId,omitempty"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
	AmountTotal   int64  `json:"amountTotal,omitempty"`
	Currency      string `json:"currency,omitempty"`
}

// SessionAPI is the slice of the Stripe client this service needs. It is
// satisfied by stripe.Client.V1CheckoutSessions and by fakes in tests.
type SessionAPI interface {
	Create(ctx context.Context, params *stripe.CheckoutSessionCreateParams) (*stripe.CheckoutSession, error)
	Retrieve(ctx context.Context, id string, params *stripe.CheckoutSessionRetrieveParams) (*stripe.CheckoutSession, error)
}

// Options configures the checkout client.
type Options struct {
	Sessions   SessionAPI
	SuccessURL string
	CancelURL  string
	Logger     *infra.Logger
}

// Client builds Stripe checkout sessions for donations and maps every
// outcome, including gateway failures, into a plain response value.
type Client struct {
	sessions   SessionAPI
	successURL string
	cancelURL  string
	logger     *infra.Logger
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) (*Client, error) {
	if opts.Sessions == nil {
		return nil, ErrMissingSessionAPI
	}
	successURL := strings.TrimSpace(opts.SuccessURL)
	if successURL == "" {
		successURL = "http://localhost:5500/success.html"
	}
	cancelURL := strings.TrimSpace(opts.CancelURL)
	if cancelURL == "" {
		cancelURL = "http://localhost:5500/cancel.html"
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		sessions:   opts.Sessions,
		successURL: successURL,
		cancelURL:  cancelURL,
		logger:     logger,
	}, nil
}

// CreateSession submits one single-line-item, one-time-payment session to
// Stripe. Gateway failures never escape: they come back as a Response with
// status "error" and the gateway's own message text.
func (c *Client) CreateSession(ctx context.Context, req DonationRequest) Response {
	params := &stripe.CheckoutSessionCreateParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(c.successURL),
		CancelURL:  stripe.String(c.cancelURL),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
				Currency:   stripe.String(req.Currency),
				UnitAmount: stripe.Int64(req.Amount),
				ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
					Name: stripe.String("Donation by " + req.DonorName),
				},
			},
		}},
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		params.CustomerEmail = stripe.String(email)
	}

	session, err := c.sessions.Create(ctx, params)
	if err != nil {
		c.logger.Warn().Err(err).
			Int64("amount", req.Amount).
			Str("currency", req.Currency).
			Msg("checkout session creation rejected")
		return Response{Status: StatusError, Message: gatewayMessage(err)}
	}

	return Response{
		Status:     StatusSuccess,
		Message:    msgSessionCreated,
		SessionID:  session.ID,
		SessionURL: session.URL,
	}
}

// RetrieveStatus looks up an existing session so the success page can confirm
// whether the donation was actually paid. Failures map the same way as in
// CreateSession.
func (c *Client) RetrieveStatus(ctx context.Context, sessionID string) SessionStatus {
	session, err := c.sessions.Retrieve(ctx, sessionID, nil)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("session_id", sessionID).
			Msg("checkout session lookup failed")
		return SessionStatus{Status: StatusError, Message: gatewayMessage(err)}
	}

	return SessionStatus{
		Status:        StatusSuccess,
		Message:       "Session retrieved successfully",
		SessionID:     session.ID,
		PaymentStatus: string(session.PaymentStatus),
		AmountTotal:   session.AmountTotal,
		Currency:      string(session.Currency),
	}
}

// gatewayMessage extracts the human-readable text from a Stripe failure.
func gatewayMessage(err error) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return stripeErr.Msg
	}
	return err.Error()
}
