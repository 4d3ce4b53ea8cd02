package payments

import (
	"fmt"
	"log"
	"math"
	"net/url"
	"strings"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"

	"github.com/Stas75687876/verceldingsdabumsda/cart"
)

// CustomerInfo is collected on the checkout page and travels only inside the
// Stripe session metadata; it is never stored on its own.
type CustomerInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Notes      string `json:"notes"`
}

// CheckoutRequest is the body of POST /api/checkout.
type CheckoutRequest struct {
	Items         []cart.Item  `json:"items"`
	CustomerInfo  CustomerInfo `json:"customerInfo"`
	SuccessURL    string       `json:"successUrl"`
	CancelURL     string       `json:"cancelUrl"`
	PaymentMethod string       `json:"paymentMethod"`
	OrderID       string       `json:"orderId"`
}

// CheckoutSession is the hosted payment page the browser redirects to.
type CheckoutSession struct {
	URL string `json:"url"`
	ID  string `json:"sessionId"`
}

// ValidationError rejects a checkout before any Stripe call is made. The
// HTTP boundary maps it to a 400.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrEmptyCart          = ValidationError("Keine Produkte im Warenkorb")
	ErrMissingRedirectURL = ValidationError("Success- und Cancel-URLs sind erforderlich")
	ErrIncompleteCustomer = ValidationError("Kundendaten sind unvollständig")
	ErrNoValidItems       = ValidationError("Keine gültigen Produkte im Warenkorb")
)

// SessionCreator creates a hosted checkout session at the processor.
type SessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type stripeSessionCreator struct{}

func (stripeSessionCreator) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

// Orchestrator runs the checkout flow: validate the request, build the
// Stripe line items, negotiate payment methods and request the hosted
// session. Both outbound calls sit behind interfaces so the flow is
// testable without the network.
type Orchestrator struct {
	Accounts AccountFetcher
	Sessions SessionCreator
}

func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		Accounts: StripeAccountFetcher{},
		Sessions: stripeSessionCreator{},
	}
}

// CreateSession validates req and requests a hosted payment session.
// Failures are atomic: no session and no order record exist afterwards.
func (o *Orchestrator) CreateSession(req CheckoutRequest) (*CheckoutSession, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if req.SuccessURL == "" || req.CancelURL == "" {
		return nil, ErrMissingRedirectURL
	}
	if req.CustomerInfo.Email == "" || req.CustomerInfo.Name == "" {
		return nil, ErrIncompleteCustomer
	}

	lineItems, skipped := buildLineItems(req.Items)
	for _, reason := range skipped {
		log.Printf("⚠️ Ungültiges Produkt übersprungen: %s", reason)
	}
	if len(lineItems) == 0 {
		return nil, ErrNoValidItems
	}

	// A pre-selected method that turns out to be unavailable never fails the
	// checkout; the full resolved set is offered instead.
	methods := AvailablePaymentMethods(o.Accounts)
	if req.PaymentMethod != "" && contains(methods, req.PaymentMethod) {
		methods = []string{req.PaymentMethod}
	}

	params := &stripe.CheckoutSessionParams{
		Mode:                     stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes:       stripe.StringSlice(methods),
		LineItems:                lineItems,
		SuccessURL:               stripe.String(withSessionPlaceholder(req.SuccessURL)),
		CancelURL:                stripe.String(req.CancelURL),
		BillingAddressCollection: stripe.String("auto"),
		ShippingAddressCollection: &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice([]string{"DE", "AT", "CH"}),
		},
		CustomerEmail: stripe.String(req.CustomerInfo.Email),
		Locale:        stripe.String("de"),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Description:   stripe.String("Bestellung aus dem Online-Shop"),
			CaptureMethod: stripe.String("automatic"),
		},
	}
	params.AddMetadata("customer_name", req.CustomerInfo.Name)
	params.AddMetadata("customer_address", fmt.Sprintf("%s, %s %s, %s",
		req.CustomerInfo.Address, req.CustomerInfo.PostalCode, req.CustomerInfo.City, req.CustomerInfo.Country))
	params.AddMetadata("notes", req.CustomerInfo.Notes)
	if req.OrderID != "" {
		params.AddMetadata("orderId", req.OrderID)
	}

	sess, err := o.Sessions.New(params)
	if err != nil {
		return nil, err
	}
	if sess.URL == "" {
		return nil, fmt.Errorf("stripe hat keine gültige Redirect-URL zurückgegeben")
	}

	return &CheckoutSession{URL: sess.URL, ID: sess.ID}, nil
}

// buildLineItems converts cart items to Stripe line items. Items without a
// name or price are dropped with a reason instead of failing the whole
// checkout; invalid image URLs only cost the item its image.
func buildLineItems(items []cart.Item) ([]*stripe.CheckoutSessionLineItemParams, []string) {
	var lineItems []*stripe.CheckoutSessionLineItemParams
	var skipped []string

	for _, item := range items {
		if item.Name == "" || item.Price <= 0 {
			skipped = append(skipped, fmt.Sprintf("id=%q name=%q price=%.2f", item.ID, item.Name, item.Price))
			continue
		}

		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.Description != "" {
			productData.Description = stripe.String(item.Description)
		}
		if image := validImageURL(item.Image); image != "" {
			productData.Images = stripe.StringSlice([]string{image})
		}

		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(DefaultCurrency),
				UnitAmount:  stripe.Int64(int64(math.Round(item.Price * 100))),
				ProductData: productData,
			},
			Quantity: stripe.Int64(int64(quantity)),
		})
	}

	return lineItems, skipped
}

// validImageURL accepts only absolute https URLs; Stripe rejects anything
// else. An invalid image is dropped, never the item.
func validImageURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "https" || u.Host == "" {
		log.Printf("⚠️ Bild-URL übersprungen (muss absolute https-URL sein): %s", raw)
		return ""
	}
	return raw
}

// withSessionPlaceholder appends the session-id template Stripe substitutes
// on redirect, unless the caller already embedded it.
func withSessionPlaceholder(successURL string) string {
	if strings.Contains(successURL, "{CHECKOUT_SESSION_ID}") {
		return successURL
	}
	separator := "?"
	if strings.Contains(successURL, "?") {
		separator = "&"
	}
	return successURL + separator + "session_id={CHECKOUT_SESSION_ID}"
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
