package service

import (
	"math"

	"github.com/stripe/stripe-go/v74"
)

// CheckoutProvider opens a hosted payment session.
type CheckoutProvider interface {
	CreateCheckoutSession(userID uint, customerEmail, packageSlug, title string, amountCents int64) (*stripe.CheckoutSession, error)
}

type PaymentService struct {
	checkout CheckoutProvider
	packages PackageStore
}

func NewPaymentService(checkout CheckoutProvider, packages PackageStore) *PaymentService {
	return &PaymentService{
		checkout: checkout,
		packages: packages,
	}
}

type CheckoutSession struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// CreatePackageCheckout opens a Stripe checkout session priced from the
// package record. An unknown slug is a 404, same as the catalog read.
func (s *PaymentService) CreatePackageCheckout(userID uint, customerEmail, slug string) (*CheckoutSession, error) {
	pkg, err := s.packages.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	amountCents := int64(math.Round(pkg.Price * 100))
	session, err := s.checkout.CreateCheckoutSession(userID, customerEmail, pkg.Slug, pkg.Title, amountCents)
	if err != nil {
		return nil, err
	}

	return &CheckoutSession{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}
