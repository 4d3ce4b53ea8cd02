package payments

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/stripe/stripe-go/v80/account"
)

// AccountInfo is the slice of the merchant account the resolver needs:
// capabilities keyed "<method>_payments" with "active" marking an enabled
// payment rail, plus display data for the settings screen.
type AccountInfo struct {
	Country      string
	BusinessName string
	Capabilities map[string]string
}

// AccountFetcher retrieves the merchant account configuration from Stripe.
type AccountFetcher interface {
	Fetch() (*AccountInfo, error)
}

// StripeAccountFetcher calls the live Stripe account API with the key
// configured on the stripe package.
type StripeAccountFetcher struct{}

func (StripeAccountFetcher) Fetch() (*AccountInfo, error) {
	acct, err := account.Get()
	if err != nil {
		return nil, fmt.Errorf("retrieve stripe account: %w", err)
	}

	caps := map[string]string{}
	if acct.Capabilities != nil {
		// The SDK exposes capabilities as a struct; the JSON round-trip
		// recovers the "<method>_payments" key scheme the resolver works on.
		raw, err := json.Marshal(acct.Capabilities)
		if err != nil {
			return nil, fmt.Errorf("encode capabilities: %w", err)
		}
		if err := json.Unmarshal(raw, &caps); err != nil {
			return nil, fmt.Errorf("decode capabilities: %w", err)
		}
	}

	name := "Stripe Account"
	if acct.BusinessProfile != nil && acct.BusinessProfile.Name != "" {
		name = acct.BusinessProfile.Name
	}

	return &AccountInfo{
		Country:      acct.Country,
		BusinessName: name,
		Capabilities: caps,
	}, nil
}

// ResolveMethods filters the static catalog against the account capabilities
// and the operating currency. A method is offered iff it supports the
// currency and is either "card" (always available) or has an active
// capability. Catalog order is preserved.
func ResolveMethods(capabilities map[string]string, currency string) []string {
	var available []string
	for _, method := range SupportedPaymentMethods {
		if !method.SupportsCurrency(currency) {
			continue
		}
		if method.ID != "card" && capabilities[method.ID+"_payments"] != "active" {
			continue
		}
		available = append(available, method.ID)
	}
	return available
}

// AvailablePaymentMethods resolves the offerable methods for the shop
// currency. Card payments are never gated on the account lookup succeeding:
// any upstream failure falls back to card only.
func AvailablePaymentMethods(fetcher AccountFetcher) []string {
	info, err := fetcher.Fetch()
	if err != nil {
		log.Printf("⚠️ Zahlungsmethoden-Abruf fehlgeschlagen, nur Kartenzahlung verfügbar: %v", err)
		return []string{"card"}
	}
	return ResolveMethods(info.Capabilities, DefaultCurrency)
}
