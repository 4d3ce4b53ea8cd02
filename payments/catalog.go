package payments

// DefaultCurrency is the shop's operating currency.
const DefaultCurrency = "eur"

// PaymentMethod maps a Stripe payment-method identifier to the currencies it
// can settle in. The table is fixed at build time; what the merchant account
// has actually enabled comes from the capability lookup at runtime.
type PaymentMethod struct {
	ID                  string
	SupportedCurrencies []string
}

// SupportedPaymentMethods is the full catalog of methods the shop knows how
// to offer, in the order they are presented at checkout.
var SupportedPaymentMethods = []PaymentMethod{
	{ID: "card", SupportedCurrencies: []string{"eur", "usd", "gbp", "pln", "chf"}},
	{ID: "klarna", SupportedCurrencies: []string{"eur", "usd", "gbp", "dkk", "nok", "sek"}},
	{ID: "revolut_pay", SupportedCurrencies: []string{"eur", "usd", "gbp"}},
	{ID: "alipay", SupportedCurrencies: []string{"eur", "usd", "gbp", "cny"}},
	{ID: "bancontact", SupportedCurrencies: []string{"eur"}},
	{ID: "eps", SupportedCurrencies: []string{"eur"}},
	{ID: "link", SupportedCurrencies: []string{"eur", "usd"}},
	{ID: "p24", SupportedCurrencies: []string{"eur", "pln"}},
	{ID: "acss_debit", SupportedCurrencies: []string{"cad", "usd"}},
	{ID: "blik", SupportedCurrencies: []string{"pln"}},
	{ID: "ideal", SupportedCurrencies: []string{"eur"}},
	{ID: "giropay", SupportedCurrencies: []string{"eur"}},
	{ID: "sepa_debit", SupportedCurrencies: []string{"eur"}},
	{ID: "sofort", SupportedCurrencies: []string{"eur"}},
	{ID: "affirm", SupportedCurrencies: []string{"usd"}},
	{ID: "afterpay_clearpay", SupportedCurrencies: []string{"eur", "usd", "gbp", "aud", "nzd", "cad"}},
	{ID: "grabpay", SupportedCurrencies: []string{"sgd", "myr"}},
	{ID: "paypal", SupportedCurrencies: []string{"eur", "usd", "gbp"}},
	{ID: "wechat_pay", SupportedCurrencies: []string{"cny"}},
}

// SupportsCurrency reports whether the method can charge in the currency.
func (m PaymentMethod) SupportsCurrency(currency string) bool {
	for _, c := range m.SupportedCurrencies {
		if c == currency {
			return true
		}
	}
	return false
}
