package stripeControllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stas75687876/verceldingsdabumsda/payments"
)

type fakeAccounts struct {
	info *payments.AccountInfo
	err  error
}

func (f fakeAccounts) Fetch() (*payments.AccountInfo, error) {
	return f.info, f.err
}

func getPaymentMethods(t *testing.T, fetcher payments.AccountFetcher) (int, map[string]interface{}) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/stripe/available-payment-methods", AvailablePaymentMethods(fetcher))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stripe/available-payment-methods", nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestAvailablePaymentMethods_Success(t *testing.T) {
	fetcher := fakeAccounts{info: &payments.AccountInfo{
		Country:      "DE",
		BusinessName: "CT Studio",
		Capabilities: map[string]string{"klarna_payments": "active"},
	}}

	code, body := getPaymentMethods(t, fetcher)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []interface{}{"card", "klarna"}, body["availablePaymentMethods"])
	assert.Equal(t, "eur", body["accountCurrency"])
	assert.Equal(t, "DE", body["accountCountry"])
	assert.Equal(t, "CT Studio", body["accountName"])
}

func TestAvailablePaymentMethods_FallbackOnUpstreamError(t *testing.T) {
	fetcher := fakeAccounts{err: errors.New("stripe unreachable")}

	code, body := getPaymentMethods(t, fetcher)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []interface{}{"card"}, body["availablePaymentMethods"])
	assert.Equal(t, "eur", body["accountCurrency"])
}

func TestCheck_WithoutKey(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/stripe/check", Check(fakeAccounts{err: errors.New("must not be called")}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stripe/check", nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["stripeKeyConfigured"])
	assert.Equal(t, false, body["accountReachable"])
}

func TestCheck_WithKey(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_123")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/stripe/check", Check(fakeAccounts{info: &payments.AccountInfo{BusinessName: "CT Studio", Country: "DE"}}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stripe/check", nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["stripeKeyConfigured"])
	assert.Equal(t, true, body["webhookSecretConfigured"])
	assert.Equal(t, true, body["accountReachable"])
	assert.Equal(t, "CT Studio", body["accountName"])
}
