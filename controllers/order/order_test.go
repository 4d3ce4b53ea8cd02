package orderControllers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Stas75687876/verceldingsdabumsda/models"
)

func TestMapOrderStatus(t *testing.T) {
	cases := []struct {
		input string
		want  models.OrderStatus
	}{
		{"pending", models.OrderStatusPending},
		{"PENDING", models.OrderStatusPending},
		{"in_progress", models.OrderStatusInProgress},
		{"In_Progress", models.OrderStatusInProgress},
		{"completed", models.OrderStatusCompleted},
		{"cancelled", models.OrderStatusCancelled},
	}
	for _, tc := range cases {
		got, err := mapOrderStatus(tc.input)
		assert.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}
}

func TestMapOrderStatus_Invalid(t *testing.T) {
	for _, input := range []string{"", "shipped", "paid", "done"} {
		_, err := mapOrderStatus(input)
		assert.Error(t, err, input)
	}
}

func TestMapPaymentStatus(t *testing.T) {
	cases := []struct {
		input string
		want  models.PaymentStatus
	}{
		{"pending", models.PaymentStatusPending},
		{"paid", models.PaymentStatusPaid},
		{"PAID", models.PaymentStatusPaid},
		{"failed", models.PaymentStatusFailed},
	}
	for _, tc := range cases {
		got, err := mapPaymentStatus(tc.input)
		assert.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, got, tc.input)
	}

	_, err := mapPaymentStatus("refunded")
	assert.Error(t, err)
}

func TestGenerateOrderID(t *testing.T) {
	id := generateOrderID()

	parts := strings.SplitN(id, "-", 2)
	assert.Len(t, parts, 2)
	assert.Len(t, parts[0], 14, "timestamp prefix")
	assert.NotEmpty(t, parts[1])

	assert.NotEqual(t, id, generateOrderID())
}
