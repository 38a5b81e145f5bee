package expense

import (
	"testing"

	"storseek-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPaymentMethodName(t *testing.T) {
	assert.Equal(t, "نقدي", PaymentMethodName(models.PaymentCash))
	assert.Equal(t, "آجل", PaymentMethodName(models.PaymentCredit))
	assert.Equal(t, "فودافون كاش", PaymentMethodName(models.PaymentVodafone))
	assert.Equal(t, "بنكي", PaymentMethodName(models.PaymentBank))
	assert.Equal(t, "other", PaymentMethodName("other"))
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, validPaymentMethod(models.PaymentCash))
	assert.True(t, validPaymentMethod(models.PaymentVodafone))
	assert.False(t, validPaymentMethod("paypal"))
	assert.False(t, validPaymentMethod(""))
}
