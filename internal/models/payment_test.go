package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCashPayment(t *testing.T) {
	p, err := NewCashPayment(time.Now(), 500)
	require.NoError(t, err)
	assert.Equal(t, MethodCash, p.Method)
	assert.Equal(t, 500.0, p.Amount)
	assert.Equal(t, "Cash", p.MethodLabel())
}

func TestNewCashPaymentRejectsNegativeAmount(t *testing.T) {
	_, err := NewCashPayment(time.Now(), -1)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestNewCardPayment(t *testing.T) {
	p, err := NewCardPayment(time.Now(), 750, "4242")
	require.NoError(t, err)
	assert.Equal(t, MethodCard, p.Method)
	assert.Equal(t, "4242", p.CardLast4)
	assert.Equal(t, "Card ****4242", p.MethodLabel())
}

func TestNewCardPaymentRejectsBadLast4(t *testing.T) {
	for _, last4 := range []string{"", "123", "12345", "12a4", "abcd"} {
		_, err := NewCardPayment(time.Now(), 100, last4)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr, "last4 %q should be rejected", last4)
	}
}

func TestNewCardPaymentRejectsNegativeAmount(t *testing.T) {
	_, err := NewCardPayment(time.Now(), -0.01, "4242")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestZeroAmountPaymentAllowed(t *testing.T) {
	p, err := NewCashPayment(time.Now(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Amount)
}
