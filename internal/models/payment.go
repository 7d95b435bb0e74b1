package models

import (
	"fmt"
	"regexp"
	"time"

	"gorm.io/gorm"
)

// PaymentMethod is the closed set of supported payment variants.
type PaymentMethod string

const (
	MethodCash PaymentMethod = "CASH"
	MethodCard PaymentMethod = "CARD"
)

// Payment is a single amount applied to an invoice. Once created and
// attached it is never mutated. CardLast4 is display-only and set for
// the card variant.
type Payment struct {
	gorm.Model
	InvoiceID uint
	Date      time.Time
	Amount    float64 `gorm:"type:decimal(10,2)"`
	Method    PaymentMethod
	CardLast4 string
}

var cardLast4Pattern = regexp.MustCompile(`^[0-9]{4}$`)

// NewCashPayment builds a cash payment. Amount must not be negative.
func NewCashPayment(date time.Time, amount float64) (*Payment, error) {
	if amount < 0 {
		return nil, &ValidationError{Msg: "payment amount must not be negative"}
	}
	return &Payment{Date: date, Amount: amount, Method: MethodCash}, nil
}

// NewCardPayment builds a card payment carrying the card's last four
// digits.
func NewCardPayment(date time.Time, amount float64, last4 string) (*Payment, error) {
	if amount < 0 {
		return nil, &ValidationError{Msg: "payment amount must not be negative"}
	}
	if !cardLast4Pattern.MatchString(last4) {
		return nil, &ValidationError{Msg: "card last-4 must be exactly four digits"}
	}
	return &Payment{Date: date, Amount: amount, Method: MethodCard, CardLast4: last4}, nil
}

// MethodLabel renders the method tag for display.
func (p *Payment) MethodLabel() string {
	if p.Method == MethodCard {
		return fmt.Sprintf("Card ****%s", p.CardLast4)
	}
	return "Cash"
}
