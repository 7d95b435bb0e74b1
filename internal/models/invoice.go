package models

import (
	"time"

	"gorm.io/gorm"
)

// PaidEpsilon absorbs floating-point rounding when summing payment
// amounts against an invoice total.
const PaidEpsilon = 0.0001

// RentInvoice is a bill issued against a lease. BaseAmount is a
// snapshot of the lease rent at generation time. Payments are
// append-only.
type RentInvoice struct {
	gorm.Model
	LeaseID    uint
	Lease      *Lease `gorm:"foreignKey:LeaseID"`
	DueDate    time.Time
	BaseAmount float64   `gorm:"type:decimal(10,2)"`
	Penalty    float64   `gorm:"type:decimal(10,2)"`
	Payments   []Payment `gorm:"foreignKey:InvoiceID"`
}

// TotalAmount is the base amount plus any late-fee penalty.
func (inv *RentInvoice) TotalAmount() float64 {
	return inv.BaseAmount + inv.Penalty
}

// PaidAmount sums the attached payments.
func (inv *RentInvoice) PaidAmount() float64 {
	var sum float64
	for _, p := range inv.Payments {
		sum += p.Amount
	}
	return sum
}

// Paid reports whether cumulative payments cover the total amount
// within PaidEpsilon. Requires Payments to be loaded.
func (inv *RentInvoice) Paid() bool {
	return inv.PaidAmount() >= inv.TotalAmount()-PaidEpsilon
}

// Outstanding is the unpaid remainder, never negative.
func (inv *RentInvoice) Outstanding() float64 {
	rest := inv.TotalAmount() - inv.PaidAmount()
	if rest < 0 {
		return 0
	}
	return rest
}
