// Package billing generates rent invoices against leases and applies
// late fees and payments to them.
package billing

import "time"

const (
	// LateFeeDailyRate is the fraction of the base amount charged per
	// day overdue.
	LateFeeDailyRate = 0.01
	// LateFeeCapRatio caps the penalty at this fraction of the base
	// amount.
	LateFeeCapRatio = 0.5
)

// LateFee computes the penalty for an invoice base amount at the
// given number of days overdue. Non-positive daysLate yields no fee.
func LateFee(baseAmount float64, daysLate int) float64 {
	if daysLate <= 0 {
		return 0
	}
	fee := baseAmount * LateFeeDailyRate * float64(daysLate)
	if limit := baseAmount * LateFeeCapRatio; fee > limit {
		return limit
	}
	return fee
}

// DaysLate counts whole days between the due date and asOf. Invoices
// due today or in the future are zero days late.
func DaysLate(dueDate, asOf time.Time) int {
	if !asOf.After(dueDate) {
		return 0
	}
	return int(asOf.Sub(dueDate).Hours() / 24)
}
