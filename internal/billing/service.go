package billing

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"leasedesk/internal/models"
	"leasedesk/internal/store"
)

// Service exposes invoice and payment operations over the injected
// store.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// GenerateInvoice creates a new invoice against a lease. The base
// amount is the lease's rent snapshot, not the unit's current rent.
func (s *Service) GenerateInvoice(leaseID uint, dueDate time.Time) (*models.RentInvoice, error) {
	lease, err := store.Lease(s.db, leaseID)
	if err != nil {
		return nil, err
	}

	invoice := &models.RentInvoice{
		LeaseID:    lease.ID,
		DueDate:    dueDate,
		BaseAmount: lease.Rent,
	}
	if err := s.db.Create(invoice).Error; err != nil {
		return nil, fmt.Errorf("failed to create invoice: %v", err)
	}
	invoice.Lease = lease

	logrus.Infof("Generated invoice %d for lease %d: %.2f due %s",
		invoice.ID, lease.ID, invoice.BaseAmount, dueDate.Format("2006-01-02"))
	return invoice, nil
}

// NextDueDate returns the due date one billing cycle after the later
// of the lease start and the given date.
func NextDueDate(lease *models.Lease, after time.Time) time.Time {
	from := lease.StartDate
	if after.After(from) {
		from = after
	}
	return from.AddDate(0, 0, lease.BillingCycleDays)
}

// ApplyLateFee recomputes the invoice's penalty from the given days
// overdue. The penalty is overwritten, never accumulated, so repeated
// calls with the same value are idempotent.
func (s *Service) ApplyLateFee(invoiceID uint, daysLate int) (*models.RentInvoice, error) {
	invoice, err := store.Invoice(s.db, invoiceID)
	if err != nil {
		return nil, err
	}

	fee := LateFee(invoice.BaseAmount, daysLate)
	err = s.db.Model(&models.RentInvoice{}).Where("id = ?", invoice.ID).Update("penalty", fee).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update invoice %d: %v", invoice.ID, err)
	}
	invoice.Penalty = fee

	logrus.Infof("Applied late fee %.2f to invoice %d (%d days late)", fee, invoice.ID, daysLate)
	return invoice, nil
}

// AssessLateFees walks every unpaid invoice past its due date as of
// the given time and applies the late-fee policy to it. Returns the
// number of invoices assessed.
func (s *Service) AssessLateFees(asOf time.Time) (int, error) {
	var invoices []models.RentInvoice
	if err := s.db.Preload("Payments").Order("id").Find(&invoices).Error; err != nil {
		return 0, fmt.Errorf("failed to list invoices: %v", err)
	}

	assessed := 0
	for i := range invoices {
		invoice := &invoices[i]
		if invoice.Paid() {
			continue
		}
		daysLate := DaysLate(invoice.DueDate, asOf)
		if daysLate == 0 {
			continue
		}
		if _, err := s.ApplyLateFee(invoice.ID, daysLate); err != nil {
			return assessed, err
		}
		assessed++
	}
	return assessed, nil
}

// RecordPayment appends a payment to an invoice. Over-payment is not
// rejected; excess simply remains on the ledger.
func (s *Service) RecordPayment(invoiceID uint, payment *models.Payment) (*models.RentInvoice, error) {
	if payment.Amount < 0 {
		return nil, &models.ValidationError{Msg: "payment amount must not be negative"}
	}

	invoice, err := store.Invoice(s.db, invoiceID)
	if err != nil {
		return nil, err
	}

	payment.InvoiceID = invoice.ID
	if err := s.db.Create(payment).Error; err != nil {
		return nil, fmt.Errorf("failed to record payment: %v", err)
	}
	invoice.Payments = append(invoice.Payments, *payment)

	logrus.Infof("Recorded %s payment of %.2f against invoice %d", payment.Method, payment.Amount, invoice.ID)
	if invoice.Paid() {
		logrus.Infof("Invoice %d is fully paid", invoice.ID)
	}
	return invoice, nil
}

// Invoice loads a single invoice with its payments.
func (s *Service) Invoice(invoiceID uint) (*models.RentInvoice, error) {
	return store.Invoice(s.db, invoiceID)
}

// UnpaidInvoices lists every invoice whose payments do not yet cover
// its total, oldest first. Paid status is derived in one place, on
// the model, so the filter runs over loaded rows.
func (s *Service) UnpaidInvoices() ([]models.RentInvoice, error) {
	var invoices []models.RentInvoice
	err := s.db.Preload("Payments").Preload("Lease").Order("id").Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %v", err)
	}

	unpaid := make([]models.RentInvoice, 0, len(invoices))
	for _, invoice := range invoices {
		if !invoice.Paid() {
			unpaid = append(unpaid, invoice)
		}
	}
	return unpaid, nil
}

// InvoicesForLease lists every invoice generated against a lease.
func (s *Service) InvoicesForLease(leaseID uint) ([]models.RentInvoice, error) {
	if _, err := store.Lease(s.db, leaseID); err != nil {
		return nil, err
	}
	var invoices []models.RentInvoice
	err := s.db.Preload("Payments").Where("lease_id = ?", leaseID).Order("id").Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices for lease %d: %v", leaseID, err)
	}
	return invoices, nil
}
