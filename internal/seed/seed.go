// Package seed loads a small realistic dataset into a fresh store so
// an operator has something to work with immediately.
package seed

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"leasedesk/internal/billing"
	"leasedesk/internal/leasing"
	"leasedesk/internal/models"
	"leasedesk/internal/registry"
)

// Demo populates the demo dataset: two properties, four units, three
// tenants, one activated lease with an overdue partially-paid invoice
// and an open maintenance request. Skips seeding when the store
// already holds properties.
func Demo(db *gorm.DB) error {
	var existing int64
	if err := db.Model(&models.Property{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to check for existing data: %v", err)
	}
	if existing > 0 {
		logrus.Infof("Demo data already present (%d properties); skipping seed", existing)
		return nil
	}

	reg := registry.NewService(db)
	leases := leasing.NewService(db)
	bills := billing.NewService(db)

	maple, err := reg.AddProperty("Maple Court", "12 Maple Street")
	if err != nil {
		return err
	}
	harbor, err := reg.AddProperty("Harbor House", "3 Quay Road")
	if err != nil {
		return err
	}

	unit101, err := reg.AddUnit(maple.ID, "101", 1200)
	if err != nil {
		return err
	}
	if _, err := reg.AddUnit(maple.ID, "102", 1350); err != nil {
		return err
	}
	if _, err := reg.AddUnit(harbor.ID, "2A", 2100); err != nil {
		return err
	}
	if _, err := reg.AddUnit(harbor.ID, "2B", 2100); err != nil {
		return err
	}

	alice, err := reg.AddTenant("Alice Johnson", "alice.johnson@example.com", "555-0101")
	if err != nil {
		return err
	}
	if _, err := reg.AddTenant("Brian Okafor", "b.okafor@example.com", "555-0102"); err != nil {
		return err
	}
	if _, err := reg.AddTenant("Chen Wei", "chen.wei@example.com", "555-0103"); err != nil {
		return err
	}

	start := time.Now().AddDate(0, -2, 0)
	lease, err := leases.CreateLease(unit101.ID, alice.ID, start, start.AddDate(1, 0, 0), 30)
	if err != nil {
		return err
	}
	if _, err := leases.Activate(lease.ID); err != nil {
		return err
	}

	// One overdue invoice with a partial cash payment, so the unpaid
	// list and late-fee assessment have material on first run.
	invoice, err := bills.GenerateInvoice(lease.ID, time.Now().AddDate(0, 0, -10))
	if err != nil {
		return err
	}
	partial, err := models.NewCashPayment(time.Now().AddDate(0, 0, -5), 500)
	if err != nil {
		return err
	}
	if _, err := bills.RecordPayment(invoice.ID, partial); err != nil {
		return err
	}

	if _, err := leases.LogMaintenance(unit101.ID, alice.ID, "Kitchen tap dripping"); err != nil {
		return err
	}

	logrus.Info("Seeded demo dataset: 2 properties, 4 units, 3 tenants, 1 active lease")
	return nil
}
