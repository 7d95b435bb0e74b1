// Package leasing owns the lease lifecycle and the unit occupancy
// invariant: a unit's occupied flag is written only here, by
// activation and termination.
package leasing

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"leasedesk/internal/models"
	"leasedesk/internal/store"
)

// Service exposes lease operations over the injected store.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CreateLease binds a unit to a tenant for a date range. The rent is
// snapshotted from the unit; the lease starts inactive.
func (s *Service) CreateLease(unitID, tenantID uint, start, end time.Time, cycleDays int) (*models.Lease, error) {
	if end.Before(start) {
		return nil, &models.ValidationError{Msg: "lease end date must not be before start date"}
	}
	if cycleDays < 1 {
		return nil, &models.ValidationError{Msg: "billing cycle must be at least one day"}
	}

	unit, err := store.Unit(s.db, unitID)
	if err != nil {
		return nil, err
	}
	tenant, err := store.Tenant(s.db, tenantID)
	if err != nil {
		return nil, err
	}

	lease := &models.Lease{
		UnitID:           unit.ID,
		TenantID:         tenant.ID,
		StartDate:        start,
		EndDate:          end,
		Rent:             unit.Rent,
		BillingCycleDays: cycleDays,
	}
	if err := s.db.Create(lease).Error; err != nil {
		return nil, fmt.Errorf("failed to create lease: %v", err)
	}
	lease.Unit = unit
	lease.Tenant = tenant

	logrus.Infof("Created lease %d: unit %d -> tenant %d, rent %.2f", lease.ID, unit.ID, tenant.ID, lease.Rent)
	return lease, nil
}

// Activate marks a lease active and its unit occupied. Fails with
// ConflictError when the unit is already occupied, leaving all state
// untouched.
func (s *Service) Activate(leaseID uint) (*models.Lease, error) {
	lease, err := store.Lease(s.db, leaseID)
	if err != nil {
		return nil, err
	}
	if lease.Unit.Occupied {
		return nil, &models.ConflictError{Msg: "unit already occupied"}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Lease{}).Where("id = ?", lease.ID).Update("active", true).Error; err != nil {
			return err
		}
		return tx.Model(&models.Unit{}).Where("id = ?", lease.UnitID).Update("occupied", true).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to activate lease %d: %v", lease.ID, err)
	}
	lease.Active = true
	lease.Unit.Occupied = true

	logrus.Infof("Activated lease %d on unit %d", lease.ID, lease.UnitID)
	return lease, nil
}

// Terminate deactivates a lease and frees its unit. Terminating a
// lease that is not active is a no-op.
func (s *Service) Terminate(leaseID uint) (*models.Lease, error) {
	lease, err := store.Lease(s.db, leaseID)
	if err != nil {
		return nil, err
	}
	if !lease.Active {
		logrus.Debugf("Lease %d already inactive, nothing to terminate", lease.ID)
		return lease, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Lease{}).Where("id = ?", lease.ID).Update("active", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Unit{}).Where("id = ?", lease.UnitID).Update("occupied", false).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to terminate lease %d: %v", lease.ID, err)
	}
	lease.Active = false
	lease.Unit.Occupied = false

	logrus.Infof("Terminated lease %d, unit %d is vacant again", lease.ID, lease.UnitID)
	return lease, nil
}

// ActiveLeases lists every active lease with unit and tenant loaded.
func (s *Service) ActiveLeases() ([]models.Lease, error) {
	var leases []models.Lease
	err := s.db.Preload("Unit").Preload("Tenant").Where("active = ?", true).Order("id").Find(&leases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active leases: %v", err)
	}
	return leases, nil
}

// LeasesForUnit lists every lease ever created for a unit.
func (s *Service) LeasesForUnit(unitID uint) ([]models.Lease, error) {
	if _, err := store.Unit(s.db, unitID); err != nil {
		return nil, err
	}
	var leases []models.Lease
	err := s.db.Preload("Tenant").Where("unit_id = ?", unitID).Order("id").Find(&leases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list leases for unit %d: %v", unitID, err)
	}
	return leases, nil
}
