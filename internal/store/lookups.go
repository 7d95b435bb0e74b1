package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"leasedesk/internal/models"
)

func lookupErr(entity string, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.NotFoundError{Entity: entity, ID: id}
	}
	return fmt.Errorf("failed to load %s %d: %v", entity, id, err)
}

// Property loads a property with its units.
func Property(db *gorm.DB, id uint) (*models.Property, error) {
	var p models.Property
	if err := db.Preload("Units").First(&p, id).Error; err != nil {
		return nil, lookupErr("property", id, err)
	}
	return &p, nil
}

// Unit loads a single unit.
func Unit(db *gorm.DB, id uint) (*models.Unit, error) {
	var u models.Unit
	if err := db.First(&u, id).Error; err != nil {
		return nil, lookupErr("unit", id, err)
	}
	return &u, nil
}

// Tenant loads a single tenant.
func Tenant(db *gorm.DB, id uint) (*models.Tenant, error) {
	var t models.Tenant
	if err := db.First(&t, id).Error; err != nil {
		return nil, lookupErr("tenant", id, err)
	}
	return &t, nil
}

// Lease loads a lease with its unit and tenant.
func Lease(db *gorm.DB, id uint) (*models.Lease, error) {
	var l models.Lease
	if err := db.Preload("Unit").Preload("Tenant").First(&l, id).Error; err != nil {
		return nil, lookupErr("lease", id, err)
	}
	return &l, nil
}

// Invoice loads an invoice with its payments and lease.
func Invoice(db *gorm.DB, id uint) (*models.RentInvoice, error) {
	var inv models.RentInvoice
	if err := db.Preload("Payments").Preload("Lease").First(&inv, id).Error; err != nil {
		return nil, lookupErr("invoice", id, err)
	}
	return &inv, nil
}

// Maintenance loads a maintenance request with its unit and tenant.
func Maintenance(db *gorm.DB, id uint) (*models.MaintenanceRequest, error) {
	var req models.MaintenanceRequest
	if err := db.Preload("Unit").Preload("Tenant").First(&req, id).Error; err != nil {
		return nil, lookupErr("maintenance request", id, err)
	}
	return &req, nil
}
