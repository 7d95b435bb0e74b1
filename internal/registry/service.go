// Package registry manages the property, unit and tenant rosters.
package registry

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"leasedesk/internal/models"
	"leasedesk/internal/store"
)

// Service exposes roster mutations and queries over the injected
// store.
type Service struct {
	db       *gorm.DB
	validate *validator.Validate
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, validate: validator.New()}
}

// AddProperty registers a new property.
func (s *Service) AddProperty(name, address string) (*models.Property, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &models.ValidationError{Msg: "property name must not be empty"}
	}

	property := &models.Property{Name: name, Address: strings.TrimSpace(address)}
	if err := s.db.Create(property).Error; err != nil {
		return nil, fmt.Errorf("failed to create property: %v", err)
	}

	logrus.Infof("Registered property %d (%s)", property.ID, property.Name)
	return property, nil
}

// AddUnit registers a new unit under an existing property.
func (s *Service) AddUnit(propertyID uint, unitNumber string, rent float64) (*models.Unit, error) {
	unitNumber = strings.TrimSpace(unitNumber)
	if unitNumber == "" {
		return nil, &models.ValidationError{Msg: "unit number must not be empty"}
	}
	if rent < 0 {
		return nil, &models.ValidationError{Msg: "unit rent must not be negative"}
	}
	if _, err := store.Property(s.db, propertyID); err != nil {
		return nil, err
	}

	unit := &models.Unit{PropertyID: propertyID, UnitNumber: unitNumber, Rent: rent}
	if err := s.db.Create(unit).Error; err != nil {
		return nil, fmt.Errorf("failed to create unit: %v", err)
	}

	logrus.Infof("Registered unit %d (%s) under property %d", unit.ID, unit.UnitNumber, propertyID)
	return unit, nil
}

// AddTenant registers a new tenant. The email address must be
// well-formed.
func (s *Service) AddTenant(name, email, phone string) (*models.Tenant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &models.ValidationError{Msg: "tenant name must not be empty"}
	}
	email = strings.TrimSpace(email)
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, &models.ValidationError{Msg: fmt.Sprintf("invalid email address %q", email)}
	}

	tenant := &models.Tenant{Name: name, Email: email, Phone: strings.TrimSpace(phone)}
	if err := s.db.Create(tenant).Error; err != nil {
		return nil, fmt.Errorf("failed to create tenant: %v", err)
	}

	logrus.Infof("Registered tenant %d (%s)", tenant.ID, tenant.Name)
	return tenant, nil
}

// Properties lists every property with its units, oldest first.
func (s *Service) Properties() ([]models.Property, error) {
	var properties []models.Property
	if err := s.db.Preload("Units").Order("id").Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to list properties: %v", err)
	}
	return properties, nil
}

// Tenants lists every tenant, oldest first.
func (s *Service) Tenants() ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := s.db.Order("id").Find(&tenants).Error; err != nil {
		return nil, fmt.Errorf("failed to list tenants: %v", err)
	}
	return tenants, nil
}

// VacantUnits lists every unit whose occupancy flag is clear. The
// flag is maintained by lease activation and termination, so this is
// a plain scan with no lease cross-check.
func (s *Service) VacantUnits() ([]models.Unit, error) {
	var units []models.Unit
	if err := s.db.Preload("Property").Where("occupied = ?", false).Order("id").Find(&units).Error; err != nil {
		return nil, fmt.Errorf("failed to list vacant units: %v", err)
	}
	return units, nil
}
