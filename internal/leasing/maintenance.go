package leasing

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"leasedesk/internal/models"
	"leasedesk/internal/store"
)

// LogMaintenance records an issue for a unit. The reporting tenant
// must hold the active lease on that unit; otherwise nothing is
// created.
func (s *Service) LogMaintenance(unitID, tenantID uint, description string) (*models.MaintenanceRequest, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, &models.ValidationError{Msg: "maintenance description must not be empty"}
	}

	unit, err := store.Unit(s.db, unitID)
	if err != nil {
		return nil, err
	}
	tenant, err := store.Tenant(s.db, tenantID)
	if err != nil {
		return nil, err
	}

	var occupying int64
	err = s.db.Model(&models.Lease{}).
		Where("unit_id = ? AND tenant_id = ? AND active = ?", unit.ID, tenant.ID, true).
		Count(&occupying).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check occupancy for unit %d: %v", unit.ID, err)
	}
	if !unit.Occupied || occupying == 0 {
		return nil, &models.ValidationError{Msg: "tenant is not the occupant of this unit"}
	}

	request := &models.MaintenanceRequest{
		UnitID:      unit.ID,
		TenantID:    tenant.ID,
		ReportedAt:  time.Now(),
		Description: description,
		Status:      models.StatusLogged,
	}
	if err := s.db.Create(request).Error; err != nil {
		return nil, fmt.Errorf("failed to create maintenance request: %v", err)
	}
	request.Unit = unit
	request.Tenant = tenant

	logrus.Infof("Logged maintenance request %d for unit %d (%s)", request.ID, unit.ID, description)
	return request, nil
}

// SetMaintenanceStatus moves a request to a new status. Transitions
// are forward-only; re-setting the current status is a no-op.
func (s *Service) SetMaintenanceStatus(requestID uint, status models.MaintenanceStatus) (*models.MaintenanceRequest, error) {
	request, err := store.Maintenance(s.db, requestID)
	if err != nil {
		return nil, err
	}
	if status == request.Status {
		logrus.Debugf("Maintenance request %d already in status %s", request.ID, status)
		return request, nil
	}
	if !models.CanTransition(request.Status, status) {
		return nil, &models.ValidationError{
			Msg: fmt.Sprintf("cannot move maintenance request from %s back to %s", request.Status, status),
		}
	}

	err = s.db.Model(&models.MaintenanceRequest{}).Where("id = ?", request.ID).Update("status", status).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update maintenance request %d: %v", request.ID, err)
	}
	request.Status = status

	logrus.Infof("Maintenance request %d moved to %s", request.ID, status)
	return request, nil
}

// AppendMaintenanceNote adds a line to a request's free-text notes.
func (s *Service) AppendMaintenanceNote(requestID uint, note string) (*models.MaintenanceRequest, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil, &models.ValidationError{Msg: "maintenance note must not be empty"}
	}

	request, err := store.Maintenance(s.db, requestID)
	if err != nil {
		return nil, err
	}

	notes := request.Notes
	if notes == "" {
		notes = note
	} else {
		notes = notes + "\n" + note
	}
	err = s.db.Model(&models.MaintenanceRequest{}).Where("id = ?", request.ID).Update("notes", notes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update maintenance request %d: %v", request.ID, err)
	}
	request.Notes = notes

	return request, nil
}

// MaintenanceRequests lists every request with unit and tenant
// loaded, oldest first.
func (s *Service) MaintenanceRequests() ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	err := s.db.Preload("Unit").Preload("Tenant").Order("id").Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance requests: %v", err)
	}
	return requests, nil
}
