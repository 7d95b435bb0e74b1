package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// MaintenanceStatus is the workflow state of a maintenance request.
type MaintenanceStatus string

const (
	StatusLogged     MaintenanceStatus = "LOGGED"
	StatusAssigned   MaintenanceStatus = "ASSIGNED"
	StatusInProgress MaintenanceStatus = "IN_PROGRESS"
	StatusResolved   MaintenanceStatus = "RESOLVED"
	StatusClosed     MaintenanceStatus = "CLOSED"
)

var statusRank = map[MaintenanceStatus]int{
	StatusLogged:     0,
	StatusAssigned:   1,
	StatusInProgress: 2,
	StatusResolved:   3,
	StatusClosed:     4,
}

// ParseMaintenanceStatus matches a status name case-insensitively.
func ParseMaintenanceStatus(s string) (MaintenanceStatus, error) {
	status := MaintenanceStatus(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := statusRank[status]; !ok {
		return "", &ValidationError{Msg: fmt.Sprintf("unknown maintenance status %q", s)}
	}
	return status, nil
}

// CanTransition reports whether a request may move between two
// statuses. Transitions are forward-only: skipping ahead is allowed,
// re-setting the current status is a no-op, moving backward is not.
func CanTransition(from, to MaintenanceStatus) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank >= fromRank
}

// MaintenanceRequest records an issue reported for a unit by its
// current occupant.
type MaintenanceRequest struct {
	gorm.Model
	UnitID      uint
	Unit        *Unit `gorm:"foreignKey:UnitID"`
	TenantID    uint
	Tenant      *Tenant `gorm:"foreignKey:TenantID"`
	ReportedAt  time.Time
	Description string
	Status      MaintenanceStatus
	Notes       string
}
