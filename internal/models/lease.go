package models

import (
	"time"

	"gorm.io/gorm"
)

// Lease binds one unit to one tenant for a date range. Rent is a
// snapshot copied from the unit at creation; later changes to the
// unit's rent do not affect existing leases.
type Lease struct {
	gorm.Model
	UnitID           uint
	Unit             *Unit `gorm:"foreignKey:UnitID"`
	TenantID         uint
	Tenant           *Tenant `gorm:"foreignKey:TenantID"`
	StartDate        time.Time
	EndDate          time.Time
	Rent             float64 `gorm:"type:decimal(10,2)"`
	BillingCycleDays int
	Active           bool
}
