package models

import "gorm.io/gorm"

// Property represents a building or estate that owns rentable units.
type Property struct {
	gorm.Model
	Name    string
	Address string
	Units   []Unit `gorm:"foreignKey:PropertyID"`
}

// Unit represents a single rentable unit within a property. Occupied
// is written only by lease activation and termination.
type Unit struct {
	gorm.Model
	PropertyID uint
	Property   *Property `gorm:"foreignKey:PropertyID"`
	UnitNumber string
	Rent       float64 `gorm:"type:decimal(10,2)"`
	Occupied   bool
}
