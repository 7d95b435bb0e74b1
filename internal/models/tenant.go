package models

import "gorm.io/gorm"

// Tenant represents a person renting a unit. Tenants are independent
// records; leases and maintenance requests reference them but do not
// own them.
type Tenant struct {
	gorm.Model
	Name  string
	Email string
	Phone string
}
