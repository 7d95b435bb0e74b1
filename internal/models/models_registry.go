package models

// ModelTypeRegistry lists every persisted model; the store migrates
// each entry into the in-memory database at open.
var ModelTypeRegistry = map[string]interface{}{
	"Property":           Property{},
	"Unit":               Unit{},
	"Tenant":             Tenant{},
	"Lease":              Lease{},
	"RentInvoice":        RentInvoice{},
	"Payment":            Payment{},
	"MaintenanceRequest": MaintenanceRequest{},
}
