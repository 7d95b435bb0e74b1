package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leasedesk/internal/models"
)

func TestOpenMigratesAllModels(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)

	for name, model := range models.ModelTypeRegistry {
		assert.True(t, db.Migrator().HasTable(model), "missing table for %s", name)
	}
}

func TestOpenedStoresAreIndependent(t *testing.T) {
	first, err := Open()
	require.NoError(t, err)
	second, err := Open()
	require.NoError(t, err)

	require.NoError(t, first.Create(&models.Tenant{Name: "Alice", Email: "a@example.com"}).Error)

	var count int64
	require.NoError(t, second.Model(&models.Tenant{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestIDsAreMonotonicPerEntityKind(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)

	var tenantIDs []uint
	for i := 0; i < 3; i++ {
		tenant := &models.Tenant{Name: "T", Email: "t@example.com"}
		require.NoError(t, db.Create(tenant).Error)
		tenantIDs = append(tenantIDs, tenant.ID)
	}
	assert.Equal(t, []uint{1, 2, 3}, tenantIDs)

	// Each entity kind runs its own sequence.
	property := &models.Property{Name: "P"}
	require.NoError(t, db.Create(property).Error)
	assert.EqualValues(t, 1, property.ID)
}

func TestLookupsReturnNotFound(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)

	var notFound *models.NotFoundError

	_, err = Property(db, 1)
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "property", notFound.Entity)
	assert.EqualValues(t, 1, notFound.ID)

	_, err = Unit(db, 7)
	require.ErrorAs(t, err, &notFound)
	_, err = Tenant(db, 7)
	require.ErrorAs(t, err, &notFound)
	_, err = Lease(db, 7)
	require.ErrorAs(t, err, &notFound)
	_, err = Invoice(db, 7)
	require.ErrorAs(t, err, &notFound)
	_, err = Maintenance(db, 7)
	require.ErrorAs(t, err, &notFound)
}

func TestLookupsLoadAssociations(t *testing.T) {
	db, err := Open()
	require.NoError(t, err)

	property := &models.Property{Name: "Maple Court", Address: "12 Maple Street"}
	require.NoError(t, db.Create(property).Error)
	unit := &models.Unit{PropertyID: property.ID, UnitNumber: "101", Rent: 1200}
	require.NoError(t, db.Create(unit).Error)
	tenant := &models.Tenant{Name: "Alice", Email: "a@example.com"}
	require.NoError(t, db.Create(tenant).Error)
	lease := &models.Lease{UnitID: unit.ID, TenantID: tenant.ID, Rent: 1200, BillingCycleDays: 30}
	require.NoError(t, db.Create(lease).Error)

	loaded, err := Lease(db, lease.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Unit)
	require.NotNil(t, loaded.Tenant)
	assert.Equal(t, "101", loaded.Unit.UnitNumber)
	assert.Equal(t, "Alice", loaded.Tenant.Name)

	withUnits, err := Property(db, property.ID)
	require.NoError(t, err)
	require.Len(t, withUnits.Units, 1)
}
