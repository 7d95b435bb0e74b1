package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leasedesk/internal/billing"
	"leasedesk/internal/models"
	"leasedesk/internal/registry"
	"leasedesk/internal/store"
)

func TestDemoSeedsDataset(t *testing.T) {
	db, err := store.Open()
	require.NoError(t, err)
	require.NoError(t, Demo(db))

	count := func(model interface{}) int64 {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		return n
	}
	assert.EqualValues(t, 2, count(&models.Property{}))
	assert.EqualValues(t, 4, count(&models.Unit{}))
	assert.EqualValues(t, 3, count(&models.Tenant{}))
	assert.EqualValues(t, 1, count(&models.Lease{}))
	assert.EqualValues(t, 1, count(&models.MaintenanceRequest{}))

	// The seeded invoice is overdue and only partially paid.
	unpaid, err := billing.NewService(db).UnpaidInvoices()
	require.NoError(t, err)
	require.Len(t, unpaid, 1)
	assert.Equal(t, 500.0, unpaid[0].PaidAmount())

	// The seeded lease occupies its unit.
	vacant, err := registry.NewService(db).VacantUnits()
	require.NoError(t, err)
	assert.Len(t, vacant, 3)
}

func TestDemoIsIdempotent(t *testing.T) {
	db, err := store.Open()
	require.NoError(t, err)
	require.NoError(t, Demo(db))
	require.NoError(t, Demo(db))

	var properties int64
	require.NoError(t, db.Model(&models.Property{}).Count(&properties).Error)
	assert.EqualValues(t, 2, properties)
}
