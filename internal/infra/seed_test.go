package infra

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbm "salonsage/internal/models/db_models"
)

func openSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func TestSeedDefaultsPopulatesEmptyStore(t *testing.T) {
	db := openSeedTestDB(t)
	require.NoError(t, SeedDefaults(db, zap.NewNop()))

	var services, packages, licenses int64
	require.NoError(t, db.Model(&dbm.Service{}).Count(&services).Error)
	require.NoError(t, db.Model(&dbm.Subscription{}).Count(&packages).Error)
	require.NoError(t, db.Model(&dbm.LicenseKey{}).Count(&licenses).Error)
	assert.Equal(t, int64(5), services)
	assert.Equal(t, int64(2), packages)
	assert.Equal(t, int64(1), licenses)
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	db := openSeedTestDB(t)
	require.NoError(t, SeedDefaults(db, zap.NewNop()))
	require.NoError(t, SeedDefaults(db, zap.NewNop()))

	var services int64
	require.NoError(t, db.Model(&dbm.Service{}).Count(&services).Error)
	assert.Equal(t, int64(5), services)
}

func TestSeedDefaultsKeepsOperatorData(t *testing.T) {
	db := openSeedTestDB(t)
	custom := dbm.Service{Name: "Barba", Price: 25, Duration: 20, IsActive: true}
	require.NoError(t, db.Create(&custom).Error)

	require.NoError(t, SeedDefaults(db, zap.NewNop()))

	var services int64
	require.NoError(t, db.Model(&dbm.Service{}).Count(&services).Error)
	assert.Equal(t, int64(1), services)
}
