package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbm "salonsage/internal/models/db_models"
	req "salonsage/internal/models/request_models"
	"salonsage/internal/repositories"
	"salonsage/pkg/utils"
)

const testTokenSecret = "test-secret"

func newLicenseService(db *gorm.DB) LicenseServiceInterface {
	return NewLicenseService(repositories.NewLicenseRepository(db), testTokenSecret, time.Hour)
}

func TestValidateKnownKeyIssuesFeatureToken(t *testing.T) {
	db := setupTestDB(t)
	svc := newLicenseService(db)

	key := dbm.LicenseKey{
		Key:      "SALON_SAGE_FULL_2024",
		IsActive: true,
		Features: []string{"full_access", "analytics"},
	}
	require.NoError(t, db.Create(&key).Error)

	out, err := svc.Validate(context.Background(), "SALON_SAGE_FULL_2024")
	require.NoError(t, err)
	assert.True(t, out.IsValid)
	assert.Equal(t, []string{"full_access", "analytics"}, out.Features)
	require.NotEmpty(t, out.Token)

	claims, err := utils.ValidateLicenseToken(testTokenSecret, out.Token)
	require.NoError(t, err)
	assert.True(t, claims.HasFeature("analytics"))
	assert.False(t, claims.HasFeature("multi_tenant"))
}

func TestValidateUnknownKey(t *testing.T) {
	db := setupTestDB(t)
	svc := newLicenseService(db)

	out, err := svc.Validate(context.Background(), "NOT_A_KEY")
	require.NoError(t, err)
	assert.False(t, out.IsValid)
	assert.Empty(t, out.Features)
	assert.Empty(t, out.Token)
}

func TestValidateExpiredKey(t *testing.T) {
	db := setupTestDB(t)
	svc := newLicenseService(db)

	expired := time.Now().Add(-24 * time.Hour)
	key := dbm.LicenseKey{
		Key:        "OLD_KEY",
		IsActive:   true,
		ExpiryDate: &expired,
		Features:   []string{"full_access"},
	}
	require.NoError(t, db.Create(&key).Error)

	out, err := svc.Validate(context.Background(), "OLD_KEY")
	require.NoError(t, err)
	assert.False(t, out.IsValid)
}

func TestValidateInactiveKey(t *testing.T) {
	db := setupTestDB(t)
	svc := newLicenseService(db)

	key := dbm.LicenseKey{Key: "DISABLED_KEY", IsActive: false, Features: []string{"full_access"}}
	require.NoError(t, db.Create(&key).Error)

	out, err := svc.Validate(context.Background(), "DISABLED_KEY")
	require.NoError(t, err)
	assert.False(t, out.IsValid)
}

func TestCreateKeyRejectsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	svc := newLicenseService(db)

	_, err := svc.CreateKey(context.Background(), req.CreateLicenseKeyRequest{
		Key:      "NEW_KEY",
		Features: []string{"analytics"},
	})
	require.NoError(t, err)

	_, err = svc.CreateKey(context.Background(), req.CreateLicenseKeyRequest{
		Key:      "NEW_KEY",
		Features: []string{"analytics"},
	})
	assert.ErrorIs(t, err, utils.ErrDuplicateLicenseKey)
}
