package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"salonsage/internal/infra"
	dbm "salonsage/internal/models/db_models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := infra.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedClient(t *testing.T, db *gorm.DB, phone string) *dbm.Client {
	t.Helper()
	c := dbm.Client{FirstName: "Maria", LastName: "Rossi", Phone: phone}
	require.NoError(t, db.Create(&c).Error)
	return &c
}

func seedService(t *testing.T, db *gorm.DB, name string, price float64) *dbm.Service {
	t.Helper()
	s := dbm.Service{Name: name, Price: price, Duration: 30, IsActive: true}
	require.NoError(t, db.Create(&s).Error)
	return &s
}

func seedPackage(t *testing.T, db *gorm.DB, usageLimit int) *dbm.Subscription {
	t.Helper()
	p := dbm.Subscription{
		Name:             "Pacchetto Base",
		Price:            200,
		ServicesIncluded: []string{"Taglio e Piega"},
		UsageLimit:       usageLimit,
		IsActive:         true,
	}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func seedClientSubscription(t *testing.T, db *gorm.DB, client *dbm.Client, pkg *dbm.Subscription, remaining int) *dbm.ClientSubscription {
	t.Helper()
	cs := dbm.ClientSubscription{
		ClientID:       client.ID,
		SubscriptionID: pkg.ID,
		RemainingUses:  remaining,
		PurchaseDate:   time.Now(),
		IsActive:       true,
	}
	require.NoError(t, db.Create(&cs).Error)
	return &cs
}
