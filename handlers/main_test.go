package handlers

import (
	"testing"

	"restaurant-ops-api/config"
	"restaurant-ops-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database, migrates every model, and
// points the package-level config.DB at it for the package-style handlers.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.StockCategory{},
		&models.StockItem{},
		&models.Booking{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	))
	config.DB = db
	return db
}
