package config

import (
	"log"
	"os"

	"restaurant-ops-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_ops_super_secret_2024"))

// StripeConfig carries the payment gateway credentials. It is built once at
// startup and injected into the gateway client — never read ambiently.
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
}

// LoadStripeConfig reads gateway settings from the environment.
func LoadStripeConfig() StripeConfig {
	return StripeConfig{
		SecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
		WebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
		Currency:      getEnv("PAYMENT_CURRENCY", "usd"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	dsn := getEnv("DATABASE_PATH", "restaurant_ops.db")
	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.StockCategory{},
		&models.StockItem{},
		&models.Booking{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
