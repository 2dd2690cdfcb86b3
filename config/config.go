package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Store coordinates (starting point for delivery estimation).
const (
	DefaultStoreLat = -2.2612092256138
	DefaultStoreLon = 113.92016284747595
)

type Config struct {
	Port      string
	JWTSecret []byte

	// AdminEmail is promoted to the admin role at registration time.
	AdminEmail string

	Store    StoreConfig
	Delivery DeliveryConfig
	Telegram TelegramConfig
}

type StoreConfig struct {
	Backend    string // "sqlite" or "postgres"
	SQLitePath string
	Postgres   PostgresConfig
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type DeliveryConfig struct {
	Policy        string // "per_km" or "zone"
	CostPerKm     int64  // minor units per billed kilometer
	StoreLat      float64
	StoreLon      float64
	WhatsAppPhone string
}

type TelegramConfig struct {
	Token  string // empty disables order notifications
	ChatID int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	pgPort, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	chatID, _ := strconv.ParseInt(getEnv("TELEGRAM_CHAT_ID", "0"), 10, 64)
	costPerKm, _ := strconv.ParseInt(getEnv("DELIVERY_COST_PER_KM", "3000"), 10, 64)
	storeLat, _ := strconv.ParseFloat(getEnv("STORE_LAT", ""), 64)
	storeLon, _ := strconv.ParseFloat(getEnv("STORE_LON", ""), 64)
	if storeLat == 0 && storeLon == 0 {
		storeLat, storeLon = DefaultStoreLat, DefaultStoreLon
	}

	return &Config{
		Port:       getEnv("PORT", "8080"),
		JWTSecret:  []byte(getEnv("JWT_SECRET", "dimzia_storefront_secret_2024")),
		AdminEmail: getEnv("ADMIN_EMAIL", ""),
		Store: StoreConfig{
			Backend:    getEnv("STORE_BACKEND", "sqlite"),
			SQLitePath: getEnv("SQLITE_PATH", "dimzia.db"),
			Postgres: PostgresConfig{
				Host:     getEnv("DB_HOST", "localhost"),
				Port:     pgPort,
				User:     getEnv("DB_USER", "postgres"),
				Password: getEnv("DB_PASSWORD", ""),
				Database: getEnv("DB_NAME", "dimzia"),
			},
		},
		Delivery: DeliveryConfig{
			Policy:        getEnv("DELIVERY_POLICY", "per_km"),
			CostPerKm:     costPerKm,
			StoreLat:      storeLat,
			StoreLon:      storeLon,
			WhatsAppPhone: getEnv("WHATSAPP_PHONE", "1234567890"),
		},
		Telegram: TelegramConfig{
			Token:  getEnv("TELEGRAM_TOKEN", ""),
			ChatID: chatID,
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
