package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Geolocation GeolocationConfig
	SeedData    bool
}

type ServerConfig struct {
	Addr string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Timezone string
}

type GeolocationConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load reads .env (if present) and binds environment variables with defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_ADDR", "0.0.0.0:8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "sport_events")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("GEO_SERVICE_URL", "http://localhost:8081")
	v.SetDefault("GEO_SERVICE_TIMEOUT", 5*time.Second)
	v.SetDefault("SEED_SAMPLE_DATA", false)

	return &Config{
		Server: ServerConfig{
			Addr: v.GetString("SERVER_ADDR"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			Timezone: v.GetString("DB_TIMEZONE"),
		},
		Geolocation: GeolocationConfig{
			BaseURL: v.GetString("GEO_SERVICE_URL"),
			Timeout: v.GetDuration("GEO_SERVICE_TIMEOUT"),
		},
		SeedData: v.GetBool("SEED_SAMPLE_DATA"),
	}
}
