package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Store  StoreConfig
	Orders OrdersConfig
	Admin  AdminConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

type StoreConfig struct {
	// SnapshotKey is the single redis key holding the persisted
	// cart+wishlist snapshot.
	SnapshotKey string
}

type OrdersConfig struct {
	// SubmitDelay is the simulated order-processing delay.
	SubmitDelay time.Duration
	// FeedInterval and FeedProbability drive the simulated order feed for
	// the admin dashboard. Probability 0 disables the feed.
	FeedInterval    time.Duration
	FeedProbability float64
}

type AdminConfig struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("JWT_SECRET", "dev-only-secret-change-me")
	viper.SetDefault("STORE_SNAPSHOT_KEY", "souq-tech:store")
	viper.SetDefault("ORDER_SUBMIT_DELAY_MS", 1500)
	viper.SetDefault("ORDER_FEED_INTERVAL_SEC", 15)
	viper.SetDefault("ORDER_FEED_PROBABILITY", 0.2)
	viper.SetDefault("ADMIN_EMAIL", "admin@souq-tech.dz")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("ADMIN_NAME", "مدير المتجر")
	viper.SetDefault("ADMIN_PHONE", "0770000000")

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
		Store: StoreConfig{
			SnapshotKey: viper.GetString("STORE_SNAPSHOT_KEY"),
		},
		Orders: OrdersConfig{
			SubmitDelay:     time.Duration(viper.GetInt("ORDER_SUBMIT_DELAY_MS")) * time.Millisecond,
			FeedInterval:    time.Duration(viper.GetInt("ORDER_FEED_INTERVAL_SEC")) * time.Second,
			FeedProbability: viper.GetFloat64("ORDER_FEED_PROBABILITY"),
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
			Name:     viper.GetString("ADMIN_NAME"),
			Phone:    viper.GetString("ADMIN_PHONE"),
		},
	}
}
