package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Store      StoreConfig
	Cloudinary CloudinaryConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// StoreConfig points at the hosted row-store's REST endpoint. The key
// doubles as the apikey header and the bearer credential on every call.
type StoreConfig struct {
	URL string
	Key string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Load reads configuration from the environment (and a .env file when
// present). The store URL and key are required; without them every
// upstream call would go out unauthenticated, so startup aborts instead.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("PORT"),
			Env:          v.GetString("APP_ENV"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Store: StoreConfig{
			URL: v.GetString("SUPABASE_URL"),
			Key: v.GetString("SUPABASE_KEY"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: v.GetString("CLOUDINARY_CLOUD_NAME"),
			APIKey:    v.GetString("CLOUDINARY_API_KEY"),
			APISecret: v.GetString("CLOUDINARY_API_SECRET"),
		},
	}

	if cfg.Store.URL == "" || cfg.Store.Key == "" {
		log.Fatalf("[config] SUPABASE_URL and SUPABASE_KEY must be set")
	}
	return cfg
}
