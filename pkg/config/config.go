package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	AuthProviderJWT      = "jwt"
	AuthProviderFirebase = "firebase"

	envDevelopment = "development"
	devJWTSecret   = "supersecretjwtkey"
)

// ErrMissingJWTSecret is returned by Load outside development when JWT_SECRET is unset
var ErrMissingJWTSecret = errors.New("JWT_SECRET environment variable not set")

type Config struct {
	Port                    string
	Env                     string
	FirebaseCredentialsPath string
	PostgresUrl             string
	MongoURI                string
	MongoDatabase           string
	JWTSecret               string
	JWTExpiry               time.Duration
	AuthProvider            string
	PostSaveAttempts        int
}

// Load reads configuration from the environment, after loading a .env file if present.
// Only development falls back to a built-in JWT secret.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	cfg := &Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", envDevelopment),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		PostgresUrl:             getEnv("POSTGRES_CONN_STR", ""),
		MongoURI:                getEnv("MONGO_URI", ""),
		MongoDatabase:           getEnv("MONGO_DATABASE", "devconnector"),
		JWTSecret:               getEnv("JWT_SECRET", ""),
		JWTExpiry:               getDuration("JWT_EXPIRY", 72*time.Hour),
		AuthProvider:            getEnv("AUTH_PROVIDER", AuthProviderJWT),
		PostSaveAttempts:        getInt("POST_SAVE_ATTEMPTS", 3),
	}

	if cfg.JWTSecret == "" {
		if cfg.Env != envDevelopment {
			return nil, ErrMissingJWTSecret
		}
		log.Println("JWT_SECRET not set, using the development secret.")
		cfg.JWTSecret = devJWTSecret
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		log.Printf("Ignoring invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("Ignoring invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
