package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI  string
	MongoDB   string
	JWTSecret string
	PORT      string
	LogLevel  string
	LogPretty bool
}

type CollectionName string

var DB_Collection = struct {
	Users   CollectionName
	Books   CollectionName
	Reviews CollectionName
}{
	Users:   "users",
	Books:   "books",
	Reviews: "reviews",
}

// Load reads .env (if present) and assembles the configuration from
// environment variables with local-dev defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "bookquestDB"),
		JWTSecret: getEnv("JWT_SECRET", ""),
		PORT:      getEnv("APP_PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnv("LOG_PRETTY", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
