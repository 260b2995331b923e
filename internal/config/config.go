package config

import "os"

type Config struct {
	MongoURI           string
	RedisURI           string
	SessionSecret      string // signing key for the session cookie
	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string
	Port               string
}

func Load() *Config {
	return &Config{
		MongoURI:           getEnv("MONGODB_URI", "mongodb://localhost:27017/dailyjournal"),
		RedisURI:           getEnv("REDIS_URI", "redis://localhost:6379/0"),
		SessionSecret:      getEnv("SESSION_SECRET", ""),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleCallbackURL:  getEnv("GOOGLE_CALLBACK_URL", "http://localhost:3000/auth/google/callback"),
		Port:               getEnv("PORT", "3000"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
