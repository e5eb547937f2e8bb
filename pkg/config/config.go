package config

import "os"

type Config struct {
	Port         string
	Env          string
	DatabaseURL  string
	SeedDemoData bool
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		SeedDemoData: getEnv("SEED_DEMO_DATA", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
