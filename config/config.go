package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	// MemoryCacheMaxEntries bounds the in-process cache used without Redis.
	MemoryCacheMaxEntries int

	RateLimitRequests int
	RateLimitWindow   time.Duration

	AllowedOrigins []string
}

// LoadConfig reads .env, if present, and then the environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		Port:                  getenvOrDefault("PORT", "5000"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		RedisPassword:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getenvInt("REDIS_DB", 0),
		CacheTTL:              getenvDuration("CACHE_TTL", time.Hour),
		MemoryCacheMaxEntries: getenvInt("CACHE_MAX_ENTRIES", 10000),
		RateLimitRequests:     getenvInt("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:       getenvDuration("RATE_LIMIT_WINDOW", time.Minute),
		AllowedOrigins:        splitList(getenvOrDefault("ALLOWED_ORIGINS", "http://localhost:3000")),
	}
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
