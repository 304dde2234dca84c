package main

import (
	"fmt"
	"katalog/internal/domain/catalog"
	"katalog/internal/ratelimiter"
	"os"
	"strconv"
	"time"
)

func envString(key, def string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return def
}

func envInt(key string, def int) int {
	if val, exists := os.LookupEnv(key); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil {
			return parsedVal
		}
		fmt.Printf("Invalid %s, defaulting to %d\n", key, def)
	}
	return def
}

func envBool(key string, def bool) bool {
	if val, exists := os.LookupEnv(key); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			return parsedVal
		}
		fmt.Printf("Invalid %s, defaulting to %t\n", key, def)
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if val, exists := os.LookupEnv(key); exists {
		if parsedVal, err := time.ParseDuration(val); err == nil {
			return parsedVal
		}
		fmt.Printf("Invalid %s, defaulting to %s\n", key, def)
	}
	return def
}

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	return ratelimiter.Config{
		RequestsPerTimeFrame: envInt("RATELIMITER_REQUESTS_COUNT", 200),
		TimeFrame:            5 * time.Second,
		Enabled:              envBool("RATE_LIMITER_ENABLED", false),
	}
}

func loadConfig() config {
	return config{
		addr:   envString("ADDR", ":8080"),
		env:    envString("ENV", "development"),
		apiURL: envString("EXTERNAL_URL", "localhost:8080"),
		db: dbConfig{
			addr:         os.Getenv("DB_ADDR"),
			maxConns:     int32(envInt("DB_MAX_CONNS", 10)),
			maxIdleTime:  envString("DB_MAX_IDLE_TIME", "15m"),
			queryTimeout: envDuration("DB_QUERY_TIMEOUT", catalog.QueryTimeoutDuration),
		},
		catalog: catalogConfig{
			snapshotReads:    envBool("CATALOG_SNAPSHOT_READS", false),
			defaultPageSize:  envInt("CATALOG_DEFAULT_PAGE_SIZE", 20),
			placeholderImage: envString("CATALOG_PLACEHOLDER_IMAGE", catalog.DefaultPlaceholderImage),
			defaultLocale:    envString("CATALOG_DEFAULT_LOCALE", catalog.PrimaryLocale),
		},
		cache: cacheConfig{
			redisURL: os.Getenv("REDIS_URL"),
			ttl:      envDuration("CACHE_TTL", 5*time.Minute),
		},
		media: mediaConfig{
			cloudinaryURL:  os.Getenv("CLOUDINARY_URL"),
			transformation: envString("CLOUDINARY_TRANSFORMATION", "c_limit,w_800,q_auto,f_auto"),
			baseURL:        os.Getenv("IMAGE_BASE_URL"),
		},
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
		},
		rateLimiter: LoadRateLimiterConfig(),
		logFile:     os.Getenv("LOG_FILE"),
	}
}
