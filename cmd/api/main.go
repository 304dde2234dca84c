package main

import (
	"errors"
	"expvar"
	"fmt"
	"io/fs"
	"katalog/internal/cache"
	"katalog/internal/db"
	"katalog/internal/domain/catalog"
	"katalog/internal/domain/storage"
	"katalog/internal/media"
	"katalog/internal/ratelimiter"
	"log"
	"runtime"

	"github.com/joho/godotenv"
)

var version = "1.0.0"

//	@title			Katalog API
//	@description	Read-only product catalog: categories, brands and product listings.

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath					/v1
//	@securityDefinitions.basic	BasicAuth

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg := loadConfig()

	logger, err := NewLogger(cfg.logFile)
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Database
	pool, err := db.New(cfg.db.addr, cfg.db.maxConns, cfg.db.maxIdleTime)
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()
	logger.Info("database connection pool established")

	store := storage.NewContainer(pool, cfg.db.queryTimeout)

	svc := catalog.NewService(store.Catalog, catalog.Options{
		PlaceholderImage: cfg.catalog.placeholderImage,
		SnapshotReads:    cfg.catalog.snapshotReads,
	})

	// Cache
	var c cache.Cache = cache.NewMemory(cfg.cache.ttl)
	if cfg.cache.redisURL != "" {
		rc, err := cache.NewRedis(cfg.cache.redisURL, cfg.cache.ttl)
		if err != nil {
			logger.Fatal(err)
		}
		c = rc
		logger.Infow("redis cache connected", "ttl", cfg.cache.ttl.String())
	}
	defer c.Close()

	// Images
	var images media.Resolver = media.NewStaticResolver(cfg.media.baseURL)
	if cfg.media.cloudinaryURL != "" {
		cld, err := media.NewCloudinaryResolver(cfg.media.cloudinaryURL, cfg.media.transformation, images)
		if err != nil {
			logger.Fatal(err)
		}
		images = cld
	}

	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	app := &application{
		config:      cfg,
		logger:      logger,
		catalog:     svc,
		db:          store,
		cache:       c,
		images:      images,
		rateLimiter: rateLimiter,
	}

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(store.Stats))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
