package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"dreamtrip/internal/catalog"
	"dreamtrip/internal/config"
	"dreamtrip/internal/repository"
)

func loadCatalog(cfg *config.CatalogConfig) (*catalog.Catalog, error) {
	if cfg.File == "" {
		cat := catalog.Default()
		log.Printf("✅ Using built-in catalog (%d models)", cat.Len())
		return cat, nil
	}

	cat, err := catalog.LoadFile(cfg.File)
	if err != nil {
		return nil, err
	}
	log.Printf("✅ Loaded catalog from %s (%d models)", cfg.File, cat.Len())
	return cat, nil
}

func openJournal(cfg *config.Config) (repository.Journal, error) {
	storage := cfg.Storage
	switch storage.Driver {
	case "postgres":
		j, err := repository.NewPostgresJournal(cfg.GetPostgreSQLDSN(), storage.MaxConnections, storage.MaxIdleConnections)
		if err != nil {
			return nil, err
		}
		log.Println("✅ Connected to PostgreSQL journal")
		return j, nil
	case "sqlite":
		j, err := repository.NewSQLiteJournal(storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Printf("✅ Opened SQLite journal at %s", storage.SQLitePath)
		return j, nil
	case "memory":
		log.Println("✅ Using in-memory journal")
		return repository.NewMemoryJournal(), nil
	}
	return nil, fmt.Errorf("unsupported storage driver %q", storage.Driver)
}

// openCache prefers Redis and degrades to an in-process cache when Redis is
// not configured or unreachable
func openCache(ctx context.Context, cfg *config.CacheConfig) (repository.CacheRepository, func()) {
	ttl := time.Duration(cfg.TTLSeconds) * time.Second

	if cfg.RedisAddr != "" {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()

		rc, err := repository.NewRedisCache(pingCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, ttl)
		if err == nil {
			log.Printf("✅ Connected to Redis cache at %s", cfg.RedisAddr)
			return rc, func() { rc.Close() }
		}
		log.Printf("Warning: %v, using in-memory cache", err)
	}

	log.Printf("✅ Using in-memory cache (ttl %s, max %d entries)", ttl, cfg.MaxEntries)
	return repository.NewMemoryCache(ttl, cfg.MaxEntries), func() {}
}
