package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"booklisting-backend/internal/auth"
	"booklisting-backend/internal/config"
	infraKV "booklisting-backend/internal/infrastructure/kv"
	"booklisting-backend/pkg/kv"

	listingHandler "booklisting-backend/internal/domains/listing/handler"
	listingRepo "booklisting-backend/internal/domains/listing/repository"
	listingService "booklisting-backend/internal/domains/listing/service"
	sellerRepo "booklisting-backend/internal/domains/seller/repository"
	sellerService "booklisting-backend/internal/domains/seller/service"
	statsRepo "booklisting-backend/internal/domains/stats/repository"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Every component is a
// singleton for the life of the process.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config *config.Config
	Store  kv.Store

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================
	ListingRepo listingRepo.RepositoryInterface
	SellerRepo  sellerRepo.RepositoryInterface
	StatsRepo   statsRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================
	SellerService  sellerService.ServiceInterface
	ListingService listingService.ServiceInterface
	Gate           *auth.Gate

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	ListingHandler *listingHandler.Handler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer loads config, opens the configured store and wires the rest.
// Order matters: config, store, repositories, services, gate, handlers.
func NewContainer() (*Container, error) {
	log.Info().Msg("Initializing DI container")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	store, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}

	return Build(cfg, store), nil
}

// OpenStore connects the backend named by cfg.Store.Driver.
func OpenStore(cfg *config.Config) (kv.Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverBadger:
		log.Info().Str("path", cfg.Badger.Path).Msg("Opening Badger store")
		store, err := infraKV.OpenBadger(cfg.Badger.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open badger store: %w", err)
		}
		return store, nil

	case config.StoreDriverRedis:
		log.Info().Str("host", cfg.Redis.Host).Msg("Connecting to Redis")
		store := infraKV.NewRedisStore(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.Connect(ctx); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return store, nil
	}

	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

// Build wires every layer on top of an open store.
func Build(cfg *config.Config, store kv.Store) *Container {
	c := &Container{
		Config: cfg,
		Store:  store,
	}

	c.ListingRepo = listingRepo.NewRepository(store)
	c.SellerRepo = sellerRepo.NewRepository(store)
	c.StatsRepo = statsRepo.NewRepository(store)

	c.SellerService = sellerService.NewService(c.SellerRepo, nil)
	c.ListingService = listingService.NewService(c.ListingRepo, c.SellerService, c.StatsRepo)
	c.Gate = auth.NewGate(cfg.Auth.AdminSecret, c.ListingRepo)

	c.ListingHandler = listingHandler.NewHandler(c.ListingService, c.Gate)

	log.Info().Str("driver", cfg.Store.Driver).Msg("DI container ready")
	return c
}

// Cleanup releases the store. Safe to call on a partially built container.
func (c *Container) Cleanup() {
	if c.Store == nil {
		return
	}
	if err := c.Store.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close store")
		return
	}
	log.Info().Msg("Store closed")
}
