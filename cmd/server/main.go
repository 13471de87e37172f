package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopchat/internal/cache"
	"shopchat/internal/config"
	"shopchat/internal/intent"
	"shopchat/internal/logger"
	"shopchat/internal/repository"
	"shopchat/internal/server"
	"shopchat/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging)
	log.Info().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("git_commit", GitCommit).
		Msg("starting shopchat")
	for _, w := range cfg.Warnings {
		log.Warn().Msg(w)
	}

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database connection
	repo, err := repository.NewRepository(
		cfg.Database.Driver,
		cfg.GetDSN(),
		cfg.Database.MaxConnections,
		cfg.Database.MaxIdleConnections,
	)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := repo.Migrate(ctx); err != nil {
		return err
	}
	log.Info().Str("driver", repo.Driver()).Msg("database ready")

	if cfg.Catalog.SeedOnStart {
		seeder := service.NewCatalogSeeder(repo, rand.New(rand.NewSource(time.Now().UnixNano())), log)
		if _, err := seeder.SeedIfEmpty(ctx, cfg.Catalog.SeedCount); err != nil {
			return err
		}
	}

	store := openCache(ctx, cfg.Redis, log)
	defer store.Close()

	// Initialize services
	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry, cfg.Auth.Issuer)
	parser := intent.NewParser(intent.DefaultVocabulary(), log)

	router := server.NewRouter(server.Deps{
		Config:   cfg,
		Build:    server.BuildInfo{Version: Version, BuildTime: BuildTime, GitCommit: GitCommit},
		Log:      log,
		Auth:     service.NewAuthService(repo, tokens, log),
		Tokens:   tokens,
		Products: service.NewProductService(repo, store, cfg.Redis.CacheTTL, log),
		Chat:     service.NewChatService(parser, repo, log),
		History:  service.NewHistoryService(repo),
		Counter:  store,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

// openCache connects to Redis when configured and falls back to process memory
func openCache(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) cache.Store {
	if cfg.URL == "" {
		log.Info().Msg("REDIS_URL not set, using in-memory cache and rate limit counters")
		return cache.NewMemoryStore()
	}

	store, err := cache.NewRedisStore(ctx, cfg.URL, cfg.KeyPrefix)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, using in-memory cache and rate limit counters")
		return cache.NewMemoryStore()
	}
	log.Info().Msg("connected to redis")
	return store
}
