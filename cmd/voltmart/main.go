package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/voltmart/voltmart/internal/app"
	"github.com/voltmart/voltmart/internal/catalog/categories"
	"github.com/voltmart/voltmart/internal/catalog/products"
	"github.com/voltmart/voltmart/internal/platform/cache"
	"github.com/voltmart/voltmart/internal/platform/db"
	"github.com/voltmart/voltmart/internal/storefront/banners"
	"github.com/voltmart/voltmart/internal/storefront/landing"
	"github.com/voltmart/voltmart/internal/storefront/newsletter"
	"github.com/voltmart/voltmart/internal/storefront/testimonials"
	"github.com/voltmart/voltmart/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	// Redis is optional: without it the landing cache and the welcome-mail
	// queue are simply disabled.
	var landingCache *landing.Cache
	var mailer newsletter.WelcomeMailer
	if cfg.RedisAddr != "" {
		redisClient, err := cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Warn("redis unavailable, cache and jobs disabled", slog.Any("error", err))
		} else {
			defer func() {
				if err := redisClient.Close(); err != nil {
					logger.Warn("redis close", slog.Any("error", err))
				}
			}()
			landingCache = landing.NewCache(redisClient, cfg.LandingCacheTTL)
			jobClient := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
			defer func() {
				if err := jobClient.Close(); err != nil {
					logger.Warn("job client close", slog.Any("error", err))
				}
			}()
			mailer = jobClient
		}
	}

	productRepo := products.NewRepository(dbpool)
	productService := products.NewService(productRepo)
	productHandler := products.NewHandler(logger, productService)

	categoryRepo := categories.NewRepository(dbpool)
	categoryService := categories.NewService(categoryRepo)
	categoryHandler := categories.NewHandler(logger, categoryService)

	testimonialRepo := testimonials.NewRepository(dbpool)
	testimonialService := testimonials.NewService(testimonialRepo)
	testimonialHandler := testimonials.NewHandler(logger, testimonialService)

	bannerRepo := banners.NewRepository(dbpool)
	bannerService := banners.NewService(bannerRepo)
	bannerHandler := banners.NewHandler(logger, bannerService)

	newsletterRepo := newsletter.NewRepository(dbpool)
	newsletterService := newsletter.NewService(logger, newsletterRepo, mailer)
	newsletterHandler := newsletter.NewHandler(logger, newsletterService)

	landingService := landing.NewService(bannerRepo, productRepo, categoryRepo, testimonialRepo, landingCache)
	landingHandler := landing.NewHandler(logger, landingService)

	router := app.NewRouter(app.RouterParams{
		Logger:             logger,
		Config:             cfg,
		LandingHandler:     landingHandler,
		ProductHandler:     productHandler,
		CategoryHandler:    categoryHandler,
		TestimonialHandler: testimonialHandler,
		NewsletterHandler:  newsletterHandler,
		BannerHandler:      bannerHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
