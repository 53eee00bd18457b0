package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	billingapp "github.com/agence/backend/internal/application/billing"
	clientapp "github.com/agence/backend/internal/application/client"
	consultantapp "github.com/agence/backend/internal/application/consultant"
	reportapp "github.com/agence/backend/internal/application/report"
	"github.com/agence/backend/internal/infrastructure/cache"
	"github.com/agence/backend/internal/infrastructure/config"
	"github.com/agence/backend/internal/infrastructure/logger"
	"github.com/agence/backend/internal/infrastructure/persistence"
	"github.com/agence/backend/internal/interfaces/http/handler"
	"github.com/agence/backend/internal/interfaces/http/middleware"
	"github.com/agence/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	// Money fields serialize as JSON numbers, matching the API contract
	decimal.MarshalJSONWithoutQuotes = true

	log.Info("Starting agence backend",
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("db_driver", cfg.Database.Driver),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	// Report cache is optional; the service degrades to database-only when
	// Redis is disabled or unreachable at startup.
	var reportCache reportapp.PageCache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisReportCache(cfg.Redis)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() { _ = redisCache.Close() }()
		reportCache = redisCache
		log.Info("Report cache enabled", zap.String("addr", cfg.Redis.Addr()))
	}

	consultantRepo := persistence.NewGormConsultantRepository(db.DB)
	clientRepo := persistence.NewGormClientRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	orderRepo := persistence.NewGormServiceOrderRepository(db.DB)
	reportRepo := persistence.NewGormReportRepository(db.DB)

	consultantService := consultantapp.NewService(consultantRepo)
	clientService := clientapp.NewService(clientRepo)
	billingService := billingapp.NewService(invoiceRepo, orderRepo)
	reportService := reportapp.NewService(reportRepo, reportCache, log.Named("report"))

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORS(cfg.HTTP.CORSAllowOrigins),
	)
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewConsultantHandler(consultantService, reportService))
	r.Register(handler.NewClientHandler(clientService, reportService))
	r.Register(handler.NewInvoiceHandler(billingService))
	r.Register(handler.NewServiceOrderHandler(billingService))
	r.Register(handler.NewSystemHandler(db))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
