package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createPricingRuleHandler "github.com/m04kA/SMC-CourtPricingService/internal/api/handlers/create_pricing_rule"
	deletePricingRuleHandler "github.com/m04kA/SMC-CourtPricingService/internal/api/handlers/delete_pricing_rule"
	getCourtPriceHandler "github.com/m04kA/SMC-CourtPricingService/internal/api/handlers/get_court_price"
	getPricingRuleHandler "github.com/m04kA/SMC-CourtPricingService/internal/api/handlers/get_pricing_rule"
	listPricingRulesHandler "github.com/m04kA/SMC-CourtPricingService/internal/api/handlers/list_pricing_rules"
	"github.com/m04kA/SMC-CourtPricingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtPricingService/internal/config"
	ruleCache "github.com/m04kA/SMC-CourtPricingService/internal/infra/cache/pricingrule"
	ruleRepo "github.com/m04kA/SMC-CourtPricingService/internal/infra/storage/pricingrule"
	venueServiceClient "github.com/m04kA/SMC-CourtPricingService/internal/integrations/venueservice"
	pricingRulesService "github.com/m04kA/SMC-CourtPricingService/internal/service/pricingrules"
	priceCourtSlotUC "github.com/m04kA/SMC-CourtPricingService/internal/usecase/price_court_slot"
	"github.com/m04kA/SMC-CourtPricingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtPricingService/pkg/logger"
	"github.com/m04kA/SMC-CourtPricingService/pkg/metrics"
)

const configPath = "config.toml"

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CourtPricingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозиторий (с метриками или без)
	var ruleRepository *ruleRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		ruleRepository = ruleRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		ruleRepository = ruleRepo.NewRepository(db)
	}

	// Кэш кандидатов правил в Redis (если включен)
	var rules ruleCache.RuleRepository = ruleRepository
	var redisClient *redis.Client

	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		pingCancel()

		if err != nil {
			// Без кэша сервис работает, просто медленнее
			log.Error("Redis unavailable at %s, pricing cache disabled: %v", cfg.Redis.Addr, err)
			_ = redisClient.Close()
			redisClient = nil
		} else {
			rules = ruleCache.NewCachedRepository(
				ruleRepository,
				ruleCache.NewRedisKV(redisClient),
				time.Duration(cfg.Redis.TTLSeconds)*time.Second,
				metricsCollector,
				log,
			)
			log.Info("Pricing rules cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
		}
	}

	// Клиент сервиса площадок (если включен)
	var venueClient pricingRulesService.VenueServiceClient
	if cfg.VenueService.Enabled {
		venueClient = venueServiceClient.NewClient(
			cfg.VenueService.URL,
			time.Duration(cfg.VenueService.Timeout)*time.Second,
			log,
		)
		log.Info("VenueService client initialized (url=%s timeout=%ds)", cfg.VenueService.URL, cfg.VenueService.Timeout)
	}

	// Инициализируем сервисы и use cases
	rulesSvc := pricingRulesService.NewService(rules, venueClient, log)
	priceCourtSlotUseCase := priceCourtSlotUC.NewUseCase(rules, metricsCollector, cfg.Pricing.RequireRule, log)
	if cfg.Pricing.RequireRule {
		log.Info("Strict pricing enabled: slots without a matching rule are rejected")
	}

	// Инициализируем handlers
	getCourtPrice := getCourtPriceHandler.NewHandler(priceCourtSlotUseCase, log)
	createPricingRule := createPricingRuleHandler.NewHandler(rulesSvc, log)
	listPricingRules := listPricingRulesHandler.NewHandler(rulesSvc, log)
	getPricingRule := getPricingRuleHandler.NewHandler(rulesSvc, log)
	deletePricingRule := deletePricingRuleHandler.NewHandler(rulesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Расчет цены слота корта
	api.HandleFunc("/companies/{companyId}/branches/{branchId}/courts/{courtId}/price",
		getCourtPrice.Handle).Methods(http.MethodGet)

	// --- Правила ценообразования ---
	api.HandleFunc("/companies/{companyId}/branches/{branchId}/pricing-rules",
		createPricingRule.Handle).Methods(http.MethodPost)
	api.HandleFunc("/companies/{companyId}/branches/{branchId}/pricing-rules",
		listPricingRules.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pricing-rules/{ruleId}", getPricingRule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pricing-rules/{ruleId}", deletePricingRule.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
