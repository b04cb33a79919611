package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dharmasatrya/flightadvisor/internal/alerts"
	"github.com/dharmasatrya/flightadvisor/internal/handler"
	"github.com/dharmasatrya/flightadvisor/internal/history"
	"github.com/dharmasatrya/flightadvisor/internal/notify"
	"github.com/dharmasatrya/flightadvisor/internal/ratelimit"
	"github.com/dharmasatrya/flightadvisor/pkg/logger"
)

// Config is parsed from FLIGHTADVISOR_-prefixed environment variables.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	RedisEnabled  bool          `envconfig:"REDIS_ENABLED" default:"false"`
	RedisHost     string        `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     string        `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	RedisTTL      time.Duration `envconfig:"REDIS_TTL" default:"24h"`

	WebhookURL        string        `envconfig:"WEBHOOK_URL" default:""`
	WebhookAuthToken  string        `envconfig:"WEBHOOK_AUTH_TOKEN" default:""`
	WebhookTimeout    time.Duration `envconfig:"WEBHOOK_TIMEOUT" default:"5s"`
	WebhookMaxRetries uint64        `envconfig:"WEBHOOK_MAX_RETRIES" default:"3"`

	NotifyRatePerSecond float64 `envconfig:"NOTIFY_RATE_PER_SECOND" default:"5"`
	NotifyBurst         int     `envconfig:"NOTIFY_BURST" default:"10"`
}

func main() {
	log := logger.New("flightadvisor")

	var cfg Config
	if err := envconfig.Process("FLIGHTADVISOR", &cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to process environment variables")
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	var store history.Store
	var balances history.BalanceSource
	if cfg.RedisEnabled {
		redisStore, err := history.NewRedisStore(history.RedisConfig{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.RedisTTL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		store = redisStore
		balances = redisStore
		log.Info().
			Str("host", cfg.RedisHost+":"+cfg.RedisPort).
			Dur("ttl", cfg.RedisTTL).
			Msg("Redis price history enabled")
	} else {
		memStore := history.NewMemoryStore()
		store = memStore
		balances = memStore
		log.Info().Msg("using in-memory price history")
	}

	rateLimiter := ratelimit.NewChannelLimiterWithDefaults()
	rateLimiter.SetChannelLimit("webhook", cfg.NotifyRatePerSecond, cfg.NotifyBurst)

	var sink notify.Sink
	if cfg.WebhookURL != "" {
		sink = notify.NewWebhookSink(notify.WebhookConfig{
			URL:        cfg.WebhookURL,
			AuthToken:  cfg.WebhookAuthToken,
			Timeout:    cfg.WebhookTimeout,
			MaxRetries: cfg.WebhookMaxRetries,
		}, rateLimiter, log)
		log.Info().Str("url", cfg.WebhookURL).Msg("webhook notifications enabled")
	} else {
		sink = notify.NewNoopSink()
		log.Info().Msg("notifications disabled")
	}

	engine := alerts.NewEngine(sink, log)
	h := handler.New(store, balances, engine)

	api := e.Group("/api/v1")
	api.POST("/flights/classify", h.Classify)
	api.POST("/flights/price-change", h.PriceChange)
	api.POST("/redemption/optimize", h.Optimize)
	api.POST("/intelligence/upgrades", h.UpgradeOpportunities)
	api.POST("/intelligence/delay-risk", h.DelayRisk)
	api.POST("/intelligence/miles", h.MilesAccrual)
	api.POST("/alerts/process", h.ProcessAlerts)
	e.GET("/health", handler.HealthHandler)

	log.Info().Str("port", cfg.Port).Msg("starting flight advisor server")

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
