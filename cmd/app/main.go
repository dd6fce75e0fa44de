package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/agendavel/agenda-rules-api/internal/adapters/in/http"
	"github.com/agendavel/agenda-rules-api/internal/adapters/in/rabbitmq"
	"github.com/agendavel/agenda-rules-api/internal/adapters/out/cache"
	"github.com/agendavel/agenda-rules-api/internal/adapters/out/jsonstore"
	"github.com/agendavel/agenda-rules-api/internal/adapters/out/logger"
	"github.com/agendavel/agenda-rules-api/internal/config"
	"github.com/agendavel/agenda-rules-api/internal/core/ports/out"
	"github.com/agendavel/agenda-rules-api/internal/core/services/rule_service"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	mainLogger, err := logger.NewZapLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"databaseFile":    cfg.Database.File,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	documentAdapter := jsonstore.NewJSONStoreAdapter(cfg, mainLogger.WithModule("JSONStoreAdapter"))

	// The document is the single source of truth, a load failure here is
	// fatal to process initialization
	document, err := documentAdapter.Load(context.Background())
	if err != nil {
		log.Error("app.document.load_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		lruAdapter, err := cache.NewLRUCacheAdapter(cfg, mainLogger.WithModule("CacheAdapter"))
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = lruAdapter
	}

	ruleService := rule_service.NewRuleService(
		document,
		documentAdapter,
		cacheAdapter,
		mainLogger.WithModule("RuleService"),
		cfg,
	)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Cors.AllowOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	controller := http.NewRuleController(
		ruleService,
		cfg,
		mainLogger.WithModule("RuleController"),
	)
	controller.RegisterRoutes(router)

	if cfg.RabbitMQ.Enabled {
		listener, err := rabbitmq.NewRuleChangeListener(
			ruleService,
			cfg,
			mainLogger.WithModule("RuleChangeListener"),
		)
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if err := listener.Start(ctx); err != nil {
			log.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
