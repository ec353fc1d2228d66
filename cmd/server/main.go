package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Gabriel-Pasternak/ReqWise/internal/config"
	"github.com/Gabriel-Pasternak/ReqWise/internal/events"
	"github.com/Gabriel-Pasternak/ReqWise/internal/fields"
	"github.com/Gabriel-Pasternak/ReqWise/internal/handler"
	"github.com/Gabriel-Pasternak/ReqWise/internal/notify"
	"github.com/Gabriel-Pasternak/ReqWise/internal/router"
	"github.com/Gabriel-Pasternak/ReqWise/internal/service"
	"github.com/Gabriel-Pasternak/ReqWise/internal/store"
	"github.com/Gabriel-Pasternak/ReqWise/internal/suggest"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	// Load config
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Store
	var reqStore store.Store
	switch cfg.Database.Driver {
	case "mysql":
		db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{})
		if err != nil {
			log.Fatalf("connect database: %v", err)
		}
		gs := store.NewGormStore(db)
		if err := gs.AutoMigrate(); err != nil {
			log.Fatalf("auto migrate: %v", err)
		}
		reqStore = gs
	default:
		reqStore = store.NewMemoryStore()
	}

	// Redis (optional: suggestion cache + event replay)
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	// Tag suggestion collaborator
	var suggester suggest.Suggester = suggest.Noop{}
	if cfg.Suggest.Enabled {
		suggester = suggest.NewClient(cfg.Suggest)
		if rdb != nil {
			ttl := time.Duration(cfg.Suggest.CacheTTLMinutes) * time.Minute
			suggester = suggest.NewCached(suggester, rdb, ttl)
		}
	}

	// Field schema registry
	defs := cfg.Fields
	if len(defs) == 0 {
		defs = fields.Defaults()
	}
	registry := fields.NewRegistry(defs)

	// Notifier
	var notifier notify.Notifier = notify.NoopNotifier{}
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewWebhookNotifier(cfg.Notify.WebhookURL)
	}

	// Core components
	hub := events.NewHub(rdb)
	reqService := service.NewRequirementService(reqStore, registry, suggester)

	// Handlers
	reqHandler := handler.NewRequirementHandler(reqService, hub, notifier)
	fieldHandler := handler.NewFieldHandler(registry)
	dashboardHandler := handler.NewDashboardHandler(reqService)
	eventsHandler := handler.NewEventsHandler(hub)

	// Router
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.Default()
	router.Setup(r, router.Deps{
		RequirementHandler: reqHandler,
		FieldHandler:       fieldHandler,
		DashboardHandler:   dashboardHandler,
		EventsHandler:      eventsHandler,
	})

	port := cfg.Server.Port
	if port == 0 {
		port = 8080
	}
	log.Printf("[server] listening on :%d", port)
	if err := r.Run(fmt.Sprintf(":%d", port)); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
