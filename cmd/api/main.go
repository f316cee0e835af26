package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"holo-lookup/internal/core/cache"
	"holo-lookup/internal/core/config"
	"holo-lookup/internal/core/i18n"
	"holo-lookup/internal/core/logger"
	"holo-lookup/internal/core/server"
	contactadapter "holo-lookup/internal/features/contact/adapters"
	contacthandler "holo-lookup/internal/features/contact/handler"
	contactservice "holo-lookup/internal/features/contact/service"
	languageadapter "holo-lookup/internal/features/language/adapters"
	languagehandler "holo-lookup/internal/features/language/handler"
	languageservice "holo-lookup/internal/features/language/service"
	lookupadapter "holo-lookup/internal/features/lookup/adapters"
	lookuphandler "holo-lookup/internal/features/lookup/handler"
	"holo-lookup/internal/features/lookup/render"
	lookupservice "holo-lookup/internal/features/lookup/service"

	"go.uber.org/zap"
)

const (
	cacheNamespace  = "holo"
	shutdownTimeout = 10 * time.Second
)

// @title Holo Lookup API
// @version 1.0
// @description Route finder, shipment tracking and language preferences for the Holo Group site.
// @contact.name Holo Group
// @contact.email info@holo-group.com
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	defaultLang, ok := i18n.Parse(cfg.Site.DefaultLanguage)
	if !ok {
		l.Fatal("Unsupported default language", zap.String("language", cfg.Site.DefaultLanguage))
	}

	// Initialize Cache and run Health Check
	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL, cacheNamespace)
	if err != nil {
		l.Fatal("Failed to create Redis adapter", zap.Error(err))
	}
	defer redisCache.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = redisCache.Ping(pingCtx)
	cancel()
	if err != nil {
		l.Fatal("Redis Health Check Failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	// Initialize Language Service & Handler
	preferenceRepo := languageadapter.NewRedisPreferenceRepository(redisCache, cfg.Site.LanguageTTL())
	languageSvc := languageservice.NewPreferenceService(preferenceRepo, defaultLang)
	languageHdl := languagehandler.NewLanguageHandler(languageSvc)

	// Initialize Lookup Engine & Handler
	catalog := lookupadapter.NewStaticCatalog()
	engine := lookupservice.NewLookupEngine(catalog, catalog)
	renderer := render.NewRenderer(catalog, cfg.Site.BookingURL, cfg.Site.Hotline)
	lookupHdl := lookuphandler.NewLookupHandler(engine, catalog, renderer, languageSvc)

	// Initialize Contact Service & Handler
	inbox := contactadapter.NewRedisInbox(redisCache, cfg.Site.ContactRetention())
	contactSvc := contactservice.NewContactService(inbox)
	contactHdl := contacthandler.NewContactHandler(contactSvc, languageSvc)

	srv := server.New(cfg, redisCache)

	// Register Routes
	srv.App.Get("/routes/points", lookupHdl.GetPoints)
	srv.App.Get("/routes/search", lookupHdl.SearchRoute)
	srv.App.Get("/routes", lookupHdl.GetRoutes)
	srv.App.Get("/tracking/:code?", lookupHdl.TrackShipment)

	srv.App.Get("/language", languageHdl.GetLanguage)
	srv.App.Put("/language", languageHdl.SetLanguage)
	srv.App.Post("/language/toggle", languageHdl.ToggleLanguage)
	srv.App.Get("/content", languageHdl.GetContent)

	srv.App.Post("/contact", contactHdl.Submit)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
	l.Info("Server stopped")
}
