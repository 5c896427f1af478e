package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/support-desk/internal/api/http/handlers"
	"github.com/spec-kit/support-desk/internal/api/mcpserver"
	"github.com/spec-kit/support-desk/internal/config"
	"github.com/spec-kit/support-desk/internal/delivery"
	"github.com/spec-kit/support-desk/internal/observability"
	"github.com/spec-kit/support-desk/internal/schema"
	"github.com/spec-kit/support-desk/internal/service"

	httptransport "github.com/spec-kit/support-desk/internal/api/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	var fileOverride *config.Override
	if cfg.Form.OverridePath != "" {
		fileOverride, err = config.LoadOverrideFile(cfg.Form.OverridePath)
		if err != nil {
			logger.Fatal("failed to load form override", zap.Error(err))
		}
	}
	envOverride, err := config.EnvOverride()
	if err != nil {
		logger.Fatal("failed to read delivery settings", zap.Error(err))
	}

	form, err := config.Resolve(config.DefaultForm(), fileOverride, envOverride)
	if err != nil {
		logger.Fatal("failed to resolve form configuration", zap.Error(err))
	}
	if !form.Delivery.Auth.Configured() {
		logger.Warn("email delivery not configured, tickets will be recorded locally")
	}

	sch := schema.Build(form)
	metrics := observability.NewMetrics()

	dispatcher := delivery.NewDispatcher(form, delivery.NewSMTPMailer(form.Delivery), logger)
	supportService := service.NewSupportService(service.Dependencies{
		Schema:     sch,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	mcpSrv := mcpserver.New(mcpserver.Options{
		Name:        cfg.App.Name,
		Version:     cfg.App.Version,
		Service:     supportService,
		Schema:      sch,
		UIAssetPath: cfg.Form.UIAssetPath,
		Metrics:     metrics,
		Logger:      logger,
	})

	switch cfg.App.Transport {
	case config.TransportStdio:
		if err := mcpSrv.ServeStdio(); err != nil {
			logger.Fatal("stdio server", zap.Error(err))
		}

	case config.TransportHTTP:
		httpSrv := mcpSrv.StreamableHTTP()
		go func() {
			logger.Info("serving MCP over HTTP", zap.String("addr", cfg.App.Addr()))
			if err := httpSrv.Start(cfg.App.Addr()); err != nil {
				logger.Fatal("mcp http server", zap.Error(err))
			}
		}()
		waitForShutdown(logger)
		_ = httpSrv.Shutdown(context.Background())

	case config.TransportREST:
		app := fiber.New()
		httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
		httptransport.RegisterRoutes(app, httptransport.RouteConfig{
			Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, form.Delivery.Auth.Configured(), cfg.Form.UIAssetPath),
			Support: handlers.NewSupportHandler(supportService),
			UI:      handlers.NewUIHandler(cfg.Form.UIAssetPath),
		})

		go func() {
			if err := app.Listen(cfg.App.Addr()); err != nil {
				logger.Fatal("fiber listen", zap.Error(err))
			}
		}()
		waitForShutdown(logger)
		_ = app.Shutdown()
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
