package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bodhs/bodhs-bot/internal/config"
	"github.com/bodhs/bodhs-bot/internal/dataset"
	"github.com/bodhs/bodhs-bot/internal/engine"
	"github.com/bodhs/bodhs-bot/internal/handlers"
	"github.com/bodhs/bodhs-bot/internal/llm"
	"github.com/bodhs/bodhs-bot/internal/logger"
	"github.com/bodhs/bodhs-bot/internal/session"
	"github.com/bodhs/bodhs-bot/internal/transport"
)

func main() {
	// Load .env file if it exists (for development).
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Infow("starting", "service", cfg.Service.Name, "bot", cfg.Service.BotName,
		"model", cfg.Groq.Model)

	// A missing credential or broken sample cache degrades the service
	// instead of killing it: endpoints answer offline with 500s.
	eng := buildEngine(cfg, zlog)

	store, err := buildSessionStore(cfg)
	if err != nil {
		zlog.Fatalw("session store init failed", "backend", cfg.Session.Backend, "error", err)
	}
	defer store.Close()
	zlog.Infow("session store ready", "backend", cfg.Session.Backend)

	responder := handlers.NewResponder(explainerOrNil(eng), store, zlog)

	httpSrv := transport.NewHTTPServer(cfg, responder, eng, zlog)
	go func() {
		if err := httpSrv.Start(); err != nil {
			zlog.Fatalw("http server failed", "error", err)
		}
	}()

	if cfg.NATS.URL != "" {
		natsTransport, err := transport.NewNATSTransport(cfg.NATS, cfg.Service.Name, responder, zlog)
		if err != nil {
			zlog.Fatalw("NATS transport init failed", "error", err)
		}
		defer natsTransport.Close()

		if err := natsTransport.Start(); err != nil {
			zlog.Fatalw("NATS transport start failed", "error", err)
		}
	}

	zlog.Infow("ready", "port", cfg.Server.Port, "status", statusOf(eng))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	zlog.Infow("shutting down", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		zlog.Warnw("http shutdown", "error", err)
	}
}

// buildEngine returns nil when the provider or the sample cannot be set up;
// the service then runs in degraded (offline) mode.
func buildEngine(cfg *config.Config, zlog *zap.SugaredLogger) *engine.Engine {
	provider, err := llm.NewGroqProvider(cfg.Groq)
	if err != nil {
		zlog.Errorw("starting degraded: completion provider unavailable", "error", err)
		return nil
	}

	sample, err := dataset.NewProvider(cfg.Dataset, zlog).LoadOrCreateSample(cfg.Dataset.SampleSize)
	if err != nil {
		zlog.Errorw("starting degraded: few-shot sample unavailable", "error", err)
		return nil
	}

	return engine.New(provider, sample, cfg.Groq, zlog)
}

// explainerOrNil avoids handing the responder a typed nil: a nil *Engine
// wrapped in the interface would still report as online.
func explainerOrNil(eng *engine.Engine) handlers.Explainer {
	if eng == nil {
		return nil
	}
	return eng
}

func buildSessionStore(cfg *config.Config) (session.Store, error) {
	if strings.EqualFold(cfg.Session.Backend, "redis") {
		return session.NewRedisStore(cfg.Session.RedisURL, cfg.Session.TTL)
	}
	return session.NewMemoryStore(), nil
}

func statusOf(eng *engine.Engine) string {
	if eng == nil {
		return "offline"
	}
	return "online"
}
