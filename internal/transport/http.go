// Package transport exposes the bot over HTTP (gin) and, optionally, NATS.
package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bodhs/bodhs-bot/internal/config"
	"github.com/bodhs/bodhs-bot/internal/engine"
	"github.com/bodhs/bodhs-bot/internal/handlers"
	"github.com/bodhs/bodhs-bot/internal/models"
)

const anonymousUserID = "anon"

// HTTPServer serves the webhook, the direct explain endpoint and the
// status/health endpoints.
type HTTPServer struct {
	cfg       *config.Config
	responder *handlers.Responder
	engine    *engine.Engine // nil in degraded mode
	log       *zap.SugaredLogger
	srv       *http.Server
}

func NewHTTPServer(cfg *config.Config, responder *handlers.Responder, eng *engine.Engine, log *zap.SugaredLogger) *HTTPServer {
	s := &HTTPServer{
		cfg:       cfg,
		responder: responder,
		engine:    eng,
		log:       log,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestID(), accessLog(log), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.Origins(),
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.GET("/", s.handleHome)
	router.GET("/healthz", s.handleHome)
	router.GET("/stats", s.handleStats)
	router.POST("/webhook", s.handleWebhook)
	router.POST("/explain", s.handleExplain)

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

// Handler exposes the router, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.srv.Handler
}

// Start blocks serving requests until Shutdown.
func (s *HTTPServer) Start() error {
	s.log.Infow("http server listening", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *HTTPServer) status() string {
	if s.responder.Online() {
		return "online"
	}
	return "offline"
}

func (s *HTTPServer) handleHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     s.status(),
		"bot_name":   s.cfg.Service.BotName,
		"version":    s.cfg.Service.Version,
		"powered_by": "Groq AI + curated datasets",
		"datasets":   "dictionary.json + hinglish_upload_v1.json",
	})
}

func (s *HTTPServer) handleWebhook(c *gin.Context) {
	if !s.responder.Online() {
		c.JSON(http.StatusInternalServerError, handlers.OfflineResponse())
		return
	}

	// Tolerate empty or malformed bodies the way the widget sends them:
	// treat them as an empty message from an anonymous user.
	var req models.WebhookRequest
	_ = c.ShouldBindJSON(&req)

	userID := req.User.ID
	if userID == "" {
		userID = anonymousUserID
	}

	resp := s.responder.HandleMessage(c.Request.Context(), userID, req.Message.Text)
	c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) handleExplain(c *gin.Context) {
	if s.engine == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "BoDH-S offline"})
		return
	}

	var req models.ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	word := strings.TrimSpace(req.Word)
	if word == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word required"})
		return
	}

	result := s.engine.Explain(c.Request.Context(), word, models.ParseLanguage(req.Language))
	c.JSON(http.StatusOK, result)
}

func (s *HTTPServer) handleStats(c *gin.Context) {
	if s.engine == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "BoDH-S offline"})
		return
	}

	sample := s.engine.Sample()
	c.JSON(http.StatusOK, gin.H{
		"bot_name":          s.cfg.Service.BotName,
		"datasets":          sample.Metadata,
		"english_examples":  len(sample.English),
		"hinglish_examples": len(sample.Hinglish),
		"model":             s.engine.Model(),
	})
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func accessLog(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"request_id", c.GetString("request_id"),
		)
	}
}
