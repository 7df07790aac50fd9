// Package http exposes the REST API: river snapshots, weather and AQI
// proxies, article CRUD, and the auth/upload stubs.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/rivervalleyreport/backend/config"
	"github.com/rivervalleyreport/backend/db"
	"github.com/rivervalleyreport/backend/river"
	"github.com/rivervalleyreport/backend/weather"
)

// RiverService provides station snapshots.
type RiverService interface {
	StationSnapshot(ctx context.Context, site string) (river.Snapshot, error)
}

// WeatherService provides current conditions and air quality reports.
type WeatherService interface {
	AirQuality(ctx context.Context, lat, lon float64) (weather.AirQualityReport, error)
	CurrentConditions(ctx context.Context, lat, lon float64) (weather.ConditionsReport, error)
}

// ArticleStore is the persistence surface the article handlers use.
type ArticleStore interface {
	ListArticles(ctx context.Context, onlyPublished bool) ([]db.Article, error)
	GetArticle(ctx context.Context, id string) (db.Article, error)
	CreateArticle(ctx context.Context, in db.NewArticle) (db.Article, error)
	UpdateArticle(ctx context.Context, id string, patch db.ArticlePatch) (db.Article, error)
	DeleteArticle(ctx context.Context, id string) error
}

// SessionStore persists the session rows behind the session cookie.
type SessionStore interface {
	GetSession(ctx context.Context, sid string) (db.Session, error)
	TouchSession(ctx context.Context, sid string, expiresAt time.Time) error
}

// Server bundles router and dependencies for the REST API.
type Server struct {
	cfg      config.Config
	rivers   RiverService
	forecast WeatherService
	articles ArticleStore
	sessions SessionStore
	logger   *zap.Logger
	engine   *gin.Engine
}

// New constructs a server with routes and middleware.
func New(cfg config.Config, rivers RiverService, forecast WeatherService, articles ArticleStore, sessions SessionStore, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogMiddleware(logger))
	engine.Use(corsMiddleware())

	server := &Server{
		cfg:      cfg,
		rivers:   rivers,
		forecast: forecast,
		articles: articles,
		sessions: sessions,
		logger:   logger,
		engine:   engine,
	}
	server.registerRoutes()
	return server
}

// Engine exposes the underlying gin engine (for tests).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.ListenAddr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.engine.Group("/api")
	api.Use(s.sessionMiddleware())
	{
		api.GET("/river-data", s.handleRiverData)
		api.GET("/weather", s.handleWeather)
		api.GET("/aqi", s.handleAQI)

		articles := api.Group("/articles")
		{
			articles.GET("", s.handleListArticles)
			articles.GET("/all", s.handleListAllArticles)
			articles.GET("/:id", s.handleGetArticle)
			articles.POST("", s.handleCreateArticle)
			articles.PATCH("/:id", s.handleUpdateArticle)
			articles.DELETE("/:id", s.handleDeleteArticle)
		}

		api.GET("/auth", s.handleAuthStub)
		api.POST("/uploads", s.handleUploadStub)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func requestLogMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(began)),
		)
	}
}
