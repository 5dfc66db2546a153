package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sajid-inmogr/admin-backend/internal/auth"
	"github.com/sajid-inmogr/admin-backend/internal/config"
	"github.com/sajid-inmogr/admin-backend/internal/handler"
	"github.com/sajid-inmogr/admin-backend/internal/repository"
	"github.com/sajid-inmogr/admin-backend/internal/service"
)

type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	log        *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger) (*Server, error) {
	db, err := repository.Open(cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	storage, err := repository.NewS3Storage(&cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage: %w", err)
	}

	uploads := service.NewUploadService(storage, cfg, log)
	h := handler.New(db, uploads, log)

	router := NewRouter(h, cfg.Auth.JWTSecret, log)

	server := &Server{
		httpServer: &http.Server{
			Addr:           cfg.Server.Host + ":" + cfg.Server.Port,
			Handler:        router,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1 MB
		},
		cfg: cfg,
		log: log,
	}

	log.Info("Server created",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port))

	return server, nil
}

// NewRouter mounts the HTTP surface. Read routes are open; every
// mutating route sits behind the authorization gate.
func NewRouter(h *handler.Handler, jwtSecret string, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", h.HealthCheck)

	gate := auth.Middleware(jwtSecret, log)

	announcements := router.Group("/announcements")
	{
		announcements.GET("", h.GetAllAnnouncements)
		announcements.GET("/:id", h.GetAnnouncementByID)
		announcements.POST("", gate, h.CreateAnnouncement)
		announcements.PUT("/:id", gate, h.UpdateAnnouncementByID)
		announcements.DELETE("/:id", gate, h.DeleteAnnouncementByID)
	}

	clients := router.Group("/clients")
	{
		clients.GET("", h.GetAllClients)
		clients.GET("/:id", h.GetClientByID)
		clients.POST("", gate, h.CreateClient)
		clients.PUT("/:id", gate, h.UpdateClientByID)
		clients.DELETE("/:id", gate, h.DeleteClientByID)
		clients.GET("/:id/products", h.GetClientProducts)
		clients.POST("/:id/products", gate, h.UpdateClientProducts)
	}

	return router
}

func (s *Server) Run() error {
	s.log.Info("Server is running",
		zap.String("address", s.httpServer.Addr))

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down server")
	return s.httpServer.Shutdown(ctx)
}
