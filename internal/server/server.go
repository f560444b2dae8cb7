package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"github.com/farellandr/resultboard/config"
	"github.com/farellandr/resultboard/docs"
	"github.com/farellandr/resultboard/internal/handlers"
	"github.com/farellandr/resultboard/internal/middleware"
	"github.com/farellandr/resultboard/internal/pdf"
	"github.com/farellandr/resultboard/internal/services"
	"github.com/farellandr/resultboard/internal/store"
)

const metricsPath = "/api/metrics"

type Options struct {
	Provider      store.Provider
	Renderer      services.Renderer
	Log           *zap.Logger
	CORSOrigins   []string
	ErrorDetail   bool
	EnableMetrics bool
}

func NewRouter(opts Options) *gin.Engine {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(
		middleware.ErrorDetail(opts.ErrorDetail),
		middleware.Recovery(log),
		middleware.RequestLogger(log, metricsPath),
	)
	setCors(r, opts.CORSOrigins)
	if opts.EnableMetrics {
		addMetrics(r)
	}
	addDocs(r)

	setupRoutes(r, opts, log)
	return r
}

func setupRoutes(r *gin.Engine, opts Options, log *zap.Logger) {
	categoryHandler := handlers.NewCategoryHandler(services.NewCategoryService(opts.Provider))
	resultHandler := handlers.NewResultHandler(services.NewResultService(opts.Provider, opts.Renderer, log), log)
	healthHandler := handlers.NewHealthHandler(opts.Provider)

	api := r.Group("/api")
	api.GET("/health", healthHandler.Health)

	data := api.Group("")
	data.Use(middleware.DatabaseMiddleware(opts.Provider, log))
	{
		categories := data.Group("/categories")
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.POST("", categoryHandler.CreateCategory)
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.PUT("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		results := data.Group("/results")
		{
			results.GET("", resultHandler.ListResults)
			results.POST("", resultHandler.CreateResult)
			results.GET("/:id", resultHandler.GetResult)
			results.PUT("/:id", resultHandler.UpdateResult)
			results.DELETE("/:id", resultHandler.DeleteResult)
			results.GET("/:id/pdf", resultHandler.ExportResultPDF)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		if c.Request.URL.Path == "/api" || strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}

func setCors(r *gin.Engine, origins []string) {
	corsConfig := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))
}

func addMetrics(r *gin.Engine) {
	p := ginprometheus.NewPrometheus("gin")
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		if route := c.FullPath(); route != "" {
			return strings.TrimPrefix(route, "/api")
		}
		return "unmatched"
	}
	p.MetricsPath = metricsPath
	p.Use(r)
}

func addDocs(r *gin.Engine) {
	docs.SwaggerInfo.BasePath = "/api"
	r.GET("/api/docs/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

// Start serves the API until SIGINT or SIGTERM, then drains in-flight
// requests and closes the store.
func Start(cfg *config.Config, log *zap.Logger) error {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDatabase(cfg, log)
	if err != nil {
		return err
	}

	r := NewRouter(Options{
		Provider:      db,
		Renderer:      pdf.NewRenderer(cfg.PublicBaseURL),
		Log:           log,
		CORSOrigins:   cfg.CORSOrigins,
		ErrorDetail:   cfg.IsDevelopment(),
		EnableMetrics: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down server", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	if err := db.Close(ctx); err != nil {
		log.Warn("closing store", zap.Error(err))
	}
	log.Info("server stopped")
	return nil
}
