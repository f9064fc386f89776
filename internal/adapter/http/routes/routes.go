package routes

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "pannel_pintura/docs"
	"pannel_pintura/internal/adapter/http/handlers"
	"pannel_pintura/internal/adapter/persistence/repository"
	"pannel_pintura/internal/config"
	"pannel_pintura/internal/infrastructure/database"
	"pannel_pintura/internal/infrastructure/export"
	"pannel_pintura/internal/logger"
	"pannel_pintura/internal/middleware"
	"pannel_pintura/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the use cases served by the router.
type Dependencies struct {
	Quotes          usecase.IQuoteUseCase
	ContactRequests usecase.IContactRequestUseCase
}

const shutdownTimeout = 15 * time.Second

// Run wires the service from cfg and serves HTTP until ctx is cancelled, then
// drains in-flight requests.
func Run(ctx context.Context, cfg *config.Config) error {
	deps, err := buildDependencies(ctx, cfg)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(cfg, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}

	logger.Global().Info().Str("port", cfg.Port).Msg("starting http server")
	return serve(ctx, srv, ln, shutdownTimeout)
}

func serve(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Global().Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

func buildDependencies(ctx context.Context, cfg *config.Config) (Dependencies, error) {
	table, err := cfg.LoadRateTable()
	if err != nil {
		return Dependencies{}, fmt.Errorf("load rate table: %w", err)
	}
	quotes, err := usecase.NewQuoteUseCase(table, cfg.WhatsAppHost, cfg.WhatsAppNumber)
	if err != nil {
		return Dependencies{}, err
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return Dependencies{}, err
	}
	if cfg.DynamoDBEndpoint != "" {
		created, err := database.EnsureTable(ctx, ddb, cfg.ContactRequestsTable)
		if err != nil {
			return Dependencies{}, fmt.Errorf("ensure table %s: %w", cfg.ContactRequestsTable, err)
		}
		if created {
			logger.Global().Info().Str("table", cfg.ContactRequestsTable).Msg("created local dynamodb table")
		}
	}

	contactRepo := repository.NewContactRequestDynamoRepository(ddb, cfg.ContactRequestsTable)
	contacts := usecase.NewContactRequestUseCase(contactRepo, &export.ContactRequestXLSXExporter{})

	return Dependencies{Quotes: quotes, ContactRequests: contacts}, nil
}

// NewRouter builds the gin engine with middlewares and every route.
func NewRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	quoteHandler := handlers.NewQuoteHandler(deps.Quotes)
	contactHandler := handlers.NewContactRequestHandler(deps.ContactRequests)
	limiter := middleware.NewRateLimiter(cfg.ContactRateLimitPerMinute, max(1, cfg.ContactRateLimitPerMinute/6))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
	addContactRequestRoutes(v1, contactHandler, limiter.Middleware(), middleware.AdminAuth(cfg.AdminToken))

	if cfg.StaticDir != "" {
		router.NoRoute(staticSite(cfg.StaticDir))
	}
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.FromGin(c).Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

// staticSite serves the built front-end, falling back to index.html so
// client-side routes resolve. Unknown /v1 paths still 404.
func staticSite(dir string) gin.HandlerFunc {
	fs := http.FileServer(http.Dir(dir))
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}
		if strings.HasPrefix(c.Request.URL.Path, "/v1/") {
			c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "message": "Not found"})
			return
		}
		p := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+c.Request.URL.Path)))
		if !fileExists(p) && !fileExists(filepath.Join(p, "index.html")) {
			c.File(filepath.Join(dir, "index.html"))
			return
		}
		fs.ServeHTTP(c.Writer, c.Request)
	}
}

func fileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && !st.IsDir()
}
