package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
	"golang.org/x/time/rate"

	"github.com/AlexanderBiba/wordle/internal/daily"
	"github.com/AlexanderBiba/wordle/internal/docstore"
)

// App bundles the server's configuration and collaborators.
type App struct {
	Config         Config
	Store          docstore.Store
	StoreKind      string
	Selector       *daily.Selector
	Answers        []string
	DictionarySize int
	StartTime      time.Time
	LimiterMap     map[string]*rate.Limiter
	LimiterMutex   sync.Mutex
}

func main() {
	_ = godotenv.Load()

	cfg := loadConfig()
	logInfo("Starting word server in %s mode", map[bool]string{true: "production", false: "development"}[cfg.IsProduction])

	ctx := context.Background()
	store, storeKind := openStore(ctx, cfg)
	logInfo("Using %s document store", storeKind)

	answers, dictSize, err := seedDictionary(ctx, store)
	if err != nil {
		logFatal("Failed to load word lists: %v", err)
	}
	logInfo("Loaded %d answers, seeded %d dictionary words", len(answers), dictSize)

	app := &App{
		Config:         cfg,
		Store:          store,
		StoreKind:      storeKind,
		Selector:       daily.NewSelector(store, answers),
		Answers:        answers,
		DictionarySize: dictSize,
		StartTime:      time.Now(),
		LimiterMap:     make(map[string]*rate.Limiter),
	}

	startServer(app.setupRouter(), cfg.Port)
}

// openStore connects to Redis when configured, falling back to the
// in-memory store for single-process development. The in-memory store does
// not survive restarts, so deployments must set REDIS_ADDR.
func openStore(ctx context.Context, cfg Config) (docstore.Store, string) {
	if cfg.RedisAddr == "" {
		logWarn("REDIS_ADDR not set, daily words will not survive a restart")
		return docstore.NewMemoryStore(), "memory"
	}
	store, err := docstore.DialRedis(ctx, cfg.RedisAddr)
	if err != nil {
		logFatal("Failed to connect to redis at %s: %v", cfg.RedisAddr, err)
	}
	return store, "redis"
}

func (app *App) setupRouter() *gin.Engine {
	if app.Config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))
	router.Use(requestIDMiddleware())
	router.Use(app.corsMiddleware())
	// Scores change at UTC midnight and per guess, never cache them.
	router.Use(cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	}))

	router.GET(RouteRouter, app.rateLimitMiddleware(), app.routerHandler)
	router.GET(RouteHealth, app.healthzHandler)
	return router
}

func startServer(router *gin.Engine, port string) {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
