package server

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"career-backend/internal/catalog"
	"career-backend/internal/quiz"
	"career-backend/internal/recommend"
	"career-backend/internal/services/health"
	"career-backend/internal/shared/config"
	"career-backend/internal/shared/server/middleware"
	"career-backend/internal/shared/server/respond"
	"career-backend/internal/shared/storage/db"
	"career-backend/internal/shared/telemetry"
	"career-backend/internal/summarizer"
	"career-backend/internal/summarizer/gemini"
	"career-backend/internal/users"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		conn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			telemetry.Error("db connect failed, falling back to memory", map[string]any{"error": err.Error()})
		} else {
			if err := db.RunMigrations(context.Background(), conn); err != nil {
				telemetry.Error("db migrations failed, falling back to memory", map[string]any{"error": err.Error()})
				conn = nil
			}
		}
		sqlDB = conn
	}

	storageMode := "memory"
	var catalogRepo catalog.Repo
	var userRepo users.Repo
	if sqlDB != nil {
		catalogRepo = &catalog.PGRepo{DB: sqlDB}
		userRepo = &users.PGRepo{DB: sqlDB}
		storageMode = "postgres"
	} else {
		catalogRepo = catalog.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	var summarizerSvc recommend.Summarizer
	if cfg.GeminiAPIKey != "" {
		gen, err := gemini.NewGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			telemetry.Error("gemini init failed, summaries degraded", map[string]any{"error": err.Error()})
		} else {
			summarizerSvc = summarizer.NewService(gen)
		}
	}
	recSvc := recommend.NewService(catalogRepo, summarizerSvc)
	recSvc.SummarizerTimeout = cfg.SummarizerTimeout

	healthSvc := health.NewService(storageMode)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	catalog.NewHandler(catalogRepo).RegisterRoutes(api)
	recommend.NewHandler(recSvc).RegisterRoutes(api)
	quiz.NewHandler(quiz.NewService()).RegisterRoutes(api)
	users.NewHandler(users.NewService(userRepo)).RegisterRoutes(&r.RouterGroup)

	registerStatic(r, cfg.WebDir)

	return r
}

// registerStatic serves the bundled frontend when the directory exists.
func registerStatic(r *gin.Engine, dir string) {
	if dir == "" {
		return
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return
	}
	r.StaticFile("/", filepath.Join(dir, "index.html"))
	r.Static("/static", dir)
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
