package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/engine"
	"jobtrack-backend/internal/llm"
	"jobtrack-backend/internal/llm/openai"
	"jobtrack-backend/internal/messages"
	"jobtrack-backend/internal/records"
	"jobtrack-backend/internal/shared/config"
	"jobtrack-backend/internal/shared/metrics"
	"jobtrack-backend/internal/shared/server/middleware"
	"jobtrack-backend/internal/shared/server/respond"
	"jobtrack-backend/internal/shared/storage/db"
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
		middleware.Auth(cfg.Env),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var repo records.Repo
	if sqlDB != nil {
		repo = &records.PGRepo{DB: sqlDB}
	} else {
		repo = records.NewMemoryRepo()
	}
	recordsHandler := records.NewHandler(repo)

	var generator llm.Client
	if cfg.LLMProvider == "openai" {
		client, err := openai.NewClient(openAIKey(), cfg.LLMModel)
		if err != nil {
			log.Printf("text generation disabled: %v", err)
		} else {
			generator = llm.NewRetrying(client)
		}
	}

	renderer := messages.NewRenderer(generator, messages.NewCache(cfg.MessageCacheTTL, nil), nil)
	engineSvc := engine.NewService(repo, renderer, nil)
	engineHandler := engine.NewHandler(engineSvc)

	api := r.Group("/api/v1")
	// Chat questions can trigger generation calls; keep them paced per user.
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"CHAT": {Rate: 0.5, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			if strings.HasPrefix(c.Request.URL.Path, "/api/v1/chat/") {
				return "CHAT"
			}
			return ""
		},
	}))
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	registerMeRoutes(api)
	recordsHandler.RegisterRoutes(api)
	engineHandler.RegisterRoutes(api)

	return r
}

func openAIKey() string {
	return os.Getenv("OPENAI_API_KEY")
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
