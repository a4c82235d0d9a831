package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/CampusPayServices/fee-slot-booking/internal/config"
	domain "github.com/CampusPayServices/fee-slot-booking/internal/domain/booking"
	"github.com/CampusPayServices/fee-slot-booking/internal/infra/store"
	"github.com/CampusPayServices/fee-slot-booking/internal/logger"
	"github.com/CampusPayServices/fee-slot-booking/internal/middleware"
	"github.com/CampusPayServices/fee-slot-booking/internal/routes"
	"github.com/CampusPayServices/fee-slot-booking/internal/timezone"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	zlog := logger.New(cfg.Env)
	defer zlog.Sync()

	loc := timezone.Location(cfg.Timezone)

	endDate, err := time.ParseInLocation(domain.DateLayout, cfg.EndDate, loc)
	if err != nil {
		log.Fatalf("invalid END_DATE %q: %v", cfg.EndDate, err)
	}

	catalogs := domain.NewCatalogCache(endDate, loc)

	var sessions domain.SessionStore
	switch cfg.SessionStore {
	case "redis":
		client, err := store.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		sessions = store.NewRedisSessionStore(client, cfg.SessionTTL)
	default:
		sessions = store.NewMemorySessionStore(cfg.SessionTTL)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, sessions, catalogs, cfg, zlog)

	zlog.Info("server running",
		zap.String("addr", cfg.Addr()),
		zap.String("session_store", cfg.SessionStore),
		zap.String("end_date", cfg.EndDate),
	)
	if err := r.Run(cfg.Addr()); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
