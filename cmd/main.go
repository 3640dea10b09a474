package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"opportunity-finder/domain"
	"opportunity-finder/infrastructure"
	"opportunity-finder/interfaces"
)

func main() {
	// Load .env
	_ = godotenv.Load()

	// Pick the storage backend: MySQL when DB_DSN is set, otherwise
	// the in-memory store.
	var store domain.Storage
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		store = infrastructure.NewMySQLStore(dsn)
	} else {
		store = infrastructure.NewMemoryStore()
		log.Println("✅ Using in-memory storage")
	}

	if err := infrastructure.SeedOpportunities(store); err != nil {
		log.Fatalf("failed to seed opportunities: %v", err)
	}

	// Optional event broker
	var events *infrastructure.RabbitMQ
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		events = infrastructure.NewRabbitMQ(url)
		defer events.Close()
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "opportunity-finder-dev-secret"
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Setup Gin router
	router := gin.Default()
	router.Use(sessions.Sessions("opportunity_session", cookie.NewStore([]byte(sessionSecret))))
	router.Use(interfaces.RequestLogger(logger))
	router.Use(interfaces.MetricsMiddleware())
	interfaces.RegisterMetricsRoute(router)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	interfaces.NewHTTPHandler(router, store, infrastructure.NewStaticPassword(adminPassword), events)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Server running on http://localhost:%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
