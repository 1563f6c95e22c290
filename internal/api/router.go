package api

import (
	"familypoints-backend/config"
	"familypoints-backend/internal/api/v1/bank"
	"familypoints-backend/internal/api/v1/bonus"
	"familypoints-backend/internal/api/v1/catalog"
	"familypoints-backend/internal/api/v1/exchange"
	"familypoints-backend/internal/api/v1/health"
	"familypoints-backend/internal/api/v1/investments"
	"familypoints-backend/internal/api/v1/password"
	"familypoints-backend/internal/api/v1/points"
	"familypoints-backend/internal/api/v1/wheel"
	"familypoints-backend/internal/database"
	"familypoints-backend/internal/middleware"
	"familypoints-backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	_, err = database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	// The cache is optional; everything works against the database alone.
	if cfg.RedisAddr != "" {
		if err := database.ConnectRedis(cfg); err != nil {
			logger.Log.Warn("redis unavailable, running without cache", zap.Error(err))
			database.RedisClient = nil
		}
	}

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	adminGuard := middleware.AdminAuth(cfg.AdminTokenRequired)

	apiGroup := router.Group("/api")
	{
		points.RegisterRoutes(apiGroup, adminGuard)
		catalog.RegisterRoutes(apiGroup, adminGuard)
		exchange.RegisterRoutes(apiGroup)
		bank.RegisterRoutes(apiGroup, adminGuard)
		investments.RegisterRoutes(apiGroup, adminGuard)
		bonus.RegisterRoutes(apiGroup)
		wheel.RegisterRoutes(apiGroup, adminGuard)
		password.RegisterRoutes(apiGroup)
		health.RegisterRoutes(apiGroup)
	}

	return router, nil
}
