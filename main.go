package main

import (
	"familypoints-backend/config"
	"familypoints-backend/internal/api"
	"familypoints-backend/internal/database"
	"familypoints-backend/internal/jobs"
	"familypoints-backend/internal/models"
	"familypoints-backend/pkg/logger"
	"log"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSizeMB:  cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	err = database.DB.AutoMigrate(
		&models.PointsAccount{},
		&models.PointTransaction{},
		&models.CatalogItem{},
		&models.BankAccount{},
		&models.BankTransaction{},
		&models.FinancialProduct{},
		&models.Investment{},
		&models.DailyBonus{},
		&models.WheelOfFortune{},
		&models.AdminPassword{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if cfg.EnableScheduler {
		scheduler := jobs.New()
		scheduler.Start()
		defer scheduler.Stop()
	}

	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
