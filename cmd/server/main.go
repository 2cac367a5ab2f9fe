package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/papparazzi76/casa-con-avatar-3d-sub000/config"
	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/api"
	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/comparables"
	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/database"
	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/geocoding"
	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/processor"
	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/queue"
	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/valuation"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Get the current working directory
	currentDir, err := os.Getwd()
	if err != nil {
		logger.WithError(err).Fatal("Failed to get current directory")
	}

	// Construct database path relative to the server directory
	dbPath := filepath.Join(currentDir, "database", "anuncios.db")
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		logger.WithError(err).Fatal("Failed to create database directory")
	}
	logger.Infof("Using database at: %s", dbPath)

	// Initialize database
	db, err := database.NewDatabase(dbPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	// Run database migrations
	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	// Open the gorm handle for the ingest path
	gormDB, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		logger.WithError(err).Fatal("Failed to open gorm database")
	}

	// Initialize the listing ingest pipeline
	ingestQueue := queue.NewListingQueue(cfg.BatchProcessing.MaxBatchSize, logger)
	batchProcessor := processor.NewBatchProcessor(gormDB, ingestQueue, cfg, logger)
	batchProcessor.Start()
	ingestQueue.Start()
	defer func() {
		ingestQueue.Close()
		batchProcessor.Stop()
	}()

	// Initialize geocoder
	cacheDir := filepath.Join(os.TempDir(), "casa-con-avatar", "geocode_cache")
	geocoder := geocoding.NewGeocoder(logger, cacheDir)

	// Initialize the valuation pipeline
	if cfg.OpenAI.APIKey == "" {
		logger.Warn("OPENAI_API_KEY is not set; every valuation will use the deterministic fallback")
	}
	generator := comparables.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
	strategy := valuation.NewLLMStrategy(
		cfg.OpenAI.BaseURL,
		cfg.OpenAI.Model,
		cfg.OpenAI.APIKey,
		valuation.WithTimeout(time.Duration(cfg.OpenAI.Timeout)*time.Second),
	)
	valuator := valuation.NewValuator(cfg, logger, generator, strategy, db, geocoder)

	// Initialize handler and router
	handler := api.NewHandler(db, valuator, ingestQueue, logger)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
	}))

	api.SetupRoutes(router, handler)

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
