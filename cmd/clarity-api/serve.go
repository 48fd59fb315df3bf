package main

import (
	"fmt"

	"github.com/clarity-app/backend/internal/config"
	"github.com/clarity-app/backend/internal/handlers"
	"github.com/clarity-app/backend/internal/logger"
	"github.com/clarity-app/backend/internal/middleware"
	"github.com/clarity-app/backend/internal/repository"
	"github.com/clarity-app/backend/internal/service"
	"github.com/clarity-app/backend/pkg/supabase"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for insight requests.`,
	RunE:  runServe,
}

var port string

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if port != "" {
		cfg.Server.Port = port
	}

	logger.SetDefault(logger.New(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	}))
	log := logger.Default()

	log.Info("starting clarity API server",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL))

	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	eventRepo := repository.NewEventRepository(supabaseClient, cfg.Analysis.PageSize)
	insightRepo := repository.NewInsightRepository(supabaseClient)

	insightsService := service.NewInsightsService(eventRepo, insightRepo, cfg.Analysis.WindowDays)

	insightsHandler := handlers.NewInsightsHandler(insightsService)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/insights/run", insightsHandler.RunInsights)
		v1.GET("/insights", insightsHandler.GetInsights)
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
