package main

import (
	"context"
	"fmt"

	"github.com/clarity-app/backend/internal/config"
	"github.com/clarity-app/backend/internal/logger"
	"github.com/clarity-app/backend/internal/repository"
	"github.com/clarity-app/backend/internal/service"
	"github.com/clarity-app/backend/pkg/supabase"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run insight analysis for a single user",
	Long:  `Perform one analysis run for a user and print the generated insights. Useful for cron-style triggering.`,
	RunE:  runOnce,
}

var runUserID string

func init() {
	runCmd.Flags().StringVarP(&runUserID, "user", "u", "", "User ID to analyze (required)")
	runCmd.MarkFlagRequired("user")
}

func runOnce(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.SetDefault(logger.New(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: "text",
	}))

	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
	eventRepo := repository.NewEventRepository(supabaseClient, cfg.Analysis.PageSize)
	insightRepo := repository.NewInsightRepository(supabaseClient)
	insightsService := service.NewInsightsService(eventRepo, insightRepo, cfg.Analysis.WindowDays)

	result, err := insightsService.RunInsights(context.Background(), runUserID)
	if err != nil {
		return fmt.Errorf("insights run failed: %w", err)
	}

	fmt.Printf("analyzed %d events\n", result.EventsAnalyzed)
	for i, text := range result.Insights {
		fmt.Printf("%d. %s\n", i+1, text)
	}

	return nil
}
