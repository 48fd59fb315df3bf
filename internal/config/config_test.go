package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_SERVICE_KEY", "service-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Env != "development" {
		t.Errorf("Server.Env = %q, want development", cfg.Server.Env)
	}
	if cfg.Analysis.WindowDays != 30 {
		t.Errorf("Analysis.WindowDays = %d, want 30", cfg.Analysis.WindowDays)
	}
	if cfg.Analysis.PageSize != 1000 {
		t.Errorf("Analysis.PageSize = %d, want 1000", cfg.Analysis.PageSize)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_SERVICE_KEY", "service-key")
	t.Setenv("PORT", "9090")
	t.Setenv("CLARITY_ANALYSIS_WINDOW_DAYS", "60")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Analysis.WindowDays != 60 {
		t.Errorf("Analysis.WindowDays = %d, want 60", cfg.Analysis.WindowDays)
	}
}

func TestLoad_MissingSupabaseConfig(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_SERVICE_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for missing supabase config")
	} else if !strings.Contains(err.Error(), "SUPABASE_URL") {
		t.Errorf("error = %v, want SUPABASE_URL mentioned", err)
	}
}

func TestValidate_BadAnalysisValues(t *testing.T) {
	cfg := &Config{
		Supabase: SupabaseConfig{URL: "https://x", ServiceKey: "k"},
		Analysis: AnalysisConfig{WindowDays: 0, PageSize: 100},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() expected error for zero window_days")
	}

	cfg.Analysis = AnalysisConfig{WindowDays: 30, PageSize: 0}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() expected error for zero page_size")
	}
}
