package configs

import "testing"

func setRequiredEnv(t *testing.T) {
	t.Setenv("DBUSER", "sa")
	t.Setenv("DBPASS", "p@ss:w/rd")
	t.Setenv("DBHOST", "172.16.16.100")
	t.Setenv("DBNAME", "inventorydb")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.DB.Port != "1433" {
		t.Fatalf("DB.Port=%q want 1433", cfg.DB.Port)
	}
	if cfg.Server.Port != "5000" {
		t.Fatalf("Server.Port=%q want 5000", cfg.Server.Port)
	}
	if cfg.IsDebug() {
		t.Fatalf("IsDebug()=true for default APP_ENV")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DBPORT", "14330")
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "dev")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.DB.Port != "14330" || cfg.Server.Port != "8080" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if !cfg.IsDebug() {
		t.Fatalf("IsDebug()=false for APP_ENV=dev")
	}
}

func TestLoadConfigMissingRequired(t *testing.T) {
	t.Setenv("DBUSER", "sa")
	// DBPASS, DBHOST, DBNAME deliberately unset

	if _, err := loadConfig(); err == nil {
		t.Fatalf("expected error for missing required variables")
	}
}
