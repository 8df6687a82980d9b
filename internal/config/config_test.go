package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PUBLIC_DATA_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Upstream.APIKey != "test-key" {
		t.Errorf("Expected APIKey test-key, got %s", cfg.Upstream.APIKey)
	}
	if cfg.Upstream.Source != "seoul" {
		t.Errorf("Expected default source seoul, got %s", cfg.Upstream.Source)
	}
	if cfg.Upstream.Timeout != 8*time.Second {
		t.Errorf("Expected default upstream timeout 8s, got %v", cfg.Upstream.Timeout)
	}
	if cfg.Districts.Timeout != 25*time.Second {
		t.Errorf("Expected default district timeout 25s, got %v", cfg.Districts.Timeout)
	}
	if cfg.Listing.MaxPageSize != 3000 {
		t.Errorf("Expected default MaxPageSize 3000, got %d", cfg.Listing.MaxPageSize)
	}
	if cfg.Listing.DefaultStartIdx != 1 || cfg.Listing.DefaultEndIdx != 100 {
		t.Errorf("Expected default page 1..100, got %d..%d", cfg.Listing.DefaultStartIdx, cfg.Listing.DefaultEndIdx)
	}
	if cfg.Listing.DistrictMatch != DistrictMatchLot {
		t.Errorf("Expected default district match %q, got %q", DistrictMatchLot, cfg.Listing.DistrictMatch)
	}
	if cfg.Auth.Secret != "" {
		t.Errorf("Expected auth to be disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MAX_PAGE_SIZE", "10000")
	t.Setenv("DEFAULT_END_IDX", "1000")
	t.Setenv("UPSTREAM_TIMEOUT", "12s")
	t.Setenv("DISTRICT_MATCH", DistrictMatchLotOrRoad)
	t.Setenv("SEOUL_API_BASE_URL", "http://localhost:9999/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Listing.MaxPageSize != 10000 {
		t.Errorf("Expected MaxPageSize 10000, got %d", cfg.Listing.MaxPageSize)
	}
	if cfg.Listing.DefaultEndIdx != 1000 {
		t.Errorf("Expected DefaultEndIdx 1000, got %d", cfg.Listing.DefaultEndIdx)
	}
	if cfg.Upstream.Timeout != 12*time.Second {
		t.Errorf("Expected upstream timeout 12s, got %v", cfg.Upstream.Timeout)
	}
	if cfg.Listing.DistrictMatch != DistrictMatchLotOrRoad {
		t.Errorf("Expected district match %q, got %q", DistrictMatchLotOrRoad, cfg.Listing.DistrictMatch)
	}
	if cfg.Upstream.SeoulBaseURL != "http://localhost:9999" {
		t.Errorf("Expected trailing slash to be trimmed, got %s", cfg.Upstream.SeoulBaseURL)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Upstream: UpstreamConfig{Timeout: 8 * time.Second},
			Listing: ListingConfig{
				MaxPageSize:     3000,
				DefaultStartIdx: 1,
				DefaultEndIdx:   100,
				DistrictMatch:   DistrictMatchLot,
			},
			Districts: DistrictConfig{SampleSize: 3000, Timeout: 25 * time.Second},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "zero max page size", mutate: func(c *Config) { c.Listing.MaxPageSize = 0 }, wantErr: true},
		{name: "start index zero", mutate: func(c *Config) { c.Listing.DefaultStartIdx = 0 }, wantErr: true},
		{name: "end before start", mutate: func(c *Config) { c.Listing.DefaultEndIdx = 0 }, wantErr: true},
		{name: "unknown district match", mutate: func(c *Config) { c.Listing.DistrictMatch = "road" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.Upstream.Timeout = 0 }, wantErr: true},
		{name: "zero sample size", mutate: func(c *Config) { c.Districts.SampleSize = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAdaptForLambda(t *testing.T) {
	cfg := &Config{
		Upstream:  UpstreamConfig{Timeout: 8 * time.Second},
		Districts: DistrictConfig{Timeout: 25 * time.Second},
		Logging:   LoggingConfig{Format: "text"},
	}

	adapted := adaptForLambda(cfg, 10)

	if adapted.Logging.Format != "json" {
		t.Errorf("Expected json log format in Lambda, got %s", adapted.Logging.Format)
	}
	if adapted.Upstream.Timeout != 8*time.Second {
		t.Errorf("Upstream timeout within budget should be unchanged, got %v", adapted.Upstream.Timeout)
	}
	if adapted.Districts.Timeout != 9*time.Second {
		t.Errorf("Expected district timeout capped to 9s, got %v", adapted.Districts.Timeout)
	}
}

func TestAdaptConfigForServerlessOutsideLambda(t *testing.T) {
	if IsServerlessMode() {
		t.Skip("running inside Lambda")
	}

	cfg := &Config{
		Upstream: UpstreamConfig{Timeout: 60 * time.Second},
		Logging:  LoggingConfig{Format: "text"},
	}

	adapted := AdaptConfigForServerless(cfg)

	if adapted.Logging.Format != "text" || adapted.Upstream.Timeout != 60*time.Second {
		t.Errorf("Expected config unchanged outside Lambda, got %+v", adapted)
	}
	if FunctionName() != "" {
		t.Errorf("Expected no function name outside Lambda, got %q", FunctionName())
	}
	if GetDeploymentMode() != ModeServer {
		t.Errorf("Expected %s mode, got %s", ModeServer, GetDeploymentMode())
	}
}

func TestDeploymentMode(t *testing.T) {
	if got := deploymentMode(true); got != ModeServerless {
		t.Errorf("deploymentMode(true) = %s", got)
	}
	if got := deploymentMode(false); got != ModeServer {
		t.Errorf("deploymentMode(false) = %s", got)
	}
}
