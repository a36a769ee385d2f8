package config

import (
	"testing"

	"ejecta/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseSeed != 0 {
		t.Errorf("default base seed = %d, want 0", cfg.BaseSeed)
	}
	if cfg.Parallelism != 1 {
		t.Errorf("default parallelism = %d, want 1", cfg.Parallelism)
	}
	if cfg.LegacyMode || cfg.LegacySecondSeed != nil {
		t.Error("legacy settings should default off")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("EJECTA_BASE_SEED", "23111963428")
	t.Setenv("EJECTA_PARALLELISM", "8")
	t.Setenv("EJECTA_LEGACY_MODE", "true")
	t.Setenv("EJECTA_LEGACY_SECOND_SEED", "1963")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseSeed != 23111963428 {
		t.Errorf("base seed = %d", cfg.BaseSeed)
	}
	if cfg.Parallelism != 8 {
		t.Errorf("parallelism = %d", cfg.Parallelism)
	}
	if !cfg.LegacyMode {
		t.Error("legacy mode should be on")
	}
	if cfg.LegacySecondSeed == nil || *cfg.LegacySecondSeed != 1963 {
		t.Errorf("legacy second seed = %v", cfg.LegacySecondSeed)
	}
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{"bad base seed", "EJECTA_BASE_SEED", "not-a-seed"},
		{"zero parallelism", "EJECTA_PARALLELISM", "0"},
		{"bad legacy seed", "EJECTA_LEGACY_SECOND_SEED", "3.14"},
		{"bad legacy flag", "EJECTA_LEGACY_MODE", "maybe"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if tc.key == "EJECTA_LEGACY_SECOND_SEED" {
				t.Setenv("EJECTA_LEGACY_MODE", "true")
			}
			_, err := Load()
			if err == nil {
				t.Fatal("expected configuration error")
			}
			if !errors.HasCode(err, errors.CodeInvalidConfig) {
				t.Errorf("expected %s, got %v", errors.CodeInvalidConfig, err)
			}
		})
	}
}

func TestValidate_LegacySeedRequiresLegacyMode(t *testing.T) {
	seed := uint64(1963)
	cfg := &Config{Parallelism: 1, LegacySecondSeed: &seed}
	if err := cfg.Validate(); err == nil {
		t.Error("legacy second seed without legacy mode should not validate")
	}
}

func TestApply_TogglesLegacyMode(t *testing.T) {
	t.Cleanup(func() { SetLegacyMode(false) })

	cfg := &Config{Parallelism: 1, LegacyMode: true}
	cfg.Apply()
	if !LegacyModeEnabled {
		t.Error("Apply should enable legacy mode")
	}

	SetLegacyMode(false)
	if LegacyModeEnabled {
		t.Error("SetLegacyMode(false) should disable legacy mode")
	}
}
