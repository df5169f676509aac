package config

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", "config.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Currency != "USD" {
		t.Fatalf("expected default currency USD, got %s", cfg.Defaults.Currency)
	}
	if cfg.Invoice.NumberPrefix != "INV" || cfg.Invoice.DueDays != 30 {
		t.Fatalf("unexpected invoice defaults: %+v", cfg.Invoice)
	}
	if cfg.Storage.Dir == "" {
		t.Fatalf("expected a default storage dir")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Defaults.Currency = "EUR"
	cfg.Defaults.HourlyRate = 85
	cfg.Invoice.NumberPrefix = "ZT"
	cfg.Invoice.TaxRate = 19

	if err := cfg.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Defaults.Currency != "EUR" || got.Defaults.HourlyRate != 85 {
		t.Fatalf("defaults lost in round trip: %+v", got.Defaults)
	}
	if got.Invoice.NumberPrefix != "ZT" || got.Invoice.TaxRate != 19 {
		t.Fatalf("invoice settings lost in round trip: %+v", got.Invoice)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Invoice.NumberPrefix = "ZT"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Invoice.DueDays != 30 {
		t.Fatalf("expected untouched settings to keep defaults, got %d", got.Invoice.DueDays)
	}
}
