package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "markovgen.json")

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if *config != *DefaultConfig() {
		t.Errorf("expected default config, got %+v", config)
	}

	// The defaults were written out and survive a round trip.
	config.Order = 3
	config.Count = 5
	if err = SaveConfig(path, config); err != nil {
		t.Fatalf("SaveConfig() failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() after save failed: %v", err)
	}
	if *loaded != *config {
		t.Errorf("expected %+v after round trip, got %+v", config, loaded)
	}
}

func TestLoadConfigFillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"order": 4}`), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config.Order != 4 {
		t.Errorf("expected order 4, got %d", config.Order)
	}
	if config.MaxLength != DefaultConfig().MaxLength {
		t.Errorf("expected default max length, got %d", config.MaxLength)
	}
}
