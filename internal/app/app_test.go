package app

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/five82/kiosk/internal/config"
)

func TestApplyOverrides(t *testing.T) {
	cfg := config.Config{BaseURL: "https://fakestoreapi.com", StartPath: "/"}

	applyOverrides(&cfg, Options{})
	if cfg.BaseURL != "https://fakestoreapi.com" || cfg.StartPath != "/" {
		t.Fatalf("empty overrides changed config: %+v", cfg)
	}

	applyOverrides(&cfg, Options{BaseURL: " http://localhost:8089 ", StartPath: "/product/2"})
	if cfg.BaseURL != "http://localhost:8089" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.StartPath != "/product/2" {
		t.Fatalf("StartPath = %q", cfg.StartPath)
	}
}

func TestSetupLoggingWritesToFile(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	path := filepath.Join(t.TempDir(), "state", "kiosk.log")
	closeLog, err := setupLogging(config.Config{LogFile: path})
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	log.Printf("hello from test")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("log file is empty")
	}
}

func TestSetupLoggingDisabled(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	closeLog, err := setupLogging(config.Config{})
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	defer closeLog()
	if log.Writer() != io.Discard {
		t.Fatalf("log writer = %T, want io.Discard", log.Writer())
	}
}
