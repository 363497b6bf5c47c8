package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/image-converter/internal/model"
)

func testConfig() *Config {
	return &Config{
		Endpoint:       "http://127.0.0.1:8080/convert_image",
		RequestTimeout: 30 * time.Second,
		MaxUploadSize:  1024,
		DefaultFormat:  model.FormatJPEG,
	}
}

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, nil)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
	if settings.cfg == nil || settings.cfg.Endpoint != DefaultEndpoint {
		t.Error("Nil config should fall back to defaults")
	}
}

func TestEndpoint(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, testConfig())

	// Falls back to config
	if endpoint := settings.GetEndpoint(); endpoint != "http://127.0.0.1:8080/convert_image" {
		t.Errorf("Expected config endpoint, got %s", endpoint)
	}

	// Custom value
	custom := "https://img.example.com/convert_image"
	if err := settings.SetEndpoint(custom); err != nil {
		t.Fatalf("SetEndpoint failed: %v", err)
	}
	if endpoint := settings.GetEndpoint(); endpoint != custom {
		t.Errorf("Expected endpoint %s, got %s", custom, endpoint)
	}

	// Invalid value is rejected and keeps the previous one
	if err := settings.SetEndpoint("not a url"); err == nil {
		t.Error("Expected error for invalid endpoint")
	}
	if endpoint := settings.GetEndpoint(); endpoint != custom {
		t.Errorf("Invalid endpoint should not replace %s, got %s", custom, endpoint)
	}

	// Empty clears the override
	if err := settings.SetEndpoint(""); err != nil {
		t.Fatalf("Clearing endpoint failed: %v", err)
	}
	if endpoint := settings.GetEndpoint(); endpoint != "http://127.0.0.1:8080/convert_image" {
		t.Errorf("Expected config endpoint after clearing, got %s", endpoint)
	}
}

func TestEndpointOverrideFollowsConfig(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, testConfig())

	if err := settings.SetEndpoint("http://127.0.0.1:8080/convert_image"); err != nil {
		t.Fatalf("SetEndpoint failed: %v", err)
	}
	if override := settings.GetEndpointOverride(); override != "" {
		t.Errorf("Configured endpoint should not be stored as override, got %s", override)
	}

	// A later launch with another configured endpoint picks it up
	cfg := testConfig()
	cfg.Endpoint = "http://build-b.example/convert_image"
	relaunched := NewSettings(app, cfg)
	if endpoint := relaunched.GetEndpoint(); endpoint != cfg.Endpoint {
		t.Errorf("Expected %s, got %s", cfg.Endpoint, endpoint)
	}
	if relaunched.GetConfiguredEndpoint() != cfg.Endpoint {
		t.Errorf("Configured endpoint mismatch: %s", relaunched.GetConfiguredEndpoint())
	}
}

func TestOutputFormat(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, testConfig())

	// Test default value
	if format := settings.GetOutputFormat(); format != model.FormatJPEG {
		t.Errorf("Expected default format jpeg, got %s", format)
	}

	settings.SetOutputFormat(model.FormatTIFF)
	if format := settings.GetOutputFormat(); format != model.FormatTIFF {
		t.Errorf("Expected format tiff, got %s", format)
	}

	// Invalid formats are not stored
	settings.SetOutputFormat(model.Format(0))
	if format := settings.GetOutputFormat(); format != model.FormatTIFF {
		t.Errorf("Invalid format should be ignored, got %s", format)
	}
}

func TestRequestTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, testConfig())

	if timeout := settings.GetRequestTimeout(); timeout != 30*time.Second {
		t.Errorf("Expected default timeout 30s, got %s", timeout)
	}

	settings.SetRequestTimeout(90 * time.Second)
	if timeout := settings.GetRequestTimeout(); timeout != 90*time.Second {
		t.Errorf("Expected timeout 90s, got %s", timeout)
	}

	// Test boundary values
	settings.SetRequestTimeout(time.Second)
	if timeout := settings.GetRequestTimeout(); timeout != MinRequestTimeoutSec*time.Second {
		t.Errorf("Timeout should be clamped to minimum, got %s", timeout)
	}

	settings.SetRequestTimeout(time.Hour)
	if timeout := settings.GetRequestTimeout(); timeout != MaxRequestTimeoutSec*time.Second {
		t.Errorf("Timeout should be clamped to maximum, got %s", timeout)
	}
}

func TestOutputDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, testConfig())

	// Test default value
	if dir := settings.GetOutputDirectory(); dir == "" {
		t.Error("Output directory should not be empty")
	}

	customDir := "/custom/converted"
	settings.SetOutputDirectory(customDir)
	if dir := settings.GetOutputDirectory(); dir != customDir {
		t.Errorf("Expected output directory %s, got %s", customDir, dir)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, testConfig())

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("pt")
	if lang := settings.GetLanguage(); lang != "pt" {
		t.Errorf("Expected language 'pt', got %s", lang)
	}
}

func TestAutoRevealOnSave(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, testConfig())

	if !settings.GetAutoRevealOnSave() {
		t.Error("Auto reveal should default to true")
	}
	settings.SetAutoRevealOnSave(false)
	if settings.GetAutoRevealOnSave() {
		t.Error("Auto reveal should be disabled")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, testConfig())

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
