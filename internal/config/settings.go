package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/image-converter/internal/model"
	"github.com/ytget/image-converter/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyEndpoint           = "converter_endpoint"
	KeyOutputFormat       = "output_format"
	KeyRequestTimeoutSec  = "request_timeout_sec"
	KeyOutputDir          = "output_directory"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_save"
)

// Default values
const (
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = true
	MinRequestTimeoutSec      = 5
	MaxRequestTimeoutSec      = 600
)

// Settings manages user preferences layered over the launch Config
type Settings struct {
	app fyne.App
	cfg *Config
}

// NewSettings creates a new settings manager. cfg supplies fallbacks for
// values the user never changed.
func NewSettings(app fyne.App, cfg *Config) *Settings {
	if cfg == nil {
		cfg = &Config{
			Endpoint:       DefaultEndpoint,
			RequestTimeout: DefaultRequestTimeout,
			MaxUploadSize:  DefaultMaxUploadSize,
			DefaultFormat:  model.DefaultFormat,
		}
	}
	return &Settings{app: app, cfg: cfg}
}

// GetEndpoint returns the user's endpoint override or the configured one
func (s *Settings) GetEndpoint() string {
	endpoint := s.app.Preferences().String(KeyEndpoint)
	if endpoint == "" || ValidateEndpoint(endpoint) != nil {
		return s.cfg.Endpoint
	}
	return endpoint
}

// GetEndpointOverride returns the stored override, empty when the configured
// endpoint is in use
func (s *Settings) GetEndpointOverride() string {
	return s.app.Preferences().String(KeyEndpoint)
}

// GetConfiguredEndpoint returns the endpoint from env or build flags
func (s *Settings) GetConfiguredEndpoint() string {
	return s.cfg.Endpoint
}

// SetEndpoint stores an endpoint override. An empty value, or the configured
// endpoint itself, clears it.
func (s *Settings) SetEndpoint(endpoint string) error {
	if endpoint == "" || endpoint == s.cfg.Endpoint {
		s.app.Preferences().RemoveValue(KeyEndpoint)
		return nil
	}
	if err := ValidateEndpoint(endpoint); err != nil {
		return err
	}
	s.app.Preferences().SetString(KeyEndpoint, endpoint)
	return nil
}

// GetOutputFormat returns the last chosen output format
func (s *Settings) GetOutputFormat() model.Format {
	name := s.app.Preferences().String(KeyOutputFormat)
	if name == "" {
		return s.cfg.DefaultFormat
	}
	format, err := model.ParseFormat(name)
	if err != nil {
		return s.cfg.DefaultFormat
	}
	return format
}

// SetOutputFormat remembers the chosen output format
func (s *Settings) SetOutputFormat(format model.Format) {
	if !format.Valid() {
		return
	}
	s.app.Preferences().SetString(KeyOutputFormat, format.String())
}

// GetRequestTimeout returns the per-request timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	seconds := s.app.Preferences().Int(KeyRequestTimeoutSec)
	if seconds <= 0 {
		return s.cfg.RequestTimeout
	}
	return time.Duration(seconds) * time.Second
}

// SetRequestTimeout sets the per-request timeout, clamped to a sane range
func (s *Settings) SetRequestTimeout(timeout time.Duration) {
	seconds := int(timeout / time.Second)
	if seconds < MinRequestTimeoutSec {
		seconds = MinRequestTimeoutSec
	}
	if seconds > MaxRequestTimeoutSec {
		seconds = MaxRequestTimeoutSec
	}
	s.app.Preferences().SetInt(KeyRequestTimeoutSec, seconds)
}

// GetMaxUploadSize returns the upload size limit in bytes
func (s *Settings) GetMaxUploadSize() int64 {
	return s.cfg.MaxUploadSize
}

// GetOutputDirectory returns where saved results go
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/converted"
		}
		s.SetOutputDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetOutputDirectory sets the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnSave returns whether to reveal saved results in the file manager
func (s *Settings) GetAutoRevealOnSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnSave sets whether to reveal saved results in the file manager
func (s *Settings) SetAutoRevealOnSave(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
