package ui

import (
	"context"
	"sync"
	"time"

	"github.com/ytget/image-converter/internal/config"
	"github.com/ytget/image-converter/internal/convert"
	"github.com/ytget/image-converter/internal/logger"
	"github.com/ytget/image-converter/internal/model"
)

// SettingsConverter is a convert.Converter that follows the endpoint and
// timeout in Settings. The HTTP client is rebuilt only when either changes.
type SettingsConverter struct {
	settings *config.Settings
	opts     []convert.Option

	mu       sync.Mutex
	client   *convert.Client
	endpoint string
	timeout  time.Duration
}

// NewSettingsConverter creates a converter bound to settings. opts are
// applied to every client it builds, before the timeout and size limit.
func NewSettingsConverter(settings *config.Settings, opts ...convert.Option) *SettingsConverter {
	return &SettingsConverter{settings: settings, opts: opts}
}

// Convert sends the file through a client configured from current settings
func (c *SettingsConverter) Convert(ctx context.Context, file *model.SelectedFile, format model.Format) (*convert.Converted, error) {
	return c.current().Convert(ctx, file, format)
}

func (c *SettingsConverter) current() *convert.Client {
	endpoint := c.settings.GetEndpoint()
	timeout := c.settings.GetRequestTimeout()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil && endpoint == c.endpoint && timeout == c.timeout {
		return c.client
	}

	opts := append(append([]convert.Option{}, c.opts...),
		convert.WithTimeout(timeout),
		convert.WithMaxUploadSize(c.settings.GetMaxUploadSize()),
	)
	c.client = convert.NewClient(endpoint, opts...)
	c.endpoint = endpoint
	c.timeout = timeout

	logger.WithField("endpoint", endpoint).WithField("timeout", timeout.String()).Info("Conversion client configured")
	return c.client
}
