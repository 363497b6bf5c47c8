package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	apperrors "github.com/ytget/image-converter/internal/errors"
	"github.com/ytget/image-converter/internal/logger"
	"github.com/ytget/image-converter/internal/model"
)

// Client defaults
const (
	DefaultTimeout       = 60 * time.Second
	DefaultMaxUploadSize = 25 * 1024 * 1024 // backend multipart limit
	DefaultUserAgent     = "image-converter/1.0"

	// Max bytes of an error body quoted in the error message
	errorBodyLimit = 512

	headerRequestID = "X-Request-ID"
	acceptImages    = "image/*, application/octet-stream;q=0.5"
)

// Client posts images to the conversion endpoint
type Client struct {
	endpoint      string
	httpClient    *http.Client
	maxUploadSize int64
	userAgent     string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the overall per-request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithMaxUploadSize limits the size of the file accepted for upload
func WithMaxUploadSize(size int64) Option {
	return func(c *Client) {
		if size > 0 {
			c.maxUploadSize = size
		}
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// NewClient creates a conversion client for endpoint
func NewClient(endpoint string, opts ...Option) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          4,
		MaxIdleConnsPerHost:   2,
		IdleConnTimeout:       30 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	c := &Client{
		endpoint:      endpoint,
		maxUploadSize: DefaultMaxUploadSize,
		userAgent:     DefaultUserAgent,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL requests are posted to
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Convert uploads file and returns the converted image
func (c *Client) Convert(ctx context.Context, file *model.SelectedFile, format model.Format) (*Converted, error) {
	if file == nil {
		return nil, apperrors.NewUserInputError("no file selected", nil)
	}
	if !format.Valid() {
		return nil, apperrors.NewUserInputError("unsupported output format", nil)
	}
	if file.Size() > c.maxUploadSize {
		return nil, apperrors.NewUserInputError(
			fmt.Sprintf("file is too large (%d bytes, limit %d)", file.Size(), c.maxUploadSize), nil)
	}

	body, contentType, err := BuildPayload(file, format)
	if err != nil {
		return nil, apperrors.NewTransportError("failed to build upload", err)
	}

	requestID := uuid.NewString()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, apperrors.NewTransportError("invalid conversion endpoint", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", acceptImages)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(headerRequestID, requestID)

	log := logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"endpoint":   c.endpoint,
		"file":       file.Name,
		"size":       file.Size(),
		"format":     format.String(),
	})
	log.Info("Submitting conversion request")
	startTime := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, apperrors.NewTimeoutError("conversion request timed out", err)
		}
		return nil, apperrors.NewTransportError("conversion request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		log.WithField("status", resp.StatusCode).Warn("Conversion service rejected request")
		return nil, apperrors.NewStatusError(resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, apperrors.NewTimeoutError("conversion response timed out", err)
		}
		return nil, apperrors.NewMalformedError("failed to read converted image", err)
	}
	if len(data) == 0 {
		return nil, apperrors.NewMalformedError("conversion service returned an empty body", nil)
	}

	result := &Converted{
		Data:        data,
		ContentType: ResponseContentType(resp.Header.Get("Content-Type"), data, format),
		Format:      format,
		RequestID:   requestID,
	}

	log.WithFields(logrus.Fields{
		"content_type": result.ContentType,
		"bytes":        len(data),
		"duration":     time.Since(startTime),
	}).Info("Conversion finished")

	return result, nil
}

// ResponseContentType picks the content type that tags the result: the
// response header when it names something specific, else a sniff of the
// bytes, else the type expected for format.
func ResponseContentType(header string, data []byte, format model.Format) string {
	header = strings.TrimSpace(header)
	if header != "" && header != contentTypeBinary {
		return header
	}

	detected := mimetype.Detect(data)
	if strings.HasPrefix(detected.String(), "image/") {
		return detected.String()
	}
	return format.ContentType()
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
