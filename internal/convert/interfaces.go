package convert

import (
	"context"

	"github.com/ytget/image-converter/internal/model"
)

// Converter defines the interface for the conversion service.
type Converter interface {
	// Convert uploads file and returns it re-encoded as format
	Convert(ctx context.Context, file *model.SelectedFile, format model.Format) (*Converted, error)
}

// Converted is a successful backend response
type Converted struct {
	Data        []byte
	ContentType string
	Format      model.Format
	RequestID   string
}
