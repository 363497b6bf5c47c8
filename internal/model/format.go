package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format is one of the output formats the conversion backend can encode.
// The set is closed; the zero value is not a valid format.
type Format uint8

const (
	formatUnknown Format = iota
	FormatBMP
	FormatGIF
	FormatICO
	FormatJPEG
	FormatPAM
	FormatPBM
	FormatPGM
	FormatPNG
	FormatPPM
	FormatTGA
	FormatTIFF
	FormatWEBP
)

// DefaultFormat is preselected in the format selector
const DefaultFormat = FormatPNG

// Content types the backend tags its responses with
const (
	ContentTypeBMP      = "image/bmp"
	ContentTypeGIF      = "image/gif"
	ContentTypeICO      = "image/x-icon"
	ContentTypeJPEG     = "image/jpeg"
	ContentTypeAnymap   = "image/x-portable-anymap"
	ContentTypePNG      = "image/png"
	ContentTypeTGA      = "image/x-tga"
	ContentTypeTIFF     = "image/tiff"
	ContentTypeWEBP     = "image/webp"
	ContentTypeFallback = "application/octet-stream"
)

var formatNames = map[Format]string{
	FormatBMP:  "bmp",
	FormatGIF:  "gif",
	FormatICO:  "ico",
	FormatJPEG: "jpeg",
	FormatPAM:  "pam",
	FormatPBM:  "pbm",
	FormatPGM:  "pgm",
	FormatPNG:  "png",
	FormatPPM:  "ppm",
	FormatTGA:  "tga",
	FormatTIFF: "tiff",
	FormatWEBP: "webp",
}

// Formats returns every supported output format in display order
func Formats() []Format {
	return []Format{
		FormatBMP, FormatGIF, FormatICO, FormatJPEG, FormatPAM, FormatPBM,
		FormatPGM, FormatPNG, FormatPPM, FormatTGA, FormatTIFF, FormatWEBP,
	}
}

// FormatNames returns the lower-case names of Formats(), in the same order
func FormatNames() []string {
	formats := Formats()
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, f.String())
	}
	return names
}

// ParseFormat converts a format name into a Format. Matching is
// case-insensitive, a leading dot is ignored and "jpg"/"tif" are accepted
// as aliases.
func ParseFormat(name string) (Format, error) {
	normalized := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))
	switch normalized {
	case "jpg":
		normalized = "jpeg"
	case "tif":
		normalized = "tiff"
	}

	for f, n := range formatNames {
		if n == normalized {
			return f, nil
		}
	}
	return formatUnknown, fmt.Errorf("unsupported output format: %q", name)
}

// String returns the lower-case wire name of the format
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether f is a member of the closed set
func (f Format) Valid() bool {
	_, ok := formatNames[f]
	return ok
}

// ContentType returns the MIME type the backend answers with for this format
func (f Format) ContentType() string {
	switch f {
	case FormatBMP:
		return ContentTypeBMP
	case FormatGIF:
		return ContentTypeGIF
	case FormatICO:
		return ContentTypeICO
	case FormatJPEG:
		return ContentTypeJPEG
	case FormatPAM, FormatPBM, FormatPGM, FormatPPM:
		return ContentTypeAnymap
	case FormatPNG:
		return ContentTypePNG
	case FormatTGA:
		return ContentTypeTGA
	case FormatTIFF:
		return ContentTypeTIFF
	case FormatWEBP:
		return ContentTypeWEBP
	default:
		return ContentTypeFallback
	}
}

// Extension returns the file extension, with leading dot, used when saving
func (f Format) Extension() string {
	if !f.Valid() {
		return ".bin"
	}
	if f == FormatJPEG {
		return ".jpg"
	}
	return "." + f.String()
}

// MarshalJSON encodes the format as a JSON string, e.g. "png"
func (f Format) MarshalJSON() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("cannot encode invalid format %d", uint8(f))
	}
	return json.Marshal(f.String())
}

// UnmarshalJSON decodes a JSON string into a Format
func (f *Format) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("format must be a JSON string: %w", err)
	}
	parsed, err := ParseFormat(name)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
