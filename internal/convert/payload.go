package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/ytget/image-converter/internal/model"
)

// Multipart field names expected by the backend
const (
	FieldFile       = "file"
	FieldOutputType = "output_type"
)

const (
	contentTypeJSON   = "application/json"
	contentTypeBinary = "application/octet-stream"
	defaultFileName   = "upload"
)

// Registered or vendor types the backend only knows by their short subtype
var uploadTypeAliases = map[string]string{
	"image/x-icon":                  "image/ico",
	"image/vnd.microsoft.icon":      "image/ico",
	"image/x-tga":                   "image/tga",
	"image/x-targa":                 "image/tga",
	"image/x-portable-bitmap":       "image/pbm",
	"image/x-portable-graymap":      "image/pgm",
	"image/x-portable-pixmap":       "image/ppm",
	"image/x-portable-arbitrarymap": "image/pam",
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// BuildPayload encodes file and format as a multipart/form-data body and
// returns it with the matching Content-Type header value.
func BuildPayload(file *model.SelectedFile, format model.Format) (*bytes.Buffer, string, error) {
	if file == nil {
		return nil, "", fmt.Errorf("no file to upload")
	}

	formatJSON, err := json.Marshal(format)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode output format: %w", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fileHeader := make(textproto.MIMEHeader)
	fileHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		FieldFile, quoteEscaper.Replace(uploadName(file.Name))))
	fileHeader.Set("Content-Type", UploadContentType(file))

	filePart, err := writer.CreatePart(fileHeader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := filePart.Write(file.Data); err != nil {
		return nil, "", fmt.Errorf("failed to write file part: %w", err)
	}

	formatHeader := make(textproto.MIMEHeader)
	formatHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"`, FieldOutputType))
	formatHeader.Set("Content-Type", contentTypeJSON)

	formatPart, err := writer.CreatePart(formatHeader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create output_type part: %w", err)
	}
	if _, err := formatPart.Write(formatJSON); err != nil {
		return nil, "", fmt.Errorf("failed to write output_type part: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}

// UploadContentType returns the MIME type sent with the file part. The
// backend dispatches on the subtype alone, so a known extension maps to
// image/<format>. Otherwise the picker-supplied type wins and the bytes are
// sniffed as a last resort.
func UploadContentType(file *model.SelectedFile) string {
	if format, err := model.ParseFormat(filepath.Ext(file.Name)); err == nil {
		return "image/" + format.String()
	}

	contentType := file.MimeType
	if contentType == "" || contentType == contentTypeBinary {
		contentType = mimetype.Detect(file.Data).String()
	}
	if alias, ok := uploadTypeAliases[contentType]; ok {
		return alias
	}
	return contentType
}

func uploadName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return defaultFileName
	}
	return name
}
