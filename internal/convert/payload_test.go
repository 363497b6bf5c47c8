package convert

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/image-converter/internal/model"
)

func TestBuildPayload_Parts(t *testing.T) {
	file := &model.SelectedFile{Name: `my "cat".png`, Data: pngBytes}

	body, contentType, err := BuildPayload(file, model.FormatTIFF)
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(bytes.NewReader(body.Bytes()), params["boundary"])

	filePart, err := reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, FieldFile, filePart.FormName())
	assert.Equal(t, `my "cat".png`, filePart.FileName())
	// picker gave no type, so the bytes are sniffed
	assert.Equal(t, "image/png", filePart.Header.Get("Content-Type"))
	data, err := io.ReadAll(filePart)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)

	formatPart, err := reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, FieldOutputType, formatPart.FormName())
	assert.Empty(t, formatPart.FileName())
	assert.Equal(t, "application/json", formatPart.Header.Get("Content-Type"))
	data, err = io.ReadAll(formatPart)
	require.NoError(t, err)
	assert.Equal(t, `"tiff"`, string(data))

	_, err = reader.NextPart()
	assert.Equal(t, io.EOF, err)
}

func TestBuildPayload_Errors(t *testing.T) {
	_, _, err := BuildPayload(nil, model.FormatPNG)
	assert.Error(t, err)

	_, _, err = BuildPayload(&model.SelectedFile{Name: "a.png", Data: pngBytes}, model.Format(0))
	assert.Error(t, err)
}

func TestUploadContentType(t *testing.T) {
	tests := []struct {
		name     string
		file     *model.SelectedFile
		expected string
	}{
		{"picker type kept", &model.SelectedFile{MimeType: "image/bmp", Data: pngBytes}, "image/bmp"},
		{"octet-stream sniffed", &model.SelectedFile{MimeType: "application/octet-stream", Data: jpegBytes}, "image/jpeg"},
		{"missing sniffed", &model.SelectedFile{Data: pngBytes}, "image/png"},
		{"tga extension", &model.SelectedFile{Name: "sprite.TGA", MimeType: "image/x-tga"}, "image/tga"},
		{"ico extension", &model.SelectedFile{Name: "favicon.ico", MimeType: "image/vnd.microsoft.icon"}, "image/ico"},
		{"pbm extension", &model.SelectedFile{Name: "mask.pbm"}, "image/pbm"},
		{"jpg alias", &model.SelectedFile{Name: "photo.jpg", MimeType: "image/jpeg"}, "image/jpeg"},
		{"vendor type without extension", &model.SelectedFile{Name: "icon", MimeType: "image/x-icon"}, "image/ico"},
		{"unknown extension keeps picker type", &model.SelectedFile{Name: "scan.jfif", MimeType: "image/jpeg"}, "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UploadContentType(tt.file))
		})
	}
}

func TestUploadName(t *testing.T) {
	assert.Equal(t, "upload", uploadName("  "))
	assert.Equal(t, "a.png", uploadName("a.png"))
}
