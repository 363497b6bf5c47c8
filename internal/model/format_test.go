package model

import (
	"encoding/json"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"png", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{".webp", FormatWEBP, false},
		{" jpeg ", FormatJPEG, false},
		{"jpg", FormatJPEG, false},
		{"tif", FormatTIFF, false},
		{"pam", FormatPAM, false},
		{"svg", formatUnknown, true},
		{"", formatUnknown, true},
	}

	for _, test := range tests {
		result, err := ParseFormat(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
			continue
		}
		if result != test.expected {
			t.Errorf("ParseFormat(%q) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestFormats_RoundTripNames(t *testing.T) {
	names := FormatNames()
	if len(names) != 12 {
		t.Fatalf("Expected 12 formats, got %d", len(names))
	}

	for i, f := range Formats() {
		if names[i] != f.String() {
			t.Errorf("FormatNames()[%d] = %s, expected %s", i, names[i], f.String())
		}
		parsed, err := ParseFormat(names[i])
		if err != nil || parsed != f {
			t.Errorf("ParseFormat(%q) = %s, %v; expected %s", names[i], parsed, err, f)
		}
	}
}

func TestFormat_ContentType(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{FormatPNG, "image/png"},
		{FormatJPEG, "image/jpeg"},
		{FormatICO, "image/x-icon"},
		{FormatPBM, "image/x-portable-anymap"},
		{FormatPPM, "image/x-portable-anymap"},
		{FormatTGA, "image/x-tga"},
		{formatUnknown, "application/octet-stream"},
	}

	for _, test := range tests {
		if result := test.format.ContentType(); result != test.expected {
			t.Errorf("Format(%s).ContentType() = %s, expected %s", test.format, result, test.expected)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	if ext := FormatJPEG.Extension(); ext != ".jpg" {
		t.Errorf("Expected .jpg, got %s", ext)
	}
	if ext := FormatTIFF.Extension(); ext != ".tiff" {
		t.Errorf("Expected .tiff, got %s", ext)
	}
	if ext := Format(200).Extension(); ext != ".bin" {
		t.Errorf("Expected .bin for invalid format, got %s", ext)
	}
}

func TestFormat_JSONIsPlainString(t *testing.T) {
	data, err := json.Marshal(FormatWEBP)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"webp"` {
		t.Errorf("Expected \"webp\", got %s", data)
	}

	var decoded Format
	if err := json.Unmarshal([]byte(`"GIF"`), &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded != FormatGIF {
		t.Errorf("Expected gif, got %s", decoded)
	}

	if err := json.Unmarshal([]byte(`3`), &decoded); err == nil {
		t.Error("Expected error for non-string JSON")
	}

	if _, err := json.Marshal(formatUnknown); err == nil {
		t.Error("Expected error when encoding the zero format")
	}
}

func TestSelectedFile_Size(t *testing.T) {
	var nilFile *SelectedFile
	if nilFile.Size() != 0 {
		t.Error("Nil file should report size 0")
	}

	file := &SelectedFile{Name: "a.png", Data: []byte{1, 2, 3}}
	if file.Size() != 3 {
		t.Errorf("Expected size 3, got %d", file.Size())
	}
}
