package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if downloadsDir == "" {
		t.Fatal("Downloads directory is empty")
	}

	base := filepath.Base(downloadsDir)
	if base != "Downloads" && base != "Download" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.png")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileInManager_EmptyPath(t *testing.T) {
	if err := OpenFileInManager(""); err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}

func TestOpenFileWithDefaultApp_NonExistentFile(t *testing.T) {
	if err := OpenFileWithDefaultApp(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

func TestResultFileName(t *testing.T) {
	tests := []struct {
		source, ext, expected string
	}{
		{"photo.jpg", ".png", "photo-converted.png"},
		{"photo.jpg", "png", "photo-converted.png"},
		{"archive.tar.gz", ".webp", "archive.tar-converted.webp"},
		{"/home/user/pics/cat.bmp", ".gif", "cat-converted.gif"},
		{`C:\Users\me\dog.tiff`, ".jpg", "dog-converted.jpg"},
		{"", ".png", "image-converted.png"},
		{".png", ".ico", "image-converted.ico"},
		{"noext", ".tga", "noext-converted.tga"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			if got := ResultFileName(tt.source, tt.ext); got != tt.expected {
				t.Errorf("ResultFileName(%q, %q) = %q, expected %q", tt.source, tt.ext, got, tt.expected)
			}
		})
	}
}

func TestSaveResult(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	data := []byte("converted bytes")

	path, err := SaveResult(dir, "photo.jpg", ".png", data)
	if err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}
	if filepath.Base(path) != "photo-converted.png" {
		t.Errorf("Unexpected file name: %s", path)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if string(written) != string(data) {
		t.Errorf("Saved content mismatch: %q", written)
	}
}

func TestSaveResult_DoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()

	first, err := SaveResult(dir, "photo.jpg", ".png", []byte("first"))
	if err != nil {
		t.Fatalf("First save failed: %v", err)
	}
	second, err := SaveResult(dir, "photo.jpg", ".png", []byte("second"))
	if err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	if first == second {
		t.Fatalf("Second save reused path %s", first)
	}
	if filepath.Base(second) != "photo-converted (1).png" {
		t.Errorf("Unexpected second name: %s", filepath.Base(second))
	}

	content, _ := os.ReadFile(first)
	if string(content) != "first" {
		t.Errorf("First file was overwritten: %q", content)
	}
}

func TestSaveResult_EmptyData(t *testing.T) {
	if _, err := SaveResult(t.TempDir(), "photo.jpg", ".png", nil); err == nil {
		t.Error("Expected error for empty data, got nil")
	}
}
