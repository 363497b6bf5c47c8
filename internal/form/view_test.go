package form

import (
	"testing"

	"github.com/ytget/image-converter/internal/model"
)

func TestRender_Precedence(t *testing.T) {
	result := NewResult([]byte{1}, "image/png", model.FormatPNG)

	tests := []struct {
		name     string
		result   *Result
		loading  bool
		reason   string
		expected RenderKind
	}{
		{"nothing", nil, false, "", RenderNothing},
		{"loading", nil, true, "", RenderLoading},
		{"failed", nil, false, "boom", RenderFailed},
		{"result wins over loading", result, true, "", RenderImage},
		{"result wins over failure", result, false, "boom", RenderImage},
		{"loading wins over failure", nil, true, "boom", RenderLoading},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.result, tt.loading, tt.reason); got != tt.expected {
				t.Errorf("Render() = %s, expected %s", got, tt.expected)
			}
		})
	}
}

func TestRenderKind_String(t *testing.T) {
	if RenderFailed.String() != "Failed" {
		t.Errorf("Expected Failed, got %s", RenderFailed.String())
	}
	if RenderKind(42).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %s", RenderKind(42).String())
	}
}

func TestResult_Release(t *testing.T) {
	result := NewResult([]byte("abc"), "image/gif", model.FormatGIF)

	if result.Size() != 3 {
		t.Errorf("Expected size 3, got %d", result.Size())
	}
	if result.Name != "converted-"+result.ID+".gif" {
		t.Errorf("Unexpected result name %s", result.Name)
	}

	result.Release()
	result.Release()

	if !result.Released() {
		t.Error("Result should be released")
	}
	if result.Data() != nil {
		t.Error("Released result should not expose data")
	}

	var nilResult *Result
	nilResult.Release()
	if !nilResult.Released() || nilResult.Data() != nil {
		t.Error("Nil result should behave as released")
	}
}
