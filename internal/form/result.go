package form

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ytget/image-converter/internal/model"
)

// Result is a releasable reference to converted image bytes. Once released
// its data is dropped and Data returns nil.
type Result struct {
	ID          string
	Name        string
	ContentType string
	Format      model.Format
	Source      string // name of the uploaded file, may be empty

	mu       sync.Mutex
	data     []byte
	released bool
}

// NewResult wraps data in a new reference with a unique resource name
func NewResult(data []byte, contentType string, format model.Format) *Result {
	id := uuid.NewString()
	return &Result{
		ID:          id,
		Name:        "converted-" + id + format.Extension(),
		ContentType: contentType,
		Format:      format,
		data:        data,
	}
}

// Data returns the image bytes, nil after Release
func (r *Result) Data() []byte {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data
}

// Size returns the byte length of the held data
func (r *Result) Size() int {
	return len(r.Data())
}

// Release drops the data. Safe to call more than once.
func (r *Result) Release() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = nil
	r.released = true
}

// Released reports whether Release has been called
func (r *Result) Released() bool {
	if r == nil {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.released
}
