package model

// SelectedFile is the source image picked by the user
type SelectedFile struct {
	Name     string // original filename, preserved in the upload
	MimeType string // as reported by the file picker, may be empty
	Data     []byte
}

// Size returns the payload size in bytes
func (f *SelectedFile) Size() int64 {
	if f == nil {
		return 0
	}
	return int64(len(f.Data))
}
