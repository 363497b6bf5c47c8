package form

import "github.com/ytget/image-converter/internal/model"

// RenderKind selects what the result area shows
type RenderKind int

const (
	RenderNothing RenderKind = iota
	RenderImage
	RenderLoading
	RenderFailed
)

// String returns a readable name for the render kind
func (k RenderKind) String() string {
	switch k {
	case RenderNothing:
		return "Nothing"
	case RenderImage:
		return "Image"
	case RenderLoading:
		return "Loading"
	case RenderFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// View is a point-in-time snapshot of the form for rendering
type View struct {
	Kind      RenderKind
	Result    *Result
	Loading   bool
	Reason    string // last failure, kept next to a stale result
	CanSubmit bool
	Format    model.Format
	FileName  string
	Phase     model.Phase // Submitting while loading, otherwise Idle
	Outcome   model.Phase // outcome of the last finished submission, Idle if none
}

// Render decides what the result area shows. A present result always wins,
// then the loading indicator, then the failure reason.
func Render(result *Result, loading bool, reason string) RenderKind {
	switch {
	case result != nil:
		return RenderImage
	case loading:
		return RenderLoading
	case reason != "":
		return RenderFailed
	default:
		return RenderNothing
	}
}
