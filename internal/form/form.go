package form

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ytget/image-converter/internal/convert"
	apperrors "github.com/ytget/image-converter/internal/errors"
	"github.com/ytget/image-converter/internal/logger"
	"github.com/ytget/image-converter/internal/model"
)

// MsgNoFile is shown when Submit is called before a file is picked
const MsgNoFile = "Please select a file first"

// ErrSuperseded is returned by a submission whose response arrived after a
// newer submission had started; its result is discarded.
var ErrSuperseded = errors.New("submission superseded by a newer one")

// Alerter shows a blocking, user-visible message
type Alerter interface {
	Alert(message string)
}

// AlertFunc adapts a plain function to Alerter
type AlertFunc func(message string)

// Alert calls f(message)
func (f AlertFunc) Alert(message string) {
	f(message)
}

// Form is the image conversion form. All methods are safe for concurrent
// use; Submit blocks until the backend answers and is normally run off the
// UI thread.
type Form struct {
	mu        sync.Mutex
	converter convert.Converter
	alerter   Alerter
	onChange  func(View)

	file     *model.SelectedFile
	format   model.Format
	inFlight int
	seq      uint64
	result   *Result
	reason   string
	outcome  model.Phase
	closed   bool
}

// New creates a form that submits through converter. An invalid format is
// replaced by model.DefaultFormat.
func New(converter convert.Converter, alerter Alerter, format model.Format) *Form {
	if !format.Valid() {
		format = model.DefaultFormat
	}
	return &Form{
		converter: converter,
		alerter:   alerter,
		format:    format,
		outcome:   model.PhaseIdle,
	}
}

// SetOnChange sets the callback invoked with a fresh View after every state change
func (f *Form) SetOnChange(callback func(View)) {
	f.mu.Lock()
	f.onChange = callback
	f.mu.Unlock()
}

// SelectFile replaces the held file. A nil file (empty selection) is a no-op.
// The displayed result is left alone.
func (f *Form) SelectFile(file *model.SelectedFile) {
	if file == nil {
		return
	}

	f.mu.Lock()
	f.file = file
	f.mu.Unlock()

	logger.WithFields(logrus.Fields{
		"file": file.Name,
		"size": file.Size(),
	}).Debug("File selected")
	f.notify()
}

// SelectFormat sets the output format. Values outside the closed set are ignored.
func (f *Form) SelectFormat(format model.Format) {
	if !format.Valid() {
		logger.WithField("format", uint8(format)).Warn("Ignoring invalid output format")
		return
	}

	f.mu.Lock()
	f.format = format
	f.mu.Unlock()
	f.notify()
}

// File returns the held file, nil if none
func (f *Form) File() *model.SelectedFile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.file
}

// Format returns the selected output format
func (f *Form) Format() model.Format {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.format
}

// Loading reports whether a submission is in flight
func (f *Form) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inFlight > 0
}

// CanSubmit is true iff a file is held and nothing is in flight
func (f *Form) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.canSubmitLocked()
}

// Result returns the current converted image, nil if none
func (f *Form) Result() *Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

// View returns a snapshot for rendering
func (f *Form) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.viewLocked()
}

// Submit sends the held file and format to the converter. Without a file it
// alerts and returns a user_input error, leaving loading untouched. On
// success the new result replaces and releases the previous one; on failure
// the previous result stays and the failure reason is recorded. Loading is
// cleared before Submit returns on every path.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.file == nil {
		f.mu.Unlock()
		logger.Warn("Submit called without a selected file")
		f.alert(MsgNoFile)
		return apperrors.NewUserInputError(MsgNoFile, nil)
	}

	file, format := f.file, f.format
	f.seq++
	seq := f.seq
	f.inFlight++
	f.reason = ""
	f.mu.Unlock()

	log := logger.WithFields(logrus.Fields{
		"seq":    seq,
		"file":   file.Name,
		"format": format.String(),
	})
	log.Info("Conversion submitted")
	f.notify()

	converted, err := f.converter.Convert(ctx, file, format)

	var previous *Result
	f.mu.Lock()
	f.inFlight--
	stale := seq != f.seq
	switch {
	case err != nil && stale:
		log.WithError(err).Debug("Ignoring failure of superseded submission")
	case err != nil:
		f.reason = apperrors.UserMessage(err)
		f.outcome = model.PhaseFailed
		log.WithError(err).WithField("status", apperrors.GetStatusCode(err)).Error("Conversion failed")
	case stale || f.closed:
		log.Debug("Discarding result of superseded submission")
		err = ErrSuperseded
	default:
		previous = f.result
		f.result = NewResult(converted.Data, converted.ContentType, format)
		f.result.Source = file.Name
		f.outcome = model.PhaseSucceeded
		log.WithFields(logrus.Fields{
			"result":       f.result.Name,
			"content_type": converted.ContentType,
			"request_id":   converted.RequestID,
		}).Info("Conversion succeeded")
	}
	f.mu.Unlock()

	previous.Release()

	if !stale && apperrors.IsType(err, apperrors.ErrorTypeUserInput) {
		f.alert(apperrors.UserMessage(err))
	}
	f.notify()
	return err
}

// Close releases the current result. Results arriving afterwards are dropped.
func (f *Form) Close() {
	f.mu.Lock()
	current := f.result
	f.result = nil
	f.closed = true
	f.mu.Unlock()

	current.Release()
}

func (f *Form) canSubmitLocked() bool {
	return f.file != nil && f.inFlight == 0
}

func (f *Form) viewLocked() View {
	loading := f.inFlight > 0
	view := View{
		Kind:      Render(f.result, loading, f.reason),
		Result:    f.result,
		Loading:   loading,
		Reason:    f.reason,
		CanSubmit: f.canSubmitLocked(),
		Format:    f.format,
		Phase:     model.PhaseIdle,
		Outcome:   f.outcome,
	}
	if loading {
		view.Phase = model.PhaseSubmitting
	}
	if f.file != nil {
		view.FileName = f.file.Name
	}
	return view
}

func (f *Form) notify() {
	f.mu.Lock()
	callback := f.onChange
	view := f.viewLocked()
	f.mu.Unlock()

	if callback != nil {
		callback(view)
	}
}

func (f *Form) alert(message string) {
	if f.alerter != nil {
		f.alerter.Alert(message)
	}
}
