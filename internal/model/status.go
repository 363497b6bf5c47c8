package model

// Phase represents where a conversion submission is in its lifecycle
type Phase string

const (
	// PhaseIdle means no submission is in flight
	PhaseIdle Phase = "Idle"

	// PhaseSubmitting means a conversion request is in flight
	PhaseSubmitting Phase = "Submitting"

	// PhaseSucceeded means the last submission returned a converted image
	PhaseSucceeded Phase = "Succeeded"

	// PhaseFailed means the last submission ended with an error
	PhaseFailed Phase = "Failed"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsActive returns true while a request is in flight
func (p Phase) IsActive() bool {
	return p == PhaseSubmitting
}

// IsFinished returns true if the phase records a submission outcome
func (p Phase) IsFinished() bool {
	return p == PhaseSucceeded || p == PhaseFailed
}
