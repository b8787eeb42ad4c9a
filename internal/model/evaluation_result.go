package model

// VerificationStatus describes how a device resource compares to its desired state.
type VerificationStatus string

const (
	// StatusSatisfied means the resource already matches the desired state.
	StatusSatisfied VerificationStatus = "satisfied"
	// StatusMissing means the resource does not exist on the device.
	StatusMissing VerificationStatus = "missing"
	// StatusDrifted means the resource exists but differs from the desired state.
	StatusDrifted VerificationStatus = "drifted"
	// StatusBlocked means the current state could not be read.
	StatusBlocked VerificationStatus = "blocked"
	// StatusUnknown is used when no assessment was made.
	StatusUnknown VerificationStatus = "unknown"
)

// EvaluationResult contains the result of evaluating a resource's current state
// against its desired state. It is returned by Evaluate and passed to Apply when
// action is required.
type EvaluationResult struct {
	// ResourceID identifies the evaluated resource, e.g. the VRF name.
	ResourceID string

	// CurrentState is Satisfied, Missing or Drifted after a successful read.
	CurrentState VerificationStatus

	// RequiresAction indicates whether Apply should be called.
	// true for Missing or Drifted states
	RequiresAction bool

	// Message is a human-readable description of what was found. Never empty.
	Message string

	// Diff is an optional formatted diff of the payload that would be written.
	Diff string

	// InternalData is opaque data passed from Evaluate to Apply.
	InternalData any
}
