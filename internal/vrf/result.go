package vrf

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/vrfctl/internal/model"
	"github.com/alexisbeaulieu97/vrfctl/internal/restconf"
	vrfctlerrors "github.com/alexisbeaulieu97/vrfctl/pkg/errors"
)

// Result reports the outcome of one reconcile.
//
// IntendedConfig is set exactly when Changed is true.
type Result struct {
	Name      string
	Changed   bool
	Failed    bool
	CheckMode bool

	// State is what the read found; Blocked when the read failed.
	State model.VerificationStatus
	// Status is one of the model step statuses.
	Status string

	ExistingConfig *Definition
	IntendedConfig *Definition

	Message string
	// Response is the decoded body of the write response, if any.
	Response json.RawMessage
	Diff     string
	Duration time.Duration
	Err      error
}

// StatusCode returns the HTTP status of a failed request, or 0 when the failure was not
// an HTTP status.
func (r *Result) StatusCode() int {
	if r == nil {
		return 0
	}
	var statusErr *restconf.StatusError
	if errors.As(r.Err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}

// Op returns the operation that failed (read or write), or "" for successful results.
func (r *Result) Op() string {
	if r == nil {
		return ""
	}
	var execErr *vrfctlerrors.ExecutionError
	if errors.As(r.Err, &execErr) {
		return execErr.Op
	}
	return ""
}

func failureMessage(err error) string {
	var statusErr *restconf.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("API request failed with code %d", statusErr.StatusCode)
	}

	var transportErr *restconf.TransportError
	if errors.As(err, &transportErr) {
		return fmt.Sprintf("API request failed: %v", transportErr.Err)
	}

	var execErr *vrfctlerrors.ExecutionError
	if errors.As(err, &execErr) && execErr.Err != nil {
		return execErr.Err.Error()
	}

	return err.Error()
}
