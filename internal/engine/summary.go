package engine

import (
	"errors"
	"time"

	"github.com/alexisbeaulieu97/vrfctl/internal/restconf"
	"github.com/alexisbeaulieu97/vrfctl/internal/vrf"
	vrfctlerrors "github.com/alexisbeaulieu97/vrfctl/pkg/errors"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitChanges     = 1
	ExitConfigError = 2
	ExitDeviceError = 3
)

// Summary aggregates the results of one run.
type Summary struct {
	RunID     string
	DryRun    bool
	Total     int
	Changed   int
	Unchanged int
	Failed    int
	// Skipped counts VRFs never attempted because the run stopped early.
	Skipped  int
	Duration time.Duration
	Results  []*vrf.Result
}

func (s *Summary) add(result *vrf.Result) {
	s.Results = append(s.Results, result)
	switch {
	case result.Failed:
		s.Failed++
	case result.Changed:
		s.Changed++
	default:
		s.Unchanged++
	}
}

// AllSatisfied reports whether every VRF was attempted and already matched.
func (s *Summary) AllSatisfied() bool {
	return s != nil && s.Failed == 0 && s.Changed == 0 && s.Skipped == 0
}

// HasFailures reports whether any VRF failed.
func (s *Summary) HasFailures() bool {
	return s != nil && s.Failed > 0
}

// ExitCode maps the summary to a process exit code. Apply runs exit 1 on any failure.
// Dry runs exit 3 when the device could not be reached or answered with an error, and 1
// when changes are pending.
func (s *Summary) ExitCode() int {
	if s == nil {
		return ExitDeviceError
	}
	if s.HasFailures() {
		if s.DryRun && s.deviceFailure() {
			return ExitDeviceError
		}
		return ExitChanges
	}
	if s.DryRun && !s.AllSatisfied() {
		return ExitChanges
	}
	return ExitOK
}

// deviceFailure reports whether a failed VRF could not be read, or the device rejected or
// dropped a request.
func (s *Summary) deviceFailure() bool {
	for _, result := range s.Results {
		if !result.Failed {
			continue
		}
		if result.Op() == vrfctlerrors.OpRead {
			return true
		}
		var statusErr *restconf.StatusError
		var transportErr *restconf.TransportError
		if errors.As(result.Err, &statusErr) || errors.As(result.Err, &transportErr) {
			return true
		}
	}
	return false
}
