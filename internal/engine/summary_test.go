package engine

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vrfctl/internal/restconf"
	"github.com/alexisbeaulieu97/vrfctl/internal/vrf"
	vrfctlerrors "github.com/alexisbeaulieu97/vrfctl/pkg/errors"
)

func TestSummaryExitCode(t *testing.T) {
	t.Parallel()

	statusFailure := &vrf.Result{Failed: true, Err: vrfctlerrors.NewExecutionError("A", vrfctlerrors.OpRead, &restconf.StatusError{StatusCode: http.StatusInternalServerError})}
	transportFailure := &vrf.Result{Failed: true, Err: vrfctlerrors.NewExecutionError("A", vrfctlerrors.OpRead, &restconf.TransportError{Method: http.MethodGet, Err: errors.New("refused")})}
	malformedRead := &vrf.Result{Failed: true, Err: vrfctlerrors.NewExecutionError("A", vrfctlerrors.OpRead, errors.New("decode response: invalid character '<' looking for beginning of value"))}
	invalidInput := &vrf.Result{Failed: true, Err: vrfctlerrors.NewValidationError("name", "vrf name is required", nil)}
	changed := &vrf.Result{Changed: true}
	unchanged := &vrf.Result{}

	tests := []struct {
		name    string
		dryRun  bool
		results []*vrf.Result
		want    int
	}{
		{"apply all unchanged", false, []*vrf.Result{unchanged}, ExitOK},
		{"apply with changes", false, []*vrf.Result{changed, unchanged}, ExitOK},
		{"apply with failure", false, []*vrf.Result{changed, statusFailure}, ExitChanges},
		{"verify satisfied", true, []*vrf.Result{unchanged, unchanged}, ExitOK},
		{"verify pending changes", true, []*vrf.Result{unchanged, changed}, ExitChanges},
		{"verify status failure", true, []*vrf.Result{statusFailure}, ExitDeviceError},
		{"verify transport failure", true, []*vrf.Result{unchanged, transportFailure}, ExitDeviceError},
		{"verify malformed read body", true, []*vrf.Result{malformedRead}, ExitDeviceError},
		{"verify invalid input", true, []*vrf.Result{invalidInput}, ExitChanges},
		{"apply malformed read body", false, []*vrf.Result{malformedRead}, ExitChanges},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := &Summary{DryRun: tt.dryRun, Total: len(tt.results)}
			for _, r := range tt.results {
				s.add(r)
			}
			require.Equal(t, tt.want, s.ExitCode())
		})
	}
}

func TestSummaryNil(t *testing.T) {
	t.Parallel()

	var s *Summary
	require.False(t, s.AllSatisfied())
	require.False(t, s.HasFailures())
	require.Equal(t, ExitDeviceError, s.ExitCode())
}
