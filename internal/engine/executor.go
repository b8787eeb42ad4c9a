package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/vrfctl/internal/logger"
	"github.com/alexisbeaulieu97/vrfctl/internal/model"
	"github.com/alexisbeaulieu97/vrfctl/internal/vrf"
	vrfctlerrors "github.com/alexisbeaulieu97/vrfctl/pkg/errors"
)

// Execute reconciles every VRF of the configuration in order and returns the run summary.
// It stops at the first failed VRF unless ContinueOnError is set; VRFs not attempted are
// counted as skipped. The returned error is the first failure.
func Execute(ctx context.Context, execCtx *ExecutionContext) (*Summary, error) {
	if execCtx == nil {
		return nil, vrfctlerrors.NewExecutionError("", "", fmt.Errorf("execution context is nil"))
	}
	if execCtx.Config == nil {
		return nil, vrfctlerrors.NewExecutionError("", "", fmt.Errorf("execution context config is nil"))
	}
	if execCtx.Reconciler == nil {
		return nil, vrfctlerrors.NewExecutionError("", "", fmt.Errorf("execution context reconciler is nil"))
	}
	if ctx == nil {
		ctx = context.Background()
	}

	log := execCtx.Logger
	if log == nil {
		log = logger.Nop()
	}

	summary := &Summary{
		RunID:  uuid.NewString(),
		DryRun: execCtx.DryRun,
		Total:  len(execCtx.Config.VRFs),
	}
	log = log.WithFields(map[string]any{"run_id": summary.RunID, "vrfs": summary.Total})
	log.Debug("starting run")

	start := time.Now()
	var firstErr error

	for i, entry := range execCtx.Config.VRFs {
		if err := ctx.Err(); err != nil {
			if firstErr == nil {
				firstErr = vrfctlerrors.NewExecutionError(entry.Name, "", err)
			}
			summary.Skipped += summary.Total - i
			break
		}

		desired := vrf.Desired{Name: entry.Name, Description: entry.Description}
		result, err := execCtx.Reconciler.Reconcile(ctx, desired, execCtx.DryRun)
		if result == nil {
			result = &vrf.Result{Name: entry.Name, State: model.StatusUnknown}
			if err != nil {
				result.Failed = true
				result.Status = model.StatusFailed
				result.Message = err.Error()
				result.Err = err
			}
		}
		summary.add(result)

		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			if !execCtx.ContinueOnError {
				summary.Skipped += summary.Total - i - 1
				break
			}
		}
	}

	summary.Duration = time.Since(start)

	log.WithFields(map[string]any{
		"changed":   summary.Changed,
		"unchanged": summary.Unchanged,
		"failed":    summary.Failed,
		"skipped":   summary.Skipped,
		"duration":  summary.Duration.String(),
	}).Info("run complete")

	return summary, firstErr
}
