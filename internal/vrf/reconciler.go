package vrf

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/vrfctl/internal/logger"
	"github.com/alexisbeaulieu97/vrfctl/internal/model"
	"github.com/alexisbeaulieu97/vrfctl/internal/restconf"
	"github.com/alexisbeaulieu97/vrfctl/pkg/diff"
	vrfctlerrors "github.com/alexisbeaulieu97/vrfctl/pkg/errors"
)

// Client is the subset of *restconf.Client the reconciler needs.
type Client interface {
	Get(ctx context.Context, path string) (*restconf.Response, error)
	Put(ctx context.Context, path string, body []byte) (*restconf.Response, error)
}

var _ Client = (*restconf.Client)(nil)

// Reconciler brings VRF definitions on one device to their desired state.
type Reconciler struct {
	client Client
	log    *logger.Logger
}

// NewReconciler creates a Reconciler. A nil logger discards output.
func NewReconciler(client Client, log *logger.Logger) *Reconciler {
	if log == nil {
		log = logger.Nop()
	}
	return &Reconciler{client: client, log: log}
}

// Read fetches the named definition. A 404 yields (nil, nil).
func (r *Reconciler) Read(ctx context.Context, name string) (*Definition, error) {
	res, err := r.client.Get(ctx, ResourcePath(name))
	if err != nil {
		return nil, vrfctlerrors.NewExecutionError(name, vrfctlerrors.OpRead, err)
	}

	if res.NotFound() {
		return nil, nil
	}
	if !res.OK() {
		return nil, vrfctlerrors.NewExecutionError(name, vrfctlerrors.OpRead, res.Err())
	}

	def, err := Unwrap(res.Body)
	if err != nil {
		return nil, vrfctlerrors.NewExecutionError(name, vrfctlerrors.OpRead, err)
	}
	return def, nil
}

// Evaluate performs a read-only assessment of the device against desired. The returned
// InternalData is the *Plan consumed by Apply.
func (r *Reconciler) Evaluate(ctx context.Context, desired Desired) (*model.EvaluationResult, error) {
	if strings.TrimSpace(desired.Name) == "" {
		return nil, vrfctlerrors.NewValidationError("name", "vrf name is required", nil)
	}

	existing, err := r.Read(ctx, desired.Name)
	if err != nil {
		return nil, err
	}

	plan := NewPlan(existing, desired)

	var message string
	switch plan.State {
	case model.StatusMissing:
		message = fmt.Sprintf("vrf %s does not exist", desired.Name)
	case model.StatusDrifted:
		message = fmt.Sprintf("vrf %s description differs", desired.Name)
	default:
		message = fmt.Sprintf("vrf %s is up to date", desired.Name)
	}

	result := &model.EvaluationResult{
		ResourceID:     desired.Name,
		CurrentState:   plan.State,
		RequiresAction: plan.Changed(),
		Message:        message,
		InternalData:   plan,
	}

	if plan.Changed() {
		result.Diff = payloadDiff(plan.Existing, plan.Intended)
	}

	return result, nil
}

// Apply writes the intended definition from a prior Evaluate with a full-resource PUT.
func (r *Reconciler) Apply(ctx context.Context, evaluation *model.EvaluationResult) (*model.StepResult, error) {
	if evaluation == nil {
		return nil, vrfctlerrors.NewValidationError("evaluation", "evaluation result is required", nil)
	}

	name := evaluation.ResourceID
	plan, ok := evaluation.InternalData.(*Plan)
	if !ok || plan == nil {
		return nil, vrfctlerrors.NewExecutionError(name, vrfctlerrors.OpWrite, fmt.Errorf("evaluation carries no plan"))
	}

	start := time.Now()
	if !plan.Changed() {
		return &model.StepResult{
			ResourceID: name,
			Status:     model.StatusSkipped,
			Message:    "no changes needed",
			Timestamp:  time.Now(),
		}, nil
	}

	body, err := Wrap(plan.Intended)
	if err != nil {
		return nil, vrfctlerrors.NewExecutionError(name, vrfctlerrors.OpWrite, fmt.Errorf("encode payload: %w", err))
	}

	res, err := r.client.Put(ctx, ResourcePath(name), body)
	if err != nil {
		execErr := vrfctlerrors.NewExecutionError(name, vrfctlerrors.OpWrite, err)
		return &model.StepResult{
			ResourceID: name,
			Status:     model.StatusFailed,
			Message:    failureMessage(err),
			Error:      execErr,
			Duration:   time.Since(start),
			Timestamp:  time.Now(),
		}, execErr
	}

	if !res.OK() {
		execErr := vrfctlerrors.NewExecutionError(name, vrfctlerrors.OpWrite, res.Err())
		return &model.StepResult{
			ResourceID: name,
			Status:     model.StatusFailed,
			Message:    fmt.Sprintf("API request failed with code %d", res.StatusCode),
			Output:     res.JSON(),
			Error:      execErr,
			Duration:   time.Since(start),
			Timestamp:  time.Now(),
		}, execErr
	}

	return &model.StepResult{
		ResourceID: name,
		Status:     model.StatusSuccess,
		Message:    fmt.Sprintf("OK %d", res.StatusCode),
		Output:     res.JSON(),
		Duration:   time.Since(start),
		Timestamp:  time.Now(),
	}, nil
}

// Reconcile reads the VRF, plans the change and, unless dryRun, writes it. The result is
// never nil; the error is non-nil exactly when result.Failed is set.
func (r *Reconciler) Reconcile(ctx context.Context, desired Desired, dryRun bool) (*Result, error) {
	start := time.Now()
	log := r.log.WithFields(map[string]any{"vrf": desired.Name, "dry_run": dryRun})

	result := &Result{
		Name:      desired.Name,
		CheckMode: dryRun,
		State:     model.StatusUnknown,
	}

	evaluation, err := r.Evaluate(ctx, desired)
	if err != nil {
		result.State = model.StatusBlocked
		result.fail(err, failureMessage(err), start)
		log.Error(err, "read failed")
		return result, err
	}

	plan := evaluation.InternalData.(*Plan)
	result.State = evaluation.CurrentState
	result.ExistingConfig = plan.Existing

	if !evaluation.RequiresAction {
		result.Status = model.StatusSkipped
		result.Duration = time.Since(start)
		log.Debug(evaluation.Message)
		return result, nil
	}

	result.Changed = true
	result.IntendedConfig = plan.Intended
	result.Diff = evaluation.Diff

	if dryRun {
		result.Status = model.StatusWouldUpdate
		if plan.State == model.StatusMissing {
			result.Status = model.StatusWouldCreate
		}
		result.Duration = time.Since(start)
		log.With("state", string(plan.State)).Info("change planned, not applied")
		return result, nil
	}

	step, err := r.Apply(ctx, evaluation)
	if step != nil {
		result.Message = step.Message
		result.Response = step.Output
	}
	if err != nil {
		message := result.Message
		if message == "" {
			message = failureMessage(err)
		}
		result.fail(err, message, start)
		log.Error(err, "write failed")
		return result, err
	}

	result.Status = model.StatusSuccess
	result.Duration = time.Since(start)
	log.With("state", string(plan.State)).Info(result.Message)
	return result, nil
}

func (r *Result) fail(err error, message string, start time.Time) {
	r.Failed = true
	r.Status = model.StatusFailed
	r.Message = message
	r.Err = err
	r.Duration = time.Since(start)
}

func payloadDiff(existing, intended *Definition) string {
	var before []byte
	if existing != nil {
		if encoded, err := json.MarshalIndent(existing, "", "  "); err == nil {
			before = encoded
		}
	}
	after, err := json.MarshalIndent(intended, "", "  ")
	if err != nil {
		return ""
	}
	return diff.GenerateUnifiedDiff(before, after, "existing", "intended")
}
