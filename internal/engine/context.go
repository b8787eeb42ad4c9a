package engine

import (
	"context"

	"github.com/alexisbeaulieu97/vrfctl/internal/config"
	"github.com/alexisbeaulieu97/vrfctl/internal/logger"
	"github.com/alexisbeaulieu97/vrfctl/internal/vrf"
)

// Reconciler converges one VRF. *vrf.Reconciler implements it.
type Reconciler interface {
	Reconcile(ctx context.Context, desired vrf.Desired, dryRun bool) (*vrf.Result, error)
}

var _ Reconciler = (*vrf.Reconciler)(nil)

// ExecutionContext contains the runtime state of one run.
type ExecutionContext struct {
	Config          *config.Config
	Reconciler      Reconciler
	DryRun          bool
	ContinueOnError bool
	Logger          *logger.Logger
}
