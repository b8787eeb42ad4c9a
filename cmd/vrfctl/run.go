package main

import (
	"context"
	"os"

	"github.com/alexisbeaulieu97/vrfctl/internal/config"
	"github.com/alexisbeaulieu97/vrfctl/internal/engine"
	"github.com/alexisbeaulieu97/vrfctl/internal/logger"
	"github.com/alexisbeaulieu97/vrfctl/internal/restconf"
	"github.com/alexisbeaulieu97/vrfctl/internal/vrf"
)

func loadConfig(opts applyOptions) (*config.Config, string, error) {
	if opts.ConfigPath != "" {
		cfg, err := config.ParseConfig(opts.ConfigPath)
		return cfg, opts.ConfigPath, err
	}

	cfg, err := config.FromParams(config.Params{
		Host:        opts.Host,
		User:        opts.User,
		Password:    opts.Password,
		VerifyTLS:   opts.VerifyTLS,
		Name:        opts.Name,
		Description: opts.Description,
		Timeout:     opts.Timeout,
	})
	return cfg, "", err
}

// reconcile runs every VRF of the selected configuration and renders the outcome. A nil
// summary means nothing was attempted.
func reconcile(ctx context.Context, opts applyOptions) (*engine.Summary, error) {
	cfg, source, err := loadConfig(opts)
	if err != nil {
		return nil, &exitError{code: engine.ExitConfigError, err: err}
	}

	if opts.ConfigPath != "" && opts.Timeout > 0 {
		cfg.Settings.Timeout = opts.Timeout
	}

	dryRun := opts.DryRun || cfg.Settings.DryRun
	verbose := opts.Verbose || cfg.Settings.Verbose

	log := logger.New(logger.Options{Verbose: verbose, JSON: opts.JSON, Writer: opts.ErrOut})

	fields := map[string]any{"host": cfg.Device.Host, "vrfs": len(cfg.VRFs)}
	if source != "" {
		fields["config"] = source
	}
	log = log.WithFields(fields)

	if !cfg.Device.VerifyTLS {
		log.Warn("TLS certificate verification is disabled")
	}

	client, err := restconf.New(cfg.ClientOptions())
	if err != nil {
		return nil, &exitError{code: engine.ExitConfigError, err: err}
	}

	execCtx := &engine.ExecutionContext{
		Config:          cfg,
		Reconciler:      vrf.NewReconciler(client, log),
		DryRun:          dryRun,
		ContinueOnError: cfg.Settings.ContinueOnError,
		Logger:          log,
	}

	summary, execErr := engine.Execute(ctx, execCtx)
	if summary == nil {
		return nil, execErr
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	if opts.JSON {
		if err := printJSONOutput(out, cfg, summary); err != nil {
			return summary, err
		}
	} else {
		printTableOutput(out, summary, verbose)
	}

	return summary, execErr
}
