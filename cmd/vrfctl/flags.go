package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// applyOptions are shared by apply and verify. Either ConfigPath or the single-VRF
// parameters are used, never both.
type applyOptions struct {
	ConfigPath string

	Host        string
	User        string
	Password    string
	VerifyTLS   bool
	Name        string
	Description string
	Timeout     int

	DryRun  bool
	Verbose bool
	JSON    bool

	Out    io.Writer
	ErrOut io.Writer
}

func addSourceFlags(cmd *cobra.Command, opts *applyOptions) {
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVar(&opts.Host, "host", "", "Device hostname or address (host[:port])")
	cmd.Flags().StringVar(&opts.User, "user", "", "RESTCONF username")
	cmd.Flags().StringVar(&opts.Password, "password", "", "RESTCONF password (defaults to $VRFCTL_PASSWORD)")
	cmd.Flags().BoolVar(&opts.VerifyTLS, "verify-tls", false, "Verify the device TLS certificate")
	cmd.Flags().StringVar(&opts.Name, "name", "", "VRF name")
	cmd.Flags().StringVar(&opts.Description, "description", "", "VRF description")
	cmd.Flags().IntVar(&opts.Timeout, "timeout", 0, "Per-request timeout in seconds (default 30)")
}

func (o applyOptions) usesFlags() bool {
	return o.Host != "" || o.User != "" || o.Password != "" || o.Name != "" || o.Description != "" || o.VerifyTLS
}

func validateApplyOptions(opts applyOptions) error {
	if strings.TrimSpace(opts.ConfigPath) == "" {
		if !opts.usesFlags() {
			return fmt.Errorf("either --config or --host and --name are required")
		}
		if strings.TrimSpace(opts.Host) == "" {
			return fmt.Errorf("--host is required without --config")
		}
		if strings.TrimSpace(opts.Name) == "" {
			return fmt.Errorf("--name is required without --config")
		}
		return nil
	}

	if opts.usesFlags() {
		return fmt.Errorf("--config cannot be combined with device or vrf flags")
	}

	abs, err := filepath.Abs(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}
