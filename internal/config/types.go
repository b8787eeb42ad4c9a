package config

import (
	"time"

	"github.com/alexisbeaulieu97/vrfctl/internal/restconf"
)

const (
	// DefaultTimeout is the per-request timeout in seconds when settings.timeout is unset.
	DefaultTimeout = 30
	// PasswordEnvVar is consulted when the device block names no password source.
	PasswordEnvVar = "VRFCTL_PASSWORD"
)

// Config represents the full vrfctl configuration document.
type Config struct {
	Version     string   `yaml:"version" json:"version" validate:"required,semver"`
	Name        string   `yaml:"name" json:"name" validate:"required,min=1,max=100"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Device      Device   `yaml:"device" json:"device"`
	Settings    Settings `yaml:"settings,omitempty" json:"settings"`
	VRFs        []VRF    `yaml:"vrfs" json:"vrfs" validate:"required,min=1,dive"`
}

// Device holds the RESTCONF connection parameters of the managed device.
type Device struct {
	Host        string `yaml:"host" json:"host" validate:"required,device_host"`
	User        string `yaml:"user" json:"user" validate:"required"`
	Password    Secret `yaml:"password,omitempty" json:"password,omitempty"`
	PasswordEnv string `yaml:"password_env,omitempty" json:"password_env,omitempty"`
	VerifyTLS   bool   `yaml:"verify_tls,omitempty" json:"verify_tls"`
}

// Settings holds global execution parameters.
type Settings struct {
	Timeout         int  `yaml:"timeout,omitempty" json:"timeout" validate:"omitempty,min=1,max=3600"`
	ContinueOnError bool `yaml:"continue_on_error,omitempty" json:"continue_on_error"`
	DryRun          bool `yaml:"dry_run,omitempty" json:"dry_run"`
	Verbose         bool `yaml:"verbose,omitempty" json:"verbose"`
}

// VRF is the desired state of one VRF definition.
type VRF struct {
	Name        string `yaml:"name" json:"name" validate:"required,vrf_name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty" validate:"omitempty,max=240"`
}

// RequestTimeout returns the configured per-request timeout.
func (s Settings) RequestTimeout() time.Duration {
	if s.Timeout <= 0 {
		return DefaultTimeout * time.Second
	}
	return time.Duration(s.Timeout) * time.Second
}

// ClientOptions maps the device block onto RESTCONF client options.
func (c *Config) ClientOptions() restconf.Options {
	return restconf.Options{
		Host:      c.Device.Host,
		User:      c.Device.User,
		Password:  c.Device.Password.Reveal(),
		VerifyTLS: c.Device.VerifyTLS,
		Timeout:   c.Settings.RequestTimeout(),
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Settings.Timeout == 0 {
		cfg.Settings.Timeout = DefaultTimeout
	}
}
