package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	vrfctlerrors "github.com/alexisbeaulieu97/vrfctl/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Params are the single-VRF inputs accepted on the command line.
type Params struct {
	Host        string
	User        string
	Password    string
	VerifyTLS   bool
	Name        string
	Description string
	Timeout     int
}

// ParseConfig loads a configuration file from disk, resolves the device password, validates
// it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, vrfctlerrors.NewParseError(path, 0, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, vrfctlerrors.NewParseError(path, extractLine(err), err)
	}

	if err := resolvePassword(&cfg.Device); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// FromParams builds a one-VRF configuration from command-line parameters.
func FromParams(p Params) (*Config, error) {
	cfg := &Config{
		Version: "1.0",
		Name:    "cli",
		Device: Device{
			Host:      strings.TrimSpace(p.Host),
			User:      p.User,
			Password:  Secret(p.Password),
			VerifyTLS: p.VerifyTLS,
		},
		Settings: Settings{Timeout: p.Timeout},
		VRFs:     []VRF{{Name: p.Name, Description: p.Description}},
	}

	if err := resolvePassword(&cfg.Device); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func resolvePassword(dev *Device) error {
	if !dev.Password.IsZero() && dev.PasswordEnv != "" {
		return vrfctlerrors.NewValidationError("device.password", "password and password_env are mutually exclusive", nil)
	}

	if dev.PasswordEnv != "" {
		value, ok := os.LookupEnv(dev.PasswordEnv)
		if !ok || value == "" {
			return vrfctlerrors.NewValidationError("device.password_env", fmt.Sprintf("environment variable %q is not set", dev.PasswordEnv), nil)
		}
		dev.Password = Secret(value)
		return nil
	}

	if dev.Password.IsZero() {
		if value, ok := os.LookupEnv(PasswordEnvVar); ok {
			dev.Password = Secret(value)
		}
	}

	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
