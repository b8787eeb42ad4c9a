package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	vrfctlerrors "github.com/alexisbeaulieu97/vrfctl/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern  = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	vrfNamePattern = regexp.MustCompile(`^[^\s/]{1,32}$`)
	hostPattern    = regexp.MustCompile(`^\S+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("vrf_name", func(fl validator.FieldLevel) bool {
			return vrfNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("device_host", func(fl validator.FieldLevel) bool {
			return hostPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return vrfctlerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Device.Password.IsZero() {
		return vrfctlerrors.NewValidationError("device.password", fmt.Sprintf("password is required (set password, password_env or %s)", PasswordEnvVar), nil)
	}

	seen := make(map[string]int, len(cfg.VRFs))
	for i, vrf := range cfg.VRFs {
		if first, exists := seen[vrf.Name]; exists {
			return vrfctlerrors.NewValidationError(fieldForVRF(i, "name"), fmt.Sprintf("duplicate vrf name %q (first defined at vrfs[%d])", vrf.Name, first), nil)
		}
		seen[vrf.Name] = i
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", field, ve.Tag(), ve.Param())
		}
		return vrfctlerrors.NewValidationError(field, msg, err)
	}

	return vrfctlerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the namespace, which is already built
// from yaml tags: "Config.vrfs[0].name" becomes "vrfs[0].name".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	return ns
}

func fieldForVRF(index int, field string) string {
	return fmt.Sprintf("vrfs[%d].%s", index, field)
}
