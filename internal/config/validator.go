package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/atelierlabs/atelier/internal/model"
	atelierErrors "github.com/atelierlabs/atelier/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?$`)
	hexColorPattern = regexp.MustCompile(`^#?(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("hex_color", func(fl validator.FieldLevel) bool {
			return hexColorPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("target_user", func(fl validator.FieldLevel) bool {
			return model.TargetUser(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("brand_trait", func(fl validator.FieldLevel) bool {
			return model.BrandTrait(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
			return model.Platform(fl.Field().String()).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// ValidateBrief performs schema and cross-field validation on the brief.
func ValidateBrief(brief *Brief) error {
	if brief == nil {
		return atelierErrors.NewValidationError("brief", "brief is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(brief); err != nil {
		return convertValidationError(err)
	}

	if err := rejectDuplicates("target_users", brief.TargetUsers); err != nil {
		return err
	}
	if err := rejectDuplicates("brand_traits", brief.BrandTraits); err != nil {
		return err
	}
	if err := rejectDuplicates("platforms", brief.Platforms); err != nil {
		return err
	}

	return nil
}

func rejectDuplicates(field string, values []string) error {
	seen := make(map[string]struct{}, len(values))
	for i, value := range values {
		if _, dup := seen[value]; dup {
			return atelierErrors.NewValidationError(
				fmt.Sprintf("%s[%d]", field, i),
				fmt.Sprintf("duplicate value %q", value), nil)
		}
		seen[value] = struct{}{}
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return atelierErrors.NewValidationError(field, msg, err)
	}

	return atelierErrors.NewValidationError("brief", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
