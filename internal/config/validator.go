package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	cosmicerrors "github.com/alexisbeaulieu97/cosmicui/pkg/errors"
	"github.com/alexisbeaulieu97/cosmicui/pkg/gradient"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	sectionIDs    = map[string]struct{}{
		SectionHome:       {},
		SectionAbout:      {},
		SectionProjects:   {},
		SectionExperience: {},
		SectionContact:    {},
	}
)

// Accepted layouts for timeline dates.
var timelineLayouts = []string{"2006-01-02", "2006-01", "2006"}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("section_id", func(fl validator.FieldLevel) bool {
			_, ok := sectionIDs[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			_, err := gradient.ParseColor(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("timeline_date", func(fl validator.FieldLevel) bool {
			_, err := ParseTimelineDate(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ParseTimelineDate parses YYYY-MM-DD, YYYY-MM or YYYY.
func ParseTimelineDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timelineLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("date %q must look like YYYY-MM-DD, YYYY-MM or YYYY", value)
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return cosmicerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if err := validateStops(cfg.Headline.Stops); err != nil {
		return err
	}

	seen := make(map[string]int, len(cfg.Nav))
	for i, item := range cfg.Nav {
		if first, ok := seen[item.ID]; ok {
			return cosmicerrors.NewValidationError(fmt.Sprintf("nav[%d].id", i), fmt.Sprintf("section %q already listed at nav[%d]", item.ID, first), nil)
		}
		seen[item.ID] = i
	}

	if cfg.Contact.SMTP.Host != "" && cfg.Contact.Recipient == "" {
		return cosmicerrors.NewValidationError("contact.recipient", "a recipient is required when smtp.host is set", nil)
	}

	return nil
}

// validateStops requires positions in non-decreasing order so interpolation stays piecewise-linear.
func validateStops(stops []Stop) error {
	for i := 1; i < len(stops); i++ {
		if stops[i].Position < stops[i-1].Position {
			return cosmicerrors.NewValidationError(
				fmt.Sprintf("headline.stops[%d].position", i),
				fmt.Sprintf("position %v is before previous stop at %v; stops must be ordered by position", stops[i].Position, stops[i-1].Position),
				nil,
			)
		}
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
		return cosmicerrors.NewValidationError(field, msg, err)
	}

	return cosmicerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct name from the validator namespace.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
