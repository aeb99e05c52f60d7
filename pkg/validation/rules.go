package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("date_only", isDateOnly); err != nil {
		return err
	}
	if err := v.RegisterValidation("not_blank", isNotBlank); err != nil {
		return err
	}
	return nil
}

// isDateOnly accepts calendar dates of the form YYYY-MM-DD. The pickers
// deal in date portions only, never wall-clock times.
func isDateOnly(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	return re.MatchString(fl.Field().String())
}

// isNotBlank rejects strings that are empty after trimming, which plain
// "required" lets through.
func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
