package validator

import (
	"log"

	"interntrack_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the enum validations used by the internship
// DTOs. Absent values are skipped by omitempty/omitnil on the field, so by
// the time a rule runs the value was provided and an empty string is just
// another invalid member.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup misconfiguration.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("app_status", validateApplicationStatus)
	mustRegister("app_type", validateApplicationType)
	mustRegister("app_priority", validatePriority)
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	return models.ApplicationStatus(fl.Field().String()).Valid()
}

func validateApplicationType(fl validator.FieldLevel) bool {
	return models.ApplicationType(fl.Field().String()).Valid()
}

func validatePriority(fl validator.FieldLevel) bool {
	return models.Priority(fl.Field().String()).Valid()
}
