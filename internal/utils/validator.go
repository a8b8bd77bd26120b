package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/arunkumarcpv007-tech/smart-classroom-app/internal/errors"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/models"
)

// Validator wraps validator/v10 with the classroom domain's custom tags.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New()
	RegisterCustomValidators(validate)
	return &Validator{validate: validate}
}

// Struct validates a request struct and translates failures into field-level
// validation errors. Returns nil when the struct is valid.
func (v *Validator) Struct(s interface{}) apperrors.ValidationErrors {
	if err := v.validate.Struct(s); err != nil {
		return apperrors.ToValidationErrors(err)
	}
	return nil
}

// Custom validation functions

func ValidateUserRole(fl validator.FieldLevel) bool {
	validRoles := []models.UserRole{
		models.RoleAdmin,
		models.RoleTeacher,
		models.RoleStudent,
	}

	value := fl.Field().String()
	for _, validRole := range validRoles {
		if string(validRole) == value {
			return true
		}
	}
	return false
}

func ValidateAttendanceStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == string(models.AttendancePresent) || value == string(models.AttendanceAbsent)
}

func ValidateAssignmentStatus(fl validator.FieldLevel) bool {
	validStatuses := []models.AssignmentStatus{
		models.AssignmentPending,
		models.AssignmentSubmitted,
		models.AssignmentGraded,
	}

	value := fl.Field().String()
	for _, validStatus := range validStatuses {
		if string(validStatus) == value {
			return true
		}
	}
	return false
}

func ValidateThemeMode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == string(models.ThemeLight) || value == string(models.ThemeDark)
}

// RegisterCustomValidators registers all custom validators
func RegisterCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("user_role", ValidateUserRole)
	validate.RegisterValidation("attendance_status", ValidateAttendanceStatus)
	validate.RegisterValidation("assignment_status", ValidateAssignmentStatus)
	validate.RegisterValidation("theme_mode", ValidateThemeMode)

	// Register custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
