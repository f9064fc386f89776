package pricing

import (
	"errors"
	"reflect"
	"slices"
	"strings"

	"pannel_pintura/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors maps a form field to the message shown next to it.
// An empty map means the submission is acceptable.
type ValidationErrors map[string]string

func (v ValidationErrors) Valid() bool { return len(v) == 0 }

const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldProjectType = "project_type"
	FieldProperty    = "property"
	FieldArea        = "area"
	FieldTimeline    = "timeline"
)

var requiredMessages = map[string]string{
	FieldName:        "El nombre es requerido",
	FieldEmail:       "El email es requerido",
	FieldPhone:       "El teléfono es requerido",
	FieldProjectType: "Selecciona el tipo de proyecto",
	FieldProperty:    "Selecciona el tipo de propiedad",
	FieldArea:        "El área aproximada es requerida",
	FieldTimeline:    "Selecciona el plazo deseado",
}

const invalidEmailMessage = "El email no es válido"

// submission mirrors the direct-contact form with its rules.
type submission struct {
	Name        string `field:"name" validate:"required"`
	Email       string `field:"email" validate:"required,email"`
	Phone       string `field:"phone" validate:"required"`
	ProjectType string `field:"project_type" validate:"required,project_type"`
	Property    string `field:"property" validate:"required,property"`
	Area        string `field:"area" validate:"required"`
	Timeline    string `field:"timeline" validate:"required,timeline"`
}

// optionTags binds each closed-list tag to the options offered by the form.
var optionTags = map[string][]string{
	"project_type": entities.ContactProjectTypes,
	"property":     entities.PropertyTypes,
	"timeline":     entities.Timelines,
}

var submissionValidator = newSubmissionValidator()

func newSubmissionValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("field")
	})
	for tag, options := range optionTags {
		options := options
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return slices.Contains(options, fl.Field().String())
		})
	}
	return v
}

// ValidateSubmission checks every required field of the direct-contact form
// independently and returns one message per failing field.
//
// Free-text fields are checked on a trimmed copy; req itself is not modified.
func ValidateSubmission(req entities.ContactRequest) ValidationErrors {
	s := submission{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		ProjectType: req.ProjectType,
		Property:    req.Property,
		Area:        strings.TrimSpace(req.Area),
		Timeline:    req.Timeline,
	}

	out := ValidationErrors{}
	err := submissionValidator.Struct(s)
	if err == nil {
		return out
	}

	var fieldErrs validator.ValidationErrors
	errors.As(err, &fieldErrs)
	for _, fe := range fieldErrs {
		field := fe.Field()
		if field == FieldEmail && fe.Tag() == "email" {
			out[field] = invalidEmailMessage
			continue
		}
		out[field] = requiredMessages[field]
	}
	return out
}
