package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/ccm-project/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the project name (p_name).
	FieldName = "p_name"

	// FieldOwnerID targets the owning user id (u_id).
	FieldOwnerID = "u_id"

	// FieldProjectID targets the project primary key (p_id).
	FieldProjectID = "p_id"

	// FieldStatus targets the requested run state.
	FieldStatus = "status"
)

// structFields maps field constants to the Go field names used by
// go-playground/validator.
var structFields = map[string]string{
	FieldName:      "Name",
	FieldOwnerID:   "OwnerID",
	FieldProjectID: "ProjectID",
	FieldStatus:    "Status",
}

// ProjectValidator implements [Validator] for the project request models:
// CreateProjectRequest, NewProject and StatusUpdate.
// Struct rules are declared with `validate` tags and checked by
// go-playground/validator; the results are translated into this package's
// sentinel errors.
type ProjectValidator struct {
	validate *validator.Validate
}

// NewProjectValidator constructs a [ProjectValidator] with the custom
// "visible" rule registered.
func NewProjectValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// registration only fails for an empty tag or a nil func
	_ = v.RegisterValidation("visible", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &ProjectValidator{validate: v}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// are accepted. When fields is empty every field of the model is checked.
func (v *ProjectValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateProjectRequest:
		return v.validateCreateRequest(value)
	case *models.CreateProjectRequest:
		return v.validateCreateRequest(*value)

	case models.NewProject:
		return v.validateStruct(value, fields, FieldName, FieldOwnerID)
	case *models.NewProject:
		return v.validateStruct(*value, fields, FieldName, FieldOwnerID)

	case models.StatusUpdate:
		return v.validateStruct(value, fields, FieldProjectID, FieldStatus)
	case *models.StatusUpdate:
		return v.validateStruct(*value, fields, FieldProjectID, FieldStatus)

	default:
		return ErrUnsupportedType
	}
}

func (v *ProjectValidator) validateCreateRequest(req models.CreateProjectRequest) error {
	name, ok := req.Name.(string)
	if !ok {
		return ErrProjectNameRequired
	}
	if strings.TrimSpace(name) == "" {
		return ErrProjectNameInvisible
	}

	return nil
}

func (v *ProjectValidator) validateStruct(obj any, fields []string, defaults ...string) error {
	if len(fields) == 0 {
		fields = defaults
	}

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		name, ok := structFields[f]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		names = append(names, name)
	}

	err := v.validate.StructPartial(obj, names...)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	return translate(validationErrs[0])
}

func translate(fe validator.FieldError) error {
	switch fe.StructField() {
	case "Name":
		if fe.Tag() == "visible" {
			return ErrProjectNameInvisible
		}
		return ErrProjectNameRequired
	case "OwnerID":
		return ErrInvalidOwnerID
	case "ProjectID":
		return ErrInvalidProjectID
	case "Status":
		return ErrInvalidStatus
	}

	return fmt.Errorf("%s failed on %q", fe.Namespace(), fe.Tag())
}
