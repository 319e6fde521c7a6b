// Package validation checks request and entity values against their declared
// constraints and turns failures into apperror.Violation lists.
//
// Constraints are declared with `validate` struct tags understood by
// go-playground/validator. Field paths use the json names of the fields.
package validation

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"imaut/internal/core/apperror"
	appctx "imaut/internal/core/context"
)

// Symbolic violation codes exposed to clients.
const (
	CodeRequired  = "required"
	CodeNotBlank  = "not-blank"
	CodeMaxLength = "max-length"
	CodeEmail     = "email"
)

// codes maps validator tags to symbolic codes. Unlisted tags are reported as-is.
var codes = map[string]string{
	"required": CodeRequired,
	"notblank": CodeNotBlank,
	"max":      CodeMaxLength,
	"email":    CodeEmail,
}

// Validator validates values and resolves violation messages per locale.
type Validator struct {
	validate *validator.Validate
	catalog  *Catalog
}

// New creates a Validator with the bundled message catalog.
func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return nil, fmt.Errorf("register notblank: %w", err)
	}

	catalog, err := NewCatalog(v)
	if err != nil {
		return nil, fmt.Errorf("build message catalog: %w", err)
	}

	return &Validator{validate: v, catalog: catalog}, nil
}

// MustNew is New for package-level wiring and tests.
func MustNew() *Validator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

// Violations validates obj and returns one violation per failing field.
// objectName is reported verbatim in each violation.
func (v *Validator) Violations(ctx context.Context, objectName string, obj any) ([]apperror.Violation, error) {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil, nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, fmt.Errorf("validate %s: %w", objectName, err)
	}

	trans := v.catalog.Translator(appctx.GetLocales(ctx))

	violations := make([]apperror.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, apperror.Violation{
			DefaultMessage: fe.Translate(trans),
			ObjectName:     objectName,
			Field:          fieldPath(fe.Namespace()),
			RejectedValue:  rejectedValue(fe.Value()),
			Code:           code(fe.Tag()),
		})
	}
	return violations, nil
}

// Check validates obj and returns a ValidationFailed AppError when constraints fail.
func (v *Validator) Check(ctx context.Context, objectName string, obj any) error {
	violations, err := v.Violations(ctx, objectName, obj)
	if err != nil {
		return apperror.NewInternal(err)
	}
	if len(violations) > 0 {
		return apperror.NewValidationFailed("", violations)
	}
	return nil
}

func code(tag string) string {
	if c, ok := codes[tag]; ok {
		return c
	}
	return tag
}

// fieldPath drops the root struct name: "Account.bankDetails[0].iban" -> "bankDetails[0].iban".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// rejectedValue reports nil pointers as a plain nil so they encode as JSON null.
func rejectedValue(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
	}
	return v
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}
