package importer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/alexanderramin/deadline/internal/domain"
	"github.com/go-playground/validator/v10"
)

var (
	validateOnce    sync.Once
	schemaValidator *validator.Validate
)

func newSchemaValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseDate(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "scenario", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseScenario(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "direction", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseDirection(fl.Field().String())
		return err == nil
	})
	return v
}

// mustRegister panics if a custom tag cannot be registered, so a broken tag
// never leaves a field unchecked.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registering %q validation: %v", tag, err))
	}
}

// Normalize returns a copy of schema with the currency code trimmed and
// upper-cased, so "gbp" in a setup file passes the ISO 4217 check.
func Normalize(schema *ImportSchema) *ImportSchema {
	n := *schema
	n.Currency = strings.ToUpper(strings.TrimSpace(n.Currency))
	return &n
}

// ValidateImportSchema checks the schema for errors before conversion.
// Returns a slice of all validation errors found, each prefixed with its JSON path.
func ValidateImportSchema(schema *ImportSchema) []error {
	validateOnce.Do(func() { schemaValidator = newSchemaValidator() })

	err := schemaValidator.Struct(schema)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []error{err}
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("%s %s", fieldPath(fe), describe(fe)))
	}
	return errs
}

// fieldPath drops the root struct name from the validator namespace, e.g.
// "ImportSchema.availabilityRestrictions.bestCase[0].date" becomes
// "availabilityRestrictions.bestCase[0].date".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "iso4217":
		return fmt.Sprintf("%q is not an ISO 4217 currency code", fe.Value())
	case "isodate":
		return fmt.Sprintf("invalid date format %q (expected YYYY-MM-DD)", fe.Value())
	case "scenario":
		return fmt.Sprintf("invalid value %q (expected BEST_CASE, WORST_CASE or REALISTIC)", fe.Value())
	case "direction":
		return fmt.Sprintf("invalid value %q (expected START or END)", fe.Value())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
