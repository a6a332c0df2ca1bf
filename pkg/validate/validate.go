// Package validate wraps go-playground/validator with the site's custom rules
// and turns validation failures into per-field messages keyed by JSON name.
package validate

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// emailPattern is deliberately loose: something@something.something, no whitespace.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Messages maps a JSON field name to per-tag messages, e.g.
// {"email": {"required": "Email is required", "basicemail": "Invalid email format"}}.
type Messages map[string]map[string]string

// Validator holds a configured validator instance.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator with the custom tags registered:
//   - basicemail: loose email format
//   - objectid:   24 hex character document identifier
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("basicemail", func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return primitive.IsValidObjectID(fl.Field().String())
	})
	return &Validator{v: v}
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Struct validates s and returns nil or a map of field -> message. Fields
// without a configured message get a generic one. Only the first failing
// rule per field is reported.
func (val *Validator) Struct(s interface{}, msgs Messages) map[string]string {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		if byTag, ok := msgs[field]; ok {
			if m, ok := byTag[fe.Tag()]; ok {
				out[field] = m
				continue
			}
		}
		out[field] = field + " is invalid"
	}
	return out
}

// Var validates a single value against a tag expression.
func (val *Validator) Var(field interface{}, tag string) error {
	return val.v.Var(field, tag)
}
