package validate

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/baechuer/real-time-ressys/services/resource-service/internal/domain"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	// report fields by their JSON names
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return val
}

// DecodeJSON decodes the body into dst. Unknown fields are ignored. Errors raised by
// the domain's own decoders (role, null checks) pass through unchanged; anything
// else becomes a generic validation error.
func DecodeJSON(r *http.Request, dst any) error {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		if domain.CodeOf(err) != "" {
			return err
		}
		return domain.ErrValidationMeta("invalid json body", map[string]string{
			"body": "malformed JSON or invalid fields",
		})
	}
	return nil
}

// Struct runs the validate tags on s.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return domain.ErrValidation(err.Error())
	}

	meta := make(map[string]string, len(ves))
	msgs := make([]string, 0, len(ves))
	for _, fe := range ves {
		msg := formatFieldError(fe)
		meta[fe.Field()] = msg
		msgs = append(msgs, msg)
	}
	return domain.ErrValidationMeta(strings.Join(msgs, "; "), meta)
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// ParseID parses an integer path parameter. Ids that are not stored, zero and
// negatives included, are left for the store to report as not found.
func ParseID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.ErrValidationMeta("invalid path param", map[string]string{
			name: "must be an integer",
		})
	}
	return id, nil
}

// QueryInt reads the first present key from keys; def is returned when none is set.
func QueryInt(r *http.Request, def int, keys ...string) (int, error) {
	q := r.URL.Query()
	for _, k := range keys {
		raw := q.Get(k)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, domain.ErrValidationMeta("invalid query param", map[string]string{
				k: "must be an integer",
			})
		}
		return n, nil
	}
	return def, nil
}
