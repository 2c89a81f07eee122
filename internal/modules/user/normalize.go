package user

import (
	"encoding/json"
	"errors"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// arrayFields are the sub-document fields that clients may submit as
// JSON-encoded strings (multipart form data) or as structured JSON.
var arrayFields = []string{"socialLinks", "workExperience", "education", "skills"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldsFromForm flattens multipart/urlencoded form values into the
// field map the normalization stage consumes. Only the first value of
// a repeated key counts.
func FieldsFromForm(form url.Values) map[string]interface{} {
	fields := make(map[string]interface{}, len(form))
	for key, vals := range form {
		if len(vals) > 0 {
			fields[key] = vals[0]
		}
	}
	return fields
}

// NormalizeProfileFields is stage one of the update pipeline: every
// array-typed field that arrived as a string is JSON-parsed into its
// structured form. A string that fails to parse is passed through
// unchanged so the schema stage reports it against the right field.
// Absent fields stay absent.
func NormalizeProfileFields(fields map[string]interface{}) map[string]interface{} {
	for _, key := range arrayFields {
		v, ok := fields[key]
		if !ok {
			continue
		}
		s, isString := v.(string)
		if !isString {
			continue
		}
		var parsed interface{}
		if err := json.Unmarshal([]byte(s), &parsed); err == nil {
			fields[key] = parsed
		}
	}
	return fields
}

// DecodeProfileUpdate is stage two: the normalized field map is decoded
// into the canonical DTO and validated. The first violated field is
// reported; the update carries no other state at this point, so a
// failure here has no side effects.
func DecodeProfileUpdate(fields map[string]interface{}) (*ProfileUpdateDTO, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	var dto ProfileUpdateDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) && ute.Field != "" {
			return nil, &FieldError{Field: ute.Field}
		}
		return nil, &FieldError{Field: "body"}
	}

	if err := validate.Struct(&dto); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return nil, &FieldError{
				Field:  fieldPath(first.Namespace()),
				Reason: "failed " + first.Tag() + " validation",
			}
		}
		return nil, err
	}

	return &dto, nil
}

// fieldPath strips the DTO type name from a validator namespace, e.g.
// "ProfileUpdateDTO.socialLinks[0].url" -> "socialLinks[0].url".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
