package utils

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ValidationErrors collects field validation failures. It implements error
// so services can return it directly.
type ValidationErrors map[string]string

// Add records an error for field.
func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

// HasErrors reports whether any validation failed.
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// Error joins all failures into one stable, field-sorted string.
func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}

	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return strings.Join(parts, ", ")
}

// StructValidator checks struct fields against their validate tags.
//
// Supported rules:
//   - required: the field must not be empty (nil for pointers)
//   - min=n / max=n: bounds for numeric fields, length bounds for strings
type StructValidator struct{}

// NewValidator creates a new StructValidator.
func NewValidator() *StructValidator {
	return &StructValidator{}
}

// Validate checks every tagged field of data, which must be a struct or a
// pointer to one. Field names in the result come from the json tag.
func (v *StructValidator) Validate(data interface{}) ValidationErrors {
	errors := make(ValidationErrors)

	val := reflect.ValueOf(data)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		errors.Add("_error", "validation target must be a struct")
		return errors
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		typeField := typ.Field(i)

		validateTag := typeField.Tag.Get("validate")
		if validateTag == "" {
			continue
		}

		fieldName := typeField.Name
		if jsonTag := typeField.Tag.Get("json"); jsonTag != "" {
			parts := strings.Split(jsonTag, ",")
			if parts[0] != "" && parts[0] != "-" {
				fieldName = parts[0]
			}
		}

		for _, rule := range strings.Split(validateTag, ",") {
			if msg := validateField(field, rule); msg != "" {
				errors.Add(fieldName, msg)
				break // report only the first failure per field
			}
		}
	}

	return errors
}

// validateField applies a single rule to a field value.
func validateField(field reflect.Value, rule string) string {
	parts := strings.SplitN(rule, "=", 2)
	ruleName := parts[0]

	var param string
	if len(parts) > 1 {
		param = parts[1]
	}

	switch ruleName {
	case "required":
		if isEmptyValue(field) {
			return "is required"
		}
	case "min":
		return checkMinValue(field, param)
	case "max":
		return checkMaxValue(field, param)
	}

	return ""
}

// isEmptyValue reports whether a field holds its zero value.
func isEmptyValue(field reflect.Value) bool {
	if !field.IsValid() {
		return true
	}

	switch field.Kind() {
	case reflect.String:
		return field.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return field.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return field.Float() == 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return field.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return field.IsNil()
	}

	return false
}

func checkMinValue(field reflect.Value, param string) string {
	min := 0
	fmt.Sscanf(param, "%d", &min)

	switch field.Kind() {
	case reflect.String:
		if field.String() != "" && len(field.String()) < min {
			return fmt.Sprintf("must be at least %d characters", min)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Int() < int64(min) {
			return fmt.Sprintf("must be at least %d", min)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if field.Uint() < uint64(min) {
			return fmt.Sprintf("must be at least %d", min)
		}
	}
	return ""
}

func checkMaxValue(field reflect.Value, param string) string {
	max := 0
	fmt.Sscanf(param, "%d", &max)

	switch field.Kind() {
	case reflect.String:
		if len(field.String()) > max {
			return fmt.Sprintf("must be at most %d characters", max)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Int() > int64(max) {
			return fmt.Sprintf("must be at most %d", max)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if field.Uint() > uint64(max) {
			return fmt.Sprintf("must be at most %d", max)
		}
	}
	return ""
}
