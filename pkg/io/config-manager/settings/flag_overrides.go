package settings

import (
	"fmt"
	"reflect"
	"strconv"
)

// flagValueSetter is an interface for types that can set their value from a string.
// This is typically implemented by enum types that satisfy pflag.Value.
type flagValueSetter interface {
	Set(value string) error
}

// setFieldValueFromFlag sets a field's value from a flag string representation.
// It dispatches based on the field's concrete type.
func setFieldValueFromFlag(fieldPtr any, raw string) error {
	if setter, ok := fieldPtr.(flagValueSetter); ok {
		err := setter.Set(raw)
		if err != nil {
			return fmt.Errorf("set flag value: %w", err)
		}

		return nil
	}

	switch ptr := fieldPtr.(type) {
	case *string:
		*ptr = raw

		return nil
	case *bool:
		return setBoolFromFlag(ptr, raw)
	default:
		return nil
	}
}

func setBoolFromFlag(target *bool, raw string) error {
	if raw == "" {
		*target = false

		return nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("parse bool %q: %w", raw, err)
	}

	*target = value

	return nil
}

// setFieldValue assigns a default value to a field through its pointer.
// Values convertible to the field type are converted first, so plain strings
// can default enum-typed fields.
func setFieldValue(fieldPtr, value any) {
	if fieldPtr == nil || value == nil {
		return
	}

	field := reflect.ValueOf(fieldPtr)
	if field.Kind() != reflect.Ptr || field.IsNil() {
		return
	}

	field = field.Elem()
	source := reflect.ValueOf(value)

	if !source.Type().AssignableTo(field.Type()) {
		if !source.Type().ConvertibleTo(field.Type()) {
			return
		}

		source = source.Convert(field.Type())
	}

	field.Set(source)
}

// isFieldEmpty checks if a field pointer points to an empty/zero value.
func isFieldEmpty(fieldPtr any) bool {
	if fieldPtr == nil {
		return true
	}

	fieldVal := reflect.ValueOf(fieldPtr)
	if fieldVal.Kind() != reflect.Ptr || fieldVal.IsNil() {
		return true
	}

	fieldVal = fieldVal.Elem()

	return fieldVal.IsZero()
}
