package stage

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidOptionValue is returned when an option or method argument has the wrong type.
var ErrInvalidOptionValue = errors.New("invalid value")

// String coerces value to a string.
func String(name string, value any) (string, error) {
	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf(
			"%w: %q expects a string, got %T", ErrInvalidOptionValue, name, value,
		)
	}

	return str, nil
}

// Bool coerces value to a bool.
func Bool(name string, value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf(
			"%w: %q expects a boolean, got %T", ErrInvalidOptionValue, name, value,
		)
	}

	return b, nil
}

// Int coerces value to an int.
func Int(name string, value any) (int, error) {
	switch number := value.(type) {
	case int:
		return number, nil
	case int64:
		return int(number), nil
	default:
		return 0, fmt.Errorf(
			"%w: %q expects an integer, got %T", ErrInvalidOptionValue, name, value,
		)
	}
}

// Duration coerces value to a duration. Bare numbers are seconds, strings
// use Go duration syntax.
func Duration(name string, value any) (time.Duration, error) {
	switch typed := value.(type) {
	case int:
		return time.Duration(typed) * time.Second, nil
	case int64:
		return time.Duration(typed) * time.Second, nil
	case float64:
		return time.Duration(typed * float64(time.Second)), nil
	case string:
		duration, err := time.ParseDuration(typed)
		if err != nil {
			return 0, fmt.Errorf(
				"%w: %q expects a duration, got %q", ErrInvalidOptionValue, name, typed,
			)
		}

		return duration, nil
	default:
		return 0, fmt.Errorf(
			"%w: %q expects a duration, got %T", ErrInvalidOptionValue, name, value,
		)
	}
}

// StringSlice coerces value to a slice of strings. A bare string becomes a
// single-element slice.
func StringSlice(name string, value any) ([]string, error) {
	switch typed := value.(type) {
	case string:
		return []string{typed}, nil
	case []string:
		return typed, nil
	case []any:
		result := make([]string, 0, len(typed))

		for _, element := range typed {
			str, ok := element.(string)
			if !ok {
				return nil, fmt.Errorf(
					"%w: %q expects a list of strings, got a %T element",
					ErrInvalidOptionValue, name, element,
				)
			}

			result = append(result, str)
		}

		return result, nil
	default:
		return nil, fmt.Errorf(
			"%w: %q expects a list of strings, got %T", ErrInvalidOptionValue, name, value,
		)
	}
}

// StringMap coerces value to a map of string keys to string values.
func StringMap(name string, value any) (map[string]string, error) {
	switch typed := value.(type) {
	case map[string]string:
		return typed, nil
	case map[string]any:
		result := make(map[string]string, len(typed))

		for key, element := range typed {
			str, ok := element.(string)
			if !ok {
				return nil, fmt.Errorf(
					"%w: %q expects string values, got a %T value for key %q",
					ErrInvalidOptionValue, name, element, key,
				)
			}

			result[key] = str
		}

		return result, nil
	default:
		return nil, fmt.Errorf(
			"%w: %q expects a mapping, got %T", ErrInvalidOptionValue, name, value,
		)
	}
}

// AnyMap coerces value to a mapping with arbitrary values.
func AnyMap(name string, value any) (map[string]any, error) {
	mapping, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf(
			"%w: %q expects a mapping, got %T", ErrInvalidOptionValue, name, value,
		)
	}

	return mapping, nil
}

// GroupsMap coerces value to a map of group names to member name lists.
func GroupsMap(name string, value any) (map[string][]string, error) {
	switch typed := value.(type) {
	case map[string][]string:
		return typed, nil
	case map[string]any:
		result := make(map[string][]string, len(typed))

		for group, members := range typed {
			memberNames, err := StringSlice(name, members)
			if err != nil {
				return nil, fmt.Errorf("group %q: %w", group, err)
			}

			result[group] = memberNames
		}

		return result, nil
	default:
		return nil, fmt.Errorf(
			"%w: %q expects a mapping of groups, got %T", ErrInvalidOptionValue, name, value,
		)
	}
}
