package vagrantfile

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// stageVariables maps stage kinds to the block variable names conventionally
// used for them in Vagrantfiles.
var stageVariables = map[string]string{
	"ansible":    "ansible",
	"shell":      "shell",
	"chef_solo":  "chef",
	"virtualbox": "vb",
	"docker":     "d",
}

// stageVariable returns the Ruby block variable name for a stage kind.
func stageVariable(kind string) string {
	if name, ok := stageVariables[kind]; ok {
		return name
	}

	return strings.ReplaceAll(kind, "_", "")
}

// rubyValue encodes a value as a Ruby literal. Strings with a leading colon
// are emitted as symbols, so customize arguments like ":id" reach the
// Vagrantfile the way Vagrant expects them.
func rubyValue(value any) string {
	switch typed := value.(type) {
	case string:
		if strings.HasPrefix(typed, ":") {
			return typed
		}

		return strconv.Quote(typed)
	case bool:
		return strconv.FormatBool(typed)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case []string:
		return rubyArray(typed)
	case []any:
		elements := make([]string, 0, len(typed))
		for _, element := range typed {
			elements = append(elements, rubyValue(element))
		}

		return "[" + strings.Join(elements, ", ") + "]"
	case map[string]string:
		pairs := make([]string, 0, len(typed))
		for _, key := range sortedMapKeys(typed) {
			pairs = append(pairs, strconv.Quote(key)+" => "+strconv.Quote(typed[key]))
		}

		return "{" + strings.Join(pairs, ", ") + "}"
	case map[string][]string:
		pairs := make([]string, 0, len(typed))
		for _, key := range sortedMapKeys(typed) {
			pairs = append(pairs, strconv.Quote(key)+" => "+rubyArray(typed[key]))
		}

		return "{" + strings.Join(pairs, ", ") + "}"
	case map[string]any:
		pairs := make([]string, 0, len(typed))
		for _, key := range sortedMapKeys(typed) {
			pairs = append(pairs, strconv.Quote(key)+" => "+rubyValue(typed[key]))
		}

		return "{" + strings.Join(pairs, ", ") + "}"
	default:
		return fmt.Sprintf("%v", typed)
	}
}

func rubyArray(elements []string) string {
	encoded := make([]string, 0, len(elements))
	for _, element := range elements {
		encoded = append(encoded, rubyValue(element))
	}

	return "[" + strings.Join(encoded, ", ") + "]"
}

func sortedMapKeys[V any](mapping map[string]V) []string {
	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}
