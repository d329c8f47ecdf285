// Package merge implements the recursive defaults merge that fills missing
// keys in a machine mapping from the machine-defaults mapping.
package merge

import (
	"fmt"
	"maps"
	"slices"
)

// Mismatch records a structural type mismatch found during a merge: the same
// key holds a mapping on one side and a non-mapping value on the other. The
// target's existing value is kept and the mismatch is reported to the caller.
type Mismatch struct {
	// Path is the dotted key path from the merge root.
	Path string
	// Target is the value found in the target mapping.
	Target any
	// Defaults is the value found in the defaults mapping.
	Defaults any
}

// Message renders the mismatch as a warning line.
func (m Mismatch) Message() string {
	return fmt.Sprintf(
		"cannot merge defaults into %q: %T and %T do not match; keeping the existing value",
		m.Path, m.Target, m.Defaults,
	)
}

// Merge fills keys missing from target with the values from defaults,
// recursing into keys that hold mappings on both sides. Keys present in
// target with a non-nil value are never overwritten. Neither input is
// mutated; untouched subtrees may be shared with the inputs.
//
// An empty or nil target returns defaults as-is (or an empty mapping when
// defaults is also nil). Mismatches are returned in sorted key order.
func Merge(target, defaults map[string]any) (map[string]any, []Mismatch) {
	if len(target) == 0 {
		if defaults == nil {
			return map[string]any{}, nil
		}

		return defaults, nil
	}

	var mismatches []Mismatch

	result := mergeLevel(target, defaults, "", &mismatches)

	return result, mismatches
}

// mergeLevel merges one nesting level. It clones target so assignments never
// reach the caller's map, then walks the defaults keys in sorted order for
// deterministic mismatch reporting.
func mergeLevel(
	target, defaults map[string]any,
	path string,
	mismatches *[]Mismatch,
) map[string]any {
	result := maps.Clone(target)

	for _, key := range sortedKeys(defaults) {
		defaultsValue := defaults[key]

		targetValue, present := result[key]
		if !present || targetValue == nil {
			result[key] = defaultsValue

			continue
		}

		defaultsMapping, defaultsIsMapping := defaultsValue.(map[string]any)
		targetMapping, targetIsMapping := targetValue.(map[string]any)

		switch {
		case defaultsIsMapping && targetIsMapping:
			result[key] = mergeLevel(targetMapping, defaultsMapping, joinPath(path, key), mismatches)
		case defaultsIsMapping != targetIsMapping:
			*mismatches = append(*mismatches, Mismatch{
				Path:     joinPath(path, key),
				Target:   targetValue,
				Defaults: defaultsValue,
			})
		}
	}

	return result
}

func sortedKeys(mapping map[string]any) []string {
	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}

	return path + "." + key
}
