package testcase

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	testcasev1alpha1 "github.com/testrig-dev/testrig/pkg/apis/testcase/v1alpha1"
)

// readTestCaseDocument reads and parses the test case file into a mapping.
// The document root is either a single machine mapping or a mapping with a
// machines sequence; telling the two apart is left to extractMachineDocuments.
func readTestCaseDocument(path string) (map[string]any, error) {
	if path == "" {
		return nil, testcasev1alpha1.ErrConfigFileNotFound
	}

	content, err := os.ReadFile(path) //nolint:gosec // Path is user-supplied configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, testcasev1alpha1.ErrConfigFileNotFound
		}

		return nil, fmt.Errorf("%w: %w", testcasev1alpha1.ErrConfigFile, err)
	}

	var document any

	err = yaml.Unmarshal(content, &document)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", testcasev1alpha1.ErrConfigFile, err)
	}

	mapping, ok := normalizeValue(document).(map[string]any)
	if !ok {
		return nil, testcasev1alpha1.ErrConfigFileStructure
	}

	return mapping, nil
}

// readMachineDefaults reads and parses the machine-defaults file. A missing
// file is not an error and yields empty defaults; a present but unreadable,
// malformed, or non-mapping file is.
func readMachineDefaults(path string) (map[string]any, error) {
	if path == "" {
		return map[string]any{}, nil
	}

	content, err := os.ReadFile(path) //nolint:gosec // Path is user-supplied configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}

		return nil, fmt.Errorf("%w: %w", testcasev1alpha1.ErrMachineDefaults, err)
	}

	var document any

	err = yaml.Unmarshal(content, &document)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", testcasev1alpha1.ErrMachineDefaults, err)
	}

	mapping, ok := normalizeValue(document).(map[string]any)
	if !ok {
		return nil, testcasev1alpha1.ErrMachineDefaultsStructure
	}

	return mapping, nil
}

// extractMachineDocuments splits the parsed document into one mapping per
// machine, in document order. A document without the machines key is a
// single-machine document; a null machines value means no machines at all.
func extractMachineDocuments(document map[string]any) ([]map[string]any, error) {
	value, found := document[testcasev1alpha1.MachinesKey]
	if !found {
		return []map[string]any{document}, nil
	}

	if value == nil {
		return []map[string]any{}, nil
	}

	sequence, ok := value.([]any)
	if !ok {
		return nil, testcasev1alpha1.ErrMachinesStructure
	}

	documents := make([]map[string]any, 0, len(sequence))

	for index, entry := range sequence {
		mapping, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf(
				"machines[%d]: %w", index, testcasev1alpha1.ErrMachineEntryStructure,
			)
		}

		documents = append(documents, mapping)
	}

	return documents, nil
}

// normalizeValue rewrites parsed YAML so every mapping is a map[string]any,
// including mappings nested in sequences. Non-string keys are stringified.
func normalizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		normalized := make(map[string]any, len(typed))
		for key, entry := range typed {
			normalized[key] = normalizeValue(entry)
		}

		return normalized
	case map[any]any:
		normalized := make(map[string]any, len(typed))
		for key, entry := range typed {
			normalized[fmt.Sprint(key)] = normalizeValue(entry)
		}

		return normalized
	case []any:
		normalized := make([]any, len(typed))
		for index, entry := range typed {
			normalized[index] = normalizeValue(entry)
		}

		return normalized
	default:
		return value
	}
}
