package v1alpha1

import "fmt"

// ValidateSettings checks the loaded settings. requireTypeMeta is set when a
// config file was read so incorrect or missing apiVersion/kind values in the
// file are caught instead of being silently replaced by defaults.
func ValidateSettings(settings *Settings, requireTypeMeta bool) error {
	if requireTypeMeta || settings.APIVersion != "" {
		if settings.APIVersion != APIVersion {
			return fmt.Errorf("%w: %q (expected %q)", ErrInvalidAPIVersion, settings.APIVersion, APIVersion)
		}
	}

	if requireTypeMeta || settings.Kind != "" {
		if settings.Kind != Kind {
			return fmt.Errorf("%w: %q (expected %q)", ErrInvalidKind, settings.Kind, Kind)
		}
	}

	if !settings.Spec.Backend.IsValid() {
		return fmt.Errorf(
			"%w: %q (valid backends: %v)",
			ErrInvalidBackend, settings.Spec.Backend, ValidBackends(),
		)
	}

	if settings.Spec.Backend == BackendVagrantfile && settings.Spec.OutputPath == "" {
		return ErrEmptyOutputPath
	}

	return nil
}
