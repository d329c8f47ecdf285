package v1alpha1_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testrig-dev/testrig/pkg/apis/settings/v1alpha1"
)

func TestValidateSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		mutate          func(*v1alpha1.Settings)
		requireTypeMeta bool
		wantErr         error
	}{
		{
			name:   "accepts defaults",
			mutate: func(*v1alpha1.Settings) {},
		},
		{
			name: "accepts defaults when file was found",
			mutate: func(*v1alpha1.Settings) {
			},
			requireTypeMeta: true,
		},
		{
			name: "rejects wrong apiVersion",
			mutate: func(s *v1alpha1.Settings) {
				s.APIVersion = "testrig.dev/v1"
			},
			wantErr: v1alpha1.ErrInvalidAPIVersion,
		},
		{
			name: "rejects missing apiVersion from config file",
			mutate: func(s *v1alpha1.Settings) {
				s.APIVersion = ""
			},
			requireTypeMeta: true,
			wantErr:         v1alpha1.ErrInvalidAPIVersion,
		},
		{
			name: "tolerates missing apiVersion without config file",
			mutate: func(s *v1alpha1.Settings) {
				s.APIVersion = ""
				s.Kind = ""
			},
		},
		{
			name: "rejects wrong kind",
			mutate: func(s *v1alpha1.Settings) {
				s.Kind = "Cluster"
			},
			wantErr: v1alpha1.ErrInvalidKind,
		},
		{
			name: "rejects unknown backend",
			mutate: func(s *v1alpha1.Settings) {
				s.Spec.Backend = "Libvirt"
			},
			wantErr: v1alpha1.ErrInvalidBackend,
		},
		{
			name: "rejects empty output path for vagrantfile backend",
			mutate: func(s *v1alpha1.Settings) {
				s.Spec.OutputPath = ""
			},
			wantErr: v1alpha1.ErrEmptyOutputPath,
		},
		{
			name: "accepts empty output path for plan backend",
			mutate: func(s *v1alpha1.Settings) {
				s.Spec.Backend = v1alpha1.BackendPlan
				s.Spec.OutputPath = ""
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			settings := v1alpha1.NewSettings()
			testCase.mutate(settings)

			err := v1alpha1.ValidateSettings(settings, testCase.requireTypeMeta)

			if testCase.wantErr == nil {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, testCase.wantErr)
		})
	}
}
