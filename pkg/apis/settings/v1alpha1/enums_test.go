package v1alpha1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1alpha1 "github.com/testrig-dev/testrig/pkg/apis/settings/v1alpha1"
)

func TestBackend_Set(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expected  v1alpha1.Backend
		wantError bool
	}{
		{
			name:      "vagrantfile_lowercase",
			input:     "vagrantfile",
			expected:  v1alpha1.BackendVagrantfile,
			wantError: false,
		},
		{
			name:      "vagrantfile_uppercase",
			input:     "VAGRANTFILE",
			expected:  v1alpha1.BackendVagrantfile,
			wantError: false,
		},
		{
			name:      "plan_exact",
			input:     "Plan",
			expected:  v1alpha1.BackendPlan,
			wantError: false,
		},
		{
			name:      "plan_lowercase",
			input:     "plan",
			expected:  v1alpha1.BackendPlan,
			wantError: false,
		},
		{
			name:      "invalid_backend",
			input:     "Terraform",
			wantError: true,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var backend v1alpha1.Backend

			err := backend.Set(testCase.input)
			if testCase.wantError {
				require.Error(t, err)
				require.ErrorIs(t, err, v1alpha1.ErrInvalidBackend)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testCase.expected, backend)
			}
		})
	}
}

func TestBackend_StringAndType(t *testing.T) {
	t.Parallel()

	backend := v1alpha1.BackendPlan
	assert.Equal(t, "Plan", backend.String())
	assert.Equal(t, "Backend", backend.Type())
}

func TestBackend_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, v1alpha1.BackendVagrantfile.IsValid())
	assert.True(t, v1alpha1.BackendPlan.IsValid())
	assert.False(t, v1alpha1.Backend("Libvirt").IsValid())
	assert.False(t, v1alpha1.Backend("").IsValid())
}

func TestValidBackends(t *testing.T) {
	t.Parallel()

	backends := v1alpha1.ValidBackends()
	assert.Contains(t, backends, v1alpha1.BackendVagrantfile)
	assert.Contains(t, backends, v1alpha1.BackendPlan)
	assert.Len(t, backends, 2)
}
