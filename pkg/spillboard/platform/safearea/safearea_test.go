package safearea

import (
	"testing"

	"github.com/BrandonKowalski/spillboard/pkg/spillboard/constants"
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/spill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixed(t *testing.T) {
	f := Fixed{Top: 24, Bottom: 34}
	assert.Equal(t, spill.Insets{Top: 24, Bottom: 34}, f.Insets())
}

func TestFromEnv(t *testing.T) {
	t.Setenv(constants.SafeAreaTopEnvVar, "44")
	t.Setenv(constants.SafeAreaBottomEnvVar, "34.5")
	t.Setenv(constants.SafeAreaLeftEnvVar, "")
	t.Setenv(constants.SafeAreaRightEnvVar, "")

	f, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, spill.Insets{Top: 44, Bottom: 34.5}, f.Insets())
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	tests := []string{"abc", "-3"}
	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			t.Setenv(constants.SafeAreaTopEnvVar, raw)
			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), constants.SafeAreaTopEnvVar)
		})
	}
}
