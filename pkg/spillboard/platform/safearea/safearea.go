// Package safearea provides safe-area inset sources for hosts that have no
// windowing system to ask, such as handhelds with rounded screen corners or
// a bezel that hides a few rows of pixels.
package safearea

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/spillboard/pkg/spillboard/constants"
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/spill"
)

// Fixed reports the same insets every frame.
type Fixed spill.Insets

func (f Fixed) Insets() spill.Insets {
	return spill.Insets(f)
}

// FromEnv reads SAFE_AREA_TOP, SAFE_AREA_BOTTOM, SAFE_AREA_LEFT and
// SAFE_AREA_RIGHT once. Unset variables are zero.
func FromEnv() (Fixed, error) {
	var f Fixed
	fields := []struct {
		name string
		dst  *float64
	}{
		{constants.SafeAreaTopEnvVar, &f.Top},
		{constants.SafeAreaBottomEnvVar, &f.Bottom},
		{constants.SafeAreaLeftEnvVar, &f.Left},
		{constants.SafeAreaRightEnvVar, &f.Right},
	}

	for _, field := range fields {
		raw := os.Getenv(field.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return Fixed{}, fmt.Errorf("%s=%q: want a non-negative number of pixels", field.name, raw)
		}
		*field.dst = v
	}

	return f, nil
}
