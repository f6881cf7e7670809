package main

import (
	"testing"

	"github.com/BrandonKowalski/spillboard/pkg/spillboard"
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/platform/cannoli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformTheme(t *testing.T) {
	var deckTheme spillboard.ThemeOverrides
	deckTheme.Colors.Background.Primary = "#FF6B00"

	theme, font, err := platformTheme("cannoli", deckTheme, "")
	require.NoError(t, err)
	assert.Equal(t, cannoli.FontPath, font)
	assert.Equal(t, "#FF6B00", theme.Colors.Background.Primary, "deck colours sit on top of the preset")
	assert.Equal(t, cannoli.Theme().Colors.Background.Accent, theme.Colors.Background.Accent)
	assert.Equal(t, cannoli.FontPath, theme.FontFamily)

	_, font, err = platformTheme("cannoli", deckTheme, "/fonts/mine.ttf")
	require.NoError(t, err)
	assert.Equal(t, "/fonts/mine.ttf", font)

	theme, font, err = platformTheme("", deckTheme, "")
	require.NoError(t, err)
	assert.Equal(t, deckTheme, theme)
	assert.Empty(t, font)

	_, _, err = platformTheme("nextui", deckTheme, "")
	require.Error(t, err)
}
