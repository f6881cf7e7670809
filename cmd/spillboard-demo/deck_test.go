package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/spillboard/pkg/spillboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDeck = `
intro:
  title: Welcome to
  subtitle: Spillboard
  button: Get started
steps:
  - label: Step 1
    title: Swipe through
    description: Each step brings its own artwork.
    button_label: Next
    image: art/one.png
    position: top
  - label: Step 2
    title: Almost there
    description: The background spills out as you go.
    button_label: Done
    image: /abs/two.png
    position: bottom
theme:
  colors:
    background:
      primary: "#FF6B00"
`

func writeDeck(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDeck(t *testing.T) {
	path := writeDeck(t, sampleDeck)

	d, err := loadDeck(path)
	require.NoError(t, err)

	assert.Equal(t, "Get started", d.Intro.Button)
	require.Len(t, d.Steps, 2)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "art/one.png"), d.Steps[0].Image)
	assert.Equal(t, "/abs/two.png", d.Steps[1].Image)
	assert.Equal(t, spillboard.PositionBottom, d.Steps[1].Position)
	assert.Equal(t, "#FF6B00", d.Theme.Colors.Background.Primary)

	props := spillboard.Props{
		Steps:        d.steps(),
		Intro:        d.Intro,
		OnComplete:   func() {},
		OnSkip:       func() {},
		OnStepChange: func(int) {},
		Theme:        d.Theme,
	}
	require.NoError(t, props.Validate())
}

func TestLoadDeckRejectsUnknownFields(t *testing.T) {
	path := writeDeck(t, "intro:\n  titel: typo\n")
	_, err := loadDeck(path)
	require.Error(t, err)
}

func TestLoadDeckMissingFile(t *testing.T) {
	_, err := loadDeck(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
