package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BrandonKowalski/spillboard/pkg/spillboard"
	"gopkg.in/yaml.v3"
)

// deck is the on-disk description of an onboarding.
type deck struct {
	Intro spillboard.IntroProps     `yaml:"intro"`
	Steps []spillboard.DefaultStep  `yaml:"steps"`
	Theme spillboard.ThemeOverrides `yaml:"theme"`
}

// loadDeck reads a deck file. Relative image paths are resolved against the
// deck's directory so decks can ship next to their artwork.
func loadDeck(path string) (*deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck: %w", err)
	}
	defer f.Close()

	var d deck
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("parse deck %s: %w", path, err)
	}

	base := filepath.Dir(path)
	d.Intro.Image = resolve(base, d.Intro.Image)
	for i := range d.Steps {
		d.Steps[i].Image = resolve(base, d.Steps[i].Image)
	}

	return &d, nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func (d *deck) steps() []spillboard.Step {
	steps := make([]spillboard.Step, len(d.Steps))
	for i, s := range d.Steps {
		steps[i] = s
	}
	return steps
}
