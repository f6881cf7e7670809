// Package locale provides the translated strings spillboard draws itself:
// footer hints and the step counter. Step and intro copy is supplied by the
// caller and is never translated here.
package locale

import (
	"embed"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFS embed.FS

// MessageID names a translatable string.
type MessageID string

const (
	HintStart   MessageID = "HintStart"
	HintNext    MessageID = "HintNext"
	HintFinish  MessageID = "HintFinish"
	HintBack    MessageID = "HintBack"
	HintSkip    MessageID = "HintSkip"
	StepCounter MessageID = "StepCounter"
)

// Catalog resolves messages for one language, falling back to English.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
}

// New loads the embedded message files and picks the closest supported
// language to tag. An empty or unparsable tag selects English.
func New(tag string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := messageFS.ReadDir("messages")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(messageFS, path.Join("messages", entry.Name())); err != nil {
			return nil, err
		}
	}

	matcher := language.NewMatcher(bundle.LanguageTags())
	requested, err := language.Parse(tag)
	if err != nil {
		requested = language.English
	}
	matched, _, _ := matcher.Match(requested)
	base, _ := matched.Base()
	resolved := language.Make(base.String())

	return &Catalog{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, resolved.String(), language.English.String()),
		tag:       resolved,
	}, nil
}

// Language returns the language the catalog resolved to.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Text returns the message for id. Unknown ids come back verbatim so a
// missing translation is visible rather than blank.
func (c *Catalog) Text(id MessageID) string {
	s, err := c.localizer.Localize(&i18n.LocalizeConfig{MessageID: string(id)})
	if err != nil {
		return string(id)
	}
	return s
}

// Counter renders "current of total" with 1-based current.
func (c *Catalog) Counter(index, total int) string {
	s, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID: string(StepCounter),
		TemplateData: map[string]int{
			"Current": index + 1,
			"Total":   total,
		},
	})
	if err != nil {
		return string(StepCounter)
	}
	return s
}
