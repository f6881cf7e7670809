package main

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/spillboard/pkg/spillboard"
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/platform/cannoli"
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/platform/safearea"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	deck       string
	font       string
	themeFile  string
	platform   string
	locale     string
	backDevice string
	logPath    string
	logLevel   string
	duration   time.Duration
	overlay    bool
	showClose  bool
	hideBack   bool
	hints      bool
	counter    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "spillboard-demo --deck onboarding.yaml",
		Short:         "Play an onboarding deck with the spillboard widget",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.deck, "deck", "", "YAML deck describing the intro and steps")
	cmd.Flags().StringVar(&flags.font, "font", "", "TTF font used for every text role")
	cmd.Flags().StringVar(&flags.themeFile, "theme", "", "TOML theme overrides")
	cmd.Flags().StringVar(&flags.platform, "platform", "", "Platform preset (cannoli)")
	cmd.Flags().StringVar(&flags.locale, "locale", "", "Language for hint text, e.g. fr")
	cmd.Flags().StringVar(&flags.backDevice, "back-device", "", "evdev node carrying a hardware back key")
	cmd.Flags().StringVar(&flags.logPath, "log-path", "", "Log file path")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "Application log level")
	cmd.Flags().DurationVar(&flags.duration, "duration", 500*time.Millisecond, "Transition duration")
	cmd.Flags().BoolVar(&flags.overlay, "overlay", false, "Centre the widget over a backdrop on wide windows")
	cmd.Flags().BoolVar(&flags.showClose, "close", true, "Show the close control on steps")
	cmd.Flags().BoolVar(&flags.hideBack, "hide-back", false, "Hide the back button on steps")
	cmd.Flags().BoolVar(&flags.hints, "hints", false, "Show controller hints")
	cmd.Flags().BoolVar(&flags.counter, "counter", false, "Show the step counter")
	_ = cmd.MarkFlagRequired("deck")

	return cmd
}

func runDemo(cmd *cobra.Command, flags *rootFlags) error {
	d, err := loadDeck(flags.deck)
	if err != nil {
		return err
	}

	insets, err := safearea.FromEnv()
	if err != nil {
		return err
	}

	theme, font, err := platformTheme(flags.platform, d.Theme, flags.font)
	if err != nil {
		return err
	}

	if err := spillboard.Init(spillboard.Options{
		WindowTitle:    "spillboard",
		LogPath:        flags.logPath,
		FontPath:       font,
		ThemeFile:      flags.themeFile,
		Locale:         flags.locale,
		BackDevicePath: flags.backDevice,
		AllowOverlay:   flags.overlay,
	}); err != nil {
		return err
	}
	defer spillboard.Close()

	spillboard.SetRawLogLevel(flags.logLevel)
	logger := spillboard.GetLogger()

	onboarding, err := spillboard.New(spillboard.Props{
		Steps:             d.steps(),
		Intro:             d.Intro,
		OnComplete:        func() { logger.Info("Onboarding completed") },
		OnSkip:            func() { logger.Info("Onboarding skipped") },
		OnStepChange:      func(i int) { logger.Info("Step changed", "index", i) },
		AnimationDuration: flags.duration,
		ShowCloseButton:   flags.showClose,
		HideBackButton:    flags.hideBack,
		ShowControlHints:  flags.hints,
		ShowStepCounter:   flags.counter,
		Theme:             theme,
		Insets:            insets,
	})
	if err != nil {
		return err
	}

	result, err := onboarding.Run()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s at step %d\n", result.Action, result.LastIndex)
	return nil
}

// platformTheme layers the deck's theme over the platform preset and picks
// the preset's font when none was given.
func platformTheme(platform string, deckTheme spillboard.ThemeOverrides, font string) (spillboard.ThemeOverrides, string, error) {
	switch platform {
	case "":
		return deckTheme, font, nil
	case "cannoli":
		if font == "" {
			font = cannoli.FontPath
		}
		return cannoli.Theme().Layer(deckTheme), font, nil
	default:
		return spillboard.ThemeOverrides{}, "", fmt.Errorf("unknown platform %q", platform)
	}
}
