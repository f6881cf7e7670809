// Package spillboard renders a themeable onboarding flow with SDL2: an intro
// panel followed by a linear sequence of steps, with a background panel that
// "spills" out from behind the bottom sheet as the user moves forward.
//
// The package handles SDL initialization, input (keyboard, game controller,
// touch and an optional evdev hardware back key), theming and drawing. The
// transition engine itself lives in the SDL-free spill package.
package spillboard

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/spillboard/pkg/spillboard/constants"
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/internal"
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/spill"
)

// Options configures spillboard initialization.
type Options struct {
	WindowTitle    string                 // Window title displayed in windowed mode
	WindowOptions  internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	LogPath        string                 // Full path for log file including filename (creates parent directories)
	FontPath       string                 // TTF used for every font role unless the theme overrides it
	ThemeFile      string                 // Optional TOML theme overrides, applied beneath Props.Theme
	Locale         string                 // BCP 47 tag for hint text; falls back to SPILLBOARD_LOCALE
	BackDevicePath string                 // evdev node for a hardware back key; falls back to SPILLBOARD_BACK_DEVICE
	AllowOverlay   bool                   // Centre the widget over a backdrop on wide displays
}

type settings struct {
	initialized    bool
	baseTheme      Theme
	locale         string
	backDevicePath string
	allowOverlay   bool
}

var current settings

// Init initializes the SDL subsystems, theming and logging.
// Must be called before Run.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if level := os.Getenv(constants.LogLevelEnvVar); level != "" {
		internal.SetInternalLogLevel(internal.ParseLogLevel(level))
	} else if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	base := internal.DefaultTheme(options.FontPath)
	if options.ThemeFile != "" {
		overrides, err := LoadThemeFile(options.ThemeFile)
		if err != nil {
			return err
		}
		base, err = internal.ResolveTheme(base, overrides, spill.Insets{})
		if err != nil {
			return &ConfigError{Field: "ThemeFile", Reason: "colour", Err: err}
		}
	}

	s := settings{
		baseTheme:      base,
		locale:         options.Locale,
		backDevicePath: options.BackDevicePath,
		allowOverlay:   options.AllowOverlay,
	}
	if s.locale == "" {
		s.locale = os.Getenv(constants.LocaleEnvVar)
	}
	if s.backDevicePath == "" {
		s.backDevicePath = os.Getenv(constants.BackDeviceEnvVar)
	}

	title := options.WindowTitle
	if title == "" {
		title = "spillboard"
	}

	if err := internal.Init(title, options.WindowOptions); err != nil {
		return NewInfrastructureError("init", err)
	}

	s.initialized = true
	current = s

	internal.GetInternalLogger().Debug("spillboard initialized",
		"locale", s.locale,
		"overlay", s.allowOverlay,
		"back_device", s.backDevicePath)

	return nil
}

// Close releases all SDL resources.
// Must be called before program exit to prevent resource leaks.
func Close() {
	if !current.initialized {
		return
	}
	internal.SDLCleanup()
	current = settings{}
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}

func internalLogger() *slog.Logger {
	if !current.initialized {
		return slog.New(slog.DiscardHandler)
	}
	return internal.GetInternalLogger()
}
