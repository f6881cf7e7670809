// Package constants defines shared constants, types, and configuration values
// used throughout the spillboard onboarding widget.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by spillboard.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"           // Window width in dev mode
	WindowHeightEnvVar = "WINDOW_HEIGHT"          // Window height in dev mode
	LocaleEnvVar       = "SPILLBOARD_LOCALE"      // BCP 47 tag for hint text (e.g. "fr")
	BackDeviceEnvVar   = "SPILLBOARD_BACK_DEVICE" // evdev node carrying the hardware back key
	LogLevelEnvVar     = "SPILLBOARD_LOG_LEVEL"   // debug, info, warn, error

	SafeAreaTopEnvVar    = "SAFE_AREA_TOP" // Safe-area insets in pixels
	SafeAreaBottomEnvVar = "SAFE_AREA_BOTTOM"
	SafeAreaLeftEnvVar   = "SAFE_AREA_LEFT"
	SafeAreaRightEnvVar  = "SAFE_AREA_RIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
	VirtualButtonBack // System back (Android AC_BACK, evdev KEY_BACK)
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	case VirtualButtonBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// NavAction is what a virtual button means to the onboarding flow.
type NavAction int

const (
	NavNone         NavAction = iota
	NavForward                // Start on the intro, next on a step
	NavBack                   // Back one step
	NavSkip                   // Leave the onboarding
	NavHardwareBack           // System back: back on a step, host default on the intro
)

// DefaultNavAction maps a virtual button to its default onboarding action.
func DefaultNavAction(vb VirtualButton) NavAction {
	switch vb {
	case VirtualButtonA, VirtualButtonStart, VirtualButtonRight:
		return NavForward
	case VirtualButtonB, VirtualButtonLeft:
		return NavBack
	case VirtualButtonX, VirtualButtonY, VirtualButtonMenu:
		return NavSkip
	case VirtualButtonBack:
		return NavHardwareBack
	default:
		return NavNone
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing and spacing constants.
const (
	DefaultInputDelay = 20 * time.Millisecond  // Debounce delay between input events
	FrameInterval     = 16 * time.Millisecond  // Target frame time without VSync
	MaxFrameDelta     = 100 * time.Millisecond // Longer stalls are clamped so animations don't jump
)
