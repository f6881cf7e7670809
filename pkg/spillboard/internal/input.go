package internal

import (
	"github.com/BrandonKowalski/spillboard/pkg/spillboard/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// InputKind classifies a translated SDL event.
type InputKind int

const (
	InputNone InputKind = iota
	InputButton
	InputTap
	InputQuit
)

// InputEvent is an SDL event reduced to what the widget reacts to.
type InputEvent struct {
	Kind   InputKind
	Button constants.VirtualButton
	X, Y   float64 // window pixels, InputTap only
}

var keyMap = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_RETURN:    constants.VirtualButtonA,
	sdl.K_SPACE:     constants.VirtualButtonA,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_s:         constants.VirtualButtonX,
	sdl.K_TAB:       constants.VirtualButtonSelect,
	sdl.K_ESCAPE:    constants.VirtualButtonBack,
	sdl.K_AC_BACK:   constants.VirtualButtonBack,
}

var controllerMap = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_A:          constants.VirtualButtonA,
	sdl.CONTROLLER_BUTTON_B:          constants.VirtualButtonB,
	sdl.CONTROLLER_BUTTON_X:          constants.VirtualButtonX,
	sdl.CONTROLLER_BUTTON_Y:          constants.VirtualButtonY,
	sdl.CONTROLLER_BUTTON_START:      constants.VirtualButtonStart,
	sdl.CONTROLLER_BUTTON_BACK:       constants.VirtualButtonSelect,
	sdl.CONTROLLER_BUTTON_GUIDE:      constants.VirtualButtonMenu,
	sdl.CONTROLLER_BUTTON_DPAD_UP:    constants.VirtualButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:  constants.VirtualButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:  constants.VirtualButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT: constants.VirtualButtonRight,
}

// KeyToButton maps a keyboard key to a virtual button.
func KeyToButton(key sdl.Keycode) constants.VirtualButton {
	return keyMap[key]
}

// ControllerToButton maps a game controller button to a virtual button.
func ControllerToButton(b sdl.GameControllerButton) constants.VirtualButton {
	return controllerMap[b]
}

// TranslateEvent reduces an SDL event. Buttons fire on press, taps on
// release; key repeats are dropped. Touch arrives as synthesized mouse
// events, so finger events are ignored to avoid double taps.
func TranslateEvent(event sdl.Event) InputEvent {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return InputEvent{Kind: InputQuit}

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return InputEvent{}
		}
		if b := KeyToButton(e.Keysym.Sym); b != constants.VirtualButtonUnassigned {
			return InputEvent{Kind: InputButton, Button: b}
		}

	case *sdl.ControllerButtonEvent:
		if e.Type != sdl.CONTROLLERBUTTONDOWN {
			return InputEvent{}
		}
		if b := ControllerToButton(sdl.GameControllerButton(e.Button)); b != constants.VirtualButtonUnassigned {
			return InputEvent{Kind: InputButton, Button: b}
		}

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			OpenController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			CloseController(e.Which)
		}

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONUP && e.Button == sdl.BUTTON_LEFT {
			return InputEvent{Kind: InputTap, X: float64(e.X), Y: float64(e.Y)}
		}
	}

	return InputEvent{}
}
