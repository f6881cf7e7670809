package internal

import (
	"fmt"

	"github.com/BrandonKowalski/spillboard/pkg/spillboard/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up SDL, its image and font extensions, and the window.
func Init(title string, winOpts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		sdl.Quit()
		return fmt.Errorf("sdl_image init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		img.Quit()
		sdl.Quit()
		return fmt.Errorf("sdl_ttf init: %w", err)
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1")

	if winOpts.IsZero() {
		if constants.IsDevMode() {
			winOpts = WindowOptions{Resizable: true}
		} else {
			winOpts = WindowOptions{Borderless: true, FullscreenDesktop: true}
		}
	}

	w, err := initWindow(title, winOpts)
	if err != nil {
		ttf.Quit()
		img.Quit()
		sdl.Quit()
		return err
	}
	window = w

	openAttachedControllers()

	return nil
}

func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	CloseAllControllers()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
