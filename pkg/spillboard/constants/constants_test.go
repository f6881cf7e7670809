package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultNavAction(t *testing.T) {
	t.Parallel()

	tests := map[VirtualButton]NavAction{
		VirtualButtonA:          NavForward,
		VirtualButtonStart:      NavForward,
		VirtualButtonRight:      NavForward,
		VirtualButtonB:          NavBack,
		VirtualButtonLeft:       NavBack,
		VirtualButtonX:          NavSkip,
		VirtualButtonY:          NavSkip,
		VirtualButtonMenu:       NavSkip,
		VirtualButtonBack:       NavHardwareBack,
		VirtualButtonUp:         NavNone,
		VirtualButtonSelect:     NavNone,
		VirtualButtonUnassigned: NavNone,
	}

	for button, want := range tests {
		assert.Equal(t, want, DefaultNavAction(button), button.GetName())
	}
}

func TestIsDevMode(t *testing.T) {
	t.Setenv("ENVIRONMENT", Development)
	assert.True(t, IsDevMode())

	t.Setenv("ENVIRONMENT", "")
	assert.False(t, IsDevMode())
}
