package internal

import (
	"testing"

	"github.com/BrandonKowalski/spillboard/pkg/spillboard/spill"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestAlpha(t *testing.T) {
	assert.Equal(t, uint8(0), Alpha(255, 0))
	assert.Equal(t, uint8(0), Alpha(255, -1))
	assert.Equal(t, uint8(255), Alpha(255, 1.5))
	assert.Equal(t, uint8(128), Alpha(255, 0.5))
	assert.Equal(t, uint8(64), Alpha(128, 0.5))
}

func TestToSDLRect(t *testing.T) {
	got := ToSDLRect(spill.Rect{X: 15.6, Y: 0.4, W: 100.5, H: 20})
	assert.Equal(t, sdl.Rect{X: 16, Y: 0, W: 101, H: 20}, got)
}

func TestFit(t *testing.T) {
	w, h := Fit(200, 100, 300)
	assert.Equal(t, [2]int32{200, 100}, [2]int32{w, h})

	w, h = Fit(400, 200, 100)
	assert.Equal(t, [2]int32{100, 50}, [2]int32{w, h})

	w, h = Fit(0, 100, 100)
	assert.Equal(t, [2]int32{0, 0}, [2]int32{w, h})
}
