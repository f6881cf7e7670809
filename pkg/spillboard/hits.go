package spillboard

import "github.com/veandco/go-sdl2/sdl"

type hitRegion struct {
	rect  sdl.Rect
	onTap func()
}

// hitRegions are rebuilt every frame. Later regions sit on top.
type hitRegions struct {
	regions []hitRegion
}

func (h *hitRegions) reset() {
	h.regions = h.regions[:0]
}

func (h *hitRegions) add(rect sdl.Rect, onTap func()) {
	if onTap == nil || rect.W <= 0 || rect.H <= 0 {
		return
	}
	h.regions = append(h.regions, hitRegion{rect: rect, onTap: onTap})
}

// tap runs the topmost region containing (x, y) and reports whether one did.
func (h *hitRegions) tap(x, y int32) bool {
	p := sdl.Point{X: x, Y: y}
	for i := len(h.regions) - 1; i >= 0; i-- {
		if p.InRect(&h.regions[i].rect) {
			h.regions[i].onTap()
			return true
		}
	}
	return false
}
