package herostep

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// MaxFOVRange is the maximum distance in the hero's field of view.
const MaxFOVRange = MapWidth

// FOVVision is the default Vision: a symmetric shadow casting field of view
// over a fully lit level, blocked by obstructed terrain, closed doors and
// boulders.
type FOVVision struct {
	fov      *rl.FOV
	visible  CacheGrid[bool]
	blind    bool
	seeInvis bool
}

// NewFOVVision returns a field of view covering the whole map.
func NewFOVVision() *FOVVision {
	return &FOVVision{
		fov:     rl.NewFOV(gruid.NewRange(0, 0, MapWidth, MapHeight)),
		visible: CacheGrid[bool](nil).New(),
	}
}

// Update implements Vision. It discovers every cell in view.
func (v *FOVVision) Update(l *Level, h *Hero) {
	v.visible = v.visible.New()
	v.blind = h.Has(StatusBlind)
	v.seeInvis = h.Is(PropSeeInvisible)
	if v.blind {
		return
	}
	passable := func(p gruid.Point) bool {
		return !IsObstructed(l.At(p)) && !l.ClosedDoor(p) && !l.BoulderAt(p)
	}
	for _, p := range v.fov.SSCVisionMap(h.P, MaxFOVRange, passable, true) {
		v.visible.Set(p, true)
		l.Discover(p)
	}
	v.visible.Set(h.P, true)
}

// CanSee implements Vision.
func (v *FOVVision) CanSee(p gruid.Point) bool {
	return v.visible.At(p)
}

// CanSpot implements Vision.
func (v *FOVVision) CanSpot(m *Monster) bool {
	if v.blind || m.Hidden {
		return false
	}
	if m.Invisible && !v.seeInvis {
		return false
	}
	return v.visible.At(m.P)
}
