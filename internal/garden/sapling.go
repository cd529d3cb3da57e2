// Package garden implements the farming rules: the sapling lifecycle,
// dirt patches, spawn selection and the day cycle.
// Like the games it serves, it is pure logic with no rendering or input code.
package garden

import "github.com/vovakirdan/maysday/internal/core"

// State is a sapling's position in its lifecycle.
// Harvested saplings are removed from their room rather than kept in a state.
type State int

const (
	Collected State = iota // lying in the field, not yet planted
	Planted                // in a dirt patch, dry
	Watered                // in a dirt patch, ready to grow overnight
	Grown                  // bearing a tomato
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Collected:
		return "collected"
	case Planted:
		return "planted"
	case Watered:
		return "watered"
	case Grown:
		return "grown"
	default:
		return "unknown"
	}
}

// NativeSize is the footprint edge of a sapling at scale 1, in world units.
const NativeSize = 32.0

// Sapling is a plantable collectible.
type Sapling struct {
	ID int

	pos    core.Vec
	bounds core.Box // render footprint, always centred on pos
	state  State
	patch  *DirtPatch
	scale  float64
}

func newSapling(id int, pos core.Vec, scale float64) *Sapling {
	s := &Sapling{ID: id, state: Collected, scale: scale}
	s.SetPosition(pos)
	return s
}

// SetPosition moves the sapling and its render footprint together.
func (s *Sapling) SetPosition(p core.Vec) {
	s.pos = p
	s.bounds = core.BoxAt(p, NativeSize*s.scale, NativeSize*s.scale)
}

// Pos returns the sapling's centre.
func (s *Sapling) Pos() core.Vec { return s.pos }

// Bounds returns the render footprint.
func (s *Sapling) Bounds() core.Box { return s.bounds }

// State returns the current lifecycle state.
func (s *Sapling) State() State { return s.state }

// Patch returns the dirt patch the sapling occupies, or nil while Collected.
func (s *Sapling) Patch() *DirtPatch { return s.patch }

// Scale returns the render scale.
func (s *Sapling) Scale() float64 { return s.scale }

// Plant puts a collected sapling into a patch.
// Returns false unless the sapling is Collected.
func (s *Sapling) Plant(p *DirtPatch) bool {
	if s.state != Collected || p == nil {
		return false
	}
	s.state = Planted
	s.patch = p
	s.SetPosition(p.Pos)
	p.Planted = true
	p.Watered = false
	return true
}

// Water moves a Planted sapling to Watered and darkens its patch.
// Any other state is left alone.
func (s *Sapling) Water() bool {
	if s.state != Planted {
		return false
	}
	s.state = Watered
	s.patch.Watered = true
	return true
}

// Grow moves a Watered sapling to Grown, enlarging it by factor.
// Any other state is left alone.
func (s *Sapling) Grow(factor float64) bool {
	if s.state != Watered {
		return false
	}
	s.state = Grown
	s.scale *= factor
	s.SetPosition(s.pos)
	s.patch.Watered = false
	return true
}

// release frees the occupied patch, if any.
func (s *Sapling) release() {
	if s.patch == nil {
		return
	}
	s.patch.Planted = false
	s.patch.Watered = false
	s.patch = nil
}

// DirtPatch is a fixed planting slot holding at most one sapling.
type DirtPatch struct {
	ID      int
	Pos     core.Vec
	Planted bool
	Watered bool // visual only
}
