// Package physics resolves movement of a single body against static
// axis-aligned obstacles.
package physics

import (
	"slices"

	"github.com/vovakirdan/maysday/internal/core"
)

// Resolver moves a body through a fixed set of obstacles.
type Resolver struct {
	obstacles []core.Box
}

// NewResolver creates a resolver bound to the given obstacles.
func NewResolver(obstacles []core.Box) *Resolver {
	r := &Resolver{}
	r.Bind(obstacles)
	return r
}

// Bind replaces the obstacle set with a copy of obstacles.
func (r *Resolver) Bind(obstacles []core.Box) {
	r.obstacles = slices.Clone(obstacles)
}

// Obstacles returns the bound obstacles.
func (r *Resolver) Obstacles() []core.Box {
	return r.obstacles
}

// Blocked reports whether body overlaps any obstacle.
func (r *Resolver) Blocked(body core.Box) bool {
	for _, o := range r.obstacles {
		if body.Intersects(o) {
			return true
		}
	}
	return false
}

// Move displaces body by (dx, dy), one axis at a time. When the body would
// enter an obstacle it stops flush against it on that axis.
func (r *Resolver) Move(body core.Box, dx, dy float64) core.Box {
	if dx != 0 {
		body.X += dx
		for _, o := range r.obstacles {
			if !body.Intersects(o) {
				continue
			}
			if dx > 0 {
				body.X = o.X - body.W
			} else {
				body.X = o.Right()
			}
		}
	}

	if dy != 0 {
		body.Y += dy
		for _, o := range r.obstacles {
			if !body.Intersects(o) {
				continue
			}
			if dy > 0 {
				body.Y = o.Y - body.H
			} else {
				body.Y = o.Top()
			}
		}
	}
	return body
}
