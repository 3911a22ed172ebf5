// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package focus implements the legacy focus resolver (spec component F):
// default focus-under-cursor logic for UI-focusable entities, yielding to
// the navigation manager whenever controller_nav_override is set.
package focus

import (
	"github.com/inputcore/engine/ecs"
	"github.com/inputcore/engine/events"
	"github.com/inputcore/engine/hid"
	"github.com/inputcore/engine/math2"
)

const coneThreshold = 0.3

// Resolver implements spec §4.8. It has no knowledge of nav.Manager: the
// engine feeds it controllerNavOverride and consumes its focus changes,
// matching spec.md §9 "Keep both; do not merge."
type Resolver struct {
	Registry ecs.Registry
	Pub      events.Publisher

	Current ecs.Entity

	// OnVibrate fires a short controller-rumble tick on a focus change
	// (spec §4.7.H analogue for the legacy resolver, §6.5
	// FOCUS_VIBRATION_INTENSITY).
	OnVibrate func(intensity float32)
}

// isFocusable reports whether e carries UI focus capability. This engine
// treats hoverEnabled as that capability's proxy, the same flag the
// cursor hover pipeline already uses to mean "UI-interactive" (spec.md
// does not add a distinct flag for this legacy path).
func isFocusable(g *ecs.GameObject) bool {
	return g != nil && g.HoverEnabled && g.Visible
}

// Update runs one frame of the legacy resolver (spec §4.8).
//
//   - mode: current HID category.
//   - controllerNavOverride: set by nav.Manager when it moved focus this
//     frame; consumed here (step 1).
//   - focusInterrupt: a modal/menu-open flag that forces focus to clear.
//   - inputLocked, paused: gate logic (component I).
//   - dir: a navigation direction, if one was requested this frame (nil
//     means "only consider entities under the cursor").
//   - cursorPos, hoverTarget: the cursor's current position and
//     currently designated hover target (used to build the candidate set
//     and the scoring anchor).
func (r *Resolver) Update(
	mode hid.Category,
	controllerNavOverride bool,
	focusInterrupt bool,
	inputLocked bool,
	paused bool,
	dir *Direction,
	cursorPos math2.Vector2,
	hoverTarget ecs.Entity,
	candidates []ecs.Entity,
) {
	if controllerNavOverride {
		if go_, ok := r.Registry.GameObject(r.Current); ok {
			go_.IsBeingFocused = true
		}
		r.publishFocus()
		return
	}

	if !mode.IsController() || focusInterrupt || (inputLocked && !paused) {
		r.clearFocus()
		return
	}

	if !r.Registry.Valid(r.Current) {
		r.Current = ecs.Null
	} else if go_, ok := r.Registry.GameObject(r.Current); !ok || !isFocusable(go_) {
		r.Current = ecs.Null
	} else if _, ok := r.Registry.Transform(r.Current); !ok {
		r.Current = ecs.Null
	} else if mode == hid.GamepadAxisCursor {
		r.Current = ecs.Null
	}

	pool := candidates
	if dir == nil {
		if !hoverTarget.IsNull() {
			pool = []ecs.Entity{hoverTarget}
		} else {
			pool = nil
		}
	}

	anchor := r.anchor(cursorPos, hoverTarget)
	best, ok := r.pickBest(pool, dir, anchor)
	if !ok {
		return
	}
	r.ClaimFocusFrom(best)
}

func (r *Resolver) anchor(cursorPos math2.Vector2, hoverTarget ecs.Entity) math2.Vector2 {
	if !r.Current.IsNull() {
		if tr, ok := r.Registry.Transform(r.Current); ok {
			return tr.Center()
		}
	}
	if !hoverTarget.IsNull() {
		if tr, ok := r.Registry.Transform(hoverTarget); ok {
			return tr.Center()
		}
	}
	return cursorPos
}

func (r *Resolver) pickBest(pool []ecs.Entity, dir *Direction, anchor math2.Vector2) (ecs.Entity, bool) {
	var best ecs.Entity
	bestScore := float32(0)
	found := false

	for _, e := range pool {
		go_, ok := r.Registry.GameObject(e)
		if !ok || !isFocusable(go_) {
			continue
		}
		tr, ok := r.Registry.Transform(e)
		if !ok {
			continue
		}
		c := tr.Center()
		diff := c.Sub(anchor)
		if dir != nil && !directionEligible(diff, *dir) {
			continue
		}
		score := diff.Manhattan()
		if !found || score < bestScore {
			best, bestScore, found = e, score, true
		}
	}
	return best, found
}

// Direction mirrors nav.Direction without importing package nav, keeping
// this package independent (spec §9 "Keep both; do not merge").
type Direction int32

const (
	Up Direction = iota
	Down
	Left
	Right
)

func directionEligible(diff math2.Vector2, dir Direction) bool {
	absX, absY := absF(diff.X), absF(diff.Y)
	if absX > absY {
		switch dir {
		case Right:
			return diff.X > 0
		case Left:
			return diff.X < 0
		}
	} else {
		switch dir {
		case Down:
			return diff.Y > 0
		case Up:
			return diff.Y < 0
		}
	}
	norm := diff.Normal()
	var component float32
	switch dir {
	case Right:
		component = norm.X
	case Left:
		component = -norm.X
	case Down:
		component = norm.Y
	case Up:
		component = -norm.Y
	}
	return component > coneThreshold
}

func absF(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// ClaimFocusFrom redirects focus to e, emitting a vibration tick and
// publishing UIElementFocused if it actually changed (spec §4.8 step 5).
func (r *Resolver) ClaimFocusFrom(e ecs.Entity) {
	if e == r.Current {
		return
	}
	if go_, ok := r.Registry.GameObject(r.Current); ok {
		go_.IsBeingFocused = false
	}
	r.Current = e
	if go_, ok := r.Registry.GameObject(e); ok {
		go_.IsBeingFocused = true
	}
	if r.OnVibrate != nil {
		r.OnVibrate(0.7) // spec §6.5 FOCUS_VIBRATION_INTENSITY
	}
	r.publishFocus()
}

func (r *Resolver) clearFocus() {
	if r.Current.IsNull() {
		return
	}
	if go_, ok := r.Registry.GameObject(r.Current); ok {
		go_.IsBeingFocused = false
	}
	r.Current = ecs.Null
	r.publishFocus()
}

func (r *Resolver) publishFocus() {
	if r.Pub == nil {
		return
	}
	r.Pub.Publish(events.UIElementFocused, events.UIElementFocusedEvent{Entity: uint64(r.Current)})
}
