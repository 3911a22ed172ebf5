// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ecs

import "github.com/inputcore/engine/math2"

// GameObject is the per-entity interaction-state component the engine reads
// and mutates every frame: flags controlling which gestures an entity
// responds to, the derived state those gestures produce, and the optional
// callbacks invoked on state transitions.
type GameObject struct {
	// Ability flags, set by the owning application.
	ClickEnabled            bool
	DragEnabled             bool
	RightClickEnabled       bool
	HoverEnabled            bool
	CollisionEnabled        bool
	Visible                 bool
	IgnoresPause            bool
	TriggerOnReleaseEnabled bool

	// Derived state, set by the engine.
	IsColliding    bool
	IsBeingHovered bool
	IsBeingDragged bool
	IsBeingFocused bool
	IsUnderOverlay bool

	// ScrollPaneDisplacement is stamped by scroll-into-view propagation
	// (nav package) onto every descendant of a scrolled pane.
	ScrollPaneDisplacement math2.Vector2

	// Callbacks. Any of these may be nil. All are invoked synchronously
	// from inside the engine's per-frame update and are guarded so a
	// panicking callback cannot corrupt engine state (the cursor package's
	// invoke helper recovers and logs the panic).
	OnClick      func(e Entity)
	OnRightClick func(e Entity)
	OnHover      func(e Entity)
	OnStopHover  func(e Entity)
	OnDrag       func(e Entity, delta math2.Vector2)
	OnStopDrag   func(e Entity)
	OnRelease    func(e Entity)
	OnUpdate     func(e Entity)
}

// Transform is the axis-aligned rectangle an entity occupies, used for
// collision testing and for spatial navigation midpoints.
type Transform struct {
	X, Y, W, H float32
}

// Rect returns the transform as a [math2.Box2].
func (t Transform) Rect() math2.Box2 {
	return math2.B2FromPosSize(math2.Vec2(t.X, t.Y), math2.Vec2(t.W, t.H))
}

// Center returns the midpoint of the transform, used as the reference
// point for spatial directional resolution.
func (t Transform) Center() math2.Vector2 {
	return t.Rect().Center()
}

// UIConfig is opaque to the core engine; it is carried only so that
// application UI code and the engine can share an entity without the
// engine needing to know its contents.
type UIConfig struct {
	Data any
}

// UIScrollComponent describes a scrollable viewport's current offsets and
// limits. The engine mutates Offset and PrevOffset via scroll-into-view and
// wheel/directional scroll propagation, and ShowUntilT via scroll-into-view
// (nav package); everything else is set by the UI layer.
type UIScrollComponent struct {
	Offset       math2.Vector2
	PrevOffset   math2.Vector2
	MinOffset    math2.Vector2
	MaxOffset    math2.Vector2
	Vertical     bool
	Horizontal   bool
	ViewportSize math2.Vector2
	ShowUntilT   float64
	ShowSeconds  float64
}

// UIPaneParentRef points a scrollable descendant back at its containing
// scroll pane entity.
type UIPaneParentRef struct {
	Pane Entity
}

// TextInput is opaque to the engine: no package of this module reads it,
// including its active flag.
type TextInput struct {
	Text     string
	Cursor   int
	MaxLen   int
	AllCaps  bool
	IsActive bool
	OnSubmit func(text string)
}
