// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine wires the action, hid, cursor, nav, and focus packages
// together behind the three-call integration surface spec §6.1 names:
// Init, Update, FinalizeFrame. It owns no algorithm of its own; every
// decision lives in the package that owns that concern, per spec.md's
// component split.
package engine

import (
	"github.com/inputcore/engine/action"
	"github.com/inputcore/engine/config"
	"github.com/inputcore/engine/cursor"
	"github.com/inputcore/engine/device"
	"github.com/inputcore/engine/ecs"
	"github.com/inputcore/engine/events"
	"github.com/inputcore/engine/focus"
	"github.com/inputcore/engine/hid"
	"github.com/inputcore/engine/math2"
	"github.com/inputcore/engine/nav"
)

// MousePos bundles a pointer sample with its validity flag, matching
// [cursor.Manager.UpdatePosition]'s mouseValid parameter (spec §4.3
// step "mouse/touch position, if valid this frame").
type MousePos struct {
	Pos   math2.Vector2
	Valid bool
}

// InputState bundles every subsystem instance the application drives
// through one frame (spec §6.1 "init(registry) -> InputState").
type InputState struct {
	CursorID ecs.Entity
	WorldID  ecs.Entity

	Action  *action.Manager
	HID     *hid.Arbiter
	Cursor  *cursor.Manager
	Pipe    *cursor.Pipeline
	Nav     *nav.Manager
	Focus   *focus.Resolver
	Locks   *Locks
	Paused  bool

	Constants config.Constants
}

// Init creates a ready InputState bound to registry. cursorID and
// worldID are the dedicated cursor entity and world-container entity:
// this module holds no entity-creation API of its own (ecs.Registry is
// a read/mutate collaborator, not a factory; see DESIGN.md), so the host
// application allocates them through its own ECS and passes the handles
// in, matching the contract cursor.NewManager already documents.
func Init(registry ecs.Registry, cursorID, worldID ecs.Entity, broad cursor.BroadPhase, pub events.Publisher, cfg config.Constants) *InputState {
	locks := NewLocks()
	locks.Clear()

	cm := cursor.NewManager(registry, cursorID, worldID, broad)
	cm.Cfg = cursor.Config{
		ClickTimeoutSeconds:  cfg.DefaultClickTimeout,
		MinMovementDistSq:    cfg.CursorMinimumMovementDistance,
		TouchMinHoverSeconds: cfg.TouchInputMinimumHoverTime,
		ScrollSpeed:          cfg.ScrollSpeed,
		MouseMovementThresh:  cfg.MouseMovementThreshold,
	}
	cm.Locked = locks.Active

	navMgr := nav.NewManager(registry)
	navMgr.SetRepeatConfig(nav.RepeatConfig{
		InitialDelay: cfg.ButtonRepeatInitialDelay,
		RepeatRate:   cfg.ButtonRepeatSubsequentDelay,
	})
	navMgr.OnFocusChanged = func(e ecs.Entity) {
		cm.State.FocusedTarget = e
		cm.State.ControllerNavOverride = true
	}
	navMgr.OnScrollIntoView = navMgr.ScrollIntoView

	fr := &focus.Resolver{Registry: registry}

	return &InputState{
		CursorID:  cursorID,
		WorldID:   worldID,
		Action:    action.NewManager(),
		HID:       hid.NewArbiter(),
		Cursor:    cm,
		Pipe:      cursor.NewPipeline(cm, pub),
		Nav:       navMgr,
		Focus:     fr,
		Locks:     locks,
		Constants: cfg,
	}
}

// categoryFor maps a raw device event to the HID category it represents
// (spec §4.2's mode table keys off exactly this distinction).
func categoryFor(e device.Event) hid.Category {
	switch e.Kind {
	case device.Keyboard:
		return hid.KeyBoard
	case device.Mouse:
		return hid.Mouse
	case device.Touch:
		return hid.Touch
	case device.GamepadButton:
		return hid.GamepadButton
	case device.GamepadAxis:
		return hid.GamepadAxis
	default:
		return hid.None
	}
}

// Update runs one frame (spec §5 phase order: device poll -> action
// dispatch -> HID arbitration -> cursor position -> collision -> focus
// -> cursor events -> scroll -> [tick/decay in FinalizeFrame]). events
// is this frame's already-polled raw samples (device poll is external,
// spec §2 component A); navDir, if non-nil, is the directional input
// this frame should feed to the active navigation group, resolved by
// the caller from whichever bound action fired (e.g. "ui_up").
func (s *InputState) Update(mousePos MousePos, dt float32, raw []device.Event, activeNavGroup string, navDir *nav.Direction) {
	// Action dispatch + HID arbitration run off the same raw stream.
	for _, e := range raw {
		s.Action.DispatchRaw(e)
		s.HID.Activity(categoryFor(e))
		// GamepadID/name plumbing (hid.Arbiter.SetGamepad) is left to the
		// host's own gamepad adapter, since device.Event carries no
		// controller name for this generic dispatch loop to read.
	}

	mode := s.HID.State().LastType

	if navDir != nil && activeNavGroup != "" {
		s.Nav.Navigate(activeNavGroup, *navDir)
	}
	s.Nav.Tick(dt)

	s.Cursor.UpdatePosition(mode, mousePos.Pos, mousePos.Valid, nil)
	s.Cursor.UpdateCollisions()
	s.Cursor.UpdateHover(mode)

	s.runFocus(mode, navDir)

	// Cursor events (spec §4.6): Tick must run before this frame's
	// press/release edges are dispatched, per [cursor.Pipeline.Tick]'s
	// own contract.
	touch := mode == hid.Touch
	s.Pipe.Tick(dt)
	for _, e := range raw {
		switch e.Kind {
		case device.Mouse:
			switch e.Button {
			case device.Left:
				if e.Down {
					s.Pipe.Press(false)
				} else {
					s.Pipe.Release()
				}
			case device.Right:
				if e.Down {
					s.Pipe.RightPress()
				}
			}
		case device.Touch:
			if e.Down {
				s.Pipe.Press(true)
			} else {
				s.Pipe.Release()
			}
		}
	}
	if !s.Cursor.State.DraggingTarget.IsNull() {
		s.Pipe.Drag()
	}
	s.Pipe.DispatchHover(touch)

	// Wheel integration (spec §4.7.F): apply only while this frame's
	// collision pass still finds a scroll pane under the cursor
	// (UpdateCollisions resets ActiveScrollPane to ecs.Null otherwise).
	if pane := s.Cursor.State.ActiveScrollPane; !pane.IsNull() {
		for _, e := range raw {
			if e.Wheel.Y != 0 {
				s.Nav.ApplyWheelScroll(pane, -e.Wheel.Y*s.Cursor.Cfg.ScrollSpeed)
			}
		}
	}
}

func (s *InputState) runFocus(mode hid.Category, navDir *nav.Direction) {
	var fd *focus.Direction
	if navDir != nil {
		d := focusDirectionOf(*navDir)
		fd = &d
	}
	override := s.Cursor.State.ControllerNavOverride
	s.Cursor.State.ControllerNavOverride = false
	if override {
		// nav.Manager is authoritative this frame: adopt its freshly
		// chosen focus as the resolver's own, so step 1 marks the right
		// entity (spec §4.8 step 1 "mark current focus's isBeingFocused").
		s.Focus.Current = s.Cursor.State.FocusedTarget
	}

	s.Focus.Update(
		mode,
		override,
		false, // focus interrupt: host-specific modal flag, not modeled generically here
		s.Locks.Active(),
		s.Paused,
		fd,
		s.Cursor.State.Position,
		s.Cursor.State.DesignatedHoverTarget,
		s.Cursor.State.CollisionList,
	)
}

func focusDirectionOf(d nav.Direction) focus.Direction {
	switch d {
	case nav.Up:
		return focus.Up
	case nav.Down:
		return focus.Down
	case nav.Left:
		return focus.Left
	default:
		return focus.Right
	}
}

// FinalizeFrame ticks action hold timers and clears edge flags, and
// releases this frame's one-shot locks (spec §6.1 "must run at end of
// frame").
func (s *InputState) FinalizeFrame(dt float32) {
	s.Action.TickHolds(dt)
	s.Action.Decay()
	s.Locks.EndFrame()
}
