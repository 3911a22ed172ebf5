// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cursor

import (
	baseerrors "github.com/inputcore/engine/base/errors"
	"github.com/inputcore/engine/ecs"
	"github.com/inputcore/engine/hid"
	"github.com/inputcore/engine/math2"
)

// BroadPhase is the external collision collaborator: it returns every
// entity whose transform currently covers pos (spec §4.5, "broad-phase
// (external)").
type BroadPhase func(pos math2.Vector2) []ecs.Entity

// Config bundles the tunable thresholds the cursor pipeline consults
// (spec §6.5), so callers can source them from package config without the
// cursor package importing it directly.
type Config struct {
	ClickTimeoutSeconds   float32
	MinMovementDistSq     float32
	TouchMinHoverSeconds  float32
	ScrollSpeed           float32
	MouseMovementThresh   float32
}

// DefaultConfig returns the bit-exact §6.5 defaults relevant to the
// cursor pipeline.
func DefaultConfig() Config {
	return Config{
		ClickTimeoutSeconds:  0.05,
		MinMovementDistSq:    500,
		TouchMinHoverSeconds: 0.1,
		ScrollSpeed:          10.0,
		MouseMovementThresh:  1.0,
	}
}

// Manager is the cursor state machine (spec components D, E). It owns a
// [State] and the collaborators needed to drive it each frame: an ECS
// registry, a broad-phase collision query, and the HID state that gates
// position source and hover selection.
type Manager struct {
	State State
	Cfg   Config

	Registry   ecs.Registry
	Broad      BroadPhase
	CursorID   ecs.Entity // dedicated cursor entity (component A)
	WorldID    ecs.Entity // world container entity

	// Locked reports whether any frame/wipe-style input lock or pause (for
	// entities that don't ignore it) is currently suppressing hover/click.
	Locked func() bool

	timescale float32
}

// NewManager returns a ready Manager bound to registry, with the dedicated
// cursor and world-container handles created elsewhere (component A,
// engine.Init) and passed in.
func NewManager(registry ecs.Registry, cursorID, worldID ecs.Entity, broad BroadPhase) *Manager {
	return &Manager{
		State:     State{FocusedTarget: ecs.Null, HoveringTarget: ecs.Null},
		Cfg:       DefaultConfig(),
		Registry:  registry,
		Broad:     broad,
		CursorID:  cursorID,
		WorldID:   worldID,
		timescale: 1,
	}
}

// SetTimescale scales click-timeout comparisons (spec §5, "scaled by
// timescale").
func (m *Manager) SetTimescale(ts float32) {
	if ts <= 0 {
		ts = 1
	}
	m.timescale = ts
}

// invoke calls fn, recovering and logging any panic so a misbehaving
// callback cannot corrupt cursor state (spec §7 "Callback throws").
func invoke(fn func()) {
	if fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			baseerrors.Log(panicError{r})
		}
	}()
	fn()
}

type panicError struct{ v any }

func (p panicError) Error() string { return "cursor: callback panic" }

// UpdatePosition resolves this frame's cursor position by the §4.3
// priority order and writes it into both the cursor state and the
// dedicated cursor entity's transform, if present.
func (m *Manager) UpdatePosition(mode hid.Category, mousePos math2.Vector2, mouseValid bool, explicitSet *math2.Vector2) {
	pos, ok := m.consumeSnap()
	switch {
	case ok:
	case (mode == hid.Mouse || mode == hid.Touch) && mouseValid:
		pos = mousePos
	case mode.IsController() && m.Registry.Valid(m.State.FocusedTarget):
		if tr, ok := m.Registry.Transform(m.State.FocusedTarget); ok {
			pos = tr.Center()
		} else {
			pos = m.State.Position
		}
	case explicitSet != nil:
		pos = *explicitSet
	default:
		pos = m.State.Position
	}

	m.State.Position = pos
	if tr, ok := m.Registry.Transform(m.CursorID); ok {
		tr.X, tr.Y = pos.X, pos.Y
	}
}

// consumeSnap applies a pending one-shot snap request, if any (spec §4.4).
func (m *Manager) consumeSnap() (math2.Vector2, bool) {
	if !m.State.Snap.Pending {
		return math2.Vector2{}, false
	}
	snap := m.State.Snap
	m.State.Snap = SnapRequest{}

	if prev := m.State.FocusedTarget; !prev.IsNull() {
		if go_, ok := m.Registry.GameObject(prev); ok {
			go_.IsBeingFocused = false
		}
	}

	pos := snap.Position
	if snap.Kind == "node" && !snap.Node.IsNull() {
		if tr, ok := m.Registry.Transform(snap.Node); ok {
			pos = tr.Center()
		}
		m.State.FocusedTarget = snap.Node
	}
	if go_, ok := m.Registry.GameObject(m.State.FocusedTarget); ok {
		go_.IsBeingFocused = true
	}
	return pos, true
}

// SnapToNode stages a one-shot snap to node (spec §4.4). The next
// UpdatePosition consumes it whatever the input mode; neither call checks
// for controller mode.
func (m *Manager) SnapToNode(node ecs.Entity, pos math2.Vector2) {
	m.State.Snap = SnapRequest{Pending: true, Node: node, Position: pos, Kind: "node"}
}

// SnapToPosition stages a one-shot snap to a bare position, with no focus
// target change.
func (m *Manager) SnapToPosition(pos math2.Vector2) {
	m.State.Snap = SnapRequest{Pending: true, Position: pos, Kind: "transform"}
}

// ModifyContextLayer implements the §4.4 context-stack deltas. delta must
// be one of +1, -1, -1000, -2000.
func (m *Manager) ModifyContextLayer(delta int) {
	s := &m.State
	switch delta {
	case 1:
		s.ContextStack = append(s.ContextStack, ContextEntry{
			Focused:  s.FocusedTarget,
			Position: s.Position,
		})
		s.ContextLayer++
	case -1:
		if s.ContextLayer > 0 {
			if len(s.ContextStack) > 0 {
				s.ContextStack = s.ContextStack[:len(s.ContextStack)-1]
			}
			s.ContextLayer--
		}
	case -1000:
		if len(s.ContextStack) > 1 {
			s.ContextStack = s.ContextStack[:1]
		}
		s.ContextLayer = 0
	case -2000:
		s.ContextStack = nil
		s.ContextLayer = 0
	}
}
