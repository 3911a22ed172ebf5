// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cursor

import (
	"github.com/inputcore/engine/ecs"
	"github.com/inputcore/engine/hid"
)

// UpdateCollisions runs the broad-phase query against the current cursor
// position, populates CollisionList/NodesAtCursor, and sets isColliding on
// every hit (spec §4.5 "Collision set"). isBeingHovered is not touched.
func (m *Manager) UpdateCollisions() {
	s := &m.State
	s.CollisionList = s.CollisionList[:0]
	s.NodesAtCursor = s.NodesAtCursor[:0]
	s.ActiveScrollPane = ecs.Null

	var hits []ecs.Entity
	if m.Broad != nil {
		hits = m.Broad(s.Position)
	}

	for _, e := range hits {
		if e == m.CursorID || e == m.WorldID {
			continue
		}
		go_, ok := m.Registry.GameObject(e)
		if !ok || !go_.CollisionEnabled {
			continue
		}
		go_.IsColliding = true
		s.CollisionList = append(s.CollisionList, e)
		s.NodesAtCursor = append(s.NodesAtCursor, e)
		if _, isPane := m.Registry.UIScroll(e); isPane {
			s.ActiveScrollPane = e
		}
	}

	// Entities not in CollisionList keep isColliding/isBeingHovered=false;
	// clearing those is the registry's own per-frame component reset (a
	// view over collisionEnabled), not something this pipeline iterates.
}

// UpdateHover selects the designated hover target per the §4.5 priority
// rules and latches HoveringHandled=false on change so the event pipeline
// fires hover/stop-hover callbacks.
func (m *Manager) UpdateHover(mode hid.Category) {
	s := &m.State
	s.PrevHoveringTarget = s.HoveringTarget
	s.PrevDesignatedHoverTarget = s.DesignatedHoverTarget

	target := m.resolveHover(mode)

	s.HoveringTarget = target
	s.DesignatedHoverTarget = target
	if target != s.PrevDesignatedHoverTarget {
		s.HoveringHandled = false
	}
}

func (m *Manager) resolveHover(mode hid.Category) ecs.Entity {
	s := &m.State

	if m.Locked != nil && m.Locked() {
		return m.WorldID
	}

	if mode.IsController() && !s.FocusedTarget.IsNull() {
		if go_, ok := m.Registry.GameObject(s.FocusedTarget); ok && go_.HoverEnabled && go_.IsColliding {
			return s.FocusedTarget
		}
	}

	for _, e := range s.CollisionList {
		go_, ok := m.Registry.GameObject(e)
		if !ok || !go_.HoverEnabled {
			continue
		}
		if mode != hid.Touch && go_.IsBeingDragged {
			continue
		}
		return e
	}

	return m.WorldID
}
