// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"github.com/inputcore/engine/ecs"
	"github.com/inputcore/engine/math2"
)

// ScrollIntoView implements §4.7.F: it moves the scroll pane containing e
// just far enough that e's vertical extent lies within the visible
// range, clamped to the pane's configured offset bounds, and stamps the
// resulting displacement onto every descendant of the pane.
func (m *Manager) ScrollIntoView(e ecs.Entity) {
	ref, ok := m.Registry.UIPaneParent(e)
	if !ok || ref.Pane.IsNull() {
		return
	}
	pane := ref.Pane
	scroll, ok := m.Registry.UIScroll(pane)
	if !ok {
		return
	}
	entityTr, ok := m.Registry.Transform(e)
	if !ok {
		return
	}
	paneTr, ok := m.Registry.Transform(pane)
	if !ok {
		return
	}

	entityTop := entityTr.Y
	entityBottom := entityTop + entityTr.H
	paneTop := paneTr.Y
	visibleTop := paneTop - scroll.Offset.Y
	visibleBottom := visibleTop + scroll.ViewportSize.Y

	newOffsetY := scroll.Offset.Y
	changed := false
	switch {
	case entityTop < visibleTop:
		newOffsetY = -(entityTop - paneTop)
		changed = true
	case entityBottom > visibleBottom:
		newOffsetY = -(entityBottom - paneTop - scroll.ViewportSize.Y)
		changed = true
	}
	if !changed {
		return
	}

	newOffsetY = clampF(newOffsetY, scroll.MinOffset.Y, scroll.MaxOffset.Y)
	if newOffsetY == scroll.Offset.Y {
		return
	}

	scroll.PrevOffset = scroll.Offset
	scroll.Offset.Y = newOffsetY
	scroll.ShowUntilT = m.Now + scroll.ShowSeconds
	m.propagateDisplacement(pane, scroll.Offset)
}

// ScrollGroup applies a wheel/directional delta to the first scroll-
// capable pane among group's entities; vertical only in this revision
// (spec §4.7.F scroll_group).
func (m *Manager) ScrollGroup(group string, dx, dy float32) {
	g, ok := m.Groups[group]
	if !ok {
		return
	}
	for _, e := range g.Entries {
		if _, ok := m.Registry.UIScroll(e); !ok {
			continue
		}
		m.ApplyWheelScroll(e, dy)
		return
	}
}

// ApplyWheelScroll applies a vertical wheel delta to pane's offset,
// clamps, and propagates displacement (spec §4.7.F "Wheel integration").
func (m *Manager) ApplyWheelScroll(pane ecs.Entity, wheelDY float32) {
	scroll, ok := m.Registry.UIScroll(pane)
	if !ok {
		return
	}
	scroll.PrevOffset = scroll.Offset
	scroll.Offset.Y = clampF(scroll.Offset.Y+wheelDY, scroll.MinOffset.Y, scroll.MaxOffset.Y)
	m.propagateDisplacement(pane, scroll.Offset)
}

// propagateDisplacement stamps scrollPaneDisplacement = (0, -offset.Y)
// onto every descendant of pane, bottom-up (deepest descendants first).
// Every descendant receives this pane's offset only; offsets of other
// scroll panes nested inside or above it are not combined in.
func (m *Manager) propagateDisplacement(pane ecs.Entity, offset math2.Vector2) {
	var walk func(e ecs.Entity)
	walk = func(e ecs.Entity) {
		for _, child := range m.Registry.Children(e) {
			walk(child)
			if go_, ok := m.Registry.GameObject(child); ok {
				go_.ScrollPaneDisplacement = math2.Vec2(0, -offset.Y)
			}
		}
	}
	walk(pane)
}

func clampF(v, lo, hi float32) float32 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
