// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"math"

	"golang.org/x/exp/slices"

	"github.com/inputcore/engine/ecs"
)

func (m *Manager) repeatStateFor(group string) *RepeatState {
	rs, ok := m.RepeatStates[group]
	if !ok {
		rs = &RepeatState{}
		m.RepeatStates[group] = rs
	}
	return rs
}

// eligible reports whether e is a live, non-disabled entity (the
// "valid+active+enabled" test used throughout §4.7.D).
func (m *Manager) eligible(e ecs.Entity) bool {
	return !e.IsNull() && m.Registry.Valid(e) && m.IsEntityEnabled(e)
}

// gateRepeat implements §4.7.D Step 1. It returns false if this
// navigation event must be rejected (still mid-interval on a held
// direction).
func (m *Manager) gateRepeat(group string, dir Direction) bool {
	rs := m.repeatStateFor(group)
	if !rs.HasLastDir || rs.LastDir != dir {
		rs.LastDir = dir
		rs.HasLastDir = true
		rs.RepeatCount = 0
		rs.TimeUntilRepeat = 0
		rs.InitialDone = false
	}
	if !rs.InitialDone {
		rs.InitialDone = true
		rs.TimeUntilRepeat = m.RepeatConfig.InitialDelay
		return true
	}
	if rs.TimeUntilRepeat > 0 {
		return false
	}
	rs.RepeatCount++
	interval := m.RepeatConfig.RepeatRate * float32(math.Pow(float64(m.RepeatConfig.Acceleration), float64(rs.RepeatCount)))
	if interval < m.RepeatConfig.MinRepeatRate {
		interval = m.RepeatConfig.MinRepeatRate
	}
	rs.TimeUntilRepeat = interval
	return true
}

// Navigate moves group's focus one step in dir (spec §4.7.D). It is the
// single entry point driving spatial/linear resolution, explicit-neighbor
// overrides, and inter-group/layer transitions.
func (m *Manager) Navigate(group string, dir Direction) {
	if !m.gateRepeat(group, dir) {
		return
	}

	g, ok := m.Groups[group]
	if !ok || !g.Active {
		return
	}
	if len(g.Entries) == 0 {
		g.SelectedIndex = -1
		return
	}
	if m.ActiveLayer != "" {
		l, ok := m.Layers[m.ActiveLayer]
		if !ok || !slices.Contains(l.Groups, group) {
			return
		}
	}

	// Step 3: stale-focus repair.
	if g.SelectedIndex >= 0 && g.SelectedIndex < len(g.Entries) {
		if !m.eligible(g.Entries[g.SelectedIndex]) {
			found := -1
			for i := g.SelectedIndex; i < len(g.Entries); i++ {
				if m.eligible(g.Entries[i]) {
					found = i
					break
				}
			}
			g.SelectedIndex = found
		}
	} else {
		g.SelectedIndex = -1
	}

	var prevFocus ecs.Entity
	if g.SelectedIndex >= 0 {
		prevFocus = g.Entries[g.SelectedIndex]
	}

	// Step 4: explicit neighbor override.
	if !prevFocus.IsNull() {
		if neighbors, has := m.ExplicitNeighbors[prevFocus]; has {
			next := neighbors.get(dir)
			if m.eligible(next) {
				idx := slices.Index(g.Entries, next)
				m.commit(g, group, prevFocus, next, idx)
				return
			}
		}
	}

	// Step 5 / Step 6: spatial then linear resolution.
	var next ecs.Entity
	nextIdx := -1
	if g.Spatial {
		next, nextIdx = m.resolveSpatial(g, prevFocus, dir)
	}
	if next.IsNull() {
		next, nextIdx = m.resolveLinear(g, dir)
	}
	if !next.IsNull() {
		m.commit(g, group, prevFocus, next, nextIdx)
		return
	}

	// Step 7: inter-group transition.
	m.transition(g, group, prevFocus, dir)
}

// commit is §4.7.D Step 8.
func (m *Manager) commit(g *Group, groupName string, prevFocus, next ecs.Entity, nextIdx int) {
	if _, ok := m.Registry.Transform(next); !ok {
		m.logError("nav: entity in group %q missing transform component, reverting navigation", groupName)
		return
	}
	if nextIdx >= 0 {
		g.SelectedIndex = nextIdx
	}
	m.fireFocusChange(g, prevFocus, g, next)
	if m.OnFocusChanged != nil {
		m.OnFocusChanged(next)
	}
	if m.OnScrollIntoView != nil {
		m.OnScrollIntoView(next)
	}
}

// transition is §4.7.D Step 7.
func (m *Manager) transition(g *Group, groupName string, prevFocus ecs.Entity, dir Direction) {
	targetName := g.Links.get(dir)
	if targetName == "" {
		return
	}
	target, ok := m.Groups[targetName]
	if !ok || !target.Active || len(target.Entries) == 0 {
		return
	}

	targetLayer := m.GroupToLayer[targetName]
	if targetLayer != m.ActiveLayer {
		targetDepth := slices.Index(m.LayerStack, targetLayer)
		currentDepth := slices.Index(m.LayerStack, m.ActiveLayer)
		switch {
		case targetDepth < 0:
			m.PushLayer(targetLayer)
		case targetDepth == currentDepth-1:
			m.PopLayer()
		case targetDepth < currentDepth-1:
			m.logError("nav: illegal layer jump from %q to %q", m.ActiveLayer, targetLayer)
			return
		default:
			m.SetActiveLayer(targetLayer)
		}
	}

	next, hasNext := m.GetSelected(targetName)
	if !hasNext {
		return
	}
	m.fireFocusChange(g, prevFocus, target, next)
	if m.OnFocusChanged != nil {
		m.OnFocusChanged(next)
	}
	if m.OnScrollIntoView != nil {
		m.OnScrollIntoView(next)
	}
}

// fireFocusChange implements §4.7.H: on_unfocus(prev) fires before
// on_focus(next), each preferring its own group's callback over the
// global fallback.
func (m *Manager) fireFocusChange(prevGroup *Group, prev ecs.Entity, nextGroup *Group, next ecs.Entity) {
	if !prev.IsNull() {
		cb := m.GlobalCallbacks.OnUnfocus
		if prevGroup != nil && prevGroup.Callbacks.OnUnfocus != nil {
			cb = prevGroup.Callbacks.OnUnfocus
		}
		m.invokeCallback(cb, prev)
	}
	if !next.IsNull() {
		cb := m.GlobalCallbacks.OnFocus
		if nextGroup != nil && nextGroup.Callbacks.OnFocus != nil {
			cb = nextGroup.Callbacks.OnFocus
		}
		m.invokeCallback(cb, next)
	}
}

// SelectCurrent fires on_select(selected) for group, preferring its own
// callback over the global fallback (spec §4.7.H).
func (m *Manager) SelectCurrent(group string) {
	g, ok := m.Groups[group]
	if !ok {
		return
	}
	sel, hasSel := m.GetSelected(group)
	if !hasSel {
		return
	}
	cb := m.GlobalCallbacks.OnSelect
	if g.Callbacks.OnSelect != nil {
		cb = g.Callbacks.OnSelect
	}
	m.invokeCallback(cb, sel)
}
