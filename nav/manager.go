// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"fmt"

	"golang.org/x/exp/slices"

	baseerrors "github.com/inputcore/engine/base/errors"
	"github.com/inputcore/engine/ecs"
)

// Manager is the navigation manager (spec §3.3 NavManager state, §4.7).
// The zero value is not ready to use; construct with [NewManager].
type Manager struct {
	Registry ecs.Registry

	Groups map[string]*Group
	Layers map[string]*Layer

	LayerStack  []string
	ActiveLayer string

	EntityToGroup     map[ecs.Entity]string
	GroupToLayer      map[string]string
	ExplicitNeighbors map[ecs.Entity]Neighbors
	DisabledEntities  map[ecs.Entity]bool

	RepeatStates map[string]*RepeatState
	RepeatConfig RepeatConfig

	LayerFocusStack  []LayerFocusEntry
	LastRestoredFocus *RestoredFocus

	FocusGroupStack []string

	GlobalCallbacks Callbacks

	// Now is the engine's current time in seconds, stamped by the caller
	// before any call that records a ShowUntilT (scroll-into-view).
	Now float64

	// OnFocusChanged is invoked whenever navigation changes the focused
	// entity, so the cursor manager can re-run its position-source
	// priority and set controller_nav_override (spec §4.3 Step 3, §4.7.D
	// Step 8 "update cursor").
	OnFocusChanged func(focused ecs.Entity)

	// OnScrollIntoView is invoked after a focus change, fulfilling §4.7.D
	// Step 8's "auto-scroll into view" without this package importing the
	// cursor/ECS scroll bookkeeping directly (wired to [ScrollIntoView]
	// by the engine).
	OnScrollIntoView func(e ecs.Entity)
}

// NewManager returns an empty, ready Manager.
func NewManager(registry ecs.Registry) *Manager {
	return &Manager{
		Registry:          registry,
		Groups:            map[string]*Group{},
		Layers:            map[string]*Layer{},
		EntityToGroup:     map[ecs.Entity]string{},
		GroupToLayer:      map[string]string{},
		ExplicitNeighbors: map[ecs.Entity]Neighbors{},
		DisabledEntities:  map[ecs.Entity]bool{},
		RepeatStates:      map[string]*RepeatState{},
		RepeatConfig:      DefaultRepeatConfig(),
	}
}

// Reset discards all navigation state (spec §6.2 reset()).
func (m *Manager) Reset() {
	registry := m.Registry
	*m = *NewManager(registry)
}

// ---- §4.7.A Layers ----

// CreateLayer is idempotent.
func (m *Manager) CreateLayer(name string) {
	if _, ok := m.Layers[name]; ok {
		return
	}
	m.Layers[name] = &Layer{Name: name}
}

// AddGroupToLayer is a no-op if either name is unknown; maintains
// uniqueness within the layer's group list.
func (m *Manager) AddGroupToLayer(layer, group string) {
	l, ok := m.Layers[layer]
	if !ok {
		return
	}
	if _, ok := m.Groups[group]; !ok {
		return
	}
	if slices.Contains(l.Groups, group) {
		return
	}
	l.Groups = append(l.Groups, group)
	m.GroupToLayer[group] = layer
}

// SetActiveLayer clears Active on the previous active layer and sets it
// on name.
func (m *Manager) SetActiveLayer(name string) {
	if l, ok := m.Layers[m.ActiveLayer]; ok {
		l.Active = false
	}
	m.ActiveLayer = name
	if l, ok := m.Layers[name]; ok {
		l.Active = true
	}
}

// PushLayer pushes name onto the layer stack and activates it.
func (m *Manager) PushLayer(name string) {
	m.LayerStack = append(m.LayerStack, name)
	m.SetActiveLayer(name)
}

// PopLayer pops the layer stack, discards any focus-restoration entries
// belonging to the popped layer, and restores the new top as active,
// populating [Manager.LastRestoredFocus] if a matching entry exists
// (spec §4.7.A pop_layer, §4.7.E).
func (m *Manager) PopLayer() {
	if len(m.LayerStack) == 0 {
		return
	}
	popped := m.LayerStack[len(m.LayerStack)-1]
	m.LayerStack = m.LayerStack[:len(m.LayerStack)-1]

	kept := m.LayerFocusStack[:0]
	for _, e := range m.LayerFocusStack {
		if e.Layer != popped {
			kept = append(kept, e)
		}
	}
	m.LayerFocusStack = kept

	if len(m.LayerStack) == 0 {
		m.LastRestoredFocus = nil
		if l, ok := m.Layers[m.ActiveLayer]; ok {
			l.Active = false
		}
		m.ActiveLayer = ""
		return
	}

	top := m.LayerStack[len(m.LayerStack)-1]
	m.SetActiveLayer(top)

	m.LastRestoredFocus = nil
	for _, e := range m.LayerFocusStack {
		if e.Layer == top {
			restored := RestoredFocus{Entity: e.PreviousFocus, Group: e.PreviousGroup}
			m.LastRestoredFocus = &restored
			break
		}
	}
}

// RecordFocusForLayer stores {active_layer, e, group} for restoration on
// a future pop_layer, replacing any existing entry for the active layer
// (spec §4.7.E).
func (m *Manager) RecordFocusForLayer(e ecs.Entity, group string) {
	entry := LayerFocusEntry{Layer: m.ActiveLayer, PreviousFocus: e, PreviousGroup: group}
	for i, existing := range m.LayerFocusStack {
		if existing.Layer == m.ActiveLayer {
			m.LayerFocusStack[i] = entry
			return
		}
	}
	m.LayerFocusStack = append(m.LayerFocusStack, entry)
}

// GetRestoredFocus returns the focus populated by the most recent
// PopLayer, if any.
func (m *Manager) GetRestoredFocus() (RestoredFocus, bool) {
	if m.LastRestoredFocus == nil {
		return RestoredFocus{}, false
	}
	return *m.LastRestoredFocus, true
}

// ---- §4.7.B Groups & entries ----

// CreateGroup creates group with the §4.7.B defaults if it doesn't
// already exist.
func (m *Manager) CreateGroup(name string) {
	if _, ok := m.Groups[name]; ok {
		return
	}
	m.Groups[name] = newGroup(name)
}

// AddEntity appends e to group's entries and updates the reverse index.
// No dedup check is enforced at runtime (spec §4.7.B); [Manager.Validate]
// surfaces duplicates.
func (m *Manager) AddEntity(group string, e ecs.Entity) {
	g, ok := m.Groups[group]
	if !ok {
		return
	}
	g.Entries = append(g.Entries, e)
	m.EntityToGroup[e] = group
	if g.SelectedIndex == -1 {
		g.SelectedIndex = 0
	}
}

// RemoveEntity removes e from group's entries, the reverse index, and
// any explicit-neighbor entry.
func (m *Manager) RemoveEntity(group string, e ecs.Entity) {
	g, ok := m.Groups[group]
	if !ok {
		return
	}
	idx := slices.Index(g.Entries, e)
	if idx < 0 {
		return
	}
	g.Entries = slices.Delete(g.Entries, idx, idx+1)
	if g.SelectedIndex >= len(g.Entries) {
		g.SelectedIndex = len(g.Entries) - 1
	}
	delete(m.EntityToGroup, e)
	delete(m.ExplicitNeighbors, e)
}

// ClearGroup removes all entries from group and their reverse-index and
// explicit-neighbor entries.
func (m *Manager) ClearGroup(group string) {
	g, ok := m.Groups[group]
	if !ok {
		return
	}
	for _, e := range g.Entries {
		delete(m.EntityToGroup, e)
		delete(m.ExplicitNeighbors, e)
	}
	g.Entries = nil
	g.SelectedIndex = -1
}

// SetActive sets a group's active flag.
func (m *Manager) SetActive(group string, active bool) {
	if g, ok := m.Groups[group]; ok {
		g.Active = active
	}
}

// SetSelected sets group's selected index, matching the §8 round-trip:
// an out-of-range idx with non-empty entries clamps to 0.
func (m *Manager) SetSelected(group string, idx int) {
	g, ok := m.Groups[group]
	if !ok {
		return
	}
	if len(g.Entries) == 0 {
		g.SelectedIndex = -1
		return
	}
	if idx < 0 || idx >= len(g.Entries) {
		idx = 0
	}
	g.SelectedIndex = idx
}

// GetSelected returns group's currently selected entity, falling back to
// entries[0] if the index is out of range and entries is non-empty.
func (m *Manager) GetSelected(group string) (ecs.Entity, bool) {
	g, ok := m.Groups[group]
	if !ok || len(g.Entries) == 0 {
		return ecs.Null, false
	}
	idx := g.SelectedIndex
	if idx < 0 || idx >= len(g.Entries) {
		idx = 0
	}
	return g.Entries[idx], true
}

// SetEntityEnabled adds or removes e from the disabled set.
func (m *Manager) SetEntityEnabled(e ecs.Entity, enabled bool) {
	if enabled {
		delete(m.DisabledEntities, e)
	} else {
		m.DisabledEntities[e] = true
	}
}

// IsEntityEnabled reports whether e is enabled (default true for unknown
// entities).
func (m *Manager) IsEntityEnabled(e ecs.Entity) bool {
	return !m.DisabledEntities[e]
}

// SetNeighbors installs an explicit per-direction override for e.
func (m *Manager) SetNeighbors(e ecs.Entity, n Neighbors) {
	m.ExplicitNeighbors[e] = n
}

// GetNeighbors returns e's explicit neighbor overrides, if any.
func (m *Manager) GetNeighbors(e ecs.Entity) (Neighbors, bool) {
	n, ok := m.ExplicitNeighbors[e]
	return n, ok
}

// ClearNeighbors removes e's explicit neighbor overrides.
func (m *Manager) ClearNeighbors(e ecs.Entity) {
	delete(m.ExplicitNeighbors, e)
}

// LinkGroups sets from's inter-group direction links (spec §6.2
// link_groups).
func (m *Manager) LinkGroups(from string, links GroupLinks) {
	if g, ok := m.Groups[from]; ok {
		g.Links = links
	}
}

// SetGroupMode sets a group to "spatial" or "linear" resolution. Modes
// are not mutually exclusive (spec §3.3); this setter only flips the
// named one on, leaving the other flag untouched, matching §6.2's
// single-mode-name signature used idiomatically as "make this the
// primary mode".
func (m *Manager) SetGroupMode(group, mode string) {
	g, ok := m.Groups[group]
	if !ok {
		return
	}
	switch mode {
	case "spatial":
		g.Spatial = true
	case "linear":
		g.Linear = true
	}
}

// SetWrap sets a group's wrap flag.
func (m *Manager) SetWrap(group string, wrap bool) {
	if g, ok := m.Groups[group]; ok {
		g.Wrap = wrap
	}
}

// SetGroupCallbacks installs group-level callbacks, which take
// precedence over global callbacks (spec §4.7.H).
func (m *Manager) SetGroupCallbacks(group string, cb Callbacks) {
	if g, ok := m.Groups[group]; ok {
		g.Callbacks = cb
	}
}

// SetGlobalCallbacks installs the fallback callbacks used when a group
// has none set for a given hook.
func (m *Manager) SetGlobalCallbacks(cb Callbacks) {
	m.GlobalCallbacks = cb
}

// ---- Focus group stack (spec §3.3, deliberately separate from the
// layer stack; see DESIGN.md for the Open Question this resolves). ----

// PushFocusGroup pushes name onto the focus-group stack.
func (m *Manager) PushFocusGroup(name string) {
	m.FocusGroupStack = append(m.FocusGroupStack, name)
}

// PopFocusGroup pops the focus-group stack, if non-empty.
func (m *Manager) PopFocusGroup() {
	if len(m.FocusGroupStack) == 0 {
		return
	}
	m.FocusGroupStack = m.FocusGroupStack[:len(m.FocusGroupStack)-1]
}

// CurrentFocusGroup returns the top of the focus-group stack, if any.
func (m *Manager) CurrentFocusGroup() (string, bool) {
	if len(m.FocusGroupStack) == 0 {
		return "", false
	}
	return m.FocusGroupStack[len(m.FocusGroupStack)-1], true
}

// SetRepeatConfig overrides any non-zero fields of cfg onto the active
// repeat-timing curve (spec §6.2 set_repeat_config, all fields optional).
func (m *Manager) SetRepeatConfig(cfg RepeatConfig) {
	if cfg.InitialDelay != 0 {
		m.RepeatConfig.InitialDelay = cfg.InitialDelay
	}
	if cfg.RepeatRate != 0 {
		m.RepeatConfig.RepeatRate = cfg.RepeatRate
	}
	if cfg.MinRepeatRate != 0 {
		m.RepeatConfig.MinRepeatRate = cfg.MinRepeatRate
	}
	if cfg.Acceleration != 0 {
		m.RepeatConfig.Acceleration = cfg.Acceleration
	}
}

// Tick runs the per-frame bookkeeping from §4.7.C: decrementing every
// active repeat state's time_until_repeat. (Per-group navigation
// cooldowns beyond repeat timing are not used by this revision.)
func (m *Manager) Tick(dt float32) {
	for _, rs := range m.RepeatStates {
		if rs.TimeUntilRepeat > 0 {
			rs.TimeUntilRepeat -= dt
		}
	}
}

func (m *Manager) invokeCallback(fn func(e ecs.Entity), e ecs.Entity) {
	if fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			baseerrors.Log(fmt.Errorf("nav: callback panic: %v", r))
		}
	}()
	fn(e)
}

func (m *Manager) logError(format string, args ...any) {
	baseerrors.Log(fmt.Errorf(format, args...))
}
