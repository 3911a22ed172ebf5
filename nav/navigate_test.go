// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"testing"

	"github.com/inputcore/engine/ecs"
	"github.com/stretchr/testify/assert"
)

// Scenario 1: linear wrap.
func TestLinearWrap(t *testing.T) {
	reg := newFakeRegistry()
	m := NewManager(reg)
	m.CreateGroup("menu")
	a := reg.newEntity(0, 0, 10, 10)
	b := reg.newEntity(0, 10, 10, 10)
	c := reg.newEntity(0, 20, 10, 10)
	m.AddEntity("menu", a)
	m.AddEntity("menu", b)
	m.AddEntity("menu", c)
	m.SetWrap("menu", true)
	m.SetGroupMode("menu", "linear")
	m.Groups["menu"].Spatial = false
	m.SetSelected("menu", 0)

	m.Navigate("menu", Down)
	assert.Equal(t, 1, m.Groups["menu"].SelectedIndex)
	sel, _ := m.GetSelected("menu")
	assert.Equal(t, b, sel)

	// Let the repeat interval elapse so each step is accepted.
	m.Tick(1)
	m.Navigate("menu", Down)
	assert.Equal(t, 2, m.Groups["menu"].SelectedIndex)

	m.Tick(1)
	m.Navigate("menu", Down)
	assert.Equal(t, 0, m.Groups["menu"].SelectedIndex)
	sel, _ = m.GetSelected("menu")
	assert.Equal(t, a, sel)
}

// Scenario 2: spatial cone.
func TestSpatialCone(t *testing.T) {
	reg := newFakeRegistry()
	m := NewManager(reg)
	m.CreateGroup("g")
	a := reg.newEntity(0, 0, 1, 1)
	b := reg.newEntity(100, 5, 1, 1)
	c := reg.newEntity(5, 100, 1, 1)
	m.AddEntity("g", a)
	m.AddEntity("g", b)
	m.AddEntity("g", c)
	m.SetSelected("g", 0)

	m.Navigate("g", Right)
	sel, _ := m.GetSelected("g")
	assert.Equal(t, b, sel, "dominant-x positive picks B")

	m.SetSelected("g", 0)
	m.Navigate("g", Down)
	sel, _ = m.GetSelected("g")
	assert.Equal(t, c, sel, "dominant-y positive picks C")

	d := reg.newEntity(100, 100, 1, 1)
	m.AddEntity("g", d)
	m.SetSelected("g", 0)
	m.Navigate("g", Right)
	sel, _ = m.GetSelected("g")
	assert.Equal(t, b, sel, "Manhattan 105 < 200 still picks B over D")

	m.SetSelected("g", 0)
	m.Navigate("g", Down)
	sel, _ = m.GetSelected("g")
	assert.Equal(t, c, sel)
}

// Scenario 3: edge transition.
func TestEdgeTransition(t *testing.T) {
	reg := newFakeRegistry()
	m := NewManager(reg)
	m.CreateLayer("root")
	m.CreateGroup("left")
	m.CreateGroup("menu")
	m.AddGroupToLayer("root", "left")
	m.AddGroupToLayer("root", "menu")
	m.SetActiveLayer("root")

	leftEntry := reg.newEntity(0, 0, 10, 10)
	m.AddEntity("left", leftEntry)
	menuEntry := reg.newEntity(200, 0, 10, 10)
	m.AddEntity("menu", menuEntry)

	m.LinkGroups("left", GroupLinks{Left: "menu"})
	m.SetWrap("left", false)
	m.SetSelected("left", 0)

	var focused []ecs.Entity
	m.OnFocusChanged = func(e ecs.Entity) { focused = append(focused, e) }

	m.Navigate("left", Left)

	sel, _ := m.GetSelected("menu")
	assert.Equal(t, menuEntry, sel)
	assert.Equal(t, []ecs.Entity{menuEntry}, focused)
}

// Scenario 4: repeat acceleration.
func TestRepeatAcceleration(t *testing.T) {
	reg := newFakeRegistry()
	m := NewManager(reg)
	m.CreateGroup("g")
	a := reg.newEntity(0, 0, 1, 1)
	b := reg.newEntity(0, 10, 1, 1)
	m.AddEntity("g", a)
	m.AddEntity("g", b)
	m.SetGroupMode("g", "linear")
	m.Groups["g"].Spatial = false
	m.SetWrap("g", true)
	m.SetRepeatConfig(RepeatConfig{InitialDelay: 0.3, RepeatRate: 0.1, Acceleration: 0.9, MinRepeatRate: 0.02})

	m.Navigate("g", Down) // frame 0: accepted
	rs := m.repeatStateFor("g")
	assert.InDelta(t, 0.3, rs.TimeUntilRepeat, 1e-6)

	m.Tick(0.3)
	assert.LessOrEqual(t, rs.TimeUntilRepeat, float32(0))
	m.Navigate("g", Down) // accepted, count=1
	assert.Equal(t, 1, rs.RepeatCount)
	assert.InDelta(t, 0.09, rs.TimeUntilRepeat, 1e-6)

	m.Tick(0.09)
	m.Navigate("g", Down) // accepted, count=2
	assert.Equal(t, 2, rs.RepeatCount)
	assert.InDelta(t, 0.081, rs.TimeUntilRepeat, 1e-6)
}

func TestRepeatRejectsWhileMidInterval(t *testing.T) {
	reg := newFakeRegistry()
	m := NewManager(reg)
	m.CreateGroup("g")
	a := reg.newEntity(0, 0, 1, 1)
	b := reg.newEntity(0, 10, 1, 1)
	m.AddEntity("g", a)
	m.AddEntity("g", b)
	m.SetGroupMode("g", "linear")
	m.Groups["g"].Spatial = false
	m.SetWrap("g", true)

	m.Navigate("g", Down)
	assert.Equal(t, 1, m.Groups["g"].SelectedIndex)
	m.Navigate("g", Down) // still within initial_delay, rejected
	assert.Equal(t, 1, m.Groups["g"].SelectedIndex)
}

// Scenario 6: modal focus restoration.
func TestModalFocusRestoration(t *testing.T) {
	reg := newFakeRegistry()
	m := NewManager(reg)
	m.CreateLayer("base")
	m.CreateLayer("modal")
	m.CreateGroup("g_a")
	m.CreateGroup("g_modal")
	m.AddGroupToLayer("base", "g_a")
	m.AddGroupToLayer("modal", "g_modal")
	m.SetActiveLayer("base")
	m.LayerStack = []string{"base"}

	ea := reg.newEntity(0, 0, 1, 1)
	m.AddEntity("g_a", ea)

	m.RecordFocusForLayer(ea, "g_a")
	m.PushLayer("modal")
	assert.Equal(t, "modal", m.ActiveLayer)

	m.PopLayer()
	assert.Equal(t, "base", m.ActiveLayer)
	restored, ok := m.GetRestoredFocus()
	assert.True(t, ok)
	assert.Equal(t, ea, restored.Entity)
	assert.Equal(t, "g_a", restored.Group)
}

func TestIllegalLayerJumpRejected(t *testing.T) {
	reg := newFakeRegistry()
	m := NewManager(reg)
	m.CreateLayer("l0")
	m.CreateLayer("l1")
	m.CreateLayer("l2")
	m.CreateGroup("g0")
	m.CreateGroup("g2")
	m.AddGroupToLayer("l0", "g0")
	m.AddGroupToLayer("l2", "g2")
	// l0 is at the bottom of the stack (depth 0), current active layer l2
	// is at depth 2: jumping straight from l2's group to l0's group skips
	// the middle layer and must be rejected.
	m.LayerStack = []string{"l0", "l1", "l2"}
	m.SetActiveLayer("l2")

	e2 := reg.newEntity(0, 0, 1, 1)
	m.AddEntity("g2", e2)
	e0 := reg.newEntity(0, 0, 1, 1)
	m.AddEntity("g0", e0)

	m.Groups["g2"].Links = GroupLinks{Right: "g0"}
	m.Groups["g2"].Active = true

	before := m.ActiveLayer
	beforeStack := append([]string(nil), m.LayerStack...)
	m.transition(m.Groups["g2"], "g2", ecs.Null, Right)
	assert.Equal(t, before, m.ActiveLayer, "illegal jump must not change active layer")
	assert.Equal(t, beforeStack, m.LayerStack, "illegal jump must not mutate the layer stack")
}

func TestExplicitNeighborOverride(t *testing.T) {
	reg := newFakeRegistry()
	m := NewManager(reg)
	m.CreateGroup("g")
	a := reg.newEntity(0, 0, 1, 1)
	b := reg.newEntity(500, 500, 1, 1) // not Up of a; spatially reachable only via the nearest-entity fallback
	m.AddEntity("g", a)
	m.AddEntity("g", b)
	m.SetNeighbors(a, Neighbors{Up: b})
	m.SetSelected("g", 0)

	m.Navigate("g", Up)
	sel, _ := m.GetSelected("g")
	assert.Equal(t, b, sel)
}

func TestEmptyGroupNavigateNoOp(t *testing.T) {
	reg := newFakeRegistry()
	m := NewManager(reg)
	m.CreateGroup("empty")
	m.Navigate("empty", Right)
	assert.Equal(t, -1, m.Groups["empty"].SelectedIndex)
}

func TestValidateCatchesOrphanLayerGroup(t *testing.T) {
	reg := newFakeRegistry()
	m := NewManager(reg)
	m.CreateLayer("l")
	m.Layers["l"].Groups = append(m.Layers["l"].Groups, "ghost")
	assert.NotEmpty(t, m.Validate())
}

func TestValidateCleanState(t *testing.T) {
	reg := newFakeRegistry()
	m := NewManager(reg)
	m.CreateGroup("g")
	e := reg.newEntity(0, 0, 1, 1)
	m.AddEntity("g", e)
	assert.Empty(t, m.Validate())
}
