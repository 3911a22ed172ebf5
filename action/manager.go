// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package action

import (
	"github.com/inputcore/engine/device"
)

// RebindCallback is invoked once, with the captured binding, when a rebind
// capture started by [Manager.StartRebind] consumes its next raw event.
type RebindCallback func(ok bool, b Binding)

// Manager is the action binding layer (spec §4.1, §6.3). Create one with
// [NewManager]: the zero value has nil maps, so Bind panics on it. A
// Manager from NewManager has [GlobalContext] implicitly always active and
// "gameplay" as the starting active context.
type Manager struct {
	bindings     map[string][]Binding
	codeToAction map[codeKey][]bindingRef
	states       map[string]*state
	context      string

	rebindListen   bool
	rebindAction   string
	rebindCallback RebindCallback
}

// NewManager returns a ready-to-use action Manager with the default
// "gameplay" context active.
func NewManager() *Manager {
	return &Manager{
		bindings:     map[string][]Binding{},
		codeToAction: map[codeKey][]bindingRef{},
		states:       map[string]*state{},
		context:      "gameplay",
	}
}

func (m *Manager) stateFor(action string) *state {
	st, ok := m.states[action]
	if !ok {
		st = &state{}
		m.states[action] = st
	}
	return st
}

// Bind appends b to action's binding list and rebuilds the reverse index.
func (m *Manager) Bind(action string, b Binding) {
	m.bindings[action] = append(m.bindings[action], b)
	m.stateFor(action)
	m.rebuildIndex()
}

// Clear removes all bindings and state for action.
func (m *Manager) Clear(action string) {
	delete(m.bindings, action)
	delete(m.states, action)
	m.rebuildIndex()
}

// SetContext sets the active binding context. Bindings whose Context is
// [GlobalContext] or empty remain active regardless.
func (m *Manager) SetContext(ctx string) {
	m.context = ctx
}

func (m *Manager) rebuildIndex() {
	idx := make(map[codeKey][]bindingRef, len(m.codeToAction))
	for action, bs := range m.bindings {
		for i, b := range bs {
			k := codeKey{device: b.Device, code: b.Code}
			idx[k] = append(idx[k], bindingRef{action: action, index: i})
		}
	}
	m.codeToAction = idx
}

func (b Binding) contextActive(active string) bool {
	return b.Context == "" || b.Context == GlobalContext || b.Context == active
}

func (b Binding) threshold() float32 {
	if b.Threshold != 0 {
		return b.Threshold
	}
	return DefaultThreshold
}

// StartRebind arms rebind capture: the next raw event passed to DispatchRaw
// is consumed entirely by the capture (never reaching normal dispatch),
// turned into a Binding, and handed to cb. Nothing is persisted; the
// caller decides whether and how to call Bind with the result. Calling
// StartRebind again before a raw event arrives replaces the pending
// capture.
func (m *Manager) StartRebind(action string, cb RebindCallback) {
	m.rebindListen = true
	m.rebindAction = action
	m.rebindCallback = cb
}

// DispatchRaw feeds one raw device edge/sample into the binding layer,
// updating the state of every bound action it matches. If a rebind capture
// is pending, this event is consumed by the capture instead.
func (m *Manager) DispatchRaw(e device.Event) {
	if m.rebindListen {
		trig := Released
		if e.Down {
			trig = Pressed
		}
		b := Binding{Device: e.Kind, Code: e.Code, Trigger: trig, Modifiers: e.Modifiers}
		m.rebindListen = false
		cb := m.rebindCallback
		m.rebindCallback = nil
		if cb != nil {
			cb(true, b)
		}
		return
	}

	refs := m.codeToAction[codeKey{device: e.Kind, code: e.Code}]
	for _, ref := range refs {
		b := m.bindings[ref.action][ref.index]
		if !b.contextActive(m.context) {
			continue
		}
		st := m.stateFor(ref.action)
		switch b.Trigger {
		case Pressed:
			if e.Down && !st.down {
				st.pressed = true
			}
			if e.Down {
				st.down = true
			} else {
				st.down = false
				st.held = 0
			}
		case Released:
			if !e.Down {
				st.released = true
				st.down = false
				st.held = 0
			}
		case Held:
			if e.Down {
				st.down = true
			} else {
				st.down = false
				st.held = 0
			}
		case AxisPos:
			if e.Value > b.threshold() {
				st.value = maxF(st.value, e.Value)
			}
		case AxisNeg:
			if e.Value < -b.threshold() {
				st.value = minF(st.value, e.Value)
			}
		case Repeat:
			// reserved: a Repeat binding changes no action state.
		}
	}
}

// TickHolds advances held-duration timers for every action currently down.
func (m *Manager) TickHolds(dt float32) {
	for _, st := range m.states {
		if st.down {
			st.held += dt
		}
	}
}

// Decay clears edge flags and resets analog samples at the end of a frame.
// Must run after every widget/system has had a chance to query this
// frame's action state.
func (m *Manager) Decay() {
	for _, st := range m.states {
		st.pressed = false
		st.released = false
		st.value = 0
	}
}

// Pressed reports whether action had a press edge this frame. Unknown
// actions report false.
func (m *Manager) Pressed(action string) bool {
	if st, ok := m.states[action]; ok {
		return st.pressed
	}
	return false
}

// Released reports whether action had a release edge this frame.
func (m *Manager) Released(action string) bool {
	if st, ok := m.states[action]; ok {
		return st.released
	}
	return false
}

// Down reports whether action is currently held down.
func (m *Manager) Down(action string) bool {
	if st, ok := m.states[action]; ok {
		return st.down
	}
	return false
}

// Value returns the current analog value of action (0 if none or unknown).
func (m *Manager) Value(action string) float32 {
	if st, ok := m.states[action]; ok {
		return st.value
	}
	return 0
}

// Held returns the number of seconds action has been continuously down.
func (m *Manager) Held(action string) float32 {
	if st, ok := m.states[action]; ok {
		return st.held
	}
	return 0
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minF(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
