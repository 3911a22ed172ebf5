// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hid

import "strings"

// Arbiter decides the active [Category] from device activity and raises
// hooks on transition. It holds no ECS or navigation references directly
// (spec.md lists entity storage as an external collaborator), and it
// performs no side effect of a transition itself. engine.Init leaves
// OnEnterController/OnLeaveController unset, so clearing isBeingFocused
// and hiding/showing the cursor sprite happen only if the host assigns
// hooks that do them.
type Arbiter struct {
	state State

	// OnEnterController fires when the mode switches into any controller
	// category from a non-controller one.
	OnEnterController func()
	// OnLeaveController fires when the mode switches out of a controller
	// category into pointer/keyboard/touch.
	OnLeaveController func()
	// OnConsoleChanged fires when the inferred console vendor changes
	// (spec.md §4.2 "sprite pack changed" notification).
	OnConsoleChanged func(Console)
}

// NewArbiter returns an Arbiter with no active category.
func NewArbiter() *Arbiter {
	return &Arbiter{}
}

// State returns the current HID state snapshot.
func (a *Arbiter) State() State {
	return a.state
}

// Activity reports that a device of category c produced input this frame.
// If c differs from the currently active category, the mode switches.
func (a *Arbiter) Activity(c Category) {
	if c == a.state.LastType {
		return
	}
	wasController := a.state.LastType.IsController()
	isController := c.IsController()

	a.state.applyCategory(c)

	if isController && !wasController {
		if a.OnEnterController != nil {
			a.OnEnterController()
		}
	} else if wasController && !isController {
		a.state.Gamepad = Gamepad{}
		if a.OnLeaveController != nil {
			a.OnLeaveController()
		}
	}
}

// SetGamepad records the active gamepad's identity and infers its console
// vendor from name substrings (spec §4.2). Call after Activity reports a
// GamepadButton/GamepadAxis/GamepadAxisCursor category.
func (a *Arbiter) SetGamepad(id int, name, mapping string) {
	prev := a.state.Gamepad.Console
	console := InferConsole(name)
	a.state.Gamepad = Gamepad{ID: id, Name: name, Console: console, Mapping: mapping}
	if console != prev && a.OnConsoleChanged != nil {
		a.OnConsoleChanged(console)
	}
}

// InferConsole maps a raw gamepad name to a [Console] by substring match
// (spec §4.2). Unmatched names report ConsoleUnknown.
func InferConsole(name string) Console {
	n := strings.ToLower(name)
	switch {
	case containsAny(n, "xbox", "xinput", "elite", "360"):
		return ConsoleXbox
	case containsAny(n, "ps", "sony", "dualshock", "dualsense", "wireless controller"):
		return ConsolePlayStation
	case containsAny(n, "nintendo", "switch", "joy-con", "pro controller"):
		return ConsoleNintendo
	default:
		return ConsoleUnknown
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
