// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package device defines the raw, per-frame edge events produced by the
// platform-specific hardware adapter (component A of the engine). The
// adapter itself — actual keyboard/mouse/gamepad/touch polling — is an
// external collaborator; this package only fixes the shape of the events
// it must produce so that the action binding layer, HID arbiter, and cursor
// pipeline can consume them uniformly.
package device

import (
	"time"

	"github.com/inputcore/engine/events/key"
	"github.com/inputcore/engine/math2"
)

// Kind identifies the category of physical source that generated an Event.
type Kind int32

const (
	Unknown Kind = iota
	Keyboard
	Mouse
	GamepadButton
	GamepadAxis
	Touch
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Keyboard:
		return "keyboard"
	case Mouse:
		return "mouse"
	case GamepadButton:
		return "gamepad_button"
	case GamepadAxis:
		return "gamepad_axis"
	case Touch:
		return "touch"
	default:
		return "unknown"
	}
}

// MouseButton identifies which mouse button an Event concerns.
type MouseButton int32

const (
	NoButton MouseButton = iota
	Left
	Right
	Middle
)

// Event is a single raw, edge-triggered input sample for one frame. Not
// every field is meaningful for every Kind: Code and Down describe button
// and key edges, Value describes analog gamepad axis samples, Pos/Wheel
// describe pointer motion and scrolling.
type Event struct {
	Kind      Kind
	Code      int32
	Down      bool
	Value     float32
	Pos       math2.Vector2
	Wheel     math2.Vector2
	Button    MouseButton
	Modifiers key.Modifiers
	GamepadID int
	Time      time.Time
}

// Poller is the external hardware-polling collaborator. It is queried once
// per frame and must return edge events in the order they occurred.
type Poller interface {
	Poll() []Event
}
