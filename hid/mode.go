// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hid implements the HID mode arbiter (spec component C):
// exactly one logical input category is active at a time, switching
// only on activity in another category, never on a timeout.
package hid

// Category is the active input mode.
type Category int32

const (
	None Category = iota
	KeyBoard
	Mouse
	Touch
	GamepadButton
	GamepadAxis
	GamepadAxisCursor
)

func (c Category) String() string {
	switch c {
	case KeyBoard:
		return "KeyBoard"
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	case GamepadButton:
		return "GamepadButton"
	case GamepadAxis:
		return "GamepadAxis"
	case GamepadAxisCursor:
		return "GamepadAxisCursor"
	default:
		return "None"
	}
}

// IsController reports whether c is one of the gamepad-driven categories.
func (c Category) IsController() bool {
	return c == GamepadButton || c == GamepadAxis || c == GamepadAxisCursor
}

// Console is the inferred controller vendor, used to pick button-prompt
// sprite packs.
type Console int32

const (
	ConsoleUnknown Console = iota
	ConsolePlayStation
	ConsoleNintendo
	ConsoleXbox
)

func (c Console) String() string {
	switch c {
	case ConsolePlayStation:
		return "PlayStation"
	case ConsoleNintendo:
		return "Nintendo"
	case ConsoleXbox:
		return "Xbox"
	default:
		return "Unknown"
	}
}

// Gamepad carries the currently-active controller's identity.
type Gamepad struct {
	ID      int
	Name    string
	Console Console
	Mapping string
}

// State is the per-category flag set the rest of the engine reads to
// decide cursor visibility, prompt style, and focus behavior (spec §3.5).
type State struct {
	LastType Category

	PointerEnabled    bool
	DPadEnabled       bool
	MouseEnabled      bool
	TouchEnabled      bool
	ControllerEnabled bool
	AxisCursorEnabled bool

	Gamepad Gamepad
}

// modeFlags is the row of the §4.2 mode table for one category.
type modeFlags struct {
	pointer, dpad, mouse, touch, controller, axisCursor bool
}

func flagsFor(c Category) modeFlags {
	switch c {
	case Mouse:
		return modeFlags{pointer: true, mouse: true}
	case Touch:
		return modeFlags{pointer: true, touch: true}
	case KeyBoard:
		return modeFlags{dpad: true}
	case GamepadButton, GamepadAxis:
		return modeFlags{dpad: true, controller: true}
	case GamepadAxisCursor:
		return modeFlags{pointer: true, controller: true, axisCursor: true}
	default:
		return modeFlags{}
	}
}

func (s *State) applyCategory(c Category) {
	f := flagsFor(c)
	s.LastType = c
	s.PointerEnabled = f.pointer
	s.DPadEnabled = f.dpad
	s.MouseEnabled = f.mouse
	s.TouchEnabled = f.touch
	s.ControllerEnabled = f.controller
	s.AxisCursorEnabled = f.axisCursor
}
