// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the events the engine publishes to the
// application-level event bus, plus the event-dispatch types used when
// invoking per-entity GameObject callbacks (on_click, on_hover, etc.).
// The bus itself is an external collaborator, referenced only through the
// [Publisher] interface.
package events

//go:generate stringer -type=Types

// Types identifies the kind of event dispatched to a [Publisher] or to a
// per-entity listener.
type Types int32

const (
	UnknownType Types = iota

	// MouseClicked is published on every cursor release edge, whatever the
	// target and whether or not it counts as a click (see cursor package).
	// Payload: MouseClickedEvent.
	MouseClicked

	// UIButtonActivated is published in addition to MouseClicked when the
	// release target is a UI element. Payload: UIButtonActivatedEvent.
	UIButtonActivated

	// UIElementFocused is published whenever keyboard/controller focus
	// changes to a new entity. Payload: UIElementFocusedEvent.
	UIElementFocused

	// GamepadButtonPressed is published on a gamepad button down edge.
	// Payload: GamepadButtonEvent.
	GamepadButtonPressed

	// GamepadButtonReleased is published on a gamepad button up edge.
	// Payload: GamepadButtonEvent.
	GamepadButtonReleased
)
