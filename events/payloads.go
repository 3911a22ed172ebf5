// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "github.com/inputcore/engine/math2"

// MouseClickedEvent is the payload published for [MouseClicked].
type MouseClickedEvent struct {
	Position math2.Vector2
	Button   int32
	Target   uint64
}

// UIButtonActivatedEvent is the payload published for [UIButtonActivated].
type UIButtonActivatedEvent struct {
	Entity uint64
	Button int32
}

// UIElementFocusedEvent is the payload published for [UIElementFocused].
type UIElementFocusedEvent struct {
	Entity uint64
}

// GamepadButtonEvent is the payload published for [GamepadButtonPressed]
// and [GamepadButtonReleased].
type GamepadButtonEvent struct {
	ID     int
	Button int32
}
