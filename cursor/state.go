// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cursor implements the logical cursor state machine (spec
// components D and E): position source selection, the broad-phase
// collision set, hover target selection, and the down/up/click/drag/
// release edge-detection pipeline.
package cursor

import (
	"github.com/inputcore/engine/ecs"
	"github.com/inputcore/engine/math2"
)

// ContextEntry is one frame of the modal cursor-context stack (spec §4.4).
type ContextEntry struct {
	Focused        ecs.Entity
	Position       math2.Vector2
	FocusInterrupt bool
}

// SnapRequest is a pending one-shot cursor relocation (spec §4.4), consumed
// at the top of the next update.
type SnapRequest struct {
	Pending  bool
	Node     ecs.Entity
	Position math2.Vector2
	Kind     string // "node" or "transform"
}

// State is the full set of per-frame and sticky cursor fields (spec §3.4).
// The zero value is a valid, empty cursor with no targets and no history.
type State struct {
	Position math2.Vector2

	FocusedTarget     ecs.Entity
	PrevFocusedTarget ecs.Entity

	HoveringTarget     ecs.Entity
	PrevHoveringTarget ecs.Entity

	DesignatedHoverTarget     ecs.Entity
	PrevDesignatedHoverTarget ecs.Entity

	DownTarget         ecs.Entity
	UpTarget           ecs.Entity
	ClickedTarget      ecs.Entity
	DraggingTarget     ecs.Entity
	PrevDraggingTarget ecs.Entity
	ReleasedOnTarget   ecs.Entity

	HasDownPosition bool
	DownPosition    math2.Vector2
	HasUpPosition   bool
	UpPosition      math2.Vector2
	DownTime        float32
	UpTime          float32

	DownHandled       bool
	UpHandled         bool
	ClickHandled      bool
	ReleasedOnHandled bool
	HoveringHandled   bool

	IsDown bool

	CollisionList []ecs.Entity
	NodesAtCursor []ecs.Entity

	ActiveScrollPane ecs.Entity

	ContextLayer int
	ContextStack []ContextEntry

	Snap SnapRequest

	// ControllerNavOverride is set by the navigation manager when it moves
	// focus; the legacy focus resolver (package focus) consumes and clears
	// it instead of running its own pass for that frame.
	ControllerNavOverride bool

	// DragOffset is the cursor-to-transform-origin offset recorded at drag
	// start, so dragging preserves the original grab point.
	DragOffset math2.Vector2

	// now is the monotonic clock the event pipeline stamps DownTime/UpTime
	// from; advanced once per frame by [Pipeline.Tick].
	now float32
}
