// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nav implements the controller navigation manager (spec
// component G): groups, layers, explicit neighbors, spatial and linear
// directional resolution, inter-group/layer edge transitions, input
// auto-repeat with acceleration, focus restoration across modal layer
// push/pop, and scroll-into-view integration.
package nav

import "github.com/inputcore/engine/ecs"

// Direction is one of the four navigation directions.
type Direction int32

const (
	Up Direction = iota
	Down
	Left
	Right
)

// ParseDirection maps the §6.2 single-letter direction names to a
// Direction. The second return is false for anything else.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "U":
		return Up, true
	case "D":
		return Down, true
	case "L":
		return Left, true
	case "R":
		return Right, true
	default:
		return 0, false
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "?"
	}
}

// Callbacks is the {on_focus, on_unfocus, on_select} bundle attachable
// both per-group and globally (spec §3.3, §4.7.H).
type Callbacks struct {
	OnFocus   func(e ecs.Entity)
	OnUnfocus func(e ecs.Entity)
	OnSelect  func(e ecs.Entity)
}

// Neighbors is a per-entity explicit override of the next entity for each
// direction, bypassing spatial/linear resolution when set and eligible
// (spec §4.7.D Step 4).
type Neighbors struct {
	Up, Down, Left, Right ecs.Entity
}

func (n Neighbors) get(d Direction) ecs.Entity {
	switch d {
	case Up:
		return n.Up
	case Down:
		return n.Down
	case Left:
		return n.Left
	case Right:
		return n.Right
	default:
		return ecs.Null
	}
}

// Group is a named ordered collection of focusable entities (spec
// §3.3 NavGroup).
type Group struct {
	Name          string
	Entries       []ecs.Entity
	SelectedIndex int
	Active        bool
	Linear        bool
	Spatial       bool
	Wrap          bool

	// Links names the group to transition to when a directional navigate
	// falls off that edge of this group (spec §4.7.D Step 7).
	Links GroupLinks

	Callbacks Callbacks
}

// GroupLinks mirrors Neighbors but holds group names instead of entity
// handles, for the four inter-group links a Group may declare.
type GroupLinks struct {
	Up, Down, Left, Right string
}

func (l GroupLinks) get(d Direction) string {
	switch d {
	case Up:
		return l.Up
	case Down:
		return l.Down
	case Left:
		return l.Left
	case Right:
		return l.Right
	default:
		return ""
	}
}

// newGroup returns a Group with the §4.7.B creation defaults.
func newGroup(name string) *Group {
	return &Group{
		Name:          name,
		SelectedIndex: -1,
		Active:        true,
		Linear:        false,
		Spatial:       true,
		Wrap:          false,
	}
}

// Layer is a named set of groups comprising one navigation scope (spec
// §3.3 NavLayer).
type Layer struct {
	Name   string
	Groups []string
	Active bool
}

// RepeatState is the per-group auto-repeat bookkeeping (spec §3.3, §4.7.D
// Step 1).
type RepeatState struct {
	LastDir         Direction
	HasLastDir      bool
	RepeatCount     int
	TimeUntilRepeat float32
	InitialDone     bool
}

// RepeatConfig is the tunable repeat-timing curve (spec §3.3, §6.2
// set_repeat_config).
type RepeatConfig struct {
	InitialDelay  float32
	RepeatRate    float32
	MinRepeatRate float32
	Acceleration  float32
}

// DefaultRepeatConfig returns the bit-exact §3.3 defaults.
func DefaultRepeatConfig() RepeatConfig {
	return RepeatConfig{
		InitialDelay:  0.3,
		RepeatRate:    0.1,
		MinRepeatRate: 0.02,
		Acceleration:  0.9,
	}
}

// LayerFocusEntry is one saved {layer, focus, group} tuple for modal
// focus restoration (spec §4.7.E).
type LayerFocusEntry struct {
	Layer         string
	PreviousFocus ecs.Entity
	PreviousGroup string
}

// RestoredFocus is populated on pop_layer when a matching saved entry
// exists for the new top layer (spec §4.7.E).
type RestoredFocus struct {
	Entity ecs.Entity
	Group  string
}
