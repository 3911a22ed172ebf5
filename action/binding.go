// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package action implements the action binding layer (spec component B):
// it maps raw (device, code) input to named, context-gated actions that
// carry edge, held, and analog state.
package action

import (
	"github.com/inputcore/engine/device"
	"github.com/inputcore/engine/events/key"
)

// Trigger selects which edge or level of a binding drives an action.
type Trigger int32

const (
	Pressed Trigger = iota
	Released
	Held
	Repeat
	AxisPos
	AxisNeg
)

// GlobalContext is always active regardless of [Manager.SetContext].
const GlobalContext = "global"

// DefaultThreshold is applied to AxisPos/AxisNeg bindings that do not set
// their own Threshold.
const DefaultThreshold = 0.5

// Binding maps one raw input source to one action under one trigger.
type Binding struct {
	Device    device.Kind
	Code      int32
	Trigger   Trigger
	Threshold float32
	Modifiers key.Modifiers
	Context   string
}

// codeKey identifies a raw input source for the reverse index.
type codeKey struct {
	device device.Kind
	code   int32
}

// bindingRef is an entry in the reverse index: which action and which of
// its bindings a given raw source affects.
type bindingRef struct {
	action string
	index  int
}
