// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package action

import (
	"testing"

	"github.com/inputcore/engine/device"
	"github.com/stretchr/testify/assert"
)

func TestPressedReleasedEdges(t *testing.T) {
	m := NewManager()
	m.Bind("jump", Binding{Device: device.Keyboard, Code: 32, Trigger: Pressed, Context: GlobalContext})
	m.Bind("jump", Binding{Device: device.Keyboard, Code: 32, Trigger: Released, Context: GlobalContext})

	m.DispatchRaw(device.Event{Kind: device.Keyboard, Code: 32, Down: true})
	assert.True(t, m.Pressed("jump"))
	assert.True(t, m.Down("jump"))
	assert.False(t, m.Released("jump"))

	m.Decay()
	assert.False(t, m.Pressed("jump"))
	assert.True(t, m.Down("jump"))

	m.DispatchRaw(device.Event{Kind: device.Keyboard, Code: 32, Down: false})
	assert.True(t, m.Released("jump"))
	assert.False(t, m.Down("jump"))
}

func TestClearForgetsAction(t *testing.T) {
	m := NewManager()
	m.Bind("jump", Binding{Device: device.Keyboard, Code: 32, Trigger: Pressed})
	m.DispatchRaw(device.Event{Kind: device.Keyboard, Code: 32, Down: true})
	assert.True(t, m.Pressed("jump"))

	m.Clear("jump")
	assert.False(t, m.Pressed("jump"))
	m.DispatchRaw(device.Event{Kind: device.Keyboard, Code: 32, Down: true})
	assert.False(t, m.Pressed("jump"), "cleared action must never fire again")
}

func TestContextGating(t *testing.T) {
	m := NewManager()
	m.SetContext("menu")
	m.Bind("fire", Binding{Device: device.Mouse, Code: 0, Trigger: Pressed, Context: "gameplay"})

	m.DispatchRaw(device.Event{Kind: device.Mouse, Code: 0, Down: true})
	assert.False(t, m.Pressed("fire"), "binding scoped to an inactive context must not fire")

	m.SetContext("gameplay")
	m.DispatchRaw(device.Event{Kind: device.Mouse, Code: 0, Down: true})
	assert.True(t, m.Pressed("fire"))
}

func TestGlobalContextAlwaysActive(t *testing.T) {
	m := NewManager()
	m.SetContext("menu")
	m.Bind("pause", Binding{Device: device.Keyboard, Code: 27, Trigger: Pressed, Context: GlobalContext})
	m.DispatchRaw(device.Event{Kind: device.Keyboard, Code: 27, Down: true})
	assert.True(t, m.Pressed("pause"))
}

func TestAxisThresholds(t *testing.T) {
	m := NewManager()
	m.Bind("move_right", Binding{Device: device.GamepadAxis, Code: 0, Trigger: AxisPos, Threshold: 0.2, Context: GlobalContext})

	m.DispatchRaw(device.Event{Kind: device.GamepadAxis, Code: 0, Value: 0.1})
	assert.Equal(t, float32(0), m.Value("move_right"), "below threshold must not register")

	m.DispatchRaw(device.Event{Kind: device.GamepadAxis, Code: 0, Value: 0.6})
	assert.Equal(t, float32(0.6), m.Value("move_right"))

	m.Decay()
	assert.Equal(t, float32(0), m.Value("move_right"), "decay resets analog samples")
}

func TestTickHoldsAccumulatesOnlyWhileDown(t *testing.T) {
	m := NewManager()
	m.Bind("charge", Binding{Device: device.Keyboard, Code: 1, Trigger: Pressed, Context: GlobalContext})
	m.DispatchRaw(device.Event{Kind: device.Keyboard, Code: 1, Down: true})

	m.TickHolds(0.5)
	m.TickHolds(0.25)
	assert.Equal(t, float32(0.75), m.Held("charge"))

	m.DispatchRaw(device.Event{Kind: device.Keyboard, Code: 1, Down: false})
	m.TickHolds(0.5)
	assert.Equal(t, float32(0), m.Held("charge"))
}

func TestHeldOnlyBindingClearsDownOnRelease(t *testing.T) {
	m := NewManager()
	m.Bind("aim", Binding{Device: device.GamepadButton, Code: 5, Trigger: Held, Context: GlobalContext})

	m.DispatchRaw(device.Event{Kind: device.GamepadButton, Code: 5, Down: true})
	assert.True(t, m.Down("aim"))

	m.TickHolds(0.3)
	assert.Equal(t, float32(0.3), m.Held("aim"))

	m.DispatchRaw(device.Event{Kind: device.GamepadButton, Code: 5, Down: false})
	assert.False(t, m.Down("aim"), "a Held-only binding must clear down on release")
	assert.Equal(t, float32(0), m.Held("aim"))
}

func TestRebindCaptureConsumesNextEventOnly(t *testing.T) {
	m := NewManager()
	m.Bind("jump", Binding{Device: device.Keyboard, Code: 32, Trigger: Pressed, Context: GlobalContext})

	var captured Binding
	var ok bool
	m.StartRebind("jump", func(okArg bool, b Binding) {
		ok = okArg
		captured = b
	})

	m.DispatchRaw(device.Event{Kind: device.Keyboard, Code: 65, Down: true})
	assert.True(t, ok)
	assert.Equal(t, device.Keyboard, captured.Device)
	assert.Equal(t, int32(65), captured.Code)
	assert.Equal(t, Pressed, captured.Trigger)
	assert.False(t, m.Pressed("jump"), "the captured event must not reach normal dispatch")

	m.DispatchRaw(device.Event{Kind: device.Keyboard, Code: 32, Down: true})
	assert.True(t, m.Pressed("jump"), "capture must not persist past the first event")
}

func TestUnknownActionQueriesAreSafe(t *testing.T) {
	m := NewManager()
	assert.False(t, m.Pressed("nope"))
	assert.False(t, m.Released("nope"))
	assert.False(t, m.Down("nope"))
	assert.Equal(t, float32(0), m.Value("nope"))
	assert.Equal(t, float32(0), m.Held("nope"))
}
