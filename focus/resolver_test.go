// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package focus

import (
	"testing"

	"github.com/inputcore/engine/ecs"
	"github.com/inputcore/engine/hid"
	"github.com/inputcore/engine/math2"
	"github.com/stretchr/testify/assert"
)

type fakeRegistry struct {
	next       ecs.Entity
	transforms map[ecs.Entity]*ecs.Transform
	objects    map[ecs.Entity]*ecs.GameObject
	invalid    map[ecs.Entity]bool
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		transforms: map[ecs.Entity]*ecs.Transform{},
		objects:    map[ecs.Entity]*ecs.GameObject{},
		invalid:    map[ecs.Entity]bool{},
	}
}

func (r *fakeRegistry) newEntity(x, y, w, h float32, hoverable bool) ecs.Entity {
	r.next++
	e := r.next
	r.transforms[e] = &ecs.Transform{X: x, Y: y, W: w, H: h}
	r.objects[e] = &ecs.GameObject{HoverEnabled: hoverable, Visible: true}
	return e
}

func (r *fakeRegistry) Valid(e ecs.Entity) bool              { return !e.IsNull() && !r.invalid[e] }
func (r *fakeRegistry) GameObject(e ecs.Entity) (*ecs.GameObject, bool) {
	g, ok := r.objects[e]
	return g, ok
}
func (r *fakeRegistry) Transform(e ecs.Entity) (*ecs.Transform, bool) {
	t, ok := r.transforms[e]
	return t, ok
}
func (r *fakeRegistry) UIConfig(e ecs.Entity) (*ecs.UIConfig, bool)               { return nil, false }
func (r *fakeRegistry) UIScroll(e ecs.Entity) (*ecs.UIScrollComponent, bool)      { return nil, false }
func (r *fakeRegistry) UIPaneParent(e ecs.Entity) (*ecs.UIPaneParentRef, bool)    { return nil, false }
func (r *fakeRegistry) Children(e ecs.Entity) []ecs.Entity                        { return nil }
func (r *fakeRegistry) Destroy(e ecs.Entity) {
	r.invalid[e] = true
	delete(r.transforms, e)
	delete(r.objects, e)
}
func (r *fakeRegistry) Clear() { *r = *newFakeRegistry() }

func TestControllerNavOverrideMarksCurrentFocused(t *testing.T) {
	reg := newFakeRegistry()
	e := reg.newEntity(0, 0, 10, 10, true)
	r := &Resolver{Registry: reg, Current: e}

	r.Update(hid.GamepadButton, true, false, false, false, nil, math2.Vec2(0, 0), ecs.Null, nil)
	go_, _ := reg.GameObject(e)
	assert.True(t, go_.IsBeingFocused)
}

func TestNonControllerModeClearsFocus(t *testing.T) {
	reg := newFakeRegistry()
	e := reg.newEntity(0, 0, 10, 10, true)
	r := &Resolver{Registry: reg, Current: e}

	r.Update(hid.Mouse, false, false, false, false, nil, math2.Vec2(0, 0), ecs.Null, nil)
	assert.Equal(t, ecs.Null, r.Current)
	go_, _ := reg.GameObject(e)
	assert.False(t, go_.IsBeingFocused)
}

func TestDirectionalPickPrefersDominantAxis(t *testing.T) {
	reg := newFakeRegistry()
	a := reg.newEntity(0, 0, 1, 1, true)
	b := reg.newEntity(100, 5, 1, 1, true)
	r := &Resolver{Registry: reg, Current: a}

	right := Right
	r.Update(hid.GamepadButton, false, false, false, false, &right, math2.Vec2(0, 0), ecs.Null, []ecs.Entity{b})
	assert.Equal(t, b, r.Current)
}

func TestClaimFocusFromIsNoOpWhenAlreadyCurrent(t *testing.T) {
	reg := newFakeRegistry()
	e := reg.newEntity(0, 0, 1, 1, true)
	fired := 0
	r := &Resolver{Registry: reg, Current: e, OnVibrate: func(float32) { fired++ }}

	r.ClaimFocusFrom(e)
	assert.Equal(t, 0, fired)
}

func TestUnfocusableCandidateIsSkipped(t *testing.T) {
	reg := newFakeRegistry()
	a := reg.newEntity(0, 0, 1, 1, true)
	notHoverable := reg.newEntity(10, 0, 1, 1, false)
	r := &Resolver{Registry: reg, Current: a}

	right := Right
	r.Update(hid.GamepadButton, false, false, false, false, &right, math2.Vec2(0, 0), ecs.Null, []ecs.Entity{notHoverable})
	assert.Equal(t, a, r.Current, "current focus should be unchanged when no eligible candidate exists")
}
