// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cursor

import "github.com/inputcore/engine/ecs"

// fakeRegistry is a minimal in-memory ecs.Registry for tests.
type fakeRegistry struct {
	next       ecs.Entity
	objects    map[ecs.Entity]*ecs.GameObject
	transforms map[ecs.Entity]*ecs.Transform
	uiConfigs  map[ecs.Entity]*ecs.UIConfig
	scrolls    map[ecs.Entity]*ecs.UIScrollComponent
	panes      map[ecs.Entity]*ecs.UIPaneParentRef
	children   map[ecs.Entity][]ecs.Entity
	destroyed  map[ecs.Entity]bool
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		objects:    map[ecs.Entity]*ecs.GameObject{},
		transforms: map[ecs.Entity]*ecs.Transform{},
		uiConfigs:  map[ecs.Entity]*ecs.UIConfig{},
		scrolls:    map[ecs.Entity]*ecs.UIScrollComponent{},
		panes:      map[ecs.Entity]*ecs.UIPaneParentRef{},
		children:   map[ecs.Entity][]ecs.Entity{},
		destroyed:  map[ecs.Entity]bool{},
	}
}

func (r *fakeRegistry) New() ecs.Entity {
	r.next++
	return r.next
}

func (r *fakeRegistry) NewObject(x, y, w, h float32) ecs.Entity {
	e := r.New()
	r.objects[e] = &ecs.GameObject{Visible: true}
	r.transforms[e] = &ecs.Transform{X: x, Y: y, W: w, H: h}
	return e
}

func (r *fakeRegistry) Valid(e ecs.Entity) bool {
	return !e.IsNull() && !r.destroyed[e]
}

func (r *fakeRegistry) GameObject(e ecs.Entity) (*ecs.GameObject, bool) {
	g, ok := r.objects[e]
	return g, ok
}

func (r *fakeRegistry) Transform(e ecs.Entity) (*ecs.Transform, bool) {
	t, ok := r.transforms[e]
	return t, ok
}

func (r *fakeRegistry) UIConfig(e ecs.Entity) (*ecs.UIConfig, bool) {
	c, ok := r.uiConfigs[e]
	return c, ok
}

func (r *fakeRegistry) UIScroll(e ecs.Entity) (*ecs.UIScrollComponent, bool) {
	s, ok := r.scrolls[e]
	return s, ok
}

func (r *fakeRegistry) UIPaneParent(e ecs.Entity) (*ecs.UIPaneParentRef, bool) {
	p, ok := r.panes[e]
	return p, ok
}

func (r *fakeRegistry) Children(e ecs.Entity) []ecs.Entity {
	return r.children[e]
}

func (r *fakeRegistry) Destroy(e ecs.Entity) {
	r.destroyed[e] = true
	delete(r.objects, e)
	delete(r.transforms, e)
}

func (r *fakeRegistry) Clear() {
	r.objects = map[ecs.Entity]*ecs.GameObject{}
	r.transforms = map[ecs.Entity]*ecs.Transform{}
	r.uiConfigs = map[ecs.Entity]*ecs.UIConfig{}
	r.scrolls = map[ecs.Entity]*ecs.UIScrollComponent{}
	r.panes = map[ecs.Entity]*ecs.UIPaneParentRef{}
	r.children = map[ecs.Entity][]ecs.Entity{}
	r.destroyed = map[ecs.Entity]bool{}
}
