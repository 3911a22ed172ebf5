// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import "github.com/inputcore/engine/ecs"

type fakeRegistry struct {
	next       ecs.Entity
	transforms map[ecs.Entity]*ecs.Transform
	objects    map[ecs.Entity]*ecs.GameObject
	scrolls    map[ecs.Entity]*ecs.UIScrollComponent
	panes      map[ecs.Entity]*ecs.UIPaneParentRef
	children   map[ecs.Entity][]ecs.Entity
	invalid    map[ecs.Entity]bool
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		transforms: map[ecs.Entity]*ecs.Transform{},
		objects:    map[ecs.Entity]*ecs.GameObject{},
		scrolls:    map[ecs.Entity]*ecs.UIScrollComponent{},
		panes:      map[ecs.Entity]*ecs.UIPaneParentRef{},
		children:   map[ecs.Entity][]ecs.Entity{},
		invalid:    map[ecs.Entity]bool{},
	}
}

func (r *fakeRegistry) newEntity(x, y, w, h float32) ecs.Entity {
	r.next++
	e := r.next
	r.transforms[e] = &ecs.Transform{X: x, Y: y, W: w, H: h}
	r.objects[e] = &ecs.GameObject{}
	return e
}

func (r *fakeRegistry) Valid(e ecs.Entity) bool {
	return !e.IsNull() && !r.invalid[e]
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
	return nil, false
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
	r.invalid[e] = true
	delete(r.transforms, e)
	delete(r.objects, e)
}

func (r *fakeRegistry) Clear() {
	*r = *newFakeRegistry()
}
