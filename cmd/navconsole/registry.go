// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/inputcore/engine/ecs"

// consoleRegistry is a minimal in-memory ecs.Registry for exercising
// the engine package interactively, without pulling in a real game's
// entity storage.
type consoleRegistry struct {
	next       ecs.Entity
	objects    map[ecs.Entity]*ecs.GameObject
	transforms map[ecs.Entity]*ecs.Transform
	uiConfigs  map[ecs.Entity]*ecs.UIConfig
	scrolls    map[ecs.Entity]*ecs.UIScrollComponent
	panes      map[ecs.Entity]*ecs.UIPaneParentRef
	children   map[ecs.Entity][]ecs.Entity
	destroyed  map[ecs.Entity]bool
}

func newConsoleRegistry() *consoleRegistry {
	return &consoleRegistry{
		objects:    map[ecs.Entity]*ecs.GameObject{},
		transforms: map[ecs.Entity]*ecs.Transform{},
		uiConfigs:  map[ecs.Entity]*ecs.UIConfig{},
		scrolls:    map[ecs.Entity]*ecs.UIScrollComponent{},
		panes:      map[ecs.Entity]*ecs.UIPaneParentRef{},
		children:   map[ecs.Entity][]ecs.Entity{},
		destroyed:  map[ecs.Entity]bool{},
	}
}

func (r *consoleRegistry) newEntity(x, y, w, h float32) ecs.Entity {
	r.next++
	e := r.next
	r.objects[e] = &ecs.GameObject{Visible: true, HoverEnabled: true, ClickEnabled: true, CollisionEnabled: true}
	r.transforms[e] = &ecs.Transform{X: x, Y: y, W: w, H: h}
	return e
}

func (r *consoleRegistry) Valid(e ecs.Entity) bool { return !e.IsNull() && !r.destroyed[e] }

func (r *consoleRegistry) GameObject(e ecs.Entity) (*ecs.GameObject, bool) {
	g, ok := r.objects[e]
	return g, ok
}

func (r *consoleRegistry) Transform(e ecs.Entity) (*ecs.Transform, bool) {
	t, ok := r.transforms[e]
	return t, ok
}

func (r *consoleRegistry) UIConfig(e ecs.Entity) (*ecs.UIConfig, bool) {
	c, ok := r.uiConfigs[e]
	return c, ok
}

func (r *consoleRegistry) UIScroll(e ecs.Entity) (*ecs.UIScrollComponent, bool) {
	s, ok := r.scrolls[e]
	return s, ok
}

func (r *consoleRegistry) UIPaneParent(e ecs.Entity) (*ecs.UIPaneParentRef, bool) {
	p, ok := r.panes[e]
	return p, ok
}

func (r *consoleRegistry) Children(e ecs.Entity) []ecs.Entity { return r.children[e] }

func (r *consoleRegistry) Destroy(e ecs.Entity) {
	r.destroyed[e] = true
	delete(r.objects, e)
	delete(r.transforms, e)
}

func (r *consoleRegistry) Clear() { *r = *newConsoleRegistry() }
