// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ecs fixes the shape of the external entity-component-system
// collaborator. The engine never owns entity storage; it holds opaque
// handles and queries a [Registry] for the handful of components it reads
// or mutates. Everything here is an interface or a plain data component —
// there is no ECS implementation in this module.
package ecs

// Entity is an opaque handle into the host application's entity registry.
// The zero value, Null, never refers to a live entity.
type Entity uint64

// Null is the invalid/empty entity handle.
const Null Entity = 0

// IsNull reports whether e is the null handle. It does not imply validity:
// a non-null handle can still be stale; callers must still confirm with
// [Registry.Valid].
func (e Entity) IsNull() bool {
	return e == Null
}

// Registry is the external ECS collaborator. It supplies entity validity,
// component access, and registry-wide lifecycle operations. Handles may
// become invalid at any point due to destruction elsewhere; every accessor
// here must tolerate looking up a stale handle and report absence rather
// than panicking.
type Registry interface {
	// Valid reports whether e currently refers to a live entity.
	Valid(e Entity) bool

	// GameObject returns the interaction-state component for e, if present.
	GameObject(e Entity) (*GameObject, bool)

	// Transform returns the spatial rectangle component for e, if present.
	Transform(e Entity) (*Transform, bool)

	// UIConfig returns the opaque UI-element marker component for e, if
	// present. Its presence, not its contents, is what the engine reads:
	// it is how the cursor event pipeline tells an application UI element
	// apart from a plain world entity.
	UIConfig(e Entity) (*UIConfig, bool)

	// UIScroll returns the scroll-pane component for e, if present.
	UIScroll(e Entity) (*UIScrollComponent, bool)

	// UIPaneParent returns the scroll-pane-parent reference for e, if present.
	UIPaneParent(e Entity) (*UIPaneParentRef, bool)

	// Children returns e's direct descendants, for bottom-up traversal
	// (e.g. scroll displacement propagation). Order is unspecified.
	Children(e Entity) []Entity

	// Destroy removes e and all of its components from the registry.
	Destroy(e Entity)

	// Clear removes every entity from the registry.
	Clear()
}
