// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// Locks implements component I's soft-lock half: a named set of
// per-frame gates ("frame", "wipe", or any application-defined name)
// that suppress hover/click/focus while active (spec §4.5 Step 1 "If
// any global lock or overlay wipe is active"). "Frame" locks are
// one-shot: Add with frame=true auto-clears at the next
// [Locks.EndFrame], matching the "reset frame lock next frame" timer
// behavior spec §5 calls out under Suspension points.
type Locks struct {
	sticky map[string]bool
	framed map[string]bool
}

// NewLocks returns an empty Locks set.
func NewLocks() *Locks {
	return &Locks{sticky: map[string]bool{}, framed: map[string]bool{}}
}

// Add engages a named lock. If frame is true, the lock clears itself at
// the next EndFrame; otherwise it persists until Remove is called.
func (l *Locks) Add(name string, frame bool) {
	if frame {
		l.framed[name] = true
	} else {
		l.sticky[name] = true
	}
}

// Remove disengages a named lock, sticky or framed.
func (l *Locks) Remove(name string) {
	delete(l.sticky, name)
	delete(l.framed, name)
}

// Active reports whether any lock, sticky or framed, is currently
// engaged.
func (l *Locks) Active() bool {
	return len(l.sticky) > 0 || len(l.framed) > 0
}

// Clear releases every lock (spec §6.1 init "clears locks").
func (l *Locks) Clear() {
	l.sticky = map[string]bool{}
	l.framed = map[string]bool{}
}

// EndFrame discards every frame-scoped lock. Call once per frame from
// [InputState.FinalizeFrame].
func (l *Locks) EndFrame() {
	l.framed = map[string]bool{}
}

// Paused gates component I's pause half: entities with
// GameObject.IgnoresPause keep responding while paused, everything else
// is suppressed. Suppressed reports whether paused should block e given
// its ignoresPause flag.
func Suppressed(paused, ignoresPause bool) bool {
	return paused && !ignoresPause
}
