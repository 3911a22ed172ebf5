// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cursor

import (
	"github.com/inputcore/engine/ecs"
	"github.com/inputcore/engine/events"
	"github.com/inputcore/engine/math2"
)

// Publisher is the opaque event-bus collaborator (spec §6.4).
type Publisher interface {
	Publish(typ events.Types, payload any)
}

// touchHoverPending is set when a touch-mode hover is waiting out the
// minimum hover-time timer (spec §4.6) before firing on_hover.
type touchHoverPending struct {
	target  ecs.Entity
	elapsed float32
}

// Pipeline drives the §4.6 cursor event state machine on top of a
// [Manager]'s state.
type Pipeline struct {
	m   *Manager
	pub Publisher

	touch *touchHoverPending
}

// NewPipeline returns a Pipeline bound to m, publishing through pub.
func NewPipeline(m *Manager, pub Publisher) *Pipeline {
	return &Pipeline{m: m, pub: pub}
}

func (p *Pipeline) publish(typ events.Types, payload any) {
	if p.pub != nil {
		p.pub.Publish(typ, payload)
	}
}

// Tick advances the logical clock used for down/up timing. Call once per
// frame after [Manager.UpdateHover] and before dispatching this frame's
// press/release edges. A hover target designated earlier this frame starts
// its touch hover timer here, so this frame's dt counts toward it.
func (p *Pipeline) Tick(dt float32) {
	s := &p.m.State
	s.now += dt
	if !s.HoveringHandled && !s.DesignatedHoverTarget.IsNull() &&
		(p.touch == nil || p.touch.target != s.DesignatedHoverTarget) {
		p.touch = &touchHoverPending{target: s.DesignatedHoverTarget}
	}
	if p.touch != nil {
		p.touch.elapsed += dt
	}
}

// Press handles a left-button/primary-touch down edge (spec §4.6 "Press").
func (p *Pipeline) Press(touch bool) {
	s := &p.m.State
	s.DownPosition = s.Position
	s.HasDownPosition = true
	s.DownTime = s.now
	s.DownTarget = p.chooseDownTarget(touch)
	s.IsDown = true
	s.DownHandled = false

	if go_, ok := p.m.Registry.GameObject(s.DownTarget); ok && go_.DragEnabled {
		go_.IsBeingDragged = true
		s.DraggingTarget = s.DownTarget
		if tr, ok := p.m.Registry.Transform(s.DownTarget); ok {
			s.DragOffset = s.Position.Sub(math2.Vec2(tr.X, tr.Y))
		}
	}
}

func (p *Pipeline) chooseDownTarget(touch bool) ecs.Entity {
	s := &p.m.State
	if touch && !s.HoveringTarget.IsNull() {
		return s.HoveringTarget
	}
	if !s.DesignatedHoverTarget.IsNull() {
		return s.DesignatedHoverTarget
	}
	if !s.FocusedTarget.IsNull() {
		return s.FocusedTarget
	}
	for _, e := range s.CollisionList {
		if go_, ok := p.m.Registry.GameObject(e); ok && go_.ClickEnabled {
			return e
		}
	}
	return p.m.WorldID
}

// Release handles a left-button/primary-touch up edge (spec §4.6
// "Release" + "Drag start"/"Release dispatch"/"Click dispatch").
func (p *Pipeline) Release() {
	s := &p.m.State
	s.UpPosition = s.Position
	s.HasUpPosition = true
	s.UpTime = s.now
	s.UpTarget = p.chooseUpTarget()
	s.IsDown = false
	s.UpHandled = false

	p.publish(events.MouseClicked, events.MouseClickedEvent{
		Position: s.Position,
		Target:   uint64(s.UpTarget),
	})
	if _, isUI := p.m.Registry.UIConfig(s.UpTarget); isUI {
		p.publish(events.UIButtonActivated, events.UIButtonActivatedEvent{Entity: uint64(s.UpTarget)})
	}

	s.PrevDraggingTarget = s.DraggingTarget
	if s.UpTarget == s.PrevDraggingTarget && !s.PrevDraggingTarget.IsNull() {
		for _, e := range s.CollisionList {
			if go_, ok := p.m.Registry.GameObject(e); ok && go_.TriggerOnReleaseEnabled {
				s.ReleasedOnTarget = e
				s.ReleasedOnHandled = false
				break
			}
		}
	}

	if !s.DraggingTarget.IsNull() {
		if go_, ok := p.m.Registry.GameObject(s.DraggingTarget); ok {
			go_.IsBeingDragged = false
			invoke(func() {
				if go_.OnStopDrag != nil {
					go_.OnStopDrag(s.DraggingTarget)
				}
			})
		}
		s.DraggingTarget = ecs.Null
	}

	if p.isClickGesture() {
		if go_, ok := p.m.Registry.GameObject(s.DownTarget); ok && go_.ClickEnabled {
			s.ClickedTarget = s.DownTarget
		}
	}

	if !s.ReleasedOnTarget.IsNull() && !s.ReleasedOnHandled {
		if go_, ok := p.m.Registry.GameObject(s.ReleasedOnTarget); ok {
			invoke(func() {
				if go_.OnRelease != nil {
					go_.OnRelease(s.ReleasedOnTarget)
				}
			})
		}
		s.ReleasedOnHandled = true
	}

	if !s.ClickedTarget.IsNull() && !s.ClickHandled {
		p.dispatchClick(s.ClickedTarget)
		s.ClickHandled = true
	}
}

func (p *Pipeline) chooseUpTarget() ecs.Entity {
	s := &p.m.State
	if !s.HoveringTarget.IsNull() {
		return s.HoveringTarget
	}
	if !s.FocusedTarget.IsNull() {
		return s.FocusedTarget
	}
	return p.m.WorldID
}

func (p *Pipeline) isClickGesture() bool {
	s := &p.m.State
	if !s.HasDownPosition || !s.HasUpPosition {
		return false
	}
	dist := s.UpPosition.Sub(s.DownPosition).LengthSquared()
	if dist > p.m.Cfg.MinMovementDistSq {
		return false
	}
	elapsed := s.UpTime - s.DownTime
	return elapsed <= p.m.Cfg.ClickTimeoutSeconds*p.m.timescale
}

func (p *Pipeline) dispatchClick(target ecs.Entity) {
	go_, ok := p.m.Registry.GameObject(target)
	if !ok {
		return
	}
	invoke(func() {
		if go_.OnClick != nil {
			go_.OnClick(target)
		}
	})
}

// RightPress dispatches a right-click to the hovering target, or the
// focused target if none, when it has RightClickEnabled (spec §4.6 "Right
// press"). Dispatch is immediate; nothing is queued for the next Update.
func (p *Pipeline) RightPress() {
	s := &p.m.State
	target := s.HoveringTarget
	if target.IsNull() {
		target = s.FocusedTarget
	}
	if target.IsNull() {
		return
	}
	go_, ok := p.m.Registry.GameObject(target)
	if !ok || !go_.RightClickEnabled {
		return
	}
	invoke(func() {
		if go_.OnRightClick != nil {
			go_.OnRightClick(target)
		}
	})
}

// Drag continues an in-progress drag, invoking on_drag with the delta from
// the recorded drag offset (spec §4.6 "Drag start").
func (p *Pipeline) Drag() {
	s := &p.m.State
	if s.DraggingTarget.IsNull() {
		return
	}
	go_, ok := p.m.Registry.GameObject(s.DraggingTarget)
	if !ok {
		return
	}
	tr, ok := p.m.Registry.Transform(s.DraggingTarget)
	if !ok {
		return
	}
	delta := s.Position.Sub(s.DragOffset).Sub(math2.Vec2(tr.X, tr.Y))
	invoke(func() {
		if go_.OnDrag != nil {
			go_.OnDrag(s.DraggingTarget, delta)
		}
	})
}

// DispatchHover fires hover/stop-hover callbacks when the designated hover
// target changed this frame (spec §4.6 "Hover dispatch"). In touch mode a
// newly-designated target is held behind [Config.TouchMinHoverSeconds]
// before on_hover fires (spec §4.6's touch hover-time deferral), which means
// this target can still have unfinished work across frames in which the
// target itself hasn't changed -- HoveringHandled alone can't short-circuit
// that case, so the touch-pending timer is checked explicitly below.
func (p *Pipeline) DispatchHover(touch bool) {
	s := &p.m.State
	if s.HoveringHandled {
		return
	}

	changed := s.DesignatedHoverTarget != s.PrevDesignatedHoverTarget
	pending := touch && p.touch != nil && p.touch.target == s.DesignatedHoverTarget
	if !changed && !pending {
		s.HoveringHandled = true
		return
	}

	if changed {
		if prev := s.PrevDesignatedHoverTarget; !prev.IsNull() {
			if go_, ok := p.m.Registry.GameObject(prev); ok && !go_.IsBeingDragged {
				invoke(func() {
					if go_.OnStopHover != nil {
						go_.OnStopHover(prev)
					}
				})
			}
		}
	}

	next := s.DesignatedHoverTarget
	if next.IsNull() || next == s.DraggingTarget {
		s.HoveringHandled = true
		p.touch = nil
		return
	}

	if touch {
		if p.touch == nil || p.touch.target != next {
			p.touch = &touchHoverPending{target: next}
		}
		if p.touch.elapsed < p.m.Cfg.TouchMinHoverSeconds {
			return
		}
	}

	if go_, ok := p.m.Registry.GameObject(next); ok {
		invoke(func() {
			if go_.OnHover != nil {
				go_.OnHover(next)
			}
		})
	}
	s.HoveringHandled = true
	p.touch = nil
}
