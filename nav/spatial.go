// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"github.com/inputcore/engine/ecs"
	"github.com/inputcore/engine/math2"
)

// coneThreshold is the minimum signed component along the requested axis
// a near-diagonal candidate must clear to be accepted by the cone
// fallback (spec §4.7.D Step 5, §9 "spatial scoring").
const coneThreshold = 0.3

// resolveSpatial implements §4.7.D Step 5. prevFocus may be null, in
// which case the reference entity falls back to the group's current
// selection, then to the first eligible entry.
func (m *Manager) resolveSpatial(g *Group, prevFocus ecs.Entity, dir Direction) (ecs.Entity, int) {
	ref := prevFocus
	if !m.eligible(ref) {
		if sel, ok := m.GetSelected(g.Name); ok && m.eligible(sel) {
			ref = sel
		} else {
			ref = ecs.Null
			for _, e := range g.Entries {
				if m.eligible(e) {
					ref = e
					break
				}
			}
		}
	}
	if ref.IsNull() {
		return ecs.Null, -1
	}
	refTr, ok := m.Registry.Transform(ref)
	if !ok {
		return ecs.Null, -1
	}
	cref := refTr.Center()

	var bestEntity ecs.Entity
	bestIdx := -1
	var bestScore float32

	var nearestEntity ecs.Entity
	nearestIdx := -1
	var nearestScore float32

	for i, e := range g.Entries {
		if e == ref || !m.eligible(e) {
			continue
		}
		tr, ok := m.Registry.Transform(e)
		if !ok {
			continue
		}
		c := tr.Center()
		diff := c.Sub(cref)

		if nearestEntity.IsNull() || diff.LengthSquared() < nearestScore {
			nearestEntity = e
			nearestIdx = i
			nearestScore = diff.LengthSquared()
		}

		if !directionEligible(diff, dir) {
			continue
		}
		score := diff.Manhattan()
		if bestEntity.IsNull() || score < bestScore {
			bestEntity = e
			bestIdx = i
			bestScore = score
		}
	}

	if !bestEntity.IsNull() {
		return bestEntity, bestIdx
	}
	return nearestEntity, nearestIdx
}

// directionEligible applies the dominant-axis rule, falling back to the
// cone test for near-diagonal candidates (spec §4.7.D Step 5).
func directionEligible(diff math2.Vector2, dir Direction) bool {
	absX, absY := absF(diff.X), absF(diff.Y)
	if absX > absY {
		switch dir {
		case Right:
			return diff.X > 0
		case Left:
			return diff.X < 0
		}
	} else {
		switch dir {
		case Down:
			return diff.Y > 0
		case Up:
			return diff.Y < 0
		}
	}

	norm := diff.Normal()
	var component float32
	switch dir {
	case Right:
		component = norm.X
	case Left:
		component = -norm.X
	case Down:
		component = norm.Y
	case Up:
		component = -norm.Y
	}
	return component > coneThreshold
}

func absF(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// resolveLinear implements §4.7.D Step 6.
func (m *Manager) resolveLinear(g *Group, dir Direction) (ecs.Entity, int) {
	var activeOrig []int
	for i, e := range g.Entries {
		if m.eligible(e) {
			activeOrig = append(activeOrig, i)
		}
	}
	if len(activeOrig) == 0 {
		return ecs.Null, -1
	}

	posInActive := 0
	for i, origIdx := range activeOrig {
		if origIdx == g.SelectedIndex {
			posInActive = i
			break
		}
	}

	delta := 1
	if dir == Left || dir == Up {
		delta = -1
	}
	nextPos := posInActive + delta

	if g.Wrap {
		n := len(activeOrig)
		nextPos = ((nextPos % n) + n) % n
	} else if nextPos < 0 || nextPos >= len(activeOrig) {
		return ecs.Null, -1
	}

	origIdx := activeOrig[nextPos]
	return g.Entries[origIdx], origIdx
}
