// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Publisher is the external event-bus collaborator. The engine never
// subscribes to anything; it only publishes, synchronously, from inside
// its per-frame update.
type Publisher interface {
	Publish(typ Types, payload any)
}

// NopPublisher discards every event. An application without a real bus
// can pass it where a Publisher is required; the engine never substitutes
// it on its own.
type NopPublisher struct{}

// Publish implements [Publisher].
func (NopPublisher) Publish(Types, any) {}
