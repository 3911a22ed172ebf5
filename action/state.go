// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package action

// state is the per-frame/per-held state of one named action.
type state struct {
	pressed  bool
	released bool
	down     bool
	held     float32
	value    float32
}
