// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "strconv"

// States are the lifecycle states of a [Renderer].
type States int32

const (
	// Initializing is the state before [Renderer.Init].
	Initializing States = iota

	// Running is the state while frames are drawn.
	Running

	// ShuttingDown is entered once the window is asked to close.
	ShuttingDown

	// Stopped is the final state, after the device is released.
	Stopped

	StatesN
)

var stateNames = [...]string{"Initializing", "Running", "ShuttingDown", "Stopped"}

func (s States) String() string {
	if s < 0 || s >= StatesN {
		return "States(" + strconv.Itoa(int(s)) + ")"
	}
	return stateNames[s]
}
