// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

// MouseTracker turns absolute cursor positions into deltas.
// The first position only primes the tracker so that the
// camera does not jump when the pointer first enters the window.
// The zero value is ready to use.
type MouseTracker struct {
	lastX, lastY float32
	primed       bool
}

// Delta records the cursor position and returns the motion since the
// last one. dy is reversed so that it is positive when moving up the
// screen. The first call returns zero.
func (mt *MouseTracker) Delta(x, y float32) (dx, dy float32) {
	if !mt.primed {
		mt.lastX, mt.lastY = x, y
		mt.primed = true
	}
	dx = x - mt.lastX
	dy = mt.lastY - y
	mt.lastX, mt.lastY = x, y
	return
}
