// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input defines the per-frame input event that the window
// produces and the camera consumes.
package input

import (
	"image"
	"strings"
)

// Moves is a set of held movement keys.
type Moves uint8

const (
	// Forward is W.
	Forward Moves = 1 << iota

	// Backward is S.
	Backward

	// Left is A.
	Left

	// Right is D.
	Right

	// Down is Q.
	Down

	// Up is E.
	Up
)

var moveNames = []string{"Forward", "Backward", "Left", "Right", "Down", "Up"}

// Has returns whether all of the given moves are set.
func (m Moves) Has(o Moves) bool {
	return m&o == o
}

// Set sets or clears the given moves.
func (m *Moves) Set(o Moves, on bool) {
	if on {
		*m |= o
	} else {
		*m &^= o
	}
}

func (m Moves) String() string {
	if m == 0 {
		return "None"
	}
	var names []string
	for i, nm := range moveNames {
		if m.Has(1 << i) {
			names = append(names, nm)
		}
	}
	return strings.Join(names, "|")
}

// Event is the input gathered over one frame.
type Event struct {

	// Held are the movement keys held down at poll time.
	Held Moves

	// LookX and LookY are the accumulated pointer deltas, with
	// LookY positive when the pointer moves up the screen.
	LookX, LookY float32

	// Scroll is the accumulated vertical scroll offset.
	Scroll float32

	// ToggleProjection is the number of projection toggle presses.
	ToggleProjection int

	// Close is whether the user asked to close the window.
	Close bool

	// Resize is the new framebuffer size, or zero if unchanged.
	Resize image.Point

	// Moved is whether the pointer moved at all.
	Moved bool
}

// Merge accumulates the later event o into ev. Deltas and presses
// add up, held keys and resize take the later value, and close is sticky.
func (ev *Event) Merge(o Event) {
	ev.Held = o.Held
	ev.LookX += o.LookX
	ev.LookY += o.LookY
	ev.Scroll += o.Scroll
	ev.ToggleProjection += o.ToggleProjection
	ev.Close = ev.Close || o.Close
	if o.Resize != (image.Point{}) {
		ev.Resize = o.Resize
	}
	ev.Moved = ev.Moved || o.Moved
}

// IsZero returns whether the event carries no input at all.
func (ev *Event) IsZero() bool {
	return *ev == Event{}
}
