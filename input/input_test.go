// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoves(t *testing.T) {
	var m Moves
	assert.Equal(t, "None", m.String())
	m.Set(Forward, true)
	m.Set(Left|Up, true)
	assert.True(t, m.Has(Forward))
	assert.True(t, m.Has(Left|Up))
	assert.False(t, m.Has(Backward))
	assert.Equal(t, "Forward|Left|Up", m.String())
	m.Set(Left, false)
	assert.False(t, m.Has(Left))
	assert.Equal(t, Forward|Up, m)
}

func TestMerge(t *testing.T) {
	ev := Event{Held: Forward, LookX: 1, Scroll: 1, ToggleProjection: 1, Resize: image.Pt(10, 10)}
	ev.Merge(Event{Held: Backward, LookX: 2, LookY: -1, Scroll: -0.5, ToggleProjection: 1, Close: true, Moved: true})
	assert.Equal(t, Backward, ev.Held)
	assert.Equal(t, float32(3), ev.LookX)
	assert.Equal(t, float32(-1), ev.LookY)
	assert.Equal(t, float32(0.5), ev.Scroll)
	assert.Equal(t, 2, ev.ToggleProjection)
	assert.True(t, ev.Close)
	assert.True(t, ev.Moved)
	assert.Equal(t, image.Pt(10, 10), ev.Resize)

	ev.Merge(Event{Resize: image.Pt(20, 5)})
	assert.Equal(t, image.Pt(20, 5), ev.Resize)
	assert.True(t, ev.Close)
	assert.False(t, ev.IsZero())
	assert.True(t, (&Event{}).IsZero())
}

func TestMergeKeepsPending(t *testing.T) {
	// callbacks merge one small event each into the pending one
	var ev Event
	ev.Merge(Event{LookX: 3, LookY: -2, Moved: true})
	ev.Merge(Event{Scroll: 1})
	ev.Merge(Event{ToggleProjection: 1})
	ev.Merge(Event{Resize: image.Pt(640, 480)})
	ev.Merge(Event{ToggleProjection: 1})
	ev.Merge(Event{Scroll: -3})
	assert.Equal(t, Event{LookX: 3, LookY: -2, Moved: true, Scroll: -2, ToggleProjection: 2, Resize: image.Pt(640, 480)}, ev)
}

func TestMouseTracker(t *testing.T) {
	var mt MouseTracker
	dx, dy := mt.Delta(700, 100)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	dx, dy = mt.Delta(710, 90)
	assert.Equal(t, float32(10), dx)
	assert.Equal(t, float32(10), dy, "moving up the screen is positive")

	dx, dy = mt.Delta(705, 95)
	assert.Equal(t, float32(-5), dx)
	assert.Equal(t, float32(-5), dy)
}
