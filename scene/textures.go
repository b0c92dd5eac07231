// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Texture units of the scene images.
const (
	TabletopTexture = iota
	BatteryTexture
	TerminalTexture
	ChargerTexture
	ProngTexture
	CDTexture
	SpeakerTexture

	// NTextures is the number of texture units used.
	NTextures
)

// Wraps are the texture coordinate wrap modes.
type Wraps int32

const (
	// Repeat tiles the image.
	Repeat Wraps = iota

	// ClampToEdge repeats the edge texels.
	ClampToEdge
)

// Filters are the texture sampling filters.
type Filters int32

const (
	// Linear blends neighboring texels.
	Linear Filters = iota

	// Nearest takes the closest texel.
	Nearest
)

// TextureSpec describes one texture image and how it is sampled.
type TextureSpec struct {

	// File is the image file name, relative to the texture directory.
	File string

	// Unit is the texture unit it is bound to.
	Unit int

	// Wrap is the wrap mode in both directions.
	Wrap Wraps

	// Filter is the minification and magnification filter.
	Filter Filters
}

// Textures returns the texture images of the scene, indexed by unit.
func Textures() []TextureSpec {
	return []TextureSpec{
		{File: "tabletop.jpg", Unit: TabletopTexture, Wrap: Repeat, Filter: Linear},
		{File: "battery.png", Unit: BatteryTexture, Wrap: ClampToEdge, Filter: Nearest},
		{File: "terminal.png", Unit: TerminalTexture, Wrap: ClampToEdge, Filter: Nearest},
		{File: "chargertop.png", Unit: ChargerTexture, Wrap: ClampToEdge, Filter: Nearest},
		{File: "prongs.png", Unit: ProngTexture, Wrap: ClampToEdge, Filter: Nearest},
		{File: "cd.png", Unit: CDTexture, Wrap: ClampToEdge, Filter: Linear},
		{File: "speaker.png", Unit: SpeakerTexture, Wrap: ClampToEdge, Filter: Linear},
	}
}
