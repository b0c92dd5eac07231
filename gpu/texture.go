// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"cogentcore.org/stilllife/scene"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture is a 2D texture bound to a fixed texture unit.
type Texture struct {

	// Spec is the file, unit and sampling of the texture.
	Spec scene.TextureSpec

	// ID is the OpenGL texture object.
	ID uint32

	// Empty is whether there was no image, so the texture is a single black texel.
	Empty bool
}

// NewTexture creates the texture for ts on its texture unit and
// uploads img with mipmaps. If img is nil the texture holds a single
// black texel so that sampling it is well defined.
func NewTexture(ts scene.TextureSpec, img *image.RGBA) *Texture {
	tx := &Texture{Spec: ts}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(ts.Unit))
	gl.GenTextures(1, &tx.ID)
	gl.BindTexture(gl.TEXTURE_2D, tx.ID)

	wrap := int32(gl.REPEAT)
	if ts.Wrap == scene.ClampToEdge {
		wrap = gl.CLAMP_TO_EDGE
	}
	filter := int32(gl.LINEAR)
	if ts.Filter == scene.Nearest {
		filter = gl.NEAREST
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	tx.upload(img)
	return tx
}

// Upload replaces the texture image, leaving the sampling unchanged.
func (tx *Texture) Upload(img *image.RGBA) {
	if tx.ID == 0 {
		return
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(tx.Spec.Unit))
	gl.BindTexture(gl.TEXTURE_2D, tx.ID)
	tx.upload(img)
}

// upload sends img to the bound texture.
func (tx *Texture) upload(img *image.RGBA) {
	tx.Empty = img == nil
	if img == nil {
		black := []uint8{0, 0, 0, 255}
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(black))
		return
	}
	sz := img.Rect.Size()
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(sz.X), int32(sz.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.GenerateMipmap(gl.TEXTURE_2D)
}

// Release deletes the texture.
func (tx *Texture) Release() {
	if tx.ID == 0 {
		return
	}
	gl.DeleteTextures(1, &tx.ID)
	tx.ID = 0
}
