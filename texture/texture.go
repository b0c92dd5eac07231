// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texture loads the scene images from files into RGBA pixels
// ready for uploading to the GPU.
package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/stilllife/base/errors"
	"cogentcore.org/stilllife/scene"
	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Formats are the supported image file formats.
type Formats int32

const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP
)

var formatNames = [...]string{"None", "PNG", "JPEG", "GIF", "TIFF", "BMP", "WebP"}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Formats(%d)", int32(f))
	}
	return formatNames[f]
}

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, errors.New("ExtToFormat: ext is empty")
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "webp":
		return WebP, nil
	}
	return None, fmt.Errorf("ExtToFormat: extension %q not recognized", ext)
}

// Sniff returns the format of the given image file contents,
// based on the file header rather than the file name.
func Sniff(data []byte) (Formats, error) {
	if !filetype.IsImage(data) {
		return None, errors.New("texture: data is not a recognized image")
	}
	kind, err := filetype.Match(data)
	if err != nil {
		return None, err
	}
	return ExtToFormat(kind.Extension)
}

// Open reads the image file with the given name and returns it as
// RGBA pixels, flipped vertically if flip is true.
func Open(filename string, flip bool) (*image.RGBA, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	img, _, err := Decode(data, flip)
	if err != nil {
		return nil, fmt.Errorf("texture: %s: %w", filename, err)
	}
	return img, nil
}

// Decode decodes the given image file contents into RGBA pixels,
// flipped vertically if flip is true, and also returns the format.
func Decode(data []byte, flip bool) (*image.RGBA, Formats, error) {
	f, err := Sniff(data)
	if err != nil {
		return nil, None, err
	}
	im, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, f, err
	}
	rgba := clone.AsRGBA(im)
	if flip {
		rgba = transform.FlipV(rgba)
	}
	return rgba, f, nil
}

// LoadAll loads the images of the given textures from dir, indexed
// like specs. An image that cannot be loaded is logged and left nil,
// so that rendering can proceed without it.
func LoadAll(dir string, specs []scene.TextureSpec, flip bool) []*image.RGBA {
	imgs := make([]*image.RGBA, len(specs))
	for i, ts := range specs {
		img := errors.Log1(Open(filepath.Join(dir, ts.File), flip))
		if img == nil {
			continue
		}
		slog.Info("loaded texture", "file", ts.File, "unit", ts.Unit, "size", img.Rect.Size())
		imgs[i] = img
	}
	return imgs
}
