// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texture

import (
	"image"
	"log/slog"
	"path/filepath"
	"sync"

	"cogentcore.org/stilllife/base/errors"
	"cogentcore.org/stilllife/scene"
	"github.com/fsnotify/fsnotify"
)

// Update is a texture image that was decoded again after its file changed.
type Update struct {

	// Unit is the texture unit of the image.
	Unit int

	// Image is the decoded image.
	Image *image.RGBA
}

// Watcher decodes the texture files again whenever they change
// and sends the results on [Watcher.Updates]. Decoding happens on
// the watcher goroutine; uploading is left to the receiver.
type Watcher struct {

	// Updates receives the reloaded images. It is closed after [Watcher.Close].
	Updates <-chan Update

	updates chan Update
	fw      *fsnotify.Watcher
	flip    bool

	// units maps a base file name to its texture unit
	units map[string]int

	done      chan struct{}
	closeOnce sync.Once
}

// Watch starts watching dir for changes to the files of specs.
func Watch(dir string, specs []scene.TextureSpec, flip bool) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		updates: make(chan Update, len(specs)),
		fw:      fw,
		flip:    flip,
		units:   make(map[string]int, len(specs)),
		done:    make(chan struct{}),
	}
	w.Updates = w.updates
	for _, ts := range specs {
		w.units[ts.File] = ts.Unit
	}
	go w.run()
	slog.Info("watching textures", "dir", dir)
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.updates)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !w.reload(ev.Name) {
				return
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			errors.Log(err)
		}
	}
}

// reload decodes the named file if it is a texture and sends it.
// It returns false once the watcher is closed.
func (w *Watcher) reload(file string) bool {
	unit, ok := w.units[filepath.Base(file)]
	if !ok {
		return true
	}
	img, err := Open(file, w.flip)
	if err != nil {
		// usually a partial write; the next event retries
		slog.Debug("texture reload failed", "file", file, "err", err)
		return true
	}
	slog.Info("texture reloaded", "file", file, "unit", unit)
	select {
	case w.updates <- Update{Unit: unit, Image: img}:
		return true
	case <-w.done:
		return false
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fw.Close()
	})
	return err
}
