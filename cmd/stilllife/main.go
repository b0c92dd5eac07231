// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command stilllife shows a textured still life of batteries,
// a charger, a CD and a speaker on a tabletop, lit by a sunset,
// that can be explored with a fly-through camera.
//
// Keys: W/S/A/D move, Q/E move down and up, the mouse looks around,
// the scroll wheel sets the speed, P toggles orthographic projection
// and Escape quits.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"cogentcore.org/stilllife/base/errors"
	"cogentcore.org/stilllife/base/logx"
	"cogentcore.org/stilllife/camera"
	"cogentcore.org/stilllife/config"
	"cogentcore.org/stilllife/gpu"
	"cogentcore.org/stilllife/render"
	"cogentcore.org/stilllife/scene"
	"cogentcore.org/stilllife/texture"
	"cogentcore.org/stilllife/window"
	"github.com/spf13/pflag"
)

func init() {
	// GLFW and OpenGL calls must happen on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Parse("stilllife", os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logx.UserLevel = logx.LevelFromFlags(cfg.Log.VeryVerbose, cfg.Log.Verbose, cfg.Log.Quiet)
	logx.SetDefaultLogger()

	if cfg.SaveConfig != "" {
		if err := config.Save(cfg, cfg.SaveConfig); err != nil {
			slog.Error("stilllife", "err", err)
			os.Exit(1)
		}
		slog.Info("saved config", "file", cfg.SaveConfig)
		return
	}

	if err := run(cfg); err != nil {
		slog.Error("stilllife", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	win, err := window.New(&cfg.Window)
	if err != nil {
		return err
	}
	defer win.Terminate()

	dir, err := cfg.TextureDir()
	if err != nil {
		return err
	}
	specs := scene.Textures()
	dev, err := gpu.NewDevice(specs, texture.LoadAll(dir, specs, cfg.Textures.Flip))
	if err != nil {
		return err
	}

	rn := render.New(win, dev, camera.New(&cfg.Camera), scene.StillLife(), scene.DefaultLights())
	if cfg.Textures.Watch {
		tw, err := texture.Watch(dir, specs, cfg.Textures.Flip)
		if err != nil {
			return err
		}
		defer tw.Close()
		rn.Reloads = tw.Updates
	}
	return rn.Run()
}
