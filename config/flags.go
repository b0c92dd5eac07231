// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"github.com/spf13/pflag"
)

// Parse returns the configuration for the given command line
// arguments (not including the program name). It starts from
// [Defaults], applies the file named by --config if any, and
// then applies any flags given explicitly, so that flags take
// precedence over the file. It returns [pflag.ErrHelp] if help
// was requested.
func Parse(name string, args []string) (*Config, error) {
	pre := pflag.NewFlagSet(name, pflag.ContinueOnError)
	pre.ParseErrorsWhitelist.UnknownFlags = true
	pre.Usage = func() {}
	file := pre.StringP("config", "c", "", "")
	pre.BoolP("help", "h", false, "")
	if err := pre.Parse(args); err != nil {
		return nil, err
	}

	cfg := Defaults()
	if *file != "" {
		if err := Open(cfg, *file); err != nil {
			return nil, err
		}
	}

	fs := FlagSet(name, cfg)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FlagSet returns a new flag set whose flags are bound to the fields
// of cfg, with the current values of cfg as the flag defaults.
func FlagSet(name string, cfg *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.StringP("config", "c", "", "the TOML, YAML or JSON config file to load before applying flags")
	fs.StringVar(&cfg.SaveConfig, "save-config", cfg.SaveConfig, "write the effective configuration to this TOML, YAML or JSON file and exit")

	fs.IntVar(&cfg.Window.Width, "width", cfg.Window.Width, "the initial window width")
	fs.IntVar(&cfg.Window.Height, "height", cfg.Window.Height, "the initial window height")
	fs.StringVar(&cfg.Window.Title, "title", cfg.Window.Title, "the window title")
	fs.IntVar(&cfg.Window.SwapInterval, "swap-interval", cfg.Window.SwapInterval, "the buffer swap interval; 0 disables vsync")

	fs.Float32Var(&cfg.Camera.Speed, "speed", cfg.Camera.Speed, "the initial camera movement speed")
	fs.Float32Var(&cfg.Camera.Sensitivity, "sensitivity", cfg.Camera.Sensitivity, "the degrees of rotation per unit of pointer motion")
	fs.Float32Var(&cfg.Camera.FOV, "fov", cfg.Camera.FOV, "the vertical field of view in degrees")
	fs.BoolVar(&cfg.Camera.Ortho, "ortho", cfg.Camera.Ortho, "start in orthographic projection")

	fs.StringVarP(&cfg.Textures.Dir, "textures", "t", cfg.Textures.Dir, "the directory holding the scene images")
	fs.BoolVar(&cfg.Textures.Flip, "flip", cfg.Textures.Flip, "flip images vertically on load")
	fs.BoolVar(&cfg.Textures.Watch, "watch", cfg.Textures.Watch, "reload textures when their files change")

	fs.BoolVar(&cfg.Log.VeryVerbose, "vv", cfg.Log.VeryVerbose, "print debug messages")
	fs.BoolVarP(&cfg.Log.Verbose, "verbose", "v", cfg.Log.Verbose, "print informational messages")
	fs.BoolVarP(&cfg.Log.Quiet, "quiet", "q", cfg.Log.Quiet, "only print errors")
	return fs
}
