// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the still life viewer.
package config

// Config is the main config struct that contains all
// of the configuration options for the viewer.
type Config struct {

	// the window and GL context settings
	Window Window `toml:"window" yaml:"window" json:"window"`

	// the initial camera and its movement and projection parameters
	Camera Camera `toml:"camera" yaml:"camera" json:"camera"`

	// where the texture image files are found
	Textures Textures `toml:"textures" yaml:"textures" json:"textures"`

	// the logging verbosity
	Log Log `toml:"log" yaml:"log" json:"log"`

	// if set, the file to write the effective configuration to
	// instead of running the viewer
	SaveConfig string `toml:"-" yaml:"-" json:"-"`
}

type Window struct {

	// the initial width of the window in screen coordinates
	Width int `toml:"width" yaml:"width" json:"width"`

	// the initial height of the window in screen coordinates
	Height int `toml:"height" yaml:"height" json:"height"`

	// the window title
	Title string `toml:"title" yaml:"title" json:"title"`

	// the buffer swap interval; 0 disables vsync
	SwapInterval int `toml:"swap_interval" yaml:"swap_interval" json:"swap_interval"`
}

type Camera struct {

	// the initial position of the camera in world coordinates
	Position [3]float32 `toml:"position" yaml:"position" json:"position"`

	// the initial yaw in degrees; -90 faces down the negative z axis
	Yaw float32 `toml:"yaw" yaml:"yaw" json:"yaw"`

	// the initial pitch in degrees
	Pitch float32 `toml:"pitch" yaml:"pitch" json:"pitch"`

	// the initial movement distance per frame
	Speed float32 `toml:"speed" yaml:"speed" json:"speed"`

	// the lower bound on the movement speed
	MinSpeed float32 `toml:"min_speed" yaml:"min_speed" json:"min_speed"`

	// the speed change per unit of scroll
	ScrollStep float32 `toml:"scroll_step" yaml:"scroll_step" json:"scroll_step"`

	// the degrees of rotation per unit of pointer motion
	Sensitivity float32 `toml:"sensitivity" yaml:"sensitivity" json:"sensitivity"`

	// the vertical field of view of the perspective projection in degrees
	FOV float32 `toml:"fov" yaml:"fov" json:"fov"`

	// the near clipping plane distance
	Near float32 `toml:"near" yaml:"near" json:"near"`

	// the far clipping plane distance
	Far float32 `toml:"far" yaml:"far" json:"far"`

	// the half extent of the orthographic view volume
	OrthoSize float32 `toml:"ortho_size" yaml:"ortho_size" json:"ortho_size"`

	// whether to start in orthographic projection
	Ortho bool `toml:"ortho" yaml:"ortho" json:"ortho"`
}

type Textures struct {

	// the directory holding the scene images; ~ is expanded
	Dir string `toml:"dir" yaml:"dir" json:"dir"`

	// whether to flip images vertically on load
	Flip bool `toml:"flip" yaml:"flip" json:"flip"`

	// whether to reload textures when their files change
	Watch bool `toml:"watch" yaml:"watch" json:"watch"`
}

type Log struct {

	// print debug messages, such as camera speed changes
	VeryVerbose bool `toml:"very_verbose" yaml:"very_verbose" json:"very_verbose"`

	// print informational messages
	Verbose bool `toml:"verbose" yaml:"verbose" json:"verbose"`

	// only print errors
	Quiet bool `toml:"quiet" yaml:"quiet" json:"quiet"`
}

// Defaults returns the default configuration, which reproduces
// the fixed scene view: an 800x600 window with the camera
// two units up and nine units back, looking down the -z axis.
func Defaults() *Config {
	return &Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "Still Life",
		},
		Camera: Camera{
			Position:    [3]float32{0, 2, 9},
			Yaw:         -90,
			Pitch:       0,
			Speed:       0.01,
			MinSpeed:    0.01,
			ScrollStep:  0.01,
			Sensitivity: 0.1,
			FOV:         45,
			Near:        0.1,
			Far:         100,
			OrthoSize:   5,
		},
		Textures: Textures{
			Dir: "resources",
		},
	}
}
