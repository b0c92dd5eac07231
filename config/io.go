// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported config file encodings.
type Formats int32

const (
	TOML Formats = iota
	YAML
	JSON
)

// FormatFromFile returns the config [Formats] for the given
// file name based on its extension.
func FormatFromFile(file string) (Formats, error) {
	ext := strings.ToLower(filepath.Ext(file))
	switch ext {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return TOML, fmt.Errorf("config: file extension %q not recognized", ext)
}

// Open reads the given config file into cfg, which should
// already hold defaults: fields missing from the file keep
// their current values. The encoding is inferred from the
// file extension, and a leading ~ is expanded to the home directory.
func Open(cfg *Config, file string) error {
	path, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	f, err := FormatFromFile(path)
	if err != nil {
		return err
	}
	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fh.Close()
	if err := Read(cfg, fh, f); err != nil {
		return fmt.Errorf("config: reading %q: %w", path, err)
	}
	return nil
}

// Read decodes a config of the given format from r into cfg.
func Read(cfg *Config, r io.Reader, f Formats) error {
	switch f {
	case YAML:
		err := yaml.NewDecoder(r).Decode(cfg)
		if err == io.EOF {
			return nil
		}
		return err
	case JSON:
		return json.NewDecoder(r).Decode(cfg)
	default:
		return toml.NewDecoder(r).Decode(cfg)
	}
}

// Save writes cfg to the given file, with the encoding
// inferred from the file extension.
func Save(cfg *Config, file string) error {
	path, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	f, err := FormatFromFile(path)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()
	return Write(cfg, fh, f)
}

// Write encodes cfg in the given format to w.
func Write(cfg *Config, w io.Writer, f Formats) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(cfg)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		return enc.Encode(cfg)
	default:
		return toml.NewEncoder(w).Encode(cfg)
	}
}

// TextureDir returns the texture directory with any
// leading ~ expanded to the home directory.
func (cfg *Config) TextureDir() (string, error) {
	return homedir.Expand(cfg.Textures.Dir)
}
