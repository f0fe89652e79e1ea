// Package config holds the settings that shape a BOM run: the coordinates of
// the generated BOM, which packaging types are left out, and the entity table
// applied to POM text before parsing.
//
// Settings come from [Default] and may be overlaid from a TOML file:
//
//	group_id = "com.activestate.platform.project"
//	version = "1.0.0"
//	description = "platform project bom"
//	skip_packaging = ["pom", "plugin"]
//
//	[[entities]]
//	name = "&oslash;"
//	value = "ø"
//
// Entities listed in a file are appended to the built-in table; a file entry
// with the same name replaces the built-in one.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/activestate/bomgen/pkg/errors"
)

const (
	// DefaultGroupID is the groupId of the generated BOM.
	DefaultGroupID = "com.activestate.platform.project"

	// DefaultVersion is the version of the generated BOM.
	DefaultVersion = "1.0.0"

	// DefaultDescription is the description element of the generated BOM.
	DefaultDescription = "platform project bom"
)

// Entity is one literal text replacement applied before XML parsing.
type Entity struct {
	Name  string `toml:"name"`
	Value string `toml:"value"`
}

// Config is the complete run configuration.
type Config struct {
	GroupID       string   `toml:"group_id"`
	Version       string   `toml:"version"`
	Description   string   `toml:"description"`
	SkipPackaging []string `toml:"skip_packaging"`
	Entities      []Entity `toml:"entities"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		GroupID:       DefaultGroupID,
		Version:       DefaultVersion,
		Description:   DefaultDescription,
		SkipPackaging: []string{"pom", "plugin"},
		Entities: []Entity{
			{Name: "&oslash;", Value: "ø"},
		},
	}
}

// Load reads a TOML file and overlays it onto [Default].
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeConfig, err, "read config %s", path)
	}

	var file Config
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeConfig, "unknown config key %q in %s", undecoded[0].String(), path)
	}

	if file.GroupID != "" {
		cfg.GroupID = file.GroupID
	}
	if file.Version != "" {
		cfg.Version = file.Version
	}
	if file.Description != "" {
		cfg.Description = file.Description
	}
	if md.IsDefined("skip_packaging") {
		cfg.SkipPackaging = file.SkipPackaging
	}
	cfg.Entities = mergeEntities(cfg.Entities, file.Entities)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if err := errors.ValidateCoordinatePart("group_id", c.GroupID); err != nil {
		return err
	}
	if err := errors.ValidateCoordinatePart("version", c.Version); err != nil {
		return err
	}
	for _, e := range c.Entities {
		if e.Name == "" {
			return errors.New(errors.ErrCodeConfig, "entity name cannot be empty")
		}
	}
	return nil
}

// mergeEntities appends extra to base, replacing base entries of the same name
// in place so table order stays stable.
func mergeEntities(base, extra []Entity) []Entity {
	out := make([]Entity, len(base), len(base)+len(extra))
	copy(out, base)

	index := make(map[string]int, len(out))
	for i, e := range out {
		index[e.Name] = i
	}
	for _, e := range extra {
		if i, ok := index[e.Name]; ok {
			out[i] = e
			continue
		}
		index[e.Name] = len(out)
		out = append(out, e)
	}
	return out
}
