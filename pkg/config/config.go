// Package config loads boxy settings from YAML. Every field has a default,
// so a partial file only overrides what it names.
package config

import (
	"bytes"
	"io"
	"os"
	"sort"
	"time"

	"github.com/chazu/boxy/pkg/arch"
	"github.com/chazu/boxy/pkg/box"
	"github.com/chazu/boxy/pkg/geom"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultMeshCells is the marching cubes resolution used when the file
// does not set one.
const DefaultMeshCells = 200

// DefaultEvalTimeout bounds a single script evaluation.
const DefaultEvalTimeout = 5 * time.Second

// Config is the on-disk settings document.
type Config struct {
	// AdvancedPivots widens the pivot vocabulary from the 7 basic anchors
	// to all 27.
	AdvancedPivots bool   `yaml:"advanced_pivots"`
	DefaultPivot   string `yaml:"default_pivot"`
	MeshCells      int    `yaml:"mesh_cells"`

	// EvalTimeout is written as a Go duration, such as "2s".
	EvalTimeout time.Duration `yaml:"eval_timeout"`

	Door      DoorConfig        `yaml:"door"`
	Window    arch.WindowParams `yaml:"window"`
	Staircase StaircaseConfig   `yaml:"staircase"`

	// Presets are named sizes usable from scripts.
	Presets map[string]geom.Point3 `yaml:"presets"`
}

// DoorConfig mirrors arch.DoorParams with sides spelled out.
type DoorConfig struct {
	Frame   float64 `yaml:"frame"`
	Skirt   float64 `yaml:"skirt"`
	Depth   float64 `yaml:"depth"`
	Hinge   string  `yaml:"hinge"`
	Opening string  `yaml:"opening"`
}

// StaircaseConfig mirrors arch.StaircaseParams with the axis spelled out.
type StaircaseConfig struct {
	TargetRise float64 `yaml:"target_rise"`
	Axis       string  `yaml:"axis"`
}

// Default returns the built-in settings.
func Default() *Config {
	door := arch.DefaultDoorParams()
	stairs := arch.DefaultStaircaseParams()
	return &Config{
		DefaultPivot: box.AnchorC.String(),
		MeshCells:    DefaultMeshCells,
		EvalTimeout:  DefaultEvalTimeout,
		Door: DoorConfig{
			Frame:   door.Frame,
			Skirt:   door.Skirt,
			Depth:   door.Depth,
			Hinge:   door.Hinge.String(),
			Opening: door.Opening.String(),
		},
		Window: arch.DefaultWindowParams(),
		Staircase: StaircaseConfig{
			TargetRise: stairs.TargetRise,
			Axis:       stairs.Axis.String(),
		},
		Presets: map[string]geom.Point3{
			"door":   geom.P3(90, 210, 20),
			"window": geom.P3(120, 100, 20),
			"wall":   geom.P3(400, 250, 20),
		},
	}
}

// Load reads path on top of the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults. Unknown keys are
// rejected. An empty document yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed to unmarshal yaml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the settings to path as YAML.
func (c *Config) Save(path string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "failed to marshal yaml")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "failed to close yaml encoder")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write config %s", path)
	}
	return nil
}

// probeSize is large enough that only the size-independent creator
// checks can fail against it.
var probeSize = geom.Uniform(1e6)

// Validate checks that every named value resolves and every creator
// default is usable.
func (c *Config) Validate() error {
	if c.MeshCells <= 0 {
		return &geom.InvalidRangeError{Field: "mesh_cells", Value: float64(c.MeshCells), Reason: "must be positive"}
	}
	if c.EvalTimeout <= 0 {
		return &geom.InvalidRangeError{Field: "eval_timeout", Value: c.EvalTimeout.Seconds(), Reason: "must be positive"}
	}
	if _, err := c.Pivot(); err != nil {
		return errors.Wrap(err, "default_pivot")
	}
	door, err := c.DoorParams()
	if err != nil {
		return errors.Wrap(err, "door")
	}
	if err := door.Validate(probeSize); err != nil {
		return errors.Wrap(err, "door")
	}
	if err := c.Window.Validate(probeSize); err != nil {
		return errors.Wrap(err, "window")
	}
	stairs, err := c.StaircaseParams()
	if err != nil {
		return errors.Wrap(err, "staircase")
	}
	if _, err := stairs.Layout(probeSize); err != nil {
		return errors.Wrap(err, "staircase")
	}
	for name, size := range c.Presets {
		if _, err := box.NewBoxData(size, geom.Origin, geom.Origin, box.AnchorC); err != nil {
			return errors.Wrapf(err, "preset %q", name)
		}
	}
	return nil
}

// Pivot resolves DefaultPivot, honouring the advanced-pivot setting.
func (c *Config) Pivot() (box.Anchor, error) {
	a, err := box.ParseAnchor(c.DefaultPivot)
	if err != nil {
		return box.AnchorC, err
	}
	if !c.AdvancedPivots && !a.IsBasic() {
		return box.AnchorC, &geom.InvalidAnchorError{Value: c.DefaultPivot, Reason: "requires advanced_pivots"}
	}
	return a, nil
}

// DoorParams converts the door section to creator parameters.
func (c *Config) DoorParams() (arch.DoorParams, error) {
	hinge, err := box.ParseSide(c.Door.Hinge)
	if err != nil {
		return arch.DoorParams{}, err
	}
	opening, err := box.ParseSide(c.Door.Opening)
	if err != nil {
		return arch.DoorParams{}, err
	}
	return arch.DoorParams{
		Frame:   c.Door.Frame,
		Skirt:   c.Door.Skirt,
		Depth:   c.Door.Depth,
		Hinge:   hinge,
		Opening: opening,
	}, nil
}

// StaircaseParams converts the staircase section to creator parameters.
func (c *Config) StaircaseParams() (arch.StaircaseParams, error) {
	axis, err := geom.ParseAxis(c.Staircase.Axis)
	if err != nil {
		return arch.StaircaseParams{}, err
	}
	return arch.StaircaseParams{TargetRise: c.Staircase.TargetRise, Axis: axis}, nil
}

// Preset returns the named size.
func (c *Config) Preset(name string) (geom.Point3, bool) {
	p, ok := c.Presets[name]
	return p, ok
}

// PresetNames returns the preset names in sorted order.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for n := range c.Presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
