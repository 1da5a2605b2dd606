// Package config loads tool defaults from an INI file. The [design]
// section can pre-seed any of the seven design parameters plus the wire
// material, saving retyping a baseline design on every run; the [chart]
// section adjusts figure geometry. Command-line flags always win over the
// file.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// DesignDefaults holds pre-seeded design parameters. Nil means the file
// did not provide one and the flag stays required.
type DesignDefaults struct {
	Voltage        *float64
	Length         *float64
	Radius         *float64
	Gauge          *float64
	Turns          *float64
	Permeability   *float64
	PackingDensity *float64

	Material    string // empty = unset
	Temperature *float64
}

// Chart holds figure geometry defaults.
type Chart struct {
	Width  float64 // inches
	Height float64 // inches
	DPI    int
}

// Config is the merged view of one config file over the builtin defaults.
type Config struct {
	Design DesignDefaults
	Chart  Chart
}

// DefaultPath returns the user-level config location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gosolenoid.ini")
}

func builtin() *Config {
	return &Config{Chart: Chart{Width: 10, Height: 10, DPI: 100}}
}

// Load reads the file at path. An empty path means DefaultPath, where a
// missing file is fine and yields the builtin defaults; an explicit path
// that cannot be read is an error.
func Load(path string) (*Config, error) {
	cfg := builtin()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, err
	}

	design := file.Section("design")
	opt := func(key string) *float64 {
		if !design.HasKey(key) {
			return nil
		}
		v := design.Key(key).MustFloat64(0)
		return &v
	}
	cfg.Design.Voltage = opt("voltage")
	cfg.Design.Length = opt("length")
	cfg.Design.Radius = opt("radius")
	cfg.Design.Gauge = opt("awg")
	cfg.Design.Turns = opt("turns")
	cfg.Design.Permeability = opt("permeability")
	cfg.Design.PackingDensity = opt("density")
	cfg.Design.Temperature = opt("temperature")
	cfg.Design.Material = design.Key("material").MustString("")

	chart := file.Section("chart")
	cfg.Chart.Width = chart.Key("width").MustFloat64(10)
	cfg.Chart.Height = chart.Key("height").MustFloat64(10)
	cfg.Chart.DPI = chart.Key("dpi").MustInt(100)

	return cfg, nil
}
