// Package config holds the tolerance triple (plus the
// coincidence-probe distance) as a value that can be loaded from an
// optional TOML file, the way the larger services in this corpus make
// their own tunables configurable rather than compiled-in constants.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	polybool "github.com/1943055307/Polygon-Boolean-Operations"
)

// Tolerances mirrors polybool.Tolerances with TOML field tags, kept as
// a distinct type so the core package never has to import an encoding
// library.
type Tolerances struct {
	EpsClose float64 `toml:"eps_close"`
	EpsGeom  float64 `toml:"eps_geom"`
	EpsParam float64 `toml:"eps_param"`
	EpsProbe float64 `toml:"eps_probe"`
}

// Default returns the core engine's documented default tolerances.
func Default() Tolerances {
	d := polybool.DefaultTolerances()
	return Tolerances{
		EpsClose: d.EpsClose,
		EpsGeom:  d.EpsGeom,
		EpsParam: d.EpsParam,
		EpsProbe: d.EpsProbe,
	}
}

// ToCore converts to the core package's own tolerance type.
func (t Tolerances) ToCore() polybool.Tolerances {
	return polybool.Tolerances{
		EpsClose: t.EpsClose,
		EpsGeom:  t.EpsGeom,
		EpsParam: t.EpsParam,
		EpsProbe: t.EpsProbe,
	}
}

// Load reads an optional TOML file at path and overlays it on
// Default(). A missing file is not an error — Default() is returned
// unchanged; a malformed file is.
func Load(path string) (Tolerances, error) {
	tol := Default()
	if path == "" {
		return tol, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return tol, nil
	}
	if _, err := toml.DecodeFile(path, &tol); err != nil {
		return Tolerances{}, err
	}
	return tol, nil
}
