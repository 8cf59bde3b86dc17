/*
package config reads and validates the simulation window and plasma
parameters from gcfg-style configuration files.
*/
package config

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

const ExampleConfigFile = `[Window]

#######################
# Required Parameters #
#######################

# Number of grid nodes across the transverse window. Must be odd so
# that a node sits exactly at the window centre.
WidthSteps = 201

# Transverse grid step, in plasma units (c / omega_p).
WidthStepSize = 0.02

#######################
# Optional Parameters #
#######################

# Nodes between the plasma edge and the reflecting window boundary.
# Must be bigger than 2 and bigger than Coarseness + 1; the default
# is 5.
# ReflectPaddingSteps = 5

# Nodes on each side of the window kept free of plasma particles.
# PlasmaPaddingSteps = 10

[Plasma]

# One coarse macro-particle per Coarseness^2 grid cells.
Coarseness = 2

# Fineness^2 virtual particles per grid cell.
Fineness = 2

[Solver]

# Adds a unit shift to the mixed-boundary operator denominators,
# turning the Laplace solve into a better-conditioned Helmholtz one.
SubtractionTrick = true

[Run]

# Where the mutable plasma state is saved to and resumed from.
StateFile = plasmastate.wst

# Optional log redirection.
# LogFile = log.out`

type WindowConfig struct {
	WidthSteps          int
	WidthStepSize       float64
	ReflectPaddingSteps int
	PlasmaPaddingSteps  int
}

type PlasmaConfig struct {
	Coarseness int
	Fineness   int
}

type SolverConfig struct {
	SubtractionTrick bool
}

type RunConfig struct {
	StateFile string
	LogFile   string
}

type Config struct {
	Window WindowConfig
	Plasma PlasmaConfig
	Solver SolverConfig
	Run    RunConfig
}

// ConfigError reports a configuration value that is invalid or
// physically inconsistent with the rest. It is always fatal: no default
// is substituted and nothing is initialized.
type ConfigError struct {
	Field, Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Reason)
}

// Default returns the configuration used when a file leaves optional
// parameters unset.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			ReflectPaddingSteps: 5,
			PlasmaPaddingSteps:  10,
		},
		Plasma: PlasmaConfig{Coarseness: 2, Fineness: 2},
		Run:    RunConfig{StateFile: "plasmastate.wst"},
	}
}

// Read parses the named configuration file on top of the defaults. The
// result is not yet validated; call CheckInit before using it.
func Read(fname string) (*Config, error) {
	cfg := Default()
	if err := gcfg.ReadFileInto(cfg, fname); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CheckInit validates the geometry and padding parameters. It returns a
// *ConfigError describing the first inconsistency found, or nil.
func (cfg *Config) CheckInit() error {
	win, pl := &cfg.Window, &cfg.Plasma

	if win.WidthSteps < 3 {
		return &ConfigError{"Window.WidthSteps",
			fmt.Sprintf("must be at least 3, but is %d", win.WidthSteps)}
	}
	// Diagnostics need a cell at the exact window centre.
	if win.WidthSteps%2 == 0 {
		return &ConfigError{"Window.WidthSteps",
			fmt.Sprintf("must be odd so a cell sits at the window centre, but is %d",
				win.WidthSteps)}
	}
	if win.WidthStepSize <= 0 {
		return &ConfigError{"Window.WidthStepSize",
			fmt.Sprintf("must be positive, but is %g", win.WidthStepSize)}
	}
	if pl.Coarseness < 1 {
		return &ConfigError{"Plasma.Coarseness",
			fmt.Sprintf("must be a positive integer, but is %d", pl.Coarseness)}
	}
	if pl.Fineness < 1 {
		return &ConfigError{"Plasma.Fineness",
			fmt.Sprintf("must be a positive integer, but is %d", pl.Fineness)}
	}
	// Virtual particles must not reach the window pre-boundary cells.
	if win.ReflectPaddingSteps <= pl.Coarseness+1 {
		return &ConfigError{"Window.ReflectPaddingSteps",
			fmt.Sprintf("is %d; virtual particles would reach the reflecting "+
				"boundary, need more than Coarseness + 1 = %d",
				win.ReflectPaddingSteps, pl.Coarseness+1)}
	}
	if win.ReflectPaddingSteps <= 2 {
		return &ConfigError{"Window.ReflectPaddingSteps",
			fmt.Sprintf("must be bigger than 2 (the default is 5), but is %d",
				win.ReflectPaddingSteps)}
	}
	if win.PlasmaPaddingSteps < 0 {
		return &ConfigError{"Window.PlasmaPaddingSteps",
			fmt.Sprintf("must not be negative, but is %d", win.PlasmaPaddingSteps)}
	}
	windowSteps := win.WidthSteps - 2*win.PlasmaPaddingSteps
	if windowSteps < 3 {
		return &ConfigError{"Window.PlasmaPaddingSteps",
			fmt.Sprintf("is %d, which leaves no room for plasma particles in a "+
				"%d-step window", win.PlasmaPaddingSteps, win.WidthSteps)}
	}
	// One coarse macro-particle needs 2*Coarseness working steps.
	if windowSteps/(2*pl.Coarseness) < 1 {
		return &ConfigError{"Plasma.Coarseness",
			fmt.Sprintf("is %d, too coarse for the %d-step plasma window: not "+
				"even one coarse macro-particle fits", pl.Coarseness, windowSteps)}
	}
	return nil
}
