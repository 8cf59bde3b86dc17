package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/wakepic/wakepic/checkpoint"
	"github.com/wakepic/wakepic/config"
	"github.com/wakepic/wakepic/deposit"
	"github.com/wakepic/wakepic/plasma"
)

func main() {
	var (
		initConfig, resumeConfig, stateFile string
		exampleConfig                       bool
	)

	flag.StringVar(
		&initConfig, "Init", "",
		"Configuration file. Builds a fresh plasma state and saves it.",
	)
	flag.StringVar(
		&resumeConfig, "Resume", "",
		"Configuration file. Reloads the plasma state saved by -Init.",
	)
	flag.StringVar(
		&stateFile, "State", "",
		"Path of the plasma state file. Overrides StateFile in [Run].",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)

	flag.Parse()

	switch {
	case exampleConfig:
		fmt.Println(config.ExampleConfigFile)
	case initConfig != "" && resumeConfig != "":
		log.Fatal("-Init and -Resume cannot be combined.")
	case initConfig != "":
		run(initConfig, stateFile, false)
	case resumeConfig != "":
		run(resumeConfig, stateFile, true)
	default:
		flag.Usage()
		os.Exit(1)
	}
}

func run(confFile, stateFile string, resume bool) {
	cfg, err := config.Read(confFile)
	if err != nil {
		log.Fatal(err)
	}
	if stateFile == "" {
		stateFile = cfg.Run.StateFile
	}

	if cfg.Run.LogFile != "" {
		f, err := os.Create(cfg.Run.LogFile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	dep := deposit.CloudInCell{}
	t0 := time.Now()

	var (
		fields    *plasma.Fields
		particles *plasma.Particles
		currents  *plasma.Currents
		consts    *plasma.ConstArrays
	)
	if resume {
		fields, particles, currents, consts, err = plasma.Load(cfg, dep, stateFile)
	} else {
		fields, particles, currents, consts, err = plasma.Init(cfg, dep)
	}
	if err != nil {
		log.Fatal(err)
	}

	nc, _ := particles.XInit.Dims()
	log.Printf(
		"plasma ready: %d x %d macro-particles on a %d x %d window, "+
			"%d fine points per axis (%v)",
		nc, nc, cfg.Window.WidthSteps, cfg.Window.WidthSteps,
		consts.Weights.Len(), time.Since(t0),
	)

	if !resume {
		state := plasma.Snapshot(fields, particles, currents)
		if err := checkpoint.Save(stateFile, state); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote initial plasma state to %s", stateFile)
	}
}
