package main

import (
	"github.com/spf13/pflag"

	"github.com/vovakirdan/tui-maze/internal/config"
)

// resolveConfig builds the effective configuration. Later sources win:
// config file (or embedded defaults), then .env and MAZE_* variables, then
// flags given on the command line.
func resolveConfig(flags *pflag.FlagSet) (config.Config, error) {
	if err := config.LoadDotEnv(flagEnvFile); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return config.Config{}, err
	}
	applyFlags(&cfg, flags)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// applyFlags copies explicitly set flags into cfg.
func applyFlags(cfg *config.Config, flags *pflag.FlagSet) {
	if flags.Changed("size") {
		cfg.Maze.Size = flagSize
	}
	if flags.Changed("seed") {
		cfg.Maze.Seed = flagSeed
	}
	if flags.Changed("fps") {
		cfg.Loop.FPS = flagFPS
	}
	if flags.Changed("surface") {
		cfg.Surface = flagSurface
	}
	if flags.Changed("sound") {
		cfg.Sound = flagSound
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
}
