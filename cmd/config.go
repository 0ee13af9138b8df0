package cmd

import (
	"github.com/achilleasa/objmesh/config"
	"github.com/urfave/cli"
)

// Load the config file selected by the global --config flag and apply any
// parser overrides supplied as command flags.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if cfgFile := ctx.GlobalString("config"); cfgFile != "" {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return nil, err
		}
	}

	if ctx.Bool("strict") {
		cfg.Parser.StrictFaces = true
	}
	if ctx.Bool("all-arities") {
		cfg.Parser.RetainAllArities = true
	}

	setupLogging(ctx, cfg)
	return cfg, nil
}
