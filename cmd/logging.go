package cmd

import (
	"github.com/achilleasa/objmesh/config"
	"github.com/achilleasa/objmesh/log"
	"github.com/urfave/cli"
)

var logger = log.New("objmesh")

func setupLogging(ctx *cli.Context, cfg *config.Config) {
	log.SetLevel(cfg.Level())

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
