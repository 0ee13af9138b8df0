package main

import (
	"os"

	"github.com/achilleasa/objmesh/cmd"
	"github.com/achilleasa/objmesh/log"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	parserFlags := []cli.Flag{
		cli.BoolFlag{
			Name:  "strict",
			Usage: "reject faces whose vertices reference different attributes",
		},
		cli.BoolFlag{
			Name:  "all-arities",
			Usage: "keep faces with fewer than 3 or more than 4 vertices when parsing",
		},
	}

	app := cli.NewApp()
	app.Name = "objmesh"
	app.Usage = "convert wavefront object files into indexed meshes"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load settings from a yaml config file",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "draw",
			Usage: "print the draw commands for a mesh",
			Description: `
Parse a wavefront obj file (or load a compiled mesh archive), merge duplicate
vertices and print one draw command per triangle and quad. Each command lists
the primitive type, its offset into the primitive's index buffer and its
vertex count.`,
			ArgsUsage: "mesh_file.obj",
			Flags:     parserFlags,
			Action:    cmd.DrawMesh,
		},
		{
			Name:  "compile",
			Usage: "compile wavefront obj files into compressed mesh archives",
			Description: `
Parse one or more wavefront obj files, merge duplicate vertices and write the
resulting vertex and index buffers to a zip archive next to each input file.`,
			ArgsUsage: "mesh_file1.obj mesh_file2.obj ...",
			Flags:     parserFlags,
			Action:    cmd.CompileMesh,
		},
		{
			Name:      "info",
			Usage:     "display mesh statistics",
			ArgsUsage: "mesh_file.(obj|zip)",
			Flags:     parserFlags,
			Action:    cmd.ShowMeshInfo,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("objmesh").Error(err)
		os.Exit(1)
	}
}
