package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/achilleasa/objmesh/asset"
	"github.com/achilleasa/objmesh/asset/archive"
	"github.com/achilleasa/objmesh/asset/mesh"
	"github.com/achilleasa/objmesh/asset/reader"
	pkgErrors "github.com/pkg/errors"
	"github.com/urfave/cli"
)

// Print the draw commands for a mesh, one per line.
func DrawMesh(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing mesh file")
	}

	m, err := reader.ReadMesh(ctx.Args().First(), cfg.ParserOptions())
	if err != nil {
		return err
	}

	for _, drawCmd := range mesh.DrawCommands(m) {
		fmt.Fprintln(ctx.App.Writer, drawCmd.String())
	}

	return nil
}

// Compile object files into mesh archives.
func CompileMesh(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if ctx.NArg() == 0 {
		return errors.New("missing object files")
	}

	for idx := 0; idx < ctx.NArg(); idx++ {
		objFile := ctx.Args().Get(idx)
		if !strings.HasSuffix(strings.ToLower(objFile), ".obj") {
			logger.Warningf("skipping unsupported file %s", objFile)
			continue
		}

		logger.Noticef("parsing and compiling mesh: %s", objFile)
		res, err := asset.NewResource(objFile)
		if err != nil {
			return err
		}
		m, err := reader.Read(res, cfg.ParserOptions())
		res.Close()
		if err != nil {
			return err
		}

		logger.Noticef("mesh information:\n%s", m.Stats())

		zipFile := archiveName(objFile, res)
		if err = archive.Write(m, zipFile); err != nil {
			return pkgErrors.Wrapf(err, "could not compile %s", objFile)
		}
	}

	return nil
}

// Display mesh info for an object file or a compiled mesh archive.
func ShowMeshInfo(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing mesh file")
	}

	m, err := reader.ReadMesh(ctx.Args().First(), cfg.ParserOptions())
	if err != nil {
		return err
	}

	logger.Noticef("mesh information:\n%s", m.Stats())
	return nil
}

// Archives for local files are written next to the source file; archives
// for remote files are written to the current directory.
func archiveName(objFile string, res *asset.Resource) string {
	name := objFile
	if res.IsRemote() {
		name = res.Name()
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".zip"
}
