package cmd

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/achilleasa/objmesh/asset"
	"github.com/achilleasa/objmesh/asset/obj"
	"github.com/achilleasa/objmesh/asset/reader"
	"github.com/urfave/cli"
)

const quadPayload = `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
f 1 2 3
`

func newContext(t *testing.T, out *bytes.Buffer, cfgFile string, args ...string) *cli.Context {
	app := cli.NewApp()
	app.Writer = out

	globalSet := flag.NewFlagSet("objmesh", flag.ContinueOnError)
	globalSet.Bool("v", false, "")
	globalSet.Bool("vv", false, "")
	globalSet.String("config", cfgFile, "")
	globalCtx := cli.NewContext(app, globalSet, nil)

	set := flag.NewFlagSet("cmd", flag.ContinueOnError)
	set.Bool("strict", false, "")
	set.Bool("all-arities", false, "")
	if err := set.Parse(args); err != nil {
		t.Fatal(err)
	}
	return cli.NewContext(app, set, globalCtx)
}

func writeFile(t *testing.T, dir, name, contents string) string {
	file := filepath.Join(dir, name)
	if err := os.WriteFile(file, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestDrawMesh(t *testing.T) {
	objFile := writeFile(t, t.TempDir(), "quad.obj", quadPayload)

	var out bytes.Buffer
	if err := DrawMesh(newContext(t, &out, "", objFile)); err != nil {
		t.Fatal(err)
	}

	expOut := "TRIANGLE 0 3\nQUAD     0 4\n"
	if out.String() != expOut {
		t.Fatalf("expected output:\n%s\ngot:\n%s", expOut, out.String())
	}
}

func TestDrawMeshErrors(t *testing.T) {
	var out bytes.Buffer
	err := DrawMesh(newContext(t, &out, ""))
	if err == nil || err.Error() != "missing mesh file" {
		t.Fatalf("expected a missing file error; got %v", err)
	}

	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "objmesh.yml", "log_level: loud\n")
	objFile := writeFile(t, dir, "quad.obj", quadPayload)
	err = DrawMesh(newContext(t, &out, cfgFile, objFile))
	if err == nil || !strings.Contains(err.Error(), `unknown level "loud"`) {
		t.Fatalf("expected a config error; got %v", err)
	}
}

func TestConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "objmesh.yml", "parser:\n  retain_all_arities: true\n")

	var out bytes.Buffer
	cfg, err := loadConfig(newContext(t, &out, cfgFile, "--strict"))
	if err != nil {
		t.Fatal(err)
	}
	opts := cfg.ParserOptions()
	if opts.Arity != obj.RetainAllArities || !opts.StrictFaces {
		t.Fatalf("expected the config file and the command flag to be combined; got %+v", opts)
	}
}

func TestCompileMesh(t *testing.T) {
	dir := t.TempDir()
	objFile := writeFile(t, dir, "quad.obj", quadPayload)
	txtFile := writeFile(t, dir, "notes.txt", "not a mesh")

	var out bytes.Buffer
	if err := CompileMesh(newContext(t, &out, "", txtFile, objFile)); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, "notes.zip")); !os.IsNotExist(err) {
		t.Fatal("expected unsupported files to be skipped")
	}

	m, err := reader.ReadMesh(filepath.Join(dir, "quad.zip"), obj.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if m.NumTriangles() != 1 || m.NumQuads() != 1 || len(m.Vertices) != 4 {
		t.Fatalf("unexpected compiled mesh %+v", m)
	}

	if err = ShowMeshInfo(newContext(t, &out, "", filepath.Join(dir, "quad.zip"))); err != nil {
		t.Fatal(err)
	}
}

func TestArchiveName(t *testing.T) {
	res := asset.NewResourceFromStream("http://example.com/models/cube.obj", strings.NewReader(""))
	if name := archiveName("http://example.com/models/cube.obj", res); name != "cube.zip" {
		t.Fatalf("expected remote archive to be written to cube.zip; got %s", name)
	}

	res = asset.NewResourceFromStream("models/cube.obj", strings.NewReader(""))
	if name := archiveName("models/cube.obj", res); name != "models/cube.zip" {
		t.Fatalf("expected local archive to be written to models/cube.zip; got %s", name)
	}
}
