package reader

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/achilleasa/objmesh/asset"
	"github.com/achilleasa/objmesh/asset/archive"
	"github.com/achilleasa/objmesh/asset/mesh"
	"github.com/achilleasa/objmesh/asset/obj"
)

const triPayload = `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
f 1 2 3 4 5
`

func TestReadObj(t *testing.T) {
	objFile := filepath.Join(t.TempDir(), "tri.obj")
	if err := os.WriteFile(objFile, []byte(triPayload), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := ReadMesh(objFile, obj.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Vertices) != 3 || !reflect.DeepEqual(m.TriangleIndices, []uint32{0, 1, 2}) {
		t.Fatalf("unexpected mesh %+v", m)
	}
}

func TestReadArchive(t *testing.T) {
	sc, err := obj.Parse(strings.NewReader(triPayload), obj.Options{})
	if err != nil {
		t.Fatal(err)
	}
	m, err := mesh.Build(sc)
	if err != nil {
		t.Fatal(err)
	}

	archiveFile := filepath.Join(t.TempDir(), "tri.zip")
	if err = archive.Write(m, archiveFile); err != nil {
		t.Fatal(err)
	}

	loaded, err := ReadMesh(archiveFile, obj.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(m, loaded) {
		t.Fatalf("expected archived mesh %+v; got %+v", m, loaded)
	}
}

func TestReadErrors(t *testing.T) {
	_, err := Read(asset.NewResourceFromStream("mesh.ply", strings.NewReader("")), obj.Options{})
	expError := `reader: unsupported file format ".ply"`
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get %s; got %v", expError, err)
	}

	_, err = Read(asset.NewResourceFromStream("bad.obj", strings.NewReader("v 0 0 0\nv 0 x 0\n")), obj.Options{})
	var pe *obj.ParseError
	if !errors.As(err, &pe) || pe.Source != "bad.obj" || pe.Line != 2 {
		t.Fatalf("expected a parse error for bad.obj:2; got %v", err)
	}

	_, err = Read(asset.NewResourceFromStream("oob.obj", strings.NewReader("v 0 0 0\nf 1 2 3\n")), obj.Options{})
	if !errors.Is(err, mesh.ErrIndexOutOfRange) {
		t.Fatalf("expected an index out of range error; got %v", err)
	}
}
