package mesh

import (
	"reflect"
	"strings"
	"testing"

	"github.com/achilleasa/objmesh/asset/obj"
)

func TestDrawCommands(t *testing.T) {
	m := &Mesh{
		Vertices:        make([]Vertex, 5),
		TriangleIndices: []uint32{0, 1, 2, 2, 1, 3},
		QuadIndices:     []uint32{0, 1, 3, 4},
	}

	cmds := DrawCommands(m)
	expCmds := []DrawCommand{
		{Triangle, 0, 3},
		{Triangle, 3, 3},
		{Quad, 0, 4},
	}
	if !reflect.DeepEqual(cmds, expCmds) {
		t.Fatalf("expected draw commands %v; got %v", expCmds, cmds)
	}

	var lines []string
	for _, cmd := range cmds {
		lines = append(lines, cmd.String())
	}
	expOut := "TRIANGLE 0 3\nTRIANGLE 3 3\nQUAD     0 4"
	if out := strings.Join(lines, "\n"); out != expOut {
		t.Fatalf("expected output:\n%s\ngot:\n%s", expOut, out)
	}
}

func TestDrawCommandsForCube(t *testing.T) {
	type spec struct {
		scene       func() *obj.Scene
		expCmdCount int
		expLastCmd  DrawCommand
	}
	specs := []spec{
		{triangleCube, 12, DrawCommand{Triangle, 33, 3}},
		{quadCube, 6, DrawCommand{Quad, 20, 4}},
	}

	for idx, s := range specs {
		m, err := Build(s.scene())
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", idx, err)
		}

		cmds := DrawCommands(m)
		if len(cmds) != s.expCmdCount {
			t.Fatalf("[spec %d] expected %d draw commands; got %d", idx, s.expCmdCount, len(cmds))
		}
		if last := cmds[len(cmds)-1]; last != s.expLastCmd {
			t.Fatalf("[spec %d] expected last draw command to be %v; got %v", idx, s.expLastCmd, last)
		}
	}
}

func TestDrawCommandsForEmptyMesh(t *testing.T) {
	if cmds := DrawCommands(New()); len(cmds) != 0 {
		t.Fatalf("expected no draw commands; got %d", len(cmds))
	}
}
