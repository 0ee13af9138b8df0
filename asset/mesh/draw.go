package mesh

import "fmt"

// The primitive type rendered by a draw command.
type PrimitiveType uint8

const (
	Triangle PrimitiveType = iota
	Quad
)

func (p PrimitiveType) String() string {
	switch p {
	case Triangle:
		return "TRIANGLE"
	case Quad:
		return "QUAD"
	}
	return fmt.Sprintf("PrimitiveType(%d)", uint8(p))
}

// A draw command renders a single primitive. StartIndex points to
// TriangleIndices for triangles and to QuadIndices for quads.
type DrawCommand struct {
	Type        PrimitiveType
	StartIndex  int
	NumVertices int
}

func (c DrawCommand) String() string {
	return fmt.Sprintf("%-8s %d %d", c.Type, c.StartIndex, c.NumVertices)
}

// Generate one draw command per mesh primitive; triangles are listed
// before quads.
func DrawCommands(m *Mesh) []DrawCommand {
	cmds := make([]DrawCommand, 0, m.NumTriangles()+m.NumQuads())
	for offset := 0; offset+3 <= len(m.TriangleIndices); offset += 3 {
		cmds = append(cmds, DrawCommand{Type: Triangle, StartIndex: offset, NumVertices: 3})
	}
	for offset := 0; offset+4 <= len(m.QuadIndices); offset += 4 {
		cmds = append(cmds, DrawCommand{Type: Quad, StartIndex: offset, NumVertices: 4})
	}
	return cmds
}
