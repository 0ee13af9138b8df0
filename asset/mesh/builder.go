package mesh

import (
	"sort"
	"time"

	"github.com/achilleasa/objmesh/asset/obj"
	"github.com/achilleasa/objmesh/log"
)

// The (position, tex coord, normal) index triple of a face-vertex. Missing
// attributes are stored as 0.
type refKey [3]int32

// Lexicographic comparison of two index triples.
func (k refKey) less(other refKey) bool {
	for i := 0; i < 3; i++ {
		if k[i] != other[i] {
			return k[i] < other[i]
		}
	}
	return false
}

// A face-vertex reference and the index of the face it belongs to.
type vertexRef struct {
	key  refKey
	face int
}

type meshBuilder struct {
	logger log.Logger
	scene  *obj.Scene

	// Number of triangles and quads in the scene.
	numTriangles int
	numQuads     int
}

// Build an indexed mesh from a parsed scene. Face-vertices that reference
// the same position, tex coord and normal indices share a single mesh
// vertex. Triangle and quad index buffers preserve the face order of the
// scene and the vertex order within each face; faces that are neither
// triangles nor quads are skipped.
func Build(sc *obj.Scene) (*Mesh, error) {
	if len(sc.Positions) == 0 {
		return New(), nil
	}

	b := &meshBuilder{
		logger: log.New("mesh builder"),
		scene:  sc,
	}

	start := time.Now()
	refs, err := b.flattenRefs()
	if err != nil {
		return nil, err
	}

	replacement := findRepresentatives(refs)
	collapsedUpTo, numVertices := countCollapsed(replacement)
	m := b.materialize(refs, replacement, collapsedUpTo, numVertices)

	b.logger.Infof(
		"resolved %d face vertices into %d vertices (%d triangles, %d quads) in %d ms",
		len(refs), len(m.Vertices), m.NumTriangles(), m.NumQuads(), time.Since(start).Nanoseconds()/1e6,
	)
	return m, nil
}

// Collect the index triple of each face-vertex in face order. All indices
// are validated against the scene attribute lists.
func (b *meshBuilder) flattenRefs() ([]vertexRef, error) {
	skipped := 0
	for _, f := range b.scene.Faces {
		switch f.NumVertices {
		case 3:
			b.numTriangles++
		case 4:
			b.numQuads++
		default:
			skipped++
		}
	}
	if skipped > 0 {
		b.logger.Warningf("skipping %d faces that are neither triangles nor quads", skipped)
	}

	refs := make([]vertexRef, 0, 3*b.numTriangles+4*b.numQuads)
	for faceIndex, f := range b.scene.Faces {
		if f.NumVertices != 3 && f.NumVertices != 4 {
			continue
		}

		stride := f.Stride()
		for vertex := 0; vertex < f.NumVertices; vertex++ {
			var key refKey
			var err error
			base := stride * vertex

			key[0], err = lookupIndex(f, faceIndex, vertex, base, PositionAttribute, len(b.scene.Positions))
			if err != nil {
				return nil, err
			}
			if f.HasTexCoords {
				key[1], err = lookupIndex(f, faceIndex, vertex, base+f.TexCoordOffset(), TexCoordAttribute, len(b.scene.TexCoords))
				if err != nil {
					return nil, err
				}
			}
			if f.HasNormals {
				key[2], err = lookupIndex(f, faceIndex, vertex, base+f.NormalOffset(), NormalAttribute, len(b.scene.Normals))
				if err != nil {
					return nil, err
				}
			}

			refs = append(refs, vertexRef{key: key, face: faceIndex})
		}
	}

	return refs, nil
}

// Fetch the face index at the given offset and ensure that it points to an
// element of an attribute list with count entries.
func lookupIndex(f *obj.Face, faceIndex, vertex, offset int, attr Attribute, count int) (int32, error) {
	if offset >= len(f.Indices) {
		return 0, &IndexOutOfRangeError{Face: faceIndex, Vertex: vertex, Attribute: attr, Index: -1, Count: count}
	}

	index := f.Indices[offset]
	if index < 1 || int(index) > count {
		return 0, &IndexOutOfRangeError{Face: faceIndex, Vertex: vertex, Attribute: attr, Index: index, Count: count}
	}
	return index, nil
}

// Sort the face-vertex ordinals by their index triple and map each ordinal
// to a representative ordinal. Ordinals with equal triples share the
// representative that appears first in sort order. The sort is stable so
// the representative is also the first occurrence of the triple.
func findRepresentatives(refs []vertexRef) []int {
	order := make([]int, len(refs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return refs[order[i]].key.less(refs[order[j]].key)
	})

	replacement := make([]int, len(refs))
	for i, ordinal := range order {
		if i > 0 && refs[order[i-1]].key == refs[ordinal].key {
			replacement[ordinal] = replacement[order[i-1]]
		} else {
			replacement[ordinal] = ordinal
		}
	}
	return replacement
}

// For each ordinal, count the ordinals up to and including it that were
// replaced by another representative. Subtracting this count from a
// representative ordinal yields its position in a densely packed vertex
// list:
//
//	replacement               0 1 2 2 1 5 6 7 8 8 7 11 12
//	collapsedUpTo             0 0 0 1 2 2 2 2 2 3 4  4  4
//	collapsedUpTo[rep]        0 0 0 0 0 2 2 2 2 2 2  4  4
//	rep - collapsedUpTo[rep]  0 1 2 2 1 3 4 5 6 6 5  7  8
//
// The number of representatives is also returned.
func countCollapsed(replacement []int) ([]int, int) {
	collapsedUpTo := make([]int, len(replacement))
	collapsed := 0
	for ordinal, rep := range replacement {
		if rep != ordinal {
			collapsed++
		}
		collapsedUpTo[ordinal] = collapsed
	}
	return collapsedUpTo, len(replacement) - collapsed
}

// Populate the vertex list from the representative face-vertices and emit
// the compacted index of every face-vertex to the triangle or quad index
// buffer of its face.
func (b *meshBuilder) materialize(refs []vertexRef, replacement, collapsedUpTo []int, numVertices int) *Mesh {
	m := &Mesh{
		Vertices:        make([]Vertex, numVertices),
		TriangleIndices: make([]uint32, 0, 3*b.numTriangles),
		QuadIndices:     make([]uint32, 0, 4*b.numQuads),
	}

	for ordinal, ref := range refs {
		rep := replacement[ordinal]
		finalIndex := uint32(rep - collapsedUpTo[rep])
		f := b.scene.Faces[ref.face]

		if rep == ordinal {
			vertex := &m.Vertices[finalIndex]
			vertex.Position = b.scene.Positions[ref.key[0]-1]
			if f.HasTexCoords {
				vertex.TexCoords = b.scene.TexCoords[ref.key[1]-1]
			}
			if f.HasNormals {
				vertex.Normal = b.scene.Normals[ref.key[2]-1]
			}
		}

		if f.NumVertices == 3 {
			m.TriangleIndices = append(m.TriangleIndices, finalIndex)
		} else {
			m.QuadIndices = append(m.QuadIndices, finalIndex)
		}
	}

	return m
}
