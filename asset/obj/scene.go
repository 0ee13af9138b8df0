package obj

import "github.com/achilleasa/objmesh/types"

// A face definition. Attribute indices are stored as a flat list where
// each vertex contributes Stride() consecutive entries: the position index
// followed by the texture coordinate index and the normal index, if the
// face references them. For example "f 1/2/3 2/3/4 3/4/5" is stored as
//
//	{3, true, true, {1,2,3, 2,3,4, 3,4,5}}
//
// while "f 1//2 3//4" becomes {2, false, true, {1,2, 3,4}}.
type Face struct {
	NumVertices  int
	HasTexCoords bool
	HasNormals   bool

	// 1-based attribute indices.
	Indices []int32
}

// Get the number of index entries per face vertex.
func (f *Face) Stride() int {
	stride := 1
	if f.HasTexCoords {
		stride++
	}
	if f.HasNormals {
		stride++
	}
	return stride
}

// Get the offset of the texture coordinate index within a vertex stride.
func (f *Face) TexCoordOffset() int {
	return 1
}

// Get the offset of the normal index within a vertex stride.
func (f *Face) NormalOffset() int {
	if f.HasTexCoords {
		return 2
	}
	return 1
}

// The parsed scene contains the attribute lists and faces of a wavefront
// object file. Faces reference attributes using 1-based indices.
type Scene struct {
	Positions []types.Vec3
	TexCoords []types.Vec3
	Normals   []types.Vec3
	Faces     []*Face
}

// Create a new scene.
func NewScene() *Scene {
	return &Scene{
		Positions: make([]types.Vec3, 0),
		TexCoords: make([]types.Vec3, 0),
		Normals:   make([]types.Vec3, 0),
		Faces:     make([]*Face, 0),
	}
}
