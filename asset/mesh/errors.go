package mesh

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is matched by errors.Is for any IndexOutOfRangeError.
var ErrIndexOutOfRange = errors.New("mesh: index out of range")

// The face-vertex attribute types.
type Attribute uint8

const (
	PositionAttribute Attribute = iota
	TexCoordAttribute
	NormalAttribute
)

func (a Attribute) String() string {
	switch a {
	case PositionAttribute:
		return "position"
	case TexCoordAttribute:
		return "tex coord"
	case NormalAttribute:
		return "normal"
	}
	return fmt.Sprintf("Attribute(%d)", uint8(a))
}

// IndexOutOfRangeError is returned when a face references an attribute
// that does not exist. A face whose index list is shorter than its vertex
// count requires is reported with Index set to -1.
type IndexOutOfRangeError struct {
	// Index of the offending face in the scene face list.
	Face int

	// Index of the vertex within the face.
	Vertex int

	Attribute Attribute

	// The 1-based index found in the face and the length of the
	// referenced attribute list.
	Index int32
	Count int
}

func (e *IndexOutOfRangeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: face %d vertex %d: missing %s index", ErrIndexOutOfRange, e.Face, e.Vertex, e.Attribute)
	}
	return fmt.Sprintf("%s: face %d vertex %d: %s index %d not in [1, %d]", ErrIndexOutOfRange, e.Face, e.Vertex, e.Attribute, e.Index, e.Count)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
