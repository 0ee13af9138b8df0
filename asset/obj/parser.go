package obj

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/achilleasa/objmesh/log"
	"github.com/achilleasa/objmesh/types"
)

// ArityPolicy controls which faces are kept by the parser based on their
// vertex count.
type ArityPolicy uint8

const (
	// Keep triangles and quads; faces with any other vertex count are
	// parsed and then dropped.
	RetainTrianglesAndQuads ArityPolicy = iota

	// Keep all parsed faces regardless of their vertex count.
	RetainAllArities
)

func (p ArityPolicy) String() string {
	switch p {
	case RetainTrianglesAndQuads:
		return "triangles-and-quads"
	case RetainAllArities:
		return "all"
	}
	return fmt.Sprintf("ArityPolicy(%d)", uint8(p))
}

// Parser options.
type Options struct {
	// A name for the parsed source that is included in reported errors.
	SourceName string

	// Face retention policy.
	Arity ArityPolicy

	// Reject faces whose vertices do not reference the same set of
	// attributes as the first face vertex. When disabled, such faces are
	// passed through and their index list may not match the face stride.
	StrictFaces bool
}

type parser struct {
	logger log.Logger
	opts   Options

	// The parsed scene.
	scene *Scene

	// Unsupported tags that have already been reported.
	ignoredTags map[string]struct{}

	// Number of faces dropped due to the arity policy.
	droppedFaces int
}

func newParser(opts Options) *parser {
	return &parser{
		logger:      log.New("obj parser"),
		opts:        opts,
		scene:       NewScene(),
		ignoredTags: make(map[string]struct{}),
	}
}

// Parse a wavefront object stream into a scene.
func Parse(r io.Reader, opts Options) (*Scene, error) {
	p := newParser(opts)
	start := time.Now()

	var lineNum int = 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		if err := p.parseLine(lineNum, scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, p.emitError(lineNum, "", err)
	}

	p.logStats(time.Since(start))
	return p.scene, nil
}

// Parse a list of wavefront object lines into a scene.
func ParseLines(lines []string, opts Options) (*Scene, error) {
	p := newParser(opts)
	start := time.Now()

	for index, line := range lines {
		if err := p.parseLine(index+1, line); err != nil {
			return nil, err
		}
	}

	p.logStats(time.Since(start))
	return p.scene, nil
}

func (p *parser) logStats(elapsed time.Duration) {
	if p.droppedFaces > 0 {
		p.logger.Infof("dropped %d faces that are neither triangles nor quads", p.droppedFaces)
	}
	p.logger.Infof(
		"parsed %d positions, %d tex coords, %d normals and %d faces in %d ms",
		len(p.scene.Positions), len(p.scene.TexCoords), len(p.scene.Normals), len(p.scene.Faces),
		elapsed.Nanoseconds()/1e6,
	)
}

// Populate the location fields of an error returned by one of the
// token parsers.
func (p *parser) emitError(lineNum int, line string, err error) error {
	pe, ok := err.(*ParseError)
	if !ok {
		pe = &ParseError{Err: err}
	}
	pe.Source = p.opts.SourceName
	pe.Line = lineNum
	pe.Text = line
	return pe
}

func (p *parser) parseLine(lineNum int, line string) error {
	lineTokens := strings.Fields(line)
	if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
		return nil
	}

	switch lineTokens[0] {
	case "v":
		v, err := parseVec3(lineTokens)
		if err != nil {
			return p.emitError(lineNum, line, err)
		}
		p.scene.Positions = append(p.scene.Positions, v)
	case "vt":
		v, err := parseTexCoord(lineTokens)
		if err != nil {
			return p.emitError(lineNum, line, err)
		}
		p.scene.TexCoords = append(p.scene.TexCoords, v)
	case "vn":
		v, err := parseVec3(lineTokens)
		if err != nil {
			return p.emitError(lineNum, line, err)
		}
		p.scene.Normals = append(p.scene.Normals, v)
	case "f":
		face, err := p.parseFace(lineTokens[1:])
		if err != nil {
			return p.emitError(lineNum, line, err)
		}

		if p.opts.Arity == RetainAllArities || face.NumVertices == 3 || face.NumVertices == 4 {
			p.scene.Faces = append(p.scene.Faces, face)
		} else {
			p.droppedFaces++
		}
	default:
		if _, seen := p.ignoredTags[lineTokens[0]]; !seen {
			p.ignoredTags[lineTokens[0]] = struct{}{}
			p.logger.Debugf(`ignoring unsupported tag "%s" (line %d)`, lineTokens[0], lineNum)
		}
	}

	return nil
}

// Parse face definition. Each face argument describes a vertex and is
// comprised of 1, 2 or 3 indices separated by a slash character:
// - vertexIndex
// - vertexIndex/uvIndex
// - vertexIndex//normalIndex
// - vertexIndex/uvIndex/normalIndex
//
// The first argument defines which attributes are referenced by all face
// vertices. The remaining arguments are read using the same layout; any
// empty index is skipped.
func (p *parser) parseFace(vertexTokens []string) (*Face, error) {
	face := &Face{
		Indices: make([]int32, 0, 3*len(vertexTokens)),
	}

	// Number of slash-separated slots to read for each vertex after the first.
	var slots int
	for arg, vertexToken := range vertexTokens {
		indexTokens := strings.Split(vertexToken, "/")

		if arg == 0 {
			shape, err := parseVertexShape(indexTokens)
			if err != nil {
				return nil, err
			}

			face.Indices = append(face.Indices, shape.indices[0])
			face.HasTexCoords = shape.hasTexCoords
			if face.HasTexCoords {
				face.Indices = append(face.Indices, shape.indices[1])
			}
			face.HasNormals = shape.hasNormals
			if face.HasNormals {
				face.Indices = append(face.Indices, shape.indices[2])
			}

			slots = 1
			if face.HasTexCoords || face.HasNormals {
				slots++
			}
			if face.HasNormals {
				slots++
			}

			face.NumVertices++
			continue
		}

		if p.opts.StrictFaces {
			shape, err := parseVertexShape(indexTokens)
			if err != nil {
				return nil, err
			}
			if !shape.hasPosition || shape.hasTexCoords != face.HasTexCoords || shape.hasNormals != face.HasNormals {
				return nil, &ParseError{
					Token: vertexToken,
					Err:   fmt.Errorf("face argument %d does not reference the same attributes as face argument 0", arg),
				}
			}
		}

		for slot := 0; slot < slots && slot < len(indexTokens); slot++ {
			if indexTokens[slot] == "" {
				continue
			}

			index, err := parseIndex(indexTokens[slot])
			if err != nil {
				return nil, err
			}
			face.Indices = append(face.Indices, index)
		}
		face.NumVertices++
	}

	return face, nil
}

// The attribute references of a single face vertex.
type vertexShape struct {
	hasPosition  bool
	hasTexCoords bool
	hasNormals   bool
	indices      [3]int32
}

// Parse the index tokens of a face vertex. Texture and normal references
// are only considered present when their index is positive.
func parseVertexShape(indexTokens []string) (vertexShape, error) {
	var shape vertexShape
	var err error

	shape.hasPosition = indexTokens[0] != ""
	if shape.indices[0], err = parseIndex(indexTokens[0]); err != nil {
		return shape, err
	}

	if len(indexTokens) > 1 {
		if shape.indices[1], err = parseIndex(indexTokens[1]); err != nil {
			return shape, err
		}
		shape.hasTexCoords = shape.indices[1] > 0
	}

	if len(indexTokens) > 2 {
		if shape.indices[2], err = parseIndex(indexTokens[2]); err != nil {
			return shape, err
		}
		shape.hasNormals = shape.indices[2] > 0
	}

	return shape, nil
}

// Parse an attribute index. Empty tokens are treated as a missing (0) index.
func parseIndex(token string) (int32, error) {
	if token == "" {
		return 0, nil
	}

	index, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, &ParseError{Token: token, Err: numError(err)}
	}
	return int32(index), nil
}

// Parse a float scalar value.
func parseFloat32(token string) (float32, error) {
	val, err := strconv.ParseFloat(token, 32)
	if err != nil {
		return 0, &ParseError{Token: token, Err: numError(err)}
	}
	return float32(val), nil
}

// Parse a Vec3 row. Any values after the third are ignored.
func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 4 {
		return types.Vec3{}, &ParseError{
			Err: fmt.Errorf(`unsupported syntax for "%s"; expected 3 arguments; got %d`, lineTokens[0], len(lineTokens)-1),
		}
	}

	v := types.Vec3{}
	for tokIdx := 1; tokIdx <= 3; tokIdx++ {
		coord, err := parseFloat32(lineTokens[tokIdx])
		if err != nil {
			return v, err
		}
		v[tokIdx-1] = coord
	}
	return v, nil
}

// Parse a texture coordinate row. The third coordinate is optional and
// defaults to 1. Any values after the third are ignored.
func parseTexCoord(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 3 {
		return types.Vec3{}, &ParseError{
			Err: fmt.Errorf(`unsupported syntax for "%s"; expected at least 2 arguments; got %d`, lineTokens[0], len(lineTokens)-1),
		}
	}

	v := types.Vec3{0, 0, 1}
	for tokIdx := 1; tokIdx <= 3 && tokIdx < len(lineTokens); tokIdx++ {
		coord, err := parseFloat32(lineTokens[tokIdx])
		if err != nil {
			return v, err
		}
		v[tokIdx-1] = coord
	}
	return v, nil
}

// Strip the function and input prefix from strconv errors; the offending
// token is reported separately.
func numError(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}
