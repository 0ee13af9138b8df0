package reader

import (
	"github.com/achilleasa/objmesh/asset"
	"github.com/achilleasa/objmesh/asset/archive"
	"github.com/achilleasa/objmesh/asset/mesh"
	"github.com/achilleasa/objmesh/asset/obj"
	"github.com/pkg/errors"
)

// Read a mesh from a local file or URL. Wavefront object files (.obj) are
// parsed and converted to a mesh; compiled mesh archives (.zip) are loaded
// as is. The parser options only apply to object files.
func ReadMesh(pathToResource string, opts obj.Options) (*mesh.Mesh, error) {
	res, err := asset.NewResource(pathToResource)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return Read(res, opts)
}

// Read a mesh from an already opened resource.
func Read(res *asset.Resource, opts obj.Options) (*mesh.Mesh, error) {
	switch res.Ext() {
	case ".obj":
		if opts.SourceName == "" {
			opts.SourceName = res.Name()
		}
		sc, err := obj.Parse(res, opts)
		if err != nil {
			return nil, err
		}
		m, err := mesh.Build(sc)
		if err != nil {
			return nil, errors.Wrapf(err, "could not build mesh for %s", res.Path())
		}
		return m, nil
	case ".zip":
		return archive.Read(res)
	}

	return nil, errors.Errorf("reader: unsupported file format %q", res.Ext())
}
