package archive

import (
	"archive/zip"
	"bytes"
	"encoding/gob"
	"io"
	"os"
	"time"

	"github.com/achilleasa/objmesh/asset"
	"github.com/achilleasa/objmesh/asset/mesh"
	"github.com/achilleasa/objmesh/log"
	"github.com/pkg/errors"
)

const (
	dataFile = "mesh.bin"
)

var logger = log.New("mesh archive")

// Write a compiled mesh to a zip archive.
func Write(m *mesh.Mesh, archiveFile string) error {
	logger.Noticef(`writing compiled mesh to "%s"`, archiveFile)
	start := time.Now()

	zipFile, err := os.Create(archiveFile)
	if err != nil {
		return err
	}
	defer zipFile.Close()

	if err = Encode(m, zipFile); err != nil {
		return errors.Wrapf(err, "archive: could not write %s", archiveFile)
	}

	logger.Noticef("wrote compiled mesh in %d ms", time.Since(start).Nanoseconds()/1e6)
	return zipFile.Close()
}

// Encode a compiled mesh as a zip archive and write it to w.
func Encode(m *mesh.Mesh, w io.Writer) error {
	zw := zip.NewWriter(w)

	cw, err := zw.Create(dataFile)
	if err != nil {
		return err
	}
	if err = gob.NewEncoder(cw).Encode(m); err != nil {
		return err
	}

	return zw.Close()
}

// Read a compiled mesh from a zip archive resource.
func Read(res *asset.Resource) (*mesh.Mesh, error) {
	logger.Noticef(`loading compiled mesh from "%s"`, res.Path())
	start := time.Now()

	// zip package requires a reader implementing ReaderAt. To work around
	// this requirement we read the entire zip file into memory.
	data, err := io.ReadAll(res)
	if err != nil {
		return nil, err
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Wrapf(err, "archive: could not open %s", res.Path())
	}

	var m *mesh.Mesh
	for _, f := range zr.File {
		if f.Name != dataFile {
			logger.Warningf("unknown file %s in mesh archive; skipping", f.Name)
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		m = mesh.New()
		err = gob.NewDecoder(rc).Decode(m)
		rc.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "archive: failed to load %s", f.Name)
		}
	}

	if m == nil {
		return nil, errors.Errorf("archive: %s does not contain %s", res.Path(), dataFile)
	}

	logger.Noticef("loaded compiled mesh in %d ms", time.Since(start).Nanoseconds()/1e6)
	return m, nil
}
