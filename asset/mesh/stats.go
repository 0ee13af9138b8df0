package mesh

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Build a tabular representation of mesh statistics.
func (m *Mesh) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Buffer", "Count", "Size"})
	table.Append([]string{"Vertices", strconv.Itoa(len(m.Vertices)), fmtSize(m.Vertices)})
	table.Append([]string{"Triangles", strconv.Itoa(m.NumTriangles()), fmtSize(m.TriangleIndices)})
	table.Append([]string{"Quads", strconv.Itoa(m.NumQuads()), fmtSize(m.QuadIndices)})
	if len(m.Vertices) > 0 {
		bbox := m.BBox()
		table.Append([]string{" ", " ", " "})
		table.Append([]string{"BBox min", fmtVec(bbox[0][:]), ""})
		table.Append([]string{"BBox max", fmtVec(bbox[1][:]), ""})
	}
	table.SetFooter([]string{"Total", " ", strings.TrimLeft(fmtSize(m.Vertices, m.TriangleIndices, m.QuadIndices), " ")})

	table.Render()
	return buf.String()
}

func fmtVec(v []float32) string {
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = strconv.FormatFloat(float64(c), 'g', 6, 32)
	}
	return strings.Join(parts, " ")
}

// Sum the total space used by a set of slices and return back a formatted
// value with the appropriate byte/kb/mb unit.
func fmtSize(items ...interface{}) string {
	var totalBytes float32 = 0.0
	for _, item := range items {
		t := reflect.TypeOf(item)
		v := reflect.ValueOf(item)
		if v.Len() == 0 {
			continue
		}

		totalBytes += float32(int(t.Elem().Size()) * v.Len())
	}

	if totalBytes < 1e3 {
		return fmt.Sprintf("%3d bytes", int(totalBytes))
	} else if totalBytes < 1e6 {
		return fmt.Sprintf("%3.1f kb", totalBytes/1e3)
	}
	return fmt.Sprintf("%5.1f mb", totalBytes/1e6)
}
