package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// Shapefile components written for each layer.
var shapefileExts = []string{".shp", ".shx", ".dbf"}

// Layer suffixes: a shapefile holds a single geometry type.
const (
	markersLayer = "_markers"
	ringsLayer   = "_rings"
)

// shapefileFields are the DBF attributes of both layers.
var shapefileFields = []shp.Field{
	shp.StringField("TITLE", 80),
	shp.StringField("CLASS", 16),
}

// ShapefileSink writes a document as two ESRI shapefiles: POINT markers and
// POLYLINE rings, each carrying TITLE and CLASS attributes.
type ShapefileSink struct {
	Dir string
}

// NewShapefileSink creates a ShapefileSink rooted at dir ("." when empty).
func NewShapefileSink(dir string) *ShapefileSink {
	if dir == "" {
		dir = "."
	}
	return &ShapefileSink{Dir: dir}
}

type layerRow struct {
	shape shp.Shape
	title string
	class string
}

// Write builds both layers in a scratch directory and moves them into Dir
// only after every file is complete. Empty layers are not written.
func (s *ShapefileSink) Write(ctx context.Context, doc *Document, fileName string) (Handle, error) {
	base := BaseName(filepath.Base(fileName))
	location := filepath.Join(s.Dir, base)
	fail := func(err error, msg string) (Handle, error) {
		return Handle{}, &SinkWriteError{Location: location, Err: eris.Wrap(err, msg)}
	}

	if err := ctx.Err(); err != nil {
		return fail(err, "export: shapefile sink")
	}
	if doc == nil || doc.Collection == nil {
		return fail(eris.New("nil document"), "export: shapefile sink")
	}

	points, lines := splitLayers(doc.Collection.Features)

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fail(err, "export: create export dir")
	}
	scratch, err := os.MkdirTemp(s.Dir, ".autosar-shp-*")
	if err != nil {
		return fail(err, "export: create scratch dir")
	}
	defer func() { _ = os.RemoveAll(scratch) }()

	var layers []string
	if len(points) > 0 {
		if err := writeLayer(filepath.Join(scratch, base+markersLayer+".shp"), shp.POINT, points); err != nil {
			return fail(err, "export: write markers layer")
		}
		layers = append(layers, base+markersLayer)
	}
	if len(lines) > 0 {
		if err := writeLayer(filepath.Join(scratch, base+ringsLayer+".shp"), shp.POLYLINE, lines); err != nil {
			return fail(err, "export: write rings layer")
		}
		layers = append(layers, base+ringsLayer)
	}

	files, total, err := commitLayers(scratch, s.Dir, layers)
	if err != nil {
		return fail(err, "export: move layer files")
	}

	return Handle{
		ID:       uuid.NewString(),
		Location: location,
		Files:    files,
		Bytes:    total,
	}, nil
}

// splitLayers sorts features into point and line rows, keeping order.
func splitLayers(features []*geojson.Feature) (points, lines []layerRow) {
	for _, f := range features {
		title, _ := f.Properties["title"].(string)
		class, _ := f.Properties["class"].(string)

		switch g := f.Geometry.(type) {
		case *geom.Point:
			points = append(points, layerRow{
				shape: &shp.Point{X: g.X(), Y: g.Y()},
				title: title,
				class: class,
			})
		case *geom.LineString:
			pts := make([]shp.Point, 0, g.NumCoords())
			for _, c := range g.Coords() {
				pts = append(pts, shp.Point{X: c.X(), Y: c.Y()})
			}
			lines = append(lines, layerRow{
				shape: shp.NewPolyLine([][]shp.Point{pts}),
				title: title,
				class: class,
			})
		}
	}
	return points, lines
}

// commitLayers moves every staged layer file from scratch into dir. All
// files are checked before the first move, and files already moved are
// removed again if a later move fails.
func commitLayers(scratch, dir string, layers []string) ([]string, int, error) {
	var (
		srcs, dests []string
		total       int
	)
	for _, layer := range layers {
		for _, ext := range shapefileExts {
			src := filepath.Join(scratch, layer+ext)
			info, err := os.Stat(src)
			if err != nil {
				return nil, 0, eris.Wrap(err, "export: stat layer file")
			}
			total += int(info.Size())
			srcs = append(srcs, src)
			dests = append(dests, filepath.Join(dir, layer+ext))
		}
	}

	for i := range srcs {
		if err := os.Rename(srcs[i], dests[i]); err != nil {
			for _, moved := range dests[:i] {
				_ = os.Remove(moved)
			}
			return nil, 0, eris.Wrapf(err, "export: move %s", filepath.Base(dests[i]))
		}
	}
	return dests, total, nil
}

func writeLayer(path string, shapeType shp.ShapeType, rows []layerRow) error {
	w, err := shp.Create(path, shapeType)
	if err != nil {
		return eris.Wrap(err, "export: create shapefile")
	}
	if err := writeRows(w, rows); err != nil {
		w.Close()
		return err
	}
	w.Close()

	return fixDBFName(strings.TrimSuffix(path, ".shp"))
}

func writeRows(w *shp.Writer, rows []layerRow) error {
	if err := w.SetFields(shapefileFields); err != nil {
		return eris.Wrap(err, "export: set shapefile fields")
	}
	for _, r := range rows {
		n := int(w.Write(r.shape))
		if err := w.WriteAttribute(n, 0, r.title); err != nil {
			return eris.Wrap(err, "export: write title attribute")
		}
		if err := w.WriteAttribute(n, 1, r.class); err != nil {
			return eris.Wrap(err, "export: write class attribute")
		}
	}
	return nil
}

// fixDBFName moves the attribute table to stem.dbf. go-shp's writer drops
// the dot when it derives the .dbf name from the .shp path.
func fixDBFName(stem string) error {
	want := stem + ".dbf"
	if _, err := os.Stat(want); err == nil {
		return nil
	}
	for _, got := range []string{stem + "dbf", stem + "..dbf"} {
		if _, err := os.Stat(got); err == nil {
			if err := os.Rename(got, want); err != nil {
				return eris.Wrap(err, "export: rename dbf")
			}
			return nil
		}
	}
	return eris.Errorf("export: dbf for %s not written", filepath.Base(stem))
}
