// Package lpb holds the lost-person-behavior lookup table: a read-only tree
// keyed subject → activity → terrain → area whose leaves carry ring radii.
package lpb

import (
	_ "embed"
	"os"
	"sync"

	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"
)

// RadiiField is the leaf field holding ring radii in meters.
const RadiiField = "ringRadii"

// Depth of the keyed tree: subject, activity, terrain, area.
const pathDepth = 4

//go:embed data/lost-person-behaviour.json
var bundled []byte

var (
	bundledOnce  sync.Once
	bundledTable *Table
	bundledErr   error
)

// node is one level of the tree. keys keeps document order for listings.
type node struct {
	keys     []string
	children map[string]*node
	radii    []float64
	hasRadii bool
}

// Table is an immutable LPB lookup tree. It is never mutated after
// construction and is safe for concurrent readers.
type Table struct {
	root *node
}

// Load returns the table built from the bundled resource. The resource is
// parsed once per process on first access.
func Load() (*Table, error) {
	bundledOnce.Do(func() {
		bundledTable, bundledErr = parse(bundled, "bundled lost-person-behaviour.json")
	})
	return bundledTable, bundledErr
}

// LoadFile reads and parses a lookup resource from disk.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DataLoadError{Source: path, Err: eris.Wrap(err, "lpb: read file")}
	}
	return parse(data, path)
}

// Parse builds a table from a JSON lookup document.
func Parse(data []byte) (*Table, error) {
	return parse(data, "inline document")
}

func parse(data []byte, source string) (*Table, error) {
	if !gjson.ValidBytes(data) {
		return nil, &DataLoadError{Source: source, Err: eris.New("lpb: invalid JSON")}
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, &DataLoadError{Source: source, Err: eris.New("lpb: root must be an object")}
	}
	return &Table{root: buildNode(doc, 0)}, nil
}

// buildNode converts a JSON object at the given depth. Levels above the
// area keep only object members; the area level keeps only the radii array.
func buildNode(obj gjson.Result, depth int) *node {
	n := &node{children: map[string]*node{}}

	if depth == pathDepth {
		field := obj.Get(RadiiField)
		if field.IsArray() {
			n.hasRadii = true
			n.radii = []float64{}
			for _, v := range field.Array() {
				// Non-numeric entries are dropped.
				if v.Type == gjson.Number {
					n.radii = append(n.radii, v.Float())
				}
			}
		}
		return n
	}

	obj.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			return true
		}
		k := key.String()
		if _, dup := n.children[k]; !dup {
			n.keys = append(n.keys, k)
		}
		n.children[k] = buildNode(value, depth+1)
		return true
	})
	return n
}

// walk follows path from the root and returns nil on the first missing key.
func (t *Table) walk(path ...string) *node {
	if t == nil || t.root == nil {
		return nil
	}
	n := t.root
	for _, k := range path {
		child, ok := n.children[k]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// Resolve returns the ring radii stored at subject/activity/terrain/area.
// The second result is false when any segment is missing or the area has
// no radii array. Values are returned as stored, in order.
func (t *Table) Resolve(subject, activity, terrain, area string) ([]float64, bool) {
	n := t.walk(subject, activity, terrain, area)
	if n == nil || !n.hasRadii {
		return nil, false
	}
	out := make([]float64, len(n.radii))
	copy(out, n.radii)
	return out, true
}

// Categories lists the subject categories in document order.
func (t *Table) Categories() []string {
	return t.keysAt()
}

// ActivitiesFor lists the activities under subject, or an empty list.
func (t *Table) ActivitiesFor(subject string) []string {
	return t.keysAt(subject)
}

// TerrainsFor lists the terrains under subject/activity, or an empty list.
func (t *Table) TerrainsFor(subject, activity string) []string {
	return t.keysAt(subject, activity)
}

// AreasFor lists the area types under subject/activity/terrain, or an empty list.
func (t *Table) AreasFor(subject, activity, terrain string) []string {
	return t.keysAt(subject, activity, terrain)
}

func (t *Table) keysAt(path ...string) []string {
	n := t.walk(path...)
	if n == nil {
		return []string{}
	}
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}
