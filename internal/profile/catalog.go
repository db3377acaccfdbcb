package profile

import (
	_ "embed"
	"os"
	"sort"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed categories.yaml
var bundledCatalog []byte

// ActivityOption is an activity offered for a category.
type ActivityOption struct {
	Label       string `yaml:"label"`
	Description string `yaml:"description,omitempty"`
}

// Category is a subject category shown by the wizard.
type Category struct {
	Label             string           `yaml:"label"`
	Priority          int              `yaml:"priority"`
	DefaultActivities []ActivityOption `yaml:"default_activities"`
}

// Catalog is the ordered set of known categories.
type Catalog struct {
	Categories []Category `yaml:"categories"`
}

// CategoryLister lists the categories and activities present in a table.
type CategoryLister interface {
	Categories() []string
	ActivitiesFor(subject string) []string
}

// DefaultCatalog returns the bundled catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(bundledCatalog)
}

// LoadCatalog reads a catalog from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "profile: read catalog %s", path)
	}
	return ParseCatalog(data)
}

// ParseCatalog parses a catalog document with a top-level "catalog" key.
func ParseCatalog(data []byte) (*Catalog, error) {
	var wrapper struct {
		Catalog Catalog `yaml:"catalog"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrap(err, "profile: parse catalog")
	}

	seen := make(map[string]bool, len(wrapper.Catalog.Categories))
	for _, c := range wrapper.Catalog.Categories {
		if c.Label == "" {
			return nil, eris.New("profile: catalog category without label")
		}
		if seen[c.Label] {
			return nil, eris.Errorf("profile: duplicate catalog category %q", c.Label)
		}
		seen[c.Label] = true
	}
	return &wrapper.Catalog, nil
}

// Lookup returns the category with the given label.
func (c *Catalog) Lookup(label string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Label == label {
			return cat, true
		}
	}
	return Category{}, false
}

// ForTable returns the catalog categories present in the table, in table
// order. Table categories unknown to the catalog are left out.
func (c *Catalog) ForTable(table CategoryLister) []Category {
	var out []Category
	for _, label := range table.Categories() {
		if cat, ok := c.Lookup(label); ok {
			out = append(out, cat)
		}
	}
	return out
}

// Pick returns the highest-priority (lowest number) category among the
// selected labels. Unknown labels are ignored.
func (c *Catalog) Pick(labels ...string) (Category, bool) {
	var picked []Category
	for _, l := range labels {
		if cat, ok := c.Lookup(l); ok {
			picked = append(picked, cat)
		}
	}
	if len(picked) == 0 {
		return Category{}, false
	}
	sort.SliceStable(picked, func(i, j int) bool { return picked[i].Priority < picked[j].Priority })
	return picked[0], true
}

// ActivitiesFor lists the activities to offer for a category: the table's
// activities when it has any, else the category's defaults.
func (c *Catalog) ActivitiesFor(table CategoryLister, label string) []string {
	if acts := table.ActivitiesFor(label); len(acts) > 0 {
		return acts
	}
	cat, ok := c.Lookup(label)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(cat.DefaultActivities))
	for _, a := range cat.DefaultActivities {
		out = append(out, a.Label)
	}
	return out
}
