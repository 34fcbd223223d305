// Package catalog holds the read-only vehicle reference data used by the
// recommendation, pricing and deal calculations.
//
// A Catalog is built once (from the built-in defaults or a YAML file) and is
// never mutated afterwards; every accessor hands out copies.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"dreamtrip/internal/utils"
)

// ErrInvalidCatalog is returned when catalog data fails validation
var ErrInvalidCatalog = errors.New("invalid catalog")

// Preference fields a KeywordRule can inspect
const (
	FieldLifestyle = "lifestyle"
	FieldUsage     = "usage"
	FieldLocation  = "location"
)

// Specs holds the headline numbers shown for a model
type Specs struct {
	Horsepower int     `json:"horsepower" yaml:"horsepower"`
	MPG        int     `json:"mpg" yaml:"mpg"`
	Seating    int     `json:"seating" yaml:"seating"`
	Rating     float64 `json:"rating" yaml:"rating"`
}

// Model is a single catalog entry
type Model struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Tagline     string   `json:"tagline" yaml:"tagline"`
	Price       float64  `json:"price" yaml:"price"`
	Specs       Specs    `json:"specs" yaml:"specs"`
	FuelType    string   `json:"fuel_type,omitempty" yaml:"fuel_type"`
	VehicleType string   `json:"vehicle_type,omitempty" yaml:"vehicle_type"`
	Highlights  []string `json:"highlights" yaml:"highlights"`
	// Analysis is the explanation template. Supported placeholders:
	// {name}, {lifestyle}, {usage}, {location}.
	Analysis string `json:"-" yaml:"analysis"`
}

// Roles maps each outcome of the selection cascade to a model id
type Roles struct {
	OffRoad string `yaml:"off_road"`
	Family  string `yaml:"family"`
	Entry   string `yaml:"entry"`
	Truck   string `yaml:"truck"`
}

// KeywordRule awards points when a preference field contains any keyword
type KeywordRule struct {
	Field    string         `yaml:"field"`
	Keywords []string       `yaml:"keywords"`
	Points   map[string]int `yaml:"points"`
}

// BudgetRule awards points when the parsed budget is in [Min, Max).
// A zero Max means unbounded.
type BudgetRule struct {
	Min    float64        `yaml:"min"`
	Max    float64        `yaml:"max"`
	Points map[string]int `yaml:"points"`
}

// Matches reports whether budget falls inside the rule's range
func (r BudgetRule) Matches(budget float64) bool {
	if budget < r.Min {
		return false
	}
	return r.Max == 0 || budget < r.Max
}

// Package is a trim package offered during customization
type Package struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Price    float64  `json:"price" yaml:"price"`
	Features []string `json:"features" yaml:"features"`
}

// Extra is an individually priced accessory
type Extra struct {
	ID    string  `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Price float64 `json:"price" yaml:"price"`
}

// Color is a paint option; colors carry no price
type Color struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Hex  string `json:"hex" yaml:"hex"`
}

// File is the serialized form of a catalog
type File struct {
	Models          []Model       `yaml:"models"`
	Roles           Roles         `yaml:"roles"`
	DefaultAnalysis string        `yaml:"default_analysis"`
	KeywordRules    []KeywordRule `yaml:"keyword_rules"`
	BudgetRules     []BudgetRule  `yaml:"budget_rules"`
	Packages        []Package     `yaml:"packages"`
	Extras          []Extra       `yaml:"extras"`
	Colors          []Color       `yaml:"colors"`
}

// Catalog is the validated, immutable reference table
type Catalog struct {
	models          []Model
	index           map[string]int
	roles           Roles
	defaultAnalysis string
	keywordRules    []KeywordRule
	budgetRules     []BudgetRule
	packages        []Package
	extras          []Extra
	colors          []Color
}

// New validates f and builds a catalog from a deep copy of it
func New(f File) (*Catalog, error) {
	if len(f.Models) == 0 {
		return nil, fmt.Errorf("%w: no models", ErrInvalidCatalog)
	}

	c := &Catalog{
		index:           make(map[string]int, len(f.Models)),
		roles:           f.Roles,
		defaultAnalysis: f.DefaultAnalysis,
	}

	for _, m := range f.Models {
		if m.ID == "" || m.Name == "" {
			return nil, fmt.Errorf("%w: model with empty id or name", ErrInvalidCatalog)
		}
		if m.Price < 0 {
			return nil, fmt.Errorf("%w: model %s has negative price", ErrInvalidCatalog, m.ID)
		}
		if _, dup := c.index[m.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate model id %s", ErrInvalidCatalog, m.ID)
		}
		c.index[m.ID] = len(c.models)
		c.models = append(c.models, copyModel(m))
	}

	for role, id := range map[string]string{
		"off_road": f.Roles.OffRoad,
		"family":   f.Roles.Family,
		"entry":    f.Roles.Entry,
		"truck":    f.Roles.Truck,
	} {
		if _, ok := c.index[id]; !ok {
			return nil, fmt.Errorf("%w: role %s references unknown model %q", ErrInvalidCatalog, role, id)
		}
	}

	for _, r := range f.KeywordRules {
		switch r.Field {
		case FieldLifestyle, FieldUsage, FieldLocation:
		default:
			return nil, fmt.Errorf("%w: keyword rule on unknown field %q", ErrInvalidCatalog, r.Field)
		}
		if len(r.Keywords) == 0 {
			return nil, fmt.Errorf("%w: keyword rule on %s has no keywords", ErrInvalidCatalog, r.Field)
		}
		if err := c.checkPoints(r.Points); err != nil {
			return nil, err
		}
		kw := make([]string, len(r.Keywords))
		for i, k := range r.Keywords {
			kw[i] = strings.ToLower(k)
		}
		c.keywordRules = append(c.keywordRules, KeywordRule{Field: r.Field, Keywords: kw, Points: copyPoints(r.Points)})
	}

	for _, r := range f.BudgetRules {
		if r.Max != 0 && r.Max <= r.Min {
			return nil, fmt.Errorf("%w: budget rule max %.0f not above min %.0f", ErrInvalidCatalog, r.Max, r.Min)
		}
		if err := c.checkPoints(r.Points); err != nil {
			return nil, err
		}
		c.budgetRules = append(c.budgetRules, BudgetRule{Min: r.Min, Max: r.Max, Points: copyPoints(r.Points)})
	}

	seen := map[string]bool{}
	for _, p := range f.Packages {
		if p.ID == "" || seen["p:"+p.ID] {
			return nil, fmt.Errorf("%w: empty or duplicate package id %q", ErrInvalidCatalog, p.ID)
		}
		seen["p:"+p.ID] = true
		p.Features = append([]string(nil), p.Features...)
		c.packages = append(c.packages, p)
	}
	for _, e := range f.Extras {
		if e.ID == "" || seen["e:"+e.ID] {
			return nil, fmt.Errorf("%w: empty or duplicate extra id %q", ErrInvalidCatalog, e.ID)
		}
		seen["e:"+e.ID] = true
		c.extras = append(c.extras, e)
	}
	c.colors = append(c.colors, f.Colors...)

	return c, nil
}

func (c *Catalog) checkPoints(points map[string]int) error {
	if len(points) == 0 {
		return fmt.Errorf("%w: rule awards no points", ErrInvalidCatalog)
	}
	for id, p := range points {
		if _, ok := c.index[id]; !ok {
			return fmt.Errorf("%w: rule references unknown model %q", ErrInvalidCatalog, id)
		}
		if p != 1 && p != 2 {
			return fmt.Errorf("%w: rule awards %d points to %s (want 1 or 2)", ErrInvalidCatalog, p, id)
		}
	}
	return nil
}

// Models returns every model in catalog order
func (c *Catalog) Models() []Model {
	out := make([]Model, len(c.models))
	for i, m := range c.models {
		out[i] = copyModel(m)
	}
	return out
}

// IDs returns the model ids in catalog order
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.models))
	for i, m := range c.models {
		ids[i] = m.ID
	}
	return ids
}

// Len returns the number of models
func (c *Catalog) Len() int { return len(c.models) }

// Get looks a model up by id
func (c *Catalog) Get(id string) (Model, bool) {
	i, ok := c.index[id]
	if !ok {
		return Model{}, false
	}
	return copyModel(c.models[i]), true
}

// ByName looks a model up by display name. An exact case-insensitive match
// wins; otherwise spacing and punctuation are ignored ("Rav 4", "GR86").
func (c *Catalog) ByName(name string) (Model, bool) {
	name = strings.TrimSpace(name)
	for _, m := range c.models {
		if strings.EqualFold(m.Name, name) {
			return copyModel(m), true
		}
	}
	for _, m := range c.models {
		if utils.FuzzyMatchName(name, m.Name) {
			return copyModel(m), true
		}
	}
	return Model{}, false
}

// Resolve accepts either an id or a display name
func (c *Catalog) Resolve(idOrName string) (Model, bool) {
	if m, ok := c.Get(strings.TrimSpace(idOrName)); ok {
		return m, true
	}
	return c.ByName(idOrName)
}

// Roles returns the selection cascade targets
func (c *Catalog) Roles() Roles { return c.roles }

// DefaultAnalysis is the template used by models without their own
func (c *Catalog) DefaultAnalysis() string { return c.defaultAnalysis }

// KeywordRules returns the keyword scoring rules
func (c *Catalog) KeywordRules() []KeywordRule {
	out := make([]KeywordRule, len(c.keywordRules))
	for i, r := range c.keywordRules {
		out[i] = KeywordRule{Field: r.Field, Keywords: append([]string(nil), r.Keywords...), Points: copyPoints(r.Points)}
	}
	return out
}

// BudgetRules returns the budget scoring rules
func (c *Catalog) BudgetRules() []BudgetRule {
	out := make([]BudgetRule, len(c.budgetRules))
	for i, r := range c.budgetRules {
		out[i] = BudgetRule{Min: r.Min, Max: r.Max, Points: copyPoints(r.Points)}
	}
	return out
}

// Package looks a customization package up by id
func (c *Catalog) Package(id string) (Package, bool) {
	for _, p := range c.packages {
		if p.ID == id {
			p.Features = append([]string(nil), p.Features...)
			return p, true
		}
	}
	return Package{}, false
}

// Packages returns all customization packages
func (c *Catalog) Packages() []Package {
	out := make([]Package, len(c.packages))
	for i, p := range c.packages {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

// Extra looks an accessory up by id
func (c *Catalog) Extra(id string) (Extra, bool) {
	for _, e := range c.extras {
		if e.ID == id {
			return e, true
		}
	}
	return Extra{}, false
}

// Extras returns all accessories
func (c *Catalog) Extras() []Extra { return append([]Extra(nil), c.extras...) }

// Color looks a paint option up by id
func (c *Catalog) Color(id string) (Color, bool) {
	for _, col := range c.colors {
		if col.ID == id {
			return col, true
		}
	}
	return Color{}, false
}

// Colors returns all paint options
func (c *Catalog) Colors() []Color { return append([]Color(nil), c.colors...) }

func copyModel(m Model) Model {
	m.Highlights = append([]string(nil), m.Highlights...)
	return m
}

func copyPoints(p map[string]int) map[string]int {
	out := make(map[string]int, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
