package service

import (
	"strings"

	"dreamtrip/internal/catalog"
	"dreamtrip/internal/model"
	"dreamtrip/internal/utils"
)

const entryBudgetCeiling = 30000

// Fallbacks used by explanation templates for empty preference fields
const (
	DefaultLifestyle = "adventurous"
	DefaultUsage     = "weekend trips"
	DefaultLocation  = "open"
)

// Match score bounds
const (
	MinMatchScore     = 1
	MaxMatchScore     = 5
	NeutralMatchScore = 3
)

// Recommender maps preferences onto a model of an injected catalog. It is
// stateless and safe for concurrent use.
type Recommender struct {
	catalog *catalog.Catalog
}

// NewRecommender creates a recommender over cat
func NewRecommender(cat *catalog.Catalog) *Recommender {
	return &Recommender{catalog: cat}
}

// Recommend runs the first-match-wins selection cascade:
// off-road, family, entry budget, truck, then the entry model.
func (r *Recommender) Recommend(prefs *model.Preferences) catalog.Model {
	p := normalized(prefs)
	roles := r.catalog.Roles()

	var id string
	switch {
	case strings.Contains(p.usage, "off") || strings.Contains(p.lifestyle, "adventure"):
		id = roles.OffRoad
	case strings.Contains(p.usage, "family") || strings.Contains(p.lifestyle, "family"):
		id = roles.Family
	case p.budgetOK && p.budget < entryBudgetCeiling:
		id = roles.Entry
	case utils.ContainsAny(p.usage, "haul", "work", "truck"):
		id = roles.Truck
	default:
		id = roles.Entry
	}

	m, _ := r.catalog.Get(id)
	return m
}

// ScoreAll returns a 1..5 match score per model id. modelID is the
// recommended model; it always scores exactly 5 and strictly dominates
// before normalization.
func (r *Recommender) ScoreAll(prefs *model.Preferences, modelID string) map[string]int {
	p := normalized(prefs)
	ids := r.catalog.IDs()

	raw := make(map[string]int, len(ids))
	for _, id := range ids {
		raw[id] = 0
	}

	for _, rule := range r.catalog.KeywordRules() {
		if utils.ContainsAny(p.field(rule.Field), rule.Keywords...) {
			for id, pts := range rule.Points {
				raw[id] += pts
			}
		}
	}
	if p.budgetOK {
		for _, rule := range r.catalog.BudgetRules() {
			if rule.Matches(p.budget) {
				for id, pts := range rule.Points {
					raw[id] += pts
				}
			}
		}
	}

	maxRaw := 0
	for _, v := range raw {
		if v > maxRaw {
			maxRaw = v
		}
	}

	scores := make(map[string]int, len(ids))
	_, known := raw[modelID]

	if maxRaw == 0 {
		for _, id := range ids {
			scores[id] = NeutralMatchScore
		}
		if known {
			scores[modelID] = MaxMatchScore
		}
		return scores
	}

	newMax := maxRaw
	if known {
		newMax = maxRaw + 2
		raw[modelID] = newMax
	}

	for _, id := range ids {
		s := int(roundHalfUp(float64(raw[id]) / float64(newMax) * MaxMatchScore))
		if s < MinMatchScore {
			s = MinMatchScore
		}
		scores[id] = s
	}
	if known {
		scores[modelID] = MaxMatchScore
	}
	return scores
}

// Explain renders the model's explanation template with the user's answers,
// substituting generic wording for empty fields.
func (r *Recommender) Explain(prefs *model.Preferences, modelID string) string {
	m, ok := r.catalog.Get(modelID)
	if !ok {
		m = catalog.Model{ID: modelID, Name: modelID}
	}

	tmpl := m.Analysis
	if tmpl == "" {
		tmpl = r.catalog.DefaultAnalysis()
	}

	var lifestyle, usage, location string
	if prefs != nil {
		lifestyle = strings.TrimSpace(prefs.Lifestyle)
		usage = strings.TrimSpace(prefs.Usage)
		location = strings.TrimSpace(prefs.Location)
	}

	return strings.NewReplacer(
		"{name}", m.Name,
		"{lifestyle}", orDefault(strings.ToLower(lifestyle), DefaultLifestyle),
		"{usage}", orDefault(strings.ToLower(usage), DefaultUsage),
		"{location}", orDefault(strings.ToLower(location), DefaultLocation),
	).Replace(tmpl)
}

// ScoreVector returns scores in catalog order
func (r *Recommender) ScoreVector(scores map[string]int) []float32 {
	ids := r.catalog.IDs()
	vec := make([]float32, len(ids))
	for i, id := range ids {
		vec[i] = float32(scores[id])
	}
	return vec
}

type normalizedPrefs struct {
	usage     string
	lifestyle string
	location  string
	budget    float64
	budgetOK  bool
}

func normalized(prefs *model.Preferences) normalizedPrefs {
	if prefs == nil {
		return normalizedPrefs{}
	}
	budget, err := ParseAmount(prefs.Budget)
	return normalizedPrefs{
		usage:     utils.Normalize(prefs.Usage),
		lifestyle: utils.Normalize(prefs.Lifestyle),
		location:  utils.Normalize(prefs.Location),
		budget:    budget,
		budgetOK:  err == nil,
	}
}

func (p normalizedPrefs) field(name string) string {
	switch name {
	case catalog.FieldUsage:
		return p.usage
	case catalog.FieldLifestyle:
		return p.lifestyle
	case catalog.FieldLocation:
		return p.location
	}
	return ""
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
