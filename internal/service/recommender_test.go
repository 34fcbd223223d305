package service

import (
	"strings"
	"testing"

	"dreamtrip/internal/catalog"
	"dreamtrip/internal/model"
)

func TestRecommender_Recommend(t *testing.T) {
	r := NewRecommender(catalog.Default())

	tests := []struct {
		name  string
		prefs *model.Preferences
		want  string
	}{
		{name: "Off-road usage ignores budget", prefs: &model.Preferences{Usage: "Off-road trails", Budget: model.NumberAmount(20000)}, want: catalog.RAV4},
		{name: "Adventure lifestyle", prefs: &model.Preferences{Lifestyle: "Adventure seeker", Usage: "family"}, want: catalog.RAV4},
		{name: "Family usage", prefs: &model.Preferences{Usage: "Family hauling", Budget: model.TextAmount("$20,000")}, want: catalog.Highlander},
		{name: "Family lifestyle", prefs: &model.Preferences{Lifestyle: "FAMILY"}, want: catalog.Highlander},
		{name: "Low budget beats truck keywords", prefs: &model.Preferences{Usage: "work truck", Budget: model.TextAmount("$25,000")}, want: catalog.Camry},
		{name: "Truck usage", prefs: &model.Preferences{Usage: "work truck", Budget: model.NumberAmount(45000)}, want: catalog.Tacoma},
		{name: "Negative numeric budget is below the entry ceiling", prefs: &model.Preferences{Usage: "work truck", Budget: model.NumberAmount(-5000)}, want: catalog.Camry},
		{name: "Truck usage with unparsable budget", prefs: &model.Preferences{Usage: "haul", Budget: model.TextAmount("")}, want: catalog.Tacoma},
		{name: "Default", prefs: &model.Preferences{Usage: "daily", Budget: model.NumberAmount(50000)}, want: catalog.Camry},
		{name: "Empty", prefs: &model.Preferences{}, want: catalog.Camry},
		{name: "Nil", prefs: nil, want: catalog.Camry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Recommend(tt.prefs); got.ID != tt.want {
				t.Errorf("Recommend() = %s, want %s", got.ID, tt.want)
			}
		})
	}
}

func TestRecommender_EntryBudgetBelowCeiling(t *testing.T) {
	r := NewRecommender(catalog.Default())

	for _, budget := range []float64{0, 1, 15000, 29999.99} {
		p := &model.Preferences{Usage: "commute", Lifestyle: "city", Budget: model.NumberAmount(budget)}
		if got := r.Recommend(p); got.ID != catalog.Camry {
			t.Errorf("budget %v: Recommend() = %s, want camry", budget, got.ID)
		}
	}
}

func TestRecommender_ScoreAll_RecommendedScoresFive(t *testing.T) {
	r := NewRecommender(catalog.Default())

	prefsList := []*model.Preferences{
		nil,
		{},
		{Usage: "off-road", Lifestyle: "adventure", Location: "rural", Budget: model.NumberAmount(35000)},
		{Usage: "family trips", Location: "suburban", Budget: model.TextAmount("$42,000")},
		{Usage: "work truck", Budget: model.NumberAmount(60000)},
		{Lifestyle: "sport performance", Location: "city", Budget: model.TextAmount("abc")},
	}

	for _, p := range prefsList {
		rec := r.Recommend(p)
		scores := r.ScoreAll(p, rec.ID)

		if len(scores) != catalog.Default().Len() {
			t.Fatalf("ScoreAll() returned %d scores, want one per model", len(scores))
		}
		fives := 0
		for id, s := range scores {
			if s < MinMatchScore || s > MaxMatchScore {
				t.Errorf("score for %s = %d out of range", id, s)
			}
			if s == MaxMatchScore {
				fives++
			}
		}
		if scores[rec.ID] != MaxMatchScore {
			t.Errorf("recommended %s scored %d, want 5", rec.ID, scores[rec.ID])
		}
		if fives != 1 {
			t.Errorf("%d models scored 5, want exactly 1 (prefs %+v)", fives, p)
		}
	}
}

func TestRecommender_ScoreAll_AllZero(t *testing.T) {
	r := NewRecommender(catalog.Default())

	scores := r.ScoreAll(&model.Preferences{}, catalog.Camry)
	for id, s := range scores {
		want := NeutralMatchScore
		if id == catalog.Camry {
			want = MaxMatchScore
		}
		if s != want {
			t.Errorf("score for %s = %d, want %d", id, s, want)
		}
	}
}

func TestRecommender_ScoreAll_Normalization(t *testing.T) {
	r := NewRecommender(catalog.Default())
	p := &model.Preferences{Usage: "off-road", Lifestyle: "adventure", Location: "rural", Budget: model.NumberAmount(35000)}

	// raw: rav4 6 (forced to 8), 4runner 3, tacoma 3, tacoma trd pro 1,
	// highlander 1, bz4x 1, everything else 0
	scores := r.ScoreAll(p, catalog.RAV4)

	want := map[string]int{
		catalog.RAV4:         5,
		catalog.FourRunner:   2,
		catalog.Tacoma:       2,
		catalog.TacomaTRDPro: 1,
		catalog.Highlander:   1,
		catalog.BZ4X:         1,
		catalog.Camry:        1,
		catalog.Supra:        1,
	}
	for id, w := range want {
		if scores[id] != w {
			t.Errorf("score for %s = %d, want %d", id, scores[id], w)
		}
	}
}

func TestRecommender_ScoreAll_UnknownModel(t *testing.T) {
	r := NewRecommender(catalog.Default())

	// raw: rav4 2, 4runner 1, tacoma trd pro 1; nothing is forced or pinned
	scores := r.ScoreAll(&model.Preferences{Usage: "off"}, "cybertruck")

	if _, ok := scores["cybertruck"]; ok {
		t.Error("unknown model should not be scored")
	}
	if scores[catalog.RAV4] != 5 || scores[catalog.FourRunner] != 3 || scores[catalog.Camry] != 1 {
		t.Errorf("unexpected scores: rav4=%d 4runner=%d camry=%d",
			scores[catalog.RAV4], scores[catalog.FourRunner], scores[catalog.Camry])
	}
}

func TestRecommender_Explain(t *testing.T) {
	r := NewRecommender(catalog.Default())

	t.Run("Defaults for empty fields", func(t *testing.T) {
		got := r.Explain(&model.Preferences{}, catalog.Camry)
		for _, want := range []string{"weekend trips", "adventurous", "open", "Camry"} {
			if !strings.Contains(got, want) {
				t.Errorf("Explain() = %q, missing %q", got, want)
			}
		}
	})

	t.Run("Interpolates answers", func(t *testing.T) {
		got := r.Explain(&model.Preferences{Usage: "Weekend Camping", Lifestyle: "Outdoorsy", Location: "Mountain"}, catalog.RAV4)
		for _, want := range []string{"weekend camping", "outdoorsy", "mountain"} {
			if !strings.Contains(got, want) {
				t.Errorf("Explain() = %q, missing %q", got, want)
			}
		}
		if strings.Contains(got, "{") {
			t.Errorf("Explain() left a placeholder: %q", got)
		}
	})

	t.Run("Default template for models without one", func(t *testing.T) {
		got := r.Explain(nil, catalog.Supra)
		want := "The Supra is a strong match for a adventurous lifestyle built around weekend trips on open roads."
		if got != want {
			t.Errorf("Explain() = %q, want %q", got, want)
		}
	})
}

func alternateCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.File{
		Models: []catalog.Model{
			{ID: "scout", Name: "Scout", Price: 30000, Analysis: "{name} for {usage}"},
			{ID: "hauler", Name: "Hauler", Price: 50000},
			{ID: "mini", Name: "Mini", Price: 18000},
		},
		Roles:           catalog.Roles{OffRoad: "scout", Family: "hauler", Entry: "mini", Truck: "hauler"},
		DefaultAnalysis: "{name}!",
		KeywordRules: []catalog.KeywordRule{
			{Field: catalog.FieldUsage, Keywords: []string{"off"}, Points: map[string]int{"scout": 2}},
			{Field: catalog.FieldLocation, Keywords: []string{"farm"}, Points: map[string]int{"hauler": 2, "scout": 1}},
		},
		BudgetRules: []catalog.BudgetRule{{Min: 0, Max: 30000, Points: map[string]int{"mini": 2}}},
	})
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return c
}

func TestRecommender_AlternateCatalog(t *testing.T) {
	r := NewRecommender(alternateCatalog(t))

	p := &model.Preferences{Usage: "work", Location: "farm", Budget: model.NumberAmount(60000)}
	rec := r.Recommend(p)
	if rec.ID != "hauler" {
		t.Fatalf("Recommend() = %s, want hauler", rec.ID)
	}

	// raw: hauler 2 (forced to 4), scout 1, mini 0
	scores := r.ScoreAll(p, rec.ID)
	want := map[string]int{"hauler": 5, "scout": 1, "mini": 1}
	for id, w := range want {
		if scores[id] != w {
			t.Errorf("score for %s = %d, want %d", id, scores[id], w)
		}
	}

	if got := r.Explain(p, "scout"); got != "Scout for work" {
		t.Errorf("Explain(scout) = %q", got)
	}
	if got := r.Explain(p, "mini"); got != "Mini!" {
		t.Errorf("Explain(mini) = %q", got)
	}

	if vec := r.ScoreVector(scores); len(vec) != 3 || vec[1] != 5 {
		t.Errorf("ScoreVector() = %v, want hauler at index 1 scored 5", vec)
	}
}
