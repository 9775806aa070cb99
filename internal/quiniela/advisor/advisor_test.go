package advisor

import (
	"math"
	"reflect"
	"testing"
)

func names(s []Suggestion) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = v.Template.Name
	}
	return out
}

func TestSuggest_FiltersByBudget(t *testing.T) {
	tests := []struct {
		budgetCents int64
		want        []string
	}{
		{0, nil},
		{6074, nil},
		{6075, []string{"primera"}},
		{10000, []string{"primera", "segunda"}},
		{50000, []string{"primera", "segunda", "tercera", "cuarta"}},
		{1000000, []string{"primera", "segunda", "tercera", "cuarta", "quinta", "sexta"}},
	}
	for _, tt := range tests {
		got := names(Suggest(tt.budgetCents))
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Suggest(%d) = %v, want %v", tt.budgetCents, got, tt.want)
		}
	}
}

func TestSuggest_EfficiencyMetric(t *testing.T) {
	// Preço oficial = combinações × €0.75, então toda redução rende
	// exatamente 4/3 combinações por euro; o ranking é estável na ordem
	// da tabela.
	for _, s := range Suggest(1000000) {
		if math.Abs(s.CombinationsPerEur-4.0/3.0) > 1e-9 {
			t.Errorf("%s: combinations/€ = %f, want 1.333...", s.Template.Name, s.CombinationsPerEur)
		}
	}
}

func TestFilterByBudget(t *testing.T) {
	got := FilterByBudget(16200)
	if len(got) != 3 {
		t.Fatalf("FilterByBudget(16200) returned %d templates, want 3", len(got))
	}
	if got[0].Name != "primera" || got[2].Name != "tercera" {
		t.Errorf("unexpected order: %v", got)
	}
}

func TestTier(t *testing.T) {
	tests := []struct {
		costCents int64
		want      string
	}{
		{75, TierEconomical},
		{10000, TierEconomical},
		{10001, TierModerate},
		{50000, TierModerate},
		{50001, TierHigh},
		{200000, TierHigh},
		{200001, TierProfessional},
		{492075, TierProfessional},
	}
	for _, tt := range tests {
		if got := Tier(tt.costCents); got != tt.want {
			t.Errorf("Tier(%d) = %q, want %q", tt.costCents, got, tt.want)
		}
	}
}

func TestGroupByTier(t *testing.T) {
	groups := GroupByTier(FilterByBudget(1000000))
	want := map[string][]string{
		TierEconomical:   {"primera", "segunda"},
		TierModerate:     {"tercera", "cuarta"},
		TierHigh:         {"sexta"},
		TierProfessional: {"quinta"},
	}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("GroupByTier = %v, want %v", groups, want)
	}
}
