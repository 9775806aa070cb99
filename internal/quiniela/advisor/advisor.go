// Package advisor é a superfície de recomendação sobre a tabela oficial de
// reduções: filtro por orçamento, ranking por eficiência e faixas de preço
// para apresentação. Sem estado; só leitura da tabela.
package advisor

import (
	"sort"

	"github.com/radieske/quiniela-bet-platform/internal/quiniela/rules"
)

// Faixas de orçamento para agrupamento das reduções (em cêntimos).
const (
	TierEconomical   = "economical"   // ≤ €100
	TierModerate     = "moderate"     // €100–500
	TierHigh         = "high"         // €500–2000
	TierProfessional = "professional" // > €2000

	tierEconomicalMax = 10000
	tierModerateMax   = 50000
	tierHighMax       = 200000
)

// Suggestion é uma redução oficial anotada com a métrica de eficiência
// usada no ranking: combinações por euro gasto.
type Suggestion struct {
	Template           rules.ReductionTemplate
	CombinationsPerEur float64
}

// Suggest lista as reduções que cabem no orçamento, da mais eficiente para
// a menos eficiente (combinações/€ decrescente). Empates preservam a ordem
// declarada da tabela — hoje todas as reduções têm a mesma eficiência
// (preço proporcional às combinações), então a ordem da tabela prevalece.
func Suggest(budgetCents int64) []Suggestion {
	var out []Suggestion
	for _, tpl := range rules.All() {
		if tpl.PriceCents <= budgetCents {
			out = append(out, Suggestion{
				Template:           tpl,
				CombinationsPerEur: float64(tpl.Combinations) / rules.EurosFromCents(tpl.PriceCents),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CombinationsPerEur > out[j].CombinationsPerEur
	})
	return out
}

// FilterByBudget devolve as reduções com custo ≤ maxCents, na ordem da tabela.
func FilterByBudget(maxCents int64) []rules.ReductionTemplate {
	var out []rules.ReductionTemplate
	for _, tpl := range rules.All() {
		if tpl.PriceCents <= maxCents {
			out = append(out, tpl)
		}
	}
	return out
}

// Tier classifica um custo na faixa de orçamento correspondente.
func Tier(costCents int64) string {
	switch {
	case costCents <= tierEconomicalMax:
		return TierEconomical
	case costCents <= tierModerateMax:
		return TierModerate
	case costCents <= tierHighMax:
		return TierHigh
	default:
		return TierProfessional
	}
}

// GroupByTier agrupa nomes de reduções por faixa de orçamento, para o
// caminho de relatório/recomendação.
func GroupByTier(templates []rules.ReductionTemplate) map[string][]string {
	groups := map[string][]string{
		TierEconomical:   {},
		TierModerate:     {},
		TierHigh:         {},
		TierProfessional: {},
	}
	for _, tpl := range templates {
		tier := Tier(tpl.PriceCents)
		groups[tier] = append(groups[tier], tpl.Name)
	}
	return groups
}
