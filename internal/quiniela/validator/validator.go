// Package validator roda a validação completa de um boleto: estrutura,
// combinatória, Elige 8 e custos, acumulando todos os defeitos detectáveis
// em vez de parar no primeiro. Uma chamada, um veredito; nada persiste
// entre chamadas.
package validator

import (
	"fmt"
	"sort"

	"github.com/radieske/quiniela-bet-platform/internal/quiniela/combin"
	"github.com/radieske/quiniela-bet-platform/internal/quiniela/model"
	"github.com/radieske/quiniela-bet-platform/internal/quiniela/rules"
)

// SlipMatches é o número de jogos de um boleto de Quiniela.
const SlipMatches = 15

// Limiares de aviso (não bloqueiam o boleto).
const (
	highRiskCombinations  = 1000
	suggestReductionAbove = 100
)

// Verdict é o resultado completo de uma validação. Imutável: ou a validação
// roda até o fim e devolve tudo preenchido, ou não devolve nada.
type Verdict struct {
	Valid             bool
	TotalCombinations int64
	BaseCostCents     int64
	Elige8CostCents   int64
	TotalCostCents    int64
	BetType           combin.BetType
	Errors            []string
	Warnings          []string
}

// Validate executa a passada única de validação:
// estrutura → combinatória → Elige 8 → veredito.
// Determinística: a mesma entrada produz sempre o mesmo veredito.
func Validate(predictions []model.MatchPrediction, elige8 *model.Elige8Config) Verdict {
	var errs, warns []string

	// Estrutura: exatamente 15 jogos, numerados {1..15} sem furo nem repetição.
	if len(predictions) != SlipMatches {
		errs = append(errs, fmt.Sprintf("quiniela must have exactly %d matches, got %d", SlipMatches, len(predictions)))
	}

	counts := make(map[int]int, SlipMatches)
	for _, p := range predictions {
		counts[p.MatchNumber]++
	}
	var missing, extraneous []int
	for n := 1; n <= SlipMatches; n++ {
		if counts[n] == 0 {
			missing = append(missing, n)
		}
	}
	for n, c := range counts {
		if n < 1 || n > SlipMatches || c > 1 {
			extraneous = append(extraneous, n)
		}
	}
	sort.Ints(extraneous)
	if len(missing) > 0 {
		errs = append(errs, fmt.Sprintf("missing matches: %v", missing))
	}
	if len(extraneous) > 0 {
		errs = append(errs, fmt.Sprintf("duplicate or out-of-range matches: %v", extraneous))
	}

	// Multiplicidade por jogo: o modelo já garante 1..3 na construção,
	// mas o invariante é barato de reconferir aqui.
	multiplicities := make([]int, 0, len(predictions))
	for _, p := range predictions {
		m := p.Multiplicity()
		multiplicities = append(multiplicities, m)
		if m < 1 || m > 3 || m != len(p.CoverageOptions()) {
			errs = append(errs, fmt.Sprintf("match %d: invalid multiplicity %d", p.MatchNumber, m))
		}
	}

	// Combinatória: produto exato + limites regulatórios. Abaixo do mínimo
	// e acima do máximo são condições distintas, reportadas separadamente.
	total := combin.TotalCombinations(multiplicities)
	if total < rules.MinCombinations {
		errs = append(errs, fmt.Sprintf("minimum %d bets required, got %d", rules.MinCombinations, total))
	}
	if total > rules.MaxCombinations {
		errs = append(errs, fmt.Sprintf("maximum %d bets allowed, got %d", rules.MaxCombinations, total))
	}
	betType := combin.Classify(multiplicities)

	// Elige 8: reconfere a forma (defesa em profundidade) e a integridade
	// referencial contra os jogos do boleto.
	elige8Enabled := elige8 != nil && elige8.Enabled
	if elige8Enabled {
		errs = append(errs, checkElige8(elige8, predictions)...)
	}

	// Custos e veredito.
	baseCost := combin.BaseCostCents(total)
	var elige8Cost int64
	if elige8Enabled {
		elige8Cost = rules.Elige8FeeCents
	}
	totalCost := baseCost + elige8Cost
	if totalCost < rules.MinTotalCostCents {
		errs = append(errs, fmt.Sprintf("minimum stake is €%.2f, got €%.2f",
			rules.EurosFromCents(rules.MinTotalCostCents), rules.EurosFromCents(totalCost)))
	}

	// Avisos são consultivos: calculados sempre, nunca mudam Valid.
	if total > highRiskCombinations {
		warns = append(warns, fmt.Sprintf("high risk bet: %d combinations (€%.2f)",
			total, rules.EurosFromCents(baseCost)))
	}
	if betType == combin.BetMultiple && total > suggestReductionAbove {
		warns = append(warns, "consider an official reduction to optimize coverage vs cost")
	}

	return Verdict{
		Valid:             len(errs) == 0,
		TotalCombinations: total,
		BaseCostCents:     baseCost,
		Elige8CostCents:   elige8Cost,
		TotalCostCents:    totalCost,
		BetType:           betType,
		Errors:            errs,
		Warnings:          warns,
	}
}

func checkElige8(cfg *model.Elige8Config, predictions []model.MatchPrediction) []string {
	var errs []string

	if len(cfg.SelectedMatches) != model.Elige8Matches {
		errs = append(errs, fmt.Sprintf("elige 8 requires exactly %d matches, got %d",
			model.Elige8Matches, len(cfg.SelectedMatches)))
	}
	if len(cfg.OutcomePicks) != model.Elige8Matches {
		errs = append(errs, fmt.Sprintf("elige 8 requires exactly %d picks, got %d",
			model.Elige8Matches, len(cfg.OutcomePicks)))
	}
	for i, p := range cfg.OutcomePicks {
		if !rules.ValidOutcome(p) {
			errs = append(errs, fmt.Sprintf("elige 8 pick %d: %q is not valid (use 1, X, 2)", i+1, p))
		}
	}

	known := make(map[int]bool, len(predictions))
	for _, p := range predictions {
		known[p.MatchNumber] = true
	}
	for _, m := range cfg.SelectedMatches {
		if !known[m] {
			errs = append(errs, fmt.Sprintf("elige 8: match %d is not part of the quiniela", m))
		}
	}
	return errs
}
