package model

import (
	"sort"

	"github.com/radieske/quiniela-bet-platform/internal/quiniela/rules"
)

// MatchPrediction é a cobertura de um dos 15 jogos do boleto.
// Objeto de valor: imutável depois de construído; "alterar" é construir outro.
type MatchPrediction struct {
	MatchNumber     int
	HomeTeam        string
	AwayTeam        string
	coverageOptions []string
	multiplicity    int
}

// NewMatchPrediction valida e normaliza a cobertura de um jogo.
// As opções são deduplicadas por validação (duplicata é defeito, não é
// corrigida em silêncio) e ordenadas canonicamente, para que ["X","1"] e
// ["1","X"] sejam indistinguíveis daqui para frente.
func NewMatchPrediction(matchNumber int, homeTeam, awayTeam string, coverageOptions []string) (MatchPrediction, error) {
	if len(coverageOptions) == 0 {
		return MatchPrediction{}, defectf(DefectCoverageEmpty,
			"match %d: at least one outcome option is required", matchNumber)
	}
	if len(coverageOptions) > 3 {
		return MatchPrediction{}, defectf(DefectCoverageTooMany,
			"match %d: at most 3 outcome options (triple), got %d", matchNumber, len(coverageOptions))
	}

	seen := make(map[string]bool, 3)
	opts := make([]string, 0, len(coverageOptions))
	for _, o := range coverageOptions {
		if !rules.ValidOutcome(o) {
			return MatchPrediction{}, defectf(DefectCoverageBadSymbol,
				"match %d: option %q is not valid (use 1, X, 2)", matchNumber, o)
		}
		if seen[o] {
			return MatchPrediction{}, defectf(DefectCoverageDuplicate,
				"match %d: option %q repeated", matchNumber, o)
		}
		seen[o] = true
		opts = append(opts, o)
	}
	sort.Strings(opts)

	return MatchPrediction{
		MatchNumber:     matchNumber,
		HomeTeam:        homeTeam,
		AwayTeam:        awayTeam,
		coverageOptions: opts,
		multiplicity:    len(opts),
	}, nil
}

// CoverageOptions retorna as opções na ordem canônica.
func (p MatchPrediction) CoverageOptions() []string {
	out := make([]string, len(p.coverageOptions))
	copy(out, p.coverageOptions)
	return out
}

// Multiplicity é derivada do tamanho da cobertura: 1 simples, 2 doble, 3 triple.
func (p MatchPrediction) Multiplicity() int { return p.multiplicity }
