package model

import "github.com/radieske/quiniela-bet-platform/internal/quiniela/rules"

// Elige8Matches é o número fixo de jogos cobertos pela modalidade.
const Elige8Matches = 8

// Elige8Config é a aposta adicional opcional sobre 8 dos 15 jogos.
// Ou totalmente desligada, ou totalmente preenchida.
type Elige8Config struct {
	Enabled         bool
	SelectedMatches []int
	OutcomePicks    []string
}

// NewElige8Config valida a forma da configuração. A checagem referencial
// (cada jogo selecionado existir entre os 15 do boleto) fica com o validator,
// que é quem enxerga o boleto inteiro.
func NewElige8Config(enabled bool, selectedMatches []int, outcomePicks []string) (Elige8Config, error) {
	if !enabled {
		if len(selectedMatches) != 0 || len(outcomePicks) != 0 {
			return Elige8Config{}, defectf(DefectElige8NotEmpty,
				"elige 8 disabled: selected matches and picks must be empty")
		}
		return Elige8Config{}, nil
	}

	if len(selectedMatches) != Elige8Matches {
		return Elige8Config{}, defectf(DefectElige8MatchCount,
			"elige 8 requires exactly %d matches, got %d", Elige8Matches, len(selectedMatches))
	}
	seen := make(map[int]bool, Elige8Matches)
	for _, m := range selectedMatches {
		if m < 1 || m > 15 {
			return Elige8Config{}, defectf(DefectElige8MatchRange,
				"elige 8: match %d out of range [1,15]", m)
		}
		if seen[m] {
			return Elige8Config{}, defectf(DefectElige8MatchDup,
				"elige 8: match %d repeated", m)
		}
		seen[m] = true
	}

	if len(outcomePicks) != Elige8Matches {
		return Elige8Config{}, defectf(DefectElige8PickCount,
			"elige 8 requires exactly %d picks, got %d", Elige8Matches, len(outcomePicks))
	}
	for i, p := range outcomePicks {
		if !rules.ValidOutcome(p) {
			return Elige8Config{}, defectf(DefectElige8BadPick,
				"elige 8 pick %d: %q is not valid (use 1, X, 2)", i+1, p)
		}
	}

	cfg := Elige8Config{
		Enabled:         true,
		SelectedMatches: append([]int(nil), selectedMatches...),
		OutcomePicks:    append([]string(nil), outcomePicks...),
	}
	return cfg, nil
}
