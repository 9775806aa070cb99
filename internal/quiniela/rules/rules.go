package rules

import "strings"

// Constantes oficiais da Quiniela (LAE, BOE-A-1998-17040).
// Valores monetários sempre em cêntimos de euro.
const (
	BaseBetPriceCents int64 = 75  // €0.75 por aposta simples
	Elige8FeeCents    int64 = 50  // €0.50 pela modalidade Elige 8
	MinTotalCostCents int64 = 150 // aposta mínima €1.50

	MinCombinations int64 = 2
	MaxCombinations int64 = 31104
)

// Símbolos válidos de resultado: vitória local, empate, vitória visitante.
const (
	OutcomeHome = "1"
	OutcomeDraw = "X"
	OutcomeAway = "2"
)

// ReductionTemplate é uma redução oficial pré-aprovada: combinação fixa de
// dobles/triples com preço tabelado (combinações × €0.75).
type ReductionTemplate struct {
	Name         string
	Triples      int
	Dobles       int
	Combinations int64
	PriceCents   int64
	Label        string
}

// officialReductions guarda as seis reduções na ordem declarada pela norma.
// Tabela imutável após a inicialização do processo; nada aqui pode ser
// recalculado a partir de estado mutável.
var officialReductions = []ReductionTemplate{
	{Name: "primera", Triples: 4, Dobles: 0, Combinations: 81, PriceCents: 6075, Label: "4 triples"},
	{Name: "segunda", Triples: 0, Dobles: 7, Combinations: 128, PriceCents: 9600, Label: "7 dobles"},
	{Name: "tercera", Triples: 3, Dobles: 3, Combinations: 216, PriceCents: 16200, Label: "3 dobles + 3 triples"},
	{Name: "cuarta", Triples: 2, Dobles: 6, Combinations: 576, PriceCents: 43200, Label: "2 triples + 6 dobles"},
	{Name: "quinta", Triples: 8, Dobles: 0, Combinations: 6561, PriceCents: 492075, Label: "8 triples"},
	{Name: "sexta", Triples: 0, Dobles: 11, Combinations: 2048, PriceCents: 153600, Label: "11 dobles"},
}

// All retorna as reduções oficiais na ordem declarada.
func All() []ReductionTemplate {
	out := make([]ReductionTemplate, len(officialReductions))
	copy(out, officialReductions)
	return out
}

// Lookup busca uma redução pelo nome (case-insensitive).
// Ausência não é erro: retorna ok=false.
func Lookup(name string) (ReductionTemplate, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, t := range officialReductions {
		if t.Name == n {
			return t, true
		}
	}
	return ReductionTemplate{}, false
}

// ValidOutcome informa se o símbolo pertence ao alfabeto {1, X, 2}.
func ValidOutcome(s string) bool {
	return s == OutcomeHome || s == OutcomeDraw || s == OutcomeAway
}

// EurosFromCents converte cêntimos para euros com duas casas decimais.
// Os preços oficiais são múltiplos inteiros de cêntimo, então a conversão
// é exata; o arredondamento (half-to-even) só existiria para valores fora
// da tabela oficial.
func EurosFromCents(c int64) float64 {
	return float64(c) / 100
}
