// Package combin concentra a aritmética do boleto: expansão combinatória,
// classificação no tipo oficial de aposta e custo base. Funções puras sobre
// a lista de multiplicidades (1..3 por jogo); nenhum I/O, nenhum estado.
package combin

import "github.com/radieske/quiniela-bet-platform/internal/quiniela/rules"

// BetType é a etiqueta oficial da modalidade da aposta.
type BetType string

const (
	BetSimple         BetType = "simple"
	BetReducedDoubles BetType = "reduced_doubles"
	BetReducedTriples BetType = "reduced_triples"
	BetMultiple       BetType = "multiple"
	// Reduções oficiais viram "reduced_<nome>" (reduced_primera, ...).
)

// TotalCombinations é o produto exato das multiplicidades.
// O máximo do domínio é 3^15 = 14.348.907, bem dentro de int64, então o
// produto é exato sem aritmética arbitrária — nunca aproximado ou truncado.
func TotalCombinations(multiplicities []int) int64 {
	total := int64(1)
	for _, m := range multiplicities {
		total *= int64(m)
	}
	return total
}

// Classify decide o tipo de aposta. Ordem de decisão, primeira que casar:
//  1. todas as multiplicidades 1 → simple
//  2. todas 2 → reduced_doubles; todas 3 → reduced_triples
//  3. o par exato (dobles, triples) igual ao de uma redução oficial →
//     reduced_<nome>; empate entre reduções resolve pela ordem declarada
//     da tabela (hoje nenhum par se repete, mas o desempate é contrato)
//  4. senão → multiple
func Classify(multiplicities []int) BetType {
	if len(multiplicities) == 0 {
		return BetMultiple
	}

	allEqual := true
	for _, m := range multiplicities[1:] {
		if m != multiplicities[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		switch multiplicities[0] {
		case 1:
			return BetSimple
		case 2:
			return BetReducedDoubles
		case 3:
			return BetReducedTriples
		}
	}

	dobles, triples := CountDoblesTriples(multiplicities)
	for _, tpl := range rules.All() {
		if tpl.Dobles == dobles && tpl.Triples == triples {
			return BetType("reduced_" + tpl.Name)
		}
	}
	return BetMultiple
}

// CountDoblesTriples conta quantos jogos têm cobertura dupla e tripla.
func CountDoblesTriples(multiplicities []int) (dobles, triples int) {
	for _, m := range multiplicities {
		switch m {
		case 2:
			dobles++
		case 3:
			triples++
		}
	}
	return dobles, triples
}

// BaseCostCents é o custo base em cêntimos: combinações × preço unitário.
// Com preço unitário inteiro em cêntimos o produto é exato; não há
// arredondamento intermediário.
func BaseCostCents(totalCombinations int64) int64 {
	return totalCombinations * rules.BaseBetPriceCents
}
