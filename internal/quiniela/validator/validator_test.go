package validator

import (
	"reflect"
	"strings"
	"testing"

	"github.com/radieske/quiniela-bet-platform/internal/quiniela/combin"
	"github.com/radieske/quiniela-bet-platform/internal/quiniela/model"
)

// slip monta um boleto de 15 jogos com as coberturas dadas por posição.
func slip(t *testing.T, coverage ...[]string) []model.MatchPrediction {
	t.Helper()
	if len(coverage) != 15 {
		t.Fatalf("slip helper needs 15 coverages, got %d", len(coverage))
	}
	preds := make([]model.MatchPrediction, 0, 15)
	for i, opts := range coverage {
		p, err := model.NewMatchPrediction(i+1, "Home", "Away", opts)
		if err != nil {
			t.Fatal(err)
		}
		preds = append(preds, p)
	}
	return preds
}

// coverages monta n1 coberturas opts1 e completa até 15 com rest.
// Com rest nil devolve só as n1 primeiras, para o chamador terminar de montar.
func coverages(n1 int, opts1 []string, rest []string) [][]string {
	out := make([][]string, 0, 15)
	for i := 0; i < n1; i++ {
		out = append(out, opts1)
	}
	if rest == nil {
		return out
	}
	for len(out) < 15 {
		out = append(out, rest)
	}
	return out
}

func hasErrorContaining(v Verdict, substr string) bool {
	for _, e := range v.Errors {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestValidate_TwoSimpleBetsEquivalent(t *testing.T) {
	// 1 doble: 2 combinações, €1.50, exatamente no piso.
	preds := slip(t, coverages(1, []string{"1", "X"}, []string{"1"})...)
	v := Validate(preds, nil)
	if !v.Valid {
		t.Fatalf("want valid, errors: %v", v.Errors)
	}
	if v.TotalCombinations != 2 || v.TotalCostCents != 150 {
		t.Errorf("got %d combinations / %d cents, want 2 / 150", v.TotalCombinations, v.TotalCostCents)
	}
	if v.BetType != combin.BetMultiple {
		t.Errorf("bet type = %q, want multiple", v.BetType)
	}
}

func TestValidate_SingleSimpleBelowMinimumStake(t *testing.T) {
	// Boleto 100% simples: 1 combinação = €0.75, abaixo do piso de €1.50
	// e abaixo do mínimo de 2 apostas. As duas violações aparecem juntas.
	preds := slip(t, coverages(15, []string{"1"}, nil)...)
	v := Validate(preds, nil)
	if v.Valid {
		t.Fatal("single simple bet must be invalid")
	}
	if !hasErrorContaining(v, "minimum stake") {
		t.Errorf("missing minimum stake error: %v", v.Errors)
	}
	if !hasErrorContaining(v, "minimum 2 bets") {
		t.Errorf("missing minimum combinations error: %v", v.Errors)
	}
	if v.BetType != combin.BetSimple {
		t.Errorf("bet type = %q, want simple", v.BetType)
	}
	if v.BaseCostCents != 75 {
		t.Errorf("base cost = %d, want 75", v.BaseCostCents)
	}
}

func TestValidate_MultipleScenario(t *testing.T) {
	// 13 simples + 1 doble + 1 triple → 6 combinações, €4.50, multiple.
	cov := coverages(13, []string{"1"}, nil)
	cov = append(cov, []string{"1", "X"}, []string{"1", "X", "2"})
	v := Validate(slip(t, cov...), nil)
	if !v.Valid {
		t.Fatalf("want valid, errors: %v", v.Errors)
	}
	if v.TotalCombinations != 6 {
		t.Errorf("combinations = %d, want 6", v.TotalCombinations)
	}
	if v.BaseCostCents != 450 {
		t.Errorf("base cost = %d cents, want 450", v.BaseCostCents)
	}
	if v.BetType != combin.BetMultiple {
		t.Errorf("bet type = %q, want multiple", v.BetType)
	}
	if len(v.Warnings) != 0 {
		t.Errorf("unexpected warnings under advisory thresholds: %v", v.Warnings)
	}
}

func TestValidate_SevenDoublesMatchesOfficialTemplate(t *testing.T) {
	v := Validate(slip(t, coverages(7, []string{"1", "X"}, []string{"1"})...), nil)
	if !v.Valid {
		t.Fatalf("want valid, errors: %v", v.Errors)
	}
	if v.BetType != "reduced_segunda" {
		t.Errorf("bet type = %q, want reduced_segunda", v.BetType)
	}
	if v.TotalCombinations != 128 || v.BaseCostCents != 9600 {
		t.Errorf("got %d combinations / %d cents, want 128 / 9600", v.TotalCombinations, v.BaseCostCents)
	}
}

func TestValidate_AllTriplesExceedsMaximum(t *testing.T) {
	v := Validate(slip(t, coverages(15, []string{"1", "X", "2"}, nil)...), nil)
	if v.Valid {
		t.Fatal("3^15 combinations must be invalid")
	}
	if v.TotalCombinations != 14348907 {
		t.Errorf("combinations = %d, want 14348907", v.TotalCombinations)
	}
	if !hasErrorContaining(v, "maximum 31104 bets") {
		t.Errorf("missing maximum combinations error: %v", v.Errors)
	}
	// Avisos continuam sendo calculados mesmo com o boleto inválido.
	if len(v.Warnings) == 0 {
		t.Error("high risk warning expected even on invalid slip")
	}
}

func TestValidate_MaximumBoundaryAccepted(t *testing.T) {
	// 2^7 × 3^5 = 31104, exatamente o teto.
	cov := coverages(7, []string{"1", "X"}, nil)
	for i := 0; i < 5; i++ {
		cov = append(cov, []string{"1", "X", "2"})
	}
	for len(cov) < 15 {
		cov = append(cov, []string{"1"})
	}
	v := Validate(slip(t, cov...), nil)
	if !v.Valid {
		t.Fatalf("31104 combinations is within bounds, errors: %v", v.Errors)
	}
	if v.TotalCombinations != 31104 {
		t.Errorf("combinations = %d, want 31104", v.TotalCombinations)
	}
}

func TestValidate_SlotCountAndNumbering(t *testing.T) {
	// 14 jogos, com o jogo 3 repetido e o 15 ausente.
	preds := make([]model.MatchPrediction, 0, 14)
	for i := 1; i <= 13; i++ {
		p, _ := model.NewMatchPrediction(i, "H", "A", []string{"1"})
		preds = append(preds, p)
	}
	dup, _ := model.NewMatchPrediction(3, "H", "A", []string{"1"})
	preds = append(preds, dup)

	v := Validate(preds, nil)
	if v.Valid {
		t.Fatal("malformed slip must be invalid")
	}
	if !hasErrorContaining(v, "exactly 15 matches") {
		t.Errorf("missing slot count error: %v", v.Errors)
	}
	if !hasErrorContaining(v, "missing matches: [14 15]") {
		t.Errorf("missing missing-numbers error: %v", v.Errors)
	}
	if !hasErrorContaining(v, "duplicate or out-of-range matches: [3]") {
		t.Errorf("missing duplicate-numbers error: %v", v.Errors)
	}
}

func TestValidate_Elige8FeeApplied(t *testing.T) {
	preds := slip(t, coverages(1, []string{"1", "X"}, []string{"1"})...)
	cfg, err := model.NewElige8Config(true,
		[]int{1, 2, 3, 4, 5, 6, 7, 8},
		[]string{"1", "X", "2", "1", "X", "2", "1", "X"})
	if err != nil {
		t.Fatal(err)
	}
	v := Validate(preds, &cfg)
	if !v.Valid {
		t.Fatalf("want valid, errors: %v", v.Errors)
	}
	if v.Elige8CostCents != 50 {
		t.Errorf("elige 8 cost = %d, want 50", v.Elige8CostCents)
	}
	if v.TotalCostCents != 200 {
		t.Errorf("total cost = %d, want 150+50", v.TotalCostCents)
	}
}

func TestValidate_Elige8MissingMatchReported(t *testing.T) {
	// Boleto sem o jogo 9 (substituído por um 8 duplicado): o Elige 8 que
	// seleciona o 9 precisa reportar o jogo ausente por número.
	preds := make([]model.MatchPrediction, 0, 15)
	for i := 1; i <= 15; i++ {
		n := i
		if i == 9 {
			n = 8
		}
		p, _ := model.NewMatchPrediction(n, "H", "A", []string{"1", "X"})
		preds = append(preds, p)
	}
	cfg, err := model.NewElige8Config(true,
		[]int{2, 4, 6, 8, 9, 10, 12, 14},
		[]string{"1", "1", "1", "1", "1", "1", "1", "1"})
	if err != nil {
		t.Fatal(err)
	}
	v := Validate(preds, &cfg)
	if v.Valid {
		t.Fatal("broken referential integrity must invalidate the slip")
	}
	if !hasErrorContaining(v, "match 9 is not part of the quiniela") {
		t.Errorf("missing referential error: %v", v.Errors)
	}
}

func TestValidate_HighRiskAndReductionWarnings(t *testing.T) {
	// 11 dobles = 2048 combinações: alto risco, mas casa com a redução
	// oficial sexta, então não sugere redução (já é uma).
	v := Validate(slip(t, coverages(11, []string{"1", "X"}, []string{"1"})...), nil)
	if v.BetType != "reduced_sexta" {
		t.Fatalf("bet type = %q, want reduced_sexta", v.BetType)
	}
	if len(v.Warnings) != 1 || !strings.Contains(v.Warnings[0], "high risk") {
		t.Errorf("want only the high risk warning, got %v", v.Warnings)
	}

	// 8 dobles = 256 combinações: multiple acima de 100, sugere redução.
	v = Validate(slip(t, coverages(8, []string{"1", "X"}, []string{"1"})...), nil)
	if v.BetType != combin.BetMultiple {
		t.Fatalf("bet type = %q, want multiple", v.BetType)
	}
	found := false
	for _, w := range v.Warnings {
		if strings.Contains(w, "official reduction") {
			found = true
		}
	}
	if !found {
		t.Errorf("missing reduction suggestion: %v", v.Warnings)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	cov := coverages(5, []string{"1", "X", "2"}, []string{"1"})
	cfg, _ := model.NewElige8Config(true,
		[]int{1, 2, 3, 4, 5, 6, 7, 8},
		[]string{"1", "X", "2", "1", "X", "2", "1", "X"})
	a := Validate(slip(t, cov...), &cfg)
	b := Validate(slip(t, cov...), &cfg)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("verdicts differ between identical runs:\n%+v\n%+v", a, b)
	}
}
