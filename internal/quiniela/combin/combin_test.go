package combin

import "testing"

func repeat(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestTotalCombinations(t *testing.T) {
	tests := []struct {
		name  string
		mults []int
		want  int64
	}{
		{"all simple", repeat(1, 15), 1},
		{"one double one triple", append(repeat(1, 13), 2, 3), 6},
		{"mixed 2,3,1,2 rest simple", append([]int{2, 3, 1, 2}, repeat(1, 11)...), 12},
		{"seven doubles", append(repeat(2, 7), repeat(1, 8)...), 128},
		{"all doubles", repeat(2, 15), 32768},
		{"all triples", repeat(3, 15), 14348907},
		{"max allowed 2^7×3^5", append(repeat(2, 7), append(repeat(3, 5), repeat(1, 3)...)...), 31104},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalCombinations(tt.mults); got != tt.want {
				t.Errorf("TotalCombinations(%v) = %d, want %d", tt.mults, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		mults []int
		want  BetType
	}{
		{"all ones", repeat(1, 15), BetSimple},
		{"all twos", repeat(2, 15), BetReducedDoubles},
		{"all threes", repeat(3, 15), BetReducedTriples},
		{"4 triples = primera", append(repeat(3, 4), repeat(1, 11)...), "reduced_primera"},
		{"7 dobles = segunda", append(repeat(2, 7), repeat(1, 8)...), "reduced_segunda"},
		{"3+3 = tercera", append(repeat(2, 3), append(repeat(3, 3), repeat(1, 9)...)...), "reduced_tercera"},
		{"2 triples 6 dobles = cuarta", append(repeat(3, 2), append(repeat(2, 6), repeat(1, 7)...)...), "reduced_cuarta"},
		{"8 triples = quinta", append(repeat(3, 8), repeat(1, 7)...), "reduced_quinta"},
		{"11 dobles = sexta", append(repeat(2, 11), repeat(1, 4)...), "reduced_sexta"},
		{"1 doble 1 triple = multiple", append(repeat(1, 13), 2, 3), BetMultiple},
		{"5 dobles = multiple", append(repeat(2, 5), repeat(1, 10)...), BetMultiple},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.mults); got != tt.want {
				t.Errorf("Classify(%v) = %q, want %q", tt.mults, got, tt.want)
			}
		})
	}
}

// A posição dos dobles/triples no boleto não muda a classificação:
// só a contagem importa.
func TestClassifyIgnoresPosition(t *testing.T) {
	front := append(repeat(2, 7), repeat(1, 8)...)
	back := append(repeat(1, 8), repeat(2, 7)...)
	if a, b := Classify(front), Classify(back); a != b {
		t.Errorf("classification depends on position: %q vs %q", a, b)
	}
}

func TestCountDoblesTriples(t *testing.T) {
	d, tr := CountDoblesTriples([]int{1, 2, 3, 2, 1, 3, 3})
	if d != 2 || tr != 3 {
		t.Errorf("got (%d,%d), want (2,3)", d, tr)
	}
}

func TestBaseCostCents(t *testing.T) {
	tests := []struct {
		combinations int64
		wantCents    int64
	}{
		{1, 75},
		{6, 450},
		{128, 9600},
		{31104, 2332800},
	}
	for _, tt := range tests {
		if got := BaseCostCents(tt.combinations); got != tt.wantCents {
			t.Errorf("BaseCostCents(%d) = %d, want %d", tt.combinations, got, tt.wantCents)
		}
	}
}
