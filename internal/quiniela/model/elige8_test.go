package model

import (
	"errors"
	"testing"
)

func picks(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "1"
	}
	return out
}

func TestNewElige8Config_Disabled(t *testing.T) {
	cfg, err := NewElige8Config(false, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Enabled {
		t.Error("disabled config must stay disabled")
	}

	_, err = NewElige8Config(false, []int{1}, nil)
	var sd *StructuralDefect
	if !errors.As(err, &sd) || sd.Code != DefectElige8NotEmpty {
		t.Errorf("disabled config with leftover matches: got %v, want %s", err, DefectElige8NotEmpty)
	}
}

func TestNewElige8Config_Defects(t *testing.T) {
	tests := []struct {
		name     string
		matches  []int
		picks    []string
		wantCode string
	}{
		{"seven matches", []int{1, 2, 3, 4, 5, 6, 7}, picks(8), DefectElige8MatchCount},
		{"nine matches", []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, picks(8), DefectElige8MatchCount},
		{"match 16", []int{1, 2, 3, 4, 5, 6, 7, 16}, picks(8), DefectElige8MatchRange},
		{"match 0", []int{0, 2, 3, 4, 5, 6, 7, 8}, picks(8), DefectElige8MatchRange},
		{"duplicate match", []int{1, 1, 3, 4, 5, 6, 7, 8}, picks(8), DefectElige8MatchDup},
		{"seven picks", []int{1, 2, 3, 4, 5, 6, 7, 8}, picks(7), DefectElige8PickCount},
		{"bad pick", []int{1, 2, 3, 4, 5, 6, 7, 8}, []string{"1", "X", "2", "1", "X", "2", "1", "M"}, DefectElige8BadPick},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewElige8Config(true, tt.matches, tt.picks)
			var sd *StructuralDefect
			if !errors.As(err, &sd) {
				t.Fatalf("want StructuralDefect, got %v", err)
			}
			if sd.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", sd.Code, tt.wantCode)
			}
		})
	}
}

func TestNewElige8Config_Valid(t *testing.T) {
	matches := []int{1, 3, 5, 7, 9, 11, 13, 15}
	pk := []string{"1", "X", "2", "1", "X", "2", "1", "X"}
	cfg, err := NewElige8Config(true, matches, pk)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Enabled || len(cfg.SelectedMatches) != 8 || len(cfg.OutcomePicks) != 8 {
		t.Errorf("unexpected config: %+v", cfg)
	}

	// entrada não pode ser aliased pela config
	matches[0] = 99
	if cfg.SelectedMatches[0] != 1 {
		t.Error("config must copy its input slices")
	}
}
