package dto

// PredictionSpec é a cobertura de um jogo como chega do cliente.
type PredictionSpec struct {
	MatchNumber     int      `json:"match_number"`
	HomeTeam        string   `json:"home_team"`
	AwayTeam        string   `json:"away_team"`
	CoverageOptions []string `json:"coverage_options"` // ["1"], ["1","X"], ["1","X","2"]
}

// Elige8Spec é a configuração opcional da modalidade Elige 8.
type Elige8Spec struct {
	Enabled         bool     `json:"enabled"`
	SelectedMatches []int    `json:"selected_matches"`
	OutcomePicks    []string `json:"outcome_picks"`
}

type ValidateQuinielaRequest struct {
	Predictions []PredictionSpec `json:"predictions"`
	Elige8      *Elige8Spec      `json:"elige_8,omitempty"`
}

type CreateQuinielaRequest struct {
	UserID      string           `json:"user_id"`
	Season      int              `json:"season"`
	WeekNumber  int              `json:"week_number"`
	Predictions []PredictionSpec `json:"predictions"`
	Elige8      *Elige8Spec      `json:"elige_8,omitempty"`
}

// CostRequest calcula custo em tempo real só a partir das multiplicidades.
type CostRequest struct {
	Multiplicities []int `json:"multiplicities"`
	Elige8Enabled  bool  `json:"elige_8_enabled"`
}
