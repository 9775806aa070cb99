package dto

import "time"

// Valores monetários nas respostas sempre em euros com duas casas.

type VerdictResponse struct {
	Valid             bool     `json:"valid"`
	TotalCombinations int64    `json:"total_combinations"`
	BaseCost          float64  `json:"base_cost"`
	Elige8Cost        float64  `json:"elige_8_cost"`
	TotalCost         float64  `json:"total_cost"`
	BetType           string   `json:"bet_type"`
	Errors            []string `json:"errors"`
	Warnings          []string `json:"warnings"`
}

type MatchBreakdown struct {
	MatchNumber  int      `json:"match_number"`
	Teams        string   `json:"teams"`
	Options      []string `json:"options"`
	Multiplicity int      `json:"multiplicity"`
}

type ValidateQuinielaResponse struct {
	VerdictResponse
	Breakdown   []MatchBreakdown `json:"breakdown"`
	Suggestions []string         `json:"suggestions"`
}

type CostBreakdown struct {
	CombinationsPerMatch []int   `json:"combinations_per_match"`
	CostPerBet           float64 `json:"cost_per_bet"`
	Elige8Addition       float64 `json:"elige_8_addition"`
}

type EfficiencyMetrics struct {
	CombinationsPerEuro float64 `json:"combinations_per_euro"`
	CostPerCombination  float64 `json:"cost_per_combination"`
	SimplesCount        int     `json:"simples_count"`
	DoblesCount         int     `json:"dobles_count"`
	TriplesCount        int     `json:"triples_count"`
}

type CostResponse struct {
	TotalCombinations int64             `json:"total_combinations"`
	BaseCost          float64           `json:"base_cost"`
	Elige8Cost        float64           `json:"elige_8_cost"`
	TotalCost         float64           `json:"total_cost"`
	Breakdown         CostBreakdown     `json:"cost_breakdown"`
	Efficiency        EfficiencyMetrics `json:"efficiency_metrics"`
	BudgetTier        string            `json:"budget_tier"`
}

type ReductionItem struct {
	Name                string  `json:"name"`
	Label               string  `json:"label"`
	Triples             int     `json:"triples"`
	Dobles              int     `json:"dobles"`
	Combinations        int64   `json:"combinations"`
	Cost                float64 `json:"cost"`
	CombinationsPerEuro float64 `json:"combinations_per_euro"`
}

type ReductionsResponse struct {
	Reductions            []ReductionItem     `json:"reductions"`
	TotalAvailable        int                 `json:"total_available"`
	BudgetRecommendations map[string][]string `json:"budget_recommendations"`
}

type CreateQuinielaResponse struct {
	SlipID            string    `json:"slip_id"`
	Status            string    `json:"status"` // PENDING_REGISTRATION
	BetType           string    `json:"bet_type"`
	TotalCombinations int64     `json:"total_combinations"`
	BaseCost          float64   `json:"base_cost"`
	Elige8Enabled     bool      `json:"elige_8_enabled"`
	Elige8Cost        float64   `json:"elige_8_cost"`
	TotalCost         float64   `json:"total_cost"`
	CreatedAt         time.Time `json:"created_at"`
}

// SlipResponse reconstrói o boleto persistido sem revalidar nada.
type SlipResponse struct {
	SlipID            string           `json:"slip_id"`
	UserID            string           `json:"user_id"`
	Season            int              `json:"season"`
	WeekNumber        int              `json:"week_number"`
	Status            string           `json:"status"`
	BetType           string           `json:"bet_type"`
	TotalCombinations int64            `json:"total_combinations"`
	BaseCost          float64          `json:"base_cost"`
	Elige8Enabled     bool             `json:"elige_8_enabled"`
	Elige8Cost        float64          `json:"elige_8_cost"`
	Elige8Matches     []int            `json:"elige_8_matches,omitempty"`
	Elige8Picks       []string         `json:"elige_8_picks,omitempty"`
	TotalCost         float64          `json:"total_cost"`
	Predictions       []MatchBreakdown `json:"predictions"`
	CreatedAt         time.Time        `json:"created_at"`
}

// SlipListItem é a forma resumida de um boleto na listagem.
type SlipListItem struct {
	SlipID            string    `json:"slip_id"`
	UserID            string    `json:"user_id"`
	Season            int       `json:"season"`
	WeekNumber        int       `json:"week_number"`
	Status            string    `json:"status"`
	BetType           string    `json:"bet_type"`
	TotalCombinations int64     `json:"total_combinations"`
	TotalCost         float64   `json:"total_cost"`
	Elige8Enabled     bool      `json:"elige_8_enabled"`
	CreatedAt         time.Time `json:"created_at"`
}

type SlipListResponse struct {
	Quinielas         []SlipListItem   `json:"quinielas"`
	TotalCount        int64            `json:"total_count"`
	TotalInvested     float64          `json:"total_invested"`
	TotalCombinations int64            `json:"total_combinations"`
	AverageCost       float64          `json:"average_cost"`
	BetTypeSummary    map[string]int64 `json:"bet_type_summary"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
