package dto

// QuinielaPlaced é a visão do worker sobre o evento consumido do Kafka.
// Duplicado de pkg/contracts/events de propósito: o worker só depende dos
// campos que usa e tolera produtores com versões diferentes do contrato.
type QuinielaPlaced struct {
	SlipID            string `json:"slip_id"`
	UserID            string `json:"user_id"`
	Season            int    `json:"season"`
	WeekNumber        int    `json:"week_number"`
	BetType           string `json:"bet_type"`
	TotalCombinations int64  `json:"total_combinations"`
	TotalCostCents    int64  `json:"total_cost_cents"`
	Elige8Enabled     bool   `json:"elige8_enabled"`
}
