package events

// QuinielaPlaced é emitido pelo quiniela-service quando um boleto validado
// é persistido e fica aguardando registro junto ao operador.
type QuinielaPlaced struct {
	SlipID            string `json:"slip_id"`
	UserID            string `json:"user_id"`
	Season            int    `json:"season"`
	WeekNumber        int    `json:"week_number"`
	BetType           string `json:"bet_type"`
	TotalCombinations int64  `json:"total_combinations"`
	TotalCostCents    int64  `json:"total_cost_cents"`
	Elige8Enabled     bool   `json:"elige8_enabled"`
	TsUnixMs          int64  `json:"ts_unix_ms"`
}
