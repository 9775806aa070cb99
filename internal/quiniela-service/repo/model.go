package repo

import "time"

// Status do boleto no ciclo de vida de registro.
const (
	StatusPendingRegistration = "PENDING_REGISTRATION"
	StatusRegistered          = "REGISTERED"
	StatusRejected            = "REJECTED"
)

// Slip é o boleto persistido no Postgres. Guarda tudo que é preciso para
// reconstruir o veredito sem recalcular: combinações, custos em cêntimos
// e tipo de aposta.
type Slip struct {
	ID                string
	UserID            string
	Season            int
	WeekNumber        int
	BetType           string
	TotalCombinations int64
	BaseCostCents     int64
	Elige8CostCents   int64
	TotalCostCents    int64
	Elige8Enabled     bool
	Elige8Matches     string // "2,4,6,8,10,12,14,15"
	Elige8Picks       string // "1,X,2,1,X,2,1,X"
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// SlipPrediction é a cobertura persistida de um jogo do boleto.
type SlipPrediction struct {
	MatchNumber  int
	HomeTeam     string
	AwayTeam     string
	Options      string // ordem canônica, ex: "1X"
	Multiplicity int
}

// ListFilter restringe a listagem de boletos. Campos zero são ignorados.
type ListFilter struct {
	UserID     string
	Season     int
	WeekNumber int
	BetType    string
	Elige8Only bool
	Limit      int
	Offset     int
}

// ListSummary agrega os boletos que casam com o filtro, independente da
// paginação: total, investimento e combinações somados, e contagem por tipo.
type ListSummary struct {
	TotalCount        int64
	InvestedCents     int64
	TotalCombinations int64
	ByBetType         map[string]int64
}
