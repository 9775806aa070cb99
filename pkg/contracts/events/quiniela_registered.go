package events

import "time"

// QuinielaRegistered é emitido pelo quiniela-registration-worker após
// processar o registro de um boleto.
type QuinielaRegistered struct {
	SlipID string    `json:"slipId"`
	Status string    `json:"status"` // "REGISTERED" | "REJECTED"
	Reason string    `json:"reason,omitempty"`
	Ts     time.Time `json:"ts"`
}
