package topics

const (
	// Boletos
	QuinielaPlaced     = "quiniela_placed"
	QuinielaRegistered = "quiniela_registered"

	// DLQ
	QuinielaPlacedDLQ = "quiniela_placed_dlq"
)
