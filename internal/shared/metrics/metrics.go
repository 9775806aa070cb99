package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas de domínio dos serviços de quiniela.
var (
	// ValidationsTotal conta validações por resultado ("valid"/"invalid").
	ValidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quiniela_validations_total",
		Help: "Validações de boletos por resultado.",
	}, []string{"outcome"})

	// SlipsCreatedTotal conta boletos criados por tipo de aposta.
	SlipsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quiniela_slips_created_total",
		Help: "Boletos criados por tipo de aposta.",
	}, []string{"bet_type"})

	// RegistrationsTotal conta o desfecho do worker de registro.
	RegistrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quiniela_registrations_total",
		Help: "Registros processados pelo worker, por status.",
	}, []string{"status"})

	// CombinationsValidated observa o tamanho dos boletos validados.
	CombinationsValidated = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "quiniela_combinations_validated",
		Help:    "Distribuição do número de combinações por boleto validado.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})
)
