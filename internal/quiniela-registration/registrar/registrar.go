package registrar

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	qrDto "github.com/radieske/quiniela-bet-platform/internal/quiniela-registration/dto"
	"github.com/radieske/quiniela-bet-platform/internal/quiniela-service/repo"
	"github.com/radieske/quiniela-bet-platform/internal/shared/metrics"
	ev "github.com/radieske/quiniela-bet-platform/pkg/contracts/events"
)

// StatusStore grava a transição de status de um boleto.
type StatusStore interface {
	UpdateStatus(ctx context.Context, id, status string) error
}

// SlipInvalidator descarta o resumo cacheado de um boleto.
type SlipInvalidator interface {
	InvalidateSlip(ctx context.Context, id string) error
}

// MessageWriter publica mensagens no tópico de desfecho do registro.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Registrar processa o registro de boletos junto ao operador:
// transição de status no banco, invalidação do cache de resumo e
// publicação do evento quiniela_registered.
type Registrar struct {
	log    *zap.Logger
	store  StatusStore
	cache  SlipInvalidator
	writer MessageWriter
}

func New(log *zap.Logger, store StatusStore, cache SlipInvalidator, writer MessageWriter) *Registrar {
	return &Registrar{log: log, store: store, cache: cache, writer: writer}
}

// Process executa o registro de um boleto:
// 1. Marca o boleto como REGISTERED no banco
// 2. Invalida o resumo cacheado, senão o GET serve status velho até o TTL
// 3. Publica o evento quiniela_registered
// O boleto já chegou validado e persistido; o registro é só a transição
// de status que o entrega ao operador da loteria.
func (r *Registrar) Process(ctx context.Context, placed *qrDto.QuinielaPlaced) error {
	status := repo.StatusRegistered
	reason := ""

	// Retry simples na atualização de status: até 3 tentativas
	var err error
	for i := 0; i < 3; i++ {
		err = r.store.UpdateStatus(ctx, placed.SlipID, status)
		if err == nil || err == sql.ErrNoRows {
			break
		}
		time.Sleep(time.Duration(300*(i+1)) * time.Millisecond)
	}
	if err == sql.ErrNoRows {
		// Evento órfão: boleto não existe mais; rejeita em vez de reprocessar
		status = repo.StatusRejected
		reason = "slip not found"
	} else if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}

	// O resumo cacheado ficou para trás com a mudança de status. Best-effort:
	// falha aqui não desfaz o registro, o TTL ainda cobre.
	if cerr := r.cache.InvalidateSlip(ctx, placed.SlipID); cerr != nil {
		r.log.Warn("invalidate slip cache", zap.String("slipId", placed.SlipID), zap.Error(cerr))
	}

	out := ev.QuinielaRegistered{
		SlipID: placed.SlipID,
		Status: status,
		Reason: reason,
		Ts:     time.Now().UTC(),
	}
	b, _ := json.Marshal(out)
	if werr := r.writer.WriteMessages(ctx, kafka.Message{Key: []byte(placed.SlipID), Value: b}); werr != nil {
		metrics.RegistrationsTotal.WithLabelValues("publish_error").Inc()
		return werr
	}

	metrics.RegistrationsTotal.WithLabelValues(strings.ToLower(status)).Inc()
	r.log.Info("slip processed",
		zap.String("slipId", placed.SlipID),
		zap.String("status", status),
	)
	return nil
}
