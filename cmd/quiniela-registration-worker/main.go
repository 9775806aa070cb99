package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	qrDto "github.com/radieske/quiniela-bet-platform/internal/quiniela-registration/dto"
	"github.com/radieske/quiniela-bet-platform/internal/quiniela-registration/registrar"
	qcache "github.com/radieske/quiniela-bet-platform/internal/quiniela-service/cache"
	"github.com/radieske/quiniela-bet-platform/internal/quiniela-service/repo"
	scache "github.com/radieske/quiniela-bet-platform/internal/shared/cache"
	"github.com/radieske/quiniela-bet-platform/internal/shared/config"
	"github.com/radieske/quiniela-bet-platform/internal/shared/db"
	"github.com/radieske/quiniela-bet-platform/internal/shared/kafka"
	"github.com/radieske/quiniela-bet-platform/internal/shared/logger"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Postgres para a transição de status dos boletos
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg connect", zap.Error(err))
	}
	defer pg.Close()

	// Redis: o resumo cacheado do boleto cai quando o status muda
	rdb, err := scache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}

	// Kafka consumer: eventos quiniela_placed aguardando registro
	reader := kafka.NewReader(cfg.KafkaBrokers, cfg.TopicQuinielaPlaced, "quiniela-registration")
	defer reader.Close()

	// Kafka producer: quiniela_registered e, opcionalmente, DLQ
	registeredWriter := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicQuinielaRegistered)
	defer registeredWriter.Close()

	var dlqWriter *kafkago.Writer
	if cfg.TopicQuinielaPlacedDLQ != "" {
		dlqWriter = kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicQuinielaPlacedDLQ)
		defer dlqWriter.Close()
	}

	// Servidor HTTP para métricas Prometheus e healthcheck
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()
			if err := pg.PingContext(ctx); err != nil {
				http.Error(w, "pg", http.StatusServiceUnavailable)
				return
			}
			if err := rdb.Ping(ctx).Err(); err != nil {
				http.Error(w, "redis", http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
		addr := ":" + cfg.MetricsPort
		log.Info("metrics/health", zap.String("addr", addr))
		_ = http.ListenAndServe(addr, mux)
	}()

	log.Info("quiniela-registration-worker started",
		zap.String("consume", cfg.TopicQuinielaPlaced),
		zap.String("publish", cfg.TopicQuinielaRegistered),
	)

	ctx := context.Background()
	reg := registrar.New(log, repo.NewPostgres(pg), qcache.New(rdb), registeredWriter)

	// Loop principal: consome quiniela_placed, registra e publica o desfecho
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			log.Warn("kafka read", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}
		var placed qrDto.QuinielaPlaced
		if jerr := json.Unmarshal(msg.Value, &placed); jerr != nil || placed.SlipID == "" {
			log.Error("unmarshal quiniela_placed", zap.Error(jerr))
			sendToDLQ(ctx, log, dlqWriter, msg.Value)
			continue
		}

		if err := reg.Process(ctx, &placed); err != nil {
			log.Error("process slip", zap.String("slipId", placed.SlipID), zap.Error(err))
			sendToDLQ(ctx, log, dlqWriter, msg.Value)
			// Backoff simples para não inundar em caso de falha persistente
			time.Sleep(500 * time.Millisecond)
		}
	}
}

func sendToDLQ(ctx context.Context, log *zap.Logger, dlqWriter *kafkago.Writer, payload []byte) {
	if dlqWriter == nil {
		return
	}
	if err := dlqWriter.WriteMessages(ctx, kafkago.Message{Value: payload}); err != nil {
		log.Error("dlq write", zap.Error(err))
	}
}
