package main

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	qcache "github.com/radieske/quiniela-bet-platform/internal/quiniela-service/cache"
	qhttp "github.com/radieske/quiniela-bet-platform/internal/quiniela-service/http"
	kpub "github.com/radieske/quiniela-bet-platform/internal/quiniela-service/producer"
	"github.com/radieske/quiniela-bet-platform/internal/quiniela-service/repo"
	scache "github.com/radieske/quiniela-bet-platform/internal/shared/cache"
	"github.com/radieske/quiniela-bet-platform/internal/shared/config"
	"github.com/radieske/quiniela-bet-platform/internal/shared/db"
	skafka "github.com/radieske/quiniela-bet-platform/internal/shared/kafka"
	"github.com/radieske/quiniela-bet-platform/internal/shared/logger"
)

func main() {
	cfg := config.Load()
	log, _ := logger.New(cfg.ServiceName, cfg.Env)
	defer log.Sync()

	// Postgres: persistência dos boletos criados
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg", zap.Error(err))
	}
	defer pg.Close()

	// Redis: cache de resumos de boleto
	rdb, err := scache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis", zap.Error(err))
	}

	// Kafka writer: eventos quiniela_placed
	writer := skafka.NewWriter(cfg.KafkaBrokers, cfg.TopicQuinielaPlaced)
	defer writer.Close()

	// deps
	repository := repo.NewPostgres(pg)
	slipCache := qcache.New(rdb)
	publ := kpub.NewKafkaPublisher(writer, cfg.TopicQuinielaPlaced)

	// HTTP público
	api := qhttp.NewServer(log, repository, slipCache, publ)
	apiSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: api.Router(),
	}

	// metrics/health
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := pg.PingContext(r.Context()); err != nil {
			http.Error(w, "pg", http.StatusServiceUnavailable)
			return
		}
		if err := rdb.Ping(r.Context()).Err(); err != nil {
			http.Error(w, "redis", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	go func() {
		addr := fmt.Sprintf(":%s", cfg.MetricsPort)
		log.Info("metrics/health", zap.String("addr", addr))
		_ = http.ListenAndServe(addr, metricsMux)
	}()

	log.Info("quiniela-service listening", zap.String("addr", fmt.Sprintf(":%s", cfg.HTTPPort)))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
