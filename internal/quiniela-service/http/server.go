package httpapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/radieske/quiniela-bet-platform/internal/quiniela-service/dto"
	"github.com/radieske/quiniela-bet-platform/internal/quiniela-service/repo"
	"github.com/radieske/quiniela-bet-platform/internal/quiniela/advisor"
	"github.com/radieske/quiniela-bet-platform/internal/quiniela/combin"
	"github.com/radieske/quiniela-bet-platform/internal/quiniela/model"
	"github.com/radieske/quiniela-bet-platform/internal/quiniela/rules"
	"github.com/radieske/quiniela-bet-platform/internal/quiniela/validator"
	"github.com/radieske/quiniela-bet-platform/internal/shared/metrics"
	"github.com/radieske/quiniela-bet-platform/pkg/contracts/events"
)

// Publisher publica o evento de boleto criado.
type Publisher interface {
	PublishQuinielaPlaced(context.Context, events.QuinielaPlaced) error
}

// SlipStore é a persistência de boletos vista pelos handlers.
type SlipStore interface {
	CreatePlaced(ctx context.Context, s *repo.Slip, preds []repo.SlipPrediction) (string, error)
	GetSlip(ctx context.Context, id string) (*repo.Slip, []repo.SlipPrediction, error)
	ListSlips(ctx context.Context, f repo.ListFilter) ([]repo.Slip, repo.ListSummary, error)
}

// SlipCache guarda resumos de boletos já montados.
type SlipCache interface {
	GetSlip(ctx context.Context, id string, dst any) (bool, error)
	SetSlip(ctx context.Context, id string, v any) error
}

// Server expõe os endpoints REST do quiniela-service: validação, custo,
// reduções oficiais, criação, consulta e listagem de boletos.
type Server struct {
	log   *zap.Logger
	repo  SlipStore
	cache SlipCache
	publ  Publisher
}

func NewServer(log *zap.Logger, r SlipStore, c SlipCache, p Publisher) *Server {
	return &Server{log: log, repo: r, cache: c, publ: p}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Post("/v1/quinielas/validate", s.validateQuiniela) // veredito completo sem persistir
	r.Post("/v1/quinielas/cost", s.calculateCost)        // custo em tempo real
	r.Get("/v1/reductions", s.listReductions)            // reduções oficiais + faixas
	r.Post("/v1/quinielas", s.createQuiniela)            // valida, persiste e publica
	r.Get("/v1/quinielas", s.listQuinielas)              // listagem filtrada + agregados
	r.Get("/v1/quinielas/{id}", s.getQuiniela)           // resumo do boleto criado
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// buildModels converte o payload do cliente nos modelos validados.
// StructuralDefect aqui vira 4xx no chamador: o objeto nem chega a existir.
func buildModels(preds []dto.PredictionSpec, e8 *dto.Elige8Spec) ([]model.MatchPrediction, *model.Elige8Config, error) {
	ms := make([]model.MatchPrediction, 0, len(preds))
	for _, p := range preds {
		m, err := model.NewMatchPrediction(p.MatchNumber, p.HomeTeam, p.AwayTeam, p.CoverageOptions)
		if err != nil {
			return nil, nil, err
		}
		ms = append(ms, m)
	}

	var cfg *model.Elige8Config
	if e8 != nil {
		c, err := model.NewElige8Config(e8.Enabled, e8.SelectedMatches, e8.OutcomePicks)
		if err != nil {
			return nil, nil, err
		}
		if c.Enabled {
			cfg = &c
		}
	}
	return ms, cfg, nil
}

func verdictResponse(v validator.Verdict) dto.VerdictResponse {
	errs := v.Errors
	if errs == nil {
		errs = []string{}
	}
	warns := v.Warnings
	if warns == nil {
		warns = []string{}
	}
	return dto.VerdictResponse{
		Valid:             v.Valid,
		TotalCombinations: v.TotalCombinations,
		BaseCost:          rules.EurosFromCents(v.BaseCostCents),
		Elige8Cost:        rules.EurosFromCents(v.Elige8CostCents),
		TotalCost:         rules.EurosFromCents(v.TotalCostCents),
		BetType:           string(v.BetType),
		Errors:            errs,
		Warnings:          warns,
	}
}

func breakdown(preds []model.MatchPrediction) []dto.MatchBreakdown {
	out := make([]dto.MatchBreakdown, 0, len(preds))
	for _, p := range preds {
		out = append(out, dto.MatchBreakdown{
			MatchNumber:  p.MatchNumber,
			Teams:        fmt.Sprintf("%s vs %s", p.HomeTeam, p.AwayTeam),
			Options:      p.CoverageOptions(),
			Multiplicity: p.Multiplicity(),
		})
	}
	return out
}

func (s *Server) validateQuiniela(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateQuinielaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "bad json"})
		return
	}

	preds, e8, err := buildModels(req.Predictions, req.Elige8)
	if err != nil {
		var sd *model.StructuralDefect
		if errors.As(err, &sd) {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: sd.Code, Details: []string{sd.Detail}})
			return
		}
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	v := validator.Validate(preds, e8)
	observeVerdict(v)

	// Sugestões orientativas, no espírito da resposta de validação:
	// boletos grandes apontam para reduções; multiples muito pequenos
	// podem ganhar cobertura barata.
	var suggestions []string
	if v.TotalCombinations > 1000 {
		suggestions = append(suggestions, "consider an official reduction to optimize cost vs coverage")
	}
	if v.BetType == combin.BetMultiple && v.TotalCombinations < 10 {
		suggestions = append(suggestions, "adding more doubles would improve coverage at low cost")
	}
	if suggestions == nil {
		suggestions = []string{}
	}

	writeJSON(w, http.StatusOK, dto.ValidateQuinielaResponse{
		VerdictResponse: verdictResponse(v),
		Breakdown:       breakdown(preds),
		Suggestions:     suggestions,
	})
}

func (s *Server) calculateCost(w http.ResponseWriter, r *http.Request) {
	var req dto.CostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "bad json"})
		return
	}
	if len(req.Multiplicities) != validator.SlipMatches {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Error: fmt.Sprintf("exactly %d multiplicities required, got %d", validator.SlipMatches, len(req.Multiplicities)),
		})
		return
	}
	for i, m := range req.Multiplicities {
		if m < 1 || m > 3 {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
				Error: fmt.Sprintf("multiplicity %d at position %d: must be 1, 2 or 3", m, i+1),
			})
			return
		}
	}

	total := combin.TotalCombinations(req.Multiplicities)
	baseCents := combin.BaseCostCents(total)
	var e8Cents int64
	if req.Elige8Enabled {
		e8Cents = rules.Elige8FeeCents
	}
	totalCents := baseCents + e8Cents

	dobles, triples := combin.CountDoblesTriples(req.Multiplicities)
	totalEur := rules.EurosFromCents(totalCents)

	writeJSON(w, http.StatusOK, dto.CostResponse{
		TotalCombinations: total,
		BaseCost:          rules.EurosFromCents(baseCents),
		Elige8Cost:        rules.EurosFromCents(e8Cents),
		TotalCost:         totalEur,
		Breakdown: dto.CostBreakdown{
			CombinationsPerMatch: req.Multiplicities,
			CostPerBet:           rules.EurosFromCents(rules.BaseBetPriceCents),
			Elige8Addition:       rules.EurosFromCents(e8Cents),
		},
		Efficiency: dto.EfficiencyMetrics{
			CombinationsPerEuro: float64(total) / totalEur,
			CostPerCombination:  totalEur / float64(total),
			SimplesCount:        validator.SlipMatches - dobles - triples,
			DoblesCount:         dobles,
			TriplesCount:        triples,
		},
		BudgetTier: advisor.Tier(totalCents),
	})
}

func (s *Server) listReductions(w http.ResponseWriter, r *http.Request) {
	// Sem budget_max, o orçamento é ilimitado e a lista vem completa.
	budgetCents := int64(1<<62 - 1)
	if q := r.URL.Query().Get("budget_max"); q != "" {
		eur, err := strconv.ParseFloat(q, 64)
		if err != nil || eur < 0 {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "budget_max must be a non-negative number of euros"})
			return
		}
		budgetCents = int64(math.Round(eur * 100))
	}

	suggestions := advisor.Suggest(budgetCents)
	items := make([]dto.ReductionItem, 0, len(suggestions))
	for _, sg := range suggestions {
		items = append(items, dto.ReductionItem{
			Name:                sg.Template.Name,
			Label:               sg.Template.Label,
			Triples:             sg.Template.Triples,
			Dobles:              sg.Template.Dobles,
			Combinations:        sg.Template.Combinations,
			Cost:                rules.EurosFromCents(sg.Template.PriceCents),
			CombinationsPerEuro: sg.CombinationsPerEur,
		})
	}

	writeJSON(w, http.StatusOK, dto.ReductionsResponse{
		Reductions:            items,
		TotalAvailable:        len(items),
		BudgetRecommendations: advisor.GroupByTier(advisor.FilterByBudget(budgetCents)),
	})
}

func (s *Server) createQuiniela(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateQuinielaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "bad json"})
		return
	}
	if req.UserID == "" || req.Season <= 0 || req.WeekNumber <= 0 {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "user_id, season and week_number are required"})
		return
	}

	preds, e8, err := buildModels(req.Predictions, req.Elige8)
	if err != nil {
		var sd *model.StructuralDefect
		if errors.As(err, &sd) {
			writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: sd.Code, Details: []string{sd.Detail}})
			return
		}
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	// O veredito é o portão: boleto inválido não chega no banco.
	v := validator.Validate(preds, e8)
	observeVerdict(v)
	if !v.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:   "invalid quiniela",
			Details: v.Errors,
		})
		return
	}

	slip := &repo.Slip{
		UserID:            req.UserID,
		Season:            req.Season,
		WeekNumber:        req.WeekNumber,
		BetType:           string(v.BetType),
		TotalCombinations: v.TotalCombinations,
		BaseCostCents:     v.BaseCostCents,
		Elige8CostCents:   v.Elige8CostCents,
		TotalCostCents:    v.TotalCostCents,
	}
	if e8 != nil {
		slip.Elige8Enabled = true
		slip.Elige8Matches = joinInts(e8.SelectedMatches)
		slip.Elige8Picks = strings.Join(e8.OutcomePicks, ",")
	}

	rowPreds := make([]repo.SlipPrediction, 0, len(preds))
	for _, p := range preds {
		rowPreds = append(rowPreds, repo.SlipPrediction{
			MatchNumber:  p.MatchNumber,
			HomeTeam:     p.HomeTeam,
			AwayTeam:     p.AwayTeam,
			Options:      strings.Join(p.CoverageOptions(), ""),
			Multiplicity: p.Multiplicity(),
		})
	}

	id, err := s.repo.CreatePlaced(r.Context(), slip, rowPreds)
	if err != nil {
		s.log.Error("create slip", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "persist failed"})
		return
	}
	metrics.SlipsCreatedTotal.WithLabelValues(string(v.BetType)).Inc()

	// Publicação é best-effort: o worker de registro reprocessa via DLQ se
	// precisar, e o boleto já está persistido.
	if err := s.publ.PublishQuinielaPlaced(r.Context(), events.QuinielaPlaced{
		SlipID:            id,
		UserID:            req.UserID,
		Season:            req.Season,
		WeekNumber:        req.WeekNumber,
		BetType:           string(v.BetType),
		TotalCombinations: v.TotalCombinations,
		TotalCostCents:    v.TotalCostCents,
		Elige8Enabled:     slip.Elige8Enabled,
	}); err != nil {
		s.log.Warn("publish quiniela_placed", zap.String("slipId", id), zap.Error(err))
	}

	writeJSON(w, http.StatusCreated, dto.CreateQuinielaResponse{
		SlipID:            id,
		Status:            repo.StatusPendingRegistration,
		BetType:           string(v.BetType),
		TotalCombinations: v.TotalCombinations,
		BaseCost:          rules.EurosFromCents(v.BaseCostCents),
		Elige8Enabled:     slip.Elige8Enabled,
		Elige8Cost:        rules.EurosFromCents(v.Elige8CostCents),
		TotalCost:         rules.EurosFromCents(v.TotalCostCents),
		CreatedAt:         time.Now().UTC(),
	})
}

func (s *Server) getQuiniela(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "slip id required"})
		return
	}

	var cached dto.SlipResponse
	if ok, _ := s.cache.GetSlip(r.Context(), id, &cached); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	slip, preds, err := s.repo.GetSlip(r.Context(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
			return
		}
		s.log.Error("get slip", zap.String("slipId", id), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "lookup failed"})
		return
	}

	resp := slipResponse(slip, preds)
	_ = s.cache.SetSlip(r.Context(), id, resp)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) listQuinielas(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repo.ListFilter{
		UserID:  q.Get("user_id"),
		BetType: q.Get("bet_type"),
	}

	var err error
	if f.Season, err = queryInt(q.Get("season")); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "season must be an integer"})
		return
	}
	if f.WeekNumber, err = queryInt(q.Get("week_number")); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "week_number must be an integer"})
		return
	}
	if f.Limit, err = queryInt(q.Get("limit")); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "limit must be an integer"})
		return
	}
	if f.Offset, err = queryInt(q.Get("offset")); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "offset must be an integer"})
		return
	}
	f.Elige8Only = q.Get("elige_8_only") == "true"

	slips, sum, err := s.repo.ListSlips(r.Context(), f)
	if err != nil {
		s.log.Error("list slips", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "list failed"})
		return
	}

	items := make([]dto.SlipListItem, 0, len(slips))
	for _, sl := range slips {
		items = append(items, dto.SlipListItem{
			SlipID:            sl.ID,
			UserID:            sl.UserID,
			Season:            sl.Season,
			WeekNumber:        sl.WeekNumber,
			Status:            sl.Status,
			BetType:           sl.BetType,
			TotalCombinations: sl.TotalCombinations,
			TotalCost:         rules.EurosFromCents(sl.TotalCostCents),
			Elige8Enabled:     sl.Elige8Enabled,
			CreatedAt:         sl.CreatedAt,
		})
	}

	var avg float64
	if sum.TotalCount > 0 {
		avg = rules.EurosFromCents(sum.InvestedCents) / float64(sum.TotalCount)
	}
	byType := sum.ByBetType
	if byType == nil {
		byType = map[string]int64{}
	}

	writeJSON(w, http.StatusOK, dto.SlipListResponse{
		Quinielas:         items,
		TotalCount:        sum.TotalCount,
		TotalInvested:     rules.EurosFromCents(sum.InvestedCents),
		TotalCombinations: sum.TotalCombinations,
		AverageCost:       avg,
		BetTypeSummary:    byType,
	})
}

// queryInt interpreta um parâmetro inteiro opcional. Vazio vale zero.
func queryInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("bad int %q", s)
	}
	return n, nil
}

func slipResponse(s *repo.Slip, preds []repo.SlipPrediction) dto.SlipResponse {
	bd := make([]dto.MatchBreakdown, 0, len(preds))
	for _, p := range preds {
		bd = append(bd, dto.MatchBreakdown{
			MatchNumber:  p.MatchNumber,
			Teams:        fmt.Sprintf("%s vs %s", p.HomeTeam, p.AwayTeam),
			Options:      strings.Split(p.Options, ""),
			Multiplicity: p.Multiplicity,
		})
	}
	return dto.SlipResponse{
		SlipID:            s.ID,
		UserID:            s.UserID,
		Season:            s.Season,
		WeekNumber:        s.WeekNumber,
		Status:            s.Status,
		BetType:           s.BetType,
		TotalCombinations: s.TotalCombinations,
		BaseCost:          rules.EurosFromCents(s.BaseCostCents),
		Elige8Enabled:     s.Elige8Enabled,
		Elige8Cost:        rules.EurosFromCents(s.Elige8CostCents),
		Elige8Matches:     splitInts(s.Elige8Matches),
		Elige8Picks:       splitStrings(s.Elige8Picks),
		TotalCost:         rules.EurosFromCents(s.TotalCostCents),
		Predictions:       bd,
		CreatedAt:         s.CreatedAt,
	}
}

func observeVerdict(v validator.Verdict) {
	outcome := "valid"
	if !v.Valid {
		outcome = "invalid"
	}
	metrics.ValidationsTotal.WithLabelValues(outcome).Inc()
	metrics.CombinationsValidated.Observe(float64(v.TotalCombinations))
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func splitInts(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

func splitStrings(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
