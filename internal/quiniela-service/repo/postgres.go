package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Postgres implementa a persistência de boletos de quiniela.
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do repositório de boletos.
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// CreatePlaced insere o boleto e suas 15 coberturas numa transação única,
// com status PENDING_REGISTRATION.
func (p *Postgres) CreatePlaced(ctx context.Context, s *Slip, preds []SlipPrediction) (string, error) {
	id := uuid.NewString()

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO user_quinielas
			(id,user_id,season,week_number,bet_type,total_combinations,
			 base_cost_cents,elige8_cost_cents,total_cost_cents,
			 elige8_enabled,elige8_matches,elige8_picks,status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		id, s.UserID, s.Season, s.WeekNumber, s.BetType, s.TotalCombinations,
		s.BaseCostCents, s.Elige8CostCents, s.TotalCostCents,
		s.Elige8Enabled, s.Elige8Matches, s.Elige8Picks, StatusPendingRegistration,
	)
	if err != nil {
		return "", fmt.Errorf("insert slip: %w", err)
	}

	for _, pr := range preds {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO user_quiniela_predictions
				(quiniela_id,match_number,home_team,away_team,options,multiplicity)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			id, pr.MatchNumber, pr.HomeTeam, pr.AwayTeam, pr.Options, pr.Multiplicity,
		)
		if err != nil {
			return "", fmt.Errorf("insert prediction %d: %w", pr.MatchNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// GetSlip carrega o boleto e suas coberturas pelo id.
func (p *Postgres) GetSlip(ctx context.Context, id string) (*Slip, []SlipPrediction, error) {
	var s Slip
	err := p.db.QueryRowContext(ctx, `
		SELECT id,user_id,season,week_number,bet_type,total_combinations,
		       base_cost_cents,elige8_cost_cents,total_cost_cents,
		       elige8_enabled,elige8_matches,elige8_picks,status,created_at,updated_at
		FROM user_quinielas WHERE id=$1`, id).Scan(
		&s.ID, &s.UserID, &s.Season, &s.WeekNumber, &s.BetType, &s.TotalCombinations,
		&s.BaseCostCents, &s.Elige8CostCents, &s.TotalCostCents,
		&s.Elige8Enabled, &s.Elige8Matches, &s.Elige8Picks, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, nil, err
	}

	rows, err := p.db.QueryContext(ctx, `
		SELECT match_number,home_team,away_team,options,multiplicity
		FROM user_quiniela_predictions
		WHERE quiniela_id=$1 ORDER BY match_number`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("load predictions: %w", err)
	}
	defer rows.Close()

	var preds []SlipPrediction
	for rows.Next() {
		var pr SlipPrediction
		if err := rows.Scan(&pr.MatchNumber, &pr.HomeTeam, &pr.AwayTeam, &pr.Options, &pr.Multiplicity); err != nil {
			return nil, nil, err
		}
		preds = append(preds, pr)
	}
	return &s, preds, rows.Err()
}

const defaultListLimit = 50

// ListSlips retorna uma página de boletos que casam com o filtro, do mais
// recente para o mais antigo, junto com o agregado do conjunto completo.
func (p *Postgres) ListSlips(ctx context.Context, f ListFilter) ([]Slip, ListSummary, error) {
	where, args := buildListWhere(f)

	limit := f.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	q := fmt.Sprintf(`
		SELECT id,user_id,season,week_number,bet_type,total_combinations,
		       base_cost_cents,elige8_cost_cents,total_cost_cents,
		       elige8_enabled,status,created_at
		FROM user_quinielas
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)

	rows, err := p.db.QueryContext(ctx, q, append(args, limit, offset)...)
	if err != nil {
		return nil, ListSummary{}, fmt.Errorf("list slips: %w", err)
	}
	defer rows.Close()

	var slips []Slip
	for rows.Next() {
		var s Slip
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Season, &s.WeekNumber, &s.BetType, &s.TotalCombinations,
			&s.BaseCostCents, &s.Elige8CostCents, &s.TotalCostCents,
			&s.Elige8Enabled, &s.Status, &s.CreatedAt,
		); err != nil {
			return nil, ListSummary{}, err
		}
		slips = append(slips, s)
	}
	if err := rows.Err(); err != nil {
		return nil, ListSummary{}, err
	}

	sum, err := p.listSummary(ctx, where, args)
	if err != nil {
		return nil, ListSummary{}, err
	}
	return slips, sum, nil
}

// listSummary agrega por bet_type o conjunto inteiro filtrado, sem paginação.
func (p *Postgres) listSummary(ctx context.Context, where string, args []any) (ListSummary, error) {
	q := fmt.Sprintf(`
		SELECT bet_type, count(*), COALESCE(SUM(total_cost_cents),0), COALESCE(SUM(total_combinations),0)
		FROM user_quinielas
		%s
		GROUP BY bet_type`, where)

	rows, err := p.db.QueryContext(ctx, q, args...)
	if err != nil {
		return ListSummary{}, fmt.Errorf("list summary: %w", err)
	}
	defer rows.Close()

	sum := ListSummary{ByBetType: map[string]int64{}}
	for rows.Next() {
		var bt string
		var n, invested, combos int64
		if err := rows.Scan(&bt, &n, &invested, &combos); err != nil {
			return ListSummary{}, err
		}
		sum.ByBetType[bt] = n
		sum.TotalCount += n
		sum.InvestedCents += invested
		sum.TotalCombinations += combos
	}
	return sum, rows.Err()
}

// buildListWhere monta a cláusula WHERE com placeholders posicionais.
func buildListWhere(f ListFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.UserID != "" {
		add("user_id=$%d", f.UserID)
	}
	if f.Season > 0 {
		add("season=$%d", f.Season)
	}
	if f.WeekNumber > 0 {
		add("week_number=$%d", f.WeekNumber)
	}
	if f.BetType != "" {
		add("bet_type=$%d", f.BetType)
	}
	if f.Elige8Only {
		conds = append(conds, "elige8_enabled=true")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// GetStatus retorna o status atual de um boleto.
func (p *Postgres) GetStatus(ctx context.Context, id string) (string, error) {
	var st string
	err := p.db.QueryRowContext(ctx, `SELECT status FROM user_quinielas WHERE id=$1`, id).Scan(&st)
	return st, err
}

// UpdateStatus grava a transição de status feita pelo worker de registro.
func (p *Postgres) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := p.db.ExecContext(ctx,
		`UPDATE user_quinielas SET status=$2, updated_at=now() WHERE id=$1`, id, status)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
