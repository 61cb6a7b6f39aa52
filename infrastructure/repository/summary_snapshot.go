package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/intep/price-monitor/infrastructure/database/postgres"
	"github.com/intep/price-monitor/internal/domain"
)

const summarySnapshotsTable = "summary_snapshots"

const createSummarySnapshotsTable = `
	CREATE TABLE IF NOT EXISTS summary_snapshots (
		id BIGSERIAL PRIMARY KEY,
		run_id TEXT NOT NULL,
		product_code TEXT NOT NULL,
		summary JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (run_id, product_code)
	)
`

// SummarySnapshotRepository guarda o resultado de cada execução do monitor
// para consulta histórica da evolução dos preços.
type SummarySnapshotRepository interface {
	EnsureSchema(ctx context.Context) error
	SaveRun(ctx context.Context, runID string, summaries []*domain.ProductSummary) error
	ListRun(ctx context.Context, runID string) ([]*domain.ProductSummary, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type summarySnapshotRepository struct {
	conn *postgres.Connection
}

func NewSummarySnapshotRepository(conn *postgres.Connection) SummarySnapshotRepository {
	return &summarySnapshotRepository{
		conn: conn,
	}
}

func (r *summarySnapshotRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.conn.Exec(ctx, createSummarySnapshotsTable); err != nil {
		return fmt.Errorf("erro ao criar a tabela de snapshots: %w", err)
	}
	return nil
}

func (r *summarySnapshotRepository) SaveRun(ctx context.Context, runID string, summaries []*domain.ProductSummary) error {
	if len(summaries) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert(summarySnapshotsTable).
		Columns("run_id", "product_code", "summary").
		Suffix(`
			ON CONFLICT (run_id, product_code) DO UPDATE SET
				summary = EXCLUDED.summary
		`).
		PlaceholderFormat(squirrel.Dollar)

	for _, summary := range summaries {
		payload, err := json.Marshal(summary)
		if err != nil {
			return fmt.Errorf("erro ao serializar o resumo de %s: %w", summary.ProductCode, err)
		}
		builder = builder.Values(runID, summary.ProductCode, payload)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("erro ao executar a query: %w", err)
		}
		return nil
	})
}

func (r *summarySnapshotRepository) ListRun(ctx context.Context, runID string) ([]*domain.ProductSummary, error) {
	query, args, err := squirrel.
		Select("summary").
		From(summarySnapshotsTable).
		Where(squirrel.Eq{"run_id": runID}).
		OrderBy("product_code ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.ProductSummary, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}

		summary := &domain.ProductSummary{}
		if err := json.Unmarshal(payload, summary); err != nil {
			return nil, fmt.Errorf("erro ao desserializar snapshot: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

func (r *summarySnapshotRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete(summarySnapshotsTable).
		Where(squirrel.Lt{"created_at": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
