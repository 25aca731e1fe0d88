package sink

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mslovenc/DizajnRadar/internal/competition"
	"github.com/mslovenc/DizajnRadar/internal/logger"
)

// Postgres writes the batch straight into a Postgres table, bypassing the
// REST layer. Unlike the REST sink the replacement is transactional: the
// delete and the inserts commit together or not at all.
type Postgres struct {
	pool *pgxpool.Pool
	log  logger.Logger
}

func NewPostgres(ctx context.Context, dsn string, log logger.Logger) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	return &Postgres{pool: pool, log: log}, nil
}

func (p *Postgres) Replace(ctx context.Context, records []competition.Record) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM natjecaji`); err != nil {
		return fmt.Errorf("clearing table: %w", err)
	}

	batch := &pgx.Batch{}
	for _, r := range records {
		var deadline any
		if r.Deadline != "" {
			deadline = r.Deadline
		}
		batch.Queue(
			`INSERT INTO natjecaji (title, link, org, category, status, deadline, prize)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			r.Title, r.Link, r.Org, r.Category, r.Status, deadline, r.Prize,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("inserting records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	p.log.Info("records written to postgres", logger.Int("inserted", len(records)))
	return nil
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}
