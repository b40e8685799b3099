package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/udisondev/axiego/internal/data"
	"github.com/udisondev/axiego/internal/model"
)

// AxieRepository provides database access for the axies table.
type AxieRepository struct {
	pool *pgxpool.Pool
}

// NewAxieRepository creates a new AxieRepository.
func NewAxieRepository(pool *pgxpool.Pool) *AxieRepository {
	return &AxieRepository{pool: pool}
}

// GeneRow — минимальная строка для пакетного пересчёта: id и ген.
type GeneRow struct {
	ID      int64
	GeneHex string
}

// Upsert inserts or replaces an axie record by id.
func (r *AxieRepository) Upsert(ctx context.Context, a *model.Axie) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO axies (id, gene_hex, class, breed_count, stage, matron_id, sire_id,
		                    hp, speed, skill, morale, purity, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		 ON CONFLICT (id) DO UPDATE SET
		    gene_hex = EXCLUDED.gene_hex,
		    class = EXCLUDED.class,
		    breed_count = EXCLUDED.breed_count,
		    stage = EXCLUDED.stage,
		    matron_id = EXCLUDED.matron_id,
		    sire_id = EXCLUDED.sire_id,
		    hp = EXCLUDED.hp,
		    speed = EXCLUDED.speed,
		    skill = EXCLUDED.skill,
		    morale = EXCLUDED.morale,
		    purity = EXCLUDED.purity,
		    updated_at = NOW()`,
		a.ID, a.GeneHex, a.Class, a.BreedCount, a.Stage, a.MatronID, a.SireID,
		a.HP, a.Speed, a.Skill, a.Morale, a.Purity)
	if err != nil {
		return fmt.Errorf("upsert axie %d: %w", a.ID, err)
	}
	return nil
}

// Get retrieves an axie by id.
// Returns nil, nil if the axie does not exist.
func (r *AxieRepository) Get(ctx context.Context, id int64) (*model.Axie, error) {
	var a model.Axie
	err := r.pool.QueryRow(ctx,
		`SELECT id, gene_hex, class, breed_count, stage, matron_id, sire_id,
		        hp, speed, skill, morale, purity, updated_at
		 FROM axies WHERE id = $1`, id,
	).Scan(&a.ID, &a.GeneHex, &a.Class, &a.BreedCount, &a.Stage, &a.MatronID, &a.SireID,
		&a.HP, &a.Speed, &a.Skill, &a.Morale, &a.Purity, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query axie %d: %w", id, err)
	}
	return &a, nil
}

// ListGenes pages through (id, gene_hex) pairs ordered by id, starting
// strictly after afterID. Used by the scanner's batch recompute.
func (r *AxieRepository) ListGenes(ctx context.Context, afterID int64, limit int) ([]GeneRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, gene_hex FROM axies WHERE id > $1 ORDER BY id LIMIT $2`,
		afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("query gene page after %d: %w", afterID, err)
	}
	defer rows.Close()

	var result []GeneRow
	for rows.Next() {
		var row GeneRow
		if err := rows.Scan(&row.ID, &row.GeneHex); err != nil {
			return nil, fmt.Errorf("scan gene row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// UpdateStats writes the computed class, stats and purity back for one axie.
func (r *AxieRepository) UpdateStats(ctx context.Context, id int64, class string, stats data.Stats, purity float64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE axies
		 SET class = $2, hp = $3, speed = $4, skill = $5, morale = $6, purity = $7,
		     updated_at = NOW()
		 WHERE id = $1`,
		id, class, stats.HP, stats.Speed, stats.Skill, stats.Morale, purity)
	if err != nil {
		return fmt.Errorf("update stats for axie %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update stats for axie %d: no such axie", id)
	}
	return nil
}

// Count returns the number of stored axies.
func (r *AxieRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM axies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count axies: %w", err)
	}
	return n, nil
}
