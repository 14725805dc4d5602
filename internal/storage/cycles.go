package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/misterclayt0n/regimen/internal/models"
	"github.com/misterclayt0n/regimen/internal/utils"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCycle(row rowScanner) (*models.Cycle, error) {
	var c models.Cycle
	var startDate string
	var active int
	if err := row.Scan(&c.ID, &startDate, &active); err != nil {
		return nil, err
	}
	start, err := time.Parse(time.RFC3339, startDate)
	if err != nil {
		return nil, fmt.Errorf("Failed to parse start date of cycle %s: %w", c.ID, err)
	}
	c.StartDate = start.In(utils.Loc)
	c.IsActive = active == 1
	return &c, nil
}

// ActiveCycle returns the active cycle, or nil when there is none.
func (s *Storage) ActiveCycle(ctx context.Context) (*models.Cycle, error) {
	row := s.DB.QueryRowContext(ctx, `
        SELECT id, start_date, is_active
        FROM cycles
        WHERE is_active = 1
        ORDER BY start_date DESC
        LIMIT 1
    `)
	c, err := scanCycle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("Failed to load active cycle: %w", err)
	}
	return c, nil
}

// ListCycles returns every cycle, newest first.
func (s *Storage) ListCycles(ctx context.Context) ([]*models.Cycle, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT id, start_date, is_active
        FROM cycles
        ORDER BY start_date DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("Failed to query cycles: %w", err)
	}
	defer rows.Close()

	var cycles []*models.Cycle
	for rows.Next() {
		c, err := scanCycle(rows)
		if err != nil {
			return nil, fmt.Errorf("Failed to scan cycle: %w", err)
		}
		cycles = append(cycles, c)
	}
	return cycles, rows.Err()
}

// SaveCycle inserts or updates a cycle as is.
func (s *Storage) SaveCycle(ctx context.Context, c *models.Cycle) error {
	_, err := s.DB.ExecContext(ctx, `
        INSERT INTO cycles (id, start_date, is_active)
        VALUES (?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            start_date = excluded.start_date,
            is_active = excluded.is_active
    `, c.ID, c.StartDate.Format(time.RFC3339), utils.BoolToInt(c.IsActive))
	if err != nil {
		return fmt.Errorf("Failed to save cycle: %w", err)
	}
	return nil
}

// ActivateCycle ends every other cycle and stores c as the only active one.
func (s *Storage) ActivateCycle(ctx context.Context, c *models.Cycle) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE cycles SET is_active = 0 WHERE id <> ?`, c.ID); err != nil {
		return fmt.Errorf("Failed to end previous cycles: %w", err)
	}

	c.IsActive = true
	_, err = tx.ExecContext(ctx, `
        INSERT INTO cycles (id, start_date, is_active)
        VALUES (?, ?, 1)
        ON CONFLICT(id) DO UPDATE SET
            start_date = excluded.start_date,
            is_active = 1
    `, c.ID, c.StartDate.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("Failed to save cycle: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}
	return nil
}
