package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/misterclayt0n/regimen/internal/catalog"
	"github.com/misterclayt0n/regimen/internal/models"
	"github.com/misterclayt0n/regimen/internal/regimen"
	"github.com/misterclayt0n/regimen/internal/utils"
)

func formatStamp(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func parseStamp(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	t = t.In(utils.Loc)
	return &t
}

// SaveDayLog writes the whole aggregate in one transaction. Items are
// upserted by ID; the item set never changes after creation.
func (s *Storage) SaveDayLog(ctx context.Context, log *models.DayLog) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var weight any
	if log.Weight != nil {
		weight = *log.Weight
	}
	_, err = tx.ExecContext(ctx, `
        INSERT INTO day_logs (id, date, day_type, cycle_week, water_intake, sleep_hours, weight)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            day_type = excluded.day_type,
            cycle_week = excluded.cycle_week,
            water_intake = excluded.water_intake,
            sleep_hours = excluded.sleep_hours,
            weight = excluded.weight
    `, log.ID, log.Date, string(log.DayType), log.CycleWeek, log.WaterIntake, log.SleepHours, weight)
	if err != nil {
		return fmt.Errorf("Failed to save day log %s: %w", log.Date, err)
	}

	for i, m := range log.Meals {
		_, err = tx.ExecContext(ctx, `
            INSERT INTO meal_logs (id, day_log_id, position, meal_type, scheduled_time, is_completed, completed_at)
            VALUES (?, ?, ?, ?, ?, ?, ?)
            ON CONFLICT(id) DO UPDATE SET
                scheduled_time = excluded.scheduled_time,
                is_completed = excluded.is_completed,
                completed_at = excluded.completed_at
        `, m.ID, log.ID, i, string(m.Kind), m.ScheduledTime, utils.BoolToInt(m.Completed), formatStamp(m.CompletedAt))
		if err != nil {
			return fmt.Errorf("Failed to save meal %s: %w", m.Kind, err)
		}
	}

	for i, sup := range log.Supplements {
		_, err = tx.ExecContext(ctx, `
            INSERT INTO supplement_logs (id, day_log_id, position, supplement_type, timing_slot, dosage, is_completed, completed_at)
            VALUES (?, ?, ?, ?, ?, ?, ?, ?)
            ON CONFLICT(id) DO UPDATE SET
                is_completed = excluded.is_completed,
                completed_at = excluded.completed_at
        `, sup.ID, log.ID, i, string(sup.Kind), string(sup.Slot), sup.Dosage, utils.BoolToInt(sup.Completed), formatStamp(sup.CompletedAt))
		if err != nil {
			return fmt.Errorf("Failed to save supplement %s: %w", sup.Kind, err)
		}
	}

	for i, a := range log.AdvancedSupplements {
		_, err = tx.ExecContext(ctx, `
            INSERT INTO advanced_supplement_logs (id, day_log_id, position, supplement_type, dosage, is_completed, completed_at)
            VALUES (?, ?, ?, ?, ?, ?, ?)
            ON CONFLICT(id) DO UPDATE SET
                is_completed = excluded.is_completed,
                completed_at = excluded.completed_at
        `, a.ID, log.ID, i, string(a.Kind), a.Dosage, utils.BoolToInt(a.Completed), formatStamp(a.CompletedAt))
		if err != nil {
			return fmt.Errorf("Failed to save advanced supplement %s: %w", a.Kind, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}
	return nil
}

const dayLogColumns = `id, date, day_type, cycle_week, water_intake, sleep_hours, weight`

func scanDayLog(row rowScanner) (*models.DayLog, error) {
	var log models.DayLog
	var dayType string
	var week sql.NullInt64
	var weight sql.NullFloat64
	if err := row.Scan(&log.ID, &log.Date, &dayType, &week, &log.WaterIntake, &log.SleepHours, &weight); err != nil {
		return nil, err
	}
	// Unknown values fall back to the catalog defaults.
	log.DayType = catalog.ParseDayType(dayType)
	if week.Valid {
		log.CycleWeek = int(week.Int64)
	}
	if weight.Valid {
		w := weight.Float64
		log.Weight = &w
	}
	return &log, nil
}

// DayLogByDate loads the log for a YYYY-MM-DD key, or nil if none exists.
func (s *Storage) DayLogByDate(ctx context.Context, date string) (*models.DayLog, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+dayLogColumns+` FROM day_logs WHERE date = ?`, date)
	log, err := scanDayLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("Failed to load day log %s: %w", date, err)
	}
	if err := s.loadItems(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// ListDayLogs returns logs newest first. A limit <= 0 returns all of them.
func (s *Storage) ListDayLogs(ctx context.Context, limit int) ([]*models.DayLog, error) {
	query := `SELECT ` + dayLogColumns + ` FROM day_logs ORDER BY date DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	return s.queryDayLogs(ctx, query, args...)
}

// DayLogsBetween returns the logs whose date falls in [from, to], oldest first.
func (s *Storage) DayLogsBetween(ctx context.Context, from, to string) ([]*models.DayLog, error) {
	return s.queryDayLogs(ctx, `
        SELECT `+dayLogColumns+`
        FROM day_logs
        WHERE date >= ? AND date <= ?
        ORDER BY date ASC
    `, from, to)
}

func (s *Storage) queryDayLogs(ctx context.Context, query string, args ...any) ([]*models.DayLog, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("Failed to query day logs: %w", err)
	}

	var logs []*models.DayLog
	for rows.Next() {
		log, err := scanDayLog(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("Failed to scan day log: %w", err)
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("Failed to iterate day logs: %w", err)
	}
	// Close before loading items: local databases run on a single connection.
	rows.Close()

	for _, log := range logs {
		if err := s.loadItems(ctx, log); err != nil {
			return nil, err
		}
	}
	return logs, nil
}

// itemRows is the part of *sql.Rows the item scanners use.
type itemRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

func (s *Storage) loadItems(ctx context.Context, log *models.DayLog) error {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT id, meal_type, scheduled_time, is_completed, completed_at
        FROM meal_logs WHERE day_log_id = ? ORDER BY position
    `, log.ID)
	if err != nil {
		return fmt.Errorf("Failed to load meals: %w", err)
	}
	if log.Meals, err = scanMeals(rows); err != nil {
		return err
	}

	rows, err = s.DB.QueryContext(ctx, `
        SELECT id, supplement_type, timing_slot, dosage, is_completed, completed_at
        FROM supplement_logs WHERE day_log_id = ? ORDER BY position
    `, log.ID)
	if err != nil {
		return fmt.Errorf("Failed to load supplements: %w", err)
	}
	if log.Supplements, err = scanSupplements(rows); err != nil {
		return err
	}

	rows, err = s.DB.QueryContext(ctx, `
        SELECT id, supplement_type, dosage, is_completed, completed_at
        FROM advanced_supplement_logs WHERE day_log_id = ? ORDER BY position
    `, log.ID)
	if err != nil {
		return fmt.Errorf("Failed to load advanced supplements: %w", err)
	}
	log.AdvancedSupplements, err = scanAdvanced(rows)
	return err
}

// The scanners close rows before returning, so the next query can reuse the
// single local connection.

func scanMeals(rows itemRows) ([]regimen.MealItem, error) {
	defer rows.Close()
	var meals []regimen.MealItem
	for rows.Next() {
		var m regimen.MealItem
		var kind string
		var done int
		var at sql.NullString
		if err := rows.Scan(&m.ID, &kind, &m.ScheduledTime, &done, &at); err != nil {
			return nil, fmt.Errorf("Failed to scan meal: %w", err)
		}
		m.Kind = catalog.ParseMealKind(kind)
		m.Completed = done == 1
		m.CompletedAt = parseStamp(at)
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Failed to iterate meals: %w", err)
	}
	return meals, nil
}

func scanSupplements(rows itemRows) ([]regimen.SupplementItem, error) {
	defer rows.Close()
	var sups []regimen.SupplementItem
	for rows.Next() {
		var sup regimen.SupplementItem
		var kind, slot string
		var done int
		var at sql.NullString
		if err := rows.Scan(&sup.ID, &kind, &slot, &sup.Dosage, &done, &at); err != nil {
			return nil, fmt.Errorf("Failed to scan supplement: %w", err)
		}
		sup.Kind = catalog.ParseSupplementKind(kind)
		sup.Slot = catalog.ParseTimingSlot(slot)
		sup.Completed = done == 1
		sup.CompletedAt = parseStamp(at)
		sups = append(sups, sup)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Failed to iterate supplements: %w", err)
	}
	return sups, nil
}

func scanAdvanced(rows itemRows) ([]regimen.AdvancedSupplementItem, error) {
	defer rows.Close()
	var items []regimen.AdvancedSupplementItem
	for rows.Next() {
		var a regimen.AdvancedSupplementItem
		var kind string
		var done int
		var at sql.NullString
		if err := rows.Scan(&a.ID, &kind, &a.Dosage, &done, &at); err != nil {
			return nil, fmt.Errorf("Failed to scan advanced supplement: %w", err)
		}
		a.Kind = catalog.ParseAdvancedSupplementKind(kind)
		a.Completed = done == 1
		a.CompletedAt = parseStamp(at)
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Failed to iterate advanced supplements: %w", err)
	}
	return items, nil
}

// DeleteDayLog removes a day and all of its items.
func (s *Storage) DeleteDayLog(ctx context.Context, date string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM day_logs WHERE date = ?`, date).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("day log %s: %w", date, ErrNotFound)
		}
		return fmt.Errorf("Failed to look up day log %s: %w", date, err)
	}

	// Remote databases do not enforce ON DELETE CASCADE, so children go first.
	for _, table := range []string{"meal_logs", "supplement_logs", "advanced_supplement_logs"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE day_log_id = ?", id); err != nil {
			return fmt.Errorf("Failed to delete items from %s: %w", table, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM day_logs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("Failed to delete day log %s: %w", date, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}
	return nil
}
