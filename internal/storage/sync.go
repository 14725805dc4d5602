package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/regimen/internal/config"
)

// Parents before children, so inserts satisfy the foreign keys.
var dumpTables = []string{"cycles", "day_logs", "meal_logs", "supplement_logs", "advanced_supplement_logs"}

type dump map[string][]map[string]any

// ExportTOML writes every table as arrays of rows keyed by column name.
// NULL columns are left out of the row.
func (s *Storage) ExportTOML(ctx context.Context, w io.Writer) error {
	out := make(dump)

	for _, table := range dumpTables {
		rows, err := s.DB.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s;", table))
		if err != nil {
			return fmt.Errorf("querying table %s: %w", table, err)
		}

		cols, err := rows.Columns()
		if err != nil {
			rows.Close()
			return fmt.Errorf("getting columns for table %s: %w", table, err)
		}

		var tableData []map[string]any
		for rows.Next() {
			values := make([]any, len(cols))
			valuePtrs := make([]any, len(cols))
			for i := range values {
				valuePtrs[i] = &values[i]
			}

			if err := rows.Scan(valuePtrs...); err != nil {
				rows.Close()
				return fmt.Errorf("scanning row in table %s: %w", table, err)
			}

			rowMap := make(map[string]any)
			for i, col := range cols {
				switch v := values[i].(type) {
				case nil:
					continue
				case []byte:
					rowMap[col] = string(v)
				default:
					rowMap[col] = v
				}
			}
			tableData = append(tableData, rowMap)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return fmt.Errorf("iterating table %s: %w", table, err)
		}
		rows.Close()

		out[table] = tableData
	}

	if err := toml.NewEncoder(w).Encode(out); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}
	return nil
}

// ExportToFile writes the TOML dump to outputPath.
func (s *Storage) ExportToFile(ctx context.Context, outputPath string) error {
	outputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return err
	}
	var sb strings.Builder
	if err := s.ExportTOML(ctx, &sb); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}

// GetDBExportPath returns ~/.config/regimen/db_dump.toml.
func GetDBExportPath() (string, error) {
	dir, err := config.GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "db_dump.toml"), nil
}

func validColumn(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !(r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}

// ImportTOML replaces the database contents with a dump produced by ExportTOML.
func (s *Storage) ImportTOML(ctx context.Context, data []byte) error {
	var in dump
	if _, err := toml.Decode(string(data), &in); err != nil {
		return fmt.Errorf("Decoding TOML: %w", err)
	}
	for table := range in {
		known := false
		for _, t := range dumpTables {
			known = known || t == table
		}
		if !known {
			return fmt.Errorf("Unknown table %q in dump", table)
		}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Clear children first.
	for i := len(dumpTables) - 1; i >= 0; i-- {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s;", dumpTables[i])); err != nil {
			return fmt.Errorf("Clearing table %s: %w", dumpTables[i], err)
		}
	}

	for _, table := range dumpTables {
		for _, row := range in[table] {
			columns := make([]string, 0, len(row))
			for col := range row {
				if !validColumn(col) {
					return fmt.Errorf("Invalid column %q in table %s", col, table)
				}
				columns = append(columns, col)
			}
			sort.Strings(columns)

			placeholders := make([]string, len(columns))
			values := make([]any, len(columns))
			for i, col := range columns {
				placeholders[i] = "?"
				values[i] = row[col]
			}
			query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);", table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
			if _, err := tx.ExecContext(ctx, query, values...); err != nil {
				return fmt.Errorf("Inserting into table %s: %w", table, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Committing transaction: %w", err)
	}
	return nil
}

// ImportFromFile rebuilds the database from the TOML dump at filePath.
func (s *Storage) ImportFromFile(ctx context.Context, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("Reading file %s: %w", filePath, err)
	}
	return s.ImportTOML(ctx, data)
}
