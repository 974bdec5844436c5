package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// DerivedMove is a move definition produced by extracting the cycles of a
// scramble, kept so it can be loaded into later puzzle instances.
type DerivedMove struct {
	DerivedID  int64
	Puzzle     string
	Name       string
	Source     string // notation the move was derived from
	Definition string // one DSL line, "Name: (..) (..)"
	Order      *int   // nil when the order exceeded the bound
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DerivedMoveRepository provides CRUD operations for derived moves.
type DerivedMoveRepository struct {
	db *DB
}

// NewDerivedMoveRepository creates a new derived move repository.
func NewDerivedMoveRepository(db *DB) *DerivedMoveRepository {
	return &DerivedMoveRepository{db: db}
}

// Save stores a derived move, replacing any move of the same name on the
// same puzzle.
func (r *DerivedMoveRepository) Save(m DerivedMove) error {
	now := time.Now().UTC().Format(time.RFC3339)

	_, err := r.db.Exec(`
		INSERT INTO derived_moves (puzzle, name, source, definition, move_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (puzzle, name) DO UPDATE SET
			source = excluded.source,
			definition = excluded.definition,
			move_order = excluded.move_order,
			updated_at = excluded.updated_at
	`, m.Puzzle, m.Name, m.Source, m.Definition, m.Order, now, now)

	if err != nil {
		return fmt.Errorf("failed to save derived move: %w", err)
	}
	return nil
}

// ListByPuzzle retrieves the derived moves of a puzzle in creation order.
func (r *DerivedMoveRepository) ListByPuzzle(puzzle string) ([]DerivedMove, error) {
	rows, err := r.db.Query(`
		SELECT derived_id, puzzle, name, source, definition, move_order, created_at, updated_at
		FROM derived_moves
		WHERE puzzle = ?
		ORDER BY derived_id
	`, puzzle)

	if err != nil {
		return nil, fmt.Errorf("failed to list derived moves: %w", err)
	}
	defer rows.Close()

	var moves []DerivedMove
	for rows.Next() {
		var m DerivedMove
		var order sql.NullInt64
		var createdAtStr, updatedAtStr string

		err := rows.Scan(&m.DerivedID, &m.Puzzle, &m.Name, &m.Source, &m.Definition, &order, &createdAtStr, &updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to scan derived move: %w", err)
		}

		if order.Valid {
			n := int(order.Int64)
			m.Order = &n
		}
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		m.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)

		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// Definitions returns the DSL lines of a puzzle's derived moves.
func (r *DerivedMoveRepository) Definitions(puzzle string) ([]string, error) {
	moves, err := r.ListByPuzzle(puzzle)
	if err != nil {
		return nil, err
	}

	lines := make([]string, len(moves))
	for i, m := range moves {
		lines[i] = m.Definition
	}
	return lines, nil
}

// Delete removes a derived move. It reports whether a row was deleted.
func (r *DerivedMoveRepository) Delete(puzzle, name string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM derived_moves WHERE puzzle = ? AND name = ?", puzzle, name)
	if err != nil {
		return false, fmt.Errorf("failed to delete derived move: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n > 0, nil
}
