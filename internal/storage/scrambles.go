package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/twisty"
)

// Scramble is a recorded scramble: the notation that was applied, what it
// resolved to and the resulting state.
type Scramble struct {
	ScrambleID        string
	Puzzle            string
	Notation          string
	Normalized        string
	ReferenceRotation string
	Cycles            string
	State             []twisty.Slot
	Skipped           []string
	CreatedAt         time.Time
}

// ScrambleInput holds the fields supplied when recording a scramble.
type ScrambleInput struct {
	Puzzle            string
	Notation          string
	Normalized        string
	ReferenceRotation string
	Cycles            string
	State             []twisty.Slot
	Skipped           []string
}

// ScrambleRepository provides CRUD operations for scrambles.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// Create records a scramble and returns its ID.
func (r *ScrambleRepository) Create(in ScrambleInput) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	stateJSON, err := json.Marshal(in.State)
	if err != nil {
		return "", fmt.Errorf("failed to encode state: %w", err)
	}
	skipped := in.Skipped
	if skipped == nil {
		skipped = []string{}
	}
	skippedJSON, err := json.Marshal(skipped)
	if err != nil {
		return "", fmt.Errorf("failed to encode skipped tokens: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO scrambles (scramble_id, puzzle, notation, normalized, reference_rotation, cycles, state_json, skipped_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, in.Puzzle, in.Notation, in.Normalized, in.ReferenceRotation, in.Cycles,
		string(stateJSON), string(skippedJSON), createdAt.Format(time.RFC3339))

	if err != nil {
		return "", fmt.Errorf("failed to create scramble: %w", err)
	}

	return id, nil
}

const scrambleColumns = `scramble_id, puzzle, notation, normalized, reference_rotation, cycles, state_json, skipped_json, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScramble(row rowScanner) (*Scramble, error) {
	var s Scramble
	var stateJSON, skippedJSON, createdAtStr string

	err := row.Scan(
		&s.ScrambleID, &s.Puzzle, &s.Notation, &s.Normalized,
		&s.ReferenceRotation, &s.Cycles, &stateJSON, &skippedJSON, &createdAtStr,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(stateJSON), &s.State); err != nil {
		return nil, fmt.Errorf("failed to decode state of %s: %w", s.ScrambleID, err)
	}
	if err := json.Unmarshal([]byte(skippedJSON), &s.Skipped); err != nil {
		return nil, fmt.Errorf("failed to decode skipped tokens of %s: %w", s.ScrambleID, err)
	}
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)

	return &s, nil
}

// Get retrieves a scramble by ID. A missing scramble yields nil, nil.
func (r *ScrambleRepository) Get(scrambleID string) (*Scramble, error) {
	s, err := scanScramble(r.db.QueryRow(`
		SELECT `+scrambleColumns+`
		FROM scrambles
		WHERE scramble_id = ?
	`, scrambleID))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}

	return s, nil
}

// GetLast retrieves the most recent scramble.
func (r *ScrambleRepository) GetLast() (*Scramble, error) {
	s, err := scanScramble(r.db.QueryRow(`
		SELECT ` + scrambleColumns + `
		FROM scrambles
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last scramble: %w", err)
	}

	return s, nil
}

// List retrieves recent scrambles, newest first. An empty puzzle lists
// scrambles of every puzzle.
func (r *ScrambleRepository) List(puzzle string, limit int) ([]Scramble, error) {
	rows, err := r.db.Query(`
		SELECT `+scrambleColumns+`
		FROM scrambles
		WHERE ? = '' OR puzzle = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, puzzle, puzzle, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var scrambles []Scramble
	for rows.Next() {
		s, err := scanScramble(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		scrambles = append(scrambles, *s)
	}

	return scrambles, rows.Err()
}

// Delete deletes a scramble.
func (r *ScrambleRepository) Delete(scrambleID string) error {
	_, err := r.db.Exec("DELETE FROM scrambles WHERE scramble_id = ?", scrambleID)
	if err != nil {
		return fmt.Errorf("failed to delete scramble: %w", err)
	}
	return nil
}
