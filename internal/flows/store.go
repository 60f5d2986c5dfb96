package flows

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shayulman/radiodesk/internal/db"
	"github.com/shayulman/radiodesk/internal/studio"
)

// Store provides CRUD operations for flows.
type Store struct {
	db *db.DB
}

// NewStore creates a new flows store.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

const flowColumns = `id, name, name_he, description, description_he, trigger_type, loop, priority, enabled, actions, schedule, created_at, updated_at`

// CreateFlow inserts a new flow.
func (s *Store) CreateFlow(ctx context.Context, f *Flow) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.TriggerType == "" {
		f.TriggerType = studio.TriggerManual
	}
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now

	actionsJSON, scheduleJSON, err := encodeFlow(f)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO flows (`+flowColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		f.ID, f.Name, f.NameHe, f.Description, f.DescriptionHe,
		string(f.TriggerType), f.Loop, f.Priority, f.Enabled,
		actionsJSON, scheduleJSON, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating flow: %w", err)
	}
	return nil
}

// GetFlow retrieves a flow by ID.
func (s *Store) GetFlow(ctx context.Context, id string) (*Flow, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+flowColumns+` FROM flows WHERE id = ?`, id)
	f, err := scanFlow(row)
	if err != nil {
		return nil, fmt.Errorf("getting flow: %w", err)
	}
	return f, nil
}

// ListFlows returns all flows ordered by name.
func (s *Store) ListFlows(ctx context.Context) ([]Flow, error) {
	return s.queryFlows(ctx,
		`SELECT `+flowColumns+` FROM flows ORDER BY name`)
}

// SearchFlows searches flows by name or description.
func (s *Store) SearchFlows(ctx context.Context, query string) ([]Flow, error) {
	pattern := "%" + query + "%"
	return s.queryFlows(ctx,
		`SELECT `+flowColumns+` FROM flows
		 WHERE name LIKE ? OR name_he LIKE ? OR description LIKE ? ORDER BY name`,
		pattern, pattern, pattern)
}

// UpdateFlow updates a flow's fields.
func (s *Store) UpdateFlow(ctx context.Context, f *Flow) error {
	f.UpdatedAt = time.Now().UTC()

	actionsJSON, scheduleJSON, err := encodeFlow(f)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE flows SET name=?, name_he=?, description=?, description_he=?,
		 trigger_type=?, loop=?, priority=?, enabled=?, actions=?, schedule=?, updated_at=?
		 WHERE id=?`,
		f.Name, f.NameHe, f.Description, f.DescriptionHe,
		string(f.TriggerType), f.Loop, f.Priority, f.Enabled,
		actionsJSON, scheduleJSON, f.UpdatedAt, f.ID,
	)
	if err != nil {
		return fmt.Errorf("updating flow: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteFlow removes a flow by ID.
func (s *Store) DeleteFlow(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM flows WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("deleting flow: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) queryFlows(ctx context.Context, q string, args ...any) ([]Flow, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("listing flows: %w", err)
	}
	defer rows.Close()

	var result []Flow
	for rows.Next() {
		f, err := scanFlow(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning flow: %w", err)
		}
		result = append(result, *f)
	}
	return result, rows.Err()
}

func encodeFlow(f *Flow) (actionsJSON string, scheduleJSON sql.NullString, err error) {
	if f.Actions == nil {
		f.Actions = []studio.WireAction{}
	}
	raw, err := json.Marshal(f.Actions)
	if err != nil {
		return "", sql.NullString{}, fmt.Errorf("marshaling actions: %w", err)
	}
	actionsJSON = string(raw)

	if f.Schedule != nil {
		raw, err := json.Marshal(f.Schedule)
		if err != nil {
			return "", sql.NullString{}, fmt.Errorf("marshaling schedule: %w", err)
		}
		scheduleJSON = sql.NullString{String: string(raw), Valid: true}
	}
	return actionsJSON, scheduleJSON, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFlow(row rowScanner) (*Flow, error) {
	f := &Flow{}
	var trigger, actionsJSON string
	var scheduleJSON sql.NullString
	err := row.Scan(&f.ID, &f.Name, &f.NameHe, &f.Description, &f.DescriptionHe,
		&trigger, &f.Loop, &f.Priority, &f.Enabled,
		&actionsJSON, &scheduleJSON, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	f.TriggerType = studio.TriggerType(trigger)
	if err := json.Unmarshal([]byte(actionsJSON), &f.Actions); err != nil {
		return nil, fmt.Errorf("unmarshaling actions: %w", err)
	}
	if scheduleJSON.Valid {
		f.Schedule = &studio.Schedule{}
		if err := json.Unmarshal([]byte(scheduleJSON.String), f.Schedule); err != nil {
			return nil, fmt.Errorf("unmarshaling schedule: %w", err)
		}
	}
	return f, nil
}
