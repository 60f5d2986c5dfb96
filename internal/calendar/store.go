package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shayulman/radiodesk/internal/db"
)

// Store provides CRUD operations for calendar events.
type Store struct {
	db *db.DB
}

// NewStore creates a new calendar store.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

const eventColumns = `id, title, title_he, starts_at, ends_at, all_day, flow_id, color, created_at, updated_at`

func validate(e *Event) error {
	if e.EndsAt.Before(e.StartsAt) {
		return fmt.Errorf("event ends before it starts")
	}
	return nil
}

// CreateEvent inserts a new calendar event.
func (s *Store) CreateEvent(ctx context.Context, e *Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if err := validate(e); err != nil {
		return err
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO calendar_events (`+eventColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.TitleHe, e.StartsAt, e.EndsAt, e.AllDay,
		nullString(e.FlowID), e.Color, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating event: %w", err)
	}
	return nil
}

// GetEvent retrieves an event by ID.
func (s *Store) GetEvent(ctx context.Context, id string) (*Event, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM calendar_events WHERE id = ?`, id)
	e, err := scanEvent(row)
	if err != nil {
		return nil, fmt.Errorf("getting event: %w", err)
	}
	return e, nil
}

// ListEvents returns events overlapping the [from, to) window, ordered by
// start time. Zero bounds mean unbounded on that side.
func (s *Store) ListEvents(ctx context.Context, from, to time.Time) ([]Event, error) {
	q := `SELECT ` + eventColumns + ` FROM calendar_events WHERE 1=1`
	var args []any
	if !from.IsZero() {
		q += ` AND ends_at > ?`
		args = append(args, from)
	}
	if !to.IsZero() {
		q += ` AND starts_at < ?`
		args = append(args, to)
	}
	q += ` ORDER BY starts_at`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var result []Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		result = append(result, *e)
	}
	return result, rows.Err()
}

// UpdateEvent updates an event's fields.
func (s *Store) UpdateEvent(ctx context.Context, e *Event) error {
	if err := validate(e); err != nil {
		return err
	}
	e.UpdatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(ctx,
		`UPDATE calendar_events SET title=?, title_he=?, starts_at=?, ends_at=?,
		 all_day=?, flow_id=?, color=?, updated_at=? WHERE id=?`,
		e.Title, e.TitleHe, e.StartsAt, e.EndsAt, e.AllDay,
		nullString(e.FlowID), e.Color, e.UpdatedAt, e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteEvent removes an event by ID.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM calendar_events WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*Event, error) {
	e := &Event{}
	var flowID sql.NullString
	err := row.Scan(&e.ID, &e.Title, &e.TitleHe, &e.StartsAt, &e.EndsAt,
		&e.AllDay, &flowID, &e.Color, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.FlowID = flowID.String
	return e, nil
}
