package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shayulman/radiodesk/internal/db"
)

// Store provides CRUD operations for the content library.
type Store struct {
	db *db.DB
}

// NewStore creates a new content store.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

const itemColumns = `id, title, title_he, kind, genre, artist, duration_seconds, file_path, tags, created_at, updated_at`

// CreateItem inserts a new library item.
func (s *Store) CreateItem(ctx context.Context, it *Item) error {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	if !it.Kind.Known() {
		return fmt.Errorf("unknown content kind: %s", it.Kind)
	}
	now := time.Now().UTC()
	it.CreatedAt = now
	it.UpdatedAt = now

	if it.Tags == nil {
		it.Tags = []string{}
	}
	tagsJSON, err := json.Marshal(it.Tags)
	if err != nil {
		return fmt.Errorf("marshaling tags: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO content_items (`+itemColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.ID, it.Title, it.TitleHe, string(it.Kind), it.Genre, it.Artist,
		it.DurationSeconds, it.FilePath, string(tagsJSON), it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating content item: %w", err)
	}
	return nil
}

// GetItem retrieves a library item by ID.
func (s *Store) GetItem(ctx context.Context, id string) (*Item, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM content_items WHERE id = ?`, id)
	it, err := scanItem(row)
	if err != nil {
		return nil, fmt.Errorf("getting content item: %w", err)
	}
	return it, nil
}

// ListItems returns library items matching the filter, ordered by title.
func (s *Store) ListItems(ctx context.Context, filter ListFilter) ([]Item, error) {
	q := `SELECT ` + itemColumns + ` FROM content_items WHERE 1=1`
	var args []any
	if filter.Query != "" {
		q += ` AND (title LIKE ? OR title_he LIKE ? OR artist LIKE ?)`
		pattern := "%" + filter.Query + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if filter.Kind != "" {
		q += ` AND kind = ?`
		args = append(args, string(filter.Kind))
	}
	if filter.Genre != "" {
		q += ` AND genre = ?`
		args = append(args, filter.Genre)
	}
	q += ` ORDER BY title`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("listing content items: %w", err)
	}
	defer rows.Close()

	var result []Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning content item: %w", err)
		}
		result = append(result, *it)
	}
	return result, rows.Err()
}

// UpdateItem updates a library item's fields.
func (s *Store) UpdateItem(ctx context.Context, it *Item) error {
	if !it.Kind.Known() {
		return fmt.Errorf("unknown content kind: %s", it.Kind)
	}
	it.UpdatedAt = time.Now().UTC()
	if it.Tags == nil {
		it.Tags = []string{}
	}
	tagsJSON, err := json.Marshal(it.Tags)
	if err != nil {
		return fmt.Errorf("marshaling tags: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE content_items SET title=?, title_he=?, kind=?, genre=?, artist=?,
		 duration_seconds=?, file_path=?, tags=?, updated_at=? WHERE id=?`,
		it.Title, it.TitleHe, string(it.Kind), it.Genre, it.Artist,
		it.DurationSeconds, it.FilePath, string(tagsJSON), it.UpdatedAt, it.ID,
	)
	if err != nil {
		return fmt.Errorf("updating content item: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteItem removes a library item by ID.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM content_items WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("deleting content item: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// HasFilePath reports whether an item with the given file path exists.
func (s *Store) HasFilePath(ctx context.Context, path string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM content_items WHERE file_path = ?`, path).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking file path: %w", err)
	}
	return count > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*Item, error) {
	it := &Item{}
	var kind, tagsJSON string
	err := row.Scan(&it.ID, &it.Title, &it.TitleHe, &kind, &it.Genre, &it.Artist,
		&it.DurationSeconds, &it.FilePath, &tagsJSON, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	it.Kind = Kind(kind)
	if err := json.Unmarshal([]byte(tagsJSON), &it.Tags); err != nil {
		return nil, fmt.Errorf("unmarshaling tags: %w", err)
	}
	return it, nil
}
