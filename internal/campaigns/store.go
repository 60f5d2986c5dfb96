package campaigns

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shayulman/radiodesk/internal/db"
)

// Store provides CRUD operations for campaigns.
type Store struct {
	db *db.DB
}

// NewStore creates a new campaigns store.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

const campaignColumns = `id, name, advertiser, start_date, end_date, daily_slots, content_ids, status, notes, created_at, updated_at`

func validate(c *Campaign) error {
	if c.Status == "" {
		c.Status = StatusDraft
	}
	if !c.Status.Known() {
		return fmt.Errorf("unknown campaign status: %s", c.Status)
	}
	if c.EndDate.Before(c.StartDate) {
		return fmt.Errorf("campaign window ends before it starts")
	}
	if c.DailySlots < 1 {
		c.DailySlots = 1
	}
	return nil
}

// CreateCampaign inserts a new campaign.
func (s *Store) CreateCampaign(ctx context.Context, c *Campaign) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := validate(c); err != nil {
		return err
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	if c.ContentIDs == nil {
		c.ContentIDs = []string{}
	}
	idsJSON, err := json.Marshal(c.ContentIDs)
	if err != nil {
		return fmt.Errorf("marshaling content ids: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO campaigns (`+campaignColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Advertiser, c.StartDate, c.EndDate, c.DailySlots,
		string(idsJSON), string(c.Status), c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating campaign: %w", err)
	}
	return nil
}

// GetCampaign retrieves a campaign by ID.
func (s *Store) GetCampaign(ctx context.Context, id string) (*Campaign, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = ?`, id)
	c, err := scanCampaign(row)
	if err != nil {
		return nil, fmt.Errorf("getting campaign: %w", err)
	}
	return c, nil
}

// ListCampaigns returns campaigns, optionally narrowed to one status,
// ordered by start date.
func (s *Store) ListCampaigns(ctx context.Context, status Status) ([]Campaign, error) {
	q := `SELECT ` + campaignColumns + ` FROM campaigns`
	var args []any
	if status != "" {
		q += ` WHERE status = ?`
		args = append(args, string(status))
	}
	q += ` ORDER BY start_date`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("listing campaigns: %w", err)
	}
	defer rows.Close()

	var result []Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning campaign: %w", err)
		}
		result = append(result, *c)
	}
	return result, rows.Err()
}

// UpdateCampaign updates a campaign's fields.
func (s *Store) UpdateCampaign(ctx context.Context, c *Campaign) error {
	if err := validate(c); err != nil {
		return err
	}
	c.UpdatedAt = time.Now().UTC()
	if c.ContentIDs == nil {
		c.ContentIDs = []string{}
	}
	idsJSON, err := json.Marshal(c.ContentIDs)
	if err != nil {
		return fmt.Errorf("marshaling content ids: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE campaigns SET name=?, advertiser=?, start_date=?, end_date=?,
		 daily_slots=?, content_ids=?, status=?, notes=?, updated_at=? WHERE id=?`,
		c.Name, c.Advertiser, c.StartDate, c.EndDate, c.DailySlots,
		string(idsJSON), string(c.Status), c.Notes, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating campaign: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteCampaign removes a campaign by ID.
func (s *Store) DeleteCampaign(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM campaigns WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("deleting campaign: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (*Campaign, error) {
	c := &Campaign{}
	var status, idsJSON string
	err := row.Scan(&c.ID, &c.Name, &c.Advertiser, &c.StartDate, &c.EndDate,
		&c.DailySlots, &idsJSON, &status, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Status = Status(status)
	if err := json.Unmarshal([]byte(idsJSON), &c.ContentIDs); err != nil {
		return nil, fmt.Errorf("unmarshaling content ids: %w", err)
	}
	return c, nil
}
