package campaigns

import "time"

// Status is a campaign's lifecycle position.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusPaused   Status = "paused"
	StatusFinished Status = "finished"
)

// Known reports whether s is a recognized campaign status.
func (s Status) Known() bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusFinished:
		return true
	}
	return false
}

// Campaign is an advertising booking: which commercials run, how many slots
// per day, and over what date window. The scheduling engine that actually
// places the spots is server-side and external to this dashboard.
type Campaign struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Advertiser string    `json:"advertiser,omitempty"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	DailySlots int       `json:"daily_slots"`
	ContentIDs []string  `json:"content_ids"`
	Status     Status    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
