package calendar

import "time"

// Event is a programming-calendar entry. Events may reference a flow so the
// broadcast grid shows what the automation will run in that slot; deleting
// the flow leaves the event in place with the reference cleared.
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	TitleHe   string    `json:"title_he,omitempty"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	AllDay    bool      `json:"all_day"`
	FlowID    string    `json:"flow_id,omitempty"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
