package studio

import "time"

// Recurrence describes how often a scheduled flow repeats.
type Recurrence string

const (
	RecurNone    Recurrence = "none"
	RecurDaily   Recurrence = "daily"
	RecurWeekly  Recurrence = "weekly"
	RecurMonthly Recurrence = "monthly"
	RecurYearly  Recurrence = "yearly"
)

// TriggerType says whether a flow runs on a schedule or only when started
// manually from the dashboard.
type TriggerType string

const (
	TriggerScheduled TriggerType = "scheduled"
	TriggerManual    TriggerType = "manual"
)

// Schedule is either a one-off absolute window (Recurrence == none, using
// StartDatetime/EndDatetime) or a recurring pattern (StartTime/EndTime plus
// the qualifier matching the recurrence). The editor populates exactly one of
// the two shapes.
type Schedule struct {
	Recurrence    Recurrence `json:"recurrence"`
	StartDatetime *time.Time `json:"start_datetime,omitempty"`
	EndDatetime   *time.Time `json:"end_datetime,omitempty"`
	StartTime     string     `json:"start_time,omitempty"` // "HH:MM"
	EndTime       string     `json:"end_time,omitempty"`   // "HH:MM"
	Days          []string   `json:"days,omitempty"`       // weekly: "sunday".."saturday"
	DayOfMonth    int        `json:"day_of_month,omitempty"`
	Month         int        `json:"month,omitempty"` // yearly: 1..12
}
