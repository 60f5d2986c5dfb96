package flows

import (
	"time"

	"github.com/shayulman/radiodesk/internal/studio"
)

// Flow is a stored automation flow: a named, ordered action list plus
// trigger metadata, authored in the studio and executed elsewhere.
type Flow struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	NameHe        string              `json:"name_he,omitempty"`
	Description   string              `json:"description,omitempty"`
	DescriptionHe string              `json:"description_he,omitempty"`
	TriggerType   studio.TriggerType  `json:"trigger_type"`
	Loop          bool                `json:"loop"`
	Priority      int                 `json:"priority"`
	Enabled       bool                `json:"enabled"`
	Actions       []studio.WireAction `json:"actions"`
	Schedule      *studio.Schedule    `json:"schedule,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// ActionReport is the validation verdict for one action of a submitted flow.
type ActionReport struct {
	Index  int               `json:"index"`
	Type   studio.ActionType `json:"action_type"`
	Valid  bool              `json:"is_valid"`
	Errors []string          `json:"validation_errors,omitempty"`
}

// ValidationReport is the response of the flow validation endpoint.
type ValidationReport struct {
	Valid   bool           `json:"valid"`
	Actions []ActionReport `json:"actions"`
}

// SimulationReport is the response of the flow simulation endpoint.
type SimulationReport struct {
	FlowID       string                  `json:"flow_id"`
	TotalSeconds int                     `json:"total_seconds"`
	Steps        []studio.SimulationStep `json:"steps"`
}
