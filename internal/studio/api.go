package studio

import "context"

// FlowPayload is the wire shape sent to and received from the flow backend.
// Actions carry no editor-local fields.
type FlowPayload struct {
	Name          string       `json:"name"`
	NameHe        string       `json:"name_he,omitempty"`
	Description   string       `json:"description,omitempty"`
	DescriptionHe string       `json:"description_he,omitempty"`
	Actions       []WireAction `json:"actions"`
	TriggerType   TriggerType  `json:"trigger_type"`
	Loop          bool         `json:"loop"`
	Priority      int          `json:"priority"`
	Schedule      *Schedule    `json:"schedule,omitempty"`
}

// FlowRecord is a stored flow as returned by the backend: a payload plus its
// server-issued id.
type FlowRecord struct {
	ID string `json:"_id"`
	FlowPayload
}

// FlowAPI is the persistence adapter the draft saves through and loads from.
// It is treated as opaque I/O; implementations live outside this package.
type FlowAPI interface {
	ListFlows(ctx context.Context) ([]FlowRecord, error)
	CreateFlow(ctx context.Context, p FlowPayload) (string, error)
	UpdateFlow(ctx context.Context, id string, p FlowPayload) error
}
