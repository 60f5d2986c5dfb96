package flows

import (
	"context"

	"github.com/shayulman/radiodesk/internal/studio"
)

// StudioAPI adapts the flows store to the studio's persistence contract so
// a flow draft can save and load without knowing about the database.
type StudioAPI struct {
	store *Store
}

// NewStudioAPI wraps the given store.
func NewStudioAPI(s *Store) *StudioAPI {
	return &StudioAPI{store: s}
}

var _ studio.FlowAPI = (*StudioAPI)(nil)

// ListFlows returns every stored flow in the studio's record shape.
func (a *StudioAPI) ListFlows(ctx context.Context) ([]studio.FlowRecord, error) {
	stored, err := a.store.ListFlows(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]studio.FlowRecord, len(stored))
	for i, f := range stored {
		records[i] = studio.FlowRecord{ID: f.ID, FlowPayload: toPayload(&f)}
	}
	return records, nil
}

// CreateFlow stores a new flow from the studio payload and returns its id.
func (a *StudioAPI) CreateFlow(ctx context.Context, p studio.FlowPayload) (string, error) {
	f := fromPayload(p)
	f.Enabled = true
	if err := a.store.CreateFlow(ctx, f); err != nil {
		return "", err
	}
	return f.ID, nil
}

// UpdateFlow overwrites the stored flow's authored fields, preserving its
// enabled state.
func (a *StudioAPI) UpdateFlow(ctx context.Context, id string, p studio.FlowPayload) error {
	existing, err := a.store.GetFlow(ctx, id)
	if err != nil {
		return err
	}
	f := fromPayload(p)
	f.ID = id
	f.Enabled = existing.Enabled
	f.CreatedAt = existing.CreatedAt
	return a.store.UpdateFlow(ctx, f)
}

func toPayload(f *Flow) studio.FlowPayload {
	return studio.FlowPayload{
		Name:          f.Name,
		NameHe:        f.NameHe,
		Description:   f.Description,
		DescriptionHe: f.DescriptionHe,
		Actions:       f.Actions,
		TriggerType:   f.TriggerType,
		Loop:          f.Loop,
		Priority:      f.Priority,
		Schedule:      f.Schedule,
	}
}

func fromPayload(p studio.FlowPayload) *Flow {
	return &Flow{
		Name:          p.Name,
		NameHe:        p.NameHe,
		Description:   p.Description,
		DescriptionHe: p.DescriptionHe,
		Actions:       p.Actions,
		TriggerType:   p.TriggerType,
		Loop:          p.Loop,
		Priority:      p.Priority,
		Schedule:      p.Schedule,
	}
}
