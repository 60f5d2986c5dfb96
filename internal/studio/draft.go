// Package studio holds the flow-authoring core of the radiodesk dashboard:
// the action model and its validator, the playback-duration estimator, the
// editable flow draft, and the step-through simulator.
package studio

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrFlowNotFound is returned by Load when the requested flow id is absent
// from the backend's collection.
var ErrFlowNotFound = errors.New("flow not found")

// Draft is the in-memory state of one flow being authored. It is owned by a
// single editor session and mutated only through its methods, each of which
// recomputes derived validity and marks the draft dirty. A Draft is not safe
// for concurrent use; create one per open editor.
type Draft struct {
	FlowID        string
	Name          string
	NameHe        string
	Description   string
	DescriptionHe string
	Actions       []Action
	Loop          bool
	TriggerType   TriggerType
	Priority      int
	Schedule      *Schedule

	SelectedBlockID string
	Dirty           bool
	Loading         bool
	Saving          bool

	SimState SimState
	SimStep  int
	SimTime  int
}

// NewDraft returns an empty draft with manual triggering and an idle
// simulator.
func NewDraft() *Draft {
	return &Draft{
		TriggerType: TriggerManual,
		SimState:    SimIdle,
	}
}

// Reset returns the draft to empty defaults, including the simulator. The
// result is a fresh baseline, so the draft is clean.
func (d *Draft) Reset() {
	*d = *NewDraft()
}

func (d *Draft) SetName(v string)          { d.Name = v; d.Dirty = true }
func (d *Draft) SetNameHe(v string)        { d.NameHe = v; d.Dirty = true }
func (d *Draft) SetDescription(v string)   { d.Description = v; d.Dirty = true }
func (d *Draft) SetDescriptionHe(v string) { d.DescriptionHe = v; d.Dirty = true }
func (d *Draft) SetLoop(v bool)            { d.Loop = v; d.Dirty = true }
func (d *Draft) SetPriority(v int)         { d.Priority = v; d.Dirty = true }

func (d *Draft) SetTriggerType(v TriggerType) { d.TriggerType = v; d.Dirty = true }
func (d *Draft) SetSchedule(s *Schedule)      { d.Schedule = s; d.Dirty = true }

// MarkClean clears the dirty flag without saving.
func (d *Draft) MarkClean() { d.Dirty = false }

// AddAction assigns a fresh editor-local id to the given action data,
// validates it, and inserts it at index (clamped to the list bounds) or
// appends when index is omitted or out of range. The new action's id is
// returned.
func (d *Draft) AddAction(data WireAction, index ...int) string {
	a := Action{ID: uuid.NewString(), WireAction: data}
	a.revalidate()

	pos := len(d.Actions)
	if len(index) > 0 && index[0] >= 0 && index[0] <= len(d.Actions) {
		pos = index[0]
	}

	d.Actions = append(d.Actions, Action{})
	copy(d.Actions[pos+1:], d.Actions[pos:])
	d.Actions[pos] = a
	d.Dirty = true
	return a.ID
}

// UpdateAction merges the patch into the matching action and re-validates
// the merged result. An unknown id is a no-op.
func (d *Draft) UpdateAction(id string, patch ActionPatch) {
	for i := range d.Actions {
		if d.Actions[i].ID != id {
			continue
		}
		d.Actions[i].apply(patch)
		d.Actions[i].revalidate()
		d.Dirty = true
		return
	}
}

// RemoveAction deletes the matching action, clearing the block selection if
// it pointed at the removed action.
func (d *Draft) RemoveAction(id string) {
	for i := range d.Actions {
		if d.Actions[i].ID != id {
			continue
		}
		d.Actions = append(d.Actions[:i], d.Actions[i+1:]...)
		if d.SelectedBlockID == id {
			d.SelectedBlockID = ""
		}
		d.Dirty = true
		return
	}
}

// ReorderActions removes the element at from and reinserts it at to.
// Out-of-range indices are clamped to the list bounds.
func (d *Draft) ReorderActions(from, to int) {
	n := len(d.Actions)
	if n == 0 {
		return
	}
	from = clamp(from, 0, n-1)
	to = clamp(to, 0, n-1)
	if from == to {
		return
	}

	a := d.Actions[from]
	d.Actions = append(d.Actions[:from], d.Actions[from+1:]...)
	d.Actions = append(d.Actions, Action{})
	copy(d.Actions[to+1:], d.Actions[to:])
	d.Actions[to] = a
	d.Dirty = true
}

// SelectBlock records which action block the editor has focused. Selection is
// ephemeral UI state and does not dirty the draft.
func (d *Draft) SelectBlock(id string) {
	d.SelectedBlockID = id
}

// ClearActions empties the action list and the selection.
func (d *Draft) ClearActions() {
	d.Actions = nil
	d.SelectedBlockID = ""
	d.Dirty = true
}

// Payload builds the wire payload for the current draft, stripping the
// editor-local fields from each action.
func (d *Draft) Payload() FlowPayload {
	actions := make([]WireAction, len(d.Actions))
	for i, a := range d.Actions {
		actions[i] = a.WireAction
	}
	return FlowPayload{
		Name:          d.Name,
		NameHe:        d.NameHe,
		Description:   d.Description,
		DescriptionHe: d.DescriptionHe,
		Actions:       actions,
		TriggerType:   d.TriggerType,
		Loop:          d.Loop,
		Priority:      d.Priority,
		Schedule:      d.Schedule,
	}
}

// Save persists the draft through the adapter: create when the draft has no
// id yet, update otherwise. On success the dirty flag is cleared and the
// server-issued id adopted; on failure the draft is left otherwise untouched.
// Invalid actions do not block saving. Single attempt, no retries.
func (d *Draft) Save(ctx context.Context, api FlowAPI) (string, error) {
	d.Saving = true
	defer func() { d.Saving = false }()

	payload := d.Payload()

	if d.FlowID == "" {
		id, err := api.CreateFlow(ctx, payload)
		if err != nil {
			return "", fmt.Errorf("creating flow: %w", err)
		}
		d.FlowID = id
	} else {
		if err := api.UpdateFlow(ctx, d.FlowID, payload); err != nil {
			return "", fmt.Errorf("updating flow: %w", err)
		}
	}

	d.Dirty = false
	return d.FlowID, nil
}

// Load fetches the flow collection and replaces the entire draft with the
// flow matching id, assigning fresh editor-local ids and running validation
// on every action. The simulator is reset and the draft starts clean. When
// the id is absent the draft is left untouched and ErrFlowNotFound returned.
func (d *Draft) Load(ctx context.Context, api FlowAPI, id string) error {
	d.Loading = true
	defer func() { d.Loading = false }()

	records, err := api.ListFlows(ctx)
	if err != nil {
		return fmt.Errorf("listing flows: %w", err)
	}

	var found *FlowRecord
	for i := range records {
		if records[i].ID == id {
			found = &records[i]
			break
		}
	}
	if found == nil {
		return ErrFlowNotFound
	}

	actions := make([]Action, len(found.Actions))
	for i, w := range found.Actions {
		a := Action{ID: uuid.NewString(), WireAction: w}
		a.revalidate()
		actions[i] = a
	}

	d.Reset()
	d.FlowID = found.ID
	d.Name = found.Name
	d.NameHe = found.NameHe
	d.Description = found.Description
	d.DescriptionHe = found.DescriptionHe
	d.Actions = actions
	d.Loop = found.Loop
	d.TriggerType = found.TriggerType
	d.Priority = found.Priority
	d.Schedule = found.Schedule
	return nil
}

// AllValid reports whether every action in the draft passes validation.
func (d *Draft) AllValid() bool {
	for i := range d.Actions {
		if !d.Actions[i].Valid {
			return false
		}
	}
	return true
}

// TotalSeconds sums the estimated duration of every action in the draft.
func (d *Draft) TotalSeconds() int {
	total := 0
	for i := range d.Actions {
		total += EstimateSeconds(d.Actions[i].WireAction)
	}
	return total
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
