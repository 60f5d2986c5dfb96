package studio

import (
	"context"
	"errors"
	"testing"
)

// fakeAPI is an in-memory FlowAPI for draft tests.
type fakeAPI struct {
	records   []FlowRecord
	nextID    string
	creates   int
	updates   int
	failNext  error
	lastSaved FlowPayload
}

func (f *fakeAPI) ListFlows(ctx context.Context) ([]FlowRecord, error) {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return nil, err
	}
	return f.records, nil
}

func (f *fakeAPI) CreateFlow(ctx context.Context, p FlowPayload) (string, error) {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return "", err
	}
	f.creates++
	f.lastSaved = p
	id := f.nextID
	if id == "" {
		id = "flow-1"
	}
	f.records = append(f.records, FlowRecord{ID: id, FlowPayload: p})
	return id, nil
}

func (f *fakeAPI) UpdateFlow(ctx context.Context, id string, p FlowPayload) error {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	f.updates++
	f.lastSaved = p
	return nil
}

func genreAction(minutes int) WireAction {
	return WireAction{Type: ActionPlayGenre, ActionParams: ActionParams{Genre: "pop", DurationMinutes: Int(minutes)}}
}

func TestAddActionAppendsAndPrepends(t *testing.T) {
	d := NewDraft()
	first := d.AddAction(genreAction(10))
	second := d.AddAction(genreAction(20))
	if d.Actions[0].ID != first || d.Actions[1].ID != second {
		t.Fatal("AddAction without index should append")
	}

	front := d.AddAction(genreAction(5), 0)
	if d.Actions[0].ID != front {
		t.Error("AddAction with index 0 should prepend")
	}
	if len(d.Actions) != 3 {
		t.Fatalf("len = %d, want 3", len(d.Actions))
	}

	// Out-of-range index appends.
	last := d.AddAction(genreAction(1), 99)
	if d.Actions[len(d.Actions)-1].ID != last {
		t.Error("out-of-range index should append")
	}
	if !d.Dirty {
		t.Error("AddAction should mark the draft dirty")
	}
}

func TestAddActionValidates(t *testing.T) {
	d := NewDraft()
	d.AddAction(WireAction{Type: ActionWait})
	if d.Actions[0].Valid {
		t.Error("invalid action stored as valid")
	}
	if len(d.Actions[0].Errors) == 0 {
		t.Error("invalid action stored without errors")
	}
}

func TestUpdateActionRevalidates(t *testing.T) {
	d := NewDraft()
	id := d.AddAction(WireAction{Type: ActionWait})
	d.MarkClean()

	d.UpdateAction(id, ActionPatch{DurationMinutes: Int(5)})
	if !d.Actions[0].Valid {
		t.Errorf("action should be valid after patch, errors: %v", d.Actions[0].Errors)
	}
	if !d.Dirty {
		t.Error("UpdateAction should mark the draft dirty")
	}
}

func TestUpdateActionUnknownIDIsNoop(t *testing.T) {
	d := NewDraft()
	d.AddAction(genreAction(10))
	d.MarkClean()
	before := d.Actions[0]

	d.UpdateAction("nope", ActionPatch{Genre: strPtr("metal")})
	if d.Actions[0].Genre != before.Genre || len(d.Actions) != 1 {
		t.Error("update with unknown id changed the list")
	}
	if d.Dirty {
		t.Error("no-op update should not dirty the draft")
	}
}

func TestRemoveActionClearsSelection(t *testing.T) {
	d := NewDraft()
	id := d.AddAction(genreAction(10))
	d.SelectBlock(id)

	d.RemoveAction(id)
	if len(d.Actions) != 0 {
		t.Error("action not removed")
	}
	if d.SelectedBlockID != "" {
		t.Error("selection should be cleared when the selected block is removed")
	}
}

func TestReorderActions(t *testing.T) {
	d := NewDraft()
	a := d.AddAction(genreAction(1))
	b := d.AddAction(genreAction(2))
	c := d.AddAction(genreAction(3))

	d.ReorderActions(0, 2)
	got := []string{d.Actions[0].ID, d.Actions[1].ID, d.Actions[2].ID}
	want := []string{b, c, a}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	// Out-of-range indices are clamped.
	d.ReorderActions(-5, 99)
	if d.Actions[2].ID != b {
		t.Error("clamped reorder should move first element to the end")
	}
}

func TestSelectBlockDoesNotDirty(t *testing.T) {
	d := NewDraft()
	id := d.AddAction(genreAction(1))
	d.MarkClean()
	d.SelectBlock(id)
	if d.Dirty {
		t.Error("SelectBlock should not dirty the draft")
	}
	if d.SelectedBlockID != id {
		t.Error("selection not recorded")
	}
}

func TestClearActions(t *testing.T) {
	d := NewDraft()
	id := d.AddAction(genreAction(1))
	d.SelectBlock(id)
	d.MarkClean()

	d.ClearActions()
	if len(d.Actions) != 0 || d.SelectedBlockID != "" {
		t.Error("ClearActions should empty the list and the selection")
	}
	if !d.Dirty {
		t.Error("ClearActions should dirty the draft")
	}
}

func TestSettersDirty(t *testing.T) {
	d := NewDraft()
	muts := []func(){
		func() { d.SetName("Morning Mix") },
		func() { d.SetNameHe("מיקס בוקר") },
		func() { d.SetDescription("weekday opener") },
		func() { d.SetDescriptionHe("פתיח ימי חול") },
		func() { d.SetLoop(true) },
		func() { d.SetTriggerType(TriggerScheduled) },
		func() { d.SetPriority(3) },
		func() { d.SetSchedule(&Schedule{Recurrence: RecurDaily, StartTime: "07:00", EndTime: "10:00"}) },
	}
	for i, mut := range muts {
		d.MarkClean()
		mut()
		if !d.Dirty {
			t.Errorf("mutation %d did not dirty the draft", i)
		}
	}
}

func TestSaveCreatesThenUpdates(t *testing.T) {
	d := NewDraft()
	d.SetName("Night Loop")
	d.AddAction(genreAction(30))
	api := &fakeAPI{nextID: "srv-42"}

	id, err := d.Save(context.Background(), api)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id != "srv-42" || d.FlowID != "srv-42" {
		t.Errorf("draft did not adopt server id, got %q", d.FlowID)
	}
	if d.Dirty {
		t.Error("successful save should clear dirty")
	}
	if api.creates != 1 || api.updates != 0 {
		t.Errorf("creates=%d updates=%d, want 1/0", api.creates, api.updates)
	}

	d.SetName("Night Loop v2")
	if _, err := d.Save(context.Background(), api); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if api.creates != 1 || api.updates != 1 {
		t.Errorf("creates=%d updates=%d, want 1/1", api.creates, api.updates)
	}
}

func TestSaveStripsClientFields(t *testing.T) {
	d := NewDraft()
	d.SetName("Strip Check")
	d.AddAction(WireAction{Type: ActionWait}) // invalid on purpose
	api := &fakeAPI{}

	if _, err := d.Save(context.Background(), api); err != nil {
		t.Fatalf("Save with invalid action should still proceed: %v", err)
	}
	if len(api.lastSaved.Actions) != 1 {
		t.Fatalf("payload actions = %d, want 1", len(api.lastSaved.Actions))
	}
	if api.lastSaved.Actions[0].Type != ActionWait {
		t.Errorf("payload action type = %s", api.lastSaved.Actions[0].Type)
	}
}

func TestSaveFailureLeavesStateUntouched(t *testing.T) {
	d := NewDraft()
	d.SetName("Flaky")
	api := &fakeAPI{failNext: errors.New("network down")}

	if _, err := d.Save(context.Background(), api); err == nil {
		t.Fatal("expected save error")
	}
	if !d.Dirty {
		t.Error("failed save should leave the draft dirty")
	}
	if d.FlowID != "" {
		t.Error("failed save should not assign an id")
	}
	if d.Saving {
		t.Error("Saving flag should be cleared after the attempt")
	}
}

func TestLoadFlow(t *testing.T) {
	api := &fakeAPI{records: []FlowRecord{{
		ID: "abc",
		FlowPayload: FlowPayload{
			Name:        "Shabbat Playlist",
			NameHe:      "פלייליסט שבת",
			TriggerType: TriggerScheduled,
			Loop:        true,
			Priority:    2,
			Actions: []WireAction{
				{Type: ActionPlayGenre, ActionParams: ActionParams{Genre: "israeli", DurationMinutes: Int(60)}},
				{Type: ActionWait},
			},
		},
	}}}

	d := NewDraft()
	d.SetName("scratch")
	d.StartSimulation()
	if err := d.Load(context.Background(), api, "abc"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.FlowID != "abc" || d.Name != "Shabbat Playlist" || !d.Loop {
		t.Errorf("draft not replaced: %+v", d)
	}
	if d.Dirty {
		t.Error("loaded draft should start clean")
	}
	if d.SimState != SimIdle || d.SimStep != 0 || d.SimTime != 0 {
		t.Error("simulator should reset on load")
	}
	if d.Actions[0].ID == "" || d.Actions[1].ID == "" {
		t.Error("loaded actions should receive fresh ids")
	}
	if d.Actions[0].ID == d.Actions[1].ID {
		t.Error("loaded actions share an id")
	}
	if !d.Actions[0].Valid {
		t.Error("first action should validate on load")
	}
	if d.Actions[1].Valid {
		t.Error("incomplete wait action should be invalid on load")
	}
	if d.Loading {
		t.Error("Loading flag should be cleared")
	}
}

func TestLoadFlowNotFound(t *testing.T) {
	api := &fakeAPI{records: []FlowRecord{{ID: "other"}}}
	d := NewDraft()
	d.SetName("keep me")

	err := d.Load(context.Background(), api, "missing")
	if !errors.Is(err, ErrFlowNotFound) {
		t.Fatalf("err = %v, want ErrFlowNotFound", err)
	}
	if d.Name != "keep me" {
		t.Error("failed load should leave prior state untouched")
	}
}

func TestResetClearsEverything(t *testing.T) {
	d := NewDraft()
	d.SetName("x")
	d.AddAction(genreAction(1))
	d.StartSimulation()
	d.StepSimulation()

	d.Reset()
	if d.Dirty || d.Name != "" || len(d.Actions) != 0 {
		t.Error("Reset should restore empty defaults")
	}
	if d.SimState != SimIdle || d.SimStep != 0 || d.SimTime != 0 {
		t.Error("Reset should reset the simulator")
	}
	if d.TriggerType != TriggerManual {
		t.Errorf("trigger type = %s, want manual", d.TriggerType)
	}
}

func strPtr(s string) *string { return &s }
