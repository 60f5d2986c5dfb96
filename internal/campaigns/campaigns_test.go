package campaigns

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shayulman/radiodesk/internal/db"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	d, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return NewStore(d)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateAndGetCampaign(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	c := &Campaign{
		Name:       "Rosh Hashana Sale",
		Advertiser: "SuperPharm",
		StartDate:  date(2026, time.September, 1),
		EndDate:    date(2026, time.September, 20),
		DailySlots: 8,
		ContentIDs: []string{"ad-1", "ad-2"},
		Status:     StatusActive,
	}
	if err := store.CreateCampaign(ctx, c); err != nil {
		t.Fatalf("CreateCampaign: %v", err)
	}
	if c.ID == "" {
		t.Fatal("expected campaign ID to be set")
	}

	got, err := store.GetCampaign(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetCampaign: %v", err)
	}
	if got.Advertiser != "SuperPharm" || got.DailySlots != 8 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if len(got.ContentIDs) != 2 {
		t.Errorf("content ids = %v", got.ContentIDs)
	}
}

func TestCreateCampaignDefaults(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	c := &Campaign{Name: "Bare", StartDate: date(2026, 1, 1), EndDate: date(2026, 1, 2)}
	if err := store.CreateCampaign(ctx, c); err != nil {
		t.Fatalf("CreateCampaign: %v", err)
	}
	if c.Status != StatusDraft {
		t.Errorf("status = %q, want draft", c.Status)
	}
	if c.DailySlots != 1 {
		t.Errorf("daily slots = %d, want 1", c.DailySlots)
	}
}

func TestCreateCampaignRejectsInvertedWindow(t *testing.T) {
	store := setupTestStore(t)
	err := store.CreateCampaign(context.Background(), &Campaign{
		Name:      "Backwards",
		StartDate: date(2026, 5, 10),
		EndDate:   date(2026, 5, 1),
	})
	if err == nil {
		t.Error("window ending before it starts should be rejected")
	}
}

func TestListCampaignsByStatus(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	store.CreateCampaign(ctx, &Campaign{Name: "A", StartDate: date(2026, 3, 1), EndDate: date(2026, 3, 5), Status: StatusActive})
	store.CreateCampaign(ctx, &Campaign{Name: "B", StartDate: date(2026, 1, 1), EndDate: date(2026, 1, 5), Status: StatusActive})
	store.CreateCampaign(ctx, &Campaign{Name: "C", StartDate: date(2026, 2, 1), EndDate: date(2026, 2, 5), Status: StatusPaused})

	active, err := store.ListCampaigns(ctx, StatusActive)
	if err != nil {
		t.Fatalf("ListCampaigns: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("got %d active, want 2", len(active))
	}
	if active[0].Name != "B" {
		t.Errorf("expected start-date ordering, got %q first", active[0].Name)
	}

	all, _ := store.ListCampaigns(ctx, "")
	if len(all) != 3 {
		t.Errorf("got %d total, want 3", len(all))
	}
}

func TestUpdateAndDeleteCampaign(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	c := &Campaign{Name: "Ad Push", StartDate: date(2026, 6, 1), EndDate: date(2026, 6, 30)}
	store.CreateCampaign(ctx, c)

	c.Status = StatusFinished
	if err := store.UpdateCampaign(ctx, c); err != nil {
		t.Fatalf("UpdateCampaign: %v", err)
	}
	got, _ := store.GetCampaign(ctx, c.ID)
	if got.Status != StatusFinished {
		t.Errorf("status = %q", got.Status)
	}

	if err := store.DeleteCampaign(ctx, c.ID); err != nil {
		t.Fatalf("DeleteCampaign: %v", err)
	}
	if err := store.DeleteCampaign(ctx, c.ID); err == nil {
		t.Error("double delete should fail")
	}
}

func TestCampaignRoutes(t *testing.T) {
	store := setupTestStore(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store)

	body, _ := json.Marshal(Campaign{
		Name:      "Hanukkah Promo",
		StartDate: date(2026, 12, 4),
		EndDate:   date(2026, 12, 12),
		Status:    StatusActive,
	})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/campaigns", bytes.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	var created Campaign
	json.Unmarshal(rec.Body.Bytes(), &created)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/campaigns?status=active", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var list []Campaign
	json.Unmarshal(rec.Body.Bytes(), &list)
	if len(list) != 1 {
		t.Errorf("list = %d, want 1", len(list))
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/campaigns?status=bogus", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bogus status filter = %d, want 400", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/campaigns", bytes.NewReader([]byte(`{"name":""}`))))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing name status = %d, want 400", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/campaigns/"+created.ID, nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", rec.Code)
	}
}
