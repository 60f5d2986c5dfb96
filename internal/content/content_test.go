package content

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/shayulman/radiodesk/internal/db"
	"github.com/shayulman/radiodesk/internal/progress"
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

func TestCreateAndGetItem(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	it := &Item{
		Title:           "Tipat Mazal",
		TitleHe:         "טיפת מזל",
		Kind:            KindSong,
		Genre:           "mizrahi",
		Artist:          "Zohar Argov",
		DurationSeconds: 272,
		Tags:            []string{"classic", "80s"},
	}
	if err := store.CreateItem(ctx, it); err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if it.ID == "" {
		t.Fatal("expected item ID to be set")
	}

	got, err := store.GetItem(ctx, it.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if got.TitleHe != "טיפת מזל" || got.Artist != "Zohar Argov" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if len(got.Tags) != 2 {
		t.Errorf("tags = %v", got.Tags)
	}
}

func TestCreateItemRejectsUnknownKind(t *testing.T) {
	store := setupTestStore(t)
	err := store.CreateItem(context.Background(), &Item{Title: "x", Kind: "podcast"})
	if err == nil {
		t.Error("unknown kind should be rejected")
	}
}

func TestListItemsFilters(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	store.CreateItem(ctx, &Item{Title: "Golden Boy", Kind: KindSong, Genre: "pop"})
	store.CreateItem(ctx, &Item{Title: "Station ID", Kind: KindJingle})
	store.CreateItem(ctx, &Item{Title: "Toto Ad", Kind: KindCommercial})

	all, err := store.ListItems(ctx, ListFilter{})
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d items, want 3", len(all))
	}

	jingles, _ := store.ListItems(ctx, ListFilter{Kind: KindJingle})
	if len(jingles) != 1 || jingles[0].Title != "Station ID" {
		t.Errorf("kind filter: %+v", jingles)
	}

	pop, _ := store.ListItems(ctx, ListFilter{Genre: "pop"})
	if len(pop) != 1 {
		t.Errorf("genre filter: %+v", pop)
	}

	byQuery, _ := store.ListItems(ctx, ListFilter{Query: "golden"})
	if len(byQuery) != 1 {
		t.Errorf("query filter: %+v", byQuery)
	}
}

func TestUpdateAndDeleteItem(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	it := &Item{Title: "Old Title", Kind: KindSong}
	store.CreateItem(ctx, it)

	it.Title = "New Title"
	if err := store.UpdateItem(ctx, it); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	got, _ := store.GetItem(ctx, it.ID)
	if got.Title != "New Title" {
		t.Errorf("title = %q", got.Title)
	}

	if err := store.DeleteItem(ctx, it.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if err := store.DeleteItem(ctx, it.ID); err == nil {
		t.Error("double delete should fail")
	}
}

// --- Importer tests ---

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestImportDir(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "songs", "Arik Einstein - Ani VeAta.mp3"))
	writeFile(t, filepath.Join(dir, "jingles", "top_of_hour.wav"))
	writeFile(t, filepath.Join(dir, "commercials", "supermarket.mp3"))
	writeFile(t, filepath.Join(dir, "notes.txt")) // not audio

	result, err := store.ImportDir(ctx, dir, nil, progress.Silent{})
	if err != nil {
		t.Fatalf("ImportDir: %v", err)
	}
	if result.Scanned != 3 || result.Imported != 3 || result.Skipped != 0 {
		t.Fatalf("result = %+v", result)
	}

	songs, _ := store.ListItems(ctx, ListFilter{Kind: KindSong})
	if len(songs) != 1 || songs[0].Artist != "Arik Einstein" || songs[0].Title != "Ani VeAta" {
		t.Errorf("song metadata: %+v", songs)
	}

	jingles, _ := store.ListItems(ctx, ListFilter{Kind: KindJingle})
	if len(jingles) != 1 || jingles[0].Title != "top of hour" {
		t.Errorf("jingle metadata: %+v", jingles)
	}

	// Re-running skips everything already imported.
	again, err := store.ImportDir(ctx, dir, nil, progress.Silent{})
	if err != nil {
		t.Fatalf("second ImportDir: %v", err)
	}
	if again.Imported != 0 || again.Skipped != 3 {
		t.Errorf("second run = %+v", again)
	}
}

func TestImportDirCustomIncludes(t *testing.T) {
	store := setupTestStore(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.mp3"))
	writeFile(t, filepath.Join(dir, "b.wav"))

	result, err := store.ImportDir(context.Background(), dir, []string{"**/*.wav"}, progress.Silent{})
	if err != nil {
		t.Fatalf("ImportDir: %v", err)
	}
	if result.Scanned != 1 || result.Imported != 1 {
		t.Errorf("result = %+v", result)
	}
}

// --- Route tests ---

func testRouter(store *Store) chi.Router {
	r := chi.NewRouter()
	RegisterRoutes(r, store)
	return r
}

func TestContentRoutes(t *testing.T) {
	store := setupTestStore(t)
	r := testRouter(store)

	body, _ := json.Marshal(Item{Title: "Hinei Ma Tov", Kind: KindSong, Genre: "folk"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/content", bytes.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}
	var created Item
	json.Unmarshal(rec.Body.Bytes(), &created)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/content?kind=song", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var items []Item
	json.Unmarshal(rec.Body.Bytes(), &items)
	if len(items) != 1 {
		t.Errorf("items = %d, want 1", len(items))
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/content", bytes.NewReader([]byte(`{"title":"x","kind":"hologram"}`))))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad kind status = %d, want 400", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/content/"+created.ID, nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d", rec.Code)
	}
}
