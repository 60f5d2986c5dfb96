package content

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts content library endpoints on the given router.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Get("/api/content", listItemsHandler(store))
	r.Post("/api/content", createItemHandler(store))
	r.Get("/api/content/{id}", getItemHandler(store))
	r.Put("/api/content/{id}", updateItemHandler(store))
	r.Delete("/api/content/{id}", deleteItemHandler(store))
}

func listItemsHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := ListFilter{
			Query: r.URL.Query().Get("q"),
			Kind:  Kind(r.URL.Query().Get("kind")),
			Genre: r.URL.Query().Get("genre"),
		}
		result, err := store.ListItems(r.Context(), filter)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if result == nil {
			result = []Item{}
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func getItemHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		it, err := store.GetItem(r.Context(), id)
		if err != nil {
			http.Error(w, "content item not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, it)
	}
}

func createItemHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var it Item
		if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if it.Title == "" {
			http.Error(w, "title is required", http.StatusBadRequest)
			return
		}
		if !it.Kind.Known() {
			http.Error(w, "unknown content kind", http.StatusBadRequest)
			return
		}
		if err := store.CreateItem(r.Context(), &it); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, it)
	}
}

func updateItemHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var it Item
		if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		it.ID = id
		if !it.Kind.Known() {
			http.Error(w, "unknown content kind", http.StatusBadRequest)
			return
		}
		if err := store.UpdateItem(r.Context(), &it); err != nil {
			http.Error(w, "content item not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, it)
	}
}

func deleteItemHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := store.DeleteItem(r.Context(), id); err != nil {
			http.Error(w, "content item not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
