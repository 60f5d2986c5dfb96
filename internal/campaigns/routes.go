package campaigns

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts campaign endpoints on the given router.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Get("/api/campaigns", listCampaignsHandler(store))
	r.Post("/api/campaigns", createCampaignHandler(store))
	r.Get("/api/campaigns/{id}", getCampaignHandler(store))
	r.Put("/api/campaigns/{id}", updateCampaignHandler(store))
	r.Delete("/api/campaigns/{id}", deleteCampaignHandler(store))
}

func listCampaignsHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := Status(r.URL.Query().Get("status"))
		if status != "" && !status.Known() {
			http.Error(w, "unknown status", http.StatusBadRequest)
			return
		}
		result, err := store.ListCampaigns(r.Context(), status)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if result == nil {
			result = []Campaign{}
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func getCampaignHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		c, err := store.GetCampaign(r.Context(), id)
		if err != nil {
			http.Error(w, "campaign not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

func createCampaignHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c Campaign
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if c.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		if err := store.CreateCampaign(r.Context(), &c); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, c)
	}
}

func updateCampaignHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var c Campaign
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		c.ID = id
		if err := store.UpdateCampaign(r.Context(), &c); err != nil {
			http.Error(w, "campaign not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}

func deleteCampaignHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := store.DeleteCampaign(r.Context(), id); err != nil {
			http.Error(w, "campaign not found", http.StatusNotFound)
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
