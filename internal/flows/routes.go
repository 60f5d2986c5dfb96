package flows

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shayulman/radiodesk/internal/studio"
)

// RegisterRoutes mounts flow endpoints on the given router.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Get("/api/flows", listFlowsHandler(store))
	r.Post("/api/flows", createFlowHandler(store))
	r.Post("/api/flows/validate", validateFlowHandler())
	r.Get("/api/flows/{id}", getFlowHandler(store))
	r.Put("/api/flows/{id}", updateFlowHandler(store))
	r.Delete("/api/flows/{id}", deleteFlowHandler(store))
	r.Get("/api/flows/{id}/simulate", simulateFlowHandler(store))
}

func listFlowsHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		var (
			result []Flow
			err    error
		)
		if q != "" {
			result, err = store.SearchFlows(r.Context(), q)
		} else {
			result, err = store.ListFlows(r.Context())
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if result == nil {
			result = []Flow{}
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func getFlowHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		flow, err := store.GetFlow(r.Context(), id)
		if err != nil {
			http.Error(w, "flow not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, flow)
	}
}

func createFlowHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f Flow
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if f.Name == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		if err := store.CreateFlow(r.Context(), &f); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, f)
	}
}

func updateFlowHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var f Flow
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		f.ID = id
		if err := store.UpdateFlow(r.Context(), &f); err != nil {
			http.Error(w, "flow not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, f)
	}
}

func deleteFlowHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := store.DeleteFlow(r.Context(), id); err != nil {
			http.Error(w, "flow not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// validateFlowHandler checks a submitted flow body without persisting it,
// returning the per-action verdicts the studio validator produces.
func validateFlowHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f Flow
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		report := ValidationReport{Valid: true, Actions: make([]ActionReport, len(f.Actions))}
		for i, a := range f.Actions {
			valid, errs := studio.Validate(a)
			report.Actions[i] = ActionReport{Index: i, Type: a.Type, Valid: valid, Errors: errs}
			if !valid {
				report.Valid = false
			}
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// simulateFlowHandler walks the stored flow through a studio draft and
// returns the estimated timeline.
func simulateFlowHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		d := studio.NewDraft()
		if err := d.Load(r.Context(), NewStudioAPI(store), id); err != nil {
			http.Error(w, "flow not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, SimulationReport{
			FlowID:       id,
			TotalSeconds: d.TotalSeconds(),
			Steps:        d.Timeline(),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
