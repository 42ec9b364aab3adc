package server

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"jot/internal/logging"
	"jot/internal/store"
)

type API struct {
	Version string
	Notes   store.NoteStore
	Logger  logging.Logger
}

func (a *API) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", a.Health)
	mux.HandleFunc("/notes", a.NotesCollection)
	mux.HandleFunc("/notes/", a.NoteByID)
}

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"version": a.Version,
		"pid":     os.Getpid(),
	})
}

func (a *API) NotesCollection(w http.ResponseWriter, r *http.Request) {
	service := NewNoteService(a.Notes)
	switch r.Method {
	case http.MethodGet:
		notes, err := service.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		a.logRequest(r, http.StatusOK)
		writeJSON(w, http.StatusOK, notes)
	case http.MethodPost:
		var payload NotePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json body")
			return
		}
		note, err := service.Create(r.Context(), &payload)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		a.logRequest(r, http.StatusCreated)
		writeJSON(w, http.StatusCreated, note)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (a *API) NoteByID(w http.ResponseWriter, r *http.Request) {
	service := NewNoteService(a.Notes)
	path := strings.TrimPrefix(r.URL.Path, "/notes/")
	id := strings.TrimSpace(strings.Trim(path, "/"))
	if id == "" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var payload NotePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json body")
			return
		}
		note, err := service.Update(r.Context(), id, &payload)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		a.logRequest(r, http.StatusOK)
		writeJSON(w, http.StatusOK, note)
	case http.MethodDelete:
		if err := service.Delete(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		a.logRequest(r, http.StatusNoContent)
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (a *API) logRequest(r *http.Request, status int) {
	if a.Logger == nil {
		return
	}
	a.Logger.Info("request",
		logging.F("method", r.Method),
		logging.F("path", r.URL.Path),
		logging.F("status", status),
	)
}
