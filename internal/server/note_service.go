package server

import (
	"context"
	"errors"
	"strings"

	"jot/internal/store"
	"jot/internal/types"
)

// NoteService enforces the write rules the backend owns: titles must be
// non-empty, ids and timestamps are assigned here, never by clients.
type NoteService struct {
	notes store.NoteStore
}

func NewNoteService(notes store.NoteStore) *NoteService {
	return &NoteService{notes: notes}
}

type NotePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (s *NoteService) List(ctx context.Context) ([]*types.Note, error) {
	if s.notes == nil {
		return nil, unavailableError("note store not available", nil)
	}
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, unavailableError(err.Error(), err)
	}
	return notes, nil
}

func (s *NoteService) Create(ctx context.Context, payload *NotePayload) (*types.Note, error) {
	if s.notes == nil {
		return nil, unavailableError("note store not available", nil)
	}
	title, content, err := normalizePayload(payload)
	if err != nil {
		return nil, err
	}
	note, err := s.notes.Create(ctx, title, content)
	if err != nil {
		return nil, unavailableError(err.Error(), err)
	}
	return note, nil
}

func (s *NoteService) Update(ctx context.Context, id string, payload *NotePayload) (*types.Note, error) {
	if s.notes == nil {
		return nil, unavailableError("note store not available", nil)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, invalidError("note id is required", nil)
	}
	title, content, err := normalizePayload(payload)
	if err != nil {
		return nil, err
	}
	note, err := s.notes.Update(ctx, id, title, content)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return nil, notFoundError("note not found", err)
		}
		return nil, unavailableError(err.Error(), err)
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, id string) error {
	if s.notes == nil {
		return unavailableError("note store not available", nil)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return invalidError("note id is required", nil)
	}
	if err := s.notes.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return notFoundError("note not found", err)
		}
		return unavailableError(err.Error(), err)
	}
	return nil
}

func normalizePayload(payload *NotePayload) (title, content string, err error) {
	if payload == nil {
		return "", "", invalidError("note payload is required", nil)
	}
	title = strings.TrimSpace(payload.Title)
	if title == "" {
		return "", "", invalidError("title is required", nil)
	}
	return title, payload.Content, nil
}
