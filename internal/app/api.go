package app

import (
	"context"

	"jot/internal/types"
)

// NotesAPI is the slice of the HTTP client the UI needs. Tests substitute a
// fake; production wiring passes *client.Client.
type NotesAPI interface {
	ListNotes(ctx context.Context) ([]*types.Note, error)
	CreateNote(ctx context.Context, title, content string) (*types.Note, error)
	UpdateNote(ctx context.Context, id, title, content string) (*types.Note, error)
	DeleteNote(ctx context.Context, id string) error
}
