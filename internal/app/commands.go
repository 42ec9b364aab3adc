package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"jot/internal/session"
	"jot/internal/types"
)

const requestTimeout = 15 * time.Second

type notesLoadedMsg struct {
	notes  []*types.Note
	keepID string
	err    error
}

type noteSavedMsg struct {
	created bool
	savedID string
	notes   []*types.Note
	err     error
}

type noteDeletedMsg struct {
	notes []*types.Note
	err   error
}

type statusExpiredMsg struct {
	seq int
}

func loadNotesCmd(api NotesAPI, keepID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		notes, err := api.ListNotes(ctx)
		return notesLoadedMsg{notes: notes, keepID: keepID, err: err}
	}
}

// saveNoteCmd issues the create or update, then re-fetches the list so the
// view reflects server truth rather than a locally patched copy.
func saveNoteCmd(api NotesAPI, op session.SaveOp) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		savedID := op.ID
		if op.Create {
			created, err := api.CreateNote(ctx, op.Title, op.Content)
			if err != nil {
				return noteSavedMsg{created: true, err: err}
			}
			savedID = created.ID
		} else {
			if _, err := api.UpdateNote(ctx, op.ID, op.Title, op.Content); err != nil {
				return noteSavedMsg{err: err}
			}
		}

		notes, err := api.ListNotes(ctx)
		if err != nil {
			return noteSavedMsg{created: op.Create, savedID: savedID, err: err}
		}
		return noteSavedMsg{created: op.Create, savedID: savedID, notes: notes}
	}
}

func deleteNoteCmd(api NotesAPI, op session.DeleteOp) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := api.DeleteNote(ctx, op.ID); err != nil {
			return noteDeletedMsg{err: err}
		}
		notes, err := api.ListNotes(ctx)
		if err != nil {
			return noteDeletedMsg{err: err}
		}
		return noteDeletedMsg{notes: notes}
	}
}

// clearStatusCmd schedules the auto-revert of a success status. The sequence
// number lets the handler drop clears that a newer status superseded.
func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}
