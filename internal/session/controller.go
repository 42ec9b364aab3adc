// Package session owns the client-side note lifecycle: the fetched list, the
// current selection, the edit draft, and the reconciliation rules that keep
// them consistent with server truth. It performs no I/O itself; intents
// produce operation descriptors and the caller applies the results back.
package session

import (
	"strings"

	"jot/internal/types"
)

type State int

const (
	StateViewingEmpty State = iota
	StateViewingNote
	StateEditingNew
	StateEditingExisting
)

type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusLoading
	StatusSuccess
	StatusError
)

// Status is transient presentation state. Seq lets a scheduled clear detect
// that a newer status superseded it before the delay elapsed.
type Status struct {
	Kind    StatusKind
	Message string
	Seq     int
}

type Draft struct {
	Title   string
	Content string
}

// SaveOp describes the network call a save intent requires. Title is already
// trimmed and validated non-empty.
type SaveOp struct {
	Create  bool
	ID      string
	Title   string
	Content string
}

type DeleteOp struct {
	ID string
}

type Controller struct {
	notes      []*types.Note
	selectedID string
	editing    bool
	draft      Draft
	status     Status
}

func NewController() *Controller {
	return &Controller{}
}

func (c *Controller) Notes() []*types.Note { return c.notes }
func (c *Controller) SelectedID() string   { return c.selectedID }
func (c *Controller) Editing() bool        { return c.editing }
func (c *Controller) Draft() Draft         { return c.draft }
func (c *Controller) Status() Status       { return c.status }

func (c *Controller) SelectedNote() *types.Note {
	if c.selectedID == "" {
		return nil
	}
	for _, note := range c.notes {
		if note.ID == c.selectedID {
			return note
		}
	}
	return nil
}

func (c *Controller) State() State {
	switch {
	case c.editing && c.selectedID == "":
		return StateEditingNew
	case c.editing:
		return StateEditingExisting
	case c.selectedID != "":
		return StateViewingNote
	default:
		return StateViewingEmpty
	}
}

func (c *Controller) Loading() bool {
	return c.status.Kind == StatusLoading
}

// Select switches the view to the note with the given id, leaving edit mode
// if it was active. It reports whether the id was found.
func (c *Controller) Select(id string) bool {
	if !c.contains(id) {
		return false
	}
	c.selectedID = id
	c.editing = false
	c.syncDraftFromSelection()
	return true
}

// NewNote starts composing an unsaved note: no selection, a fresh draft.
func (c *Controller) NewNote() {
	if c.Loading() {
		return
	}
	c.selectedID = ""
	c.editing = true
	c.draft = Draft{Title: "Untitled", Content: ""}
}

// EditSelected copies the selected note into the draft and enters edit mode.
func (c *Controller) EditSelected() bool {
	if c.Loading() {
		return false
	}
	note := c.SelectedNote()
	if note == nil {
		return false
	}
	c.editing = true
	c.draft = Draft{Title: note.Title, Content: note.Content}
	return true
}

// CancelEdit discards the draft and restores it from the current selection.
func (c *Controller) CancelEdit() {
	if !c.editing {
		return
	}
	c.editing = false
	if c.selectedID != "" && !c.contains(c.selectedID) {
		c.selectedID = ""
	}
	c.syncDraftFromSelection()
}

func (c *Controller) SetDraft(title, content string) {
	if !c.editing {
		return
	}
	c.draft.Title = title
	c.draft.Content = content
}

func (c *Controller) SetDraftTitle(title string) {
	if c.editing {
		c.draft.Title = title
	}
}

func (c *Controller) SetDraftContent(content string) {
	if c.editing {
		c.draft.Content = content
	}
}

// BeginSave validates the draft and, when valid, marks the session loading
// and returns the operation to issue. A blank title fails locally: status
// becomes an error, edit mode stays active, and no request is made.
func (c *Controller) BeginSave() (SaveOp, bool) {
	if !c.editing || c.Loading() {
		return SaveOp{}, false
	}
	title := strings.TrimSpace(c.draft.Title)
	if title == "" {
		c.setStatus(StatusError, "Title cannot be empty.")
		return SaveOp{}, false
	}
	c.setStatus(StatusLoading, "")
	return SaveOp{
		Create:  c.selectedID == "",
		ID:      c.selectedID,
		Title:   title,
		Content: c.draft.Content,
	}, true
}

// FinishSave reconciles against the refreshed list, forcing selection to the
// saved note, and leaves edit mode.
func (c *Controller) FinishSave(notes []*types.Note, savedID string, created bool) {
	c.applyList(notes, savedID)
	if created {
		c.setStatus(StatusSuccess, "Note created.")
		return
	}
	c.setStatus(StatusSuccess, "Note saved.")
}

// FailSave keeps edit mode and the typed draft so nothing the user wrote is
// lost; only the status changes.
func (c *Controller) FailSave(err error) {
	c.setStatus(StatusError, errorMessage(err))
}

// FailSaveRefresh handles a save whose write landed but whose follow-up list
// fetch failed. Edit mode and the draft stay, and the session adopts the
// saved id so retrying the save updates the existing record instead of
// creating a duplicate.
func (c *Controller) FailSaveRefresh(savedID string, err error) {
	if savedID != "" {
		c.selectedID = savedID
	}
	c.setStatus(StatusError, errorMessage(err))
}

// BeginDelete requires an existing selection outside edit mode. Confirmation
// is the presentation layer's concern and happens before this call.
func (c *Controller) BeginDelete() (DeleteOp, bool) {
	if c.editing || c.Loading() || c.selectedID == "" {
		return DeleteOp{}, false
	}
	c.setStatus(StatusLoading, "")
	return DeleteOp{ID: c.selectedID}, true
}

// FinishDelete reconciles with no forced selection: the default rule picks
// the first remaining note or none.
func (c *Controller) FinishDelete(notes []*types.Note) {
	c.applyList(notes, "")
	c.setStatus(StatusSuccess, "Note deleted.")
}

func (c *Controller) FailDelete(err error) {
	c.setStatus(StatusError, errorMessage(err))
}

// BeginLoad marks an explicit list fetch (startup or manual refresh).
func (c *Controller) BeginLoad() {
	c.setStatus(StatusLoading, "")
}

func (c *Controller) FinishLoad(notes []*types.Note, keepID string) {
	c.applyList(notes, keepID)
	c.setStatus(StatusSuccess, "Notes loaded.")
}

// FailLoad keeps the previous list and selection; the failure is surfaced
// and the user can retry.
func (c *Controller) FailLoad(err error) {
	c.setStatus(StatusError, errorMessage(err))
}

// ClearStatus reverts a success status to idle. It no-ops when a newer
// status superseded the one the clear was scheduled for.
func (c *Controller) ClearStatus(seq int) {
	if c.status.Seq != seq || c.status.Kind != StatusSuccess {
		return
	}
	c.status = Status{Kind: StatusIdle, Seq: c.status.Seq}
}

// applyList replaces the note list with server truth and re-derives the
// selection: a requested id wins when present, then the previous selection,
// then the first note, then none. Edit mode ends and the draft is resynced.
func (c *Controller) applyList(notes []*types.Note, keepID string) {
	// The controller owns its snapshot; later mutation of the caller's
	// slice must not leak into the session.
	c.notes = types.CloneNotes(notes)
	switch {
	case keepID != "" && c.contains(keepID):
		c.selectedID = keepID
	case c.selectedID != "" && c.contains(c.selectedID):
		// selection survives the reload
	case len(c.notes) > 0:
		c.selectedID = c.notes[0].ID
	default:
		c.selectedID = ""
	}
	c.editing = false
	c.syncDraftFromSelection()
}

func (c *Controller) contains(id string) bool {
	if id == "" {
		return false
	}
	for _, note := range c.notes {
		if note.ID == id {
			return true
		}
	}
	return false
}

// Outside edit mode the draft always mirrors the selected note, so the view
// never shows stale draft content.
func (c *Controller) syncDraftFromSelection() {
	if note := c.SelectedNote(); note != nil {
		c.draft = Draft{Title: note.Title, Content: note.Content}
		return
	}
	c.draft = Draft{}
}

func (c *Controller) setStatus(kind StatusKind, message string) {
	c.status = Status{Kind: kind, Message: message, Seq: c.status.Seq + 1}
}

func errorMessage(err error) string {
	if err == nil {
		return "request failed"
	}
	return err.Error()
}
