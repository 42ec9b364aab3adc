package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"

	"jot/internal/session"
	"jot/internal/types"
)

type fakeAPI struct {
	notes     []*types.Note
	listErr   error
	createErr error
	updateErr error
	deleteErr error
	calls     []string
}

func (f *fakeAPI) ListNotes(ctx context.Context) ([]*types.Note, error) {
	f.calls = append(f.calls, "list")
	return f.notes, f.listErr
}

func (f *fakeAPI) CreateNote(ctx context.Context, title, content string) (*types.Note, error) {
	f.calls = append(f.calls, "create")
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &types.Note{ID: "created", Title: title, Content: content}, nil
}

func (f *fakeAPI) UpdateNote(ctx context.Context, id, title, content string) (*types.Note, error) {
	f.calls = append(f.calls, "update")
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &types.Note{ID: id, Title: title, Content: content}, nil
}

func (f *fakeAPI) DeleteNote(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delete")
	return f.deleteErr
}

func testNotes() []*types.Note {
	return []*types.Note{
		{ID: "1", Title: "Alpha", Content: "first"},
		{ID: "2", Title: "Beta", Content: "second"},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return model, cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newLoadedModel(t *testing.T, api *fakeAPI) Model {
	t.Helper()
	m := NewModel(api)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = update(t, m, notesLoadedMsg{notes: api.notes})
	return m
}

func TestNotesLoadedSelectsFirstNote(t *testing.T) {
	api := &fakeAPI{notes: testNotes()}
	m := newLoadedModel(t, api)
	if m.ctrl.SelectedID() != "1" {
		t.Fatalf("expected first note selected, got %q", m.ctrl.SelectedID())
	}
	if m.ctrl.Status().Kind != session.StatusSuccess {
		t.Fatalf("expected success status, got %+v", m.ctrl.Status())
	}
}

func TestNotesLoadErrorSurfacesMessage(t *testing.T) {
	api := &fakeAPI{}
	m := NewModel(api)
	m, _ = update(t, m, notesLoadedMsg{err: errors.New("connection refused")})
	status := m.ctrl.Status()
	if status.Kind != session.StatusError || status.Message != "connection refused" {
		t.Fatalf("unexpected status: %+v", status)
	}
}

func TestBlankTitleSaveMakesNoCall(t *testing.T) {
	api := &fakeAPI{notes: testNotes()}
	m := newLoadedModel(t, api)
	m, _ = update(t, m, key("e"))
	if m.mode != uiModeEdit {
		t.Fatalf("expected edit mode")
	}
	m.titleInput.SetValue("   ")

	callsBefore := len(api.calls)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Fatalf("expected no command for blank title")
	}
	if len(api.calls) != callsBefore {
		t.Fatalf("expected no API calls, got %v", api.calls)
	}
	status := m.ctrl.Status()
	if status.Kind != session.StatusError || status.Message != "Title cannot be empty." {
		t.Fatalf("unexpected status: %+v", status)
	}
	if !m.ctrl.Editing() || m.mode != uiModeEdit {
		t.Fatalf("edit mode must stay active")
	}
}

func TestSaveFailureKeepsTypedDraft(t *testing.T) {
	api := &fakeAPI{notes: testNotes()}
	m := newLoadedModel(t, api)
	m, _ = update(t, m, key("n"))
	m.titleInput.SetValue("Draft title")
	m.contentInput.SetValue("typed text")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatalf("expected save command")
	}
	m, _ = update(t, m, noteSavedMsg{created: true, err: errors.New("boom")})

	if m.mode != uiModeEdit || !m.ctrl.Editing() {
		t.Fatalf("edit mode must survive a failed save")
	}
	draft := m.ctrl.Draft()
	if draft.Title != "Draft title" || draft.Content != "typed text" {
		t.Fatalf("draft must be preserved, got %+v", draft)
	}
	status := m.ctrl.Status()
	if status.Kind != session.StatusError || status.Message != "boom" {
		t.Fatalf("unexpected status: %+v", status)
	}
}

func TestCreateRetryAfterRefreshFailureDoesNotDuplicate(t *testing.T) {
	api := &fakeAPI{notes: testNotes()}
	m := newLoadedModel(t, api)
	m, _ = update(t, m, key("n"))
	m.titleInput.SetValue("Gamma")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	// The POST succeeded; only the list refresh failed.
	m, _ = update(t, m, noteSavedMsg{created: true, savedID: "3", err: errors.New("list fetch failed")})
	if m.mode != uiModeEdit || !m.ctrl.Editing() {
		t.Fatalf("edit mode must survive the refresh failure")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatalf("expected retry command")
	}
	saved, ok := runUntil[noteSavedMsg](cmd)
	if !ok {
		t.Fatalf("expected noteSavedMsg from retry")
	}
	if saved.created {
		t.Fatalf("retry must be an update, got %+v", saved)
	}
	for _, call := range api.calls {
		if call == "create" {
			t.Fatalf("retry must not create again, calls: %v", api.calls)
		}
	}
}

// runUntil executes a command tree until it yields a message of type T.
func runUntil[T tea.Msg](cmd tea.Cmd) (T, bool) {
	var zero T
	if cmd == nil {
		return zero, false
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if found, ok := runUntil[T](c); ok {
				return found, true
			}
		}
		return zero, false
	}
	found, ok := msg.(T)
	return found, ok
}

func TestSuccessfulCreateSelectsNewNote(t *testing.T) {
	api := &fakeAPI{notes: testNotes()}
	m := newLoadedModel(t, api)
	m, _ = update(t, m, key("n"))
	m.titleInput.SetValue("Gamma")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	refreshed := append(testNotes(), &types.Note{ID: "3", Title: "Gamma"})
	m, cmd := update(t, m, noteSavedMsg{created: true, savedID: "3", notes: refreshed})

	if m.ctrl.Editing() || m.mode != uiModeView {
		t.Fatalf("expected view mode after create")
	}
	if m.ctrl.SelectedID() != "3" {
		t.Fatalf("expected created note selected, got %q", m.ctrl.SelectedID())
	}
	if m.ctrl.Status().Message != "Note created." {
		t.Fatalf("unexpected status: %+v", m.ctrl.Status())
	}
	if cmd == nil {
		t.Fatalf("expected status clear to be scheduled")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	api := &fakeAPI{notes: testNotes()}
	m := newLoadedModel(t, api)

	m, _ = update(t, m, key("d"))
	if m.mode != uiModeConfirmDelete {
		t.Fatalf("expected confirm mode")
	}

	m, cmd := update(t, m, key("n"))
	if m.mode != uiModeView || cmd != nil {
		t.Fatalf("expected cancel to return to view mode with no command")
	}
	if len(api.calls) != 0 {
		t.Fatalf("expected no API calls, got %v", api.calls)
	}

	m, _ = update(t, m, key("d"))
	m, cmd = update(t, m, key("y"))
	if cmd == nil {
		t.Fatalf("expected delete command")
	}
	if !m.ctrl.Loading() {
		t.Fatalf("expected loading status during delete")
	}
}

func TestDeleteLastNoteShowsEmptyState(t *testing.T) {
	api := &fakeAPI{notes: []*types.Note{{ID: "1", Title: "Only", Content: ""}}}
	m := newLoadedModel(t, api)
	m, _ = update(t, m, key("d"))
	m, _ = update(t, m, key("y"))
	m, _ = update(t, m, noteDeletedMsg{notes: nil})

	if m.ctrl.SelectedID() != "" || len(m.ctrl.Notes()) != 0 {
		t.Fatalf("expected empty session, got %q %d", m.ctrl.SelectedID(), len(m.ctrl.Notes()))
	}
	plain := xansi.Strip(m.View())
	if !strings.Contains(plain, "No notes yet.") {
		t.Fatalf("expected empty state in view: %q", plain)
	}
}

func TestStatusExpiryIgnoresSupersededStatus(t *testing.T) {
	api := &fakeAPI{notes: testNotes()}
	m := newLoadedModel(t, api)
	staleSeq := m.ctrl.Status().Seq

	// A newer error lands before the scheduled clear fires.
	m, _ = update(t, m, notesLoadedMsg{err: errors.New("later failure")})
	m, _ = update(t, m, statusExpiredMsg{seq: staleSeq})
	if m.ctrl.Status().Kind != session.StatusError {
		t.Fatalf("stale clear must not override newer status, got %+v", m.ctrl.Status())
	}

	// A current clear reverts success to idle.
	m, _ = update(t, m, notesLoadedMsg{notes: api.notes})
	m, _ = update(t, m, statusExpiredMsg{seq: m.ctrl.Status().Seq})
	if m.ctrl.Status().Kind != session.StatusIdle {
		t.Fatalf("expected idle after clear, got %+v", m.ctrl.Status())
	}
}

func TestMutatingKeysIgnoredWhileLoading(t *testing.T) {
	api := &fakeAPI{notes: testNotes()}
	m := newLoadedModel(t, api)
	m, _ = update(t, m, key("r"))
	if !m.ctrl.Loading() {
		t.Fatalf("expected loading after refresh")
	}

	m, _ = update(t, m, key("n"))
	if m.mode != uiModeView {
		t.Fatalf("new-note intent must be ignored while loading")
	}
	m, _ = update(t, m, key("d"))
	if m.mode != uiModeView {
		t.Fatalf("delete intent must be ignored while loading")
	}
}

func TestCancelEditRestoresSelectedNote(t *testing.T) {
	api := &fakeAPI{notes: testNotes()}
	m := newLoadedModel(t, api)
	m, _ = update(t, m, key("e"))
	m.titleInput.SetValue("scribbles")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.mode != uiModeView || m.ctrl.Editing() {
		t.Fatalf("expected view mode after cancel")
	}
	draft := m.ctrl.Draft()
	if draft.Title != "Alpha" || draft.Content != "first" {
		t.Fatalf("expected draft restored from selection, got %+v", draft)
	}
}

func TestViewShowsErrorStatus(t *testing.T) {
	api := &fakeAPI{notes: testNotes()}
	m := newLoadedModel(t, api)
	m, _ = update(t, m, notesLoadedMsg{err: errors.New("backend is down")})
	plain := xansi.Strip(m.View())
	if !strings.Contains(plain, "backend is down") {
		t.Fatalf("expected error message in view: %q", plain)
	}
}
