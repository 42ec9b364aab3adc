package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.ctrl.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.loader, cmd = m.loader.Update(msg)
		return m, cmd

	case notesLoadedMsg:
		if msg.err != nil {
			m.ctrl.FailLoad(msg.err)
			return m, nil
		}
		m.ctrl.FinishLoad(msg.notes, msg.keepID)
		m.leaveEditMode()
		return m, m.scheduleStatusClear()

	case noteSavedMsg:
		if msg.err != nil {
			// A set savedID means the write landed and only the list
			// refresh failed; adopting it keeps a retry from creating
			// a duplicate note.
			if msg.savedID != "" {
				m.ctrl.FailSaveRefresh(msg.savedID, msg.err)
			} else {
				m.ctrl.FailSave(msg.err)
			}
			return m, nil
		}
		m.ctrl.FinishSave(msg.notes, msg.savedID, msg.created)
		m.leaveEditMode()
		return m, m.scheduleStatusClear()

	case noteDeletedMsg:
		if msg.err != nil {
			m.ctrl.FailDelete(msg.err)
			return m, nil
		}
		m.ctrl.FinishDelete(msg.notes)
		m.refreshViewport()
		return m, m.scheduleStatusClear()

	case statusExpiredMsg:
		m.ctrl.ClearStatus(msg.seq)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""
	switch m.mode {
	case uiModeEdit:
		return m.handleEditKey(msg)
	case uiModeConfirmDelete:
		return m.handleConfirmKey(msg)
	default:
		return m.handleViewKey(msg)
	}
}

func (m Model) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.moveSelection(-1)
		return m, nil

	case "down", "j":
		m.moveSelection(1)
		return m, nil

	case "n":
		if m.ctrl.Loading() {
			return m, nil
		}
		m.ctrl.NewNote()
		m.enterEditMode()
		return m, nil

	case "e", "enter":
		if m.ctrl.EditSelected() {
			m.enterEditMode()
		}
		return m, nil

	case "d":
		if m.ctrl.Loading() {
			return m, nil
		}
		if note := m.ctrl.SelectedNote(); note != nil {
			m.confirmTitle = note.Title
			m.mode = uiModeConfirmDelete
		}
		return m, nil

	case "r":
		if m.ctrl.Loading() {
			return m, nil
		}
		m.ctrl.BeginLoad()
		return m, tea.Batch(loadNotesCmd(m.api, m.ctrl.SelectedID()), m.loader.Tick)

	case "y":
		if note := m.ctrl.SelectedNote(); note != nil {
			if err := copyToClipboard(note.Content); err != nil {
				m.flash = "Copy failed: " + err.Error()
			} else {
				m.flash = "Note content copied."
			}
		}
		return m, nil

	case "m":
		m.renderMarkdown = !m.renderMarkdown
		m.refreshViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.mode = uiModeView
		op, ok := m.ctrl.BeginDelete()
		if !ok {
			return m, nil
		}
		return m, tea.Batch(deleteNoteCmd(m.api, op), m.loader.Tick)
	case "n", "esc", "q":
		m.mode = uiModeView
		return m, nil
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.ctrl.CancelEdit()
		m.leaveEditMode()
		return m, nil

	case "ctrl+s":
		m.ctrl.SetDraft(m.titleInput.Value(), m.contentInput.Value())
		op, ok := m.ctrl.BeginSave()
		if !ok {
			return m, nil
		}
		return m, tea.Batch(saveNoteCmd(m.api, op), m.loader.Tick)

	case "tab", "shift+tab":
		if m.focus == focusTitle {
			m.focus = focusContent
			m.titleInput.Blur()
			return m, m.contentInput.Focus()
		}
		m.focus = focusTitle
		m.contentInput.Blur()
		return m, m.titleInput.Focus()

	case "ctrl+c":
		return m, tea.Quit
	}

	// Keep the controller's draft in lockstep with what is on screen.
	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
		m.ctrl.SetDraftTitle(m.titleInput.Value())
	} else {
		m.contentInput, cmd = m.contentInput.Update(msg)
		m.ctrl.SetDraftContent(m.contentInput.Value())
	}
	return m, cmd
}
