package app

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jot/internal/session"
)

const (
	statusTTL        = 2 * time.Second
	listPaneWidth    = 30
	minContentWidth  = 20
	minContentHeight = 5
	chromeHeight     = 4
)

type uiMode int

const (
	uiModeView uiMode = iota
	uiModeEdit
	uiModeConfirmDelete
)

type editFocus int

const (
	focusTitle editFocus = iota
	focusContent
)

type Model struct {
	api  NotesAPI
	ctrl *session.Controller
	mode uiMode

	width  int
	height int

	titleInput   textinput.Model
	contentInput textarea.Model
	viewport     viewport.Model
	loader       spinner.Model

	focus          editFocus
	renderMarkdown bool
	confirmTitle   string
	flash          string
}

func NewModel(api NotesAPI) Model {
	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.CharLimit = 200

	contentInput := textarea.New()
	contentInput.Placeholder = "Write something..."

	vp := viewport.New(minContentWidth, minContentHeight)

	loader := spinner.New()
	loader.Spinner = spinner.Line
	loader.Style = lipgloss.NewStyle()

	ctrl := session.NewController()
	ctrl.BeginLoad()

	return Model{
		api:            api,
		ctrl:           ctrl,
		mode:           uiModeView,
		titleInput:     titleInput,
		contentInput:   contentInput,
		viewport:       vp,
		loader:         loader,
		renderMarkdown: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(loadNotesCmd(m.api, ""), m.loader.Tick)
}

func (m Model) contentWidth() int {
	width := m.width - listPaneWidth - 3
	if width < minContentWidth {
		width = minContentWidth
	}
	return width
}

func (m Model) contentHeight() int {
	height := m.height - chromeHeight
	if height < minContentHeight {
		height = minContentHeight
	}
	return height
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.titleInput.Width = m.contentWidth() - 2
	m.contentInput.SetWidth(m.contentWidth())
	m.contentInput.SetHeight(m.contentHeight() - 3)
	m.viewport.Width = m.contentWidth()
	m.viewport.Height = m.contentHeight() - 2
	m.refreshViewport()
}

// enterEditMode seeds the widgets from the controller's draft.
func (m *Model) enterEditMode() {
	draft := m.ctrl.Draft()
	m.titleInput.SetValue(draft.Title)
	m.contentInput.SetValue(draft.Content)
	m.focus = focusTitle
	m.titleInput.Focus()
	m.contentInput.Blur()
	m.mode = uiModeEdit
}

func (m *Model) leaveEditMode() {
	m.titleInput.Blur()
	m.contentInput.Blur()
	m.mode = uiModeView
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	note := m.ctrl.SelectedNote()
	if note == nil {
		m.viewport.SetContent("")
		return
	}
	content := note.Content
	if m.renderMarkdown {
		content = renderNoteContent(content, m.viewport.Width)
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

func (m *Model) moveSelection(delta int) {
	notes := m.ctrl.Notes()
	if len(notes) == 0 {
		return
	}
	index := 0
	for i, note := range notes {
		if note.ID == m.ctrl.SelectedID() {
			index = i
			break
		}
	}
	index += delta
	if index < 0 {
		index = 0
	}
	if index > len(notes)-1 {
		index = len(notes) - 1
	}
	if m.ctrl.Select(notes[index].ID) {
		m.refreshViewport()
	}
}

// scheduleStatusClear arms the auto-revert for a freshly set success status.
func (m *Model) scheduleStatusClear() tea.Cmd {
	status := m.ctrl.Status()
	if status.Kind != session.StatusSuccess {
		return nil
	}
	return clearStatusCmd(status.Seq)
}
