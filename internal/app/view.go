package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"jot/internal/session"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.headerLine())
	b.WriteString("\n")

	left := m.listPane()
	right := m.contentPane()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, paneStyle.Render(left), " ", right))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return b.String()
}

func (m Model) headerLine() string {
	header := titleStyle.Render("jot")
	if m.ctrl.Loading() {
		header += " " + m.loader.View()
	}
	return header
}

func (m Model) listPane() string {
	notes := m.ctrl.Notes()
	height := m.contentHeight()
	lines := make([]string, 0, height)
	if len(notes) == 0 {
		lines = append(lines, helpStyle.Render(" No notes yet."))
	}
	for _, note := range notes {
		if len(lines) >= height {
			break
		}
		title := xansi.Truncate(note.Title, listPaneWidth-2, "…")
		if note.ID == m.ctrl.SelectedID() {
			lines = append(lines, selectedStyle.Render(" "+title+" "))
			continue
		}
		lines = append(lines, listItemStyle.Render(title))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lipgloss.NewStyle().Width(listPaneWidth).Render(strings.Join(lines, "\n"))
}

func (m Model) contentPane() string {
	switch m.mode {
	case uiModeEdit:
		return m.editPane()
	case uiModeConfirmDelete:
		return m.confirmPane()
	default:
		return m.viewPane()
	}
}

func (m Model) viewPane() string {
	note := m.ctrl.SelectedNote()
	if note == nil {
		return helpStyle.Render("Nothing selected. Press n to write your first note.")
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(note.Title))
	b.WriteString(helpStyle.Render("  " + note.UpdatedAt.Local().Format("2006-01-02 15:04")))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	return b.String()
}

func (m Model) editPane() string {
	var b strings.Builder
	if m.ctrl.State() == session.StateEditingNew {
		b.WriteString(helpStyle.Render("New note"))
	} else {
		b.WriteString(helpStyle.Render("Editing"))
	}
	b.WriteString("\n")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n")
	b.WriteString(m.contentInput.View())
	return b.String()
}

func (m Model) confirmPane() string {
	var b strings.Builder
	b.WriteString(m.viewPane())
	b.WriteString("\n\n")
	b.WriteString(warningStyle.Render(fmt.Sprintf("Delete %q? This cannot be undone.", m.confirmTitle)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("y: delete  n/esc: keep"))
	return b.String()
}

func (m Model) statusLine() string {
	status := m.ctrl.Status()
	switch status.Kind {
	case session.StatusLoading:
		return helpStyle.Render("Working...")
	case session.StatusError:
		return errorStyle.Render(status.Message)
	case session.StatusSuccess:
		return successStyle.Render(status.Message)
	}
	if m.flash != "" {
		return helpStyle.Render(m.flash)
	}
	return ""
}

func (m Model) helpLine() string {
	switch m.mode {
	case uiModeEdit:
		return helpStyle.Render("ctrl+s: save  esc: cancel  tab: switch field")
	case uiModeConfirmDelete:
		return helpStyle.Render("y: confirm  n: cancel")
	default:
		return helpStyle.Render("j/k: move  enter/e: edit  n: new  d: delete  y: copy  m: markdown  r: refresh  q: quit")
	}
}
