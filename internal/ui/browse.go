package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkarlin/tagstash/internal/kb"
	"github.com/mkarlin/tagstash/internal/ui/components"
)

// BrowseModel shows the tag list next to the snippet pane and handles
// delete and undo on the selected tag.
type BrowseModel struct {
	svc     *kb.Service
	list    *components.List
	current string // text shown in the snippet pane; the undo restore source
	notice  string
	vimKeys bool
	width   int
	height  int
}

// NewBrowseModel builds the browse screen over the service's tags.
func NewBrowseModel(svc *kb.Service) BrowseModel {
	m := BrowseModel{svc: svc, list: components.NewList(12)}
	m.list.SetItems(svc.Tags())
	return m.syncSelection()
}

// Reload refreshes the tag list after an external mutation. currentText
// replaces the snippet pane content when non-empty (a freshly added
// snippet stays visible, like the original editor keeping its text).
func (m BrowseModel) Reload(currentText string) BrowseModel {
	m.list.ReplaceItems(m.svc.Tags())
	if currentText != "" {
		m.current = currentText
		return m
	}
	return m.syncSelection()
}

func (m BrowseModel) Update(msg tea.Msg) (BrowseModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case isDown(key) || (m.vimKeys && isKey(key, "j")):
		m.list.Down()
		m.notice = ""
		return m.syncSelection(), nil

	case isUp(key) || (m.vimKeys && isKey(key, "k")):
		m.list.Up()
		m.notice = ""
		return m.syncSelection(), nil

	case isKey(key, "d"):
		tag, ok := m.list.SelectedItem()
		if !ok {
			return m, nil
		}
		if m.svc.Delete(tag) {
			m.list.ReplaceItems(m.svc.Tags())
			// The pane keeps showing the deleted snippet: an immediate
			// undo restores the tag with exactly that text.
			m.notice = fmt.Sprintf("deleted %q (u to undo)", tag)
		}
		return m, nil

	case isKey(key, "u"):
		tag, err := m.svc.Undo(m.current)
		if errors.Is(err, kb.ErrEmptyUndo) {
			return m, nil
		}
		m.list.ReplaceItems(m.svc.Tags())
		m.list.Select(tag)
		m.notice = fmt.Sprintf("restored %q", tag)
		return m, nil
	}
	return m, nil
}

// syncSelection points the snippet pane at the selected tag's text. With
// no selection the pane content is left alone.
func (m BrowseModel) syncSelection() BrowseModel {
	tag, ok := m.list.SelectedItem()
	if !ok {
		return m
	}
	if text, found := m.svc.Get(tag); found {
		m.current = text
	}
	return m
}

func (m BrowseModel) View() string {
	tags := m.renderTagList()
	pane := m.renderSnippetPane()
	body := lipgloss.JoinHorizontal(lipgloss.Top, pane, " ", tags)

	if m.notice != "" {
		body += "\n" + SuccessStyle.Render(m.notice)
	}
	return body
}

func (m BrowseModel) renderTagList() string {
	if len(m.list.Items) == 0 {
		return components.TitledBox("Tags", MutedStyle.Render("no tags yet — press a to add"), m.paneWidth())
	}

	var rows string
	for i, tag := range m.list.Visible() {
		abs := m.list.RelToAbs(i)
		label := components.ClampTextWidth(tag, components.BoxContentWidth(m.paneWidth())-2)
		if m.list.IsSelected(abs) {
			rows += SelectedStyle.Render("> " + label)
		} else {
			rows += NormalStyle.Render("  " + label)
		}
		rows += "\n"
	}
	rows += MutedStyle.Render(fmt.Sprintf("\n%d tags", len(m.list.Items)))
	return components.TitledBox("Tags", rows, m.paneWidth())
}

func (m BrowseModel) renderSnippetPane() string {
	title := "Knowledge"
	if tag, ok := m.list.SelectedItem(); ok {
		title = tag
	}
	text := m.current
	if text == "" {
		text = MutedStyle.Render("nothing selected")
	} else {
		text = NormalStyle.Width(components.BoxContentWidth(m.paneWidth())).Render(components.SanitizeText(text))
	}
	return components.TitledBox(title, text, m.paneWidth())
}

// paneWidth sizes each pane at roughly half the window.
func (m BrowseModel) paneWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width / 2
	if w < 30 {
		w = 30
	}
	return w
}
