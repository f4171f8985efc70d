package ui

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarlin/tagstash/internal/kb"
	"github.com/mkarlin/tagstash/internal/ui/components"
)

const (
	addStepBody = iota
	addStepTags
)

// AddModel is the two-step add flow: type the snippet, then pick tags.
// The tag step mirrors the original tag dialog: checkboxes over the
// existing tags plus a comma-separated field for new ones.
type AddModel struct {
	svc        *kb.Service
	step       int
	body       string
	existing   []string
	checked    []bool
	cursor     int
	newTagBuf  string
	fieldFocus bool
	errText    string
	done       bool
	cancelled  bool
	added      []string
	width      int
	height     int
}

// NewAddModel starts a fresh add flow over the service's current tags.
func NewAddModel(svc *kb.Service) AddModel {
	existing := svc.Tags()
	return AddModel{
		svc:      svc,
		existing: existing,
		checked:  make([]bool, len(existing)),
	}
}

func (m AddModel) Update(msg tea.Msg) (AddModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.step == addStepTags {
		return m.handleTagKeys(key)
	}
	return m.handleBodyKeys(key)
}

func (m AddModel) handleBodyKeys(msg tea.KeyMsg) (AddModel, tea.Cmd) {
	switch {
	case isBack(msg):
		m.cancelled = true

	case isTabKey(msg), isKey(msg, "ctrl+s"):
		if m.body == "" {
			m.errText = "Please enter knowledge."
			return m, nil
		}
		m.errText = ""
		m.step = addStepTags

	case isEnter(msg):
		m.body += "\n"

	case isKey(msg, "backspace"):
		m.body = trimLastRune(m.body)

	default:
		ch := msg.String()
		if len(ch) == 1 || ch == " " {
			m.body += ch
		}
	}
	return m, nil
}

func (m AddModel) handleTagKeys(msg tea.KeyMsg) (AddModel, tea.Cmd) {
	switch {
	case isBack(msg):
		m.errText = ""
		m.step = addStepBody
		return m, nil

	case isTabKey(msg):
		m.fieldFocus = !m.fieldFocus
		return m, nil

	case isEnter(msg):
		return m.confirm()
	}

	if m.fieldFocus {
		switch {
		case isKey(msg, "backspace"):
			m.newTagBuf = trimLastRune(m.newTagBuf)
		default:
			ch := msg.String()
			if len(ch) == 1 || ch == " " {
				m.newTagBuf += ch
			}
		}
		return m, nil
	}

	switch {
	case isDown(msg):
		if m.cursor < len(m.existing)-1 {
			m.cursor++
		}
	case isUp(msg):
		if m.cursor > 0 {
			m.cursor--
		}
	case isSpace(msg):
		if m.cursor < len(m.checked) {
			m.checked[m.cursor] = !m.checked[m.cursor]
		}
	}
	return m, nil
}

func (m AddModel) confirm() (AddModel, tea.Cmd) {
	var picked []string
	for i, on := range m.checked {
		if on {
			picked = append(picked, m.existing[i])
		}
	}
	tags := kb.ResolveTags(m.existing, picked, m.newTagBuf)
	if len(tags) == 0 {
		m.errText = "Select or enter at least one tag."
		return m, nil
	}
	if err := m.svc.Add(m.body, tags); err != nil {
		m.errText = err.Error()
		return m, nil
	}
	m.added = tags
	m.done = true
	return m, nil
}

func (m AddModel) View() string {
	if m.step == addStepTags {
		return m.renderTagPicker()
	}
	return m.renderBody()
}

func (m AddModel) renderBody() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Knowledge"))
	b.WriteString("\n")
	b.WriteString(NormalStyle.Render(m.body))
	b.WriteString(AccentStyle.Render("█"))

	if m.errText != "" {
		b.WriteString("\n\n")
		b.WriteString(components.ErrorBox("Error", m.errText, m.width))
	}
	return components.TitledBox("Add Knowledge", b.String(), m.width)
}

func (m AddModel) renderTagPicker() string {
	var b strings.Builder

	if len(m.existing) == 0 {
		b.WriteString(MutedStyle.Render("no existing tags"))
		b.WriteString("\n")
	}
	for i, tag := range m.existing {
		box := "[ ]"
		if m.checked[i] {
			box = "[x]"
		}
		row := box + " " + tag
		if !m.fieldFocus && i == m.cursor {
			b.WriteString(SelectedStyle.Render("> " + row))
		} else if m.checked[i] {
			b.WriteString(AccentStyle.Render("  " + row))
		} else {
			b.WriteString(NormalStyle.Render("  " + row))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	label := "New tags (comma-separated):"
	if m.fieldFocus {
		b.WriteString(SelectedStyle.Render("> " + label))
		b.WriteString("\n")
		b.WriteString(NormalStyle.Render("  " + m.newTagBuf))
		b.WriteString(AccentStyle.Render("█"))
	} else {
		b.WriteString(MutedStyle.Render("  " + label))
		b.WriteString("\n")
		b.WriteString(NormalStyle.Render("  " + m.newTagBuf))
	}

	if m.errText != "" {
		b.WriteString("\n\n")
		b.WriteString(components.ErrorBox("Error", m.errText, m.width))
	}
	return components.TitledBox("Select or Add Tags", b.String(), m.width)
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
