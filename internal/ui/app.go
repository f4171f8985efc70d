package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarlin/tagstash/internal/config"
	"github.com/mkarlin/tagstash/internal/kb"
	"github.com/mkarlin/tagstash/internal/ui/components"
)

// --- Messages ---

type errMsg struct{ err error }
type savedMsg struct{ path string }

// --- Modes ---

const (
	modeBrowse = iota
	modeAdd
)

// App is the root TUI model. It routes keys to the active screen and
// owns the exit flow: a quit request opens a save/discard/cancel
// confirmation, saving prompts for a path, and the chosen file is
// written together with the fixed backup before quitting.
type App struct {
	svc      *kb.Service
	cfg      *config.Config
	filePath string
	mode     int
	width    int
	height   int
	errText  string

	quitConfirm bool
	savePrompt  bool
	saveBuf     string
	saving      bool

	browse BrowseModel
	add    AddModel
}

// NewApp creates the root application model. filePath is the file the
// knowledge was loaded from, used as the default save target.
func NewApp(svc *kb.Service, cfg *config.Config, filePath string) App {
	browse := NewBrowseModel(svc)
	browse.vimKeys = cfg != nil && cfg.VimKeys
	return App{
		svc:      svc,
		cfg:      cfg,
		filePath: filePath,
		mode:     modeBrowse,
		browse:   browse,
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browse.width = msg.Width
		a.browse.height = msg.Height
		a.add.width = msg.Width
		a.add.height = msg.Height
		return a, nil

	case savedMsg:
		return a, tea.Quit

	case errMsg:
		a.saving = false
		a.savePrompt = false
		a.quitConfirm = false
		a.errText = msg.err.Error()
		return a, nil

	case tea.KeyMsg:
		if a.saving {
			return a, nil
		}
		if a.errText != "" {
			a.errText = ""
		}
		if a.savePrompt {
			return a.handleSavePromptKeys(msg)
		}
		if a.quitConfirm {
			return a.handleQuitConfirmKeys(msg)
		}
		if a.mode == modeAdd {
			return a.updateAdd(msg)
		}
		return a.updateBrowse(msg)
	}
	return a, nil
}

func (a App) handleQuitConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isKey(msg, "y"):
		a.quitConfirm = false
		a.savePrompt = true
		a.saveBuf = a.defaultSavePath()
	case isKey(msg, "n"):
		return a, tea.Quit
	case isBack(msg):
		a.quitConfirm = false
	}
	return a, nil
}

func (a App) handleSavePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isBack(msg):
		a.savePrompt = false
		a.saveBuf = ""
	case isEnter(msg):
		path := strings.TrimSpace(a.saveBuf)
		if path == "" {
			return a, nil
		}
		a.saving = true
		return a, a.saveAndQuitCmd(path)
	case isKey(msg, "backspace"):
		a.saveBuf = trimLastRune(a.saveBuf)
	default:
		ch := msg.String()
		if len(ch) == 1 || ch == " " {
			a.saveBuf += ch
		}
	}
	return a, nil
}

func (a App) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.add, cmd = a.add.Update(msg)
	if a.add.cancelled {
		a.mode = modeBrowse
		return a, cmd
	}
	if a.add.done {
		// Back to browsing with the new snippet still on screen, the way
		// the original editor kept its text after an add.
		a.mode = modeBrowse
		a.browse = a.browse.Reload(a.add.body)
		a.browse.notice = "saved under: " + strings.Join(a.add.added, ", ")
	}
	return a, cmd
}

func (a App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isQuit(msg):
		a.quitConfirm = true
		return a, nil
	case isKey(msg, "a"):
		a.mode = modeAdd
		a.add = NewAddModel(a.svc)
		a.add.width = a.width
		a.add.height = a.height
		return a, nil
	}
	var cmd tea.Cmd
	a.browse, cmd = a.browse.Update(msg)
	return a, cmd
}

func (a App) saveAndQuitCmd(path string) tea.Cmd {
	svc := a.svc
	return func() tea.Msg {
		if err := svc.Save(path); err != nil {
			return errMsg{err}
		}
		return savedMsg{path: path}
	}
}

// defaultSavePath picks the save prompt's starting value: the file the
// session loaded from, then the configured default, then a plain name.
func (a App) defaultSavePath() string {
	if a.filePath != "" {
		return a.filePath
	}
	if a.cfg != nil && a.cfg.DefaultFile != "" {
		return a.cfg.DefaultFile
	}
	return "knowledge.txt"
}

func (a App) View() string {
	if a.saving {
		return components.Indent(MutedStyle.Render("Saving..."), 2)
	}
	if a.savePrompt {
		return components.Indent(components.InputDialog("Save knowledge to", a.saveBuf), 2)
	}
	if a.quitConfirm {
		dialog := components.ConfirmDialog(
			"Exit",
			"Do you want to save?",
			"y: save | n: discard | esc: cancel",
		)
		return components.Indent(dialog, 2)
	}

	var body string
	if a.mode == modeAdd {
		body = a.add.View()
	} else {
		body = a.browse.View()
	}

	out := RenderBanner() + "\n" + components.Indent(body, 1)
	if a.errText != "" {
		out += "\n" + components.Indent(components.ErrorBox("Error", a.errText, a.width), 1)
	}
	out += "\n" + StatusBarStyle.Render(components.StatusBar(a.hints(), a.width))
	return out
}

func (a App) hints() []string {
	if a.mode == modeAdd {
		if a.add.step == addStepTags {
			return []string{
				components.Hint("↑/↓", "Move"),
				components.Hint("space", "Toggle"),
				components.Hint("tab", "New tags"),
				components.Hint("enter", "Save"),
				components.Hint("esc", "Back"),
			}
		}
		return []string{
			components.Hint("tab", "Choose tags"),
			components.Hint("esc", "Cancel"),
		}
	}
	return []string{
		components.Hint("↑/↓", "Navigate"),
		components.Hint("a", "Add"),
		components.Hint("d", "Delete"),
		components.Hint("u", "Undo"),
		components.Hint("q", "Quit"),
	}
}
