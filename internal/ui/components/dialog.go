package components

import "github.com/charmbracelet/lipgloss"

var dialogStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#2d3a42")).
	Padding(1, 2).
	Width(44)

// ConfirmDialog renders a confirmation prompt. The hint line names the
// accepted keys, e.g. "y: save | n: discard | esc: cancel".
func ConfirmDialog(title, message, hint string) string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4e9a8e")).
		Bold(true).
		Render(title)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8a93a6")).
		Render(message)

	keys := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8a93a6")).
		Render("\n" + hint)

	return dialogStyle.Render(header + "\n\n" + body + keys)
}

// InputDialog renders a text input prompt.
func InputDialog(title, input string) string {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4e9a8e")).
		Bold(true).
		Render(title)

	field := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#c7a252")).
		Render("> " + input + "█")

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8a93a6")).
		Render("\nenter: submit | esc: cancel")

	return dialogStyle.Render(header + "\n\n" + field + hint)
}
