package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpPage lists the key bindings. Any of esc, ? or q returns to the carousel.
type HelpPage struct {
	keys KeyMap
	help help.Model
}

// NewHelpPage creates the help page.
func NewHelpPage() *HelpPage {
	h := help.New()
	h.ShowAll = true
	return &HelpPage{keys: DefaultKeyMap(), help: h}
}

func (h *HelpPage) ID() string    { return PageHelp }
func (h *HelpPage) Init() tea.Cmd { return nil }

func (h *HelpPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, h.keys.ForceQuit):
			return tea.Quit, nil
		case key.Matches(msg, h.keys.Escape), key.Matches(msg, h.keys.Help), key.Matches(msg, h.keys.Quit):
			return nil, &PageNav{PageID: PageHero}
		}
	}
	return nil, nil
}

func (h *HelpPage) View(width, height int) string {
	width, height = normalizeSize(width, height)

	header := lipgloss.NewStyle().
		Foreground(ColorBlue).
		Bold(true).
		Render("Keyboard & mouse")

	mouse := lipgloss.NewStyle().
		Foreground(ColorGray).
		Render("click an indicator dot to jump to that slide")

	footer := lipgloss.NewStyle().
		Foreground(ColorGray).
		Render("esc/?/q: back to slides")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, "", h.help.View(h.keys), "", mouse, "", footer))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
