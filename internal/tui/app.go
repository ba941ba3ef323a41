package tui

import tea "github.com/charmbracelet/bubbletea"

// App is the top-level Bubble Tea model that routes between pages.
//
// Key and mouse input goes to the active page only. Every other message,
// timer ticks included, is delivered to all pages so background pages keep
// their own timelines.
type App struct {
	pages      map[string]Page
	order      []string
	activePage string
	width      int
	height     int
}

// NewApp creates a new App with the given pages. The first page is the default.
func NewApp(pages ...Page) *App {
	a := &App{pages: make(map[string]Page, len(pages))}
	for _, p := range pages {
		a.pages[p.ID()] = p
		a.order = append(a.order, p.ID())
	}
	if len(a.order) > 0 {
		a.activePage = a.order[0]
	}
	return a
}

// ActivePage returns the ID of the page receiving input.
func (a *App) ActivePage() string { return a.activePage }

func (a *App) Init() tea.Cmd {
	if p, ok := a.pages[a.activePage]; ok {
		return p.Init()
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = wsm.Width
		a.height = wsm.Height
	}

	active, ok := a.pages[a.activePage]
	if !ok {
		return a, nil
	}

	var cmds []tea.Cmd
	var nav *PageNav

	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		var cmd tea.Cmd
		cmd, nav = active.Update(msg)
		cmds = append(cmds, cmd)
	default:
		for _, id := range a.order {
			cmd, n := a.pages[id].Update(msg)
			cmds = append(cmds, cmd)
			if id == a.activePage {
				nav = n
			}
		}
	}

	if nav != nil && nav.PageID != a.activePage {
		if next, exists := a.pages[nav.PageID]; exists {
			a.activePage = nav.PageID
			cmds = append(cmds, next.Init())
		}
	}

	return a, tea.Batch(cmds...)
}

func (a *App) View() string {
	if p, ok := a.pages[a.activePage]; ok {
		return p.View(a.width, a.height)
	}
	return "No active page"
}
