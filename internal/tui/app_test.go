package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestApp_HelpRoundTrip(t *testing.T) {
	t.Parallel()

	hero := newTestHero(t)
	app := NewApp(hero, NewHelpPage())
	if app.Init() == nil {
		t.Fatalf("App.Init did not start autoplay")
	}
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	app.Update(keyRunes("?"))
	if app.ActivePage() != PageHelp {
		t.Fatalf("active page = %q, want help", app.ActivePage())
	}
	if !strings.Contains(app.View(), "Keyboard & mouse") {
		t.Fatalf("help view not rendered")
	}

	// Arrow keys go to the help page, not the carousel.
	app.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := hero.ctrl.Snapshot().CurrentIndex; got != 0 {
		t.Fatalf("key leaked to background page: index %d", got)
	}

	// Ticks still reach the carousel while help is shown.
	app.Update(TickMsg{Gen: hero.gen})
	if got := hero.ctrl.Snapshot().Progress; got != 1 {
		t.Fatalf("progress = %v, want 1 while help visible", got)
	}

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if app.ActivePage() != PageHero {
		t.Fatalf("active page = %q, want hero", app.ActivePage())
	}
	if !strings.Contains(app.View(), "FAST AND RELIABLE") {
		t.Fatalf("hero view not rendered after return")
	}
}

func TestApp_NoPages(t *testing.T) {
	t.Parallel()

	app := NewApp()
	if app.Init() != nil {
		t.Fatalf("empty app Init returned cmd")
	}
	if app.View() != "No active page" {
		t.Fatalf("empty app view = %q", app.View())
	}
}
