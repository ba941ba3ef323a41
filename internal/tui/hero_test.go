package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sealive/herodeck/internal/catalog"
	"github.com/sealive/herodeck/internal/slideshow"
)

func newTestHero(t *testing.T) *HeroPage {
	t.Helper()
	ctrl, err := slideshow.New(catalog.Default(),
		slideshow.WithDwell(5000*time.Millisecond),
		slideshow.WithTick(50*time.Millisecond))
	if err != nil {
		t.Fatalf("slideshow.New: %v", err)
	}
	p := NewHeroPage(ctrl, nil)
	p.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return p
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHero_InitStartsSingleTimer(t *testing.T) {
	t.Parallel()

	p := newTestHero(t)
	if cmd := p.Init(); cmd == nil {
		t.Fatalf("Init returned nil cmd while playing")
	}
	gen := p.gen
	if cmd := p.Init(); cmd != nil {
		t.Fatalf("second Init started another timer chain")
	}
	if p.gen != gen {
		t.Fatalf("gen changed on redundant Init")
	}
}

func TestHero_TickAdvancesProgress(t *testing.T) {
	t.Parallel()

	p := newTestHero(t)
	p.Init()

	cmd, _ := p.Update(TickMsg{Gen: p.gen, At: time.Now()})
	if cmd == nil {
		t.Fatalf("tick did not schedule the next tick")
	}
	if got := p.ctrl.Snapshot().Progress; got != 1 {
		t.Fatalf("progress = %v, want 1", got)
	}

	for i := 1; i < 100; i++ {
		p.Update(TickMsg{Gen: p.gen})
	}
	snap := p.ctrl.Snapshot()
	if snap.CurrentIndex != 1 || snap.Progress != 0 {
		t.Fatalf("after 100 ticks = %+v, want index 1 progress 0", snap)
	}
}

func TestHero_StaleTickIgnored(t *testing.T) {
	t.Parallel()

	p := newTestHero(t)
	p.Init()
	stale := p.gen

	p.Update(keyRunes(" ")) // pause
	p.Update(keyRunes(" ")) // play, new chain

	cmd, _ := p.Update(TickMsg{Gen: stale})
	if cmd != nil {
		t.Fatalf("stale tick rescheduled itself")
	}
	if got := p.ctrl.Snapshot().Progress; got != 0 {
		t.Fatalf("stale tick changed progress to %v", got)
	}
}

func TestHero_PauseStopsChain(t *testing.T) {
	t.Parallel()

	p := newTestHero(t)
	p.Init()
	p.Update(TickMsg{Gen: p.gen})
	live := p.gen

	cmd, _ := p.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd != nil {
		t.Fatalf("pause returned a cmd")
	}
	if p.ctrl.Snapshot().IsPlaying {
		t.Fatalf("space did not pause")
	}
	if cmd, _ := p.Update(TickMsg{Gen: live}); cmd != nil {
		t.Fatalf("tick after pause rescheduled")
	}
	if got := p.ctrl.Snapshot().Progress; got != 1 {
		t.Fatalf("progress = %v, want 1 kept across pause", got)
	}

	cmd, _ = p.Update(keyRunes(" "))
	if cmd == nil {
		t.Fatalf("resume did not start a timer")
	}
	if !p.ctrl.Snapshot().IsPlaying {
		t.Fatalf("second space did not resume")
	}
}

func TestHero_KeyNavigation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{"right", []tea.KeyMsg{{Type: tea.KeyRight}}, 1},
		{"left wraps", []tea.KeyMsg{{Type: tea.KeyLeft}}, 2},
		{"l and h", []tea.KeyMsg{keyRunes("l"), keyRunes("l"), keyRunes("h")}, 1},
		{"digit jump", []tea.KeyMsg{keyRunes("3")}, 2},
		{"digit out of range ignored", []tea.KeyMsg{keyRunes("2"), keyRunes("9")}, 1},
		{"end", []tea.KeyMsg{{Type: tea.KeyEnd}}, 2},
		{"home", []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyHome}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := newTestHero(t)
			p.Init()
			p.Update(TickMsg{Gen: p.gen})
			for _, k := range tt.keys {
				p.Update(k)
			}
			snap := p.ctrl.Snapshot()
			if snap.CurrentIndex != tt.want {
				t.Fatalf("index = %d, want %d", snap.CurrentIndex, tt.want)
			}
			if snap.Progress != 0 {
				t.Fatalf("progress = %v after navigation, want 0", snap.Progress)
			}
		})
	}
}

func TestHero_QuitAndHelp(t *testing.T) {
	t.Parallel()

	p := newTestHero(t)
	cmd, _ := p.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatalf("q returned nil cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q did not quit")
	}

	_, nav := p.Update(keyRunes("?"))
	if nav == nil || nav.PageID != PageHelp {
		t.Fatalf("? nav = %+v, want help", nav)
	}
}

func TestHero_IndicatorClick(t *testing.T) {
	t.Parallel()

	p := newTestHero(t)
	start := indicatorStart(80, 3)
	row := indicatorRow(24)

	click := func(x, y int) {
		p.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	}

	click(start+2*indicatorCell+1, row)
	if got := p.ctrl.Snapshot().CurrentIndex; got != 2 {
		t.Fatalf("click on third dot -> index %d, want 2", got)
	}
	click(start, row)
	if got := p.ctrl.Snapshot().CurrentIndex; got != 0 {
		t.Fatalf("click on first dot -> index %d, want 0", got)
	}
	click(start+3*indicatorCell, row)
	click(start+indicatorCell, row-1)
	if got := p.ctrl.Snapshot().CurrentIndex; got != 0 {
		t.Fatalf("click outside indicators moved to %d", got)
	}
}

func TestIndicatorAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x, y    int
		wantIdx int
		wantOK  bool
	}{
		{35, 22, 0, true},
		{37, 22, 0, true},
		{38, 22, 1, true},
		{43, 22, 2, true},
		{44, 22, 0, false},
		{34, 22, 0, false},
		{36, 21, 0, false},
	}
	for _, tt := range tests {
		idx, ok := indicatorAt(80, 24, 3, tt.x, tt.y)
		if ok != tt.wantOK || (ok && idx != tt.wantIdx) {
			t.Errorf("indicatorAt(%d,%d) = %d,%v want %d,%v", tt.x, tt.y, idx, ok, tt.wantIdx, tt.wantOK)
		}
	}
}

func TestHero_View(t *testing.T) {
	t.Parallel()

	p := newTestHero(t)
	out := p.View(80, 24)

	lines := strings.Split(out, "\n")
	if len(lines) != 24 {
		t.Fatalf("view has %d lines, want 24", len(lines))
	}
	for _, want := range []string{"Next-Gen Logistics", "FAST AND RELIABLE", "freight forwarding", "1/3", "playing"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if !strings.Contains(lines[indicatorRow(24)], "●") {
		t.Errorf("indicator row missing active dot: %q", lines[indicatorRow(24)])
	}

	p.Update(tea.KeyMsg{Type: tea.KeyRight})
	p.Update(keyRunes(" "))
	out = p.View(80, 24)
	if !strings.Contains(out, "PACKAGE SAFETY") || !strings.Contains(out, "paused") {
		t.Errorf("view after next+pause missing slide/paused state")
	}
}

func TestHero_ViewTinyTerminal(t *testing.T) {
	t.Parallel()

	p := newTestHero(t)
	out := p.View(20, 3)
	if got := len(strings.Split(out, "\n")); got != minHeight {
		t.Fatalf("tiny view lines = %d, want %d", got, minHeight)
	}
}

func TestIndicators_TooManyForWidth(t *testing.T) {
	t.Parallel()

	const n, width = 60, 20
	row := renderIndicators(width, n, 4)
	if got := lipgloss.Width(row); got > width {
		t.Fatalf("indicator row is %d columns wide, terminal has %d", got, width)
	}
	if !strings.Contains(row, "5/60") {
		t.Fatalf("compact indicator = %q, want position 5/60", row)
	}
	for x := 0; x < width; x++ {
		if idx, ok := indicatorAt(width, 24, n, x, indicatorRow(24)); ok {
			t.Fatalf("click at x=%d mapped to hidden dot %d", x, idx)
		}
	}

	// Exactly fitting dots stay clickable.
	if _, ok := indicatorAt(9, 24, 3, 0, indicatorRow(24)); !ok {
		t.Fatalf("three dots in nine columns not clickable")
	}
}
