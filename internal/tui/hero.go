package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sealive/herodeck/internal/slideshow"
	"go.uber.org/zap"
)

// TickMsg is one autoplay time step. Gen identifies the timer chain that
// produced it; ticks from a cancelled chain are dropped.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

// HeroPage renders the carousel and translates input into controller commands.
type HeroPage struct {
	ctrl *slideshow.Controller
	keys KeyMap
	bar  progress.Model
	log  *zap.Logger

	// The Bubble Tea loop is the only caller, so no locking.
	gen       uint64 // current timer chain
	timerLive bool   // a tick for gen is scheduled

	width  int
	height int
}

// NewHeroPage creates the carousel page around ctrl.
func NewHeroPage(ctrl *slideshow.Controller, logger *zap.Logger) *HeroPage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HeroPage{
		ctrl: ctrl,
		keys: DefaultKeyMap(),
		bar:  progress.New(progress.WithGradient(string(ColorYellow), string(ColorBlue)), progress.WithoutPercentage()),
		log:  logger,
	}
}

func (p *HeroPage) ID() string { return PageHero }

// Init starts autoplay if the controller is playing and no timer chain is live.
func (p *HeroPage) Init() tea.Cmd {
	if p.ctrl.Snapshot().IsPlaying && !p.timerLive {
		return p.startTimer()
	}
	return nil
}

// startTimer opens a fresh timer chain, orphaning any earlier one.
func (p *HeroPage) startTimer() tea.Cmd {
	p.gen++
	p.timerLive = true
	return p.tickCmd()
}

func (p *HeroPage) stopTimer() {
	p.gen++
	p.timerLive = false
}

func (p *HeroPage) tickCmd() tea.Cmd {
	gen := p.gen
	return tea.Tick(p.ctrl.TickInterval(), func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}

func (p *HeroPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return nil, nil

	case TickMsg:
		return p.handleTick(msg), nil

	case tea.KeyMsg:
		return p.handleKey(msg)

	case tea.MouseMsg:
		return p.handleMouse(msg), nil
	}
	return nil, nil
}

func (p *HeroPage) handleTick(msg TickMsg) tea.Cmd {
	if msg.Gen != p.gen {
		return nil
	}
	if !p.ctrl.Snapshot().IsPlaying {
		p.timerLive = false
		return nil
	}
	if p.ctrl.Tick() {
		p.log.Debug("slide advanced", zap.Int("index", p.ctrl.Snapshot().CurrentIndex))
	}
	return p.tickCmd()
}

func (p *HeroPage) handleKey(msg tea.KeyMsg) (tea.Cmd, *PageNav) {
	switch {
	case key.Matches(msg, p.keys.Quit), key.Matches(msg, p.keys.ForceQuit):
		return tea.Quit, nil
	case key.Matches(msg, p.keys.Help):
		return nil, &PageNav{PageID: PageHelp}
	case key.Matches(msg, p.keys.Previous):
		p.ctrl.Previous()
	case key.Matches(msg, p.keys.Next):
		p.ctrl.Next()
	case key.Matches(msg, p.keys.First):
		p.goTo(0)
	case key.Matches(msg, p.keys.Last):
		p.goTo(p.ctrl.Len() - 1)
	case key.Matches(msg, p.keys.Jump):
		n, err := strconv.Atoi(msg.String())
		if err == nil {
			p.goTo(n - 1)
		}
	case key.Matches(msg, p.keys.Toggle):
		return p.toggle(), nil
	}
	return nil, nil
}

// goTo ignores out-of-range targets, e.g. "7" on a three slide deck.
func (p *HeroPage) goTo(index int) {
	if err := p.ctrl.GoTo(index); err != nil {
		p.log.Debug("ignored slide jump", zap.Int("index", index), zap.Error(err))
	}
}

func (p *HeroPage) toggle() tea.Cmd {
	p.ctrl.Toggle()
	if p.ctrl.Snapshot().IsPlaying {
		return p.startTimer()
	}
	p.stopTimer()
	return nil
}

func (p *HeroPage) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	w, h := p.size()
	if idx, ok := indicatorAt(w, h, p.ctrl.Len(), msg.X, msg.Y); ok {
		p.goTo(idx)
	}
	return nil
}

func (p *HeroPage) size() (int, int) {
	w, h := p.width, p.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}
