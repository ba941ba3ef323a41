package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sealive/herodeck/internal/slideshow"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minHeight     = 8

	indicatorCell = 3 // " ● "
	bodyMargin    = 4
)

func normalizeSize(width, height int) (int, int) {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	if height < minHeight {
		height = minHeight
	}
	return width, height
}

// Bottom rows, counted from the last line: status, indicators, progress.
func indicatorRow(height int) int { return height - 2 }
func progressRow(height int) int  { return height - 3 }

// indicatorsFit reports whether one dot per slide fits the row. Otherwise the
// row shows a compact position readout and takes no clicks.
func indicatorsFit(width, n int) bool { return n*indicatorCell <= width }

func indicatorStart(width, n int) int {
	start := (width - n*indicatorCell) / 2
	if start < 0 {
		return 0
	}
	return start
}

// indicatorAt maps a click position to the slide indicator under it.
func indicatorAt(width, height, n, x, y int) (int, bool) {
	width, height = normalizeSize(width, height)
	if y != indicatorRow(height) || !indicatorsFit(width, n) {
		return 0, false
	}
	start := indicatorStart(width, n)
	if x < start || x >= start+n*indicatorCell {
		return 0, false
	}
	return (x - start) / indicatorCell, true
}

// View renders the hero carousel.
func (p *HeroPage) View(width, height int) string {
	width, height = normalizeSize(width, height)
	snap := p.ctrl.Snapshot()
	slide := p.ctrl.CurrentSlide()

	lines := make([]string, height)
	lines[0] = p.renderHeader(width, snap)

	bodyTop := 1
	bodyRows := progressRow(height) - bodyTop
	body := renderSlideBody(slide, width-2*bodyMargin)
	if len(body) > bodyRows {
		body = body[:bodyRows]
	}
	offset := bodyTop + (bodyRows-len(body))/2
	pad := strings.Repeat(" ", bodyMargin)
	for i, l := range body {
		lines[offset+i] = pad + l
	}

	p.bar.Width = width - 2*bodyMargin
	lines[progressRow(height)] = pad + p.bar.ViewAs(snap.Progress/100)
	lines[indicatorRow(height)] = renderIndicators(width, p.ctrl.Len(), snap.CurrentIndex)
	lines[height-1] = p.renderStatus(width, snap)

	return strings.Join(lines, "\n")
}

func (p *HeroPage) renderHeader(width int, snap slideshow.Snapshot) string {
	left := " SEALIVE · freight forwarding"
	right := fmt.Sprintf("%d/%d ", snap.CurrentIndex+1, p.ctrl.Len())
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func renderSlideBody(s slideshow.Slide, width int) []string {
	if width < 10 {
		width = 10
	}
	wrap := lipgloss.NewStyle().Width(width)

	var parts []string
	if s.Subtitle != "" {
		parts = append(parts, subtitleStyle.Render(s.Subtitle), "")
	}
	parts = append(parts, titleStyle.Render(strings.ToUpper(s.Title)), "")
	if s.Description != "" {
		parts = append(parts, wrap.Inherit(bodyStyle).Render(s.Description), "")
	}
	if s.ImageRef != "" {
		parts = append(parts, imageStyle.Render(truncate("image: "+s.ImageRef, width)))
	}
	return strings.Split(lipgloss.JoinVertical(lipgloss.Left, parts...), "\n")
}

func renderIndicators(width, n, current int) string {
	if !indicatorsFit(width, n) {
		compact := truncate(fmt.Sprintf("● %d/%d", current+1, n), width)
		pad := (width - lipgloss.Width(compact)) / 2
		if pad < 0 {
			pad = 0
		}
		return strings.Repeat(" ", pad) + indicatorActive.Render(compact)
	}
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", indicatorStart(width, n)))
	for i := 0; i < n; i++ {
		if i == current {
			b.WriteString(" " + indicatorActive.Render("●") + " ")
		} else {
			b.WriteString(" " + indicatorInactive.Render("○") + " ")
		}
	}
	return b.String()
}

func (p *HeroPage) renderStatus(width int, snap slideshow.Snapshot) string {
	state := "▶ playing"
	if !snap.IsPlaying {
		state = "⏸ paused"
	}
	left := fmt.Sprintf(" %s  %3.0f%%", state, snap.Progress)
	right := "←/→ slide · space play/pause · 1-9 jump · ? help · q quit "
	if width < lipgloss.Width(left)+lipgloss.Width(right)+1 {
		right = "? help "
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return statusStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if width <= 1 || len(r) <= 1 {
		return "…"
	}
	if len(r) > width-1 {
		r = r[:width-1]
	}
	return string(r) + "…"
}
