package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sealive/herodeck/internal/catalog"
	"github.com/sealive/herodeck/internal/logging"
	"github.com/sealive/herodeck/internal/slideshow"
	"github.com/sealive/herodeck/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var slidesFile string
	var paused bool
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/herodeck/config.yml)")
	flag.StringVar(&slidesFile, "slides", "", "override slides file (YAML)")
	flag.BoolVar(&paused, "paused", false, "start with autoplay off")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("herodeck TUI - Hero Carousel\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cfg = applyFlagOverrides(cfg, slidesFile, paused)

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg cliConfig) error {
	logger, cleanup, err := logging.New(logging.Config{Level: cfg.LogLevel, FilePath: cfg.LogFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
		logger, cleanup = zap.NewNop(), func() {}
	}
	defer cleanup()

	slides, err := catalog.LoadOrDefault(cfg.SlidesFile)
	if err != nil {
		return err
	}
	ctrl, err := slideshow.New(slides, slideshow.WithDwell(cfg.Dwell), slideshow.WithTick(cfg.Tick))
	if err != nil {
		return err
	}
	if !cfg.Autoplay {
		ctrl.Pause()
	}

	app := tui.NewApp(tui.NewHeroPage(ctrl, logger.Named("tui")), tui.NewHelpPage())

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
