// Command console runs the heist in a full-screen terminal UI:
// transcript and input on the left, session state on the right.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmarulanda/atraco/internal/audio"
	"github.com/dmarulanda/atraco/internal/config"
	"github.com/dmarulanda/atraco/internal/logger"
	"github.com/dmarulanda/atraco/pkg/content"
	"github.com/dmarulanda/atraco/pkg/game"
	"github.com/dmarulanda/atraco/pkg/world"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.Setup(cfg)

	cat, err := content.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
		os.Exit(1)
	}

	var player audio.Player = audio.Null{}
	if cfg.AudioEnabled && cfg.AudioDir != "" {
		player = audio.NewWAVPlayer(cfg.AudioDir, log)
	}

	sink := newCaptureSink(player, cat.Ambient)
	session := game.NewSession(cat, world.Hard(), sink)
	log.Info("console session started", "session_id", session.ID, "catalog", cat.Name)

	session.Intro()

	p := tea.NewProgram(NewConsoleUI(session, sink),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	log.Info("console session ended", "session_id", session.ID, "ending", string(session.Ending))
}
