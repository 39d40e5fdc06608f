// Command game runs the heist in a plain line-oriented loop: narration
// on stdout, one command per input line. Logs go to stderr.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/dmarulanda/atraco/internal/audio"
	"github.com/dmarulanda/atraco/internal/config"
	"github.com/dmarulanda/atraco/internal/logger"
	"github.com/dmarulanda/atraco/internal/transcript"
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

	cat, err := loadCatalog()
	if err != nil {
		logger.WithError(log, err).Error("catalog load failed")
		os.Exit(1)
	}

	var player audio.Player = audio.Null{}
	if cfg.AudioEnabled && cfg.AudioDir != "" {
		player = audio.NewWAVPlayer(cfg.AudioDir, log)
		log.Debug("audio enabled", "dir", cfg.AudioDir)
	}

	sink := transcript.New(os.Stdout, player, cat.Ambient)
	session := game.NewSession(cat, world.Hard(), sink)
	log.Info("session started", "session_id", session.ID, "catalog", cat.Name)

	session.Intro()

	scanner := bufio.NewScanner(os.Stdin)
	for session.Running {
		fmt.Print(session.Prompt())
		if !scanner.Scan() {
			break
		}
		session.Execute(scanner.Text())
	}

	log.Info("session ended", "session_id", session.ID, "ending", string(session.Ending), "moves", session.World.TotalMoves)
}

// loadCatalog uses the embedded catalog unless an alternate JSON file
// is given on the command line.
func loadCatalog() (*content.Catalog, error) {
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			return nil, err
		}
		return content.Parse(data)
	}
	return content.Load()
}
