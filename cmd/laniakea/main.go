package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/simonolander/laniakea/client/game"
	"github.com/simonolander/laniakea/pkg/log"
	"github.com/simonolander/laniakea/pkg/version"
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	debug := flag.Bool("debug", false, "Enable debug overlay")
	size := flag.Int("size", 0, "Skip the menu and start a game of this size")
	seed := flag.Int64("seed", 0, "Puzzle generation seed, 0 means random")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting laniakea version %s", version.Get())

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Debug("Using seed %d", *seed)

	g, err := game.NewGame(game.NewGameOptions{
		Debug: *debug,
		Seed:  *seed,
		Size:  *size,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(game.DefaultScreenWidth, game.DefaultScreenHeight)
	ebiten.SetWindowTitle("Laniakea")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
