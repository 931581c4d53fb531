package main

import (
	"flag"
	"net/http"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/overworld/logger"
)

func main() {
	debug := flag.Bool("debug", false, "draw hitboxes and paths, hot-reload prefabs")
	levelName := flag.String("level", "overworld.json", "level name in levels/")
	savePath := flag.String("save", "savegame.json", "save file path (empty disables saving)")
	inspectAddr := flag.String("inspect", "", "serve the inspector websocket on this address, e.g. :8090")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	logger.Init()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("overworld")
	ebiten.SetTPS(ticksPerSecond)

	game, err := NewGame(Config{
		LevelName: *levelName,
		SavePath:  *savePath,
		Debug:     *debug,
		Inspect:   *inspectAddr != "",
	})
	if err != nil {
		logger.Log.WithError(err).Fatal("start game")
	}

	if *inspectAddr != "" {
		go func() {
			logger.Log.WithField("addr", *inspectAddr).Info("inspector listening")
			if err := http.ListenAndServe(*inspectAddr, game.hub.Handler()); err != nil {
				logger.Log.WithError(err).Error("inspector stopped")
			}
		}()
	}

	if err := run(game); err != nil {
		logger.Log.WithError(err).Fatal("run game")
	}
}

// run drives the game loop and always closes the game, so progress is saved
// before any fatal exit.
func run(game *Game) error {
	defer game.Close()
	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
