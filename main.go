package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/logging"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "draw collision boxes and log at debug level")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	fullscreen := flag.Bool("fullscreen", false, "start fullscreen")
	mute := flag.Bool("mute", false, "disable sound effects")
	levelName := flag.String("level", "level1", "level name in levels/ (basename, .txt optional)")
	sheet := flag.String("sheet", "", "optional PNG strip to use for the avatar")
	watch := flag.Bool("watch", true, "reload levels and prefabs when they change on disk")
	flag.Parse()

	logger, err := logging.New(logging.Console, *debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth*4, common.BaseHeight*4)
	ebiten.SetWindowTitle("platformer")
	ebiten.SetFullscreen(*fullscreen)
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(Options{
		Level:     *levelName,
		Debug:     *debug,
		Mute:      *mute,
		SheetPath: *sheet,
		Watch:     *watch,
	}, logger)
	if err != nil {
		logger.Fatal("start game", zap.Error(err))
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run game", zap.Error(err))
	}
}
