package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/padshot/config"
)

func main() {
	configPath := flag.String("config", "", "path to tuning config (YAML)")
	watch := flag.Bool("watch", false, "reload the config when it changes on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("load config", "path", *configPath, "err", err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game := NewGame(cfg)

	if *watch {
		path := *configPath
		if path == "" {
			path = "configs/padshot.yaml"
		}
		if _, err := os.Stat(path); err != nil {
			log.Warn("nothing to watch", "path", path, "err", err)
		} else {
			watcher, err := config.NewWatcher(path)
			if err != nil {
				log.Fatal("start config watcher", "path", path, "err", err)
			}
			defer watcher.Close()
			game.SetWatcher(watcher)
			log.Info("watching config", "path", path)
		}
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal("run", "err", err)
	}
}
