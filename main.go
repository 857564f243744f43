package main

import (
	"embed"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"

	"pastepill/internal/config"
	"pastepill/internal/logging"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	_ = godotenv.Load()

	cfgDir := flag.String("config", "", "config directory (default ~/.config/pastepill)")
	logFile := flag.String("log", "", "append logs to this file")
	flag.Parse()

	dir := *cfgDir
	if dir == "" {
		d, err := config.DefaultDir()
		if err != nil {
			log.Fatalf("%v", err)
		}
		dir = d
	}
	cfg, err := config.Load(dir)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	cleanup, err := logging.Setup(cfg.LogFile)
	if err != nil {
		log.Fatalf("cannot open log file: %v", err)
	}
	defer cleanup()

	log.Printf("pastepill starting (paste delay %s)", cfg.PasteDelay)
	app := NewApp(cfg)

	err = wails.Run(&options.App{
		Title:            "pastepill",
		Width:            cfg.RecordingWidth,
		Height:           cfg.RecordingHeight,
		Frameless:        true,
		AlwaysOnTop:      true,
		StartHidden:      true,
		DisableResize:    true,
		BackgroundColour: &options.RGBA{R: 0, G: 0, B: 0, A: 0},
		AssetServer:      &assetserver.Options{Assets: assets},
		OnStartup:        app.startup,
		OnBeforeClose:    app.beforeClose,
		OnShutdown:       app.shutdown,
		Bind:             []interface{}{app},
		Mac: &mac.Options{
			WebviewIsTransparent: true,
			WindowIsTranslucent:  true,
		},
	})
	if err != nil {
		log.Fatalf("error while running application: %v", err)
	}
}
