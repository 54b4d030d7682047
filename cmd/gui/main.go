package main

import (
	"embed"
	"log"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/flavono123/formbuilder/internal/form"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	if os.Getenv("DEBUG") == "" {
		log.SetFlags(0)
	}

	// Create an instance of the app structure
	app := NewApp(form.NewStore(form.UUIDGenerator{}))

	// Create application with options
	err := wails.Run(&options.App{
		Title:  "formbuilder",
		Width:  960,
		Height: 720,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 30, G: 30, B: 46, A: 1},
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}
