// Command editor is the FluxionJS scene editor: it loads a scene
// document, lets you place and manipulate elements on a letterboxed
// canvas, and writes the result back in the runtime markup convention.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"github.com/kisstp2006/FluxionJsSceneEditor/prefabs"
)

func main() {
	scenePath := flag.String("scene", "", "scene file to open")
	flag.Parse()

	cfg, err := LoadConfig()
	if err != nil {
		log.Printf("editor: config: %v (using defaults)", err)
		cfg = DefaultConfig()
	}

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		clipboardOK = false
		log.Printf("editor: clipboard unavailable: %v", err)
	}

	templates, err := prefabs.LoadAll()
	if err != nil {
		log.Fatalf("editor: load templates: %v", err)
	}

	ed := NewEditor(cfg, templates, clipboardOK)

	path := *scenePath
	if path == "" {
		path = cfg.LastFile
	}
	if path != "" {
		if err := ed.Load(path); err != nil {
			log.Printf("editor: open %s: %v", path, err)
			ed.New()
		}
	} else {
		ed.New()
	}

	// live-reload palette templates when the on-disk overrides change
	if _, err := os.Stat("prefabs/templates"); err == nil {
		w, err := prefabs.NewWatcher("prefabs/templates")
		if err != nil {
			log.Printf("editor: template watcher: %v", err)
		} else {
			ed.watcher = w
			defer w.Close()
		}
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Fluxion Scene Editor")
	if err := ebiten.RunGame(ed); err != nil {
		log.Fatal(err)
	}
}
