// ClickBoard - a two-player point-and-click chess board built with Ebitengine
package main

import (
	"flag"
	"log"

	"github.com/hailam/clickboard/internal/play"
	"github.com/hailam/clickboard/internal/storage"
	"github.com/hailam/clickboard/internal/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	assetDir  = flag.String("assets", "images", "directory holding <code>.png or <code>.svg piece images")
	boardSize = flag.Int("size", 512, "board width and height in pixels")
	dataDir   = flag.String("data", "", "data directory (default: platform data directory)")
	resume    = flag.Bool("resume", true, "continue the last stored board")
	sound     = flag.Bool("sound", true, "play a click when a move lands")
	noStore   = flag.Bool("nostore", false, "do not read or write any stored state")
)

func main() {
	flag.Parse()

	cfg := ui.Config{
		Geometry: play.Geometry{BoardSize: *boardSize, Dimension: 8},
		AssetDir: *assetDir,
		Sound:    *sound,
		Resume:   *resume,
	}

	if !*noStore {
		store, err := storage.NewStorage(*dataDir)
		if err != nil {
			log.Printf("Warning: Failed to initialize storage: %v", err)
		} else {
			defer store.Close()
			cfg.Storage = store
			applyPreferences(store, &cfg)
		}
	}

	game := ui.NewGame(cfg)

	ebiten.SetWindowSize(cfg.Geometry.BoardSize, cfg.Geometry.BoardSize)
	ebiten.SetWindowTitle("ClickBoard")
	ebiten.SetTPS(ui.MaxTPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// applyPreferences fills cfg from stored preferences. Flags given on the
// command line win; the merged result is stored for the next launch.
func applyPreferences(store *storage.Storage, cfg *ui.Config) {
	prefs, err := store.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["assets"] {
		prefs.AssetDir = cfg.AssetDir
	} else {
		cfg.AssetDir = prefs.AssetDir
	}
	if set["resume"] {
		prefs.Resume = cfg.Resume
	} else {
		cfg.Resume = prefs.Resume
	}
	if set["sound"] {
		prefs.SoundEnabled = cfg.Sound
	} else {
		cfg.Sound = prefs.SoundEnabled
	}

	if err := store.SavePreferences(prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}
