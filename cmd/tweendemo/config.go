package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/tween"
)

// Scene describes the canvas and the items the demo animates.
//
// Example scene.toml:
//
//	width = 640
//	height = 360
//	fps = 30
//	frames = 120
//	background = "#1d3557"
//
//	[[item]]
//	id = 1
//	kind = "window"
//	rect = [40, 40, 160, 120]
//	color = "#457b9d"
//
//	[[item]]
//	id = 2
//	kind = "text"
//	rect = [60, 200, 200, 24]
//	color = "#f1faee"
//	text = "hello, tween"
type Scene struct {
	Width      int         `toml:"width"`
	Height     int         `toml:"height"`
	FPS        int         `toml:"fps"`
	Frames     int         `toml:"frames"`
	Background string      `toml:"background"`
	Items      []SceneItem `toml:"item"`

	// CellWidth and CellHeight map scene pixels to terminal cells.
	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`
}

// SceneItem is one host item. Rect is x, y, width, height in pixels.
type SceneItem struct {
	ID    uint64 `toml:"id"`
	Kind  string `toml:"kind"`
	Rect  [4]int `toml:"rect"`
	Color string `toml:"color"`
	Text  string `toml:"text"`
}

func defaultScene() Scene {
	return Scene{
		Width:      640,
		Height:     360,
		FPS:        30,
		Frames:     90,
		Background: "#1d3557",
		CellWidth:  8,
		CellHeight: 16,
		Items: []SceneItem{
			{ID: 1, Kind: "window", Rect: [4]int{32, 32, 200, 140}, Color: "#457b9d"},
			{ID: 2, Kind: "other", Rect: [4]int{32, 220, 48, 48}, Color: "#e63946"},
			{ID: 3, Kind: "other", Rect: [4]int{32, 288, 48, 48}, Color: "#f4a261"},
			{ID: 4, Kind: "text", Rect: [4]int{300, 64, 240, 24}, Color: "#f1faee", Text: "tween"},
		},
	}
}

// loadScene reads a TOML scene over the defaults. Unknown keys are errors.
func loadScene(path string) (Scene, error) {
	sc := defaultScene()
	if path == "" {
		return sc, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Scene{}, err
	}
	defer f.Close()

	// A file that lists items replaces the default items.
	sc.Items = nil
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&sc); err != nil {
		return Scene{}, fmt.Errorf("scene %s: %w", path, err)
	}
	if len(sc.Items) == 0 {
		sc.Items = defaultScene().Items
	}
	if err := sc.validate(); err != nil {
		return Scene{}, fmt.Errorf("scene %s: %w", path, err)
	}
	return sc, nil
}

func (sc Scene) validate() error {
	if sc.Width <= 0 || sc.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", sc.Width, sc.Height)
	}
	if sc.FPS <= 0 {
		return errors.New("fps must be positive")
	}
	if sc.Frames <= 0 {
		return errors.New("frames must be positive")
	}
	if sc.CellWidth <= 0 || sc.CellHeight <= 0 {
		return errors.New("cell size must be positive")
	}
	if _, err := colorful.Hex(sc.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}

	seen := make(map[uint64]bool, len(sc.Items))
	for _, it := range sc.Items {
		if seen[it.ID] {
			return fmt.Errorf("duplicate item id %d", it.ID)
		}
		seen[it.ID] = true
		if _, err := tween.ParseItemKind(it.Kind); err != nil {
			return fmt.Errorf("item %d: %w", it.ID, err)
		}
		if it.Rect[2] < 0 || it.Rect[3] < 0 {
			return fmt.Errorf("item %d: negative size", it.ID)
		}
		if _, err := colorful.Hex(it.Color); err != nil {
			return fmt.Errorf("item %d: color: %w", it.ID, err)
		}
	}
	return nil
}
