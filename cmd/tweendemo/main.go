// Command tweendemo animates a small scene with package tween.
//
// The png backend renders the scene with gg and writes every Nth frame to a
// directory; the term backend plays it in the terminal until it ends or q is
// pressed.
//
//	tweendemo -backend png -output frames -ease ease-out -loop ping-pong
//	tweendemo -backend term -config scene.toml -sound
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/tween"
	"github.com/gogpu/tween/ease"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML scene file (built-in scene if empty)")
		backend    = flag.String("backend", "png", "output backend: png or term")
		frames     = flag.Int("frames", 0, "frames to run (0 keeps the scene value)")
		output     = flag.String("output", "frames", "PNG output directory")
		every      = flag.Int("every", 10, "save every Nth frame with the png backend")
		loop       = flag.String("loop", "ping-pong", "loop mode: none, cycle, ping-pong or continue")
		curve      = flag.String("ease", "ease-in-out", "easing curve name or x1,y1,x2,y2")
		sound      = flag.Bool("sound", false, "chime when an animation completes a pass")
		verbose    = flag.Bool("v", false, "log animation events")
	)
	flag.Parse()

	if *verbose {
		tween.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	sc, err := loadScene(*configPath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	if *frames > 0 {
		sc.Frames = *frames
	}

	mode, err := tween.ParseLoopMode(*loop)
	if err != nil {
		log.Fatal(err)
	}
	c, err := ease.ParseCurve(*curve)
	if err != nil {
		log.Fatal(err)
	}

	d := demo{scene: sc, curve: c, loop: mode}
	if *sound {
		d.chime, err = newChime()
		if err != nil {
			// Non-fatal, the demo runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
		defer d.chime.close()
	}

	switch *backend {
	case "png":
		err = runPNG(d, *output, *every)
	case "term":
		err = runTerm(d)
	default:
		err = fmt.Errorf("unknown backend %q", *backend)
	}
	if err != nil {
		log.Fatal(err)
	}
}
