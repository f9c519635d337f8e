package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritecollider/config"
	"github.com/milk9111/spritecollider/shape"
)

// options holds the command line flags. Only flags that were set override
// the loaded config.
type options struct {
	configPath string
	debug      bool
	scale      float64
	sensor     bool
	failFast   bool
	noWatch    bool
	points     string
}

func newFlagSet(o *options, handling flag.ErrorHandling) *flag.FlagSet {
	fs := flag.NewFlagSet("spritecollider", handling)
	fs.StringVar(&o.configPath, "config", "", "YAML config file")
	fs.BoolVar(&o.debug, "debug", false, "draw collider triangles and log rebuilds")
	fs.Float64Var(&o.scale, "scale", 0, "initial display scale")
	fs.BoolVar(&o.sensor, "sensor", false, "mark the collider as a sensor")
	fs.BoolVar(&o.failFast, "failfast", false, "stop on the first outline that cannot be tessellated")
	fs.BoolVar(&o.noWatch, "nowatch", false, "do not reload the image when it changes on disk")
	fs.StringVar(&o.points, "points", "", `seed outline, "x,y;x,y;..."`)
	return fs
}

func (o *options) apply(cfg *config.Config, fs *flag.FlagSet) {
	if fs.NArg() > 0 {
		cfg.Image = fs.Arg(0)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = o.debug
		case "scale":
			cfg.Scale = o.scale
		case "sensor":
			cfg.Sensor = o.sensor
		case "failfast":
			if o.failFast {
				cfg.OnFailure = config.PolicyFailFast
			} else {
				cfg.OnFailure = config.PolicyRetry
			}
		case "nowatch":
			cfg.Watch = !o.noWatch
		}
	})
}

func main() {
	var opts options
	fs := newFlagSet(&opts, flag.ExitOnError)
	_ = fs.Parse(os.Args[1:])

	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	opts.apply(&cfg, fs)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if cfg.Image == "" {
		log.Fatal("provide path to image file")
	}

	seed, err := shape.ParsePoints(opts.points)
	if err != nil {
		log.Fatal(err)
	}

	game, err := NewGame(cfg, seed)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	err = ebiten.RunGame(game)
	_ = game.Close()
	if err != nil {
		log.Fatal(err)
	}
}
