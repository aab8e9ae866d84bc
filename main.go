package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/conway-world/utils"
)

const defaultConfigPath = "config.json"

var errInterrupted = errors.New("interrupted")

// flagOverrides holds command line values and the names of the flags that were given
type flagOverrides struct {
	configPath string
	width      int
	height     int
	threshold  float64
	steps      int
	interval   time.Duration
	seed       int64
	set        map[string]bool
}

func parseFlags(p *flaggy.Parser, args []string) (flagOverrides, error) {
	fo := flagOverrides{configPath: defaultConfigPath, set: map[string]bool{}}

	p.Description = "Conway's Game of Life on a bounded grid"
	p.String(&fo.configPath, "c", "config", "Path to a JSON config file")
	p.Int(&fo.width, "x", "width", "Width of the grid")
	p.Int(&fo.height, "y", "height", "Height of the grid")
	p.Float64(&fo.threshold, "t", "threshold", "Spawn probability threshold in [0,1]")
	p.Int(&fo.steps, "s", "steps", "Number of generations to run")
	p.Duration(&fo.interval, "i", "interval", "Delay between frames, for example 500ms")
	p.Int64(&fo.seed, "r", "seed", "Random seed (0 picks one from the clock)")
	if err := p.ParseArgs(args); err != nil {
		return fo, errors.Wrap(err, "[parseFlags] failed to parse arguments")
	}

	// keys are flag names without dashes, joined with the value for -k=v
	for _, pv := range p.ParsedValues {
		if pv.IsPositional {
			continue
		}
		name, _, _ := strings.Cut(pv.Key, "=")
		fo.set[name] = true
	}
	return fo, nil
}

func (fo flagOverrides) given(short, long string) bool {
	return fo.set[short] || fo.set[long]
}

// apply copies every flag that was given onto config, valid or not
func (fo flagOverrides) apply(config utils.Config) utils.Config {
	if fo.given("x", "width") {
		config.Width = fo.width
	}
	if fo.given("y", "height") {
		config.Height = fo.height
	}
	if fo.given("t", "threshold") {
		config.SpawnThreshold = fo.threshold
	}
	if fo.given("s", "steps") {
		config.MaxGenerations = fo.steps
	}
	if fo.given("i", "interval") {
		config.FrameDelay = fo.interval
	}
	if fo.given("r", "seed") {
		config.Seed = fo.seed
	}
	return config
}

// loadConfig merges the config file with the flags and validates the result
func loadConfig(fo flagOverrides) (utils.Config, error) {
	config, err := utils.LoadConfig(fo.configPath)
	if err != nil {
		// a missing default file is fine, anything else is not
		if fo.configPath != defaultConfigPath || !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		fmt.Printf("Using default configuration (%s not found)\n", defaultConfigPath)
		config = utils.DefaultConfig()
	}

	config = fo.apply(config)
	if err = config.Validate(); err != nil {
		return config, errors.Wrap(err, "[loadConfig] invalid configuration")
	}
	return config, nil
}

func main() {
	fo, err := parseFlags(flaggy.NewParser("conway-world"), os.Args[1:])
	if err != nil {
		log.Fatalf("%+v", err)
	}
	config, err := loadConfig(fo)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	world, renderer, stats, err := initializeGame(config)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	displayGameInfo(config, world)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	eg.Go(func() error {
		select {
		case sig := <-sigChan:
			return errors.Wrapf(errInterrupted, "received %v", sig)
		case <-ctx.Done():
			return nil
		}
	})
	eg.Go(func() error {
		defer cancel()
		return runGame(ctx, config, world, renderer, stats)
	})

	err = eg.Wait()
	switch {
	case errors.Is(err, errInterrupted):
		fmt.Println("\n🛑 Shutting down gracefully...")
	case err != nil:
		log.Fatalf("%+v", err)
	default:
		fmt.Printf("\n🏁 Reached generation limit (%d)\n", config.MaxGenerations)
	}
	displayFinalStats(world, stats)
}
