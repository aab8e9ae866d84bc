package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/sheikhrachel/conway-world/model"
	"github.com/sheikhrachel/conway-world/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.World,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world, err := model.NewWorld(config, rand.New(rand.NewPCG(uint64(seed), 0)))
	if err != nil {
		return nil, nil, nil, err
	}

	return world, model.NewTerminalRenderer(), utils.NewStats(), nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, world *model.World) {
	fmt.Printf("Grid: %dx%d | Spawn threshold: %.2f | Initial living cells: %d\n",
		world.Height(), world.Width(), config.SpawnThreshold, world.LiveCells())
	fmt.Printf("Generations: %d | Frame delay: %v\n", config.MaxGenerations, config.FrameDelay)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// gameStatus labels the current generation for the status line
func gameStatus(world *model.World) string {
	switch {
	case world.LiveCells() == 0:
		return aurora.Red("Extinct").String()
	case world.IsStagnant():
		return aurora.Yellow("Stagnant").String()
	default:
		return aurora.Green("Active").String()
	}
}

// displayGameStatus shows the current game status
func displayGameStatus(world *model.World, stats *utils.Stats) {
	living := world.LiveCells()
	density := float64(living) / float64(world.Width()*world.Height()) * 100

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		aurora.Bold(world.Generation()), living, density, gameStatus(world))
	fmt.Printf("Births: %d | Deaths: %d | Avg Pop: %.1f | %.1f gen/sec\n",
		stats.TotalBirths, stats.TotalDeaths, stats.AveragePopulation, stats.GenerationsPerSecond)
	fmt.Println()
}

// displayFinalStats prints the summary once the loop ends
func displayFinalStats(world *model.World, stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		world.Generation(), time.Since(stats.StartTime).Seconds())
	fmt.Printf("Population: %d | Births: %d | Deaths: %d | Avg Pop: %.1f\n",
		world.LiveCells(), stats.TotalBirths, stats.TotalDeaths, stats.AveragePopulation)
}

// runGame drives render-then-advance for config.MaxGenerations frames, stopping early when ctx is done
func runGame(
	ctx context.Context,
	config utils.Config,
	world *model.World,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
) error {
	lastFrameTime := time.Now()
	for world.Generation() < config.MaxGenerations {
		renderer.Clear()
		if config.ShowStatus {
			displayGameStatus(world, stats)
		}
		if err := renderer.Display(world); err != nil {
			return err
		}

		t := world.Advance()
		stats.Update(t.Generation, t.Population, t.Births, t.Deaths, time.Since(lastFrameTime))
		lastFrameTime = time.Now()

		if world.Generation() == config.MaxGenerations {
			break
		}
		if !waitFrame(ctx, config.FrameDelay) {
			return nil
		}
	}
	return nil
}

// waitFrame sleeps for delay and reports false if ctx was cancelled first
func waitFrame(ctx context.Context, delay time.Duration) bool {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
