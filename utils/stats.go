package utils

import "time"

// Stats for monitoring a run
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	TotalBirths          int
	TotalDeaths          int
	LastPopulation       int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one completed generation
func (s *Stats) Update(generation, population, births, deaths int, duration time.Duration) {
	s.TotalGenerations = generation
	s.TotalBirths += births
	s.TotalDeaths += deaths
	s.LastPopulation = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}
