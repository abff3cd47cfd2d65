package metrics

import "time"

// Agent kinds understood by the experiment runner.
const (
	RandomAgent    = "random"
	HeuristicAgent = "heuristic"
	SearchAgent    = "search"
)

// AgentConfig describes how every player of a game is driven.
type AgentConfig struct {
	ID         int           `yaml:"id"`
	Kind       string        `yaml:"kind"`
	Goroutines int           `yaml:"goroutines"`
	Duration   time.Duration `yaml:"duration"`
	Episodes   int           `yaml:"episodes"`
	Cutoff     int           `yaml:"cutoff"`
}
