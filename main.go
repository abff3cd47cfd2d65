package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"pandemic/experiments"
	"pandemic/experiments/metrics"
	"pandemic/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML experiment file, flags below override it")
	name := flag.String("name", "", "Experiment name, used for the output folder")
	games := flag.Int("games", 0, "Games per agent")
	players := flag.Int("players", 0, "Players per game (2-4)")
	epidemics := flag.Int("epidemics", -1, "Epidemic cards per game (0-10)")
	kind := flag.String("agent", "", "Play only this agent kind: random, heuristic or search")
	seed := flag.Uint64("seed", 0, "Base random seed, 0 picks one from the clock")
	workers := flag.Int("workers", 0, "Games played concurrently")
	duration := flag.Duration("duration", 0, "Search time per move for the search agent")
	out := flag.String("out", "", "Output directory for CSV records")
	moves := flag.Bool("moves", false, "Also record every move")
	throughput := flag.String("throughput", "", "Comma separated worker counts, runs the throughput experiment instead")
	debug := flag.Bool("debug", false, "Log every game event")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	config := experiments.DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	if *name != "" {
		config.Name = *name
	}
	if *games > 0 {
		config.Games = *games
	}
	if *players > 0 {
		config.Players = *players
	}
	if *epidemics >= 0 {
		config.Epidemics = *epidemics
	}
	if *seed != 0 {
		config.Seed = *seed
	}
	if *workers > 0 {
		config.Workers = *workers
	}
	if *out != "" {
		config.OutputDir = *out
	}
	if *moves {
		config.RecordMoves = true
	}
	if *kind != "" {
		config.Agents = []metrics.AgentConfig{{ID: 1, Kind: *kind, Goroutines: meta.GO_ROUTINES, Duration: *duration}}
	}

	if *throughput != "" {
		counts, err := parseCounts(*throughput)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid -throughput")
		}
		records, err := experiments.RunThroughputExperiment(config, counts)
		if err != nil {
			log.Fatal().Err(err).Msg("throughput experiment failed")
		}
		for _, r := range records {
			fmt.Printf("workers=%d games=%d moves=%d duration=%s games/s=%.2f\n", r.Workers, r.Games, r.Moves, r.Duration, r.GamesPerSecond())
		}
		return
	}

	result, err := experiments.Run(config)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	fmt.Printf("Records written to %s\n", result.Dir)
	for _, agent := range config.Agents {
		fmt.Printf("Agent %d (%s): %d of %d games won, losses %v\n",
			agent.ID, agent.Kind, result.Wins[agent.ID], config.Games, result.Losses[agent.ID])
	}
}

func parseCounts(s string) ([]int, error) {
	var counts []int
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("bad worker count %q", field)
		}
		counts = append(counts, n)
	}
	return counts, nil
}
