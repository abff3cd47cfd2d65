package experiments

import (
	"fmt"
	"time"

	"pandemic/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// RunThroughputExperiment plays the same experiment once per worker count and
// measures how many games per second each setting completes. Game and move
// records are not kept; only the throughput table is written.
func RunThroughputExperiment(config Config, workers []int) ([]metrics.ThroughputRecord, error) {
	if len(workers) == 0 {
		return nil, fmt.Errorf("no worker counts given")
	}

	records := []metrics.ThroughputRecord{}

	log.Info().Msg("starting throughput experiment...")

	for _, n := range workers {
		c := config
		c.Workers = n
		c.RecordMoves = false
		if err := c.Validate(); err != nil {
			return nil, err
		}

		log.Info().Msgf("starting run with %d workers...", n)

		start := time.Now()
		jobs, err := runGames(c)
		if err != nil {
			return nil, fmt.Errorf("run with %d workers: %w", n, err)
		}
		elapsed := time.Since(start)

		moves := 0
		for _, j := range jobs {
			moves += j.result.TotalMoves
		}
		record := metrics.ThroughputRecord{
			Workers:  n,
			Games:    len(jobs),
			Moves:    moves,
			Duration: elapsed,
		}
		records = append(records, record)

		log.Info().Msgf("completed run with %d workers: %.1f games/s", n, record.GamesPerSecond())
	}

	log.Info().Msg("completed throughput experiment")

	writer, err := metrics.NewWriter(config.OutputDir, config.Name+"_throughput")
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteThroughputRecords(records); err != nil {
		return nil, fmt.Errorf("failed to write throughput records: %w", err)
	}
	log.Info().Msg("stored throughput records")

	return records, nil
}
