package experiments

import (
	"errors"
	"fmt"
	"sync"

	"pandemic/engine"
	"pandemic/experiments/metrics"
	"pandemic/game"
	"pandemic/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const NumGames = 30 // Per agent

// Result summarises an experiment once its records are stored.
type Result struct {
	Dir         string // Where the CSV files were written
	GameRecords []metrics.GameRecord
	Wins        map[int]int            // Per AgentConfig.ID
	Losses      map[int]map[string]int // Per AgentConfig.ID, then loss reason
}

type job struct {
	id     int
	agent  metrics.AgentConfig
	seed   uint64
	result metrics.GameRecord
	moves  []metrics.MoveRecord
}

// Run plays every game of the experiment and stores agent configs, game
// records and, if asked, move records as CSV files.
func Run(config Config) (Result, error) {
	if err := config.Validate(); err != nil {
		return Result{}, err
	}

	log.Info().Msgf("starting %s experiment...", config.Name)

	jobs, err := runGames(config)
	if err != nil {
		return Result{}, err
	}

	log.Info().Msgf("completed %s experiment", config.Name)

	writer, err := metrics.NewWriter(config.OutputDir, config.Name)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}

	// Store experiment metadata
	if err := writer.WriteAgentConfigs(config.Agents); err != nil {
		return Result{}, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	result := Result{
		Dir:    writer.Dir(),
		Wins:   map[int]int{},
		Losses: map[int]map[string]int{},
	}
	moveRecords := []metrics.MoveRecord{}
	for _, j := range jobs {
		result.GameRecords = append(result.GameRecords, j.result)
		moveRecords = append(moveRecords, j.moves...)

		id := j.agent.ID
		if j.result.Won {
			result.Wins[id]++
			continue
		}
		if result.Losses[id] == nil {
			result.Losses[id] = map[string]int{}
		}
		reason := j.result.LossReason
		if reason == "" {
			reason = "move limit"
		}
		result.Losses[id][reason]++
	}

	// Store experiment results
	if err := writer.WriteGameRecords(result.GameRecords); err != nil {
		return Result{}, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if config.RecordMoves {
		if err := writer.WriteMoveRecords(moveRecords); err != nil {
			return Result{}, fmt.Errorf("failed to write move records: %w", err)
		}
		log.Info().Msg("stored move records")
	}

	return result, nil
}

// runGames plays all games on config.Workers goroutines. Each game is owned by
// one goroutine for its whole life; only the static map is shared.
func runGames(config Config) ([]*job, error) {
	m := game.CreateMap()

	jobs := make([]*job, 0, len(config.Agents)*config.Games)
	for _, agentConfig := range config.Agents {
		for i := 0; i < config.Games; i++ {
			id := len(jobs) + 1
			jobs = append(jobs, &job{
				id:    id,
				agent: agentConfig,
				seed:  config.Seed + uint64(id),
			})
		}
	}

	task := make(chan *job, len(jobs))
	for _, j := range jobs {
		task <- j
	}
	close(task)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := range task {
				if err := runGame(m, config, j); err != nil {
					mu.Lock()
					errs = append(errs, fmt.Errorf("game %d: %w", j.id, err))
					mu.Unlock()
					continue
				}
				log.Info().Msgf("completed game %d of %d with agent %d: won=%t %s",
					j.id, len(jobs), j.agent.ID, j.result.Won, j.result.LossReason)
			}
		}()
	}
	wg.Wait()

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return jobs, nil
}

// runGame plays a single game with one agent per player and fills in j's records.
func runGame(m *game.CityGraph, config Config, j *job) error {
	logger := log.Logger.With().Int("game", j.id).Logger()
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		logger = logger.Level(zerolog.WarnLevel)
	}

	g, err := game.NewGame(m, config.Players, config.Epidemics, game.WithSeed(j.seed), game.WithLogger(logger))
	if err != nil {
		return err
	}

	agents := make([]agent.Agent, config.Players)
	for i := range agents {
		agents[i] = agent.New(j.agent, j.seed+uint64(i)+1)
	}

	e := engine.LocalEngine(g, agents, engine.WithMaxMoves(config.MaxMoves))
	gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return err
	}

	gameMetric.Seed = j.seed
	j.result = metrics.GameRecord{
		ID:         j.id,
		Agent:      j.agent.ID,
		GameMetric: gameMetric,
	}
	if config.RecordMoves {
		for _, mm := range moveMetrics {
			j.moves = append(j.moves, metrics.MoveRecord{
				Game:       j.id,
				MoveMetric: mm,
			})
		}
	}
	return nil
}
