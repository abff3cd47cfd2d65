package experiments

import (
	"errors"
	"fmt"
	"os"
	"time"

	"pandemic/experiments/metrics"
	"pandemic/game"
	"pandemic/meta"

	"gopkg.in/yaml.v3"
)

// Config describes one experiment. Every entry of Agents is played for Games
// games, with that agent driving all players.
type Config struct {
	Name        string                `yaml:"name"`
	Games       int                   `yaml:"games"`
	Players     int                   `yaml:"players"`
	Epidemics   int                   `yaml:"epidemics"`
	Seed        uint64                `yaml:"seed"`
	Workers     int                   `yaml:"workers"`
	MaxMoves    int                   `yaml:"max_moves"`
	OutputDir   string                `yaml:"output_dir"`
	RecordMoves bool                  `yaml:"record_moves"`
	Agents      []metrics.AgentConfig `yaml:"agents"`
}

func DefaultConfig() Config {
	return Config{
		Name:      "simulation",
		Games:     NumGames,
		Players:   meta.NUM_PLAYERS,
		Epidemics: meta.NUM_EPIDEMICS,
		Seed:      uint64(time.Now().UnixNano()),
		Workers:   meta.WORKERS,
		MaxMoves:  meta.MAX_MOVES,
		OutputDir: meta.OUTPUT_DIR,
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: metrics.RandomAgent},
			{ID: 2, Kind: metrics.HeuristicAgent},
		},
	}
}

// LoadConfig reads a YAML experiment file. Fields left out keep their default value.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return config, fmt.Errorf("failed to open experiment config: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("failed to decode experiment config %s: %w", path, err)
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Games <= 0 {
		errs = append(errs, fmt.Errorf("games must be positive, got %d", c.Games))
	}
	if c.Players < game.MinPlayers || c.Players > game.MaxPlayers {
		errs = append(errs, fmt.Errorf("players must be between %d and %d, got %d", game.MinPlayers, game.MaxPlayers, c.Players))
	}
	if c.Epidemics < 0 || c.Epidemics > game.MaxEpidemicCards {
		errs = append(errs, fmt.Errorf("epidemics must be between 0 and %d, got %d", game.MaxEpidemicCards, c.Epidemics))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if len(c.Agents) == 0 {
		errs = append(errs, errors.New("at least one agent is required"))
	}

	ids := map[int]bool{}
	for _, agent := range c.Agents {
		if ids[agent.ID] {
			errs = append(errs, fmt.Errorf("agent id %d used twice", agent.ID))
		}
		ids[agent.ID] = true
		switch agent.Kind {
		case metrics.RandomAgent, metrics.HeuristicAgent, metrics.SearchAgent:
		default:
			errs = append(errs, fmt.Errorf("agent %d: unknown kind %q", agent.ID, agent.Kind))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", game.ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
