package searcher

import (
	"math"
	"sync"
	"time"

	"pandemic/experiments/metrics"
	"pandemic/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MaxCutoff bounds a playout when no cutoff is configured.
const MaxCutoff = 400

type Option func(mcts *MCTS)

// MCTS ranks the current legal moves with UCB1 over random playouts. Every
// playout runs on its own snapshot, so many goroutines can share one root.
type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	evaluate   Evaluate
	metrics    metrics.Collector
}

func WithDuration(duration time.Duration) Option {
	return func(u *MCTS) {
		if duration > 0 {
			u.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(u *MCTS) {
		if episodes > 0 {
			u.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(u *MCTS) {
		if depth > 0 {
			u.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines: max(goroutines, 1),
		cutoff:     MaxCutoff,
		evaluate:   EvaluateProgress,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// arm holds the playout statistics of one candidate move.
type arm struct {
	move    game.Move
	rewards float64
	visits  int
}

type root struct {
	mu     sync.Mutex
	arms   []*arm
	visits int
}

func newRoot(moves []game.Move) *root {
	r := &root{arms: make([]*arm, len(moves))}
	for i, move := range moves {
		r.arms[i] = &arm{move: move}
	}
	return r
}

// pick selects the arm to sample next and applies a virtual loss to it so
// concurrent playouts spread across moves.
func (r *root) pick() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	c2LnN := C_SQUARED * math.Log(float64(max(r.visits, 1)))
	best, bestScore := 0, math.Inf(-1)
	for i, a := range r.arms {
		score := ucb1(a.rewards, a.visits, c2LnN)
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	r.arms[best].visits++
	r.arms[best].rewards += LOSS
	r.visits++
	return best
}

// backup replaces the virtual loss of an arm with the playout reward.
func (r *root) backup(i int, reward float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.arms[i].rewards += reward - LOSS
}

// Policy returns the share of playouts each move received, in legal move order.
func (r *root) Policy() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	policy := make([]float64, len(r.arms))
	for i, a := range r.arms {
		if r.visits > 0 {
			policy[i] = float64(a.visits) / float64(r.visits)
		}
	}
	return policy
}

// Simulate runs the configured playouts from g and returns the visit share of
// every move in moves. g itself is never modified.
func (m *MCTS) Simulate(g *game.Game, moves []game.Move) ([]float64, metrics.SearchMetric) {
	r := newRoot(moves)

	// Run simulations to collect statistics
	m.metrics.Start(m.goroutines, m.cutoff)
	if m.episodes > 0 {
		m.iterate(g, r)
	} else if m.duration > 0 {
		m.countdown(g, r)
	} else {
		panic("Must specify search episodes or duration")
	}
	metric := m.metrics.Complete()

	return r.Policy(), metric
}

func (m *MCTS) iterate(g *game.Game, r *root) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range task {
				m.simulate(g, r)
				m.metrics.AddEpisode()
			}
		}()
	}

	wg.Wait()
}

func (m *MCTS) countdown(g *game.Game, r *root) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					m.simulate(g, r)
					m.metrics.AddEpisode()
				}
			}
		}()
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS) simulate(g *game.Game, r *root) {
	i := r.pick()
	state := g.Snapshot(game.WithSeed(rand.Uint64()), game.WithLogger(zerolog.Nop()))
	if err := state.Play(r.arms[i].move); err != nil {
		log.Warn().Msgf("candidate move %v rejected: %v", r.arms[i].move, err)
		r.backup(i, LOSS)
		return
	}
	r.backup(i, rollout(state, m.cutoff, m.evaluate, m.metrics))
}

func rollout(state *game.Game, cutoff int, evaluate Evaluate, metrics metrics.Collector) float64 {
	depth := 0
	moves := state.LegalMoves()
	// Rollout till game over or for cutoff number of moves
	for len(moves) > 0 && (depth < cutoff) {
		move := moves[rand.Intn(len(moves))] // Random rollout policy
		if err := state.Play(move); err != nil {
			panic(err)
		}
		moves = state.LegalMoves()
		depth++
	}

	if state.IsOver() {
		metrics.AddFullPlayout()
	}
	return evaluate(state)
}
