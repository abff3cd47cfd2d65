// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines a search agent uses per move.
const GO_ROUTINES = 4

// EPISODES defines the number of playouts per move when a search agent has no budget configured.
const EPISODES = 200

// WITH_CUTOFF defines the playout depth, in moves, of a search agent.
const WITH_CUTOFF = 150

// MAX_MOVES stops a simulated game that makes no progress.
const MAX_MOVES = 5000

// WORKERS defines how many games an experiment plays at once.
const WORKERS = 8

// NUM_PLAYERS and NUM_EPIDEMICS are the experiment defaults.
const NUM_PLAYERS = 4
const NUM_EPIDEMICS = 5

// OUTPUT_DIR is where experiment records are written.
const OUTPUT_DIR = "results"
