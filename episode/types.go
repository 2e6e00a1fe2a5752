package episode

import (
	"errors"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/lifelong"
)

// Sentinel errors for episode operations.
var (
	// ErrClosed is returned by every call after Close.
	ErrClosed = errors.New("episode: closed")

	// ErrAgentIndex indicates an agent index out of range.
	ErrAgentIndex = errors.New("episode: agent index out of range")

	// ErrAgentCount indicates no agents or mismatched starts and goals.
	ErrAgentCount = errors.New("episode: starts and goals must be non-empty and of equal length")

	// ErrBlockedCell indicates a start, goal or move onto a blocked cell.
	ErrBlockedCell = errors.New("episode: cell is blocked")

	// ErrNotAdjacent indicates a move of more than one orthogonal step.
	ErrNotAdjacent = errors.New("episode: move is not a single orthogonal step")

	// ErrNilGrid indicates a nil grid.
	ErrNilGrid = errors.New("episode: grid is nil")

	// ErrBadConfig indicates invalid numeric settings.
	ErrBadConfig = errors.New("episode: invalid configuration")
)

// Config holds the per-episode settings.
type Config struct {
	// ObsRadius is the observation radius r; windows are (2r+1)².
	ObsRadius int
	// Horizon is the episode length in steps.
	Horizon int
	// Margin pads Horizon when sequencing goals.
	Margin int
	// Seed roots every agent's random stream.
	Seed uint64
	// Workers bounds parallel field construction; <= 0 means one per CPU.
	Workers int
	// MaxGoals bounds each goal sequence; <= 0 means lifelong.DefaultMaxGoals.
	MaxGoals int
	// Lifelong enables goal sequencing. Without it each agent keeps its goal.
	Lifelong bool
	// Candidates, when non-empty, replaces component sampling by sampling
	// among these cells, each shifted by CandidateOffset.
	Candidates      []gridgraph.Point
	CandidateOffset int
}

// DefaultConfig returns a lifelong configuration with radius 5, horizon 256
// and the default margin.
func DefaultConfig() Config {
	return Config{
		ObsRadius: 5,
		Horizon:   256,
		Margin:    lifelong.DefaultMargin,
		Lifelong:  true,
	}
}

// Step is the outcome of one Move.
type Step struct {
	// Reached is true when the move arrived on the current goal.
	Reached bool
	// Progressed is true when the move set a new best distance to the goal.
	Progressed bool
	// Goal is the goal in force after the move.
	Goal gridgraph.Point
}

// AgentState is a read-only view of one agent.
type AgentState struct {
	Pos       gridgraph.Point
	Goal      gridgraph.Point
	GoalIndex int // position of Goal in the agent's sequence
	Reached   int // goals reached so far
	Best      int32
}

type agent struct {
	pos     gridgraph.Point
	goals   lifelong.Sequence
	cursor  int
	reached int
	best    int32 // best distance to goals[cursor] so far
}

func (a *agent) goal() gridgraph.Point {
	return a.goals[a.cursor]
}
