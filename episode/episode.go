package episode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridnav/ctxlog"
	"github.com/katalvlaran/gridnav/distfield"
	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/heuristic"
	"github.com/katalvlaran/gridnav/lifelong"
)

// Episode is the navigational state of one episode.
type Episode struct {
	ID uuid.UUID

	cfg    Config
	grid   *gridgraph.Grid
	comps  *gridgraph.ComponentMap
	region gridgraph.Region
	log    *slog.Logger

	mu     sync.Mutex
	closed bool
	cache  *distfield.Cache
	masks  map[gridgraph.Point]*heuristic.Mask
	agents []*agent
}

// New builds an episode on g for agents at starts heading to goals.
// Every start, goal and shifted candidate must be a free cell of the margined
// region of radius cfg.ObsRadius; otherwise a *heuristic.ConfigurationError or
// ErrBlockedCell is returned. Sampled goals stay inside the region component
// of the previous goal.
func New(ctx context.Context, cfg Config, g *gridgraph.Grid, starts, goals []gridgraph.Point) (*Episode, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if len(starts) == 0 || len(starts) != len(goals) {
		return nil, fmt.Errorf("%w: %d starts, %d goals", ErrAgentCount, len(starts), len(goals))
	}
	if cfg.ObsRadius < 0 || cfg.Horizon < 0 || cfg.Margin < 0 {
		return nil, fmt.Errorf("%w: obs_radius %d, horizon %d, margin %d",
			ErrBadConfig, cfg.ObsRadius, cfg.Horizon, cfg.Margin)
	}
	region, err := g.Region(cfg.ObsRadius)
	if err != nil {
		return nil, err
	}
	for i := range starts {
		for _, p := range []gridgraph.Point{starts[i], goals[i]} {
			if err := checkCell(g, region, p, cfg.ObsRadius); err != nil {
				return nil, fmt.Errorf("agent %d: %w", i, err)
			}
		}
	}

	for _, c := range cfg.Candidates {
		if err := checkCell(g, region, c.Add(gridgraph.Point{Row: cfg.CandidateOffset, Col: cfg.CandidateOffset}), cfg.ObsRadius); err != nil {
			return nil, fmt.Errorf("candidate %v: %w", c, err)
		}
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("episode: id: %w", err)
	}
	e := &Episode{
		ID:     id,
		cfg:    cfg,
		grid:   g,
		comps:  g.ComponentsIn(region),
		region: region,
		log:    ctxlog.FromContext(ctx).With("episode", id.String()),
		cache:  distfield.NewCache(g, region),
		masks:  make(map[gridgraph.Point]*heuristic.Mask),
	}

	sequences, err := e.sequences(goals)
	if err != nil {
		return nil, err
	}

	e.agents = make([]*agent, len(starts))
	current := make([]gridgraph.Point, len(starts))
	for i := range starts {
		e.agents[i] = &agent{pos: starts[i], goals: sequences[i]}
		current[i] = sequences[i][0]
	}

	opts := []distfield.Option{distfield.WithCache(e.cache)}
	if cfg.Workers > 0 {
		opts = append(opts, distfield.WithWorkers(cfg.Workers))
	}
	fields, err := distfield.BuildAll(ctx, g, current, region, opts...)
	if err != nil {
		return nil, err
	}
	for i, f := range fields {
		if _, err := e.maskLocked(f); err != nil {
			return nil, err
		}
		e.agents[i].best = f.At(starts[i])
	}

	e.log.Info("episode created",
		"agents", len(starts),
		"height", g.Height, "width", g.Width,
		"components", e.comps.Len(),
		"obs_radius", cfg.ObsRadius,
		"lifelong", cfg.Lifelong,
	)
	return e, nil
}

// checkCell returns an error unless p is a free cell of region.
func checkCell(g *gridgraph.Grid, region gridgraph.Region, p gridgraph.Point, r int) error {
	if !region.Contains(p) {
		return &heuristic.ConfigurationError{Pos: p, Radius: r, Width: g.Width, Height: g.Height}
	}
	if !g.Traversable(p) {
		return fmt.Errorf("%w: %v", ErrBlockedCell, p)
	}
	return nil
}

// sequences pre-computes one goal sequence per agent. Without lifelong mode
// each sequence is just the agent's goal.
func (e *Episode) sequences(goals []gridgraph.Point) ([]lifelong.Sequence, error) {
	if !e.cfg.Lifelong {
		out := make([]lifelong.Sequence, len(goals))
		for i, g := range goals {
			out[i] = lifelong.Sequence{g}
		}
		return out, nil
	}

	var sampler lifelong.Sampler = lifelong.ComponentSampler{Components: e.comps}
	if len(e.cfg.Candidates) > 0 {
		sampler = lifelong.CandidateSampler{Targets: e.cfg.Candidates, Offset: e.cfg.CandidateOffset}
	}
	q := lifelong.Sequencer{
		Sampler:  sampler,
		Horizon:  e.cfg.Horizon,
		Margin:   e.cfg.Margin,
		MaxGoals: e.cfg.MaxGoals,
	}

	root := lifelong.NewSource(e.cfg.Seed)
	sources := make([]*lifelong.Source, len(goals))
	for i := range sources {
		sources[i] = root.Derive(uint64(i))
	}
	out, err := q.GenerateAll(goals, sources)
	switch {
	case err == nil:
	case errors.Is(err, lifelong.ErrGoalLimit):
		// partial sequences remain usable
		e.log.Warn("goal sequence truncated", "error", err)
	default:
		return nil, err
	}
	for i, s := range out {
		e.log.Debug("goal sequence", "agent", i, "goals", len(s), "length", s.Length())
	}
	return out, nil
}

// maskLocked returns the mask of f's target, building it on first use.
// Callers hold e.mu or own e exclusively.
func (e *Episode) maskLocked(f *distfield.Field) (*heuristic.Mask, error) {
	if m, ok := e.masks[f.Target]; ok {
		return m, nil
	}
	m, err := heuristic.BuildMask(f, e.region)
	if err != nil {
		return nil, err
	}
	e.masks[f.Target] = m
	return m, nil
}

// agentLocked validates the state and index.
func (e *Episode) agentLocked(i int) (*agent, error) {
	if e.closed {
		return nil, ErrClosed
	}
	if i < 0 || i >= len(e.agents) {
		return nil, fmt.Errorf("%w: %d of %d", ErrAgentIndex, i, len(e.agents))
	}
	return e.agents[i], nil
}

// viewLocked returns the field and mask of a's current goal.
func (e *Episode) viewLocked(a *agent) (*distfield.Field, *heuristic.Mask, error) {
	f, err := e.cache.Get(a.goal())
	if err != nil {
		return nil, nil, err
	}
	m, err := e.maskLocked(f)
	if err != nil {
		return nil, nil, err
	}
	return f, m, nil
}

// Agents returns the number of agents.
func (e *Episode) Agents() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.agents)
}

// Region returns the margined region agents must stay in.
func (e *Episode) Region() gridgraph.Region {
	return e.region
}

// Grid returns the episode's grid.
func (e *Episode) Grid() *gridgraph.Grid {
	return e.grid
}

// Agent returns a snapshot of agent i.
func (e *Episode) Agent(i int) (AgentState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, err := e.agentLocked(i)
	if err != nil {
		return AgentState{}, err
	}
	return AgentState{Pos: a.pos, Goal: a.goal(), GoalIndex: a.cursor, Reached: a.reached, Best: a.best}, nil
}

// Field returns the distance field of agent i's current goal.
func (e *Episode) Field(i int) (*distfield.Field, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, err := e.agentLocked(i)
	if err != nil {
		return nil, err
	}
	f, _, err := e.viewLocked(a)
	return f, err
}

// Mask returns the direction mask of agent i's current goal.
func (e *Episode) Mask(i int) (*heuristic.Mask, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, err := e.agentLocked(i)
	if err != nil {
		return nil, err
	}
	_, m, err := e.viewLocked(a)
	return m, err
}

// Observe returns the 4×(2r+1)×(2r+1) mask window around agent i.
func (e *Episode) Observe(i int) (*heuristic.Window, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, err := e.agentLocked(i)
	if err != nil {
		return nil, err
	}
	_, m, err := e.viewLocked(a)
	if err != nil {
		return nil, err
	}
	return heuristic.Extract(m, a.pos, e.cfg.ObsRadius)
}

// CostToGo returns the normalised cost-to-go window around agent i.
func (e *Episode) CostToGo(i int) ([]float32, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, err := e.agentLocked(i)
	if err != nil {
		return nil, err
	}
	f, _, err := e.viewLocked(a)
	if err != nil {
		return nil, err
	}
	return heuristic.CostToGo(f, a.pos, e.cfg.ObsRadius)
}

// Goals returns a copy of agent i's full goal sequence; AgentState.GoalIndex
// marks the goal in force.
func (e *Episode) Goals(i int) (lifelong.Sequence, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, err := e.agentLocked(i)
	if err != nil {
		return nil, err
	}
	out := make(lifelong.Sequence, len(a.goals))
	copy(out, a.goals)
	return out, nil
}

// Move records that agent i now stands on p, which must be a free cell of
// the margined region at most one orthogonal step away. Arriving on the goal
// advances the cursor in lifelong mode; an exhausted sequence keeps its last
// goal. Staying on a reached goal does not advance it again.
func (e *Episode) Move(i int, p gridgraph.Point) (Step, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	a, err := e.agentLocked(i)
	if err != nil {
		return Step{}, err
	}
	if gridgraph.Manhattan(a.pos, p) > 1 {
		return Step{}, fmt.Errorf("agent %d: %w: %v -> %v", i, ErrNotAdjacent, a.pos, p)
	}
	if err := checkCell(e.grid, e.region, p, e.cfg.ObsRadius); err != nil {
		return Step{}, fmt.Errorf("agent %d: %w", i, err)
	}

	if p != a.goal() {
		f, _, err := e.viewLocked(a)
		if err != nil {
			return Step{}, err
		}
		a.pos = p
		step := Step{Goal: a.goal()}
		if d := f.At(p); d < a.best {
			a.best = d
			step.Progressed = true
		}
		return step, nil
	}

	if a.pos == p {
		return Step{Goal: a.goal()}, nil
	}
	next, best := a.cursor, int32(0)
	if e.cfg.Lifelong && a.cursor+1 < len(a.goals) {
		next++
		f, err := e.cache.Get(a.goals[next])
		if err != nil {
			return Step{}, err
		}
		if _, err := e.maskLocked(f); err != nil {
			return Step{}, err
		}
		best = f.At(p)
	}

	// the next goal resolved, so the arrival can be committed
	a.pos = p
	a.reached++
	a.best = best
	switch {
	case next != a.cursor:
		a.cursor = next
		e.log.Debug("goal advanced", "agent", i, "goal", a.goal().String(), "index", a.cursor)
	case e.cfg.Lifelong:
		e.log.Warn("goal sequence exhausted", "agent", i, "goals", len(a.goals))
	}
	return Step{Reached: true, Goal: a.goal()}, nil
}

// Close releases the episode's fields, masks and agents.
func (e *Episode) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}
	hits, misses := e.cache.Stats()
	e.log.Info("episode closed", "field_hits", hits, "field_misses", misses, "masks", len(e.masks))
	e.closed = true
	e.cache.Reset()
	e.masks = nil
	e.agents = nil
	return nil
}
