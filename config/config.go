package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/gridnav/episode"
	"github.com/katalvlaran/gridnav/gridgraph"
)

// ErrInvalidConfig is wrapped by every parse and validation error.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Sampler kinds accepted as the label of a sampler block.
const (
	SamplerComponent  = "component"
	SamplerCandidates = "candidates"
)

// Config is a validated episode description.
type Config struct {
	// Grid is the map, already padded when Pad is set.
	Grid *gridgraph.Grid
	Pad  bool

	// Episode carries the numeric settings and, for the candidates sampler,
	// the targets in map frame with their padding offset.
	Episode episode.Config

	// Starts and Goals are in Grid's frame.
	Starts []gridgraph.Point
	Goals  []gridgraph.Point

	Log Log
}

// Log selects the logger; see ctxlog.New.
type Log struct {
	Level  string
	Format string
}

type fileSchema struct {
	Map       string          `hcl:"map"`
	Pad       *bool           `hcl:"pad,optional"`
	ObsRadius *int            `hcl:"obs_radius,optional"`
	Horizon   *int            `hcl:"horizon,optional"`
	Margin    *int            `hcl:"margin,optional"`
	Seed      *uint64         `hcl:"seed,optional"`
	Workers   *int            `hcl:"workers,optional"`
	MaxGoals  *int            `hcl:"max_goals,optional"`
	Lifelong  *bool           `hcl:"lifelong,optional"`
	Agents    []*agentBlock   `hcl:"agent,block"`
	Samplers  []*samplerBlock `hcl:"sampler,block"`
	Log       *logBlock       `hcl:"log,block"`
}

type agentBlock struct {
	Start []int `hcl:"start"`
	Goal  []int `hcl:"goal"`
}

type samplerBlock struct {
	Kind    string    `hcl:"kind,label"`
	Targets cty.Value `hcl:"targets,optional"`
}

type logBlock struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(src, path)
}

// Parse parses HCL source; filename only labels diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, diags.Error())
	}
	var raw fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, diags.Error())
	}
	return raw.build()
}

func (s *fileSchema) build() (*Config, error) {
	ep := episode.DefaultConfig()
	pad := true
	setBool(&pad, s.Pad)
	setInt(&ep.ObsRadius, s.ObsRadius)
	setInt(&ep.Horizon, s.Horizon)
	setInt(&ep.Margin, s.Margin)
	setInt(&ep.Workers, s.Workers)
	setInt(&ep.MaxGoals, s.MaxGoals)
	setBool(&ep.Lifelong, s.Lifelong)
	if s.Seed != nil {
		ep.Seed = *s.Seed
	}

	for name, v := range map[string]int{
		"obs_radius": ep.ObsRadius, "horizon": ep.Horizon, "margin": ep.Margin,
		"workers": ep.Workers, "max_goals": ep.MaxGoals,
	} {
		if v < 0 {
			return nil, fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalidConfig, name, v)
		}
	}

	raw, err := gridgraph.Parse(s.Map)
	if err != nil {
		return nil, fmt.Errorf("%w: map: %w", ErrInvalidConfig, err)
	}
	shift := 0
	g := raw
	if pad {
		shift = ep.ObsRadius
		if g, err = raw.Pad(shift); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	cfg := &Config{Grid: g, Pad: pad, Log: Log{Level: "info", Format: "text"}}
	if len(s.Agents) == 0 {
		return nil, fmt.Errorf("%w: at least one agent block is required", ErrInvalidConfig)
	}
	for i, a := range s.Agents {
		start, err := point(a.Start, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: agent %d start: %w", ErrInvalidConfig, i, err)
		}
		goal, err := point(a.Goal, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: agent %d goal: %w", ErrInvalidConfig, i, err)
		}
		off := gridgraph.Point{Row: shift, Col: shift}
		cfg.Starts = append(cfg.Starts, start.Add(off))
		cfg.Goals = append(cfg.Goals, goal.Add(off))
	}

	if len(s.Samplers) > 1 {
		return nil, fmt.Errorf("%w: at most one sampler block, got %d", ErrInvalidConfig, len(s.Samplers))
	}
	if len(s.Samplers) == 1 {
		sb := s.Samplers[0]
		switch sb.Kind {
		case SamplerComponent:
		case SamplerCandidates:
			targets, err := targetList(sb.Targets, raw)
			if err != nil {
				return nil, fmt.Errorf("%w: sampler %q: %w", ErrInvalidConfig, sb.Kind, err)
			}
			ep.Candidates = targets
			ep.CandidateOffset = shift
		default:
			return nil, fmt.Errorf("%w: unknown sampler %q", ErrInvalidConfig, sb.Kind)
		}
	}

	if s.Log != nil {
		if s.Log.Level != "" {
			cfg.Log.Level = strings.ToLower(s.Log.Level)
		}
		if s.Log.Format != "" {
			cfg.Log.Format = strings.ToLower(s.Log.Format)
		}
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("%w: log level %q", ErrInvalidConfig, cfg.Log.Level)
	}
	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return nil, fmt.Errorf("%w: log format %q", ErrInvalidConfig, cfg.Log.Format)
	}

	cfg.Episode = ep
	return cfg, nil
}

// point converts a [row, col] pair and checks it is a free cell of the
// unpadded map.
func point(pair []int, g *gridgraph.Grid) (gridgraph.Point, error) {
	if len(pair) != 2 {
		return gridgraph.Point{}, fmt.Errorf("want [row, col], got %d values", len(pair))
	}
	p := gridgraph.Point{Row: pair[0], Col: pair[1]}
	if !g.InBounds(p) {
		return gridgraph.Point{}, fmt.Errorf("%v outside %dx%d map", p, g.Height, g.Width)
	}
	if !g.Traversable(p) {
		return gridgraph.Point{}, fmt.Errorf("%v is an obstacle", p)
	}
	return p, nil
}

// targetList walks a list or tuple of [row, col] pairs.
func targetList(v cty.Value, g *gridgraph.Grid) ([]gridgraph.Point, error) {
	if v.IsNull() {
		return nil, errors.New("targets is required")
	}
	if !v.IsKnown() || !v.CanIterateElements() {
		return nil, fmt.Errorf("targets must be a list, got %s", v.Type().FriendlyName())
	}
	var out []gridgraph.Point
	for it := v.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		elem, err := convert.Convert(elem, cty.List(cty.Number))
		if err != nil {
			return nil, fmt.Errorf("target %d: %w", len(out), err)
		}
		var pair []int
		if err := gocty.FromCtyValue(elem, &pair); err != nil {
			return nil, fmt.Errorf("target %d: %w", len(out), err)
		}
		p, err := point(pair, g)
		if err != nil {
			return nil, fmt.Errorf("target %d: %w", len(out), err)
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, errors.New("targets is empty")
	}
	return out, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
