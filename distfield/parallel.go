package distfield

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// BuildAll builds one field per entry of targets, returned in input order.
// Repeated targets share one field. Distinct targets are built concurrently on
// at most Options.Workers goroutines; the output is bit-identical to calling
// Build sequentially. The first error cancels the remaining work.
func BuildAll(ctx context.Context, g *gridgraph.Grid, targets []gridgraph.Point, region gridgraph.Region, opts ...Option) ([]*Field, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// distinct targets in first-seen order
	slot := make(map[gridgraph.Point]int, len(targets))
	var distinct []gridgraph.Point
	for _, t := range targets {
		if _, ok := slot[t]; !ok {
			slot[t] = len(distinct)
			distinct = append(distinct, t)
		}
	}

	built := make([]*Field, len(distinct))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for i, t := range distinct {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var (
				f   *Field
				err error
			)
			if o.Cache != nil {
				f, err = o.Cache.Get(t)
			} else {
				f, err = Build(g, t, region)
			}
			if err != nil {
				return err
			}
			built[i] = f
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make([]*Field, len(targets))
	for i, t := range targets {
		out[i] = built[slot[t]]
	}
	return out, nil
}
