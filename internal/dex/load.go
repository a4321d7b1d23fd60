package dex

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/five82/pokex/internal/pokeapi"
)

const (
	// DefaultLimit is the listing size requested when none is configured.
	DefaultLimit = 30
	// DefaultConcurrency bounds the in-flight detail requests.
	DefaultConcurrency = 8
)

// FetchError reports a failed initial load. Partial results are never
// returned alongside it.
type FetchError struct {
	Cause error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch records: %v", e.Cause)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// LoadOptions tune Load. Zero values use the defaults.
type LoadOptions struct {
	Limit       int
	Concurrency int
}

// Load fetches the listing, then every detail payload with bounded
// concurrency, and joins them into a Collection in listing order. Any failure
// aborts the whole load with a *FetchError.
func Load(ctx context.Context, fetcher pokeapi.Fetcher, opts LoadOptions) (Collection, error) {
	if fetcher == nil {
		return Collection{}, &FetchError{Cause: fmt.Errorf("no fetcher configured")}
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	refs, err := fetcher.ListPokemon(ctx, limit)
	if err != nil {
		return Collection{}, &FetchError{Cause: fmt.Errorf("list pokemon: %w", err)}
	}
	if len(refs) == 0 {
		return Collection{}, nil
	}

	records := make([]Record, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, ref := range refs {
		g.Go(func() error {
			payload, err := fetcher.FetchPokemon(gctx, ref.URL)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", ref.Name, err)
			}
			rec, err := Normalize(payload)
			if err != nil {
				return fmt.Errorf("normalize %s: %w", ref.Name, err)
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Collection{}, &FetchError{Cause: err}
	}
	return NewCollection(records), nil
}
