package app

import (
	"context"
	"log"
	"time"

	"github.com/five82/pokex/internal/dex"
	"github.com/five82/pokex/internal/pokeapi"
	"github.com/five82/pokex/internal/ui"
)

// newLoader adapts dex.Load to ui.Loader. Failures are logged here, at the
// fetch boundary; the UI only sees the error value.
func newLoader(fetcher pokeapi.Fetcher, opts dex.LoadOptions) ui.Loader {
	return func(ctx context.Context) (dex.Collection, error) {
		start := time.Now()
		records, err := dex.Load(ctx, fetcher, opts)
		if err != nil {
			log.Printf("load pokemon failed: %v", err)
			return dex.Collection{}, err
		}
		log.Printf("loaded %d pokemon in %s", records.Len(), time.Since(start).Round(time.Millisecond))
		return records, nil
	}
}
