// Package pokeapi provides an HTTP client for the public PokeAPI v2.
//
// # Overview
//
// pokex only reads two endpoints: the paginated /pokemon listing and the
// per-pokemon detail document whose URL the listing hands out. The types in
// types.go mirror just the fields pokex consumes; everything else in the
// payloads is ignored by the JSON decoder.
//
// # Client Usage
//
//	client, err := pokeapi.NewClient(pokeapi.DefaultBaseURL, 10*time.Second)
//	if err != nil {
//		log.Fatalf("init client: %v", err)
//	}
//
//	refs, err := client.ListPokemon(ctx, 30)
//	if err != nil {
//		return err
//	}
//	for _, ref := range refs {
//		p, err := client.FetchPokemon(ctx, ref.URL)
//		...
//	}
//
// # Error Handling
//
// Errors are wrapped with a short verb phrase so callers can tell transport
// failures ("execute request"), HTTP failures ("api <path> returned status N")
// and payload failures ("decode response") apart. The client never retries.
//
// # Testing
//
// Consumers depend on the Fetcher interface so tests can substitute an
// in-memory fake instead of standing up an httptest server.
package pokeapi
