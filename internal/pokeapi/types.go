package pokeapi

// officialArtworkKey names the high-resolution sprite set under sprites.other.
const officialArtworkKey = "official-artwork"

// ListResponse mirrors the paginated /pokemon listing.
type ListResponse struct {
	Count    int             `json:"count"`
	Next     string          `json:"next"`
	Previous string          `json:"previous"`
	Results  []NamedResource `json:"results"`
}

// NamedResource is a name plus the URL of its detail payload.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Pokemon mirrors the subset of /pokemon/{id} that pokex reads.
type Pokemon struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Height    int           `json:"height"`
	Weight    int           `json:"weight"`
	Sprites   Sprites       `json:"sprites"`
	Types     []TypeSlot    `json:"types"`
	Stats     []StatEntry   `json:"stats"`
	Abilities []AbilitySlot `json:"abilities"`
}

// Sprites holds the default sprite plus the alternate sprite sets.
type Sprites struct {
	FrontDefault string               `json:"front_default"`
	Other        map[string]SpriteSet `json:"other"`
}

// SpriteSet is one entry of sprites.other.
type SpriteSet struct {
	FrontDefault string `json:"front_default"`
}

// ArtworkURL prefers the official artwork and falls back to the default sprite.
func (s Sprites) ArtworkURL() string {
	if art, ok := s.Other[officialArtworkKey]; ok && art.FrontDefault != "" {
		return art.FrontDefault
	}
	return s.FrontDefault
}

// TypeSlot is one element of types[].
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// StatEntry is one element of stats[].
type StatEntry struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// AbilitySlot is one element of abilities[].
type AbilitySlot struct {
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
	Ability  NamedResource `json:"ability"`
}
