// Package dex holds creature records and the operations over them.
package dex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/five82/pokex/internal/pokeapi"
)

// MaxStat is the ceiling of a base stat; bar fills are relative to it.
const MaxStat = 255

// Stat is a named base stat.
type Stat struct {
	Name  string
	Value int
}

// Record is one normalized creature. Records are treated as immutable once
// loaded; slice accessors on Collection hand out copies.
type Record struct {
	ID        int
	Name      string
	Image     string
	Types     []string
	Height    int // decimeters
	Weight    int // hectograms
	Stats     []Stat
	Abilities []string // hyphenated, as delivered by the API
}

// HeightMeters converts the decimeter height to meters.
func (r Record) HeightMeters() float64 {
	return float64(r.Height) / 10
}

// WeightKilograms converts the hectogram weight to kilograms.
func (r Record) WeightKilograms() float64 {
	return float64(r.Weight) / 10
}

// StatFill returns value/MaxStat clamped to [0,1].
func StatFill(value int) float64 {
	switch {
	case value <= 0:
		return 0
	case value >= MaxStat:
		return 1
	}
	return float64(value) / MaxStat
}

// Normalize maps a detail payload into a Record, rejecting payloads that
// cannot produce a valid one.
func Normalize(p *pokeapi.Pokemon) (Record, error) {
	if p == nil {
		return Record{}, fmt.Errorf("empty payload")
	}
	if p.ID <= 0 {
		return Record{}, fmt.Errorf("invalid id %d", p.ID)
	}
	name := strings.ToLower(strings.TrimSpace(p.Name))
	if name == "" {
		return Record{}, fmt.Errorf("pokemon %d has no name", p.ID)
	}

	rec := Record{
		ID:     p.ID,
		Name:   name,
		Image:  p.Sprites.ArtworkURL(),
		Height: p.Height,
		Weight: p.Weight,
	}
	for _, slot := range p.Types {
		if t := strings.TrimSpace(slot.Type.Name); t != "" {
			rec.Types = append(rec.Types, t)
		}
	}
	if len(rec.Types) == 0 {
		return Record{}, fmt.Errorf("pokemon %d (%s) has no types", p.ID, name)
	}
	for _, entry := range p.Stats {
		if entry.BaseStat < 0 || entry.BaseStat > MaxStat {
			return Record{}, fmt.Errorf("pokemon %d (%s) stat %s out of range: %d", p.ID, name, entry.Stat.Name, entry.BaseStat)
		}
		rec.Stats = append(rec.Stats, Stat{Name: entry.Stat.Name, Value: entry.BaseStat})
	}
	for _, slot := range p.Abilities {
		if a := strings.TrimSpace(slot.Ability.Name); a != "" {
			rec.Abilities = append(rec.Abilities, a)
		}
	}
	return rec, nil
}

func (r Record) clone() Record {
	dup := r
	dup.Types = append([]string(nil), r.Types...)
	dup.Stats = append([]Stat(nil), r.Stats...)
	dup.Abilities = append([]string(nil), r.Abilities...)
	return dup
}

// FormatTenths prints v/10 in its shortest form: 7 is "0.7", 69 is "6.9"
// and 10 is "1".
func FormatTenths(v int) string {
	return strconv.FormatFloat(float64(v)/10, 'f', -1, 64)
}
