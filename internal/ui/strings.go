package ui

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/five82/pokex/internal/dex"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// titleCase capitalizes each hyphen- or space-separated word and joins them
// with spaces: "mr-mime" becomes "Mr Mime".
func titleCase(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	parts := strings.FieldsFunc(value, func(r rune) bool { return r == '-' || r == ' ' || r == '_' })
	for i, part := range parts {
		lower := strings.ToLower(part)
		r, size := utf8.DecodeRuneInString(lower)
		parts[i] = string(unicode.ToUpper(r)) + lower[size:]
	}
	return strings.Join(parts, " ")
}

// dexNumber formats an id as a zero-padded catalog number.
func dexNumber(id int) string {
	return fmt.Sprintf("#%03d", id)
}

func heightLabel(decimeters int) string {
	return dex.FormatTenths(decimeters) + " m"
}

func weightLabel(hectograms int) string {
	return dex.FormatTenths(hectograms) + " kg"
}

// statPercent renders a stat's share of dex.MaxStat with one decimal.
func statPercent(value int) string {
	return fmt.Sprintf("%.1f%%", dex.StatFill(value)*100)
}

// abilityLabel replaces every hyphen with a space.
func abilityLabel(name string) string {
	return strings.ReplaceAll(name, "-", " ")
}

// statLabel shortens the API's stat names for the bar chart.
func statLabel(name string) string {
	switch name {
	case "hp":
		return "HP"
	case "attack":
		return "Attack"
	case "defense":
		return "Defense"
	case "special-attack":
		return "Sp. Atk"
	case "special-defense":
		return "Sp. Def"
	case "speed":
		return "Speed"
	default:
		return titleCase(name)
	}
}

func statIcon(name string) string {
	switch name {
	case "hp":
		return "♥"
	case "attack", "special-attack":
		return "⚔"
	case "defense", "special-defense":
		return "◆"
	case "speed":
		return "»"
	default:
		return "★"
	}
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}
