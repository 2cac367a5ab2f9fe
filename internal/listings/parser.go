// Package listings turns loosely structured advert rows from the listing
// store into comparable candidates. Extraction is best-effort: rows that do
// not yield a price and a surface are skipped, never fatal.
package listings

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/models"
)

var (
	digitsRe  = regexp.MustCompile(`[^0-9]`)
	surfaceRe = regexp.MustCompile(`(\d+)\s*m(²|2)`)
	roomsRe   = regexp.MustCompile(`(\d+)\s*(hab|dorm)`)
	floorRe   = regexp.MustCompile(`planta\s+(\d+)|(\d+)ª\s+planta`)
)

// ParseListing extracts the structured attributes of a raw advert row. The
// second return is false when no sane price or surface could be recovered.
// Distrito is left empty; the caller fills it from the zone directory.
func ParseListing(raw models.RawListing) (models.ComparableProperty, bool) {
	text := strings.ToLower(strings.Join([]string{
		raw.Titulo,
		raw.Descripcion,
		raw.Caracteristica1,
		raw.Caracteristica2,
		raw.Caracteristica3,
	}, " "))

	price := parsePrice(raw.PrecioTexto)
	surface := parseSurface(text)
	if price <= 0 || surface <= 0 {
		return models.ComparableProperty{}, false
	}

	c := models.ComparableProperty{
		Fuente:       raw.Fuente,
		URL:          raw.URL,
		Zona:         raw.Zona,
		Superficie:   surface,
		Habitaciones: parseRooms(text),
		Precio:       price,
		PrecioM2:     math.Round(price / surface),
		Ascensor:     strings.Contains(text, "ascensor"),
		Exterior:     strings.Contains(text, "exterior"),
		Estado:       parseConservation(text),
		Planta:       parseFloor(text),
	}
	return c, true
}

// ParseAll extracts every usable row, silently dropping the rest.
func ParseAll(rows []models.RawListing) []models.ComparableProperty {
	out := make([]models.ComparableProperty, 0, len(rows))
	for _, row := range rows {
		if c, ok := ParseListing(row); ok {
			out = append(out, c)
		}
	}
	return out
}

// parsePrice strips every non-digit from the price text. "235.000 €"
// becomes 235000.
func parsePrice(text string) float64 {
	digits := digitsRe.ReplaceAllString(text, "")
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseSurface(text string) float64 {
	m := surfaceRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return n
}

func parseRooms(text string) int {
	m := roomsRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

func parseConservation(text string) models.Conservation {
	switch {
	case strings.Contains(text, "obra nueva"):
		return models.ObraNueva
	case strings.Contains(text, "a reformar") || strings.Contains(text, "para reformar"):
		return models.AReformar
	default:
		return models.BuenEstado
	}
}

func parseFloor(text string) string {
	switch {
	case strings.Contains(text, "ático") || strings.Contains(text, "atico"):
		return "atico"
	case strings.Contains(text, "planta baja") || strings.Contains(text, "bajo "):
		return "bajo"
	}
	if m := floorRe.FindStringSubmatch(text); m != nil {
		if m[1] != "" {
			return m[1]
		}
		return m[2]
	}
	return ""
}
