// Package comparables synthesizes and validates comparable listings for a
// target property. Generation is randomized within the similarity bounds;
// validation is the deterministic gate both pipelines share.
package comparables

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"

	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/models"
)

// Sources are the listing portals comparables are attributed to.
var Sources = []string{"idealista.com", "fotocasa.es", "pisos.com"}

var urlTemplates = map[string]string{
	"idealista.com": "https://www.idealista.com/inmueble/%s/",
	"fotocasa.es":   "https://www.fotocasa.es/es/comprar/vivienda/%s/d",
	"pisos.com":     "https://www.pisos.com/comprar/piso-%s/",
}

// Generator produces synthetic comparables around a target property. The
// random source is injected so tests can seed it; production uses real
// entropy.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator backed by the given random source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate builds one comparable for the target. Surface stays within ±10%
// of the target, rooms and elevator are copied exactly, and the price per
// m2 is the base price adjusted for state, floor and orientation plus a
// bounded dispersion factor. Returns nil only when postalInfo is missing.
func (g *Generator) Generate(target models.PropertyInfo, basePriceM2 float64, source string, index int, postalInfo *models.PostalCodeInfo) *models.ComparableProperty {
	if postalInfo == nil {
		return nil
	}

	surface := math.Round(target.Superficie * (0.9 + g.rng.Float64()*0.2))

	exterior := target.Exterior
	if g.rng.Float64() < 0.2 {
		exterior = !exterior
	}

	estado := target.Estado
	if g.rng.Float64() < 0.3 {
		estado = models.Conservations[g.rng.Intn(len(models.Conservations))]
	}

	planta := target.Planta
	if g.rng.Float64() < 0.4 {
		planta = g.randomFloor(target.Ascensor)
	}

	mult := 1.0
	switch estado {
	case models.ObraNueva:
		mult *= 1.08
	case models.AReformar:
		mult *= 0.88
	}
	if planta == "bajo" && !exterior {
		mult *= 0.92
	}
	if planta == "atico" && target.Ascensor {
		mult *= 1.05
	}
	if exterior == target.Exterior {
		mult *= 1.03
	} else {
		mult *= 0.97
	}
	mult *= 0.92 + g.rng.Float64()*0.16

	priceM2 := math.Round(basePriceM2 * mult)
	price := math.Round(surface * priceM2)

	listingID := fmt.Sprintf("%s-%d-%d", postalInfo.PostalCode, index, 100000+g.rng.Intn(900000))

	return &models.ComparableProperty{
		Fuente:       source,
		URL:          fmt.Sprintf(urlTemplates[source], listingID),
		PostalCode:   postalInfo.PostalCode,
		Distrito:     target.Distrito,
		Superficie:   surface,
		Habitaciones: target.Habitaciones,
		Precio:       price,
		PrecioM2:     priceM2,
		Ascensor:     target.Ascensor,
		Exterior:     exterior,
		Estado:       estado,
		Planta:       planta,
	}
}

// GenerateSet builds n candidate comparables, cycling through the known
// sources. Candidates still have to pass the validator.
func (g *Generator) GenerateSet(target models.PropertyInfo, basePriceM2 float64, postalInfo *models.PostalCodeInfo, n int) []models.ComparableProperty {
	if postalInfo == nil {
		return nil
	}
	out := make([]models.ComparableProperty, 0, n)
	for i := 0; i < n; i++ {
		source := Sources[i%len(Sources)]
		if c := g.Generate(target, basePriceM2, source, i, postalInfo); c != nil {
			out = append(out, *c)
		}
	}
	return out
}

// randomFloor picks a floor indicator. Without an elevator only ground
// through 4th are plausible; with one the full range including atico is.
func (g *Generator) randomFloor(elevator bool) string {
	if !elevator {
		floors := []string{"bajo", "1", "2", "3", "4"}
		return floors[g.rng.Intn(len(floors))]
	}
	floors := []string{"bajo", "1", "2", "3", "4", "5", "6", "7", "atico"}
	return floors[g.rng.Intn(len(floors))]
}

// FloorNumber parses a floor indicator into a comparable ordinal: ground is
// 0, atico sorts above any numbered floor.
func FloorNumber(planta string) int {
	switch planta {
	case "bajo":
		return 0
	case "atico":
		return 99
	}
	if n, err := strconv.Atoi(planta); err == nil {
		return n
	}
	return 0
}
