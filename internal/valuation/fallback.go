package valuation

import (
	"context"

	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/models"
)

// Fixed per-m2 multipliers for the degraded estimate. These values are a
// pinned contract: the fallback ignores comparable statistics on purpose so
// that it can never fail, and tests assert the exact multiples.
const (
	fallbackMinM2       = 1800
	fallbackMaxM2       = 2700
	fallbackSuggestedM2 = 2300
)

// FallbackStrategy is the deterministic last resort used when the delegated
// strategy fails. It is not a statistically grounded estimate and does not
// pretend to be: the range comes from fixed per-m2 multiples of the
// target's surface and the confidence is always "media".
type FallbackStrategy struct{}

// NewFallbackStrategy returns the deterministic fallback.
func NewFallbackStrategy() *FallbackStrategy {
	return &FallbackStrategy{}
}

// Valuate never fails.
func (s *FallbackStrategy) Valuate(_ context.Context, target models.PropertyInfo, comparables []models.ComparableProperty) (*models.ValuationResult, error) {
	val := models.Valoracion{
		PrecioMin:        target.Superficie * fallbackMinM2,
		PrecioMax:        target.Superficie * fallbackMaxM2,
		PrecioSugerido:   target.Superficie * fallbackSuggestedM2,
		PrecioM2Sugerido: fallbackSuggestedM2,
		Confianza:        models.ConfianzaMedia,
	}
	return models.NewValuedResult(target, val, ComputeStats(comparables)), nil
}
