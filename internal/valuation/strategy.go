// Package valuation derives a price range for a target property from a set
// of validated comparables. The primary strategy delegates the heuristic
// valuation to an external chat-completion model; a deterministic fallback
// covers every failure of that path.
package valuation

import (
	"context"

	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/models"
)

// Strategy turns a target plus its comparables into a valuation result.
// Implementations must not be called with an empty comparable set; the
// orchestrator short-circuits that case first.
type Strategy interface {
	Valuate(ctx context.Context, target models.PropertyInfo, comparables []models.ComparableProperty) (*models.ValuationResult, error)
}

const (
	// AvisoLegal is the fixed disclaimer attached to every valuation.
	AvisoLegal = "Esta valoración es una estimación orientativa basada en datos de mercado y no constituye una tasación oficial. Para operaciones de compraventa o hipoteca, consulte a un tasador homologado."

	// Metodologia is the short note describing how the estimate was built.
	Metodologia = "Estimación basada en testigos comparables de la misma zona (superficie ±10%, mismas habitaciones y ascensor), estadísticas de precio por m² (media, mediana y desviación típica) y ajustes por estado, planta y antigüedad."

	// SinComparablesMsg is the free-text reason used when no usable
	// comparables exist for the target's location.
	SinComparablesMsg = "No se encontraron viviendas similares"

	// ErrServidorMsg is surfaced, as a missing-data entry, when the
	// comparable fetch itself fails unexpectedly.
	ErrServidorMsg = "Error en el servidor. Inténtalo de nuevo más tarde."

	fechaFormat = "2006-01-02"
)
