package models

// ValuationStatus is the top-level status tag of a valuation response.
type ValuationStatus string

const (
	StatusOK          ValuationStatus = "ok"
	StatusFaltanDatos ValuationStatus = "faltan_datos"
)

// Confidence tiers for a valuation.
const (
	ConfianzaAlta  = "alta"
	ConfianzaMedia = "media"
	ConfianzaBaja  = "baja"
)

// Valoracion is the price range block of a successful valuation.
type Valoracion struct {
	PrecioMin        float64 `json:"precio_min"`
	PrecioMax        float64 `json:"precio_max"`
	PrecioSugerido   float64 `json:"precio_sugerido"`
	PrecioM2Sugerido float64 `json:"precio_m2_sugerido"`
	Confianza        string  `json:"confianza"`
}

// ComparableStats aggregates price-per-m2 figures over the comparable set.
type ComparableStats struct {
	N            int     `json:"n"`
	MediaM2      float64 `json:"media_m2"`
	MedianaM2    float64 `json:"mediana_m2"`
	DesviacionM2 float64 `json:"desviacion_m2"`
}

// ValuationResult is the single response shape returned to callers. It has
// exactly three cases, built through the constructors below: a full
// valuation, a "no comparables found" success, or a missing-data report.
// Callers branch on Status and SinComparables.
type ValuationResult struct {
	Status       ValuationStatus      `json:"status"`
	Vivienda     *PropertyInfo        `json:"vivienda,omitempty"`
	Valoracion   *Valoracion          `json:"valoracion,omitempty"`
	Estadisticas *ComparableStats     `json:"estadisticas_comparables,omitempty"`
	Comparables  []ComparableProperty `json:"comparables_destacados,omitempty"`
	FechaCalculo string               `json:"fecha_calculo,omitempty"`
	Metodologia  string               `json:"metodologia,omitempty"`
	AvisoLegal   string               `json:"aviso_legal,omitempty"`

	SinComparables string   `json:"sin_comparables,omitempty"`
	FaltanDatos    []string `json:"faltan_datos,omitempty"`
}

// NewValuedResult builds the full-valuation case.
func NewValuedResult(target PropertyInfo, val Valoracion, stats ComparableStats) *ValuationResult {
	t := target
	v := val
	s := stats
	return &ValuationResult{
		Status:       StatusOK,
		Vivienda:     &t,
		Valoracion:   &v,
		Estadisticas: &s,
	}
}

// NewNoComparablesResult builds the "success but empty" case.
func NewNoComparablesResult(reason string) *ValuationResult {
	return &ValuationResult{
		Status:         StatusOK,
		SinComparables: reason,
	}
}

// NewMissingFieldsResult builds the missing-data case.
func NewMissingFieldsResult(fields ...string) *ValuationResult {
	return &ValuationResult{
		Status:      StatusFaltanDatos,
		FaltanDatos: fields,
	}
}

// IsValued reports whether the result carries a valuation block.
func (r *ValuationResult) IsValued() bool {
	return r.Status == StatusOK && r.Valoracion != nil
}

// IsNoComparables reports whether the result is the empty-market case.
func (r *ValuationResult) IsNoComparables() bool {
	return r.Status == StatusOK && r.SinComparables != ""
}

// IsMissingData reports whether the result asks for more information.
func (r *ValuationResult) IsMissingData() bool {
	return r.Status == StatusFaltanDatos
}
