package comparables

import "github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/models"

// Criteria parameterizes the strict-validity gate. The two pipelines share
// the same predicate and differ only in these bounds and in which location
// key (postal code vs named zone) anchors the match.
type Criteria struct {
	MinPriceM2   float64
	MaxPriceM2   float64
	MaxDistanceM float64
	// Zone, when set, switches the location check from the target's postal
	// code to this canonical zone name.
	Zone string
}

// PostalCriteria is the profile for postal-code based searches.
func PostalCriteria() Criteria {
	return Criteria{MinPriceM2: 800, MaxPriceM2: 15000, MaxDistanceM: 500}
}

// ZoneCriteria is the looser profile for named-zone searches, where stored
// listings carry noisier prices.
func ZoneCriteria(zone string) Criteria {
	return Criteria{MinPriceM2: 500, MaxPriceM2: 20000, MaxDistanceM: 500, Zone: zone}
}

// IsStrictlyValid is the single source of truth for whether a candidate can
// be used as a comparable for the target. Pure and deterministic: every
// check is a conjunction, any failure rejects.
func IsStrictlyValid(c models.ComparableProperty, target models.PropertyInfo, criteria Criteria) bool {
	if criteria.Zone != "" {
		if c.Zona != criteria.Zone {
			return false
		}
	} else if c.PostalCode != target.PostalCode {
		return false
	}
	if c.Distrito != target.Distrito {
		return false
	}
	if c.Superficie < target.Superficie*0.9 || c.Superficie > target.Superficie*1.1 {
		return false
	}
	if c.Habitaciones != target.Habitaciones {
		return false
	}
	if c.Ascensor != target.Ascensor {
		return false
	}
	if c.PrecioM2 < criteria.MinPriceM2 || c.PrecioM2 > criteria.MaxPriceM2 {
		return false
	}
	if c.DistanciaM != nil && *c.DistanciaM > criteria.MaxDistanceM {
		return false
	}
	return true
}

// Filter keeps the candidates that satisfy the strict criteria.
func Filter(candidates []models.ComparableProperty, target models.PropertyInfo, criteria Criteria) []models.ComparableProperty {
	out := make([]models.ComparableProperty, 0, len(candidates))
	for _, c := range candidates {
		if IsStrictlyValid(c, target, criteria) {
			out = append(out, c)
		}
	}
	return out
}
