package valuation

import (
	"math"
	"sort"

	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/models"
)

// Mean returns the arithmetic mean of values, 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Median returns the middle value, averaging the two central values for an
// even count. 0 for an empty slice.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// StdDev returns the population standard deviation, 0 for fewer than two
// values.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// ComputeStats aggregates price-per-m2 statistics over the comparable set.
// The result block is always computed locally from the comparables, never
// taken from the external model.
func ComputeStats(comparables []models.ComparableProperty) models.ComparableStats {
	prices := make([]float64, 0, len(comparables))
	for _, c := range comparables {
		prices = append(prices, c.PrecioM2)
	}
	return models.ComparableStats{
		N:            len(prices),
		MediaM2:      math.Round(Mean(prices)),
		MedianaM2:    math.Round(Median(prices)),
		DesviacionM2: math.Round(StdDev(prices)),
	}
}

// ConfidenceFor assigns the confidence tier from the comparable count and
// the relative dispersion of the price-per-m2 distribution.
func ConfidenceFor(n int, stdDev, median float64) string {
	if n >= 12 && median > 0 && stdDev/median < 0.15 {
		return models.ConfianzaAlta
	}
	if n >= 6 {
		return models.ConfianzaMedia
	}
	return models.ConfianzaBaja
}
