package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/models"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 5.0, Mean([]float64{5}))
	assert.Equal(t, 2000.0, Mean([]float64{1800, 2000, 2200}))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, Median(nil))
	assert.Equal(t, 5.0, Median([]float64{5}))
	assert.Equal(t, 2000.0, Median([]float64{2200, 1800, 2000}))
	assert.Equal(t, 2100.0, Median([]float64{1800, 2000, 2200, 2400}))

	// Input must not be reordered
	values := []float64{2200, 1800, 2000}
	Median(values)
	assert.Equal(t, []float64{2200, 1800, 2000}, values)
}

func TestStdDev(t *testing.T) {
	assert.Equal(t, 0.0, StdDev(nil))
	assert.Equal(t, 0.0, StdDev([]float64{42}))
	assert.Equal(t, 0.0, StdDev([]float64{7, 7, 7}))

	// Population deviation of {2, 4, 4, 4, 5, 5, 7, 9} is exactly 2
	assert.InDelta(t, 2.0, StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 0.0001)
}

func TestComputeStats(t *testing.T) {
	comps := []models.ComparableProperty{
		{PrecioM2: 1800},
		{PrecioM2: 2000},
		{PrecioM2: 2200},
	}

	stats := ComputeStats(comps)
	assert.Equal(t, 3, stats.N)
	assert.Equal(t, 2000.0, stats.MediaM2)
	assert.Equal(t, 2000.0, stats.MedianaM2)
	assert.InDelta(t, 163.0, stats.DesviacionM2, 1)

	empty := ComputeStats(nil)
	assert.Equal(t, 0, empty.N)
	assert.Equal(t, 0.0, empty.MediaM2)
}

func TestConfidenceFor(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		stdDev   float64
		median   float64
		expected string
	}{
		{"Large tight sample", 12, 200, 2000, models.ConfianzaAlta},
		{"Large dispersed sample", 12, 400, 2000, models.ConfianzaMedia},
		{"Medium sample", 6, 50, 2000, models.ConfianzaMedia},
		{"Small sample", 3, 10, 2000, models.ConfianzaBaja},
		{"Zero median never alta", 15, 0, 0, models.ConfianzaMedia},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConfidenceFor(tt.n, tt.stdDev, tt.median))
		})
	}
}
