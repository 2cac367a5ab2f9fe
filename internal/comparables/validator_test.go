package comparables

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/models"
)

func validComparable() models.ComparableProperty {
	return models.ComparableProperty{
		Fuente:       "idealista.com",
		URL:          "https://www.idealista.com/inmueble/28001-1-100001/",
		PostalCode:   "28001",
		Distrito:     "Salamanca",
		Superficie:   82,
		Habitaciones: 2,
		Precio:       574000,
		PrecioM2:     7000,
		Ascensor:     true,
		Exterior:     true,
		Estado:       models.BuenEstado,
		Planta:       "2",
	}
}

func TestIsStrictlyValid(t *testing.T) {
	target := testTarget()
	criteria := PostalCriteria()

	tests := []struct {
		name   string
		mutate func(c *models.ComparableProperty)
		valid  bool
	}{
		{
			name:   "All criteria satisfied",
			mutate: func(c *models.ComparableProperty) {},
			valid:  true,
		},
		{
			name:   "Different postal code",
			mutate: func(c *models.ComparableProperty) { c.PostalCode = "28002" },
			valid:  false,
		},
		{
			name:   "Different district",
			mutate: func(c *models.ComparableProperty) { c.Distrito = "Chamberí" },
			valid:  false,
		},
		{
			name:   "Surface below the band",
			mutate: func(c *models.ComparableProperty) { c.Superficie = 71 },
			valid:  false,
		},
		{
			name:   "Surface above the band",
			mutate: func(c *models.ComparableProperty) { c.Superficie = 89 },
			valid:  false,
		},
		{
			name:   "Surface at the lower bound",
			mutate: func(c *models.ComparableProperty) { c.Superficie = 72 },
			valid:  true,
		},
		{
			name:   "Surface at the upper bound",
			mutate: func(c *models.ComparableProperty) { c.Superficie = 88 },
			valid:  true,
		},
		{
			name:   "Different room count",
			mutate: func(c *models.ComparableProperty) { c.Habitaciones = 3 },
			valid:  false,
		},
		{
			name:   "Different elevator flag",
			mutate: func(c *models.ComparableProperty) { c.Ascensor = false },
			valid:  false,
		},
		{
			name:   "Price per m2 below the market band",
			mutate: func(c *models.ComparableProperty) { c.PrecioM2 = 700 },
			valid:  false,
		},
		{
			name:   "Price per m2 above the market band",
			mutate: func(c *models.ComparableProperty) { c.PrecioM2 = 15500 },
			valid:  false,
		},
		{
			name:   "Price per m2 at the band edges",
			mutate: func(c *models.ComparableProperty) { c.PrecioM2 = 800 },
			valid:  true,
		},
		{
			name: "Distance within the cap",
			mutate: func(c *models.ComparableProperty) {
				d := 350.0
				c.DistanciaM = &d
			},
			valid: true,
		},
		{
			name: "Distance beyond the cap",
			mutate: func(c *models.ComparableProperty) {
				d := 650.0
				c.DistanciaM = &d
			},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validComparable()
			tt.mutate(&c)
			assert.Equal(t, tt.valid, IsStrictlyValid(c, target, criteria))
		})
	}
}

func TestIsStrictlyValidIsDeterministic(t *testing.T) {
	target := testTarget()
	criteria := PostalCriteria()
	c := validComparable()

	first := IsStrictlyValid(c, target, criteria)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, IsStrictlyValid(c, target, criteria))
	}
}

func TestIsStrictlyValidZoneMode(t *testing.T) {
	target := testTarget()
	target.PostalCode = ""
	target.Distrito = "Parquesol"
	criteria := ZoneCriteria("Parquesol")

	c := validComparable()
	c.PostalCode = ""
	c.Zona = "Parquesol"
	c.Distrito = "Parquesol"
	c.PrecioM2 = 600 // below postal band, inside zone band
	assert.True(t, IsStrictlyValid(c, target, criteria))

	c.Zona = "Covaresa"
	assert.False(t, IsStrictlyValid(c, target, criteria))

	c.Zona = ""
	assert.False(t, IsStrictlyValid(c, target, criteria))
}

func TestFilter(t *testing.T) {
	target := testTarget()
	criteria := PostalCriteria()

	good := validComparable()
	badRooms := validComparable()
	badRooms.Habitaciones = 4
	badPrice := validComparable()
	badPrice.PrecioM2 = 100

	out := Filter([]models.ComparableProperty{good, badRooms, badPrice}, target, criteria)
	assert.Len(t, out, 1)
	assert.Equal(t, good, out[0])

	assert.Empty(t, Filter(nil, target, criteria))
}
