package listings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/models"
)

func TestParseListingFullAdvert(t *testing.T) {
	raw := models.RawListing{
		Fuente:          "idealista.com",
		URL:             "https://www.idealista.com/inmueble/12345/",
		Zona:            "Parquesol",
		Titulo:          "Piso en venta en Parquesol",
		Descripcion:     "Estupendo piso de 95 m2, 3 habitaciones, exterior y con ascensor. Planta 4.",
		PrecioTexto:     "189.500 €",
		Caracteristica1: "2 baños",
	}

	c, ok := ParseListing(raw)
	require.True(t, ok)
	assert.Equal(t, "idealista.com", c.Fuente)
	assert.Equal(t, "Parquesol", c.Zona)
	assert.Equal(t, 189500.0, c.Precio)
	assert.Equal(t, 95.0, c.Superficie)
	assert.Equal(t, 3, c.Habitaciones)
	assert.Equal(t, 1995.0, c.PrecioM2)
	assert.True(t, c.Ascensor)
	assert.True(t, c.Exterior)
	assert.Equal(t, models.BuenEstado, c.Estado)
	assert.Equal(t, "4", c.Planta)
}

func TestParseListingPriceFormats(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		price float64
	}{
		{"thousands dot and euro sign", "235.000 €", 235000},
		{"plain digits", "180000", 180000},
		{"with prefix", "Precio: 99.900€", 99900},
		{"empty", "", 0},
		{"no digits", "a consultar", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.price, parsePrice(tt.text))
		})
	}
}

func TestParseListingSurfaceAndRoomVariants(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		surface float64
		rooms   int
	}{
		{"superscript m2", "piso de 80 m² con 2 habitaciones", 80, 2},
		{"plain m2 no space", "120m2, 4 dormitorios", 120, 4},
		{"hab abbreviation", "70 m2, 3 hab.", 70, 3},
		{"single room", "estudio de 45 m2, 1 habitación", 45, 1},
		{"no surface", "piso con 2 habitaciones", 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.surface, parseSurface(tt.text))
			assert.Equal(t, tt.rooms, parseRooms(tt.text))
		})
	}
}

func TestParseListingConservationAndFloor(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		estado models.Conservation
		planta string
	}{
		{"new build", "obra nueva a estrenar, planta 2", models.ObraNueva, "2"},
		{"to renovate", "piso a reformar en planta baja", models.AReformar, "bajo"},
		{"penthouse", "ático con terraza", models.BuenEstado, "atico"},
		{"ordinal floor", "luminoso, 3ª planta", models.BuenEstado, "3"},
		{"unknown floor", "piso luminoso", models.BuenEstado, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.estado, parseConservation(tt.text))
			assert.Equal(t, tt.planta, parseFloor(tt.text))
		})
	}
}

func TestParseListingRejectsUnusableRows(t *testing.T) {
	tests := []struct {
		name string
		raw  models.RawListing
	}{
		{"no price", models.RawListing{Titulo: "Piso de 80 m2, 2 habitaciones"}},
		{"no surface", models.RawListing{Titulo: "Piso céntrico", PrecioTexto: "150.000 €"}},
		{"empty row", models.RawListing{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseListing(tt.raw)
			assert.False(t, ok)
		})
	}
}

func TestParseAllDropsBadRows(t *testing.T) {
	rows := []models.RawListing{
		{Titulo: "Piso de 90 m2, 3 habitaciones", PrecioTexto: "171.000 €", Zona: "Parquesol"},
		{Titulo: "Sin datos"},
		{Titulo: "Piso de 60 m2, 2 hab", PrecioTexto: "120.000 €", Zona: "Covaresa"},
	}

	out := ParseAll(rows)
	require.Len(t, out, 2)
	assert.Equal(t, "Parquesol", out[0].Zona)
	assert.Equal(t, 1900.0, out[0].PrecioM2)
	assert.Equal(t, "Covaresa", out[1].Zona)
	assert.Equal(t, 2000.0, out[1].PrecioM2)
}
