package postal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryCompleteness(t *testing.T) {
	// IsValidPostalCode and GetPostalCodeInfo must agree for every code
	for _, code := range AllPostalCodes() {
		assert.True(t, IsValidPostalCode(code), "code %s should be valid", code)
		assert.NotNil(t, GetPostalCodeInfo(code), "code %s should have info", code)
	}

	assert.False(t, IsValidPostalCode("00000"))
	assert.Nil(t, GetPostalCodeInfo("00000"))
}

func TestDirectoryHasBasePriceForEveryCode(t *testing.T) {
	for _, code := range AllPostalCodes() {
		price, ok := BasePriceM2(code)
		assert.True(t, ok, "code %s should have a base price", code)
		assert.Greater(t, price, 0.0)
	}

	_, ok := BasePriceM2("00000")
	assert.False(t, ok)
}

func TestGetPostalCodeInfoIdempotent(t *testing.T) {
	first := GetPostalCodeInfo("28001")
	second := GetPostalCodeInfo("28001")

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first, second)

	// Mutating a returned copy must not leak into the directory
	first.Localidad = "mutated"
	third := GetPostalCodeInfo("28001")
	assert.Equal(t, "Madrid", third.Localidad)
}

func TestGetPostalCodeInfoFields(t *testing.T) {
	info := GetPostalCodeInfo("28001")
	require.NotNil(t, info)
	assert.Equal(t, "28001", info.PostalCode)
	assert.Equal(t, "Madrid", info.Provincia)
	assert.Equal(t, "Salamanca", info.Distrito)
	assert.Equal(t, "Comunidad de Madrid", info.Comunidad)
	require.NotNil(t, info.Latitude)
	require.NotNil(t, info.Longitude)
}

func TestFindZoneByName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Zone inside listing title",
			input:    "Piso en Parquesol, 90m2",
			expected: "Parquesol",
		},
		{
			name:     "Unknown address",
			input:    "dirección desconocida",
			expected: "",
		},
		{
			name:     "Alias match",
			input:    "Vivienda junto a la rondilla, reformada",
			expected: "La Rondilla",
		},
		{
			name:     "Case insensitive",
			input:    "ATICO EN COVARESA",
			expected: "Covaresa",
		},
		{
			name:     "Alias with different canonical name",
			input:    "piso en delicias con ascensor",
			expected: "Las Delicias",
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FindZoneByName(tt.input))
		})
	}
}

func TestZoneLookups(t *testing.T) {
	assert.True(t, IsValidZone("Parquesol"))
	assert.True(t, IsValidZone("parquesol"), "zone names are case-insensitive")
	assert.False(t, IsValidZone("Narnia"))

	info := GetZoneInfo("Parquesol")
	require.NotNil(t, info)
	assert.Equal(t, "Valladolid", info.Localidad)
	assert.Greater(t, info.BasePriceM2, 0.0)

	assert.Nil(t, GetZoneInfo("Narnia"))
	assert.NotEmpty(t, AllZones())
}

func TestDistanceMeters(t *testing.T) {
	// Identical points
	assert.InDelta(t, 0, DistanceMeters(40.4262, -3.6857, 40.4262, -3.6857), 0.001)

	// Madrid Salamanca to Madrid Chamartin centroids, roughly 2km
	d := DistanceMeters(40.4262, -3.6857, 40.4430, -3.6750)
	assert.Greater(t, d, 1500.0)
	assert.Less(t, d, 2500.0)
}

func TestDistanceFromPostalCenter(t *testing.T) {
	d, ok := DistanceFromPostalCenter("28001", 40.4262, -3.6857)
	require.True(t, ok)
	assert.InDelta(t, 0, d, 0.001)

	_, ok = DistanceFromPostalCenter("00000", 40.0, -3.0)
	assert.False(t, ok)
}
