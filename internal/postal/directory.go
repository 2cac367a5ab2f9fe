// Package postal holds the embedded postal-code and zone directory used to
// anchor comparable searches. All tables are reference data: loaded once,
// never mutated, safe for concurrent readers.
package postal

import "github.com/papparazzi76/casa-con-avatar-3d-sub000/internal/models"

func coord(v float64) *float64 {
	return &v
}

// directory maps postal codes to their locality metadata.
var directory = map[string]models.PostalCodeInfo{
	// Madrid
	"28001": {PostalCode: "28001", Provincia: "Madrid", Localidad: "Madrid", Distrito: "Salamanca", Comunidad: "Comunidad de Madrid", Latitude: coord(40.4262), Longitude: coord(-3.6857)},
	"28002": {PostalCode: "28002", Provincia: "Madrid", Localidad: "Madrid", Distrito: "Chamartín", Comunidad: "Comunidad de Madrid", Latitude: coord(40.4430), Longitude: coord(-3.6750)},
	"28004": {PostalCode: "28004", Provincia: "Madrid", Localidad: "Madrid", Distrito: "Centro", Comunidad: "Comunidad de Madrid", Latitude: coord(40.4240), Longitude: coord(-3.6980)},
	"28005": {PostalCode: "28005", Provincia: "Madrid", Localidad: "Madrid", Distrito: "Centro", Comunidad: "Comunidad de Madrid", Latitude: coord(40.4086), Longitude: coord(-3.7155)},
	"28008": {PostalCode: "28008", Provincia: "Madrid", Localidad: "Madrid", Distrito: "Moncloa-Aravaca", Comunidad: "Comunidad de Madrid", Latitude: coord(40.4300), Longitude: coord(-3.7242)},
	"28015": {PostalCode: "28015", Provincia: "Madrid", Localidad: "Madrid", Distrito: "Chamberí", Comunidad: "Comunidad de Madrid", Latitude: coord(40.4330), Longitude: coord(-3.7100)},
	"28019": {PostalCode: "28019", Provincia: "Madrid", Localidad: "Madrid", Distrito: "Carabanchel", Comunidad: "Comunidad de Madrid", Latitude: coord(40.3930), Longitude: coord(-3.7320)},
	"28025": {PostalCode: "28025", Provincia: "Madrid", Localidad: "Madrid", Distrito: "Carabanchel", Comunidad: "Comunidad de Madrid", Latitude: coord(40.3830), Longitude: coord(-3.7440)},
	"28028": {PostalCode: "28028", Provincia: "Madrid", Localidad: "Madrid", Distrito: "Salamanca", Comunidad: "Comunidad de Madrid", Latitude: coord(40.4310), Longitude: coord(-3.6700)},
	"28045": {PostalCode: "28045", Provincia: "Madrid", Localidad: "Madrid", Distrito: "Arganzuela", Comunidad: "Comunidad de Madrid", Latitude: coord(40.3980), Longitude: coord(-3.6950)},
	// Barcelona
	"08001": {PostalCode: "08001", Provincia: "Barcelona", Localidad: "Barcelona", Distrito: "Ciutat Vella", Comunidad: "Cataluña", Latitude: coord(41.3800), Longitude: coord(2.1680)},
	"08008": {PostalCode: "08008", Provincia: "Barcelona", Localidad: "Barcelona", Distrito: "Eixample", Comunidad: "Cataluña", Latitude: coord(41.3940), Longitude: coord(2.1610)},
	"08021": {PostalCode: "08021", Provincia: "Barcelona", Localidad: "Barcelona", Distrito: "Sarrià-Sant Gervasi", Comunidad: "Cataluña", Latitude: coord(41.3960), Longitude: coord(2.1430)},
	"08025": {PostalCode: "08025", Provincia: "Barcelona", Localidad: "Barcelona", Distrito: "Gràcia", Comunidad: "Cataluña", Latitude: coord(41.4070), Longitude: coord(2.1660)},
	// Valencia
	"46001": {PostalCode: "46001", Provincia: "Valencia", Localidad: "Valencia", Distrito: "Ciutat Vella", Comunidad: "Comunidad Valenciana", Latitude: coord(39.4760), Longitude: coord(-0.3750)},
	"46021": {PostalCode: "46021", Provincia: "Valencia", Localidad: "Valencia", Distrito: "Algirós", Comunidad: "Comunidad Valenciana", Latitude: coord(39.4720), Longitude: coord(-0.3480)},
	// Sevilla
	"41001": {PostalCode: "41001", Provincia: "Sevilla", Localidad: "Sevilla", Distrito: "Casco Antiguo", Comunidad: "Andalucía", Latitude: coord(37.3910), Longitude: coord(-5.9960)},
	"41011": {PostalCode: "41011", Provincia: "Sevilla", Localidad: "Sevilla", Distrito: "Los Remedios", Comunidad: "Andalucía", Latitude: coord(37.3770), Longitude: coord(-6.0080)},
	// Valladolid
	"47001": {PostalCode: "47001", Provincia: "Valladolid", Localidad: "Valladolid", Distrito: "Centro", Comunidad: "Castilla y León", Latitude: coord(41.6520), Longitude: coord(-4.7280)},
	"47006": {PostalCode: "47006", Provincia: "Valladolid", Localidad: "Valladolid", Distrito: "Huerta del Rey", Comunidad: "Castilla y León", Latitude: coord(41.6560), Longitude: coord(-4.7420)},
	"47008": {PostalCode: "47008", Provincia: "Valladolid", Localidad: "Valladolid", Distrito: "Parquesol", Comunidad: "Castilla y León", Latitude: coord(41.6380), Longitude: coord(-4.7620)},
	"47010": {PostalCode: "47010", Provincia: "Valladolid", Localidad: "Valladolid", Distrito: "La Rondilla", Comunidad: "Castilla y León", Latitude: coord(41.6630), Longitude: coord(-4.7230)},
	"47013": {PostalCode: "47013", Provincia: "Valladolid", Localidad: "Valladolid", Distrito: "Delicias", Comunidad: "Castilla y León", Latitude: coord(41.6380), Longitude: coord(-4.7140)},
	// Zaragoza
	"50001": {PostalCode: "50001", Provincia: "Zaragoza", Localidad: "Zaragoza", Distrito: "Casco Histórico", Comunidad: "Aragón", Latitude: coord(41.6520), Longitude: coord(-0.8790)},
	// Bilbao
	"48009": {PostalCode: "48009", Provincia: "Vizcaya", Localidad: "Bilbao", Distrito: "Abando", Comunidad: "País Vasco", Latitude: coord(43.2630), Longitude: coord(-2.9350)},
	// Málaga
	"29001": {PostalCode: "29001", Provincia: "Málaga", Localidad: "Málaga", Distrito: "Centro", Comunidad: "Andalucía", Latitude: coord(36.7200), Longitude: coord(-4.4210)},
}

// basePriceM2 carries the reference asking price per m2 for each postal
// code in the directory.
var basePriceM2 = map[string]float64{
	"28001": 7800,
	"28002": 6100,
	"28004": 6400,
	"28005": 5300,
	"28008": 5200,
	"28015": 5900,
	"28019": 2900,
	"28025": 2600,
	"28028": 5600,
	"28045": 4400,
	"08001": 4300,
	"08008": 5800,
	"08021": 6300,
	"08025": 4700,
	"46001": 3200,
	"46021": 2700,
	"41001": 3400,
	"41011": 3000,
	"47001": 2200,
	"47006": 2000,
	"47008": 1900,
	"47010": 1500,
	"47013": 1400,
	"50001": 2100,
	"48009": 4500,
	"29001": 3500,
}

// IsValidPostalCode reports whether the code exists in the directory.
func IsValidPostalCode(code string) bool {
	_, ok := directory[code]
	return ok
}

// GetPostalCodeInfo returns the directory entry for a postal code, or nil
// when the code is unknown. It never fails; callers treat nil as "cannot
// search here".
func GetPostalCodeInfo(code string) *models.PostalCodeInfo {
	info, ok := directory[code]
	if !ok {
		return nil
	}
	return &info
}

// BasePriceM2 returns the reference price per m2 for a postal code.
func BasePriceM2(code string) (float64, bool) {
	price, ok := basePriceM2[code]
	return price, ok
}

// AllPostalCodes returns every code in the directory, for diagnostics and
// the lookup API.
func AllPostalCodes() []string {
	codes := make([]string, 0, len(directory))
	for code := range directory {
		codes = append(codes, code)
	}
	return codes
}
