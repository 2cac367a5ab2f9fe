package postal

import "strings"

// ZoneInfo describes a named zone used by the zone-based pipeline. Aliases
// cover the spellings that show up in free-text addresses and listing
// titles.
type ZoneInfo struct {
	Name        string   `json:"nombre"`
	Aliases     []string `json:"alias,omitempty"`
	Localidad   string   `json:"localidad"`
	Distrito    string   `json:"distrito"`
	BasePriceM2 float64  `json:"precio_base_m2"`
}

// zones is an ordered list: FindZoneByName scans it top to bottom and the
// first substring match wins, so more specific names must come first.
var zones = []ZoneInfo{
	{Name: "Parquesol", Aliases: []string{"parque sol"}, Localidad: "Valladolid", Distrito: "Parquesol", BasePriceM2: 1900},
	{Name: "Covaresa", Aliases: []string{"covaresa-parque alameda"}, Localidad: "Valladolid", Distrito: "Covaresa", BasePriceM2: 2100},
	{Name: "Huerta del Rey", Aliases: []string{"huerta rey"}, Localidad: "Valladolid", Distrito: "Huerta del Rey", BasePriceM2: 2000},
	{Name: "La Rondilla", Aliases: []string{"rondilla"}, Localidad: "Valladolid", Distrito: "La Rondilla", BasePriceM2: 1500},
	{Name: "Las Delicias", Aliases: []string{"delicias"}, Localidad: "Valladolid", Distrito: "Delicias", BasePriceM2: 1400},
	{Name: "La Victoria", Aliases: []string{"victoria"}, Localidad: "Valladolid", Distrito: "La Victoria", BasePriceM2: 1600},
	{Name: "Pajarillos", Aliases: []string{"pajarillos bajos", "pajarillos altos"}, Localidad: "Valladolid", Distrito: "Pajarillos", BasePriceM2: 1200},
	{Name: "Arturo Eyries", Aliases: []string{"arturo eyríes"}, Localidad: "Valladolid", Distrito: "Arturo Eyries", BasePriceM2: 1300},
	{Name: "Centro", Aliases: []string{"casco historico", "casco histórico"}, Localidad: "Valladolid", Distrito: "Centro", BasePriceM2: 2200},
	{Name: "Plaza Circular", Aliases: []string{"circular"}, Localidad: "Valladolid", Distrito: "Circular", BasePriceM2: 1700},
}

// FindZoneByName scans free text for a known zone name or alias,
// case-insensitive, and returns the canonical zone name. Returns "" when
// nothing matches; no fuzzy or ranked matching.
func FindZoneByName(freeText string) string {
	text := strings.ToLower(freeText)
	for _, z := range zones {
		if strings.Contains(text, strings.ToLower(z.Name)) {
			return z.Name
		}
		for _, alias := range z.Aliases {
			if strings.Contains(text, strings.ToLower(alias)) {
				return z.Name
			}
		}
	}
	return ""
}

// IsValidZone reports whether the canonical zone name is known.
func IsValidZone(zone string) bool {
	return GetZoneInfo(zone) != nil
}

// GetZoneInfo returns the entry for a canonical zone name, or nil.
func GetZoneInfo(zone string) *ZoneInfo {
	for i := range zones {
		if strings.EqualFold(zones[i].Name, zone) {
			z := zones[i]
			return &z
		}
	}
	return nil
}

// AllZones returns a copy of the zone table for the lookup API.
func AllZones() []ZoneInfo {
	out := make([]ZoneInfo, len(zones))
	copy(out, zones)
	return out
}
