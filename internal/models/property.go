package models

import "time"

// Conservation describes the declared state of a dwelling.
type Conservation string

const (
	ObraNueva  Conservation = "obra-nueva"
	BuenEstado Conservation = "buen-estado"
	AReformar  Conservation = "a-reformar"
)

// Conservations lists every valid conservation state.
var Conservations = []Conservation{ObraNueva, BuenEstado, AReformar}

// PropertyInfo is the target property under valuation. JSON field names
// match the contract expected by the form layer.
type PropertyInfo struct {
	Localidad       string       `json:"localidad"`
	Distrito        string       `json:"distrito"`
	PostalCode      string       `json:"codigo_postal"`
	Direccion       string       `json:"direccion,omitempty"`
	TipoVivienda    string       `json:"tipo_vivienda"`
	Superficie      float64      `json:"superficie_m2"`
	Habitaciones    int          `json:"habitaciones"`
	Banos           int          `json:"banos"`
	Estado          Conservation `json:"estado_conservacion"`
	Planta          string       `json:"planta"`
	Ascensor        bool         `json:"ascensor"`
	Exterior        bool         `json:"exterior"`
	AnoConstruccion int          `json:"ano_construccion"`
}

// PostalCodeInfo is immutable reference data for a single postal code.
type PostalCodeInfo struct {
	PostalCode string   `json:"codigo_postal"`
	Provincia  string   `json:"provincia"`
	Localidad  string   `json:"localidad"`
	Distrito   string   `json:"distrito,omitempty"`
	Comunidad  string   `json:"comunidad_autonoma"`
	Latitude   *float64 `json:"latitud,omitempty"`
	Longitude  *float64 `json:"longitud,omitempty"`
}

// ComparableProperty is a listing used as evidence for a valuation.
type ComparableProperty struct {
	Fuente       string       `json:"fuente"`
	URL          string       `json:"url"`
	PostalCode   string       `json:"codigo_postal,omitempty"`
	Zona         string       `json:"zona,omitempty"`
	Distrito     string       `json:"distrito"`
	DistanciaM   *float64     `json:"distancia_m,omitempty"`
	Superficie   float64      `json:"superficie_m2"`
	Habitaciones int          `json:"habitaciones"`
	Precio       float64      `json:"precio"`
	PrecioM2     float64      `json:"precio_m2"`
	Ascensor     bool         `json:"ascensor"`
	Exterior     bool         `json:"exterior"`
	Estado       Conservation `json:"estado_conservacion"`
	Planta       string       `json:"planta"`
}

// RawListing is a loosely structured advert row as stored by the listing
// portal scrapers. Numeric attributes live inside free text and have to be
// extracted before the row can be used as a comparable.
type RawListing struct {
	ID              int64     `json:"id"`
	Fuente          string    `json:"fuente"`
	URL             string    `json:"url"`
	Zona            string    `json:"zona"`
	Titulo          string    `json:"titulo"`
	Descripcion     string    `json:"descripcion"`
	PrecioTexto     string    `json:"precio"`
	Caracteristica1 string    `json:"caracteristica_1,omitempty"`
	Caracteristica2 string    `json:"caracteristica_2,omitempty"`
	Caracteristica3 string    `json:"caracteristica_3,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
