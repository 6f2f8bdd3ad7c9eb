package config

// Application constants - all hardcoded values for the campaign pipeline
const (
	// Application Info
	AppName    = "Campaign Pipeline"
	AppVersion = "1.0.0"

	// File Paths (relative to executable)
	DefaultDataDir    = "data"
	DefaultLogsDir    = "logs"
	DefaultReportsDir = "data/reports"

	// Well-known file names
	DefaultDatasetFile  = "dataset_final.csv"
	DefaultWorkbookFile = "campaign_charts.xlsx"
	DefaultManifestFile = "charts.json"
)

// Canonical column names produced by the rename vocabulary. Downstream
// stages reference columns through these constants only.
const (
	ColAge               = "age"
	ColOcupacion         = "ocupacion"
	ColEstadoCivil       = "estado_civil"
	ColEducacion         = "educacion"
	ColTieneHipoteca     = "tiene_hipoteca"
	ColTienePrestamo     = "tiene_prestamo"
	ColTipoContacto      = "tipo_contacto"
	ColDuracionLlamada   = "duracion_llamada"
	ColResultadoAnterior = "resultado_campana_anterior"
	ColFechaRegistro     = "fecha_registro"
	ColFechaContacto     = "fecha_contacto"
	ColSuscribio         = "suscribio"
	ColDiasDesdeRegistro = "dias_desde_registro"
	ColCategoriaDuracion = "categoria_duracion"
)

// Duration bucket labels for categoria_duracion.
const (
	BucketCorta = "Corta"
	BucketMedia = "Media"
	BucketLarga = "Larga"
)

// Vocabulary holds the static cleaning dictionaries. The stages receive a
// Vocabulary instead of reading package globals so the dictionaries can be
// tested and varied independently.
type Vocabulary struct {
	// DroppedColumns are removed from the table before renaming. Absent
	// names are ignored.
	DroppedColumns []string

	// Renames maps normalized source column names to the canonical
	// vocabulary. Names not in the map pass through unchanged.
	Renames map[string]string

	// DateColumns are coerced to the date type; unparseable values become
	// nulls, never errors.
	DateColumns []string

	// DateLayouts are tried in order when parsing date columns.
	DateLayouts []string

	// CategoricalColumns are cast to the category type when present.
	CategoricalColumns []string

	// KeyColumns must be non-null; rows with a null in any of them are
	// dropped.
	KeyColumns []string
}

// DefaultVocabulary returns the vocabulary for the banking campaign dataset.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		DroppedColumns: []string{
			"day_of_week", "day_name", "year", "month", "day",
			"latitud", "longitud",
		},
		Renames: map[string]string{
			"job":               "ocupacion",
			"marital":           "estado_civil",
			"education":         "educacion",
			"housing":           "tiene_hipoteca",
			"loan":              "tiene_prestamo",
			"contact":           "tipo_contacto",
			"duration":          "duracion_llamada",
			"campaign":          "contactos_actuales",
			"pdays":             "dias_ultimo_contacto",
			"previous":          "contactos_previos",
			"poutcome":          "resultado_campana_anterior",
			"emp_var_rate":      "tasa_empleo",
			"cons_price_idx":    "indice_precio_consumidor",
			"cons_conf_idx":     "indice_confianza_consumidor",
			"euribor3m":         "tasa_interes_3m",
			"nr_employed":       "num_empleados",
			"y":                 "suscribio",
			"income":            "ingreso",
			"kidhome":           "hijos_ninos",
			"teenhome":          "hijos_adolescentes",
			"dt_customer":       "fecha_registro",
			"numwebvisitsmonth": "visitas_web_mes",
			"pdays_category":    "categoria_dias_ultimo_contacto",
			"year_registered":   "ano_registro",
			"month_registered":  "mes_registro",
			"contact_date":      "fecha_contacto",
		},
		DateColumns: []string{ColFechaRegistro, ColFechaContacto},
		DateLayouts: []string{
			"2006-01-02",
			"2006-01-02 15:04:05",
			"02/01/2006",
			"2006/01/02",
		},
		CategoricalColumns: []string{
			ColEstadoCivil, ColEducacion, ColOcupacion,
			ColTipoContacto, ColResultadoAnterior,
		},
		KeyColumns: []string{ColOcupacion, ColEstadoCivil, ColEducacion},
	}
}

// DurationBucket is a half-open, left-inclusive range [Min, Max) mapped to a
// label. A negative Max marks the open-ended bucket.
type DurationBucket struct {
	Label string
	Min   float64
	Max   float64
}

// DurationBuckets returns the call-duration buckets in ascending order.
func DurationBuckets() []DurationBucket {
	return []DurationBucket{
		{Label: BucketCorta, Min: 0, Max: 100},
		{Label: BucketMedia, Min: 100, Max: 300},
		{Label: BucketLarga, Min: 300, Max: -1},
	}
}
