package domain

// Catalogs backing the order entry form. These mirror what the
// showrooms actually offer and are not stored in the database.

var Showrooms = []string{"Anna Nagar", "Valasaravakkam"}

var StitchTypes = []string{
	"Pleated",
	"Ripple",
	"Eyelet",
	`Roman Blinds 48"`,
	`Roman Blinds 54"`,
	"Blinds (Regular)",
}

var LiningTypes = []string{"No Lining", "Normal Lining", "B/O Lining"}

var Tailors = []string{"None", "Dev", "Dinesh"}

var Fitters = []string{"None", "Dev", "Dinesh", "Krishna"}

// CatalogDTO bundles the form catalogs for a single fetch.
type CatalogDTO struct {
	Showrooms   []string `json:"showrooms"`
	StitchTypes []string `json:"stitch_types"`
	LiningTypes []string `json:"lining_types"`
	Tailors     []string `json:"tailors"`
	Fitters     []string `json:"fitters"`
}
