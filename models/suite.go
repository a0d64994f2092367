package models

// SuiteType groups suites into a named category ("Standard", "Luxo", ...).
type SuiteType struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Position    int    `json:"position"`
}

// Amenity is a bookable feature a suite may offer (Wi-Fi, hydromassage, ...).
type Amenity struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// SuiteStatus is the publication state of a suite.
type SuiteStatus string

const (
	SuiteActive   SuiteStatus = "active"
	SuiteInactive SuiteStatus = "inactive"
)

// Suite is a rentable room presented in the public catalog.
//
// Prices are carried as decimal strings exactly as entered by the editor; the
// application never does arithmetic on them.
type Suite struct {
	ID             int64       `json:"id"`
	Title          string      `json:"title"`
	Slug           string      `json:"slug"`
	TypeID         int64       `json:"type_id,omitempty"`
	TypeName       string      `json:"type_name,omitempty"`
	Description    string      `json:"description,omitempty"`
	HourlyPrice    string      `json:"hourly_price,omitempty"`
	OvernightPrice string      `json:"overnight_price,omitempty"`
	Featured       bool        `json:"featured"`
	Position       int         `json:"position"`
	Status         SuiteStatus `json:"status"`

	// Amenities and Photos are populated by the catalog read paths; they are
	// empty on bare row lookups.
	Amenities []Amenity `json:"amenities,omitempty"`
	Photos    []Photo   `json:"photos,omitempty"`
}

// Photo is a single catalog image attached to a suite.
type Photo struct {
	ID       int64  `json:"id"`
	SuiteID  int64  `json:"suite_id"`
	URL      string `json:"url"`
	Caption  string `json:"caption,omitempty"`
	Position int    `json:"position"`
	Cover    bool   `json:"cover"`
}

// GalleryImage is an entry produced by the photo directory listing: a
// full-size image paired with its thumbnail variant when one exists on disk.
type GalleryImage struct {
	Src    string `json:"src"`
	Thumb  string `json:"thumb"`
	SrcSet string `json:"srcset"`
}
