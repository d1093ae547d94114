// Package country defines the visa dataset schema and read access to it.
package country

// Coordinates places a country pin on the landing-page map, as percentages
// of the map's width and height. Presentation only.
type Coordinates struct {
	Top  float64 `json:"top" bson:"top"`
	Left float64 `json:"left" bson:"left"`
}

// File is a named downloadable attachment, either country-scoped or
// scoped to one visa category.
type File struct {
	Name string `json:"name" bson:"name"`
	URL  string `json:"url" bson:"url"`
}

// ChecklistItem is a labelled link to a checklist document.
type ChecklistItem struct {
	Label string `json:"label" bson:"label"`
	URL   string `json:"url" bson:"url"`
}

// DownloadItem is a richer link record: manuals, guides and portal
// redirects. IsExternal only changes how the link renders.
type DownloadItem struct {
	Label       string `json:"label" bson:"label"`
	URL         string `json:"url" bson:"url"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	IsExternal  bool   `json:"isExternal,omitempty" bson:"isExternal,omitempty"`
}

// VisaCategoryDetails holds the published content for one visa category.
// Requirements, process and formalities are ordered; display numbering is
// derived from position.
type VisaCategoryDetails struct {
	Description  string          `json:"description" bson:"description"`
	Requirements []string        `json:"requirements" bson:"requirements"`
	Process      []string        `json:"process,omitempty" bson:"process,omitempty"`
	Formalities  []string        `json:"formalities,omitempty" bson:"formalities,omitempty"`
	Duration     string          `json:"duration,omitempty" bson:"duration,omitempty"`
	Cost         string          `json:"cost,omitempty" bson:"cost,omitempty"`
	Checklists   []ChecklistItem `json:"checklists,omitempty" bson:"checklists,omitempty"`
	Downloads    []DownloadItem  `json:"downloads,omitempty" bson:"downloads,omitempty"`
	PhotoSpecs   string          `json:"photoSpecs,omitempty" bson:"photoSpecs,omitempty"`
	Files        []File          `json:"files,omitempty" bson:"files,omitempty"`
}

// CountryData is one origin/destination entity. Formalities here are
// country-wide post-entry obligations, kept separate from the per-category
// formalities inside Visa.
type CountryData struct {
	Name        string                         `json:"name" bson:"name"`
	Code        string                         `json:"code" bson:"code"`
	Coordinates *Coordinates                   `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
	Visa        map[string]VisaCategoryDetails `json:"visa" bson:"visa"`
	Files       []File                         `json:"files,omitempty" bson:"files,omitempty"`
	Formalities []string                       `json:"formalities,omitempty" bson:"formalities,omitempty"`
	PhoneNumber string                         `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
}

// Categories returns the category identifiers present on this country,
// sorted for stable presentation.
func (c CountryData) Categories() []string {
	return sortedKeys(c.Visa)
}

// Selection is a completed origin/destination/category choice, produced by
// the selection flow and consumed once by the dossier resolver.
type Selection struct {
	OriginID        string `json:"originId"`
	OriginName      string `json:"originName"`
	DestinationID   string `json:"destinationId"`
	DestinationName string `json:"destinationName"`
	VisaType        string `json:"visaType"`
}
