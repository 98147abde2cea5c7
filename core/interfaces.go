// Package core defines the pipeline types and interfaces for warmane-trade.
// Each stage of the pipeline is a clean, testable interface.
package core

// ListingRecord is one auction listing row extracted from the HTML table.
// Every field is always present; a field the source row does not carry is
// the empty string, never absent, so CSV output stays rectangular.
type ListingRecord struct {
	ImageURL string
	Name     string
	Quantity string
	Duration string
	Seller   string
	Faction  string
	Price    string

	// Data attributes carried on the row (or its shop-search button).
	DataEntry string
	DataID    string
	DataName  string
	DataType  string
}

// Fields returns the record's values in canonical column order.
func (r ListingRecord) Fields() []string {
	return []string{
		r.ImageURL,
		r.Name,
		r.Quantity,
		r.Duration,
		r.Seller,
		r.Faction,
		r.Price,
		r.DataEntry,
		r.DataID,
		r.DataName,
		r.DataType,
	}
}

// Header is the canonical CSV column order, matching Fields.
var Header = []string{
	"image_url", "name", "quantity", "duration", "seller", "faction",
	"price", "data_entry", "data_id", "data_name", "data_type",
}

// Extractor pulls listing records from raw HTML in document order.
type Extractor interface {
	Extract(html string) ([]ListingRecord, error)
}

// Renderer converts listing records into a final output format.
type Renderer interface {
	Render(records []ListingRecord) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".csv").
	Extension() string
}
