// Package extract implements the Extractor interface.
// It locates the listings table in an actioneer snapshot and walks its
// rows, pulling each field through a chain of selectors:
//  1. Primary selector path (the layout the page normally has)
//  2. Fallback path (alternate class or attribute)
//  3. Empty string when both miss — a missing field never aborts a row.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kaiosilva-dataeng/warmane-trade/core"
)

// ErrNoTable reports that the document has no listings table at all.
// This is the single fatal extraction condition; everything else
// degrades to empty fields per row.
var ErrNoTable = errors.New("listings table not found in document")

// dataKeys are the data-attributes carried by a listing row (or its
// shop-search button, depending on page version).
var dataKeys = [...]string{"data-entry", "data-id", "data-name", "data-type"}

// ListingExtractor pulls listing records out of raw actioneer HTML.
type ListingExtractor struct{}

// New creates a ListingExtractor.
func New() *ListingExtractor {
	return &ListingExtractor{}
}

// Extract parses raw HTML and returns one record per listing row, in
// document order. Rows whose extracted name is empty (headers, spacers)
// are skipped. Malformed but tokenizable HTML is parsed best-effort.
func (e *ListingExtractor) Extract(html string) ([]core.ListingRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := findTable(doc)
	if table == nil {
		return nil, ErrNoTable
	}

	var records []core.ListingRecord
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		rec := extractRow(row)
		if rec.Name == "" {
			return
		}
		records = append(records, rec)
	})
	return records, nil
}

// findTable locates the listings table: the known #data-table id first,
// then the first table that actually has body rows.
func findTable(doc *goquery.Document) *goquery.Selection {
	table := doc.Find("#data-table").First()
	if table.Length() > 0 {
		return table
	}

	table = doc.Find("table").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Find("tbody tr").Length() > 0
	}).First()
	if table.Length() > 0 {
		return table
	}
	return nil
}

// extractRow pulls every field from a single row independently.
func extractRow(row *goquery.Selection) core.ListingRecord {
	name, quantity := nameAndQuantity(row)

	// Duration and seller sit in the two centered cells, in that order.
	centered := row.Find(`td[align='center']`)

	rec := core.ListingRecord{
		ImageURL: attrChain(row.Find(".iconAndQuantity img").First(), "src", "data-src"),
		Name:     name,
		Quantity: quantity,
		Duration: cleanText(centered.Eq(0).Text()),
		Seller:   cleanText(centered.Eq(1).Text()),
		Faction:  cleanText(row.Find(".factionEmblem").First().Text()),
		Price:    price(row),
	}

	values := dataAttrs(row)
	rec.DataEntry = values["data-entry"]
	rec.DataID = values["data-id"]
	rec.DataName = values["data-name"]
	rec.DataType = values["data-type"]
	return rec
}

// nameAndQuantity splits the .name cell into the item name and its
// quantity suffix. The quantity lives in a .numeric child; the name is
// the cell text with the quantity removed. When that leaves nothing,
// fall back to the item link's text.
func nameAndQuantity(row *goquery.Selection) (string, string) {
	cell := row.Find(".name").First()
	if cell.Length() == 0 {
		return "", ""
	}

	quantity := cleanText(cell.Find(".numeric").First().Text())
	name := stripQuantity(cleanText(cell.Text()), quantity)

	if name == "" {
		link := cleanText(cell.Find("a").First().Text())
		if link != "" && link != quantity {
			name = stripQuantity(link, quantity)
		}
	}
	return name, quantity
}

func stripQuantity(text, quantity string) string {
	if quantity == "" {
		return text
	}
	return cleanText(strings.ReplaceAll(text, quantity, ""))
}

// price reads the numeric cost and appends the coin label the page
// renders as an icon.
func price(row *goquery.Selection) string {
	value := cleanText(row.Find(".costValues .numeric").First().Text())
	if value == "" {
		return ""
	}
	return value + " coins"
}

// dataAttrs reads the data-* attributes, preferring the row element
// itself and falling back to its shop-search button.
func dataAttrs(row *goquery.Selection) map[string]string {
	button := row.Find(".wm-ui-btn-shop-search").First()

	values := make(map[string]string, len(dataKeys))
	for _, key := range dataKeys {
		if v, ok := row.Attr(key); ok {
			values[key] = cleanText(v)
			continue
		}
		if v, ok := button.Attr(key); ok {
			values[key] = cleanText(v)
			continue
		}
		values[key] = ""
	}
	return values
}

// attrChain returns the first non-empty attribute from the given keys.
func attrChain(sel *goquery.Selection, keys ...string) string {
	for _, key := range keys {
		if v, ok := sel.Attr(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// cleanText trims surrounding whitespace and collapses internal runs
// to a single space.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
