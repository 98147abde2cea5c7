package render

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/kaiosilva-dataeng/warmane-trade/core"
)

func TestRender_HeaderAndRowCount(t *testing.T) {
	records := []core.ListingRecord{
		{Name: "Iron Ore", Quantity: "x5", Price: "1 250 coins"},
		{Name: "Copper Bar", Seller: "Grommash"},
	}

	data, err := NewCSVRenderer().Render(records)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("reading rendered CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d rows", len(rows))
	}

	if got, want := strings.Join(rows[0], ","), strings.Join(core.Header, ","); got != want {
		t.Fatalf("header = %q, want %q", got, want)
	}
	for i, row := range rows {
		if len(row) != len(core.Header) {
			t.Fatalf("row %d has %d columns, want %d", i, len(row), len(core.Header))
		}
	}
	if rows[1][1] != "Iron Ore" || rows[2][1] != "Copper Bar" {
		t.Fatalf("record order not preserved: %v / %v", rows[1], rows[2])
	}
}

func TestRender_QuotesEmbeddedCommasAndQuotes(t *testing.T) {
	records := []core.ListingRecord{
		{Name: `Sword of "Truth", Blessed`, Seller: "a,b"},
	}

	data, err := NewCSVRenderer().Render(records)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("reading rendered CSV: %v", err)
	}
	if rows[1][1] != `Sword of "Truth", Blessed` {
		t.Fatalf("name did not round-trip: %q", rows[1][1])
	}
	if rows[1][4] != "a,b" {
		t.Fatalf("seller did not round-trip: %q", rows[1][4])
	}
}

func TestRender_EmptyInputStillHasHeader(t *testing.T) {
	data, err := NewCSVRenderer().Render(nil)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("reading rendered CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}

func TestExtension(t *testing.T) {
	if got := NewCSVRenderer().Extension(); got != ".csv" {
		t.Fatalf("Extension = %q, want .csv", got)
	}
}
