package helpers

import (
	"fmt"
	"io"

	"github.com/spektr-org/newsdash/engine"
	"github.com/spektr-org/newsdash/schema"
)

// ============================================================================
// CSV HELPER — Parses CSV data into []engine.Record
// ============================================================================
// The loader reads the snapshot from wherever it lives (file, S3).
// This helper converts the raw bytes into generic Records using the schema:
// numeric columns become Measures, everything else Dimensions.
// Null cells are left out of the record entirely. Forced text columns
// (category, source) only treat blank cells as null: a literal "NA" stays.
// ============================================================================

// ParseCSV parses CSV bytes into Records using sch for classification.
func ParseCSV(data []byte, sch schema.Config) ([]engine.Record, error) {
	reader := schema.NewReader(data, sch.DelimiterRune())

	// Read header
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	if len(headers) != len(sch.Columns) {
		return nil, fmt.Errorf("header has %d columns, schema has %d", len(headers), len(sch.Columns))
	}

	type colMapping struct {
		key       string
		isMeasure bool
		literal   bool
	}
	mappings := make([]colMapping, len(sch.Columns))
	for _, col := range sch.Columns {
		mappings[col.Index] = colMapping{key: col.Key, isMeasure: col.Kind == schema.KindNumeric, literal: col.Forced}
	}

	// Read rows
	var records []engine.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}

		rec := engine.Record{
			Dimensions: make(map[string]string, len(mappings)),
			Measures:   make(map[string]float64),
		}

		for i, val := range row {
			if i >= len(mappings) {
				break
			}
			m := mappings[i]
			if schema.IsMissing(val, m.literal) {
				continue
			}
			if m.isMeasure {
				if f, ok := schema.ParseNumber(val); ok {
					rec.Measures[m.key] = f
				}
				continue
			}
			rec.Dimensions[m.key] = val
		}

		records = append(records, rec)
	}

	return records, nil
}

// ParseCSVView parses CSV into a RecordView that keeps the header order.
func ParseCSVView(data []byte, sch schema.Config) (engine.RecordView, error) {
	records, err := ParseCSV(data, sch)
	if err != nil {
		return nil, err
	}
	return NewView(records, sch), nil
}

// ParseCSVAutoView discovers the schema, then parses. Columns named in
// textColumns are always text.
func ParseCSVAutoView(data []byte, delimiter rune, textColumns ...string) (engine.RecordView, *schema.Config, error) {
	sch, err := schema.DiscoverFromCSV(data, schema.DiscoverOptions{
		Delimiter:   delimiter,
		TextColumns: textColumns,
	})
	if err != nil {
		return nil, nil, err
	}
	view, err := ParseCSVView(data, *sch)
	if err != nil {
		return nil, nil, err
	}
	return view, sch, nil
}

// NewView wraps records with the schema's header order.
func NewView(records []engine.Record, sch schema.Config) engine.RecordView {
	return engine.NewSliceView(records, sch.Keys()...)
}
