package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ============================================================================
// SCHEMA — Describes the shape of an article snapshot
// ============================================================================
// Auto-discovered from the CSV header and rows. The loader uses it to decide
// which columns are numeric (Measures) and which are text (Dimensions), and
// to check that the filterable columns exist.
// ============================================================================

// ErrMissingColumn is returned when a required column is absent.
var ErrMissingColumn = errors.New("required column missing")

// Kind is the inferred type of a column.
type Kind string

const (
	KindText    Kind = "text"
	KindNumeric Kind = "numeric"
)

// Config describes the complete shape of a dataset.
type Config struct {
	Name      string       `json:"name"`
	Version   string       `json:"version,omitempty"`
	Delimiter string       `json:"delimiter"`
	Columns   []ColumnMeta `json:"columns"`
	Rows      int          `json:"rows"`

	// Auto-discovery metadata
	DiscoveredFrom string `json:"discoveredFrom,omitempty"`
	DiscoveredAt   string `json:"discoveredAt,omitempty"`
}

// ColumnMeta describes one column of the snapshot.
type ColumnMeta struct {
	Key             string   `json:"key"` // header as written, trimmed
	DisplayName     string   `json:"displayName"`
	Index           int      `json:"index"`
	Kind            Kind     `json:"kind"`
	SampleValues    []string `json:"sampleValues"`
	UniqueCount     int      `json:"uniqueCount"`
	NullCount       int      `json:"nullCount"`
	IsTemporal      bool     `json:"isTemporal,omitempty"`
	TemporalFormat  string   `json:"temporalFormat,omitempty"`
	CardinalityHint string   `json:"cardinalityHint,omitempty"` // "low", "medium", "high"
	Forced          bool     `json:"forced,omitempty"`          // kind pinned by DiscoverOptions.TextColumns
}

// Column finds a column by key.
func (c Config) Column(key string) (ColumnMeta, bool) {
	for _, col := range c.Columns {
		if col.Key == key {
			return col, true
		}
	}
	return ColumnMeta{}, false
}

// Keys returns all column keys in header order.
func (c Config) Keys() []string {
	keys := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		keys[i] = col.Key
	}
	return keys
}

// NumericKeys returns the numeric column keys.
func (c Config) NumericKeys() []string {
	var keys []string
	for _, col := range c.Columns {
		if col.Kind == KindNumeric {
			keys = append(keys, col.Key)
		}
	}
	return keys
}

// TextKeys returns the text column keys.
func (c Config) TextKeys() []string {
	var keys []string
	for _, col := range c.Columns {
		if col.Kind == KindText {
			keys = append(keys, col.Key)
		}
	}
	return keys
}

// DelimiterRune returns the field separator, ',' when unset.
func (c Config) DelimiterRune() rune {
	if c.Delimiter == "" {
		return ','
	}
	return []rune(c.Delimiter)[0]
}

// RequireColumns checks that every key is present.
func (c Config) RequireColumns(keys ...string) error {
	var missing []string
	for _, k := range keys {
		if _, ok := c.Column(k); !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s (have %s)", ErrMissingColumn,
			strings.Join(missing, ", "), strings.Join(c.Keys(), ", "))
	}
	return nil
}
