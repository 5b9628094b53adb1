package schema

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ============================================================================
// AUTO-DISCOVERY — Column Kind Inference
// ============================================================================
// Inspects raw CSV and generates a schema.Config automatically.
//
// Classification pipeline per column:
//   1. Drop null tokens ("", null, NULL, N/A, n/a, NA, NaN, nan)
//   2. Numeric iff every remaining value parses as a float
//   3. Text columns are checked for date/month patterns (informational)
//   4. Cardinality hint from the distinct count
//
// Text stays text. No value is coerced.
// ============================================================================

// DiscoverOptions controls discovery behavior.
type DiscoverOptions struct {
	SampleSize  int      // Max rows to inspect (0 = all)
	Delimiter   rune     // Field separator (0 = ',')
	TextColumns []string // Columns always classified as text
	Name        string   // Dataset name override
}

// DefaultDiscoverOptions returns sensible defaults.
func DefaultDiscoverOptions() DiscoverOptions {
	return DiscoverOptions{Delimiter: ','}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// NewReader returns a csv.Reader over data that tolerates ragged rows and
// skips a leading UTF-8 byte order mark.
func NewReader(data []byte, delimiter rune) *csv.Reader {
	data = bytes.TrimPrefix(data, utf8BOM)
	reader := csv.NewReader(bytes.NewReader(data))
	if delimiter != 0 {
		reader.Comma = delimiter
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}

// DiscoverFromCSV generates a schema.Config by inspecting CSV data.
func DiscoverFromCSV(data []byte, opts ...DiscoverOptions) (*Config, error) {
	opt := DefaultDiscoverOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.Delimiter == 0 {
		opt.Delimiter = ','
	}

	reader := NewReader(data, opt.Delimiter)

	// 1. Read headers
	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("CSV is empty")
		}
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	if len(headers) == 0 || (len(headers) == 1 && strings.TrimSpace(headers[0]) == "") {
		return nil, fmt.Errorf("CSV has no columns")
	}

	// 2. Read rows
	var rows [][]string
	for opt.SampleSize <= 0 || len(rows) < opt.SampleSize {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		rows = append(rows, row)
	}

	forced := make(map[string]bool, len(opt.TextColumns))
	for _, c := range opt.TextColumns {
		forced[c] = true
	}

	// 3. Analyze each column
	config := &Config{
		Name:           opt.Name,
		Version:        "1.0",
		Delimiter:      string(opt.Delimiter),
		Rows:           len(rows),
		DiscoveredFrom: "CSV",
		DiscoveredAt:   time.Now().Format(time.RFC3339),
	}
	if config.Name == "" {
		config.Name = "Article snapshot"
	}

	seen := make(map[string]int)
	for i, header := range headers {
		key := strings.TrimSpace(header)
		if key == "" {
			key = fmt.Sprintf("column_%d", i+1)
		}
		// Duplicate headers get a suffix, first one keeps its name.
		if n := seen[key]; n > 0 {
			seen[key] = n + 1
			key = fmt.Sprintf("%s.%d", key, n)
		} else {
			seen[key] = 1
		}
		config.Columns = append(config.Columns, analyzeColumn(key, i, rows, forced[key]))
	}

	return config, nil
}

// ============================================================================
// COLUMN ANALYSIS
// ============================================================================

// analyzeColumn inspects all values in a column and classifies it.
func analyzeColumn(key string, index int, rows [][]string, forceText bool) ColumnMeta {
	col := ColumnMeta{
		Key:         key,
		DisplayName: toDisplayName(key),
		Index:       index,
		Kind:        KindText,
		Forced:      forceText,
	}

	values := make([]string, 0, len(rows))
	uniqueSet := make(map[string]bool)
	for _, row := range rows {
		if index >= len(row) || IsMissing(row[index], forceText) {
			col.NullCount++
			continue
		}
		val := strings.TrimSpace(row[index])
		values = append(values, val)
		uniqueSet[val] = true
	}

	col.UniqueCount = len(uniqueSet)
	col.SampleValues = collectSamples(uniqueSet, 10)

	switch {
	case col.UniqueCount <= 10:
		col.CardinalityHint = "low"
	case col.UniqueCount <= 100:
		col.CardinalityHint = "medium"
	default:
		col.CardinalityHint = "high"
	}

	if len(values) == 0 {
		return col
	}

	if !forceText && allNumeric(values) {
		col.Kind = KindNumeric
		return col
	}

	col.IsTemporal, col.TemporalFormat = detectTemporal(col.SampleValues)
	return col
}

// ============================================================================
// TYPE DETECTION
// ============================================================================

var nullTokens = map[string]bool{
	"": true, "null": true, "NULL": true, "N/A": true, "n/a": true,
	"NA": true, "NaN": true, "nan": true,
}

// IsNull reports whether a raw cell counts as missing.
func IsNull(s string) bool {
	return nullTokens[strings.TrimSpace(s)]
}

// IsMissing reports whether a cell is missing. literal columns keep null
// tokens as text and only count blank cells as missing.
func IsMissing(s string, literal bool) bool {
	if literal {
		return strings.TrimSpace(s) == ""
	}
	return IsNull(s)
}

// ParseNumber parses a numeric cell. Only plain decimal/scientific notation
// is accepted; no currency symbols or thousands separators.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if IsNull(s) {
		return 0, false
	}
	lower := strings.ToLower(strings.TrimLeft(s, "+-"))
	if strings.HasPrefix(lower, "inf") || strings.HasPrefix(lower, "0x") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func allNumeric(values []string) bool {
	for _, v := range values {
		if _, ok := ParseNumber(v); !ok {
			return false
		}
	}
	return true
}

var dateFormats = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"02/01/2006",
	"01/02/2006",
	"02/01/2006 15:04",
	"Jan 2, 2006",
	"2 Jan 2006",
}

func isDate(s string) bool {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

var monthPatterns = []struct {
	re     *regexp.Regexp
	format string
}{
	{regexp.MustCompile(`^[A-Z][a-z]{2}-\d{4}$`), "MMM-yyyy"}, // Jan-2026
	{regexp.MustCompile(`^\d{4}-\d{2}$`), "yyyy-MM"},          // 2026-01
	{regexp.MustCompile(`^[A-Z][a-z]+ \d{4}$`), "MMMM yyyy"},  // January 2026
}

// detectTemporal checks whether at least 80% of samples look like dates.
func detectTemporal(samples []string) (bool, string) {
	if len(samples) == 0 {
		return false, ""
	}

	threshold := 0.8 * float64(len(samples))

	dates := 0
	for _, s := range samples {
		if isDate(s) {
			dates++
		}
	}
	if float64(dates) >= threshold {
		return true, "date"
	}

	for _, pattern := range monthPatterns {
		matches := 0
		for _, s := range samples {
			if pattern.re.MatchString(strings.TrimSpace(s)) {
				matches++
			}
		}
		if float64(matches) >= threshold {
			return true, pattern.format
		}
	}
	return false, ""
}

// ============================================================================
// STRING UTILITIES
// ============================================================================

// toDisplayName cleans a header for human display.
// "published_at" → "Published At", "Category" → "Category"
func toDisplayName(s string) string {
	if strings.Contains(s, " ") {
		return strings.TrimSpace(s)
	}

	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")

	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// collectSamples picks up to maxSamples representative values.
func collectSamples(uniqueSet map[string]bool, maxSamples int) []string {
	samples := make([]string, 0, len(uniqueSet))
	for v := range uniqueSet {
		samples = append(samples, v)
	}

	// Sort for deterministic output
	sort.Strings(samples)

	if len(samples) > maxSamples {
		samples = samples[:maxSamples]
	}
	return samples
}
