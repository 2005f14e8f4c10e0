package export

import (
	"io"
	"strings"

	"jobsweep/internal/config"
	"jobsweep/internal/domain"
)

// Flat scheme tokens: fields within a record are joined by FieldDelimiter,
// records (header included) by RecordDelimiter. Values are not quoted, so
// the record delimiter is stripped out of every value before joining.
const (
	FieldDelimiter  = ":;:"
	RecordDelimiter = ","
)

// flatExporter emits the whole batch as a single line.
type flatExporter struct{}

func (flatExporter) Scheme() string    { return config.SchemeFlat }
func (flatExporter) Extension() string { return ".txt" }

func (flatExporter) Encode(w io.Writer, fields []string, records []domain.Record) error {
	chunks := make([]string, 0, len(records)+1)

	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = flatValue(f)
	}
	chunks = append(chunks, strings.Join(header, FieldDelimiter))

	row := make([]string, len(fields))
	for _, rec := range records {
		for i, f := range fields {
			row[i] = flatValue(fieldValue(rec, f))
		}
		chunks = append(chunks, strings.Join(row, FieldDelimiter))
	}

	_, err := io.WriteString(w, strings.Join(chunks, RecordDelimiter)+"\n")
	return err
}

// flatValue strips the record delimiter and falls back to the placeholder
// when nothing is left.
func flatValue(v string) string {
	v = strings.TrimSpace(strings.ReplaceAll(v, RecordDelimiter, ""))
	if v == "" {
		return domain.PlaceholderNotProvided
	}
	return v
}
