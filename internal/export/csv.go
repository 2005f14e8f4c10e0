package export

import (
	"encoding/csv"
	"io"

	"jobsweep/internal/config"
	"jobsweep/internal/domain"
)

// csvExporter is the standard delimited scheme: header line, one record per
// line, conventional quoting handled by encoding/csv.
type csvExporter struct{}

func (csvExporter) Scheme() string    { return config.SchemeCSV }
func (csvExporter) Extension() string { return ".csv" }

func (csvExporter) Encode(w io.Writer, fields []string, records []domain.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(fields); err != nil {
		return err
	}

	row := make([]string, len(fields))
	for _, rec := range records {
		for i, f := range fields {
			row[i] = fieldValue(rec, f)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
