package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"jobsweep/internal/config"
	"jobsweep/internal/domain"
)

// xlsxExporter writes a single-sheet workbook: header row, one row per
// record, same field order as the delimited schemes.
type xlsxExporter struct{}

const xlsxSheet = "Jobs"

func (xlsxExporter) Scheme() string    { return config.SchemeXLSX }
func (xlsxExporter) Extension() string { return ".xlsx" }

func (xlsxExporter) Encode(w io.Writer, fields []string, records []domain.Record) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for i, h := range fields {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(xlsxSheet, cell, h); err != nil {
			return err
		}
	}

	for r, rec := range records {
		for i, field := range fields {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(xlsxSheet, cell, fieldValue(rec, field)); err != nil {
				return err
			}
		}
	}

	return f.Write(w)
}
