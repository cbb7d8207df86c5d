package testkit

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"longstat/domain/anage"
)

// WriteTSV serializes a dataset in the AnAge native tab-separated layout
func WriteTSV(path string, ds *anage.Dataset) error {
	return writeDelimited(path, ds, '\t')
}

// WriteCSV serializes a dataset as comma-separated values
func WriteCSV(path string, ds *anage.Dataset) error {
	return writeDelimited(path, ds, ',')
}

func writeDelimited(path string, ds *anage.Dataset, comma rune) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = comma
	defer w.Flush()

	if err := w.Write(ds.Columns); err != nil {
		return err
	}
	for _, rec := range ds.Records {
		if err := w.Write(recordRow(ds.Columns, rec)); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteXLSX serializes a dataset as a single-sheet workbook
func WriteXLSX(path string, ds *anage.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return err
		}
		f.SetActiveSheet(idx)
	}

	for i, header := range ds.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for r, rec := range ds.Records {
		row := recordRow(ds.Columns, rec)
		for c, v := range row {
			if v == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

// recordRow projects a record onto the given column layout; columns the
// record does not carry stay empty, as they do in the published table
func recordRow(columns []string, rec anage.Record) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		switch col {
		case anage.ColHAGRID:
			row[i] = rec.HAGRID
		case anage.ColKingdom:
			row[i] = rec.Kingdom
		case anage.ColClass:
			row[i] = string(rec.Class)
		case anage.ColOrder:
			row[i] = rec.Order
		case anage.ColFamily:
			row[i] = rec.Family
		case anage.ColGenus:
			row[i] = rec.Genus
		case anage.ColSpecies:
			row[i] = rec.Species
		case anage.ColCommonName:
			row[i] = rec.CommonName
		case anage.ColDataQuality:
			row[i] = rec.DataQuality
		case anage.ColSpecimenOrigin:
			row[i] = rec.SpecimenOrigin
		case anage.ColMaxLongevity:
			row[i] = formatCell(rec.LongevityYears)
		case anage.ColAdultWeight:
			row[i] = formatCell(rec.AdultWeightG)
		}
	}
	return row
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
