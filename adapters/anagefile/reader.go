package anagefile

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"longstat/domain/anage"
	"longstat/domain/core"
)

// DataReader loads the AnAge table from tab-separated, comma-separated or
// Excel files. The file extension selects the decoder; unknown extensions
// fall back to delimiter sniffing on the header line.
type DataReader struct {
	filePath string
	fileType string // "txt", "csv", "xlsx" or "auto"
}

// NewDataReader creates a data reader for the given path
func NewDataReader(filePath string) *DataReader {
	fileType := "auto"
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".csv":
		fileType = "csv"
	case ".xlsx":
		fileType = "xlsx"
	case ".txt", ".tsv":
		fileType = "txt"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// Source returns the configured file path
func (r *DataReader) Source() string {
	return r.filePath
}

// Read loads, validates and types the dataset. The whole file is read once:
// the same bytes feed the parser and the dataset fingerprint. The context
// is accepted for port symmetry; reads are one-shot and never awaited.
func (r *DataReader) Read(ctx context.Context) (*anage.Dataset, error) {
	log.Printf("[DataReader] Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("dataset file not found: %s", r.filePath)
	}

	startTime := time.Now()
	raw, err := os.ReadFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	log.Printf("[DataReader] %d bytes read in %.2fms", len(raw), float64(time.Since(startTime).Nanoseconds())/1e6)

	var rows [][]string
	switch r.fileType {
	case "xlsx":
		rows, err = r.decodeExcel(raw)
	case "csv":
		rows, err = r.decodeDelimited(raw, ',')
	case "txt":
		rows, err = r.decodeDelimited(raw, '\t')
	default:
		rows, err = r.decodeDelimited(raw, sniffDelimiter(raw))
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, core.ErrEmptyDataset
	}

	ds, err := r.processRows(rows)
	if err != nil {
		return nil, err
	}
	ds.SourcePath = r.filePath
	ds.Fingerprint = core.NewDatasetFingerprint(raw)

	log.Printf("[DataReader] %s file processed (%d columns, %d records)",
		strings.ToUpper(r.fileType), len(ds.Columns), ds.Len())
	return ds, nil
}

// decodeExcel reads the first sheet of a workbook into string rows
func (r *DataReader) decodeExcel(raw []byte) ([][]string, error) {
	startTime := time.Now()
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, core.ErrEmptyDataset
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	log.Printf("[DataReader] sheet %q read in %.2fms (%d rows)",
		sheets[0], float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

// decodeDelimited parses CSV or TSV bytes. Ragged rows are tolerated and
// lazy quoting handles the stray quotes the references column carries.
func (r *DataReader) decodeDelimited(raw []byte, comma rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse delimited data: %w", err)
	}
	return rows, nil
}

// sniffDelimiter picks tab or comma by whichever splits the header line
// into more fields, preferring the dataset's native tab on a tie
func sniffDelimiter(raw []byte) rune {
	header := raw
	if i := bytes.IndexByte(raw, '\n'); i >= 0 {
		header = raw[:i]
	}
	if bytes.Count(header, []byte{'\t'}) >= bytes.Count(header, []byte{','}) {
		return '\t'
	}
	return ','
}

// processRows validates the header and types every data row
func (r *DataReader) processRows(rows [][]string) (*anage.Dataset, error) {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	index := make(map[string]int, len(headers))
	for i, header := range headers {
		if _, seen := index[header]; !seen {
			index[header] = i
		}
	}

	var missing []string
	for _, col := range anage.RequiredColumns() {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, core.NewMissingColumnsError(missing)
	}

	records := make([]anage.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := anage.NewRecord()
		rec.HAGRID = cellAt(row, index, anage.ColHAGRID)
		rec.Kingdom = cellAt(row, index, anage.ColKingdom)
		rec.Class = anage.Class(cellAt(row, index, anage.ColClass))
		rec.Order = cellAt(row, index, anage.ColOrder)
		rec.Family = cellAt(row, index, anage.ColFamily)
		rec.Genus = cellAt(row, index, anage.ColGenus)
		rec.Species = cellAt(row, index, anage.ColSpecies)
		rec.CommonName = cellAt(row, index, anage.ColCommonName)
		rec.DataQuality = cellAt(row, index, anage.ColDataQuality)
		rec.SpecimenOrigin = cellAt(row, index, anage.ColSpecimenOrigin)
		rec.LongevityYears = numericAt(row, index, anage.ColMaxLongevity)
		rec.AdultWeightG = numericAt(row, index, anage.ColAdultWeight)
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, core.ErrEmptyDataset
	}

	return &anage.Dataset{Columns: headers, Records: records}, nil
}

// cellAt returns the trimmed cell under a column, empty when the row is
// shorter than the header
func cellAt(row []string, index map[string]int, column string) string {
	i, ok := index[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// numericAt parses a numeric cell; empty and malformed cells load as missing
func numericAt(row []string, index map[string]int, column string) float64 {
	cell := cellAt(row, index, column)
	if cell == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
