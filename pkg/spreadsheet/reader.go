// Package spreadsheet reads tabular uploads (CSV or XLSX) into header-keyed rows.
package spreadsheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	FormatCSV  = ".csv"
	FormatXLSX = ".xlsx"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file type, provide CSV or Excel (.xlsx)")
	ErrEmptySheet        = errors.New("file has no header row")
)

// Row maps a normalized column name to its trimmed cell value.
type Row map[string]string

// Get returns the value of column, or "" when the column is absent.
func (r Row) Get(column string) string {
	return r[column]
}

// Table is a parsed spreadsheet.
type Table struct {
	Columns []string
	Rows    []Row
}

// MissingColumns returns the subset of required that the table lacks.
func (t Table) MissingColumns(required []string) []string {
	have := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		have[c] = true
	}
	var missing []string
	for _, c := range required {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// FormatOf returns the format implied by filename, or ErrUnsupportedFormat.
func FormatOf(filename string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case FormatCSV, FormatXLSX:
		return ext, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// Read parses r according to the extension of filename.
func Read(filename string, r io.Reader) (Table, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return Table{}, err
	}

	var records [][]string
	switch format {
	case FormatCSV:
		records, err = readCSV(r)
	case FormatXLSX:
		records, err = readXLSX(r)
	}
	if err != nil {
		return Table{}, err
	}
	return buildTable(records)
}

// NormalizeHeader trims, lower-cases and replaces spaces with underscores.
func NormalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return records, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}
	return rows, nil
}

func buildTable(records [][]string) (Table, error) {
	if len(records) == 0 {
		return Table{}, ErrEmptySheet
	}

	columns := make([]string, len(records[0]))
	for i, h := range records[0] {
		columns[i] = NormalizeHeader(h)
	}

	t := Table{Columns: columns}
	for _, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			if col == "" {
				continue
			}
			if i < len(rec) {
				row[col] = strings.TrimSpace(rec[i])
			} else {
				row[col] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
