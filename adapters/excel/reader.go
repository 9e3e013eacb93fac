// Package excel loads the context bank and the worksheet master source
// from xlsx workbooks, with a CSV fallback for hand-edited data.
package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"questgen/internal"
)

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	logger   *internal.Logger
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{
		filePath: filePath,
		fileType: fileType,
		logger:   internal.DefaultLogger.WithTag("DataReader"),
	}
}

// Exists reports whether the underlying file is present
func (r *DataReader) Exists() bool {
	_, err := os.Stat(r.filePath)
	return err == nil
}

// Path returns the file path the reader was created for
func (r *DataReader) Path() string { return r.filePath }

// ReadSheet reads one sheet into headers plus header-keyed rows. For CSV
// files the sheet name is ignored because the file is the only sheet.
func (r *DataReader) ReadSheet(sheet string) (*SheetData, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVSheet()
	case "xlsx":
		return r.readExcelSheet(sheet)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

// HasSheet reports whether the workbook carries the named sheet. CSV files
// act as a single unnamed sheet and always report true.
func (r *DataReader) HasSheet(sheet string) bool {
	if r.fileType == "csv" {
		return true
	}
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return false
	}
	defer f.Close()
	idx, err := f.GetSheetIndex(sheet)
	return err == nil && idx >= 0
}

func (r *DataReader) readExcelSheet(sheet string) (*SheetData, error) {
	start := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	r.logger.Debug("sheet %s read in %.2fms (%d rows)", sheet, float64(time.Since(start).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %s must have at least a header row and one data row", sheet)
	}
	return r.processRows(sheet, rows), nil
}

func (r *DataReader) readCSVSheet() (*SheetData, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("CSV file must have at least a header row and one data row")
	}
	return r.processRows(filepath.Base(r.filePath), rows), nil
}

// processRows converts raw string rows into header-keyed maps
func (r *DataReader) processRows(sheet string, rows [][]string) *SheetData {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	var dataRows []RawRowData
	var lines []int
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}
		rowData := make(RawRowData)
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
		lines = append(lines, i+1)
	}

	r.logger.Debug("%s processed (%d columns, %d rows)", sheet, len(headers), len(dataRows))
	return &SheetData{Sheet: sheet, Headers: headers, Rows: dataRows, Lines: lines}
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
