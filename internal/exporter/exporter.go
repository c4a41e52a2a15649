package exporter

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrNoDataToExport means export was requested with an empty row list.
var ErrNoDataToExport = errors.New("no table data provided")

const sheetName = "Sheet1"

// Encode serializes rows into a single-sheet .xlsx workbook. The header row
// is the first row's keys in their original order; every later row is laid
// out in that same order, with cells left blank for keys the row lacks.
// Keys appearing only in later rows are not exported.
func Encode(rows []Row) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrNoDataToExport
	}

	f := excelize.NewFile()
	defer f.Close()

	header := rows[0].Keys
	headerCells := make([]interface{}, len(header))
	for i, key := range header {
		headerCells[i] = key
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerCells); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		cells := make([]interface{}, len(header))
		for j, key := range header {
			cells[j] = cellValue(row.Values[key])
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, addr, &cells); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// cellValue maps a decoded JSON value onto an excelize-friendly cell value.
// Absent keys come through as nil and render as blank cells.
func cellValue(v interface{}) interface{} {
	switch val := v.(type) {
	case nil:
		return nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case string, bool, float64, int, int64:
		return val
	default:
		// nested arrays/objects degrade to their JSON text
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}
