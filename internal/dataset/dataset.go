package dataset

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"realestate-analyzer/internal/models"

	"github.com/xuri/excelize/v2"
)

// Store is the read-only record set every request filters against.
// It is populated once before the first request and never mutated after.
type Store struct {
	records []models.Record
	areas   []string // unique area names in first-seen order
	byArea  map[string][]models.Record
}

// New builds a Store from a record slice, preserving input order.
func New(records []models.Record) *Store {
	s := &Store{
		byArea: make(map[string][]models.Record),
	}
	for _, r := range records {
		s.records = append(s.records, r)
		key := strings.ToLower(r.Area)
		if _, seen := s.byArea[key]; !seen {
			s.areas = append(s.areas, r.Area)
		}
		s.byArea[key] = append(s.byArea[key], r)
	}
	return s
}

// NewFromSeed builds a Store from the built-in sample records.
func NewFromSeed() *Store {
	return New(seedRecords())
}

// Load reads an .xlsx dataset file. Sheet may be empty to use the first sheet.
func Load(path, sheet string) (*Store, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return fromWorkbook(f, sheet)
}

// LoadReader reads an .xlsx dataset from a stream, e.g. a request upload.
func LoadReader(r io.Reader, sheet string) (*Store, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return fromWorkbook(f, sheet)
}

func fromWorkbook(f *excelize.File, sheet string) (*Store, error) {
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	header := rows[0]
	areaCol := findColumn(header, "area", "local", "location")
	yearCol := findColumn(header, "year")
	priceCol := findColumn(header, "weighted average rate", "avg price", "price")
	demandCol := findColumn(header, "total sold", "total_sales", "demand")
	if areaCol < 0 || yearCol < 0 {
		return nil, fmt.Errorf("sheet %q is missing an area or year column", sheet)
	}

	var records []models.Record
	for _, row := range rows[1:] {
		area := cell(row, areaCol)
		if area == "" {
			continue
		}
		year, err := parseYear(cell(row, yearCol))
		if err != nil {
			continue
		}
		rec := models.Record{Area: area, Year: year}
		if priceCol >= 0 {
			rec.Price, _ = strconv.ParseFloat(cell(row, priceCol), 64)
		}
		if demandCol >= 0 {
			rec.Demand, _ = strconv.ParseFloat(cell(row, demandCol), 64)
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("sheet %q yielded no usable records", sheet)
	}
	return New(records), nil
}

// findColumn returns the index of the first header cell containing any
// candidate, case-insensitive. Candidates are checked in priority order.
func findColumn(header []string, candidates ...string) int {
	for _, cand := range candidates {
		for i, h := range header {
			if strings.Contains(strings.ToLower(h), cand) {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseYear accepts both "2021" and spreadsheet-style "2021.0".
func parseYear(s string) (int, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// Areas lists unique area names in dataset order.
func (s *Store) Areas() []string {
	return s.areas
}

// ForArea returns the records for an area, matched case-insensitively.
func (s *Store) ForArea(name string) []models.Record {
	return s.byArea[strings.ToLower(name)]
}

// Len reports the total record count.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns the full record set in dataset order.
func (s *Store) Records() []models.Record {
	return s.records
}
