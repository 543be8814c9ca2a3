package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"snack-insights-go/internal/logger"
	"snack-insights-go/internal/types"
)

// SchemaError reports a required column missing from the source header.
// This is a configuration problem, not a data problem: the load fails fast
// instead of skipping rows.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset schema: required column %q not found", e.Column)
}

// Accepted header spellings per logical column, matched lowercase/trimmed.
// Open Food Facts exports use the *_100g forms; "brands" is their brand column.
var columnAliases = map[string][]string{
	"brand_name":      {"brand_name", "brands", "brand"},
	"product_name":    {"product_name", "name"},
	"sugars_100g":     {"sugars_100g", "sugars"},
	"proteins_100g":   {"proteins_100g", "proteins"},
	"salt_100g":       {"salt_100g", "salt"},
	"categories_tags": {"categories_tags", "categories"},
}

type columnIndex struct {
	brand, name, sugars, proteins, salt, categories int
}

// resolveHeader maps the header row to column positions. Every logical
// column must resolve or the whole load fails with a *SchemaError.
func resolveHeader(header []string) (columnIndex, error) {
	pos := map[string]int{}
	for i, h := range header {
		pos[strings.ToLower(strings.TrimSpace(h))] = i
	}
	find := func(logical string) (int, error) {
		for _, alias := range columnAliases[logical] {
			if i, ok := pos[alias]; ok {
				return i, nil
			}
		}
		return -1, &SchemaError{Column: logical}
	}

	var idx columnIndex
	var err error
	if idx.brand, err = find("brand_name"); err != nil {
		return idx, err
	}
	if idx.name, err = find("product_name"); err != nil {
		return idx, err
	}
	if idx.sugars, err = find("sugars_100g"); err != nil {
		return idx, err
	}
	if idx.proteins, err = find("proteins_100g"); err != nil {
		return idx, err
	}
	if idx.salt, err = find("salt_100g"); err != nil {
		return idx, err
	}
	if idx.categories, err = find("categories_tags"); err != nil {
		return idx, err
	}
	return idx, nil
}

func cell(row []string, i int) string {
	if i >= 0 && i < len(row) {
		return row[i]
	}
	return ""
}

func toRecords(rows [][]string) ([]types.RawProduct, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty dataset: no header row")
	}
	idx, err := resolveHeader(rows[0])
	if err != nil {
		return nil, err
	}
	out := make([]types.RawProduct, 0, len(rows)-1)
	for _, r := range rows[1:] {
		out = append(out, types.RawProduct{
			Brand:          cell(r, idx.brand),
			Name:           cell(r, idx.name),
			Sugars:         cell(r, idx.sugars),
			Proteins:       cell(r, idx.proteins),
			Salt:           cell(r, idx.salt),
			CategoriesTags: cell(r, idx.categories),
		})
	}
	return out, nil
}

// Load reads the product dataset at path into raw records. CSV and XLSX are
// supported; the format is picked by extension, defaulting to CSV.
func Load(path string) ([]types.RawProduct, error) {
	log := logger.New().WithComponent("dataset").WithField("path", path)
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(path)
	default:
		rows, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}
	records, err := toRecords(rows)
	if err != nil {
		return nil, err
	}
	log.WithField("rows", len(records)).Info("dataset loaded")
	return records, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are a data problem, handled per cell
	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return rows, nil
}
