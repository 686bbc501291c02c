package charts

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
)

var errNoRows = errors.New("no data rows")

// table is an exported CSV indexed by header name.
type table struct {
	columns map[string]int
	header  []string
	rows    [][]string
}

func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, errNoRows
	}

	t := &table{
		columns: make(map[string]int, len(records[0])),
		header:  records[0],
		rows:    records[1:],
	}
	for i, name := range records[0] {
		t.columns[name] = i
	}
	return t, nil
}

func (t *table) require(names ...string) error {
	for _, name := range names {
		if _, ok := t.columns[name]; !ok {
			return fmt.Errorf("missing column %q", name)
		}
	}
	return nil
}

func (t *table) text(row int, name string) string {
	return t.rows[row][t.columns[name]]
}

// number returns nil for empty or non-numeric cells.
func (t *table) number(row int, name string) *float64 {
	v, err := strconv.ParseFloat(t.text(row, name), 64)
	if err != nil {
		return nil
	}
	return &v
}
