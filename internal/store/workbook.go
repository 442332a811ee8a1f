package store

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook is the flat-file tier: one sheet per logical table, header row of
// column names. The file is reopened per read so an analyst replacing the
// export on disk is picked up without a restart, though the gateway's read
// cache may serve the old snapshot until its TTL expires. Writes never reach
// this type; the gateway reports them as read-only no-ops.
type Workbook struct {
	path string
}

func OpenWorkbook(path string) *Workbook {
	return &Workbook{path: path}
}

func (workbook *Workbook) Path() string { return workbook.path }

// ReadSheet returns every data row of the named sheet keyed by the header
// row. A missing file or sheet is an error for the caller to log and soften
// into an empty result.
func (workbook *Workbook) ReadSheet(sheet string) ([]Row, error) {
	file, err := excelize.OpenFile(workbook.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", workbook.path, err)
	}
	defer file.Close()

	rawRows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rawRows) == 0 {
		return []Row{}, nil
	}

	header := make([]string, 0, len(rawRows[0]))
	for _, cell := range rawRows[0] {
		header = append(header, strings.TrimSpace(cell))
	}

	rows := make([]Row, 0, len(rawRows)-1)
	for _, rawRow := range rawRows[1:] {
		if emptyCells(rawRow) {
			continue
		}
		row := make(Row, len(header))
		for index, column := range header {
			if column == "" {
				continue
			}
			if index < len(rawRow) {
				row[column] = strings.TrimSpace(rawRow[index])
			} else {
				row[column] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func emptyCells(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
