package store

import (
	"strconv"
	"strings"
	"time"
)

// Row is one record as the gateway returns it. Value types vary with the
// active backend (database drivers hand back int64/bool/time.Time, the
// workbook reader hands back strings), so access goes through the typed
// helpers below.
type Row map[string]any

func (row Row) Int(column string) int {
	switch value := row[column].(type) {
	case int:
		return value
	case int32:
		return int(value)
	case int64:
		return int(value)
	case uint:
		return int(value)
	case uint64:
		return int(value)
	case float64:
		return int(value)
	case bool:
		if value {
			return 1
		}
		return 0
	case []byte:
		return atoiOrZero(string(value))
	case string:
		return atoiOrZero(value)
	default:
		return 0
	}
}

func (row Row) String(column string) string {
	switch value := row[column].(type) {
	case string:
		return value
	case []byte:
		return string(value)
	case nil:
		return ""
	default:
		return stringify(value)
	}
}

func (row Row) Bool(column string) bool {
	switch value := row[column].(type) {
	case bool:
		return value
	case int, int32, int64, uint, uint64, float64:
		return row.Int(column) != 0
	case []byte:
		return parseBool(string(value))
	case string:
		return parseBool(value)
	default:
		return false
	}
}

func (row Row) Time(column string) time.Time {
	switch value := row[column].(type) {
	case time.Time:
		return value
	case string:
		return parseTime(value)
	case []byte:
		return parseTime(string(value))
	default:
		return time.Time{}
	}
}

func (row Row) ID(table Table) uint {
	id := row.Int(table.IDColumn)
	if id < 0 {
		return 0
	}
	return uint(id)
}

func atoiOrZero(raw string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		// Workbook cells holding percentages sometimes carry decimals.
		if asFloat, floatErr := strconv.ParseFloat(strings.TrimSpace(raw), 64); floatErr == nil {
			return int(asFloat)
		}
		return 0
	}
	return parsed
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "si", "sí":
		return true
	default:
		return false
	}
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01-02-06",
	"1/2/06 15:04",
}

func parseTime(raw string) time.Time {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func stringify(value any) string {
	switch typed := value.(type) {
	case int64:
		return strconv.FormatInt(typed, 10)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(typed)
	case time.Time:
		return typed.Format(time.RFC3339)
	default:
		return ""
	}
}
