package store

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"
)

// Gateway presents one tabular interface over whichever backend the store
// settled on. Filters, change sets and match conditions are conjunctive
// equality maps; identifiers are checked against the table registry and
// values always travel as bound parameters, never as formatted SQL text.
//
// Reads soften every failure into an empty result; writes soften into a
// logged false. Nothing here panics or bubbles an error into view code.
type Gateway struct {
	store *Store
	cache *readCache
}

func NewGateway(store *Store, cacheTTL time.Duration) *Gateway {
	return &Gateway{store: store, cache: newReadCache(cacheTTL)}
}

func (gateway *Gateway) Backend() Kind { return gateway.store.Kind() }

// Writable reports whether Insert/Update/Delete actually persist. On the
// workbook tier they are accepted no-ops.
func (gateway *Gateway) Writable() bool { return gateway.store.Writable() }

// Fetch returns all rows of the named table matching every filter entry.
// Unknown tables, unknown columns, unreadable backends and empty matches all
// come back as an empty slice.
func (gateway *Gateway) Fetch(tableName string, filters map[string]any) []Row {
	table, ok := LookupTable(tableName)
	if !ok {
		log.Printf("gateway: fetch from unknown table %q", tableName)
		return []Row{}
	}
	if !table.validColumns(filters) {
		log.Printf("gateway: fetch %s with unknown filter column in %v", tableName, filterColumns(filters))
		return []Row{}
	}

	key := cacheKey(tableName, filters)
	if rows, found := gateway.cache.get(key); found {
		return rows
	}

	var rows []Row
	switch gateway.store.kind {
	case BackendWorkbook:
		rows = gateway.fetchFromWorkbook(table, filters)
	default:
		rows = gateway.fetchFromDatabase(table, filters)
	}

	gateway.cache.put(key, rows)
	return rows
}

// Insert adds one record. On the workbook tier this is a logged no-op that
// still reports success; real writes require a database backend.
func (gateway *Gateway) Insert(tableName string, record map[string]any) bool {
	table, ok := LookupTable(tableName)
	if !ok {
		log.Printf("gateway: insert into unknown table %q", tableName)
		return false
	}
	if len(record) == 0 || !table.validColumns(record) {
		log.Printf("gateway: insert into %s rejected, bad record columns %v", tableName, filterColumns(record))
		return false
	}

	if gateway.store.kind == BackendWorkbook {
		log.Printf("gateway: workbook backend is read-only, skipping insert into %s", tableName)
		return true
	}

	if err := gateway.store.db.Table(table.SQLName).Create(record).Error; err != nil {
		log.Printf("gateway: insert into %s failed: %v", tableName, err)
		return false
	}
	gateway.cache.invalidate(tableName)
	return true
}

// Update applies the change map to every row matching the condition map.
// An empty condition is rejected so a bug cannot rewrite a whole table.
func (gateway *Gateway) Update(tableName string, changes map[string]any, condition map[string]any) bool {
	table, ok := LookupTable(tableName)
	if !ok {
		log.Printf("gateway: update of unknown table %q", tableName)
		return false
	}
	if len(changes) == 0 || !table.validColumns(changes) {
		log.Printf("gateway: update of %s rejected, bad change columns %v", tableName, filterColumns(changes))
		return false
	}
	if len(condition) == 0 || !table.validColumns(condition) {
		log.Printf("gateway: update of %s rejected, bad condition columns %v", tableName, filterColumns(condition))
		return false
	}

	if gateway.store.kind == BackendWorkbook {
		log.Printf("gateway: workbook backend is read-only, skipping update of %s", tableName)
		return true
	}

	if err := gateway.store.db.Table(table.SQLName).Where(condition).Updates(changes).Error; err != nil {
		log.Printf("gateway: update of %s failed: %v", tableName, err)
		return false
	}
	gateway.cache.invalidate(tableName)
	return true
}

// Delete removes every row matching the condition map. Like Update, an empty
// condition is rejected.
func (gateway *Gateway) Delete(tableName string, condition map[string]any) bool {
	table, ok := LookupTable(tableName)
	if !ok {
		log.Printf("gateway: delete from unknown table %q", tableName)
		return false
	}
	if len(condition) == 0 || !table.validColumns(condition) {
		log.Printf("gateway: delete from %s rejected, bad condition columns %v", tableName, filterColumns(condition))
		return false
	}

	if gateway.store.kind == BackendWorkbook {
		log.Printf("gateway: workbook backend is read-only, skipping delete from %s", tableName)
		return true
	}

	statement, args := buildDeleteStatement(table, condition)
	if err := gateway.store.db.Exec(statement, args...).Error; err != nil {
		log.Printf("gateway: delete from %s failed: %v", tableName, err)
		return false
	}
	gateway.cache.invalidate(tableName)
	return true
}

func (gateway *Gateway) fetchFromDatabase(table Table, filters map[string]any) []Row {
	results := make([]map[string]any, 0)
	query := gateway.store.db.Table(table.SQLName)
	if len(filters) > 0 {
		query = query.Where(filters)
	}
	if err := query.Find(&results).Error; err != nil {
		log.Printf("gateway: fetch %s failed: %v", table.Name, err)
		return []Row{}
	}

	rows := make([]Row, 0, len(results))
	for _, result := range results {
		rows = append(rows, Row(result))
	}
	return rows
}

func (gateway *Gateway) fetchFromWorkbook(table Table, filters map[string]any) []Row {
	sheetRows, err := gateway.store.workbook.ReadSheet(table.Sheet)
	if err != nil {
		log.Printf("gateway: fetch %s failed: %v", table.Name, err)
		return []Row{}
	}

	rows := make([]Row, 0, len(sheetRows))
	for _, row := range sheetRows {
		if rowMatches(row, filters) {
			rows = append(rows, row)
		}
	}
	return rows
}

// rowMatches compares through the Row accessors so a workbook cell holding
// "1" still matches a boolean or integer filter value.
func rowMatches(row Row, filters map[string]any) bool {
	for column, expected := range filters {
		switch value := expected.(type) {
		case bool:
			if row.Bool(column) != value {
				return false
			}
		case int:
			if row.Int(column) != value {
				return false
			}
		case uint:
			if row.Int(column) != int(value) {
				return false
			}
		case int64:
			if row.Int(column) != int(value) {
				return false
			}
		case string:
			if row.String(column) != value {
				return false
			}
		default:
			if row.String(column) != fmt.Sprintf("%v", value) {
				return false
			}
		}
	}
	return true
}

func buildDeleteStatement(table Table, condition map[string]any) (string, []any) {
	columns := make([]string, 0, len(condition))
	for column := range condition {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	predicates := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, column := range columns {
		predicates = append(predicates, column+" = ?")
		args = append(args, condition[column])
	}

	statement := "DELETE FROM " + table.SQLName + " WHERE " + strings.Join(predicates, " AND ")
	return statement, args
}

func filterColumns(values map[string]any) []string {
	columns := make([]string, 0, len(values))
	for column := range values {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}
