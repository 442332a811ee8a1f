package services

import "github.com/avelarde/avance/internal/store"

// TableGateway is the slice of the store gateway the services consume.
// *store.Gateway satisfies it; tests substitute their own.
type TableGateway interface {
	Fetch(table string, filters map[string]any) []store.Row
	Insert(table string, record map[string]any) bool
	Update(table string, changes map[string]any, condition map[string]any) bool
	Delete(table string, condition map[string]any) bool
	Backend() store.Kind
	Writable() bool
}
